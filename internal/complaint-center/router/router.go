// Package router wires the complaint center routes.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/kart-io/complaint-center/internal/complaint-center/handler"
	"github.com/kart-io/complaint-center/pkg/auth"
	"github.com/kart-io/complaint-center/pkg/middleware"
)

// Handlers groups the HTTP handlers registered on the router.
type Handlers struct {
	Health       *handler.HealthHandler
	Auth         *handler.AuthHandler
	User         *handler.UserHandler
	Complaint    *handler.ComplaintHandler
	Notification *handler.NotificationHandler
}

// Register registers all routes on the engine. Authorization beyond token
// verification is decided in the service layer, so protected groups share a
// single auth middleware.
func Register(engine *gin.Engine, authn auth.Authenticator, h Handlers) {
	engine.GET("/healthz", h.Health.Healthz)

	api := engine.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", h.Auth.Register)
		authGroup.POST("/login", h.Auth.Login)

		authProtected := authGroup.Group("")
		authProtected.Use(middleware.Auth(authn))
		{
			authProtected.GET("/me", h.Auth.Me)
		}
	}

	complaints := api.Group("/complaints")
	complaints.Use(middleware.Auth(authn))
	{
		complaints.POST("", h.Complaint.Create)
		complaints.GET("", h.Complaint.List)
		complaints.PUT("/:id/status", h.Complaint.UpdateStatus)
	}

	notifications := api.Group("/notifications")
	notifications.Use(middleware.Auth(authn))
	{
		notifications.GET("", h.Notification.List)
		notifications.POST("", h.Notification.Create)
		notifications.DELETE("/:id", h.Notification.Delete)
	}

	users := api.Group("/users")
	users.Use(middleware.Auth(authn))
	{
		users.GET("", h.User.List)
		users.POST("", h.User.Create)
		users.DELETE("/:id", h.User.Delete)
	}
}
