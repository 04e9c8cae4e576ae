package complaintcenter

import (
	"context"
	"fmt"
	"time"

	"github.com/kart-io/logger"

	"github.com/kart-io/complaint-center/internal/complaint-center/biz"
	"github.com/kart-io/complaint-center/internal/complaint-center/handler"
	"github.com/kart-io/complaint-center/internal/complaint-center/router"
	"github.com/kart-io/complaint-center/internal/complaint-center/store"
	"github.com/kart-io/complaint-center/pkg/app"
	"github.com/kart-io/complaint-center/pkg/auth/jwt"
	"github.com/kart-io/complaint-center/pkg/component/mongodb"
)

const (
	appName        = "complaint-center"
	appDescription = `Complaint Center Service

A role-based complaint tracking service.

This server provides:
  - Student complaint filing and tracking
  - Admin complaint triage and status updates
  - Broadcast notifications
  - Account management`
)

// NewApp creates a new application instance.
func NewApp() *app.App {
	opts := NewOptions()

	return app.NewApp(
		app.WithName(appName),
		app.WithDescription(appDescription),
		app.WithOptions(opts),
		app.WithRunFunc(func() error {
			return Run(opts)
		}),
	)
}

// Run runs the complaint center service with the given options.
func Run(opts *Options) error {
	opts.Log.AddInitialField("service.name", appName)
	opts.Log.AddInitialField("service.version", app.GetVersion())
	if err := opts.Log.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger.Info("Starting complaint-center service...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	mongoClient, err := mongodb.New(ctx, opts.Mongo)
	if err != nil {
		return fmt.Errorf("failed to initialize mongodb: %w", err)
	}

	storeFactory, err := store.NewMongoFactory(ctx, mongoClient)
	if err != nil {
		_ = mongoClient.Close()
		return fmt.Errorf("failed to initialize store: %w", err)
	}
	logger.Info("Store layer initialized")

	// Seed the superadmin account. Failure degrades the start but does not
	// abort it; complaint and notification flows stay available.
	if err := biz.EnsureSuperAdmin(ctx, storeFactory); err != nil {
		logger.Warnw("Failed to ensure superadmin account", "error", err)
	}

	jwtAuth, err := jwt.New(jwt.WithOptions(opts.JWT))
	if err != nil {
		return fmt.Errorf("failed to initialize jwt: %w", err)
	}
	logger.Info("JWT authentication initialized")

	policy := biz.NewPolicy()
	authService := biz.NewAuthService(jwtAuth, storeFactory)
	userService := biz.NewUserService(storeFactory, policy)
	complaintService := biz.NewComplaintService(storeFactory, policy)
	notificationService := biz.NewNotificationService(storeFactory, policy)
	logger.Info("Business layer initialized")

	srv := NewServer(opts.Server)
	router.Register(srv.Engine(), jwtAuth, router.Handlers{
		Health:       handler.NewHealthHandler(mongoClient),
		Auth:         handler.NewAuthHandler(authService),
		User:         handler.NewUserHandler(userService),
		Complaint:    handler.NewComplaintHandler(complaintService),
		Notification: handler.NewNotificationHandler(notificationService),
	})

	srv.OnShutdown(func() {
		if err := storeFactory.Close(); err != nil {
			logger.Warnw("Failed to close store", "error", err)
		}
	})

	logger.Info("Complaint center service is ready")
	return srv.Run()
}
