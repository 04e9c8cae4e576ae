package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/kart-io/complaint-center/internal/complaint-center/biz"
	"github.com/kart-io/complaint-center/internal/model"
	"github.com/kart-io/complaint-center/pkg/response"
)

// AuthHandler handles registration, login, and identity endpoints.
type AuthHandler struct {
	svc *biz.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc *biz.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		response.FailWithBind(c, err)
		return
	}

	user, err := h.svc.Register(c.Request.Context(), &req)
	if err != nil {
		response.FailWithError(c, err)
		return
	}

	response.OK(c, user)
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		response.FailWithBind(c, err)
		return
	}

	resp, err := h.svc.Login(c.Request.Context(), &req)
	if err != nil {
		response.FailWithError(c, err)
		return
	}

	response.OK(c, resp)
}

// Me handles GET /api/auth/me.
func (h *AuthHandler) Me(c *gin.Context) {
	identity, err := identityFromContext(c)
	if err != nil {
		response.FailWithError(c, err)
		return
	}

	user, err := h.svc.CurrentAccount(c.Request.Context(), identity)
	if err != nil {
		response.FailWithError(c, err)
		return
	}

	response.OK(c, user)
}
