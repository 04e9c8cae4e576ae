package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/kart-io/complaint-center/internal/complaint-center/biz"
	"github.com/kart-io/complaint-center/internal/model"
	apperrors "github.com/kart-io/complaint-center/pkg/errors"
	"github.com/kart-io/complaint-center/pkg/response"
)

// UserHandler handles account management endpoints.
type UserHandler struct {
	svc *biz.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(svc *biz.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// List handles GET /api/users.
func (h *UserHandler) List(c *gin.Context) {
	identity, err := identityFromContext(c)
	if err != nil {
		response.FailWithError(c, err)
		return
	}

	list, err := h.svc.List(c.Request.Context(), identity)
	if err != nil {
		response.FailWithError(c, err)
		return
	}

	response.OK(c, list)
}

// Create handles POST /api/users.
func (h *UserHandler) Create(c *gin.Context) {
	identity, err := identityFromContext(c)
	if err != nil {
		response.FailWithError(c, err)
		return
	}

	var req model.CreateUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		if failedOnTag(err, "role") {
			response.Fail(c, apperrors.ErrInvalidRole)
			return
		}
		response.FailWithBind(c, err)
		return
	}

	user, err := h.svc.Create(c.Request.Context(), identity, &req)
	if err != nil {
		response.FailWithError(c, err)
		return
	}

	response.OK(c, user)
}

// Delete handles DELETE /api/users/:id.
func (h *UserHandler) Delete(c *gin.Context) {
	identity, err := identityFromContext(c)
	if err != nil {
		response.FailWithError(c, err)
		return
	}

	id := c.Param("id")
	if id == "" {
		response.Fail(c, apperrors.ErrBadRequest.WithMessage("user id is required"))
		return
	}

	if err := h.svc.Delete(c.Request.Context(), identity, id); err != nil {
		response.FailWithError(c, err)
		return
	}

	response.OKWithMessage(c, "user deleted", nil)
}
