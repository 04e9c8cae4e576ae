package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/kart-io/complaint-center/internal/complaint-center/biz"
	"github.com/kart-io/complaint-center/internal/model"
	apperrors "github.com/kart-io/complaint-center/pkg/errors"
	"github.com/kart-io/complaint-center/pkg/response"
)

// NotificationHandler handles notification endpoints.
type NotificationHandler struct {
	svc *biz.NotificationService
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(svc *biz.NotificationService) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

// List handles GET /api/notifications.
func (h *NotificationHandler) List(c *gin.Context) {
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

// Create handles POST /api/notifications.
func (h *NotificationHandler) Create(c *gin.Context) {
	identity, err := identityFromContext(c)
	if err != nil {
		response.FailWithError(c, err)
		return
	}

	var req model.CreateNotificationRequest
	if err := bindAndValidate(c, &req); err != nil {
		response.FailWithBind(c, err)
		return
	}

	notification, err := h.svc.Create(c.Request.Context(), identity, &req)
	if err != nil {
		response.FailWithError(c, err)
		return
	}

	response.OK(c, notification)
}

// Delete handles DELETE /api/notifications/:id.
func (h *NotificationHandler) Delete(c *gin.Context) {
	identity, err := identityFromContext(c)
	if err != nil {
		response.FailWithError(c, err)
		return
	}

	id := c.Param("id")
	if id == "" {
		response.Fail(c, apperrors.ErrBadRequest.WithMessage("notification id is required"))
		return
	}

	if err := h.svc.Delete(c.Request.Context(), identity, id); err != nil {
		response.FailWithError(c, err)
		return
	}

	response.OKWithMessage(c, "notification deleted", nil)
}
