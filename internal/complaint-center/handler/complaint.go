package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/kart-io/complaint-center/internal/complaint-center/biz"
	"github.com/kart-io/complaint-center/internal/model"
	apperrors "github.com/kart-io/complaint-center/pkg/errors"
	"github.com/kart-io/complaint-center/pkg/response"
)

// ComplaintHandler handles complaint endpoints.
type ComplaintHandler struct {
	svc *biz.ComplaintService
}

// NewComplaintHandler creates a new ComplaintHandler.
func NewComplaintHandler(svc *biz.ComplaintService) *ComplaintHandler {
	return &ComplaintHandler{svc: svc}
}

// Create handles POST /api/complaints.
func (h *ComplaintHandler) Create(c *gin.Context) {
	identity, err := identityFromContext(c)
	if err != nil {
		response.FailWithError(c, err)
		return
	}

	var req model.CreateComplaintRequest
	if err := bindAndValidate(c, &req); err != nil {
		response.FailWithBind(c, err)
		return
	}

	complaint, err := h.svc.Create(c.Request.Context(), identity, &req)
	if err != nil {
		response.FailWithError(c, err)
		return
	}

	response.OK(c, complaint)
}

// List handles GET /api/complaints.
func (h *ComplaintHandler) List(c *gin.Context) {
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

// UpdateStatus handles PUT /api/complaints/:id/status.
func (h *ComplaintHandler) UpdateStatus(c *gin.Context) {
	identity, err := identityFromContext(c)
	if err != nil {
		response.FailWithError(c, err)
		return
	}

	id := c.Param("id")
	if id == "" {
		response.Fail(c, apperrors.ErrBadRequest.WithMessage("complaint id is required"))
		return
	}

	var req model.UpdateStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		response.FailWithBind(c, err)
		return
	}

	complaint, err := h.svc.UpdateStatus(c.Request.Context(), identity, id, req.Status)
	if err != nil {
		response.FailWithError(c, err)
		return
	}

	response.OK(c, complaint)
}
