package biz

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kart-io/complaint-center/internal/complaint-center/store"
	"github.com/kart-io/complaint-center/internal/model"
	"github.com/kart-io/complaint-center/pkg/authz/rbac"
	apperrors "github.com/kart-io/complaint-center/pkg/errors"
)

// ComplaintService handles complaint filing, listing, and status updates.
type ComplaintService struct {
	store  store.Factory
	policy *rbac.Policy
}

// NewComplaintService creates a new ComplaintService.
func NewComplaintService(store store.Factory, policy *rbac.Policy) *ComplaintService {
	return &ComplaintService{store: store, policy: policy}
}

// Create files a complaint. The owner is always the caller; new complaints
// start in Pending.
func (s *ComplaintService) Create(ctx context.Context, identity Identity, req *model.CreateComplaintRequest) (*model.Complaint, error) {
	if !s.policy.Allowed(identity.Role.String(), ResourceComplaints, ActionCreate) {
		return nil, apperrors.ErrForbidden
	}

	userID, err := primitive.ObjectIDFromHex(identity.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	complaint := &model.Complaint{
		Category:    req.Category,
		Description: req.Description,
		Status:      model.StatusPending,
		UserID:      userID,
	}

	if err := s.store.Complaints().Create(ctx, complaint); err != nil {
		return nil, err
	}
	return complaint, nil
}

// List returns complaints scoped by role: admins see every complaint,
// students only their own. Either way each item carries the filer snapshot.
func (s *ComplaintService) List(ctx context.Context, identity Identity) (*model.ComplaintList, error) {
	role := identity.Role.String()

	var (
		count int64
		items []*model.Complaint
		err   error
	)
	switch {
	case s.policy.Allowed(role, ResourceComplaints, ActionListAny):
		count, items, err = s.store.Complaints().List(ctx)
	case s.policy.Allowed(role, ResourceComplaints, ActionList):
		count, items, err = s.store.Complaints().ListByUser(ctx, identity.UserID)
	default:
		return nil, apperrors.ErrForbidden
	}
	if err != nil {
		return nil, err
	}

	if err := s.attachFilers(ctx, items); err != nil {
		return nil, err
	}
	return &model.ComplaintList{TotalCount: count, Items: items}, nil
}

// UpdateStatus moves a complaint to the given status. Any status may follow
// any other.
func (s *ComplaintService) UpdateStatus(ctx context.Context, identity Identity, id string, status string) (*model.Complaint, error) {
	if !s.policy.Allowed(identity.Role.String(), ResourceComplaints, ActionUpdateStatus) {
		return nil, apperrors.ErrForbidden
	}

	st := model.Status(status)
	if !st.Valid() {
		return nil, apperrors.ErrInvalidStatus
	}

	complaint, err := s.store.Complaints().UpdateStatus(ctx, id, st)
	if err != nil {
		return nil, err
	}
	if err := s.attachFilers(ctx, []*model.Complaint{complaint}); err != nil {
		return nil, err
	}
	return complaint, nil
}

// attachFilers resolves the name and email of each complaint's filer.
// Complaints whose account has since been deleted keep a nil snapshot.
func (s *ComplaintService) attachFilers(ctx context.Context, items []*model.Complaint) error {
	ids := make([]primitive.ObjectID, 0, len(items))
	for _, complaint := range items {
		ids = append(ids, complaint.UserID)
	}

	refs, err := accountRefs(ctx, s.store.Users(), ids)
	if err != nil {
		return err
	}
	for _, complaint := range items {
		complaint.User = refs[complaint.UserID.Hex()]
	}
	return nil
}
