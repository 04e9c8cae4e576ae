package biz

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kart-io/complaint-center/internal/complaint-center/store"
	"github.com/kart-io/complaint-center/internal/model"
	"github.com/kart-io/complaint-center/pkg/authz/rbac"
	apperrors "github.com/kart-io/complaint-center/pkg/errors"
)

// NotificationService handles broadcast notifications.
type NotificationService struct {
	store  store.Factory
	policy *rbac.Policy
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(store store.Factory, policy *rbac.Policy) *NotificationService {
	return &NotificationService{store: store, policy: policy}
}

// List returns all notifications with the sender snapshot attached. Every
// authenticated role can read them.
func (s *NotificationService) List(ctx context.Context, identity Identity) (*model.NotificationList, error) {
	if !s.policy.Allowed(identity.Role.String(), ResourceNotifications, ActionList) {
		return nil, apperrors.ErrForbidden
	}

	count, items, err := s.store.Notifications().List(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.attachSenders(ctx, items); err != nil {
		return nil, err
	}
	return &model.NotificationList{TotalCount: count, Items: items}, nil
}

// Create broadcasts a notification to all users.
func (s *NotificationService) Create(ctx context.Context, identity Identity, req *model.CreateNotificationRequest) (*model.Notification, error) {
	if !s.policy.Allowed(identity.Role.String(), ResourceNotifications, ActionCreate) {
		return nil, apperrors.ErrForbidden
	}

	createdBy, err := primitive.ObjectIDFromHex(identity.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	notification := &model.Notification{
		Title:     req.Title,
		Message:   req.Message,
		CreatedBy: createdBy,
	}

	if err := s.store.Notifications().Create(ctx, notification); err != nil {
		return nil, err
	}
	if err := s.attachSenders(ctx, []*model.Notification{notification}); err != nil {
		return nil, err
	}
	return notification, nil
}

// attachSenders resolves the name and email of each notification's sender.
// Notifications whose account has since been deleted keep a nil snapshot.
func (s *NotificationService) attachSenders(ctx context.Context, items []*model.Notification) error {
	ids := make([]primitive.ObjectID, 0, len(items))
	for _, notification := range items {
		ids = append(ids, notification.CreatedBy)
	}

	refs, err := accountRefs(ctx, s.store.Users(), ids)
	if err != nil {
		return err
	}
	for _, notification := range items {
		notification.CreatedByUser = refs[notification.CreatedBy.Hex()]
	}
	return nil
}

// Delete removes a notification.
func (s *NotificationService) Delete(ctx context.Context, identity Identity, id string) error {
	if !s.policy.Allowed(identity.Role.String(), ResourceNotifications, ActionDelete) {
		return apperrors.ErrForbidden
	}
	return s.store.Notifications().Delete(ctx, id)
}
