// Package store defines the persistence layer for the complaint center.
package store

import (
	"context"

	"github.com/kart-io/complaint-center/internal/model"
)

// Factory defines the factory interface for creating stores.
type Factory interface {
	Users() UserStore
	Complaints() ComplaintStore
	Notifications() NotificationStore
	Close() error
}

// UserStore defines the account storage interface.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context) (int64, []*model.User, error)
	CountByRole(ctx context.Context, role model.Role) (int64, error)
}

// ComplaintStore defines the complaint storage interface.
type ComplaintStore interface {
	Create(ctx context.Context, complaint *model.Complaint) error
	Get(ctx context.Context, id string) (*model.Complaint, error)
	UpdateStatus(ctx context.Context, id string, status model.Status) (*model.Complaint, error)
	List(ctx context.Context) (int64, []*model.Complaint, error)
	ListByUser(ctx context.Context, userID string) (int64, []*model.Complaint, error)
}

// NotificationStore defines the notification storage interface.
type NotificationStore interface {
	Create(ctx context.Context, notification *model.Notification) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) (int64, []*model.Notification, error)
}
