package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kart-io/complaint-center/internal/model"
	apperrors "github.com/kart-io/complaint-center/pkg/errors"
)

// memoryStore implements Factory entirely in memory. It mirrors the MongoDB
// factory's semantics, including the unique email constraint, and backs the
// service-layer tests.
type memoryStore struct {
	mu            sync.RWMutex
	users         map[string]*model.User
	complaints    map[string]*model.Complaint
	notifications map[string]*model.Notification
}

// NewMemoryFactory creates an in-memory storage factory.
func NewMemoryFactory() Factory {
	return &memoryStore{
		users:         make(map[string]*model.User),
		complaints:    make(map[string]*model.Complaint),
		notifications: make(map[string]*model.Notification),
	}
}

func (m *memoryStore) Users() UserStore                 { return &memoryUsers{m} }
func (m *memoryStore) Complaints() ComplaintStore       { return &memoryComplaints{m} }
func (m *memoryStore) Notifications() NotificationStore { return &memoryNotifications{m} }
func (m *memoryStore) Close() error                     { return nil }

type memoryUsers struct {
	s *memoryStore
}

func (u *memoryUsers) Create(_ context.Context, user *model.User) error {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()

	for _, existing := range u.s.users {
		if existing.Email == user.Email {
			return apperrors.ErrEmailExists
		}
	}

	now := time.Now()
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	user.CreatedAt = now
	user.UpdatedAt = now

	clone := *user
	u.s.users[user.ID.Hex()] = &clone
	return nil
}

func (u *memoryUsers) Delete(_ context.Context, id string) error {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()

	if _, ok := u.s.users[id]; !ok {
		return apperrors.ErrUserNotFound
	}
	delete(u.s.users, id)
	return nil
}

func (u *memoryUsers) Get(_ context.Context, id string) (*model.User, error) {
	u.s.mu.RLock()
	defer u.s.mu.RUnlock()

	user, ok := u.s.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	clone := *user
	return &clone, nil
}

func (u *memoryUsers) GetByEmail(_ context.Context, email string) (*model.User, error) {
	u.s.mu.RLock()
	defer u.s.mu.RUnlock()

	for _, user := range u.s.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (u *memoryUsers) List(_ context.Context) (int64, []*model.User, error) {
	u.s.mu.RLock()
	defer u.s.mu.RUnlock()

	items := make([]*model.User, 0, len(u.s.users))
	for _, user := range u.s.users {
		clone := *user
		items = append(items, &clone)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return int64(len(items)), items, nil
}

func (u *memoryUsers) CountByRole(_ context.Context, role model.Role) (int64, error) {
	u.s.mu.RLock()
	defer u.s.mu.RUnlock()

	var count int64
	for _, user := range u.s.users {
		if user.Role == role {
			count++
		}
	}
	return count, nil
}

type memoryComplaints struct {
	s *memoryStore
}

func (c *memoryComplaints) Create(_ context.Context, complaint *model.Complaint) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()

	now := time.Now()
	if complaint.ID.IsZero() {
		complaint.ID = primitive.NewObjectID()
	}
	complaint.CreatedAt = now
	complaint.UpdatedAt = now

	clone := *complaint
	c.s.complaints[complaint.ID.Hex()] = &clone
	return nil
}

func (c *memoryComplaints) Get(_ context.Context, id string) (*model.Complaint, error) {
	c.s.mu.RLock()
	defer c.s.mu.RUnlock()

	complaint, ok := c.s.complaints[id]
	if !ok {
		return nil, apperrors.ErrComplaintNotFound
	}
	clone := *complaint
	return &clone, nil
}

func (c *memoryComplaints) UpdateStatus(_ context.Context, id string, status model.Status) (*model.Complaint, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()

	complaint, ok := c.s.complaints[id]
	if !ok {
		return nil, apperrors.ErrComplaintNotFound
	}
	complaint.Status = status
	complaint.UpdatedAt = time.Now()

	clone := *complaint
	return &clone, nil
}

func (c *memoryComplaints) List(_ context.Context) (int64, []*model.Complaint, error) {
	return c.list(func(*model.Complaint) bool { return true })
}

func (c *memoryComplaints) ListByUser(_ context.Context, userID string) (int64, []*model.Complaint, error) {
	return c.list(func(complaint *model.Complaint) bool {
		return complaint.UserID.Hex() == userID
	})
}

func (c *memoryComplaints) list(match func(*model.Complaint) bool) (int64, []*model.Complaint, error) {
	c.s.mu.RLock()
	defer c.s.mu.RUnlock()

	var items []*model.Complaint
	for _, complaint := range c.s.complaints {
		if match(complaint) {
			clone := *complaint
			items = append(items, &clone)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return int64(len(items)), items, nil
}

type memoryNotifications struct {
	s *memoryStore
}

func (n *memoryNotifications) Create(_ context.Context, notification *model.Notification) error {
	n.s.mu.Lock()
	defer n.s.mu.Unlock()

	if notification.ID.IsZero() {
		notification.ID = primitive.NewObjectID()
	}
	notification.CreatedAt = time.Now()

	clone := *notification
	n.s.notifications[notification.ID.Hex()] = &clone
	return nil
}

func (n *memoryNotifications) Delete(_ context.Context, id string) error {
	n.s.mu.Lock()
	defer n.s.mu.Unlock()

	if _, ok := n.s.notifications[id]; !ok {
		return apperrors.ErrNotificationNotFound
	}
	delete(n.s.notifications, id)
	return nil
}

func (n *memoryNotifications) List(_ context.Context) (int64, []*model.Notification, error) {
	n.s.mu.RLock()
	defer n.s.mu.RUnlock()

	items := make([]*model.Notification, 0, len(n.s.notifications))
	for _, notification := range n.s.notifications {
		clone := *notification
		items = append(items, &clone)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return int64(len(items)), items, nil
}
