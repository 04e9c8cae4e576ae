package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification represents a broadcast announcement document.
type Notification struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title         string             `json:"title" bson:"title"`
	Message       string             `json:"message" bson:"message"`
	CreatedBy     primitive.ObjectID `json:"created_by" bson:"created_by"`
	CreatedByUser *AccountRef        `json:"created_by_user,omitempty" bson:"-"`
	CreatedAt     time.Time          `json:"created_at" bson:"created_at"`
}

// NotificationList contains a list of notifications.
type NotificationList struct {
	TotalCount int64           `json:"totalCount"`
	Items      []*Notification `json:"items"`
}

// CollectionName returns the MongoDB collection name for notifications.
func (n *Notification) CollectionName() string {
	return "notifications"
}

// CreateNotificationRequest represents the body for broadcasting a notification.
type CreateNotificationRequest struct {
	Title   string `json:"title" form:"title" validate:"required,min=2,max=255"`
	Message string `json:"message" form:"message" validate:"required,min=2,max=4096"`
}
