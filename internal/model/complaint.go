package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Status is the lifecycle state of a complaint.
type Status string

// Complaint statuses. Any status may transition to any other.
const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "In Progress"
	StatusResolved   Status = "Resolved"
)

// Valid reports whether s is one of the supported statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusResolved:
		return true
	}
	return false
}

// String returns the status as a plain string.
func (s Status) String() string {
	return string(s)
}

// Complaint represents a complaint document in the complaints collection.
type Complaint struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Category    string             `json:"category" bson:"category"`
	Description string             `json:"description" bson:"description"`
	Status      Status             `json:"status" bson:"status"`
	UserID      primitive.ObjectID `json:"user_id" bson:"user_id"`
	User        *AccountRef        `json:"user,omitempty" bson:"-"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}

// AccountRef is the filer snapshot attached to complaints returned by the API.
type AccountRef struct {
	Name  string `json:"name" bson:"name"`
	Email string `json:"email" bson:"email"`
}

// ComplaintList contains a list of complaints.
type ComplaintList struct {
	TotalCount int64        `json:"totalCount"`
	Items      []*Complaint `json:"items"`
}

// CollectionName returns the MongoDB collection name for complaints.
func (c *Complaint) CollectionName() string {
	return "complaints"
}

// CreateComplaintRequest represents the body for filing a complaint.
type CreateComplaintRequest struct {
	Category    string `json:"category" form:"category" validate:"required,min=2,max=255"`
	Description string `json:"description" form:"description" validate:"required,min=2,max=4096"`
}

// UpdateStatusRequest represents the body for updating a complaint status.
type UpdateStatusRequest struct {
	Status string `json:"status" form:"status" validate:"required"`
}
