package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kart-io/complaint-center/internal/model"
	apperrors "github.com/kart-io/complaint-center/pkg/errors"
)

type complaints struct {
	coll *mongo.Collection
}

func newComplaints(coll *mongo.Collection) *complaints {
	return &complaints{coll}
}

// Create inserts a new complaint.
func (c *complaints) Create(ctx context.Context, complaint *model.Complaint) error {
	now := time.Now()
	if complaint.ID.IsZero() {
		complaint.ID = primitive.NewObjectID()
	}
	complaint.CreatedAt = now
	complaint.UpdatedAt = now

	if _, err := c.coll.InsertOne(ctx, complaint); err != nil {
		return apperrors.ErrDatabase.WithCause(err)
	}
	return nil
}

// Get retrieves a complaint by id.
func (c *complaints) Get(ctx context.Context, id string) (*model.Complaint, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrComplaintNotFound
	}

	var complaint model.Complaint
	if err := c.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&complaint); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrComplaintNotFound
		}
		return nil, apperrors.ErrDatabase.WithCause(err)
	}
	return &complaint, nil
}

// UpdateStatus sets the status of a complaint and returns the updated document.
func (c *complaints) UpdateStatus(ctx context.Context, id string, status model.Status) (*model.Complaint, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrComplaintNotFound
	}

	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}}
	opts := mongoopts.FindOneAndUpdate().SetReturnDocument(mongoopts.After)

	var complaint model.Complaint
	if err := c.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&complaint); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrComplaintNotFound
		}
		return nil, apperrors.ErrDatabase.WithCause(err)
	}
	return &complaint, nil
}

// List lists all complaints, newest first.
func (c *complaints) List(ctx context.Context) (int64, []*model.Complaint, error) {
	return c.list(ctx, bson.M{})
}

// ListByUser lists the complaints filed by a single account, newest first.
func (c *complaints) ListByUser(ctx context.Context, userID string) (int64, []*model.Complaint, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return 0, nil, apperrors.ErrUserNotFound
	}
	return c.list(ctx, bson.M{"user_id": oid})
}

func (c *complaints) list(ctx context.Context, filter bson.M) (int64, []*model.Complaint, error) {
	count, err := c.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, nil, apperrors.ErrDatabase.WithCause(err)
	}

	opts := mongoopts.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := c.coll.Find(ctx, filter, opts)
	if err != nil {
		return 0, nil, apperrors.ErrDatabase.WithCause(err)
	}
	defer cur.Close(ctx)

	var items []*model.Complaint
	if err := cur.All(ctx, &items); err != nil {
		return 0, nil, apperrors.ErrDatabase.WithCause(err)
	}
	return count, items, nil
}
