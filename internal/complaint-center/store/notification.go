package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kart-io/complaint-center/internal/model"
	apperrors "github.com/kart-io/complaint-center/pkg/errors"
)

type notifications struct {
	coll *mongo.Collection
}

func newNotifications(coll *mongo.Collection) *notifications {
	return &notifications{coll}
}

// Create inserts a new notification.
func (n *notifications) Create(ctx context.Context, notification *model.Notification) error {
	if notification.ID.IsZero() {
		notification.ID = primitive.NewObjectID()
	}
	notification.CreatedAt = time.Now()

	if _, err := n.coll.InsertOne(ctx, notification); err != nil {
		return apperrors.ErrDatabase.WithCause(err)
	}
	return nil
}

// Delete removes a notification by id.
func (n *notifications) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.ErrNotificationNotFound
	}

	res, err := n.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return apperrors.ErrDatabase.WithCause(err)
	}
	if res.DeletedCount == 0 {
		return apperrors.ErrNotificationNotFound
	}
	return nil
}

// List lists all notifications, newest first.
func (n *notifications) List(ctx context.Context) (int64, []*model.Notification, error) {
	count, err := n.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, nil, apperrors.ErrDatabase.WithCause(err)
	}

	opts := mongoopts.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := n.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return 0, nil, apperrors.ErrDatabase.WithCause(err)
	}
	defer cur.Close(ctx)

	var items []*model.Notification
	if err := cur.All(ctx, &items); err != nil {
		return 0, nil, apperrors.ErrDatabase.WithCause(err)
	}
	return count, items, nil
}
