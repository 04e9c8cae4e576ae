package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kart-io/complaint-center/pkg/component/mongodb"
)

// datastore implements the Factory interface over MongoDB.
type datastore struct {
	client *mongodb.Client
}

// NewMongoFactory creates a MongoDB-backed storage factory and ensures the
// indexes the store relies on.
func NewMongoFactory(ctx context.Context, client *mongodb.Client) (Factory, error) {
	if client == nil {
		return nil, fmt.Errorf("mongodb client cannot be nil")
	}

	ds := &datastore{client: client}
	if err := ds.ensureIndexes(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure indexes: %w", err)
	}

	return ds, nil
}

// ensureIndexes creates the unique email index. The index is the arbiter for
// duplicate registrations under concurrency.
func (ds *datastore) ensureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := ds.client.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: mongoopts.Index().SetUnique(true).SetName("uk_email"),
	})
	return err
}

// Users returns the account store.
func (ds *datastore) Users() UserStore {
	return newUsers(ds.client.Collection("users"))
}

// Complaints returns the complaint store.
func (ds *datastore) Complaints() ComplaintStore {
	return newComplaints(ds.client.Collection("complaints"))
}

// Notifications returns the notification store.
func (ds *datastore) Notifications() NotificationStore {
	return newNotifications(ds.client.Collection("notifications"))
}

// Close closes the factory and the underlying connection.
func (ds *datastore) Close() error {
	return ds.client.Close()
}
