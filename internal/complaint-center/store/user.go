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

type users struct {
	coll *mongo.Collection
}

func newUsers(coll *mongo.Collection) *users {
	return &users{coll}
}

// Create inserts a new account. A duplicate email is reported as
// ErrEmailExists; the unique index decides the winner under concurrency.
func (u *users) Create(ctx context.Context, user *model.User) error {
	now := time.Now()
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	user.CreatedAt = now
	user.UpdatedAt = now

	if _, err := u.coll.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrEmailExists
		}
		return apperrors.ErrDatabase.WithCause(err)
	}
	return nil
}

// Delete removes an account by id.
func (u *users) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.ErrUserNotFound
	}

	res, err := u.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return apperrors.ErrDatabase.WithCause(err)
	}
	if res.DeletedCount == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// Get retrieves an account by id.
func (u *users) Get(ctx context.Context, id string) (*model.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	var user model.User
	if err := u.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.ErrDatabase.WithCause(err)
	}
	return &user, nil
}

// GetByEmail retrieves an account by email.
func (u *users) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := u.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.ErrDatabase.WithCause(err)
	}
	return &user, nil
}

// List lists all accounts, newest first.
func (u *users) List(ctx context.Context) (int64, []*model.User, error) {
	count, err := u.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, nil, apperrors.ErrDatabase.WithCause(err)
	}

	opts := mongoopts.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := u.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return 0, nil, apperrors.ErrDatabase.WithCause(err)
	}
	defer cur.Close(ctx)

	var items []*model.User
	if err := cur.All(ctx, &items); err != nil {
		return 0, nil, apperrors.ErrDatabase.WithCause(err)
	}
	return count, items, nil
}

// CountByRole counts accounts holding the given role.
func (u *users) CountByRole(ctx context.Context, role model.Role) (int64, error) {
	count, err := u.coll.CountDocuments(ctx, bson.M{"role": role})
	if err != nil {
		return 0, apperrors.ErrDatabase.WithCause(err)
	}
	return count, nil
}
