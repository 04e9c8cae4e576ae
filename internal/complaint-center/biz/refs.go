package biz

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kart-io/complaint-center/internal/complaint-center/store"
	"github.com/kart-io/complaint-center/internal/model"
	apperrors "github.com/kart-io/complaint-center/pkg/errors"
)

// accountRefs resolves the name and email snapshot for each referenced
// account, one lookup per distinct ID. IDs whose account has since been
// deleted map to nil so listings survive account removal.
func accountRefs(ctx context.Context, users store.UserStore, ids []primitive.ObjectID) (map[string]*model.AccountRef, error) {
	refs := make(map[string]*model.AccountRef, len(ids))
	for _, id := range ids {
		hex := id.Hex()
		if _, ok := refs[hex]; ok {
			continue
		}

		user, err := users.Get(ctx, hex)
		switch {
		case err == nil:
			refs[hex] = &model.AccountRef{Name: user.Name, Email: user.Email}
		case apperrors.IsCode(err, apperrors.ErrUserNotFound.Code):
			refs[hex] = nil
		default:
			return nil, err
		}
	}
	return refs, nil
}
