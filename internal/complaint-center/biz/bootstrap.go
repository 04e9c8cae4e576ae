package biz

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/kart-io/complaint-center/internal/complaint-center/store"
	"github.com/kart-io/complaint-center/internal/model"
	apperrors "github.com/kart-io/complaint-center/pkg/errors"
)

// Fixed superadmin credentials seeded at startup.
const (
	SuperAdminEmail    = "superadmin@cms.com"
	SuperAdminPassword = "SuperAdmin@123"
	SuperAdminName     = "Super Admin"
)

// EnsureSuperAdmin seeds the superadmin account if no account holds the
// superadmin role yet. The operation is idempotent; repeated startups leave
// a single superadmin.
func EnsureSuperAdmin(ctx context.Context, factory store.Factory) error {
	count, err := factory.Users().CountByRole(ctx, model.RoleSuperAdmin)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(SuperAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &model.User{
		Name:     SuperAdminName,
		Email:    SuperAdminEmail,
		Password: string(hashedPassword),
		Role:     model.RoleSuperAdmin,
	}

	if err := factory.Users().Create(ctx, user); err != nil {
		// A concurrent startup won the insert. The account exists, which is
		// all this function guarantees.
		if apperrors.IsCode(err, apperrors.ErrEmailExists.Code) {
			return nil
		}
		return err
	}
	return nil
}
