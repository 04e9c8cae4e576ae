package biz

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/kart-io/complaint-center/internal/complaint-center/store"
	"github.com/kart-io/complaint-center/internal/model"
	"github.com/kart-io/complaint-center/pkg/authz/rbac"
	apperrors "github.com/kart-io/complaint-center/pkg/errors"
)

// UserService handles account management. Every operation is gated on the
// superadmin role.
type UserService struct {
	store  store.Factory
	policy *rbac.Policy
}

// NewUserService creates a new UserService.
func NewUserService(store store.Factory, policy *rbac.Policy) *UserService {
	return &UserService{store: store, policy: policy}
}

// List lists all accounts.
func (s *UserService) List(ctx context.Context, identity Identity) (*model.UserList, error) {
	if !s.policy.Allowed(identity.Role.String(), ResourceUsers, ActionList) {
		return nil, apperrors.ErrForbidden
	}

	count, items, err := s.store.Users().List(ctx)
	if err != nil {
		return nil, err
	}
	return &model.UserList{TotalCount: count, Items: items}, nil
}

// Create creates an account with the requested role. Only student and admin
// roles can be created; requesting superadmin always fails because exactly
// one superadmin exists.
func (s *UserService) Create(ctx context.Context, identity Identity, req *model.CreateUserRequest) (*model.User, error) {
	if !s.policy.Allowed(identity.Role.String(), ResourceUsers, ActionCreate) {
		return nil, apperrors.ErrForbidden
	}

	role := model.Role(req.Role)
	if !role.Valid() || role == model.RoleSuperAdmin {
		return nil, apperrors.ErrInvalidRole
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.ErrInternal.WithCause(err)
	}

	user := &model.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashedPassword),
		Role:     role,
	}

	if err := s.store.Users().Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes an account. The superadmin account can never be deleted,
// not even by itself.
func (s *UserService) Delete(ctx context.Context, identity Identity, id string) error {
	if !s.policy.Allowed(identity.Role.String(), ResourceUsers, ActionDelete) {
		return apperrors.ErrForbidden
	}

	target, err := s.store.Users().Get(ctx, id)
	if err != nil {
		return err
	}
	if target.Role == model.RoleSuperAdmin {
		return apperrors.ErrForbidden
	}

	return s.store.Users().Delete(ctx, id)
}
