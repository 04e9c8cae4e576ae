package biz

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/kart-io/complaint-center/internal/complaint-center/store"
	"github.com/kart-io/complaint-center/internal/model"
	"github.com/kart-io/complaint-center/pkg/auth"
	apperrors "github.com/kart-io/complaint-center/pkg/errors"
)

// AuthService handles registration, login, and identity lookup.
type AuthService struct {
	authn auth.Authenticator
	store store.Factory
}

// NewAuthService creates a new AuthService.
func NewAuthService(authn auth.Authenticator, store store.Factory) *AuthService {
	return &AuthService{
		authn: authn,
		store: store,
	}
}

// Register creates a student account. Self-registration never grants any
// other role.
func (s *AuthService) Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.ErrInternal.WithCause(err)
	}

	user := &model.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashedPassword),
		Role:     model.RoleStudent,
	}

	if err := s.store.Users().Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login authenticates by email and password and returns a signed token with
// the account snapshot. Unknown email and wrong password are reported
// identically.
func (s *AuthService) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	user, err := s.store.Users().GetByEmail(ctx, req.Email)
	if err != nil {
		if apperrors.IsCode(err, apperrors.ErrUserNotFound.Code) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	// Role and name ride in the claims. The role in a live token is trusted
	// for its lifetime; a role change takes effect on the next login.
	token, err := s.authn.Sign(ctx, user.ID.Hex(), auth.WithExtra(map[string]interface{}{
		auth.ClaimRole: user.Role.String(),
		auth.ClaimName: user.Name,
	}))
	if err != nil {
		return nil, apperrors.ErrInternal.WithCause(err)
	}

	return &model.LoginResponse{
		Token:     token.AccessToken,
		ExpiresIn: token.ExpiresIn,
		User:      user,
	}, nil
}

// CurrentAccount returns the account behind a verified identity.
func (s *AuthService) CurrentAccount(ctx context.Context, identity Identity) (*model.User, error) {
	return s.store.Users().Get(ctx, identity.UserID)
}
