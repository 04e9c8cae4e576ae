package biz

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/kart-io/complaint-center/internal/model"
	apperrors "github.com/kart-io/complaint-center/pkg/errors"
)

func TestRegisterCreatesStudent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user, err := env.auth.Register(ctx, &model.RegisterRequest{
		Name:     "Ada Lovelace",
		Email:    "ada@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	// Self-registration always yields a student, and the password is stored
	// only as a hash.
	assert.Equal(t, model.RoleStudent, user.Role)
	assert.NotEqual(t, "secret123", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret123")))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	req := &model.RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: "secret123"}
	_, err := env.auth.Register(ctx, req)
	require.NoError(t, err)

	_, err = env.auth.Register(ctx, req)
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrEmailExists.Code))
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.seedUser(t, "Ada", "ada@example.com", "secret123", model.RoleStudent)

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  bool
	}{
		{"valid credentials", "ada@example.com", "secret123", false},
		{"wrong password", "ada@example.com", "wrong", true},
		{"unknown email", "ghost@example.com", "secret123", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := env.auth.Login(ctx, &model.LoginRequest{Email: tt.email, Password: tt.password})
			if tt.wantErr {
				require.Error(t, err)
				// Unknown email and wrong password are indistinguishable.
				assert.True(t, apperrors.IsCode(err, apperrors.ErrInvalidCredentials.Code))
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, resp.Token)
			assert.Greater(t, resp.ExpiresIn, int64(0))
			require.NotNil(t, resp.User)
			assert.Equal(t, "ada@example.com", resp.User.Email)
		})
	}
}

func TestLoginTokenCarriesRoleAndName(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	admin := env.seedUser(t, "Grace", "grace@example.com", "secret123", model.RoleAdmin)

	resp, err := env.auth.Login(ctx, &model.LoginRequest{Email: admin.Email, Password: "secret123"})
	require.NoError(t, err)

	jwtAuth := env.auth.authn
	claims, err := jwtAuth.Verify(ctx, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, admin.ID.Hex(), claims.Subject)
	assert.Equal(t, "admin", claims.Role())
}

func TestCurrentAccount(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.seedUser(t, "Ada", "ada@example.com", "secret123", model.RoleStudent)

	got, err := env.auth.CurrentAccount(ctx, identityOf(user))
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, "ada@example.com", got.Email)
}
