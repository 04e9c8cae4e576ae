package biz

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/kart-io/complaint-center/internal/complaint-center/store"
	"github.com/kart-io/complaint-center/internal/model"
	"github.com/kart-io/complaint-center/pkg/auth/jwt"
)

const testJWTKey = "test-signing-key-with-32-characters!"

// testEnv bundles the services under test over a shared in-memory store.
type testEnv struct {
	factory       store.Factory
	auth          *AuthService
	users         *UserService
	complaints    *ComplaintService
	notifications *NotificationService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	factory := store.NewMemoryFactory()
	jwtAuth, err := jwt.New(jwt.WithKey(testJWTKey))
	require.NoError(t, err)

	policy := NewPolicy()
	return &testEnv{
		factory:       factory,
		auth:          NewAuthService(jwtAuth, factory),
		users:         NewUserService(factory, policy),
		complaints:    NewComplaintService(factory, policy),
		notifications: NewNotificationService(factory, policy),
	}
}

// seedUser inserts an account directly into the store and returns it.
func (e *testEnv) seedUser(t *testing.T, name, email, password string, role model.Role) *model.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := &model.User{
		Name:     name,
		Email:    email,
		Password: string(hashed),
		Role:     role,
	}
	require.NoError(t, e.factory.Users().Create(context.Background(), user))
	return user
}

func identityOf(user *model.User) Identity {
	return Identity{
		UserID: user.ID.Hex(),
		Name:   user.Name,
		Role:   user.Role,
	}
}
