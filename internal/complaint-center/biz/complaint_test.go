package biz

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kart-io/complaint-center/internal/model"
	apperrors "github.com/kart-io/complaint-center/pkg/errors"
)

func TestComplaintCreate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	student := env.seedUser(t, "Ada", "ada@example.com", "secret123", model.RoleStudent)

	complaint, err := env.complaints.Create(ctx, identityOf(student), &model.CreateComplaintRequest{
		Category:    "Facilities",
		Description: "The projector in room 204 does not turn on.",
	})
	require.NoError(t, err)

	// The filer is always the caller and new complaints start Pending.
	assert.Equal(t, student.ID, complaint.UserID)
	assert.Equal(t, model.StatusPending, complaint.Status)
	assert.False(t, complaint.CreatedAt.IsZero())
}

func TestComplaintListScopedByRole(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	ada := env.seedUser(t, "Ada", "ada@example.com", "secret123", model.RoleStudent)
	bob := env.seedUser(t, "Bob", "bob@example.com", "secret123", model.RoleStudent)
	admin := env.seedUser(t, "Grace", "grace@example.com", "secret123", model.RoleAdmin)

	for _, c := range []struct {
		owner    *model.User
		category string
	}{
		{ada, "Ada one"},
		{ada, "Ada two"},
		{bob, "Bob one"},
	} {
		_, err := env.complaints.Create(ctx, identityOf(c.owner), &model.CreateComplaintRequest{
			Category:    c.category,
			Description: "details",
		})
		require.NoError(t, err)
	}

	t.Run("student sees only own with filer snapshot", func(t *testing.T) {
		list, err := env.complaints.List(ctx, identityOf(ada))
		require.NoError(t, err)
		assert.Equal(t, int64(2), list.TotalCount)
		for _, c := range list.Items {
			assert.Equal(t, ada.ID, c.UserID)
			require.NotNil(t, c.User)
			assert.Equal(t, "ada@example.com", c.User.Email)
		}
	})

	t.Run("admin sees all with filer snapshot", func(t *testing.T) {
		list, err := env.complaints.List(ctx, identityOf(admin))
		require.NoError(t, err)
		assert.Equal(t, int64(3), list.TotalCount)
		for _, c := range list.Items {
			require.NotNil(t, c.User)
			assert.NotEmpty(t, c.User.Name)
			assert.NotEmpty(t, c.User.Email)
		}
	})
}

func TestComplaintListKeepsDeletedFiler(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	ada := env.seedUser(t, "Ada", "ada@example.com", "secret123", model.RoleStudent)
	admin := env.seedUser(t, "Grace", "grace@example.com", "secret123", model.RoleAdmin)

	_, err := env.complaints.Create(ctx, identityOf(ada), &model.CreateComplaintRequest{
		Category: "Facilities", Description: "details",
	})
	require.NoError(t, err)

	require.NoError(t, env.factory.Users().Delete(ctx, ada.ID.Hex()))

	list, err := env.complaints.List(ctx, identityOf(admin))
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Nil(t, list.Items[0].User)
}

func TestComplaintUpdateStatus(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	student := env.seedUser(t, "Ada", "ada@example.com", "secret123", model.RoleStudent)
	admin := env.seedUser(t, "Grace", "grace@example.com", "secret123", model.RoleAdmin)

	complaint, err := env.complaints.Create(ctx, identityOf(student), &model.CreateComplaintRequest{
		Category: "Facilities", Description: "details",
	})
	require.NoError(t, err)
	id := complaint.ID.Hex()

	t.Run("any transition is legal", func(t *testing.T) {
		for _, status := range []model.Status{
			model.StatusResolved,
			model.StatusInProgress,
			model.StatusPending,
			model.StatusResolved,
		} {
			updated, err := env.complaints.UpdateStatus(ctx, identityOf(admin), id, status.String())
			require.NoError(t, err)
			assert.Equal(t, status, updated.Status)
			require.NotNil(t, updated.User)
			assert.Equal(t, "ada@example.com", updated.User.Email)
		}
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		_, err := env.complaints.UpdateStatus(ctx, identityOf(admin), id, "Escalated")
		require.Error(t, err)
		assert.True(t, apperrors.IsCode(err, apperrors.ErrInvalidStatus.Code))
	})

	t.Run("student cannot update", func(t *testing.T) {
		_, err := env.complaints.UpdateStatus(ctx, identityOf(student), id, model.StatusResolved.String())
		require.Error(t, err)
		assert.True(t, apperrors.IsCode(err, apperrors.ErrForbidden.Code))
	})

	t.Run("unknown complaint", func(t *testing.T) {
		_, err := env.complaints.UpdateStatus(ctx, identityOf(admin), "64b000000000000000000000", model.StatusResolved.String())
		require.Error(t, err)
		assert.True(t, apperrors.IsCode(err, apperrors.ErrComplaintNotFound.Code))
	})
}

func TestComplaintSuperAdminSeesAll(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	student := env.seedUser(t, "Ada", "ada@example.com", "secret123", model.RoleStudent)
	super := env.seedUser(t, "Root", "root@example.com", "secret123", model.RoleSuperAdmin)

	_, err := env.complaints.Create(ctx, identityOf(student), &model.CreateComplaintRequest{
		Category: "Hostel", Description: "details",
	})
	require.NoError(t, err)

	list, err := env.complaints.List(ctx, identityOf(super))
	require.NoError(t, err)
	assert.Equal(t, int64(1), list.TotalCount)
}
