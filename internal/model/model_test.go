package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleStudent.Valid())
	assert.True(t, RoleAdmin.Valid())
	assert.True(t, RoleSuperAdmin.Valid())
	assert.False(t, Role("moderator").Valid())
	assert.False(t, Role("").Valid())
	// Roles are case sensitive.
	assert.False(t, Role("Student").Valid())
}

func TestRoleIsAdmin(t *testing.T) {
	assert.False(t, RoleStudent.IsAdmin())
	assert.True(t, RoleAdmin.IsAdmin())
	assert.True(t, RoleSuperAdmin.IsAdmin())
}

func TestStatusValid(t *testing.T) {
	assert.True(t, StatusPending.Valid())
	assert.True(t, StatusInProgress.Valid())
	assert.True(t, StatusResolved.Valid())
	assert.False(t, Status("Escalated").Valid())
	assert.False(t, Status("pending").Valid())
	assert.False(t, Status("").Valid())
}
