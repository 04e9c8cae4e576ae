// Package biz implements the business logic of the complaint center.
package biz

import (
	"github.com/kart-io/complaint-center/internal/model"
	"github.com/kart-io/complaint-center/pkg/authz/rbac"
)

// Resources and actions used by the access policy.
const (
	ResourceComplaints    = "complaints"
	ResourceNotifications = "notifications"
	ResourceUsers         = "users"

	ActionCreate       = "create"
	ActionList         = "list"
	ActionListAny      = "list_any"
	ActionUpdateStatus = "update_status"
	ActionDelete       = "delete"
)

// Identity is the authenticated caller, extracted from verified token claims.
type Identity struct {
	UserID string
	Name   string
	Role   model.Role
}

// NewPolicy builds the role capability table.
//
// Students file and see their own complaints and read notifications.
// Admins see every complaint, drive statuses, and broadcast notifications.
// The superadmin additionally manages accounts.
func NewPolicy() *rbac.Policy {
	p := rbac.New()

	p.AddRole(model.RoleStudent.String(),
		rbac.NewPermission(ResourceComplaints, ActionCreate),
		rbac.NewPermission(ResourceComplaints, ActionList),
		rbac.NewPermission(ResourceNotifications, ActionList),
	)

	adminPerms := []rbac.Permission{
		rbac.NewPermission(ResourceComplaints, ActionListAny),
		rbac.NewPermission(ResourceComplaints, ActionUpdateStatus),
		rbac.NewPermission(ResourceNotifications, ActionList),
		rbac.NewPermission(ResourceNotifications, ActionCreate),
		rbac.NewPermission(ResourceNotifications, ActionDelete),
	}
	p.AddRole(model.RoleAdmin.String(), adminPerms...)

	superPerms := append([]rbac.Permission{
		rbac.NewPermission(ResourceUsers, "*"),
	}, adminPerms...)
	p.AddRole(model.RoleSuperAdmin.String(), superPerms...)

	return p
}
