// Package rbac provides role-based access control for the complaint-center
// service.
//
// Roles carry a fixed set of permissions over (resource, action) pairs.
// Unlike subject-assignment RBAC systems, the role is resolved from the
// caller's authentication claims and passed in directly, so there is no
// subject-to-role lookup.
//
// Usage:
//
//	policy := rbac.New()
//	policy.AddRole("admin",
//	    rbac.NewPermission("complaints", "list_any"),
//	    rbac.NewPermission("complaints", "update_status"),
//	)
//
//	allowed := policy.Allowed("admin", "complaints", "update_status")
package rbac

import (
	"sync"
)

// Permission represents a permission for a resource and action.
// A "*" value matches any resource or action.
type Permission struct {
	Resource string
	Action   string
}

// NewPermission creates a permission for the given resource and action.
func NewPermission(resource, action string) Permission {
	return Permission{Resource: resource, Action: action}
}

// Matches reports whether the permission covers the resource and action.
func (p Permission) Matches(resource, action string) bool {
	return p.matchesResource(resource) && p.matchesAction(action)
}

func (p Permission) matchesResource(resource string) bool {
	if p.Resource == "*" {
		return true
	}
	return p.Resource == resource
}

func (p Permission) matchesAction(action string) bool {
	if p.Action == "*" {
		return true
	}
	return p.Action == action
}

// Policy is a role-keyed permission table.
// The zero value is unusable; use New.
type Policy struct {
	mu    sync.RWMutex
	roles map[string][]Permission
}

// New creates an empty Policy.
func New() *Policy {
	return &Policy{
		roles: make(map[string][]Permission),
	}
}

// AddRole defines a role with the given permissions.
// Calling AddRole again for the same role replaces its permissions.
func (p *Policy) AddRole(role string, permissions ...Permission) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.roles[role] = permissions
}

// Allowed reports whether the role may perform the action on the resource.
// Unknown roles have no permissions.
func (p *Policy) Allowed(role, resource, action string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	for _, perm := range p.roles[role] {
		if perm.Matches(resource, action) {
			return true
		}
	}
	return false
}

// Roles returns the names of all defined roles.
func (p *Policy) Roles() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	names := make([]string, 0, len(p.roles))
	for name := range p.roles {
		names = append(names, name)
	}
	return names
}
