package domain

import (
	"fmt"
	"strings"
)

type Role string

const (
	RoleOwner   Role = "owner"
	RoleAdmin   Role = "admin"
	RoleVisitor Role = "visitor"
)

// DefaultRole is assigned to every new session.
const DefaultRole = RoleVisitor

// ParseRole accepts a role name case-insensitively.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleOwner:
		return RoleOwner, nil
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleVisitor:
		return RoleVisitor, nil
	}
	return "", fmt.Errorf("%w: unknown role %q", ErrValidation, s)
}

// HasPermission reports whether r is one of required. Owner has every permission.
func (r Role) HasPermission(required ...Role) bool {
	if r == RoleOwner {
		return true
	}
	for _, want := range required {
		if r == want {
			return true
		}
	}
	return false
}

// CanManageStore gates product creation and chat settings.
func (r Role) CanManageStore() bool {
	return r.HasPermission(RoleAdmin)
}
