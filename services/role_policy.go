package services

import (
	"strings"

	"resort-backend/models"
)

// RolePolicy decides which role a freshly registered client receives.
// Kept as a value object so deployments can swap the bootstrap rules
// without touching registration logic.
type RolePolicy struct {
	AdminDomain string
	StaffDomain string
}

// DefaultRolePolicy matches the hosted deployment: the very first client
// becomes admin, as does anyone on the admin mail domain.
func DefaultRolePolicy() RolePolicy {
	return RolePolicy{
		AdminDomain: "@admin.com",
		StaffDomain: "@staff.com",
	}
}

// Assign picks the role for a new registration. isFirst is true when no
// client exists yet.
func (p RolePolicy) Assign(email string, isFirst bool) models.Role {
	email = strings.ToLower(email)
	switch {
	case isFirst, strings.HasSuffix(email, p.AdminDomain):
		return models.RoleAdmin
	case strings.HasSuffix(email, p.StaffDomain):
		return models.RoleStaff
	default:
		return models.RoleUser
	}
}
