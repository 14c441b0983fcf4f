package services

import (
	"testing"

	"resort-backend/models"

	"github.com/stretchr/testify/assert"
)

func TestRolePolicyAssign(t *testing.T) {
	policy := DefaultRolePolicy()

	// The first client ever becomes admin regardless of domain.
	assert.Equal(t, models.RoleAdmin, policy.Assign("anyone@example.com", true))

	assert.Equal(t, models.RoleAdmin, policy.Assign("boss@admin.com", false))
	assert.Equal(t, models.RoleStaff, policy.Assign("desk@staff.com", false))
	assert.Equal(t, models.RoleUser, policy.Assign("guest@example.com", false))

	// Domain matching is case-insensitive.
	assert.Equal(t, models.RoleAdmin, policy.Assign("Boss@Admin.com", false))
}

func TestRolePolicySwappable(t *testing.T) {
	policy := RolePolicy{AdminDomain: "@hq.example", StaffDomain: "@crew.example"}

	assert.Equal(t, models.RoleAdmin, policy.Assign("x@hq.example", false))
	assert.Equal(t, models.RoleStaff, policy.Assign("x@crew.example", false))
	assert.Equal(t, models.RoleUser, policy.Assign("x@admin.com", false))
}
