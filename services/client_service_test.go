package services

import (
	"testing"

	"resort-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterBootstrapsRoles(t *testing.T) {
	db := newTestDB(t)
	svc := NewClientService(db, DefaultRolePolicy())

	first, err := svc.Register(RegisterInput{
		FirstName: "Ada", Email: "Ada@Example.com", Password: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, first.Role)
	assert.Equal(t, "ada@example.com", first.Email)
	assert.NotEqual(t, "secret1", first.Password)

	second, err := svc.Register(RegisterInput{
		FirstName: "Bob", Email: "bob@example.com", Password: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, second.Role)

	staffer, err := svc.Register(RegisterInput{
		FirstName: "Cleo", Email: "cleo@staff.com", Password: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleStaff, staffer.Role)

	boss, err := svc.Register(RegisterInput{
		FirstName: "Dan", Email: "dan@admin.com", Password: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, boss.Role)
}

func TestRegisterValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewClientService(db, DefaultRolePolicy())

	_, err := svc.Register(RegisterInput{FirstName: "Ada", Email: "not-an-email", Password: "secret1"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Register(RegisterInput{FirstName: "Ada", Email: "ada@example.com", Password: "short"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Register(RegisterInput{FirstName: "  ", Email: "ada@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewClientService(db, DefaultRolePolicy())

	_, err := svc.Register(RegisterInput{FirstName: "Ada", Email: "ada@example.com", Password: "secret1"})
	require.NoError(t, err)

	// Case-insensitive: the email is normalized before the check.
	_, err = svc.Register(RegisterInput{FirstName: "Imp", Email: "ADA@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestAuthenticate(t *testing.T) {
	db := newTestDB(t)
	svc := NewClientService(db, DefaultRolePolicy())

	registered, err := svc.Register(RegisterInput{
		FirstName: "Ada", Email: "ada@example.com", Password: "secret1",
	})
	require.NoError(t, err)

	client, err := svc.Authenticate("ada@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, client.ID)

	_, err = svc.Authenticate("ada@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredential)

	_, err = svc.Authenticate("nobody@example.com", "secret1")
	assert.ErrorIs(t, err, ErrInvalidCredential)

	_, err = svc.Authenticate("", "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateClientStripsProtectedFields(t *testing.T) {
	db := newTestDB(t)
	svc := NewClientService(db, DefaultRolePolicy())

	// Occupy the first-account slot so Ada registers as a plain user.
	createTestClient(t, db, "boss@admin.com", models.RoleAdmin)

	client, err := svc.Register(RegisterInput{
		FirstName: "Ada", Email: "ada@example.com", Password: "secret1",
	})
	require.NoError(t, err)
	require.Equal(t, models.RoleUser, client.Role)
	originalHash := client.Password

	updated, err := svc.UpdateClient(client.ID, map[string]interface{}{
		"first_name": "Adeline",
		"phone":      "555-0101",
		"role":       string(models.RoleAdmin),
		"password":   "injected",
	})
	require.NoError(t, err)
	assert.Equal(t, "Adeline", updated.FirstName)
	assert.Equal(t, "555-0101", updated.Phone)
	assert.Equal(t, models.RoleUser, updated.Role)
	assert.Equal(t, originalHash, updated.Password)
}

func TestListClients(t *testing.T) {
	db := newTestDB(t)
	svc := NewClientService(db, DefaultRolePolicy())
	createTestClient(t, db, "boss@admin.com", models.RoleAdmin)
	createTestClient(t, db, "desk@staff.com", models.RoleStaff)
	createTestClient(t, db, "guest@example.com", models.RoleUser)

	staff, total, err := svc.ListClients(ClientFilter{Role: string(models.RoleStaff)}, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, staff, 1)
	assert.Equal(t, "desk@staff.com", staff[0].Email)

	matched, total, err := svc.ListClients(ClientFilter{Search: "guest"}, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Len(t, matched, 1)
}

func TestDeleteClient(t *testing.T) {
	db := newTestDB(t)
	svc := NewClientService(db, DefaultRolePolicy())
	client := createTestClient(t, db, "guest@example.com", models.RoleUser)

	require.NoError(t, svc.DeleteClient(client.ID))
	assert.ErrorIs(t, svc.DeleteClient(client.ID), ErrNotFound)

	_, err := svc.GetClient(client.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
