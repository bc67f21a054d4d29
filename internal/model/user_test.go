package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserPassword(t *testing.T) {
	user := &User{Email: "admin@qryptogenia.com"}
	require.NoError(t, user.SetPassword("admin123"))

	assert.NotEqual(t, "admin123", user.Password, "password is stored hashed")
	assert.True(t, user.CheckPassword("admin123"))
	assert.False(t, user.CheckPassword("wrong"))
}

func TestUserPermissions(t *testing.T) {
	user := &User{
		Roles: []Role{
			{
				Name: RoleClient,
				Permissions: []Permission{
					{Code: "qr:create"},
					{Code: "qr:read"},
				},
			},
			{
				Name: "REPORTING",
				Permissions: []Permission{
					{Code: "qr:read"},
					{Code: "qr:statistics"},
				},
			},
		},
	}

	assert.True(t, user.HasPermission("qr:create"))
	assert.True(t, user.HasPermission("qr:statistics"))
	assert.False(t, user.HasPermission("user:delete"))

	assert.Equal(t, []string{RoleClient, "REPORTING"}, user.GetRoleNames())

	// Codes shared across roles appear once
	assert.ElementsMatch(t, []string{"qr:create", "qr:read", "qr:statistics"}, user.GetPermissionCodes())
}

func TestUserToResponseHidesPassword(t *testing.T) {
	user := &User{Email: "client@example.com", FirstName: "Daniel"}
	require.NoError(t, user.SetPassword("User123."))

	resp := user.ToResponse()
	assert.Equal(t, "client@example.com", resp.Email)
	assert.Equal(t, "Daniel", resp.FirstName)
}

func TestDefaultCatalogConsistency(t *testing.T) {
	codes := make(map[string]bool)
	for _, p := range DefaultPermissions {
		assert.False(t, codes[p.Code], "duplicate code %s in catalog", p.Code)
		codes[p.Code] = true
	}

	// Every client permission code exists in the catalog
	for _, c := range ClientPermissionCodes {
		assert.True(t, codes[c], "client code %s missing from catalog", c)
	}
}
