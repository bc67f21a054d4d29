package repository

import (
	"fmt"
	"os"
	"testing"
	"time"

	"qryptogenia-api/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testCounter int64 = time.Now().UnixNano()

func uniqueName(prefix string) string {
	testCounter++
	return fmt.Sprintf("%s-%d", prefix, testCounter)
}

// getTestDB connects to the database named by TEST_DATABASE_URL. Tests skip
// when no database is reachable.
func getTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping repository tests")
	}

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Skipf("No database connection available: %v", err)
	}

	require.NoError(t, model.AutoMigrate(db))
	return db
}

func TestRoleRepo_CreateDuplicateName(t *testing.T) {
	db := getTestDB(t)
	repo := NewRoleRepo(db)

	name := uniqueName("ADMIN")
	role := &model.Role{Name: name, IsSystem: true}
	require.NoError(t, repo.Create(role))
	defer db.Delete(&model.Role{}, "id = ?", role.ID)

	// The unique index is the authoritative guard
	err := repo.Create(&model.Role{Name: name})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	var count int64
	require.NoError(t, db.Model(&model.Role{}).Where("name = ?", name).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestRoleRepo_UpsertByName(t *testing.T) {
	db := getTestDB(t)
	repo := NewRoleRepo(db)

	name := uniqueName("CLIENT")
	first := &model.Role{Name: name, Description: "original"}
	require.NoError(t, repo.UpsertByName(first))
	defer db.Delete(&model.Role{}, "id = ?", first.ID)

	// Second upsert returns the existing row and overwrites nothing
	second := &model.Role{Name: name, Description: "changed"}
	require.NoError(t, repo.UpsertByName(second))
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "original", second.Description)

	var count int64
	require.NoError(t, db.Model(&model.Role{}).Where("name = ?", name).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestPermissionRepo_UpsertByCode(t *testing.T) {
	db := getTestDB(t)
	repo := NewPermissionRepo(db)

	code := uniqueName("qr:create")
	first := &model.Permission{Code: code, Name: "Create QR", Category: "QR_MANAGEMENT"}
	require.NoError(t, repo.UpsertByCode(first))
	defer db.Delete(&model.Permission{}, "id = ?", first.ID)

	second := &model.Permission{Code: code, Name: "Renamed"}
	require.NoError(t, repo.UpsertByCode(second))
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Create QR", second.Name)

	var count int64
	require.NoError(t, db.Model(&model.Permission{}).Where("code = ?", code).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestPermissionRepo_AssignToRoleIdempotent(t *testing.T) {
	db := getTestDB(t)
	roleRepo := NewRoleRepo(db)
	permRepo := NewPermissionRepo(db)

	role := &model.Role{Name: uniqueName("EDITOR")}
	require.NoError(t, roleRepo.Create(role))
	defer db.Delete(&model.Role{}, "id = ?", role.ID)

	perm := &model.Permission{Code: uniqueName("qr:update"), Name: "Update QR"}
	require.NoError(t, permRepo.UpsertByCode(perm))
	defer db.Delete(&model.Permission{}, "id = ?", perm.ID)
	defer db.Delete(&model.RolePermission{}, "role_id = ?", role.ID)

	// Assigning the same pair twice leaves exactly one row
	require.NoError(t, permRepo.AssignToRole(role.ID, perm.ID))
	require.NoError(t, permRepo.AssignToRole(role.ID, perm.ID))

	var count int64
	require.NoError(t, db.Model(&model.RolePermission{}).Where("role_id = ?", role.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	// And the role preloads it exactly once
	loaded, err := roleRepo.FindByID(role.ID)
	require.NoError(t, err)
	assert.Len(t, loaded.Permissions, 1)
}

func TestUserRepo_AssignRoleIdempotent(t *testing.T) {
	db := getTestDB(t)
	roleRepo := NewRoleRepo(db)
	userRepo := NewUserRepo(db)

	role := &model.Role{Name: uniqueName("CLIENT")}
	require.NoError(t, roleRepo.Create(role))
	defer db.Delete(&model.Role{}, "id = ?", role.ID)

	user := &model.User{Email: uniqueName("user") + "@example.com", Password: "x", IsActive: true}
	require.NoError(t, userRepo.Create(user))
	defer db.Delete(&model.User{}, "id = ?", user.ID)
	defer db.Delete(&model.UserRole{}, "user_id = ?", user.ID)

	require.NoError(t, userRepo.AssignRole(user.ID, role.ID))
	require.NoError(t, userRepo.AssignRole(user.ID, role.ID))

	var count int64
	require.NoError(t, db.Model(&model.UserRole{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
