package repository

import (
	"qryptogenia-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PermissionRepository interface {
	FindByCode(code string) (*model.Permission, error)
	FindByCodes(codes []string) ([]model.Permission, error)
	FindAll() ([]model.Permission, error)
	UpsertByCode(permission *model.Permission) error
	AssignToRole(roleID, permissionID uuid.UUID) error
}

type permissionRepo struct {
	db *gorm.DB
}

func NewPermissionRepo(db *gorm.DB) PermissionRepository {
	return &permissionRepo{db}
}

func (r *permissionRepo) FindByCode(code string) (*model.Permission, error) {
	var permission model.Permission
	if err := r.db.Where("code = ?", code).First(&permission).Error; err != nil {
		return nil, err
	}
	return &permission, nil
}

func (r *permissionRepo) FindByCodes(codes []string) ([]model.Permission, error) {
	var permissions []model.Permission
	if err := r.db.Where("code IN ?", codes).Find(&permissions).Error; err != nil {
		return nil, err
	}
	return permissions, nil
}

func (r *permissionRepo) FindAll() ([]model.Permission, error) {
	var permissions []model.Permission
	if err := r.db.Find(&permissions).Error; err != nil {
		return nil, err
	}
	return permissions, nil
}

// UpsertByCode finds a permission by its unique code or creates it.
// An existing row is left untouched.
func (r *permissionRepo) UpsertByCode(permission *model.Permission) error {
	return r.db.Where("code = ?", permission.Code).FirstOrCreate(permission).Error
}

// AssignToRole grants a permission to a role. Assigning an already-assigned
// pair is a silent no-op: the insert conflicts on the composite key and is
// skipped instead of failing.
func (r *permissionRepo) AssignToRole(roleID, permissionID uuid.UUID) error {
	rp := model.RolePermission{RoleID: roleID, PermissionID: permissionID}
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&rp).Error
}
