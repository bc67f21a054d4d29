package repository

import (
	"qryptogenia-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RoleRepository interface {
	Create(role *model.Role) error
	FindByID(id uuid.UUID) (*model.Role, error)
	FindByName(name string) (*model.Role, error)
	FindAll() ([]model.Role, error)
	Update(role *model.Role) error
	UpsertByName(role *model.Role) error
}

type roleRepo struct {
	db *gorm.DB
}

func NewRoleRepo(db *gorm.DB) RoleRepository {
	return &roleRepo{db: db}
}

func (r *roleRepo) Create(role *model.Role) error {
	return r.db.Create(role).Error
}

func (r *roleRepo) FindByID(id uuid.UUID) (*model.Role, error) {
	var role model.Role
	err := r.db.Preload("Permissions").First(&role, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *roleRepo) FindByName(name string) (*model.Role, error) {
	var role model.Role
	err := r.db.Preload("Permissions").Where("name = ?", name).First(&role).Error
	if err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *roleRepo) FindAll() ([]model.Role, error) {
	var roles []model.Role
	err := r.db.Preload("Permissions").Find(&roles).Error
	return roles, err
}

func (r *roleRepo) Update(role *model.Role) error {
	return r.db.Save(role).Error
}

// UpsertByName finds a role by its unique name or creates it with the given
// fields. An existing row is returned as-is, nothing is overwritten, so the
// seed can rerun any number of times.
func (r *roleRepo) UpsertByName(role *model.Role) error {
	return r.db.Where("name = ?", role.Name).FirstOrCreate(role).Error
}
