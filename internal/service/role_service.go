package service

import (
	"errors"

	"qryptogenia-api/internal/model"
	"qryptogenia-api/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RoleService interface {
	CreateRole(req *CreateRoleRequest) (*model.Role, error)
	UpdateRole(req *UpdateRoleRequest) (*model.Role, error)
	GetAllRoles() ([]model.Role, error)
}

type CreateRoleRequest struct {
	Name        string `json:"name" validate:"required,min=3"`
	Description string `json:"description"`
	IsSystem    bool   `json:"is_system"`
}

type UpdateRoleRequest struct {
	ID          uuid.UUID `json:"id" validate:"uuid_required"`
	Name        *string   `json:"name,omitempty" validate:"omitempty,min=3"`
	Description *string   `json:"description,omitempty"`
	IsSystem    *bool     `json:"is_system,omitempty"`
}

type roleService struct {
	roleRepo repository.RoleRepository
}

func NewRoleService(roleRepo repository.RoleRepository) RoleService {
	return &roleService{roleRepo: roleRepo}
}

func (s *roleService) CreateRole(req *CreateRoleRequest) (*model.Role, error) {
	// 1. Validate request
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	// 2. Check if role name already exists. This is a best-effort pre-check
	// for a domain-specific error message; the unique index is the
	// authoritative guard against concurrent creates.
	if existing, _ := s.roleRepo.FindByName(req.Name); existing != nil {
		return nil, ErrRoleExists
	}

	// 3. Create role
	role := &model.Role{
		Name:        req.Name,
		Description: req.Description,
		IsSystem:    req.IsSystem,
	}
	if err := s.roleRepo.Create(role); err != nil {
		// Lost the race against a concurrent create with the same name
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrRoleExists
		}
		return nil, err
	}

	return role, nil
}

func (s *roleService) UpdateRole(req *UpdateRoleRequest) (*model.Role, error) {
	// 1. Validate request
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	// 2. Find existing role
	role, err := s.roleRepo.FindByID(req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoleNotFound
		}
		return nil, err
	}

	// 3. Check if name is being changed to one that already exists
	if req.Name != nil && *req.Name != role.Name {
		if existing, _ := s.roleRepo.FindByName(*req.Name); existing != nil {
			return nil, ErrRoleExists
		}
	}

	// 4. Apply only the supplied fields, omitted fields keep prior values
	if req.Name != nil {
		role.Name = *req.Name
	}
	if req.Description != nil {
		role.Description = *req.Description
	}
	if req.IsSystem != nil {
		role.IsSystem = *req.IsSystem
	}

	// 5. Save to database
	if err := s.roleRepo.Update(role); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrRoleExists
		}
		return nil, err
	}

	return role, nil
}

func (s *roleService) GetAllRoles() ([]model.Role, error) {
	// Storage failures propagate as errors, an empty list is a valid result
	return s.roleRepo.FindAll()
}
