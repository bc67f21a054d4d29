package service

import (
	"errors"

	"qryptogenia-api/internal/model"
	"qryptogenia-api/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserService interface {
	CreateUser(req *CreateUserRequest) (*model.User, error)
	AssignRoles(userID uuid.UUID, roleIDs []uuid.UUID) (*model.User, error)
	GetAllUsers() ([]model.UserResponse, error)
	GetUserByID(id uuid.UUID) (*model.UserResponse, error)
}

type CreateUserRequest struct {
	Email     string      `json:"email" validate:"required,email"`
	Password  string      `json:"password" validate:"required,min=6"`
	FirstName string      `json:"first_name"`
	LastName  string      `json:"last_name"`
	RoleIDs   []uuid.UUID `json:"role_ids"`
}

type userService struct {
	userRepo repository.UserRepository
	roleRepo repository.RoleRepository
}

func NewUserService(userRepo repository.UserRepository, roleRepo repository.RoleRepository) UserService {
	return &userService{
		userRepo: userRepo,
		roleRepo: roleRepo,
	}
}

func (s *userService) CreateUser(req *CreateUserRequest) (*model.User, error) {
	// 1. Validate request
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	// 2. Check if email already exists
	if existing, _ := s.userRepo.FindByEmail(req.Email); existing != nil {
		return nil, ErrEmailExists
	}

	// 3. Validate all requested roles exist before creating anything
	for _, roleID := range req.RoleIDs {
		if _, err := s.roleRepo.FindByID(roleID); err != nil {
			return nil, ErrRoleNotFound
		}
	}

	// 4. Create user
	user := &model.User{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		IsActive:  true,
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, errors.New("failed to hash password")
	}
	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailExists
		}
		return nil, err
	}

	// 5. Assign roles
	for _, roleID := range req.RoleIDs {
		if err := s.userRepo.AssignRole(user.ID, roleID); err != nil {
			return nil, err
		}
	}

	// 6. Reload with roles and permissions
	return s.userRepo.FindByID(user.ID)
}

// AssignRoles grants the given roles to a user. Already-assigned roles are
// silently kept, existing assignments are never removed.
func (s *userService) AssignRoles(userID uuid.UUID, roleIDs []uuid.UUID) (*model.User, error) {
	// 1. Find user
	if _, err := s.userRepo.FindByID(userID); err != nil {
		return nil, ErrUserNotFound
	}

	// 2. Validate roles
	for _, roleID := range roleIDs {
		if _, err := s.roleRepo.FindByID(roleID); err != nil {
			return nil, ErrRoleNotFound
		}
	}

	// 3. Assign
	for _, roleID := range roleIDs {
		if err := s.userRepo.AssignRole(userID, roleID); err != nil {
			return nil, err
		}
	}

	// 4. Reload
	return s.userRepo.FindByID(userID)
}

func (s *userService) GetAllUsers() ([]model.UserResponse, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, err
	}

	responses := make([]model.UserResponse, len(users))
	for i, user := range users {
		responses[i] = user.ToResponse()
	}
	return responses, nil
}

func (s *userService) GetUserByID(id uuid.UUID) (*model.UserResponse, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, ErrUserNotFound
	}
	response := user.ToResponse()
	return &response, nil
}
