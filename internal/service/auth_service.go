package service

import (
	"errors"

	"qryptogenia-api/internal/model"
	"qryptogenia-api/internal/repository"

	"qryptogenia-api/pkg/jwt"
)

type AuthService interface {
	Login(req *LoginRequest) (*LoginResponse, error)
	ValidateToken(tokenString string) (*TokenValidationResponse, error)
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token       string             `json:"token"`
	User        model.UserResponse `json:"user"`
	Roles       []string           `json:"roles"`
	Permissions []string           `json:"permissions"` // Flat permission codes for easy checking
}

type TokenValidationResponse struct {
	User        model.UserResponse `json:"user"`
	Roles       []string           `json:"roles"`
	Permissions []string           `json:"permissions"`
}

type authService struct {
	userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

func (s *authService) Login(req *LoginRequest) (*LoginResponse, error) {
	// 1. Validate request
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	// 2. Find user by email
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	// 3. Check if user is active
	if !user.IsActive {
		return nil, ErrUserInactive
	}

	// 4. Verify password
	if !user.CheckPassword(req.Password) {
		return nil, ErrInvalidCredentials
	}

	// 5. Generate JWT token with roles and permission codes
	token, err := jwt.GenerateToken(user.ID, user.Email, user.GetRoleNames(), user.GetPermissionCodes())
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	return &LoginResponse{
		Token:       token,
		User:        user.ToResponse(),
		Roles:       user.GetRoleNames(),
		Permissions: user.GetPermissionCodes(),
	}, nil
}

func (s *authService) ValidateToken(tokenString string) (*TokenValidationResponse, error) {
	// 1. Validate JWT token
	claims, err := jwt.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	// 2. Find user by ID from token claims
	user, err := s.userRepo.FindByID(claims.UserID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	// 3. Check if user is still active
	if !user.IsActive {
		return nil, ErrUserInactive
	}

	return &TokenValidationResponse{
		User:        user.ToResponse(),
		Roles:       user.GetRoleNames(),
		Permissions: user.GetPermissionCodes(),
	}, nil
}
