package seed

import (
	"log"
	"os"

	"qryptogenia-api/internal/model"
	"qryptogenia-api/internal/repository"
)

// DefaultAdminEmail is the account created for the built-in ADMIN role.
const DefaultAdminEmail = "admin@qryptogenia.com"

// Seeder provisions the built-in roles, the permission catalog and the
// default admin account. Every step is create-if-absent, so running it any
// number of times changes nothing after the first run.
type Seeder struct {
	roleRepo repository.RoleRepository
	permRepo repository.PermissionRepository
	userRepo repository.UserRepository
}

func New(roleRepo repository.RoleRepository, permRepo repository.PermissionRepository, userRepo repository.UserRepository) *Seeder {
	return &Seeder{
		roleRepo: roleRepo,
		permRepo: permRepo,
		userRepo: userRepo,
	}
}

func (s *Seeder) Run() error {
	// 1. Upsert built-in roles
	roles := make(map[string]*model.Role)
	for _, defaultRole := range model.DefaultRoles {
		role := defaultRole
		if err := s.roleRepo.UpsertByName(&role); err != nil {
			return err
		}
		roles[role.Name] = &role
	}

	// 2. Upsert the permission catalog
	for _, defaultPermission := range model.DefaultPermissions {
		permission := defaultPermission
		if err := s.permRepo.UpsertByCode(&permission); err != nil {
			return err
		}
	}

	// 3. ADMIN gets every permission
	allPermissions, err := s.permRepo.FindAll()
	if err != nil {
		return err
	}
	adminRole := roles[model.RoleAdmin]
	for _, p := range allPermissions {
		if err := s.permRepo.AssignToRole(adminRole.ID, p.ID); err != nil {
			return err
		}
	}

	// 4. CLIENT gets the limited subset
	clientPermissions, err := s.permRepo.FindByCodes(model.ClientPermissionCodes)
	if err != nil {
		return err
	}
	clientRole := roles[model.RoleClient]
	for _, p := range clientPermissions {
		if err := s.permRepo.AssignToRole(clientRole.ID, p.ID); err != nil {
			return err
		}
	}

	// 5. Upsert the default admin account and assign it ADMIN
	admin := &model.User{
		Email:     DefaultAdminEmail,
		FirstName: "Admin",
		LastName:  "QRyptogenia",
		IsActive:  true,
	}
	if err := admin.SetPassword(defaultAdminPassword()); err != nil {
		return err
	}
	if err := s.userRepo.UpsertByEmail(admin); err != nil {
		return err
	}
	if err := s.userRepo.AssignRole(admin.ID, adminRole.ID); err != nil {
		return err
	}

	log.Printf("Seed completed: %d roles, %d permissions, admin user %s", len(roles), len(allPermissions), admin.Email)
	return nil
}

func defaultAdminPassword() string {
	if pw := os.Getenv("SEED_ADMIN_PASSWORD"); pw != "" {
		return pw
	}
	return "admin123"
}
