package model

import "github.com/google/uuid"

// Role represents a named bundle of permissions assignable to users
type Role struct {
	BaseModel
	Name        string       `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"` // ADMIN, CLIENT
	Description string       `gorm:"type:text" json:"description"`
	IsSystem    bool         `gorm:"default:false" json:"is_system"` // built-in roles created by seed, not deletable
	Permissions []Permission `gorm:"many2many:role_permissions;" json:"permissions,omitempty"`
}

// RolePermission is the join row granting a permission to a role.
// The composite primary key doubles as the unique (role_id, permission_id) constraint.
type RolePermission struct {
	RoleID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"role_id"`
	PermissionID uuid.UUID `gorm:"type:uuid;primaryKey" json:"permission_id"`
}

func (RolePermission) TableName() string {
	return "role_permissions"
}

// Role names as constants
const (
	RoleAdmin  = "ADMIN"
	RoleClient = "CLIENT"
)

// DefaultRoles defines the built-in roles created by the seed
var DefaultRoles = []Role{
	{
		Name:        RoleAdmin,
		Description: "Administrator with full system access",
		IsSystem:    true,
	},
	{
		Name:        RoleClient,
		Description: "Standard client user",
		IsSystem:    true,
	},
}

// HasPermission checks if the role grants a specific permission code
func (r *Role) HasPermission(code string) bool {
	for _, p := range r.Permissions {
		if p.Code == code {
			return true
		}
	}
	return false
}
