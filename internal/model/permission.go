package model

// Permission represents an atomic capability that can be granted to roles
type Permission struct {
	BaseModel
	Code     string `gorm:"type:varchar(50);uniqueIndex;not null" json:"code"` // e.g., "qr:create"
	Name     string `gorm:"type:varchar(100)" json:"name"`                     // e.g., "Create QR"
	Category string `gorm:"type:varchar(50)" json:"category"`                  // e.g., "QR_MANAGEMENT"
}

// Default permission catalog for the platform
var DefaultPermissions = []Permission{
	// QR management
	{Code: "qr:create", Name: "Create QR", Category: "QR_MANAGEMENT"},
	{Code: "qr:read", Name: "View QR", Category: "QR_MANAGEMENT"},
	{Code: "qr:update", Name: "Update QR", Category: "QR_MANAGEMENT"},
	{Code: "qr:delete", Name: "Delete QR", Category: "QR_MANAGEMENT"},
	{Code: "qr:statistics", Name: "View QR statistics", Category: "QR_ANALYTICS"},
	// User management (admin only)
	{Code: "user:create", Name: "Create user", Category: "USER_MANAGEMENT"},
	{Code: "user:read", Name: "View user", Category: "USER_MANAGEMENT"},
	{Code: "user:update", Name: "Update user", Category: "USER_MANAGEMENT"},
	{Code: "user:delete", Name: "Delete user", Category: "USER_MANAGEMENT"},
	// Templates and designs
	{Code: "design:create", Name: "Create design", Category: "DESIGN_MANAGEMENT"},
	{Code: "design:read", Name: "View design", Category: "DESIGN_MANAGEMENT"},
	{Code: "design:update", Name: "Update design", Category: "DESIGN_MANAGEMENT"},
	{Code: "design:delete", Name: "Delete design", Category: "DESIGN_MANAGEMENT"},
	// Billing and subscriptions
	{Code: "billing:read", Name: "View invoices", Category: "BILLING"},
	{Code: "subscription:manage", Name: "Manage subscription", Category: "BILLING"},
}

// ClientPermissionCodes is the subset granted to the CLIENT role
var ClientPermissionCodes = []string{
	"qr:create", "qr:read", "qr:update", "qr:delete", "qr:statistics",
	"design:create", "design:read", "design:update", "design:delete",
	"billing:read", "subscription:manage",
}
