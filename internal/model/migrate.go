package model

import "gorm.io/gorm"

// AutoMigrate creates the schema. The join models are registered first so the
// many2many tables carry the composite primary keys instead of GORM's default
// join rows.
func AutoMigrate(db *gorm.DB) error {
	if err := db.SetupJoinTable(&Role{}, "Permissions", &RolePermission{}); err != nil {
		return err
	}
	if err := db.SetupJoinTable(&User{}, "Roles", &UserRole{}); err != nil {
		return err
	}
	return db.AutoMigrate(&Role{}, &Permission{}, &User{}, &RolePermission{}, &UserRole{})
}
