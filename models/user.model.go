package models

import (
	"gorm.io/gorm"
)

// Valid role values for User.Role.
const (
	RoleUser    = "USER"
	RoleAdmin   = "ADMIN"
	RoleManager = "MANAGER"
	RoleCashier = "CASHIER"
)

type User struct {
	gorm.Model
	Username string  `gorm:"unique;not null" json:"username"`
	Email    *string `gorm:"uniqueIndex" json:"email,omitempty"`
	Password string  `gorm:"not null" json:"-"`
	Role     string  `gorm:"default:'USER'" json:"role"` // USER, ADMIN, MANAGER, CASHIER

	// CreatedByID tracks the admin who created this account. It is a
	// back-reference, not an ownership edge: deleting the creator must not
	// delete the accounts they created.
	CreatedByID *uint `json:"createdById"`
	CreatedBy   *User `gorm:"foreignKey:CreatedByID;constraint:OnDelete:SET NULL" json:"createdBy,omitempty"`
}
