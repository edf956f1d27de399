package entity

import (
	"gorm.io/gorm"
)

const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// Role is a lookup table seeded once at startup (configs.SeedRoles).
type Role struct {
	gorm.Model
	Name string `gorm:"uniqueIndex;not null" json:"name"`

	Users []User `json:"-"`
}
