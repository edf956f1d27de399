package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"-"`

	RoleID uint `json:"roleId"`
	Role   Role `json:"role"`

	Orders []OrderHeader `json:"-"`
}
