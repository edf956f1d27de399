package entity

import (
	"gorm.io/gorm"
)

type ShoppingCart struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex" json:"userId"`
	User   User `json:"-"`

	CartItems []CartItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"cartItems"`

	// Set by the payment bridge once an intent has been created.
	PaymentIntentID string `json:"paymentIntentId"`
	ClientSecret    string `json:"clientSecret"`

	// Never persisted: always recomputed from live menu prices.
	CartTotal float64 `gorm:"-" json:"cartTotal"`
}
