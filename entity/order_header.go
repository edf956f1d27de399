package entity

import (
	"time"

	"gorm.io/gorm"
)

type OrderHeader struct {
	gorm.Model
	UserID uint `json:"userId"`
	User   User `json:"-"`

	PickupName        string `json:"pickupName"`
	PickupEmail       string `json:"pickupEmail"`
	PickupPhoneNumber string `json:"pickupPhoneNumber"`

	OrderTotal      float64   `json:"orderTotal"`
	OrderDate       time.Time `json:"orderDate"`
	PaymentIntentID string    `json:"paymentIntentId"`
	TotalItems      int       `json:"totalItems"`
	Status          string    `gorm:"not null;default:Pending" json:"status"`

	OrderDetails []OrderDetails `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"orderDetails,omitempty"`
}
