package entity

import (
	"gorm.io/gorm"
)

type CartItem struct {
	gorm.Model
	ShoppingCartID uint         `json:"shoppingCartId"`
	ShoppingCart   ShoppingCart `json:"-"`

	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"menuItem"`

	// Always > 0; a merge that reaches zero deletes the row instead.
	Quantity int `json:"quantity"`
}
