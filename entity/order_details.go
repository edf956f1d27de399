package entity

import (
	"gorm.io/gorm"
)

// OrderDetails is a line item of a placed order. ItemName and Price are
// snapshots taken at checkout; later menu edits must not change them.
type OrderDetails struct {
	gorm.Model
	OrderHeaderID uint        `json:"orderHeaderId"`
	OrderHeader   OrderHeader `json:"-"`

	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"menuItem"`

	ItemName string  `json:"itemName"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}
