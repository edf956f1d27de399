package repository

import (
	"gorm.io/gorm"

	"github.com/amjudson/react-redmango-api/entity"
)

type CartRepository struct {
	DB *gorm.DB
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{DB: db}
}

// FindWithMenuItems loads the cart with its items and their live menu items.
func (r *CartRepository) FindWithMenuItems(userID uint) (*entity.ShoppingCart, error) {
	var cart entity.ShoppingCart
	err := r.DB.Where("user_id = ?", userID).
		Preload("CartItems").
		Preload("CartItems.MenuItem").
		First(&cart).Error
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *CartRepository) FindByUserID(tx *gorm.DB, userID uint) (*entity.ShoppingCart, error) {
	var cart entity.ShoppingCart
	err := tx.Where("user_id = ?", userID).
		Preload("CartItems").
		First(&cart).Error
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *CartRepository) Create(tx *gorm.DB, cart *entity.ShoppingCart) error {
	return tx.Create(cart).Error
}

func (r *CartRepository) CreateItem(tx *gorm.DB, item *entity.CartItem) error {
	return tx.Create(item).Error
}

func (r *CartRepository) SaveItem(tx *gorm.DB, item *entity.CartItem) error {
	return tx.Save(item).Error
}

// Hard deletes: the user_id unique index must stay reusable after the cart
// goes away, and soft-deleted carts would block re-creation.
func (r *CartRepository) DeleteItem(tx *gorm.DB, itemID uint) error {
	return tx.Unscoped().Delete(&entity.CartItem{}, itemID).Error
}

func (r *CartRepository) DeleteCart(tx *gorm.DB, cartID uint) error {
	if err := tx.Unscoped().Where("shopping_cart_id = ?", cartID).Delete(&entity.CartItem{}).Error; err != nil {
		return err
	}
	return tx.Unscoped().Delete(&entity.ShoppingCart{}, cartID).Error
}

// SaveIntent persists the payment intent reference onto the cart.
func (r *CartRepository) SaveIntent(cartID uint, intentID, clientSecret string) error {
	return r.DB.Model(&entity.ShoppingCart{}).Where("id = ?", cartID).
		Updates(map[string]any{
			"payment_intent_id": intentID,
			"client_secret":     clientSecret,
		}).Error
}
