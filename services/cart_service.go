package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/amjudson/react-redmango-api/entity"
	"github.com/amjudson/react-redmango-api/repository"
)

var (
	ErrInvalidMenuItem = errors.New("invalid menu item")
	ErrInvalidQuantity = errors.New("invalid quantity")
)

type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	MenuRepo *repository.MenuRepository
}

func NewCartService(db *gorm.DB, cartRepo *repository.CartRepository, menuRepo *repository.MenuRepository) *CartService {
	return &CartService{DB: db, CartRepo: cartRepo, MenuRepo: menuRepo}
}

// Get returns the user's cart with the total computed from live menu
// prices. A user without a persisted cart gets an empty transient one.
func (s *CartService) Get(userID uint) (*entity.ShoppingCart, error) {
	cart, err := s.CartRepo.FindWithMenuItems(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &entity.ShoppingCart{UserID: userID, CartItems: []entity.CartItem{}}, nil
	}
	if err != nil {
		return nil, err
	}

	for _, item := range cart.CartItems {
		cart.CartTotal += float64(item.Quantity) * item.MenuItem.Price
	}
	return cart, nil
}

// AddOrUpdate merges a quantity delta into the user's cart:
//   - no cart yet: delta > 0 creates cart + item, anything else is rejected
//   - item not in cart: delta > 0 creates the item, anything else rejected
//   - item in cart: quantity becomes q+delta; a delta of exactly 0 or a
//     result <= 0 removes the item, and the cart too when it was the last.
func (s *CartService) AddOrUpdate(userID, menuItemID uint, delta int) error {
	if _, err := s.MenuRepo.FindByID(menuItemID); err != nil {
		return ErrInvalidMenuItem
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := s.CartRepo.FindByUserID(tx, userID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if delta <= 0 {
				return ErrInvalidQuantity
			}
			cart = &entity.ShoppingCart{UserID: userID}
			if err := s.CartRepo.Create(tx, cart); err != nil {
				return err
			}
			return s.CartRepo.CreateItem(tx, &entity.CartItem{
				ShoppingCartID: cart.ID,
				MenuItemID:     menuItemID,
				Quantity:       delta,
			})
		}
		if err != nil {
			return err
		}

		var existing *entity.CartItem
		for i := range cart.CartItems {
			if cart.CartItems[i].MenuItemID == menuItemID {
				existing = &cart.CartItems[i]
				break
			}
		}

		if existing == nil {
			if delta <= 0 {
				return ErrInvalidQuantity
			}
			return s.CartRepo.CreateItem(tx, &entity.CartItem{
				ShoppingCartID: cart.ID,
				MenuItemID:     menuItemID,
				Quantity:       delta,
			})
		}

		newQuantity := existing.Quantity + delta
		if delta == 0 || newQuantity <= 0 {
			if len(cart.CartItems) == 1 {
				return s.CartRepo.DeleteCart(tx, cart.ID)
			}
			return s.CartRepo.DeleteItem(tx, existing.ID)
		}

		existing.Quantity = newQuantity
		return s.CartRepo.SaveItem(tx, existing)
	})
}
