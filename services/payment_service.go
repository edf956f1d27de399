package services

import (
	"context"
	"errors"
	"math"

	"gorm.io/gorm"

	"github.com/amjudson/react-redmango-api/entity"
	"github.com/amjudson/react-redmango-api/repository"
)

var ErrEmptyCart = errors.New("empty cart")

// PaymentIntent is the gateway's handle on an in-progress charge.
type PaymentIntent struct {
	ID           string
	ClientSecret string
}

// PaymentGateway creates card payment intents. Amount is in minor
// currency units.
type PaymentGateway interface {
	CreateIntent(ctx context.Context, amount int64, currency string) (*PaymentIntent, error)
}

type PaymentService struct {
	CartRepo *repository.CartRepository
	Gateway  PaymentGateway
}

func NewPaymentService(cartRepo *repository.CartRepository, gateway PaymentGateway) *PaymentService {
	return &PaymentService{CartRepo: cartRepo, Gateway: gateway}
}

// CreateIntent computes the cart total from live prices, requests a
// card-only payment intent for total*100 minor units and persists the
// intent reference onto the cart. An absent or empty cart never reaches
// the gateway.
func (s *PaymentService) CreateIntent(ctx context.Context, userID uint) (*entity.ShoppingCart, error) {
	cart, err := s.CartRepo.FindWithMenuItems(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrEmptyCart
	}
	if err != nil {
		return nil, err
	}
	if len(cart.CartItems) == 0 {
		return nil, ErrEmptyCart
	}

	for _, item := range cart.CartItems {
		cart.CartTotal += float64(item.Quantity) * item.MenuItem.Price
	}

	intent, err := s.Gateway.CreateIntent(ctx, int64(math.Round(cart.CartTotal*100)), "usd")
	if err != nil {
		return nil, err
	}

	cart.PaymentIntentID = intent.ID
	cart.ClientSecret = intent.ClientSecret
	if err := s.CartRepo.SaveIntent(cart.ID, intent.ID, intent.ClientSecret); err != nil {
		return nil, err
	}
	return cart, nil
}
