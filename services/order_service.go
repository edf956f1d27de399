package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/amjudson/react-redmango-api/entity"
	"github.com/amjudson/react-redmango-api/repository"
)

var (
	ErrInvalidStatus           = errors.New("invalid order status")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)

type OrderService struct {
	DB   *gorm.DB
	Repo *repository.OrderRepository
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository) *OrderService {
	return &OrderService{DB: db, Repo: repo}
}

type OrderDetailsIn struct {
	MenuItemID uint    `json:"menuItemId" binding:"required"`
	ItemName   string  `json:"itemName" binding:"required"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity" binding:"required,min=1"`
}

type CreateOrderIn struct {
	UserID            uint             `json:"userId" binding:"required"`
	PickupName        string           `json:"pickupName"`
	PickupEmail       string           `json:"pickupEmail"`
	PickupPhoneNumber string           `json:"pickupPhoneNumber"`
	OrderTotal        float64          `json:"orderTotal"`
	PaymentIntentID   string           `json:"paymentIntentId"`
	TotalItems        int              `json:"totalItems"`
	Status            string           `json:"status"`
	OrderDetails      []OrderDetailsIn `json:"orderDetails" binding:"required,min=1,dive"`
}

type UpdateOrderIn struct {
	PickupName        string `json:"pickupName"`
	PickupEmail       string `json:"pickupEmail"`
	PickupPhoneNumber string `json:"pickupPhoneNumber"`
	Status            string `json:"status"`
	PaymentIntentID   string `json:"paymentIntentId"`
}

// List returns orders most recent first; userID == 0 means all users.
func (s *OrderService) List(userID uint) ([]entity.OrderHeader, error) {
	return s.Repo.List(userID)
}

func (s *OrderService) Get(id uint) (*entity.OrderHeader, error) {
	return s.Repo.FindByID(id)
}

// Create persists the header and its line items in one transaction. The
// name/price/quantity on each line are the caller's checkout snapshot and
// stay frozen from here on. The returned header has its details cleared.
func (s *OrderService) Create(in *CreateOrderIn) (*entity.OrderHeader, error) {
	status := in.Status
	if status == "" {
		status = entity.StatusPending
	}
	if !entity.ValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	header := &entity.OrderHeader{
		UserID:            in.UserID,
		PickupName:        in.PickupName,
		PickupEmail:       in.PickupEmail,
		PickupPhoneNumber: in.PickupPhoneNumber,
		OrderTotal:        in.OrderTotal,
		OrderDate:         time.Now(),
		PaymentIntentID:   in.PaymentIntentID,
		TotalItems:        in.TotalItems,
		Status:            status,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.CreateHeader(tx, header); err != nil {
			return err
		}
		for _, d := range in.OrderDetails {
			details := &entity.OrderDetails{
				OrderHeaderID: header.ID,
				MenuItemID:    d.MenuItemID,
				ItemName:      d.ItemName,
				Price:         d.Price,
				Quantity:      d.Quantity,
			}
			if err := s.Repo.CreateDetails(tx, details); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	header.OrderDetails = nil
	return header, nil
}

// UpdateHeader overwrites each field only when the caller supplied a
// non-empty value. Status changes must follow the transition table.
func (s *OrderService) UpdateHeader(id uint, in *UpdateOrderIn) error {
	header, err := s.Repo.FindHeader(id)
	if err != nil {
		return err
	}

	if in.PickupName != "" {
		header.PickupName = in.PickupName
	}
	if in.PickupEmail != "" {
		header.PickupEmail = in.PickupEmail
	}
	if in.PickupPhoneNumber != "" {
		header.PickupPhoneNumber = in.PickupPhoneNumber
	}
	if in.Status != "" {
		if !entity.CanTransition(header.Status, in.Status) {
			return ErrInvalidStatusTransition
		}
		header.Status = in.Status
	}
	if in.PaymentIntentID != "" {
		header.PaymentIntentID = in.PaymentIntentID
	}

	return s.Repo.SaveHeader(header)
}
