package repository

import (
	"gorm.io/gorm"

	"github.com/amjudson/react-redmango-api/entity"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// List returns headers with nested details and referenced menu items, most
// recent first. userID == 0 means no owner filter.
func (r *OrderRepository) List(userID uint) ([]entity.OrderHeader, error) {
	q := r.DB.
		Preload("OrderDetails").
		Preload("OrderDetails.MenuItem").
		Order("id DESC")
	if userID != 0 {
		q = q.Where("user_id = ?", userID)
	}

	var headers []entity.OrderHeader
	err := q.Find(&headers).Error
	return headers, err
}

func (r *OrderRepository) FindByID(id uint) (*entity.OrderHeader, error) {
	var header entity.OrderHeader
	err := r.DB.
		Preload("OrderDetails").
		Preload("OrderDetails.MenuItem").
		First(&header, id).Error
	if err != nil {
		return nil, err
	}
	return &header, nil
}

// FindHeader loads the header row alone, without details.
func (r *OrderRepository) FindHeader(id uint) (*entity.OrderHeader, error) {
	var header entity.OrderHeader
	if err := r.DB.First(&header, id).Error; err != nil {
		return nil, err
	}
	return &header, nil
}

func (r *OrderRepository) CreateHeader(tx *gorm.DB, header *entity.OrderHeader) error {
	return tx.Create(header).Error
}

func (r *OrderRepository) CreateDetails(tx *gorm.DB, details *entity.OrderDetails) error {
	return tx.Create(details).Error
}

func (r *OrderRepository) SaveHeader(header *entity.OrderHeader) error {
	return r.DB.Save(header).Error
}
