package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/amjudson/react-redmango-api/entity"
	"github.com/amjudson/react-redmango-api/repository"
)

func newOrderService(db *gorm.DB) *OrderService {
	return NewOrderService(db, repository.NewOrderRepository(db))
}

func createTestOrder(t *testing.T, svc *OrderService, userID uint, details ...OrderDetailsIn) *entity.OrderHeader {
	t.Helper()

	header, err := svc.Create(&CreateOrderIn{
		UserID:       userID,
		PickupName:   "Jamie",
		PickupEmail:  "jamie@example.com",
		OrderTotal:   42.00,
		TotalItems:   len(details),
		OrderDetails: details,
	})
	require.NoError(t, err)
	return header
}

func TestCreateDefaultsToPendingAndClearsDetailsInResponse(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	item := seedMenuItem(t, db, "Khao Soi", 13.00)

	header := createTestOrder(t, svc, 1,
		OrderDetailsIn{MenuItemID: item.ID, ItemName: item.Name, Price: item.Price, Quantity: 2},
		OrderDetailsIn{MenuItemID: item.ID, ItemName: item.Name, Price: item.Price, Quantity: 1},
	)

	assert.NotZero(t, header.ID)
	assert.Equal(t, entity.StatusPending, header.Status)
	assert.Nil(t, header.OrderDetails, "creation response must not echo details")

	var rows []entity.OrderDetails
	require.NoError(t, db.Where("order_header_id = ?", header.ID).Find(&rows).Error)
	assert.Len(t, rows, 2)
}

func TestDetailsKeepSnapshotAfterMenuEdits(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	item := seedMenuItem(t, db, "Larb", 9.75)

	header := createTestOrder(t, svc, 1,
		OrderDetailsIn{MenuItemID: item.ID, ItemName: item.Name, Price: item.Price, Quantity: 3},
	)

	require.NoError(t, db.Model(&entity.MenuItem{}).Where("id = ?", item.ID).
		Updates(map[string]any{"name": "Larb Moo", "price": 11.00}).Error)

	got, err := svc.Get(header.ID)
	require.NoError(t, err)
	require.Len(t, got.OrderDetails, 1)
	assert.Equal(t, "Larb", got.OrderDetails[0].ItemName)
	assert.InDelta(t, 9.75, got.OrderDetails[0].Price, 1e-9)

	// the referenced live menu item is still loaded alongside the snapshot
	assert.Equal(t, "Larb Moo", got.OrderDetails[0].MenuItem.Name)
}

func TestListMostRecentFirstWithOptionalOwnerFilter(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	item := seedMenuItem(t, db, "Roti", 4.00)
	line := OrderDetailsIn{MenuItemID: item.ID, ItemName: item.Name, Price: item.Price, Quantity: 1}

	first := createTestOrder(t, svc, 1, line)
	second := createTestOrder(t, svc, 2, line)
	third := createTestOrder(t, svc, 1, line)

	all, err := svc.List(0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, third.ID, all[0].ID)
	assert.Equal(t, second.ID, all[1].ID)
	assert.Equal(t, first.ID, all[2].ID)

	mine, err := svc.List(1)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	for _, h := range mine {
		assert.EqualValues(t, 1, h.UserID)
	}
}

func TestUpdateHeaderOverwritesOnlyNonEmptyFields(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	item := seedMenuItem(t, db, "Cha Yen", 3.50)

	header := createTestOrder(t, svc, 1,
		OrderDetailsIn{MenuItemID: item.ID, ItemName: item.Name, Price: item.Price, Quantity: 1},
	)

	require.NoError(t, svc.UpdateHeader(header.ID, &UpdateOrderIn{
		PickupPhoneNumber: "555-0100",
		PaymentIntentID:   "pi_abc",
	}))

	got, err := svc.Get(header.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jamie", got.PickupName, "empty field must stay unchanged")
	assert.Equal(t, "jamie@example.com", got.PickupEmail)
	assert.Equal(t, "555-0100", got.PickupPhoneNumber)
	assert.Equal(t, "pi_abc", got.PaymentIntentID)
	assert.Equal(t, entity.StatusPending, got.Status)
}

func TestUpdateHeaderEnforcesStatusTransitions(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	item := seedMenuItem(t, db, "Som Tam", 7.00)

	header := createTestOrder(t, svc, 1,
		OrderDetailsIn{MenuItemID: item.ID, ItemName: item.Name, Price: item.Price, Quantity: 1},
	)

	// skipping Confirmed is not allowed
	err := svc.UpdateHeader(header.ID, &UpdateOrderIn{Status: entity.StatusBeingCooked})
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)

	require.NoError(t, svc.UpdateHeader(header.ID, &UpdateOrderIn{Status: entity.StatusConfirmed}))
	require.NoError(t, svc.UpdateHeader(header.ID, &UpdateOrderIn{Status: entity.StatusBeingCooked}))

	// cancel from a pre-terminal state
	require.NoError(t, svc.UpdateHeader(header.ID, &UpdateOrderIn{Status: entity.StatusCancelled}))

	// terminal states reject further moves
	err = svc.UpdateHeader(header.ID, &UpdateOrderIn{Status: entity.StatusCompleted})
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
}

func TestCreateRejectsUnknownStatus(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	item := seedMenuItem(t, db, "Kanom", 2.00)

	_, err := svc.Create(&CreateOrderIn{
		UserID: 1,
		Status: "Teleported",
		OrderDetails: []OrderDetailsIn{
			{MenuItemID: item.ID, ItemName: item.Name, Price: item.Price, Quantity: 1},
		},
	})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestGetMissingOrder(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)

	_, err := svc.Get(12345)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
