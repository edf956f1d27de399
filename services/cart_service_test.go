package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/amjudson/react-redmango-api/entity"
	"github.com/amjudson/react-redmango-api/repository"
)

func newCartService(db *gorm.DB) *CartService {
	return NewCartService(db, repository.NewCartRepository(db), repository.NewMenuRepository(db))
}

func cartItemCount(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&entity.CartItem{}).Count(&count).Error)
	return count
}

func cartCount(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&entity.ShoppingCart{}).Count(&count).Error)
	return count
}

func TestAddCreatesCartWithFirstItem(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	item := seedMenuItem(t, db, "Spring Roll", 7.99)

	require.NoError(t, svc.AddOrUpdate(1, item.ID, 3))

	cart, err := svc.Get(1)
	require.NoError(t, err)
	require.Len(t, cart.CartItems, 1)
	assert.Equal(t, item.ID, cart.CartItems[0].MenuItemID)
	assert.Equal(t, 3, cart.CartItems[0].Quantity)
	assert.InDelta(t, 3*7.99, cart.CartTotal, 1e-9)
}

func TestAddMergesQuantity(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	item := seedMenuItem(t, db, "Pad Thai", 12.50)

	require.NoError(t, svc.AddOrUpdate(1, item.ID, 2))
	require.NoError(t, svc.AddOrUpdate(1, item.ID, 3))

	cart, err := svc.Get(1)
	require.NoError(t, err)
	require.Len(t, cart.CartItems, 1)
	assert.Equal(t, 5, cart.CartItems[0].Quantity)
}

func TestNegativeDeltaReachingZeroRemovesItemAndCart(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	item := seedMenuItem(t, db, "Mango Sticky Rice", 6.00)

	require.NoError(t, svc.AddOrUpdate(7, item.ID, 3))
	require.NoError(t, svc.AddOrUpdate(7, item.ID, -3))

	assert.EqualValues(t, 0, cartItemCount(t, db))
	assert.EqualValues(t, 0, cartCount(t, db))

	// a fresh add must be able to recreate the cart for the same user
	require.NoError(t, svc.AddOrUpdate(7, item.ID, 1))
	assert.EqualValues(t, 1, cartCount(t, db))
}

func TestDeltaZeroRemovesItem(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	item := seedMenuItem(t, db, "Green Curry", 11.25)

	require.NoError(t, svc.AddOrUpdate(1, item.ID, 4))
	require.NoError(t, svc.AddOrUpdate(1, item.ID, 0))

	assert.EqualValues(t, 0, cartItemCount(t, db))
	assert.EqualValues(t, 0, cartCount(t, db))
}

func TestRemovingNonLastItemKeepsCart(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	first := seedMenuItem(t, db, "Tom Yum", 9.00)
	second := seedMenuItem(t, db, "Satay", 8.00)

	require.NoError(t, svc.AddOrUpdate(1, first.ID, 2))
	require.NoError(t, svc.AddOrUpdate(1, second.ID, 1))
	require.NoError(t, svc.AddOrUpdate(1, first.ID, -2))

	cart, err := svc.Get(1)
	require.NoError(t, err)
	require.Len(t, cart.CartItems, 1)
	assert.Equal(t, second.ID, cart.CartItems[0].MenuItemID)
	assert.EqualValues(t, 1, cartCount(t, db))
}

func TestQuantityNeverGoesNegative(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	item := seedMenuItem(t, db, "Fried Rice", 10.00)

	require.NoError(t, svc.AddOrUpdate(1, item.ID, 2))
	require.NoError(t, svc.AddOrUpdate(1, item.ID, -5))

	// max(2-5, 0) == 0, so the item must be gone rather than stored negative
	assert.EqualValues(t, 0, cartItemCount(t, db))
}

func TestAddUnknownMenuItemRejected(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)

	err := svc.AddOrUpdate(1, 999, 1)
	assert.ErrorIs(t, err, ErrInvalidMenuItem)
	assert.EqualValues(t, 0, cartCount(t, db))
}

func TestNewItemWithNonPositiveDeltaRejected(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	item := seedMenuItem(t, db, "Dumplings", 5.50)

	// no cart yet
	assert.ErrorIs(t, svc.AddOrUpdate(1, item.ID, -1), ErrInvalidQuantity)
	assert.EqualValues(t, 0, cartCount(t, db))

	// cart exists but the item is not in it
	other := seedMenuItem(t, db, "Wontons", 4.50)
	require.NoError(t, svc.AddOrUpdate(1, item.ID, 2))
	assert.ErrorIs(t, svc.AddOrUpdate(1, other.ID, 0), ErrInvalidQuantity)
	assert.EqualValues(t, 1, cartItemCount(t, db))
}

func TestGetWithoutCartReturnsEmptyTransientCart(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)

	cart, err := svc.Get(42)
	require.NoError(t, err)
	assert.Zero(t, cart.ID)
	assert.EqualValues(t, 42, cart.UserID)
	assert.Empty(t, cart.CartItems)
	assert.Zero(t, cart.CartTotal)
}

func TestCartTotalTracksLiveMenuPrice(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	item := seedMenuItem(t, db, "Basil Chicken", 10.00)

	require.NoError(t, svc.AddOrUpdate(1, item.ID, 2))

	cart, err := svc.Get(1)
	require.NoError(t, err)
	assert.InDelta(t, 20.00, cart.CartTotal, 1e-9)

	require.NoError(t, db.Model(&entity.MenuItem{}).Where("id = ?", item.ID).Update("price", 12.00).Error)

	cart, err = svc.Get(1)
	require.NoError(t, err)
	assert.InDelta(t, 24.00, cart.CartTotal, 1e-9)
}
