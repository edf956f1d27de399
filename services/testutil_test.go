package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/amjudson/react-redmango-api/entity"
)

// newTestDB opens a per-test in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.Role{}, &entity.User{},
		&entity.MenuItem{},
		&entity.ShoppingCart{}, &entity.CartItem{},
		&entity.OrderHeader{}, &entity.OrderDetails{},
	))
	return db
}

func seedMenuItem(t *testing.T, db *gorm.DB, name string, price float64) *entity.MenuItem {
	t.Helper()

	item := &entity.MenuItem{Name: name, Category: "Entree", Price: price}
	require.NoError(t, db.Create(item).Error)
	return item
}

func seedRoles(t *testing.T, db *gorm.DB) {
	t.Helper()

	for _, name := range []string{entity.RoleAdmin, entity.RoleCustomer} {
		require.NoError(t, db.Create(&entity.Role{Name: name}).Error)
	}
}
