package common

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"shareit/src/db"
	"shareit/src/models"
	"shareit/src/types"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	d, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	err = d.AutoMigrate(
		&models.User{},
		&models.ItemRequest{},
		&models.Item{},
		&models.Booking{},
		&models.Comment{},
	)
	require.NoError(t, err)
	db.NewDB(d)
	return d
}

func newTestUser(t *testing.T, name string, email string) *models.User {
	t.Helper()
	user, err := CreateUser(&types.CreateUserRequestBody{Name: name, Email: email})
	require.NoError(t, err)
	return user
}

func newTestItem(t *testing.T, ownerId uint, name string, description string, available bool) *models.Item {
	t.Helper()
	item, err := CreateItem(ownerId, &types.CreateItemRequestBody{
		Name:        name,
		Description: description,
		Available:   &available,
	})
	require.NoError(t, err)
	return item
}

func newTestBooking(t *testing.T, bookerId uint, itemId uint, start time.Time, end time.Time) *models.Booking {
	t.Helper()
	booking, err := CreateBooking(bookerId, &types.CreateBookingRequestBody{
		ItemID: itemId,
		Start:  start,
		End:    end,
	})
	require.NoError(t, err)
	return booking
}
