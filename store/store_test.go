package store_test

import (
	"fmt"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/fatimahnadiaekaputri/GoodReadingBookstore/models"
	"github.com/fatimahnadiaekaputri/GoodReadingBookstore/store"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_foreign_keys=1&_txlock=immediate",
		filepath.Join(t.TempDir(), "bookstore.db"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, models.Migrate(db))
	return db
}

func TestTakeDisplayUnitStopsAtZero(t *testing.T) {
	db := newTestDB(t)
	now := time.Now()
	require.NoError(t, db.Create(&models.Display{
		DisplayNumber: 7, DisplayName: "Front", Location: "Aisle 1",
		Quantity: 2, BookNumber: 1, DisplayCreated: now, DisplayUpdated: now,
	}).Error)

	for i := 0; i < 2; i++ {
		taken, err := store.TakeDisplayUnit(db, 7)
		require.NoError(t, err)
		require.True(t, taken)
	}

	taken, err := store.TakeDisplayUnit(db, 7)
	require.NoError(t, err)
	require.False(t, taken, "decrement past zero must report no rows affected")

	var display models.Display
	require.NoError(t, db.First(&display, "display_number = ?", 7).Error)
	require.Equal(t, 0, display.Quantity)
}

func TestWishlistEntryScopedToUser(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Create(&models.Wishlist{WishlistNumber: 10, UserNumber: 1}).Error)
	require.NoError(t, db.Create(&models.WishlistBook{WishlistNumber: 10, BookNumber: 5}).Error)

	entry, err := store.WishlistEntry(db, 1, 5)
	require.NoError(t, err)
	require.Equal(t, uint(10), entry.WishlistNumber)

	_, err = store.WishlistEntry(db, 2, 5)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestErrorStatusMapping(t *testing.T) {
	require.Equal(t, http.StatusNotFound, store.NotFound("x").HTTPStatus())
	require.Equal(t, http.StatusNotFound, store.PreconditionFailed("x").HTTPStatus())
	require.Equal(t, http.StatusConflict, store.Conflict("x").HTTPStatus())
	require.Equal(t, http.StatusBadRequest, store.OutOfStock("x").HTTPStatus())
}

func TestOrNotFoundPassesOtherErrorsThrough(t *testing.T) {
	require.Equal(t, "missing", store.OrNotFound(gorm.ErrRecordNotFound, "missing").Error())
	err := store.OrNotFound(gorm.ErrInvalidTransaction, "missing")
	require.ErrorIs(t, err, gorm.ErrInvalidTransaction)
}
