package store

import (
	"time"

	"gorm.io/gorm"

	"github.com/fatimahnadiaekaputri/GoodReadingBookstore/models"
)

// DisplayByBookNumber resolves the active display for a book. Display
// creation enforces at most one display per book, so this returns a single
// row.
func DisplayByBookNumber(tx *gorm.DB, bookNumber uint) (*models.Display, error) {
	var display models.Display
	if err := tx.Where("book_number = ?", bookNumber).First(&display).Error; err != nil {
		return nil, err
	}
	return &display, nil
}

// TakeDisplayUnit removes one unit of stock from a display. The decrement is
// conditional on quantity still being positive, so two transactions racing
// for the last unit cannot both win: the loser sees zero rows affected and
// reports false. Quantity never goes negative.
func TakeDisplayUnit(tx *gorm.DB, displayNumber uint) (bool, error) {
	res := tx.Model(&models.Display{}).
		Where("display_number = ? AND quantity > 0", displayNumber).
		Updates(map[string]interface{}{
			"quantity":        gorm.Expr("quantity - 1"),
			"display_updated": time.Now(),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
