package wishlistControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/fatimahnadiaekaputri/GoodReadingBookstore/httpx"
	"github.com/fatimahnadiaekaputri/GoodReadingBookstore/models"
	"github.com/fatimahnadiaekaputri/GoodReadingBookstore/store"
)

// -------- Request Structs --------

type InsertWishlistRequest struct {
	BookName       string `json:"Book_Name" binding:"required"`
	Username       string `json:"Username" binding:"required"`
	WishlistNumber uint   `json:"Wishlist_Number" binding:"required"`
}

type DeleteWishlistRequest struct {
	BookName string `json:"Book_Name" binding:"required"`
	Username string `json:"Username" binding:"required"`
}

// -------- Core Logic --------

// InsertWishlist creates a new wishlist entry for the user and links it to
// the book. Repeated calls create further entries; there is no idempotence
// check.
func InsertWishlist(db *gorm.DB, req InsertWishlistRequest) error {
	return db.Transaction(func(tx *gorm.DB) error {
		user, err := store.UserByUsername(tx, req.Username)
		if err != nil {
			return store.OrNotFound(err, "Username tidak ditemukan")
		}
		row, err := store.ViewRowByBookName(tx, req.BookName)
		if err != nil {
			return store.OrNotFound(err, "Buku tidak ditemukan")
		}

		now := time.Now()
		wishlist := models.Wishlist{
			WishlistNumber:  req.WishlistNumber,
			UserNumber:      user.UserNumber,
			WishlistCreated: now,
			WishlistUpdated: now,
		}
		if err := tx.Create(&wishlist).Error; err != nil {
			return err
		}
		return tx.Create(&models.WishlistBook{
			WishlistNumber: wishlist.WishlistNumber,
			BookNumber:     row.BookNumber,
		}).Error
	})
}

// DeleteWishlist removes the user's wishlist entry for a book: both the
// Wishlist row and its join row go, nothing else references them.
func DeleteWishlist(db *gorm.DB, req DeleteWishlistRequest) error {
	return db.Transaction(func(tx *gorm.DB) error {
		book, err := store.BookByName(tx, req.BookName)
		if err != nil {
			return store.OrNotFound(err, "Buku tidak ditemukan")
		}
		user, err := store.UserByUsername(tx, req.Username)
		if err != nil {
			return store.OrNotFound(err, "Username tidak ditemukan")
		}
		entry, err := store.WishlistEntry(tx, user.UserNumber, book.BookNumber)
		if err != nil {
			return store.OrNotFound(err, "Buku tidak berada di dalam wishlist")
		}

		if err := tx.Where("wishlist_number = ?", entry.WishlistNumber).
			Delete(&models.Wishlist{}).Error; err != nil {
			return err
		}
		return tx.Where("wishlist_number = ? AND book_number = ?", entry.WishlistNumber, book.BookNumber).
			Delete(&models.WishlistBook{}).Error
	})
}

// -------- Handlers --------

// POST /api/insert_wishlist
func InsertWishlistHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req InsertWishlistRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := InsertWishlist(db, req); err != nil {
			httpx.Error(c, err)
			return
		}
		httpx.Message(c, "Buku berhasil ditambahkan ke dalam wishlist Anda")
	}
}

// DELETE /api/delete_wishlist
func DeleteWishlistHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req DeleteWishlistRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := DeleteWishlist(db, req); err != nil {
			httpx.Error(c, err)
			return
		}
		httpx.Message(c, "Buku berhasil terhapus dari wishlist!")
	}
}
