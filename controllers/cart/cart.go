package cartControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/fatimahnadiaekaputri/GoodReadingBookstore/httpx"
	"github.com/fatimahnadiaekaputri/GoodReadingBookstore/models"
	"github.com/fatimahnadiaekaputri/GoodReadingBookstore/store"
)

type AddCartRequest struct {
	BookName   string  `json:"Book_Name" binding:"required"`
	Username   string  `json:"Username" binding:"required"`
	CartNumber uint    `json:"Cart_Number" binding:"required"`
	Quantity   int     `json:"Quantity" binding:"required,min=1"`
	Price      float64 `json:"Price" binding:"min=0"`
	Discount   float64 `json:"Discount"`
}

// AddToCart moves a wishlisted book into the user's cart and takes one unit
// of display stock. The wishlist entry is a hard precondition. The stock
// decrement is conditional on quantity staying positive, so a concurrent
// buyer of the last unit rolls back cleanly instead of overselling.
func AddToCart(db *gorm.DB, req AddCartRequest) error {
	return db.Transaction(func(tx *gorm.DB) error {
		user, err := store.UserByUsername(tx, req.Username)
		if err != nil {
			return store.OrNotFound(err, "Username tidak ditemukan")
		}
		row, err := store.ViewRowByBookName(tx, req.BookName)
		if err != nil {
			return store.OrNotFound(err, "Buku tidak ditemukan")
		}
		if _, err := store.WishlistEntry(tx, user.UserNumber, row.BookNumber); err != nil {
			return store.OrPreconditionFailed(err,
				"Buku tidak ada di dalam wishlist, silakan masukkan ke dalam wishlist terlebih dahulu")
		}
		display, err := store.DisplayByBookNumber(tx, row.BookNumber)
		if err != nil {
			return store.OrNotFound(err, "Book not found in display")
		}
		if display.Quantity <= 0 {
			return store.OutOfStock("Book is out of stock")
		}

		now := time.Now()
		cart := models.Cart{
			CartNumber:  req.CartNumber,
			UserNumber:  user.UserNumber,
			Quantity:    req.Quantity,
			Price:       req.Price,
			Discount:    req.Discount,
			CreatedCart: now,
			UpdatedCart: now,
		}
		if err := tx.Create(&cart).Error; err != nil {
			return err
		}
		if err := tx.Create(&models.CartBook{
			CartNumber: cart.CartNumber,
			BookNumber: row.BookNumber,
		}).Error; err != nil {
			return err
		}

		taken, err := store.TakeDisplayUnit(tx, display.DisplayNumber)
		if err != nil {
			return err
		}
		if !taken {
			return store.OutOfStock("Book is out of stock")
		}
		return nil
	})
}

// POST /api/add_cart
func AddToCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddCartRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := AddToCart(db, req); err != nil {
			httpx.Error(c, err)
			return
		}
		httpx.Message(c, "Buku berhasil masuk ke dalam keranjang Anda")
	}
}
