package reviewControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/fatimahnadiaekaputri/GoodReadingBookstore/httpx"
	"github.com/fatimahnadiaekaputri/GoodReadingBookstore/models"
	"github.com/fatimahnadiaekaputri/GoodReadingBookstore/store"
)

type AddReviewRequest struct {
	BookName     string `json:"Book_Name" binding:"required"`
	ReviewNumber uint   `json:"Review_Number" binding:"required"`
	Rating       int    `json:"Rating" binding:"min=0"` // a zero rating is still a rating
	Text         string `json:"Text" binding:"required"`
	Username     string `json:"Username" binding:"required"`
}

// AddReview records a rating and text by a user about a book.
func AddReview(db *gorm.DB, req AddReviewRequest) error {
	return db.Transaction(func(tx *gorm.DB) error {
		user, err := store.UserByUsername(tx, req.Username)
		if err != nil {
			return store.OrNotFound(err, "Username tidak ditemukan.")
		}
		book, err := store.BookByName(tx, req.BookName)
		if err != nil {
			return store.OrNotFound(err, "Buku tidak ditemukan")
		}
		return tx.Create(&models.Review{
			ReviewNumber: req.ReviewNumber,
			Timestamp:    time.Now(),
			Rating:       req.Rating,
			Text:         req.Text,
			UserNumber:   user.UserNumber,
			BookNumber:   book.BookNumber,
		}).Error
	})
}

// POST /api/add_review
func AddReviewHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddReviewRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := AddReview(db, req); err != nil {
			httpx.Error(c, err)
			return
		}
		httpx.Message(c, "Review Anda berhasil dibuat!")
	}
}
