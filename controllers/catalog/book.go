package catalogControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/fatimahnadiaekaputri/GoodReadingBookstore/httpx"
	"github.com/fatimahnadiaekaputri/GoodReadingBookstore/models"
	"github.com/fatimahnadiaekaputri/GoodReadingBookstore/store"
)

// GetBookByName looks a book up by its exact canonical name and returns the
// catalog view rows for it. The name is resolved against Book first and the
// view is then re-queried by Book_Number: the view's name column may differ
// from the canonical Book_Name in partially-displayed catalogs.
func GetBookByName(db *gorm.DB, bookName string) ([]models.BookView, error) {
	var rows []models.BookView
	err := db.Transaction(func(tx *gorm.DB) error {
		book, err := store.BookByName(tx, bookName)
		if err != nil {
			return store.OrNotFound(err, "Book not found")
		}
		rows, err = store.ViewRowsByBookNumber(tx, book.BookNumber)
		if err != nil {
			return err
		}
		if len(rows) == 0 {
			return store.NotFound("Buku yang Anda cari tidak tersedia")
		}
		return nil
	})
	return rows, err
}

// GET /api/books/:Book_Name
func GetBookByNameHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := GetBookByName(db, c.Param("Book_Name"))
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, rows)
	}
}
