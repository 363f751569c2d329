package displayControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/fatimahnadiaekaputri/GoodReadingBookstore/httpx"
	"github.com/fatimahnadiaekaputri/GoodReadingBookstore/models"
	"github.com/fatimahnadiaekaputri/GoodReadingBookstore/store"
)

// -------- Request Structs --------

type AddDisplayRequest struct {
	BookName      string `json:"Book_Name" binding:"required"`
	DisplayNumber uint   `json:"Display_Number" binding:"required"`
	DisplayName   string `json:"Display_Name" binding:"required"`
	Location      string `json:"Location" binding:"required"`
	Quantity      int    `json:"Quantity" binding:"min=0"` // zero is a valid stock level
	StaffName     string `json:"Staff_Name" binding:"required"`
}

type UpdateDisplayRequest struct {
	BookName    string `json:"Book_Name" binding:"required"`
	DisplayName string `json:"Display_Name" binding:"required"`
	Location    string `json:"Location" binding:"required"`
	Quantity    int    `json:"Quantity" binding:"min=0"` // zero empties the shelf
	StaffName   string `json:"Staff_Name" binding:"required"`
}

// -------- Core Logic --------

// AddDisplay shelves a book. A book may have at most one active display;
// a second add for the same book is rejected so that the one-row lookup the
// other workflows rely on stays true.
func AddDisplay(db *gorm.DB, req AddDisplayRequest) error {
	return db.Transaction(func(tx *gorm.DB) error {
		staff, err := store.StaffByName(tx, req.StaffName)
		if err != nil {
			return store.OrNotFound(err, "Nama staff tidak ditemukan")
		}
		book, err := store.BookByName(tx, req.BookName)
		if err != nil {
			return store.OrNotFound(err, "Buku tidak ditemukan")
		}

		if _, err := store.DisplayByBookNumber(tx, book.BookNumber); err == nil {
			return store.Conflict("Buku sudah berada di display")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		now := time.Now()
		display := models.Display{
			DisplayNumber:  req.DisplayNumber,
			DisplayName:    req.DisplayName,
			Location:       req.Location,
			Quantity:       req.Quantity,
			BookNumber:     book.BookNumber,
			DisplayCreated: now,
			DisplayUpdated: now,
		}
		if err := tx.Create(&display).Error; err != nil {
			return err
		}
		return tx.Create(&models.StaffDisplay{
			StaffNumber:   staff.StaffNumber,
			DisplayNumber: display.DisplayNumber,
			RecordedAt:    now,
		}).Error
	})
}

// UpdateDisplay edits the book's display in place and appends a fresh audit
// row; the Staff_Display trail is never overwritten.
func UpdateDisplay(db *gorm.DB, req UpdateDisplayRequest) error {
	return db.Transaction(func(tx *gorm.DB) error {
		staff, err := store.StaffByName(tx, req.StaffName)
		if err != nil {
			return store.OrNotFound(err, "Nama staff tidak ditemukan")
		}
		book, err := store.BookByName(tx, req.BookName)
		if err != nil {
			return store.OrNotFound(err, "Buku tidak ditemukan")
		}
		display, err := store.DisplayByBookNumber(tx, book.BookNumber)
		if err != nil {
			return store.OrNotFound(err, "Buku tidak berada di display")
		}

		now := time.Now()
		if err := tx.Model(display).Updates(map[string]interface{}{
			"display_name":    req.DisplayName,
			"location":        req.Location,
			"quantity":        req.Quantity,
			"display_updated": now,
		}).Error; err != nil {
			return err
		}
		return tx.Create(&models.StaffDisplay{
			StaffNumber:   staff.StaffNumber,
			DisplayNumber: display.DisplayNumber,
			RecordedAt:    now,
		}).Error
	})
}

// -------- Handlers --------

// POST /api/add_display
func AddDisplayHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddDisplayRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := AddDisplay(db, req); err != nil {
			httpx.Error(c, err)
			return
		}
		httpx.Message(c, "Buku berhasil ditambahkan ke dalam display")
	}
}

// PUT /api/update_display
func UpdateDisplayHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateDisplayRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := UpdateDisplay(db, req); err != nil {
			httpx.Error(c, err)
			return
		}
		httpx.Message(c, "Display berhasil diperbarui!")
	}
}
