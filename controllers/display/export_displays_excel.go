package displayControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/fatimahnadiaekaputri/GoodReadingBookstore/models"
)

// ExportDisplaysToExcel writes the current shelf inventory as a spreadsheet
// download for the staff back office.
func ExportDisplaysToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var displays []models.Display
		if err := db.Order("display_number").Find(&displays).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch displays"})
			return
		}

		var books []models.Book
		if err := db.Find(&books).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch books"})
			return
		}
		booksByNumber := make(map[uint]models.Book, len(books))
		for _, b := range books {
			booksByNumber[b.BookNumber] = b
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Displays")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		// Header row
		headers := []string{
			"DisplayNumber", "DisplayName", "Location", "Quantity",
			"BookNumber", "BookName", "PublisherName",
			"DisplayCreated", "DisplayUpdated",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		// Data rows
		for _, d := range displays {
			book := booksByNumber[d.BookNumber]
			row := sheet.AddRow()

			row.AddCell().SetValue(d.DisplayNumber)
			row.AddCell().SetValue(d.DisplayName)
			row.AddCell().SetValue(d.Location)
			row.AddCell().SetValue(d.Quantity)
			row.AddCell().SetValue(d.BookNumber)
			row.AddCell().SetValue(book.BookName)
			row.AddCell().SetValue(book.PublisherName)
			row.AddCell().SetValue(d.DisplayCreated.Format("2006-01-02 15:04:05"))
			row.AddCell().SetValue(d.DisplayUpdated.Format("2006-01-02 15:04:05"))
		}

		// Set response headers for download
		c.Header("Content-Disposition", "attachment; filename=displays.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		// Write file to response
		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
