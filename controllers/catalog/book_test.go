package catalogControllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/fatimahnadiaekaputri/GoodReadingBookstore/models"
	"github.com/fatimahnadiaekaputri/GoodReadingBookstore/routes"
)

func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_foreign_keys=1&_txlock=immediate",
		filepath.Join(t.TempDir(), "bookstore.db"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, models.Migrate(db))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	routes.SetupRoutes(r, db)
	return r, db
}

func seedCatalog(t *testing.T, db *gorm.DB) {
	t.Helper()
	now := time.Now()
	require.NoError(t, db.Create(&models.Book{
		BookNumber: 1, BookName: "Dune", PublicationYear: 1965, Pages: 412,
		PublisherName: "Chilton Books",
	}).Error)
	require.NoError(t, db.Create(&models.BookView{
		BookNumber: 1, BookName: "Dune", PublicationYear: 1965, Pages: 412,
		PublisherName: "Chilton Books", DisplayName: "Science Fiction",
		Location: "Aisle 1", Quantity: 5, DisplayCreated: now, DisplayUpdated: now,
		AuthorName: "Frank Herbert",
	}).Error)
}

func TestGetBookByName(t *testing.T) {
	r, db := newTestServer(t)
	seedCatalog(t, db)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/books/Dune", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var rows []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	require.Equal(t, "Dune", rows[0]["Book_Name"])
	require.Equal(t, "Frank Herbert", rows[0]["Author_Name"])
	require.Equal(t, "Aisle 1", rows[0]["Location"])
}

func TestGetBookByNameUnknownBook(t *testing.T) {
	r, db := newTestServer(t)
	seedCatalog(t, db)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/books/Neuromancer", nil))
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, w.Body.String(), "Book not found")
}

func TestGetBookByNameNotDisplayed(t *testing.T) {
	r, db := newTestServer(t)
	// Book exists but has no view row: it is not currently displayed.
	require.NoError(t, db.Create(&models.Book{
		BookNumber: 2, BookName: "Laskar Pelangi", PublicationYear: 2005, Pages: 529,
		PublisherName: "Bentang Pustaka",
	}).Error)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/books/Laskar%20Pelangi", nil))
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, w.Body.String(), "tidak tersedia")
}
