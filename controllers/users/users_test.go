package userControllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
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

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateUserRequiresCustomer(t *testing.T) {
	r, db := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/create_users", gin.H{
		"User_Number": 1, "Username": "alice", "Password": "rahasia",
		"Email": "alice@example.com", "Customer_Name": "Alice Wijaya",
	})
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, w.Body.String(), "Customer tidak ditemukan")

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestCreateUserHashesPassword(t *testing.T) {
	r, db := newTestServer(t)
	require.NoError(t, db.Create(&models.Customer{CustomerNumber: 1, CustomerName: "Alice Wijaya"}).Error)

	w := doJSON(t, r, http.MethodPost, "/api/create_users", gin.H{
		"User_Number": 1, "Username": "alice", "Password": "rahasia",
		"Email": "alice@example.com", "Customer_Name": "Alice Wijaya",
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Akun Anda berhasil dibuat!")

	var user models.User
	require.NoError(t, db.First(&user, "username = ?", "alice").Error)
	require.Equal(t, uint(1), user.CustomerNumber)
	require.NotEqual(t, "rahasia", user.Password)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("rahasia")))
}

func TestUpdateUserUnknownUsername(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPut, "/api/update_users", gin.H{
		"Username": "ghost", "Password": "baru", "Email": "ghost@example.com",
	})
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, w.Body.String(), "Username tidak ditemukan")
}

func TestUpdateUserChangesPasswordAndEmailOnly(t *testing.T) {
	r, db := newTestServer(t)
	require.NoError(t, db.Create(&models.Customer{CustomerNumber: 1, CustomerName: "Alice Wijaya"}).Error)
	require.NoError(t, db.Create(&models.User{
		UserNumber: 1, Username: "alice", Password: "old",
		Email: "alice@example.com", CustomerNumber: 1,
	}).Error)

	w := doJSON(t, r, http.MethodPut, "/api/update_users", gin.H{
		"Username": "alice", "Password": "baru", "Email": "new@example.com",
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Akun berhasil diperbarui.")

	var user models.User
	require.NoError(t, db.First(&user, "user_number = ?", 1).Error)
	require.Equal(t, "alice", user.Username)
	require.Equal(t, "new@example.com", user.Email)
	require.Equal(t, uint(1), user.CustomerNumber)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("baru")))
}
