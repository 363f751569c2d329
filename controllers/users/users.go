package userControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/fatimahnadiaekaputri/GoodReadingBookstore/httpx"
	"github.com/fatimahnadiaekaputri/GoodReadingBookstore/models"
	"github.com/fatimahnadiaekaputri/GoodReadingBookstore/store"
)

// -------- Request Structs --------

type CreateUserRequest struct {
	UserNumber   uint   `json:"User_Number" binding:"required"`
	Username     string `json:"Username" binding:"required"`
	Password     string `json:"Password" binding:"required"`
	Email        string `json:"Email" binding:"required"`
	CustomerName string `json:"Customer_Name" binding:"required"`
}

type UpdateUserRequest struct {
	Username string `json:"Username" binding:"required"`
	Password string `json:"Password" binding:"required"`
	Email    string `json:"Email" binding:"required"`
}

// -------- Core Logic --------

// CreateUser opens an account for an existing customer profile. Passwords
// are stored bcrypt-hashed, never in plaintext.
func CreateUser(db *gorm.DB, req CreateUserRequest) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return db.Transaction(func(tx *gorm.DB) error {
		customer, err := store.CustomerByName(tx, req.CustomerName)
		if err != nil {
			return store.OrNotFound(err, "Customer tidak ditemukan")
		}
		return tx.Create(&models.User{
			UserNumber:     req.UserNumber,
			Username:       req.Username,
			Password:       string(hash),
			Email:          req.Email,
			CustomerNumber: customer.CustomerNumber,
		}).Error
	})
}

// UpdateUser changes an account's password and email, nothing else.
func UpdateUser(db *gorm.DB, req UpdateUserRequest) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return db.Transaction(func(tx *gorm.DB) error {
		user, err := store.UserByUsername(tx, req.Username)
		if err != nil {
			return store.OrNotFound(err, "Username tidak ditemukan.")
		}
		return tx.Model(user).Updates(map[string]interface{}{
			"password": string(hash),
			"email":    req.Email,
		}).Error
	})
}

// -------- Handlers --------

// POST /api/create_users
func CreateUserHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := CreateUser(db, req); err != nil {
			httpx.Error(c, err)
			return
		}
		httpx.Message(c, "Akun Anda berhasil dibuat!")
	}
}

// PUT /api/update_users
func UpdateUserHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := UpdateUser(db, req); err != nil {
			httpx.Error(c, err)
			return
		}
		httpx.Message(c, "Akun berhasil diperbarui.")
	}
}
