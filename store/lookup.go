// Package store holds the table-scoped query helpers shared by the request
// workflows. Every helper takes its database handle explicitly so that a
// workflow can run them all against one transaction.
package store

import (
	"gorm.io/gorm"

	"github.com/fatimahnadiaekaputri/GoodReadingBookstore/models"
)

// BookByName is an exact-match lookup on the canonical Book record.
func BookByName(tx *gorm.DB, name string) (*models.Book, error) {
	var book models.Book
	if err := tx.Where(&models.Book{BookName: name}).First(&book).Error; err != nil {
		return nil, err
	}
	return &book, nil
}

// ViewRowsByBookNumber lists the catalog view rows for a resolved book.
func ViewRowsByBookNumber(tx *gorm.DB, bookNumber uint) ([]models.BookView, error) {
	var rows []models.BookView
	if err := tx.Where("book_number = ?", bookNumber).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ViewRowByBookName resolves a book through the catalog view. The view's
// name column can differ from the canonical Book_Name in partially-displayed
// catalogs, so callers that need the canonical record use BookByName instead.
func ViewRowByBookName(tx *gorm.DB, name string) (*models.BookView, error) {
	var row models.BookView
	if err := tx.Where("book_name = ?", name).Take(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func UserByUsername(tx *gorm.DB, username string) (*models.User, error) {
	var user models.User
	if err := tx.Where(&models.User{Username: username}).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func CustomerByName(tx *gorm.DB, name string) (*models.Customer, error) {
	var customer models.Customer
	if err := tx.Where(&models.Customer{CustomerName: name}).First(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func StaffByName(tx *gorm.DB, name string) (*models.Staff, error) {
	var staff models.Staff
	if err := tx.Where(&models.Staff{StaffName: name}).First(&staff).Error; err != nil {
		return nil, err
	}
	return &staff, nil
}

// WishlistEntry finds one wishlist join row for (user, book), the
// precondition for adding the book to that user's cart.
func WishlistEntry(tx *gorm.DB, userNumber, bookNumber uint) (*models.WishlistBook, error) {
	var entry models.WishlistBook
	err := tx.Model(&models.WishlistBook{}).
		Joins("JOIN wishlists ON wishlists.wishlist_number = wishlist_books.wishlist_number").
		Where("wishlists.user_number = ? AND wishlist_books.book_number = ?", userNumber, bookNumber).
		First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}
