package models

import "gorm.io/gorm"

// Migrate creates or updates every table the service owns. Shared by the
// server, the seed command and the tests.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Book{},
		&BookView{},
		&Display{},
		&StaffDisplay{},
		&User{},
		&Customer{},
		&Staff{},
		&Wishlist{},
		&WishlistBook{},
		&Cart{},
		&CartBook{},
		&Review{},
	)
}
