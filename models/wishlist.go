package models

import "time"

// Wishlist rows are created one per add-to-wishlist action; repeated adds for
// the same (user, book) create further rows.
type Wishlist struct {
	WishlistNumber  uint `gorm:"primaryKey" json:"Wishlist_Number"`
	UserNumber      uint `gorm:"index" json:"User_Number"`
	WishlistCreated time.Time
	WishlistUpdated time.Time
}

type WishlistBook struct {
	WishlistNumber uint `gorm:"primaryKey" json:"Wishlist_Number"`
	BookNumber     uint `gorm:"primaryKey;index" json:"Book_Number"`
}
