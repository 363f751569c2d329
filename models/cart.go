package models

import "time"

// Cart snapshots quantity/price/discount at add-to-cart time.
type Cart struct {
	CartNumber  uint    `gorm:"primaryKey" json:"Cart_Number"`
	UserNumber  uint    `gorm:"index" json:"User_Number"`
	Quantity    int     `json:"Quantity"`
	Price       float64 `json:"Price"`
	Discount    float64 `json:"Discount"`
	CreatedCart time.Time
	UpdatedCart time.Time
}

type CartBook struct {
	CartNumber uint `gorm:"primaryKey" json:"Cart_Number"`
	BookNumber uint `gorm:"primaryKey;index" json:"Book_Number"`
}
