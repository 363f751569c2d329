package models

// User is a customer-facing account. A Customer profile must exist before an
// account referencing it can be created.
type User struct {
	UserNumber     uint   `gorm:"primaryKey" json:"User_Number"`
	Username       string `gorm:"index;not null" json:"Username"`
	Password       string `json:"-"`
	Email          string `json:"Email"`
	CustomerNumber uint   `json:"Customer_Number"`
}

type Customer struct {
	CustomerNumber uint   `gorm:"primaryKey" json:"Customer_Number"`
	CustomerName   string `gorm:"index;not null" json:"Customer_Name"`
}

type Staff struct {
	StaffNumber uint   `gorm:"primaryKey" json:"Staff_Number"`
	StaffName   string `gorm:"index;not null" json:"Staff_Name"`
}
