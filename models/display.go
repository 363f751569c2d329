package models

import "time"

type Display struct {
	DisplayNumber  uint   `gorm:"primaryKey" json:"Display_Number"`
	DisplayName    string `json:"Display_Name"`
	Location       string `json:"Location"`
	Quantity       int    `json:"Quantity"`
	BookNumber     uint   `gorm:"index" json:"Book_Number"`
	DisplayCreated time.Time
	DisplayUpdated time.Time
}

// StaffDisplay is an append-only audit trail of which staff member created
// or edited which display. The same (staff, display) pair may appear many
// times, once per touch.
type StaffDisplay struct {
	ID            uint `gorm:"primaryKey;autoIncrement"`
	StaffNumber   uint `gorm:"index"`
	DisplayNumber uint `gorm:"index"`
	RecordedAt    time.Time
}
