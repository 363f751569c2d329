package models

import "time"

type Review struct {
	ReviewNumber uint      `gorm:"primaryKey" json:"Review_Number"`
	Timestamp    time.Time `json:"Timestamp"`
	Rating       int       `json:"Rating"`
	Text         string    `json:"Text"`
	UserNumber   uint      `gorm:"index" json:"User_Number"`
	BookNumber   uint      `gorm:"index" json:"Book_Number"`
}
