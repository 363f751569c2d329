package models

import "time"

type Book struct {
	BookNumber      uint   `gorm:"primaryKey" json:"Book_Number"`
	BookName        string `gorm:"not null;index" json:"Book_Name"`
	PublicationYear int    `json:"Publication_Year"`
	Pages           int    `json:"Pages"`
	PublisherName   string `json:"Publisher_Name"`
}

// BookView is the denormalized catalog read model joining Book, Display,
// Publisher and Author. It is migrated as a plain table; a production
// deployment may back it with a real SQL view instead, as long as the
// column set matches.
type BookView struct {
	BookNumber      uint      `gorm:"index" json:"-"`
	BookName        string    `gorm:"index" json:"Book_Name"`
	PublicationYear int       `json:"Publication_Year"`
	Pages           int       `json:"Pages"`
	PublisherName   string    `json:"Publisher_Name"`
	DisplayName     string    `json:"Display_Name"`
	Location        string    `json:"Location"`
	Quantity        int       `json:"Quantity"`
	DisplayCreated  time.Time `json:"Display_Created"`
	DisplayUpdated  time.Time `json:"Display_Updated"`
	AuthorName      string    `json:"Author_Name"`
}
