// Command seed loads a starter catalog into the configured database so a
// fresh deployment has books, customers and staff to work with.
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/fatimahnadiaekaputri/GoodReadingBookstore/models"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the starter bookstore dataset",
	RunE: func(cmd *cobra.Command, args []string) error {
		if envFile != "" {
			if err := godotenv.Load(envFile); err != nil {
				return fmt.Errorf("load env file: %w", err)
			}
		} else {
			_ = godotenv.Load()
		}

		db, err := openDatabase()
		if err != nil {
			return err
		}
		if err := models.Migrate(db); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		return seed(db)
	},
}

func main() {
	rootCmd.Flags().StringVar(&envFile, "env-file", "", "path to a .env file with database settings")
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("seed failed: %v", err)
	}
}

func openDatabase() (*gorm.DB, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			os.Getenv("DB_HOST"), os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_NAME"), os.Getenv("DB_PORT"),
		)
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	return db, nil
}

func seed(db *gorm.DB) error {
	now := time.Now()

	books := []models.Book{
		{BookNumber: 1, BookName: "Dune", PublicationYear: 1965, Pages: 412, PublisherName: "Chilton Books"},
		{BookNumber: 2, BookName: "Laskar Pelangi", PublicationYear: 2005, Pages: 529, PublisherName: "Bentang Pustaka"},
		{BookNumber: 3, BookName: "Bumi Manusia", PublicationYear: 1980, Pages: 535, PublisherName: "Hasta Mitra"},
		{BookNumber: 4, BookName: "Cantik Itu Luka", PublicationYear: 2002, Pages: 520, PublisherName: "Gramedia"},
	}
	authors := map[uint]string{
		1: "Frank Herbert",
		2: "Andrea Hirata",
		3: "Pramoedya Ananta Toer",
		4: "Eka Kurniawan",
	}

	displays := []models.Display{
		{DisplayNumber: 101, DisplayName: "Science Fiction", Location: "Aisle 1", Quantity: 5, BookNumber: 1, DisplayCreated: now, DisplayUpdated: now},
		{DisplayNumber: 102, DisplayName: "Sastra Indonesia", Location: "Aisle 3", Quantity: 8, BookNumber: 2, DisplayCreated: now, DisplayUpdated: now},
		{DisplayNumber: 103, DisplayName: "Sastra Indonesia", Location: "Aisle 3", Quantity: 3, BookNumber: 3, DisplayCreated: now, DisplayUpdated: now},
	}

	customers := []models.Customer{
		{CustomerNumber: 1, CustomerName: "Alice Wijaya"},
		{CustomerNumber: 2, CustomerName: "Budi Santoso"},
	}
	staff := []models.Staff{
		{StaffNumber: 1, StaffName: "Citra"},
		{StaffNumber: 2, StaffName: "Dewi"},
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&books).Error; err != nil {
			return err
		}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&displays).Error; err != nil {
			return err
		}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&customers).Error; err != nil {
			return err
		}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&staff).Error; err != nil {
			return err
		}

		// View rows for the displayed books. In production Book_View may be a
		// real SQL view; seeding keeps the table-backed variant consistent.
		for _, d := range displays {
			book := books[0]
			for _, b := range books {
				if b.BookNumber == d.BookNumber {
					book = b
					break
				}
			}
			row := models.BookView{
				BookNumber:      book.BookNumber,
				BookName:        book.BookName,
				PublicationYear: book.PublicationYear,
				Pages:           book.Pages,
				PublisherName:   book.PublisherName,
				DisplayName:     d.DisplayName,
				Location:        d.Location,
				Quantity:        d.Quantity,
				DisplayCreated:  d.DisplayCreated,
				DisplayUpdated:  d.DisplayUpdated,
				AuthorName:      authors[book.BookNumber],
			}
			var count int64
			if err := tx.Model(&models.BookView{}).
				Where("book_number = ?", row.BookNumber).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				if err := tx.Create(&row).Error; err != nil {
					return err
				}
			}
		}

		log.Printf("seeded %d books, %d displays, %d customers, %d staff",
			len(books), len(displays), len(customers), len(staff))
		return nil
	})
}
