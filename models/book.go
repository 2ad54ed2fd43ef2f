// models/book.go
package models

import "time"

const BookTable = "lib_books"

// Category mirrors the numeric codes the catalog has always stored.
type Category int

const (
	CategoryProgramming Category = 1
	CategoryGeneral     Category = 2
	CategoryNovel       Category = 3
)

func (c Category) String() string {
	switch c {
	case CategoryProgramming:
		return "Programming"
	case CategoryGeneral:
		return "General"
	case CategoryNovel:
		return "Novel"
	default:
		return "Unknown"
	}
}

func (c Category) Valid() bool {
	return c >= CategoryProgramming && c <= CategoryNovel
}

// Book is a catalog item. Stock counts loanable copies and only moves
// through the ledger methods in db/repo_books.go.
type Book struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:255;not null;index" json:"title"`
	Author    string    `gorm:"size:255;not null" json:"author"`
	Publisher string    `gorm:"size:255;not null" json:"publisher"`
	Year      int       `gorm:"not null;default:0" json:"year"`
	Stock     int       `gorm:"not null;default:0;check:chk_lib_books_stock,stock >= 0" json:"stock"`
	Category  Category  `gorm:"not null;default:2;index" json:"category"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Book) TableName() string { return BookTable }
