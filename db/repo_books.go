// db/repo_books.go
package db

import (
	"Gin_postgres_redis_library/models"
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

// Catalog

func (r *Repo) CreateBook(ctx context.Context, b *models.Book) error {
	return r.DB.WithContext(ctx).Create(b).Error
}

func (r *Repo) FindBookByID(ctx context.Context, id uint) (*models.Book, error) {
	var b models.Book
	if err := r.DB.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrItemNotFound
		}
		return nil, err
	}
	return &b, nil
}

type BooksQuery struct {
	Q        string // title/author substring
	Category models.Category
}

func (r *Repo) ListBooks(ctx context.Context, q BooksQuery) ([]models.Book, error) {
	tx := r.DB.WithContext(ctx).Model(&models.Book{})
	if s := strings.TrimSpace(q.Q); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		tx = tx.Where("LOWER(title) LIKE ? OR LOWER(author) LIKE ?", like, like)
	}
	if q.Category != 0 {
		tx = tx.Where("category = ?", q.Category)
	}
	books := []models.Book{}
	if err := tx.Order("id DESC").Find(&books).Error; err != nil {
		return nil, err
	}
	return books, nil
}

// Ledger

// TryDecrementStock takes one copy off the shelf. The guard lives in the
// UPDATE itself so two approvals racing for the last copy cannot both win.
func (r *Repo) TryDecrementStock(ctx context.Context, bookID uint) error {
	res := r.DB.WithContext(ctx).Model(&models.Book{}).
		Where("id = ? AND stock > 0", bookID).
		Update("stock", gorm.Expr("stock - 1"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 1 {
		return nil
	}
	if _, err := r.FindBookByID(ctx, bookID); err != nil {
		return err
	}
	return models.ErrOutOfStock
}

// IncrementStock puts one copy back. Only called for a confirmed return.
func (r *Repo) IncrementStock(ctx context.Context, bookID uint) error {
	res := r.DB.WithContext(ctx).Model(&models.Book{}).
		Where("id = ?", bookID).
		Update("stock", gorm.Expr("stock + 1"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.ErrItemNotFound
	}
	return nil
}
