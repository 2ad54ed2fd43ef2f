// db/repo_borrow.go
package db

import (
	"Gin_postgres_redis_library/models"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// CreateBorrow opens a pending request. The book must exist; stock is not
// touched until the request is approved.
func (r *Repo) CreateBorrow(ctx context.Context, userID string, bookID uint, at time.Time) (*models.Borrow, error) {
	var b *models.Borrow
	err := r.Transaction(ctx, func(tx *Repo) error {
		if _, err := tx.FindBookByID(ctx, bookID); err != nil {
			return err
		}
		rec := &models.Borrow{
			UserID:     userID,
			BookID:     bookID,
			Status:     models.StatusPending,
			BorrowDate: at,
		}
		if err := tx.DB.WithContext(ctx).Create(rec).Error; err != nil {
			return err
		}
		b = rec
		return nil
	})
	return b, err
}

func (r *Repo) FindBorrowByID(ctx context.Context, id uint) (*models.Borrow, error) {
	var b models.Borrow
	if err := r.DB.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrRecordNotFound
		}
		return nil, err
	}
	return &b, nil
}

// SetBorrowStatus applies t to the record, keyed on t's source status. A
// record that moved on in the meantime matches no row and the call fails
// with ErrInvalidTransition, so two deciders can never both succeed.
// returnDate is written only when non-nil.
func (r *Repo) SetBorrowStatus(ctx context.Context, id uint, t models.Transition, returnDate *time.Time) error {
	if !t.Valid() {
		return models.ErrInvalidTransition
	}
	updates := map[string]any{"status": t.To()}
	if returnDate != nil {
		updates["return_date"] = *returnDate
	}
	res := r.DB.WithContext(ctx).Model(&models.Borrow{}).
		Where("id = ? AND status = ?", id, t.From()).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		if _, err := r.FindBorrowByID(ctx, id); err != nil {
			return err
		}
		return models.ErrInvalidTransition
	}
	return nil
}

type BorrowsQuery struct {
	UserID string              // "" = every borrower
	Status models.BorrowStatus // "" = every status
	Page   int
	Size   int
}

type PagedBorrows struct {
	Total int64              `json:"total"`
	Items []models.BorrowRow `json:"items"`
}

func (r *Repo) borrowRows(ctx context.Context) *gorm.DB {
	return r.DB.WithContext(ctx).
		Table(models.BorrowTable+" b").
		Joins("JOIN "+models.UserTable+" u ON u.id = b.user_id").
		Joins("JOIN "+models.BookTable+" bk ON bk.id = b.book_id")
}

const borrowRowColumns = `
	b.id, b.user_id, u.name AS borrower_name,
	b.book_id, bk.title AS book_title,
	b.borrow_date, b.return_date, b.status
`

// ListBorrows returns history rows, newest request first.
func (r *Repo) ListBorrows(ctx context.Context, q BorrowsQuery) (*PagedBorrows, error) {
	page, size := pageBounds(q.Page, q.Size)

	filter := func(tx *gorm.DB) *gorm.DB {
		if q.UserID != "" {
			tx = tx.Where("b.user_id = ?", q.UserID)
		}
		if q.Status != "" {
			tx = tx.Where("b.status = ?", q.Status)
		}
		return tx
	}

	var total int64
	if err := filter(r.borrowRows(ctx)).Count(&total).Error; err != nil {
		return nil, err
	}

	rows := []models.BorrowRow{}
	if err := filter(r.borrowRows(ctx)).
		Select(borrowRowColumns).
		Order("b.id DESC").
		Offset((page - 1) * size).
		Limit(size).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return &PagedBorrows{Total: total, Items: rows}, nil
}

func (r *Repo) FindBorrowRow(ctx context.Context, id uint) (*models.BorrowRow, error) {
	var rows []models.BorrowRow
	if err := r.borrowRows(ctx).
		Select(borrowRowColumns).
		Where("b.id = ?", id).
		Limit(1).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, models.ErrRecordNotFound
	}
	return &rows[0], nil
}
