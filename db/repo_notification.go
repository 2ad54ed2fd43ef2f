package db

import (
	"Gin_postgres_redis_library/models"
	"context"
	"fmt"
)

func (r *Repo) CreateNotification(ctx context.Context, n *models.Notification) error {
	if err := r.DB.WithContext(ctx).Create(n).Error; err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

func (r *Repo) ListNotifications(ctx context.Context, userID string) ([]models.Notification, error) {
	ns := []models.Notification{}
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&ns).Error
	return ns, err
}

func (r *Repo) CountUnreadNotifications(ctx context.Context, userID string) (int64, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&n).Error
	return n, err
}

// MarkNotificationRead is scoped to the recipient; someone else's id reads
// as not found.
func (r *Repo) MarkNotificationRead(ctx context.Context, userID string, id uint) error {
	res := r.DB.WithContext(ctx).Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.ErrNotificationNotFound
	}
	return nil
}

func (r *Repo) DeleteNotification(ctx context.Context, userID string, id uint) error {
	res := r.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Notification{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.ErrNotificationNotFound
	}
	return nil
}
