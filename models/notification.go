package models

import "time"

const NotificationTable = "lib_notifications"

type NotificationType string

const (
	NotificationApproved NotificationType = "approved"
	NotificationRejected NotificationType = "rejected"
	NotificationReturned NotificationType = "returned"
)

type Notification struct {
	ID        uint             `gorm:"primaryKey" json:"id"`
	UserID    string           `gorm:"type:uuid;index;not null" json:"userId"`
	BorrowID  uint             `gorm:"index;not null" json:"borrowId"`
	Type      NotificationType `gorm:"size:20;not null" json:"type"`
	Message   string           `gorm:"type:text;not null" json:"message"`
	IsRead    bool             `gorm:"not null;default:false" json:"isRead"`
	CreatedAt time.Time        `gorm:"index" json:"createdAt"`
}

func (Notification) TableName() string { return NotificationTable }
