package models

import "errors"

var (
	ErrItemNotFound      = errors.New("item not found")
	ErrRecordNotFound    = errors.New("borrow record not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrOutOfStock        = errors.New("out of stock")
	ErrForbidden         = errors.New("forbidden")

	ErrNotificationNotFound = errors.New("notification not found")
	ErrUserNotFound         = errors.New("user not found")
)
