// models/borrow.go
package models

import "time"

const BorrowTable = "lib_borrows"

type BorrowStatus string

const (
	StatusPending  BorrowStatus = "pending"
	StatusApproved BorrowStatus = "approved"
	StatusRejected BorrowStatus = "rejected"
	StatusReturned BorrowStatus = "returned"
)

func (s BorrowStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusReturned:
		return true
	}
	return false
}

// Terminal reports whether no transition leaves s.
func (s BorrowStatus) Terminal() bool {
	for _, t := range transitions {
		if t.from == s {
			return false
		}
	}
	return s.Valid()
}

// Transition is one edge of the borrow state machine. The zero value is not
// a legal edge, and the only legal values are the package-level ones below,
// so storage code cannot be asked to apply an edge that is not in the table.
type Transition struct {
	name string
	from BorrowStatus
	to   BorrowStatus
}

var (
	TransitionApprove = Transition{name: "approve", from: StatusPending, to: StatusApproved}
	TransitionReject  = Transition{name: "reject", from: StatusPending, to: StatusRejected}
	TransitionReturn  = Transition{name: "return", from: StatusApproved, to: StatusReturned}
)

var transitions = []Transition{TransitionApprove, TransitionReject, TransitionReturn}

func (t Transition) Name() string       { return t.name }
func (t Transition) From() BorrowStatus { return t.from }
func (t Transition) To() BorrowStatus   { return t.to }
func (t Transition) Valid() bool        { return t.name != "" }

// Allows reports whether a record currently in status s may take t.
func (t Transition) Allows(s BorrowStatus) bool {
	return t.Valid() && t.from == s
}

// NotificationType is the notification emitted once t has committed.
func (t Transition) NotificationType() NotificationType {
	return NotificationType(t.to)
}

// CanTransition reports whether from -> to is an edge of the state machine.
func CanTransition(from, to BorrowStatus) bool {
	for _, t := range transitions {
		if t.from == from && t.to == to {
			return true
		}
	}
	return false
}

// Borrow is the lifecycle record of one loan request. ReturnDate holds the
// due date while approved and the actual return time once returned.
type Borrow struct {
	ID         uint         `gorm:"primaryKey" json:"id"`
	UserID     string       `gorm:"type:uuid;index;not null" json:"userId"`
	BookID     uint         `gorm:"index;not null" json:"bookId"`
	Status     BorrowStatus `gorm:"size:20;not null;default:'pending';index" json:"status"`
	BorrowDate time.Time    `gorm:"not null" json:"borrowDate"`
	ReturnDate *time.Time   `json:"returnDate,omitempty"`
	CreatedAt  time.Time    `json:"createdAt"`
	UpdatedAt  time.Time    `json:"updatedAt"`
}

func (Borrow) TableName() string { return BorrowTable }

// BorrowRow is the history projection joined with borrower and book.
type BorrowRow struct {
	ID           uint         `json:"id"`
	UserID       string       `json:"userId"`
	BorrowerName string       `json:"borrower"`
	BookID       uint         `json:"bookId"`
	BookTitle    string       `json:"book"`
	BorrowDate   time.Time    `json:"borrowDate"`
	ReturnDate   *time.Time   `json:"returnDate,omitempty"`
	Status       BorrowStatus `json:"status"`
}
