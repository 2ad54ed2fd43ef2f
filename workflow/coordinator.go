// Package workflow drives a borrow record through its lifecycle:
// request, approve or reject, return. It owns the ordering of the stock
// ledger, the record update and the borrower notification for each step.
package workflow

import (
	"Gin_postgres_redis_library/db"
	"Gin_postgres_redis_library/models"
	"context"
	"fmt"
	"log/slog"
	"time"
)

// LoanPeriod is how long an approved borrower may keep a copy. Wall-clock
// days from the approval instant.
const LoanPeriod = 10 * 24 * time.Hour

// Actor is the caller on whose behalf an operation runs. The coordinator
// trusts it; resolving it is the transport's job.
type Actor struct {
	UserID string
	Role   models.Role
}

func (a Actor) IsAdmin() bool { return a.Role == models.RoleAdmin }

// Emitter delivers a one-way notice to a borrower. Delivery is best effort.
type Emitter interface {
	Emit(ctx context.Context, n models.Notification) error
}

type Coordinator struct {
	repo    *db.Repo
	emitter Emitter
	log     *slog.Logger
	now     func() time.Time
}

type Option func(*Coordinator)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Coordinator) { c.now = now }
}

// WithEmitter replaces the default database-backed emitter.
func WithEmitter(e Emitter) Option {
	return func(c *Coordinator) { c.emitter = e }
}

func New(repo *db.Repo, log *slog.Logger, opts ...Option) *Coordinator {
	c := &Coordinator{
		repo:    repo,
		emitter: NewRepoEmitter(repo),
		log:     log,
		now:     func() time.Time { return time.Now().UTC() },
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// RequestBorrow files a pending request for bookID on behalf of the actor.
// The stock check here only spares the borrower a request that cannot be
// approved right now; nothing is reserved until Approve.
func (c *Coordinator) RequestBorrow(ctx context.Context, actor Actor, bookID uint) (*models.Borrow, error) {
	if actor.UserID == "" {
		return nil, models.ErrForbidden
	}
	book, err := c.repo.FindBookByID(ctx, bookID)
	if err != nil {
		requestsTotal.WithLabelValues(outcome(err)).Inc()
		return nil, err
	}
	if book.Stock <= 0 {
		requestsTotal.WithLabelValues(outcome(models.ErrOutOfStock)).Inc()
		return nil, models.ErrOutOfStock
	}
	rec, err := c.repo.CreateBorrow(ctx, actor.UserID, bookID, c.now())
	if err != nil {
		requestsTotal.WithLabelValues(outcome(err)).Inc()
		return nil, fmt.Errorf("create borrow: %w", err)
	}
	requestsTotal.WithLabelValues(outcome(nil)).Inc()
	c.log.Info("borrow requested", "borrow_id", rec.ID, "book_id", bookID, "user_id", actor.UserID)
	return rec, nil
}

// Approve reserves a copy and starts the loan. Either the stock decrement
// and the status change both land or neither does.
func (c *Coordinator) Approve(ctx context.Context, actor Actor, borrowID uint) (*models.Borrow, error) {
	if !actor.IsAdmin() {
		return nil, c.fail(models.TransitionApprove, models.ErrForbidden)
	}
	now := c.now()
	due := now.Add(LoanPeriod)

	var (
		rec  *models.Borrow
		book *models.Book
	)
	err := c.repo.Transaction(ctx, func(tx *db.Repo) error {
		var err error
		if rec, err = loadFor(ctx, tx, borrowID, models.TransitionApprove); err != nil {
			return err
		}
		if err = tx.TryDecrementStock(ctx, rec.BookID); err != nil {
			return err
		}
		if err = tx.SetBorrowStatus(ctx, rec.ID, models.TransitionApprove, &due); err != nil {
			return err
		}
		book, err = tx.FindBookByID(ctx, rec.BookID)
		return err
	})
	if err != nil {
		return nil, c.fail(models.TransitionApprove, err)
	}

	rec.Status = models.StatusApproved
	rec.ReturnDate = &due
	c.committed(ctx, models.TransitionApprove, rec, book, approvedMessage(book.Title, due))
	return rec, nil
}

// Reject closes a pending request without touching stock.
func (c *Coordinator) Reject(ctx context.Context, actor Actor, borrowID uint) (*models.Borrow, error) {
	if !actor.IsAdmin() {
		return nil, c.fail(models.TransitionReject, models.ErrForbidden)
	}

	var (
		rec  *models.Borrow
		book *models.Book
	)
	err := c.repo.Transaction(ctx, func(tx *db.Repo) error {
		var err error
		if rec, err = loadFor(ctx, tx, borrowID, models.TransitionReject); err != nil {
			return err
		}
		if err = tx.SetBorrowStatus(ctx, rec.ID, models.TransitionReject, nil); err != nil {
			return err
		}
		book, err = tx.FindBookByID(ctx, rec.BookID)
		return err
	})
	if err != nil {
		return nil, c.fail(models.TransitionReject, err)
	}

	rec.Status = models.StatusRejected
	c.committed(ctx, models.TransitionReject, rec, book, rejectedMessage(book.Title))
	return rec, nil
}

// Return ends an approved loan: the copy goes back on the shelf and the
// record's return date becomes the actual return time.
func (c *Coordinator) Return(ctx context.Context, actor Actor, borrowID uint) (*models.Borrow, error) {
	now := c.now()

	var (
		rec  *models.Borrow
		book *models.Book
	)
	err := c.repo.Transaction(ctx, func(tx *db.Repo) error {
		var err error
		if rec, err = tx.FindBorrowByID(ctx, borrowID); err != nil {
			return err
		}
		if !actor.IsAdmin() && rec.UserID != actor.UserID {
			return models.ErrForbidden
		}
		if !models.TransitionReturn.Allows(rec.Status) {
			return models.ErrInvalidTransition
		}
		if err = tx.SetBorrowStatus(ctx, rec.ID, models.TransitionReturn, &now); err != nil {
			return err
		}
		if err = tx.IncrementStock(ctx, rec.BookID); err != nil {
			return err
		}
		book, err = tx.FindBookByID(ctx, rec.BookID)
		return err
	})
	if err != nil {
		return nil, c.fail(models.TransitionReturn, err)
	}

	rec.Status = models.StatusReturned
	rec.ReturnDate = &now
	c.committed(ctx, models.TransitionReturn, rec, book, returnedMessage(book.Title))
	return rec, nil
}

// loadFor reads the record and rejects t early when the record is already
// past t's source status. SetBorrowStatus re-checks under the write.
func loadFor(ctx context.Context, tx *db.Repo, borrowID uint, t models.Transition) (*models.Borrow, error) {
	rec, err := tx.FindBorrowByID(ctx, borrowID)
	if err != nil {
		return nil, err
	}
	if !t.Allows(rec.Status) {
		return nil, models.ErrInvalidTransition
	}
	return rec, nil
}

func (c *Coordinator) fail(t models.Transition, err error) error {
	transitionsTotal.WithLabelValues(t.Name(), outcome(err)).Inc()
	c.log.Info("borrow transition refused", "transition", t.Name(), "err", err)
	return err
}

// committed runs after the transaction. A failed notification is logged and
// counted; the transition itself stays committed.
func (c *Coordinator) committed(ctx context.Context, t models.Transition, rec *models.Borrow, book *models.Book, msg string) {
	transitionsTotal.WithLabelValues(t.Name(), outcome(nil)).Inc()
	c.log.Info("borrow transition committed",
		"transition", t.Name(),
		"borrow_id", rec.ID,
		"book_id", book.ID,
		"stock", book.Stock,
	)

	err := c.emitter.Emit(ctx, models.Notification{
		UserID:   rec.UserID,
		BorrowID: rec.ID,
		Type:     t.NotificationType(),
		Message:  msg,
	})
	if err != nil {
		notificationFailuresTotal.WithLabelValues(string(t.NotificationType())).Inc()
		c.log.Warn("notification not delivered",
			"borrow_id", rec.ID,
			"type", t.NotificationType(),
			"err", err,
		)
	}
}
