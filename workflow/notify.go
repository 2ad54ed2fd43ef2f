package workflow

import (
	"Gin_postgres_redis_library/db"
	"Gin_postgres_redis_library/models"
	"context"
	"fmt"
	"time"
)

// RepoEmitter appends notifications to the borrower's inbox table.
type RepoEmitter struct{ repo *db.Repo }

func NewRepoEmitter(repo *db.Repo) *RepoEmitter { return &RepoEmitter{repo: repo} }

func (e *RepoEmitter) Emit(ctx context.Context, n models.Notification) error {
	return e.repo.CreateNotification(ctx, &n)
}

const dueDateLayout = "2 January 2006"

func approvedMessage(title string, due time.Time) string {
	return fmt.Sprintf("Your request to borrow %q was approved. Please return it by %s.", title, due.Format(dueDateLayout))
}

func rejectedMessage(title string) string {
	return fmt.Sprintf("Your request to borrow %q was rejected by the librarian.", title)
}

func returnedMessage(title string) string {
	return fmt.Sprintf("%q has been returned. Thank you.", title)
}
