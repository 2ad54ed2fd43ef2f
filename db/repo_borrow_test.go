package db_test

import (
	"Gin_postgres_redis_library/db"
	"Gin_postgres_redis_library/db/dbtest"
	"Gin_postgres_redis_library/models"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBorrow(t *testing.T) {
	repo := dbtest.Open(t)
	ctx := context.Background()
	user := dbtest.SeedUser(t, repo, "alice", models.RoleUser)
	book := dbtest.SeedBook(t, repo, "Dune", 1)
	at := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	rec, err := repo.CreateBorrow(ctx, user.ID, book.ID, at)
	require.NoError(t, err)
	assert.NotZero(t, rec.ID)
	assert.Equal(t, models.StatusPending, rec.Status)

	got, err := repo.FindBorrowByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, got.Status)
	assert.WithinDuration(t, at, got.BorrowDate, time.Second)
	assert.Nil(t, got.ReturnDate)
	assert.Equal(t, 1, dbtest.Stock(t, repo, book.ID), "requests do not reserve stock")
}

func TestCreateBorrow_UnknownBook(t *testing.T) {
	repo := dbtest.Open(t)
	user := dbtest.SeedUser(t, repo, "alice", models.RoleUser)

	_, err := repo.CreateBorrow(context.Background(), user.ID, 42, time.Now())
	assert.ErrorIs(t, err, models.ErrItemNotFound)
}

func TestFindBorrowByID_NotFound(t *testing.T) {
	repo := dbtest.Open(t)
	_, err := repo.FindBorrowByID(context.Background(), 7)
	assert.ErrorIs(t, err, models.ErrRecordNotFound)
}

func TestSetBorrowStatus(t *testing.T) {
	repo := dbtest.Open(t)
	ctx := context.Background()
	user := dbtest.SeedUser(t, repo, "alice", models.RoleUser)
	book := dbtest.SeedBook(t, repo, "Dune", 1)
	rec, err := repo.CreateBorrow(ctx, user.ID, book.ID, time.Now().UTC())
	require.NoError(t, err)

	due := time.Date(2026, 3, 11, 9, 0, 0, 0, time.UTC)
	require.NoError(t, repo.SetBorrowStatus(ctx, rec.ID, models.TransitionApprove, &due))

	got, err := repo.FindBorrowByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, got.Status)
	require.NotNil(t, got.ReturnDate)
	assert.WithinDuration(t, due, *got.ReturnDate, time.Second)

	// the record is no longer pending, so neither decision applies again
	assert.ErrorIs(t, repo.SetBorrowStatus(ctx, rec.ID, models.TransitionApprove, &due), models.ErrInvalidTransition)
	assert.ErrorIs(t, repo.SetBorrowStatus(ctx, rec.ID, models.TransitionReject, nil), models.ErrInvalidTransition)

	assert.ErrorIs(t, repo.SetBorrowStatus(ctx, 999, models.TransitionReject, nil), models.ErrRecordNotFound)
	assert.ErrorIs(t, repo.SetBorrowStatus(ctx, rec.ID, models.Transition{}, nil), models.ErrInvalidTransition)
}

func TestListBorrows(t *testing.T) {
	repo := dbtest.Open(t)
	ctx := context.Background()
	alice := dbtest.SeedUser(t, repo, "alice", models.RoleUser)
	bob := dbtest.SeedUser(t, repo, "bob", models.RoleUser)
	dune := dbtest.SeedBook(t, repo, "Dune", 5)
	emma := dbtest.SeedBook(t, repo, "Emma", 5)

	now := time.Now().UTC()
	a1, err := repo.CreateBorrow(ctx, alice.ID, dune.ID, now)
	require.NoError(t, err)
	b1, err := repo.CreateBorrow(ctx, bob.ID, emma.ID, now)
	require.NoError(t, err)
	a2, err := repo.CreateBorrow(ctx, alice.ID, emma.ID, now)
	require.NoError(t, err)
	require.NoError(t, repo.SetBorrowStatus(ctx, a1.ID, models.TransitionReject, nil))

	all, err := repo.ListBorrows(ctx, db.BorrowsQuery{})
	require.NoError(t, err)
	assert.EqualValues(t, 3, all.Total)
	require.Len(t, all.Items, 3)
	assert.Equal(t, []uint{a2.ID, b1.ID, a1.ID}, []uint{all.Items[0].ID, all.Items[1].ID, all.Items[2].ID})
	assert.Equal(t, "alice", all.Items[0].BorrowerName)
	assert.Equal(t, "Emma", all.Items[0].BookTitle)

	mine, err := repo.ListBorrows(ctx, db.BorrowsQuery{UserID: alice.ID})
	require.NoError(t, err)
	assert.EqualValues(t, 2, mine.Total)
	for _, row := range mine.Items {
		assert.Equal(t, alice.ID, row.UserID)
	}

	rejected, err := repo.ListBorrows(ctx, db.BorrowsQuery{Status: models.StatusRejected})
	require.NoError(t, err)
	require.Len(t, rejected.Items, 1)
	assert.Equal(t, a1.ID, rejected.Items[0].ID)

	paged, err := repo.ListBorrows(ctx, db.BorrowsQuery{Page: 2, Size: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 3, paged.Total)
	require.Len(t, paged.Items, 1)
	assert.Equal(t, a1.ID, paged.Items[0].ID)
}

func TestFindBorrowRow(t *testing.T) {
	repo := dbtest.Open(t)
	ctx := context.Background()
	alice := dbtest.SeedUser(t, repo, "alice", models.RoleUser)
	dune := dbtest.SeedBook(t, repo, "Dune", 1)
	rec, err := repo.CreateBorrow(ctx, alice.ID, dune.ID, time.Now().UTC())
	require.NoError(t, err)

	row, err := repo.FindBorrowRow(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dune", row.BookTitle)
	assert.Equal(t, models.StatusPending, row.Status)

	_, err = repo.FindBorrowRow(ctx, rec.ID+1)
	assert.ErrorIs(t, err, models.ErrRecordNotFound)
}
