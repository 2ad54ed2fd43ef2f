package db_test

import (
	"Gin_postgres_redis_library/db/dbtest"
	"Gin_postgres_redis_library/models"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifications(t *testing.T) {
	repo := dbtest.Open(t)
	ctx := context.Background()
	alice := dbtest.SeedUser(t, repo, "alice", models.RoleUser)
	bob := dbtest.SeedUser(t, repo, "bob", models.RoleUser)

	first := &models.Notification{UserID: alice.ID, BorrowID: 1, Type: models.NotificationApproved, Message: "approved"}
	second := &models.Notification{UserID: alice.ID, BorrowID: 1, Type: models.NotificationReturned, Message: "returned"}
	require.NoError(t, repo.CreateNotification(ctx, first))
	require.NoError(t, repo.CreateNotification(ctx, second))

	ns, err := repo.ListNotifications(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, ns, 2)
	assert.Equal(t, second.ID, ns[0].ID)

	unread, err := repo.CountUnreadNotifications(ctx, alice.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, unread)

	// bob cannot touch alice's inbox
	assert.ErrorIs(t, repo.MarkNotificationRead(ctx, bob.ID, first.ID), models.ErrNotificationNotFound)
	assert.ErrorIs(t, repo.DeleteNotification(ctx, bob.ID, first.ID), models.ErrNotificationNotFound)

	require.NoError(t, repo.MarkNotificationRead(ctx, alice.ID, first.ID))
	unread, err = repo.CountUnreadNotifications(ctx, alice.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, unread)

	require.NoError(t, repo.DeleteNotification(ctx, alice.ID, second.ID))
	ns, err = repo.ListNotifications(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, ns, 1)
	assert.True(t, ns[0].IsRead)
}
