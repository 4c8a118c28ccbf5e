package pgstore_test

import (
	"context"
	"io/fs"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/feedbackboard/internal/board"
	"github.com/dmitrymomot/feedbackboard/internal/board/pgstore"
	"github.com/dmitrymomot/feedbackboard/pkg/logger"
	"github.com/dmitrymomot/feedbackboard/pkg/pg"
)

func TestMigrationsEmbedded(t *testing.T) {
	t.Parallel()

	files, err := fs.Glob(pgstore.Migrations, pgstore.MigrationsDir+"/*.sql")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"migrations/00001_create_users.sql",
		"migrations/00002_create_feedback.sql",
		"migrations/00003_create_comments.sql",
	}, files)
}

// newStore connects to TEST_DATABASE_URL and applies migrations.
func newStore(t *testing.T) *pgstore.Store {
	t.Helper()

	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	cfg := pg.Config{
		ConnectionString: url,
		RetryAttempts:    1,
		MigrationsDir:    pgstore.MigrationsDir,
		MigrationsTable:  "schema_migrations",
	}
	pool, err := pg.Connect(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pg.Migrate(ctx, pool, cfg, pgstore.Migrations, logger.Discard())
	require.NoError(t, err)

	return pgstore.New(pool)
}

func TestStore_Integration(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)
	suffix := uuid.NewString()[:8]

	owner := board.User{
		ID:        uuid.NewString(),
		Username:  "owner_" + suffix,
		Email:     "owner_" + suffix + "@example.com",
		CreatedAt: now,
	}
	require.NoError(t, store.CreateUser(ctx, owner))
	assert.ErrorIs(t, store.CreateUser(ctx, board.User{
		ID: uuid.NewString(), Username: "other_" + suffix, Email: owner.Email, CreatedAt: now,
	}), board.ErrDuplicateEmail)
	assert.ErrorIs(t, store.CreateUser(ctx, board.User{
		ID: uuid.NewString(), Username: owner.Username, Email: "other_" + suffix + "@example.com", CreatedAt: now,
	}), board.ErrDuplicateUsername)

	got, err := store.GetUserByEmail(ctx, owner.Email)
	require.NoError(t, err)
	assert.Equal(t, owner.ID, got.ID)

	_, err = store.GetUserByUsername(ctx, "missing_"+suffix)
	assert.ErrorIs(t, err, board.ErrNotFound)

	older := board.Feedback{
		ID: uuid.NewString(), Title: "Older item", Description: "An older description",
		Category: board.CategoryBug, Status: board.StatusUnderReview,
		UserID: owner.ID, Username: owner.Username, CreatedAt: now.Add(-time.Hour),
	}
	newer := older
	newer.ID = uuid.NewString()
	newer.Title = "Newer item"
	newer.CreatedAt = now
	require.NoError(t, store.CreateFeedback(ctx, older))
	require.NoError(t, store.CreateFeedback(ctx, newer))

	items, err := store.ListFeedback(ctx, board.Filter{UserID: owner.ID})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, newer.ID, items[0].ID)

	voted, count, err := store.ToggleVote(ctx, older.ID, "voter-"+suffix)
	require.NoError(t, err)
	assert.True(t, voted)
	assert.Equal(t, 1, count)

	items, err = store.ListFeedback(ctx, board.Filter{UserID: owner.ID, Category: board.CategoryBug})
	require.NoError(t, err)
	assert.Equal(t, older.ID, items[0].ID)

	voted, count, err = store.ToggleVote(ctx, older.ID, "voter-"+suffix)
	require.NoError(t, err)
	assert.False(t, voted)
	assert.Equal(t, 0, count)

	_, _, err = store.ToggleVote(ctx, uuid.NewString(), "voter-"+suffix)
	assert.ErrorIs(t, err, board.ErrNotFound)

	c := board.Comment{
		ID: uuid.NewString(), FeedbackID: older.ID, UserID: owner.ID,
		Username: owner.Username, Text: "First!", CreatedAt: now,
	}
	require.NoError(t, store.CreateComment(ctx, c))
	comments, err := store.ListComments(ctx, older.ID)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "First!", comments[0].Text)

	orphan := c
	orphan.ID = uuid.NewString()
	orphan.FeedbackID = uuid.NewString()
	assert.ErrorIs(t, store.CreateComment(ctx, orphan), board.ErrNotFound)

	require.NoError(t, store.DeleteFeedback(ctx, older.ID))
	assert.ErrorIs(t, store.DeleteFeedback(ctx, older.ID), board.ErrNotFound)
	comments, err = store.ListComments(ctx, older.ID)
	require.NoError(t, err)
	assert.Empty(t, comments)
}
