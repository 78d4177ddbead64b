package history

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"vanquish/internal/auth"
	"vanquish/pkg/database"
	"vanquish/pkg/models"
)

func newTestRepo(t *testing.T) (*Repo, string) {
	t.Helper()
	db, err := database.OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	users := auth.NewRepo(db)
	u := auth.User{ID: "u-1", Email: "reader@example.com", DisplayName: "Reader", PasswordHash: "x"}
	require.NoError(t, users.CreateUser(context.Background(), u))

	return NewRepo(db), u.ID
}

func TestReadingHistoryNewestFirst(t *testing.T) {
	repo, userID := newTestRepo(t)
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.AddReading(ctx, models.ReadingEntry{
			UserID:  userID,
			ComicID: i + 1,
			Title:   fmt.Sprintf("Comic #%d", i+1),
			At:      base.Add(time.Duration(i) * time.Minute),
		}))
	}

	items, err := repo.ListReading(ctx, userID, 0)
	require.NoError(t, err)
	require.Len(t, items, 3)
	require.Equal(t, 3, items[0].ComicID)
	require.Equal(t, 1, items[2].ComicID)
}

func TestReadingHistoryCap(t *testing.T) {
	repo, userID := newTestRepo(t)
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < maxEntries+10; i++ {
		require.NoError(t, repo.AddReading(ctx, models.ReadingEntry{
			UserID:  userID,
			ComicID: i + 1,
			Title:   "x",
			At:      base.Add(time.Duration(i) * time.Second),
		}))
	}

	items, err := repo.ListReading(ctx, userID, 0)
	require.NoError(t, err)
	require.Len(t, items, maxEntries)
	// the oldest ten were evicted
	require.Equal(t, maxEntries+10, items[0].ComicID)
	require.Equal(t, 11, items[len(items)-1].ComicID)
}

func TestClearReading(t *testing.T) {
	repo, userID := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.AddReading(ctx, models.ReadingEntry{
		UserID: userID, ComicID: 1, Title: "x", At: time.Now().UTC()}))
	require.NoError(t, repo.ClearReading(ctx, userID))

	items, err := repo.ListReading(ctx, userID, 0)
	require.NoError(t, err)
	require.Empty(t, items)
}

func TestSearchHistory(t *testing.T) {
	repo, userID := newTestRepo(t)
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.AddSearch(ctx, models.SearchEntry{
		UserID: userID, Query: "batman", Scope: "characters", At: base}))
	require.NoError(t, repo.AddSearch(ctx, models.SearchEntry{
		UserID: userID, Query: "spawn", Scope: "comics", At: base.Add(time.Minute)}))

	items, err := repo.ListSearch(ctx, userID, 0)
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, "spawn", items[0].Query)
	require.Equal(t, "batman", items[1].Query)

	require.NoError(t, repo.ClearSearch(ctx, userID))
	items, err = repo.ListSearch(ctx, userID, 0)
	require.NoError(t, err)
	require.Empty(t, items)
}

func TestHistoryLimitParameter(t *testing.T) {
	repo, userID := newTestRepo(t)
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.AddReading(ctx, models.ReadingEntry{
			UserID: userID, ComicID: i + 1, Title: "x",
			At: base.Add(time.Duration(i) * time.Second)}))
	}

	items, err := repo.ListReading(ctx, userID, 2)
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, 5, items[0].ComicID)
}
