package favorites

import (
	"context"
	"testing"

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

func TestUpsertAndList(t *testing.T) {
	repo, userID := newTestRepo(t)
	ctx := context.Background()

	f := models.Favorite{
		UserID: userID, Kind: models.FavoriteCharacter,
		RefID: "13", Name: "Deadpool", ImageURL: "https://img.example.com/dp.jpg",
	}
	require.NoError(t, repo.Upsert(ctx, f))

	items, err := repo.List(ctx, userID, "")
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "Deadpool", items[0].Name)
}

func TestUpsertLastWriteWins(t *testing.T) {
	repo, userID := newTestRepo(t)
	ctx := context.Background()

	first := models.Favorite{UserID: userID, Kind: models.FavoriteComic, RefID: "5", Name: "Watchmen"}
	require.NoError(t, repo.Upsert(ctx, first))

	second := first
	second.Name = "Watchmen #1"
	second.ImageURL = "https://img.example.com/w1.jpg"
	require.NoError(t, repo.Upsert(ctx, second))

	items, err := repo.List(ctx, userID, models.FavoriteComic)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "Watchmen #1", items[0].Name)
	require.Equal(t, "https://img.example.com/w1.jpg", items[0].ImageURL)
}

func TestListFiltersByKind(t *testing.T) {
	repo, userID := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, models.Favorite{
		UserID: userID, Kind: models.FavoriteCharacter, RefID: "1", Name: "Batman"}))
	require.NoError(t, repo.Upsert(ctx, models.Favorite{
		UserID: userID, Kind: models.FavoriteComic, RefID: "2", Name: "The Killing Joke"}))

	chars, err := repo.List(ctx, userID, models.FavoriteCharacter)
	require.NoError(t, err)
	require.Len(t, chars, 1)
	require.Equal(t, "Batman", chars[0].Name)

	all, err := repo.List(ctx, userID, "")
	require.NoError(t, err)
	require.Len(t, all, 2)
}

func TestDelete(t *testing.T) {
	repo, userID := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, models.Favorite{
		UserID: userID, Kind: models.FavoriteCharacter, RefID: "1", Name: "Batman"}))

	ok, err := repo.Delete(ctx, userID, models.FavoriteCharacter, "1")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = repo.Delete(ctx, userID, models.FavoriteCharacter, "1")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestCollections(t *testing.T) {
	repo, userID := newTestRepo(t)
	ctx := context.Background()

	col := models.Collection{ID: "c-1", UserID: userID, Name: "Street Level"}
	require.NoError(t, repo.CreateCollection(ctx, col))

	// duplicate name for the same user violates the unique constraint
	dup := models.Collection{ID: "c-2", UserID: userID, Name: "Street Level"}
	require.Error(t, repo.CreateCollection(ctx, dup))

	cols, err := repo.ListCollections(ctx, userID)
	require.NoError(t, err)
	require.Len(t, cols, 1)

	got, err := repo.GetCollection(ctx, userID, "c-1")
	require.NoError(t, err)
	require.NotNil(t, got)

	other, err := repo.GetCollection(ctx, "someone-else", "c-1")
	require.NoError(t, err)
	require.Nil(t, other)

	item := models.CollectionItem{
		CollectionID: "c-1", Kind: models.FavoriteCharacter, RefID: "13", Name: "Deadpool"}
	require.NoError(t, repo.AddCollectionItem(ctx, item))

	items, err := repo.ListCollectionItems(ctx, "c-1")
	require.NoError(t, err)
	require.Len(t, items, 1)

	ok, err := repo.RemoveCollectionItem(ctx, "c-1", models.FavoriteCharacter, "13")
	require.NoError(t, err)
	require.True(t, ok)

	// deleting the collection cascades to its items
	ok, err = repo.DeleteCollection(ctx, userID, "c-1")
	require.NoError(t, err)
	require.True(t, ok)
}
