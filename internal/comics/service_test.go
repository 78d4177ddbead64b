package comics

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"vanquish/pkg/models"
)

func newTestComicService(t *testing.T, handler http.Handler) *Service {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewService(NewProvider(srv.URL), zap.NewNop())
}

func deadComicService(t *testing.T) *Service {
	t.Helper()
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	return NewService(NewProvider(srv.URL), zap.NewNop())
}

func TestLatestFallsBackWhenProviderUnreachable(t *testing.T) {
	svc := deadComicService(t)

	comics, usedFallback := svc.Latest(context.Background(), 1)

	require.True(t, usedFallback)
	require.Len(t, comics, 12)
	for _, c := range comics {
		require.Equal(t, models.ComicSourceFallback, c.Source)
	}
}

func TestLatestServesLive(t *testing.T) {
	svc := newTestComicService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/comics/latest", r.URL.Path)
		require.Equal(t, "2", r.URL.Query().Get("page"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]rawComic{
			{Title: "Invincible #1 (2003)", CoverPage: "https://cdn.example.com/inv-1.jpg"},
		})
	}))

	comics, usedFallback := svc.Latest(context.Background(), 2)

	require.False(t, usedFallback)
	require.Len(t, comics, 1)
	require.Equal(t, "Invincible #1", comics[0].Title)
	require.Equal(t, models.ComicSourceLive, comics[0].Source)
}

func TestByPublisherFallbackFilters(t *testing.T) {
	svc := deadComicService(t)

	marvel, usedFallback := svc.ByPublisher(context.Background(), "marvel", 1)
	require.True(t, usedFallback)
	require.NotEmpty(t, marvel)
	for _, c := range marvel {
		text := strings.ToLower(c.Title + " " + c.Description)
		require.Contains(t, text, "marvel")
	}

	dc, _ := svc.ByPublisher(context.Background(), "dc", 1)
	require.NotEmpty(t, dc)

	// publishers outside the fallback keywords return the whole set
	idw, _ := svc.ByPublisher(context.Background(), "idw", 1)
	require.Len(t, idw, 12)
}

func TestByPublisherUnknownUsesLatestPath(t *testing.T) {
	var gotPath string
	svc := newTestComicService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]rawComic{{Title: "Whatever #1"}})
	}))

	_, usedFallback := svc.ByPublisher(context.Background(), "vertigo", 1)

	require.False(t, usedFallback)
	require.Equal(t, "/comics/latest", gotPath)
}

func TestSearchFallbackFilters(t *testing.T) {
	svc := deadComicService(t)

	comics, usedFallback := svc.Search(context.Background(), "watchmen", 1)

	require.True(t, usedFallback)
	require.Len(t, comics, 1)
	require.Equal(t, "Watchmen #1", comics[0].Title)
}

func TestGetByIDFallbackRecord(t *testing.T) {
	svc := deadComicService(t)

	c := svc.GetByID(context.Background(), 5)
	require.Equal(t, "Watchmen #1", c.Title)
	require.Equal(t, models.ComicSourceFallback, c.Source)
}

func TestGetByIDNeverNotFound(t *testing.T) {
	svc := deadComicService(t)

	c := svc.GetByID(context.Background(), 987654)
	require.Equal(t, 987654, c.ID)
	require.Equal(t, "Comic #987654", c.Title)
	require.Equal(t, "https://getcomics.info/", c.DownloadLinks[models.ReadOnlineKey])
	require.Equal(t, models.ComicSourcePlaceholder, c.Source)
}

func TestGetByIDScansLiveFeeds(t *testing.T) {
	svc := newTestComicService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]rawComic{
			{Title: "Invincible #1", CoverPage: "https://cdn.example.com/inv-1.jpg"},
		})
	}))

	want := StableID("Invincible #1", "https://cdn.example.com/inv-1.jpg")
	c := svc.GetByID(context.Background(), want)
	require.Equal(t, want, c.ID)
	require.Equal(t, models.ComicSourceLive, c.Source)
}

func TestFallbackPage(t *testing.T) {
	all := Fallback()

	require.Equal(t, all, fallbackPage(all, 1))
	require.Equal(t, all, fallbackPage(all, 0))
	require.Empty(t, fallbackPage(all, 2))
}
