package characters

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"vanquish/pkg/sorting"
)

func newTestService(t *testing.T, handler http.Handler) *Service {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewService(NewProvider(srv.URL, "test-key"), zap.NewNop())
}

// deadService points at a closed server so every provider call fails.
func deadService(t *testing.T) *Service {
	t.Helper()
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	return NewService(NewProvider(srv.URL, "test-key"), zap.NewNop())
}

func TestListFallsBackWhenProviderUnreachable(t *testing.T) {
	svc := deadService(t)

	items, usedFallback := svc.List(context.Background(), ListOptions{SortBy: "name"})

	require.True(t, usedFallback)
	require.Len(t, items, 14)
}

func TestListFallsBackOnProviderError(t *testing.T) {
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, usedFallback := svc.List(context.Background(), ListOptions{SortBy: "name"})
	require.True(t, usedFallback)
}

func TestListServesLive(t *testing.T) {
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "test-key", r.URL.Query().Get("api_key"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status_code": 1,
			"results": [
				{"id": 42, "name": "Nightcrawler", "gender": 1,
				 "publisher": {"name": "Marvel Comics"}}
			]
		}`))
	}))

	items, usedFallback := svc.List(context.Background(), ListOptions{SortBy: "name"})

	require.False(t, usedFallback)
	require.Len(t, items, 1)
	require.Equal(t, "42", items[0].ID)
	require.Equal(t, "Nightcrawler", items[0].Name)
	require.Equal(t, "Male", items[0].Appearance.Gender)
	// absent powerstats default to "50"
	require.Equal(t, "50", items[0].Powerstats.Power)
}

func TestListTopThreeByPowerDescending(t *testing.T) {
	svc := deadService(t)

	items, usedFallback := svc.List(context.Background(), ListOptions{
		SortBy:    "power",
		Direction: sorting.Desc,
		Page:      sorting.Page{Limit: 3},
	})

	require.True(t, usedFallback)
	require.Len(t, items, 3)
	// power 100 is a seven-way tie; stable sort keeps dataset order.
	require.Equal(t, "Deadpool", items[0].Name)
	require.Equal(t, "Silver Surfer", items[1].Name)
	require.Equal(t, "Superman", items[2].Name)
}

func TestSearchFallbackFiltersByName(t *testing.T) {
	svc := deadService(t)

	items, usedFallback := svc.Search(context.Background(), "bat", ListOptions{SortBy: "name"})

	require.True(t, usedFallback)
	require.Len(t, items, 1)
	require.Equal(t, "Batman", items[0].Name)
}

func TestSearchInjectsSilverSable(t *testing.T) {
	svc := deadService(t)

	items, usedFallback := svc.Search(context.Background(), "Silver Sable", ListOptions{SortBy: "name"})

	require.True(t, usedFallback)
	require.Len(t, items, 1)
	require.Equal(t, "Silver Sable", items[0].Name)
}

func TestSearchSilverSurferNotInjected(t *testing.T) {
	svc := deadService(t)

	// "silver" matches Silver Surfer, so no injection happens.
	items, _ := svc.Search(context.Background(), "silver", ListOptions{SortBy: "name"})

	require.Len(t, items, 1)
	require.Equal(t, "Silver Surfer", items[0].Name)
}

func TestSearchZeroLiveResultsFallsBack(t *testing.T) {
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status_code": 1, "results": []}`))
	}))

	items, usedFallback := svc.Search(context.Background(), "thor", ListOptions{SortBy: "name"})

	require.True(t, usedFallback)
	require.Len(t, items, 1)
	require.Equal(t, "Thor", items[0].Name)
}

func TestGetByIDFallback(t *testing.T) {
	svc := deadService(t)

	c, usedFallback := svc.GetByID(context.Background(), "1")
	require.True(t, usedFallback)
	require.NotNil(t, c)
	require.Equal(t, "Batman", c.Name)

	missing, _ := svc.GetByID(context.Background(), "9999")
	require.Nil(t, missing)
}

func TestGetByIDIdempotentOnFallback(t *testing.T) {
	svc := deadService(t)

	first, _ := svc.GetByID(context.Background(), "7")
	second, _ := svc.GetByID(context.Background(), "7")
	require.Equal(t, first, second)
}

func TestByPublisher(t *testing.T) {
	svc := deadService(t)

	marvel, ok := svc.ByPublisher("marvel")
	require.True(t, ok)
	require.NotEmpty(t, marvel)
	for _, c := range marvel {
		require.Equal(t, "Marvel Comics", c.Biography.Publisher)
	}

	dc, ok := svc.ByPublisher("DC")
	require.True(t, ok)
	require.NotEmpty(t, dc)
	for _, c := range dc {
		require.Equal(t, "DC Comics", c.Biography.Publisher)
	}

	_, ok = svc.ByPublisher("vertigo")
	require.False(t, ok)
}
