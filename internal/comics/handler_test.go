package comics

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"vanquish/pkg/models"
)

func newTestComicRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewHandler(deadComicService(t)).RegisterRoutes(router.Group("/api"))
	return router
}

func TestComicsListDefaultLimit(t *testing.T) {
	router := newTestComicRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/comics", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "true", w.Header().Get(FallbackHeader))

	var comics []models.Comic
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &comics))
	require.Len(t, comics, 12)
}

func TestComicsListExplicitLimit(t *testing.T) {
	router := newTestComicRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/comics?limit=5", nil)
	router.ServeHTTP(w, req)

	var comics []models.Comic
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &comics))
	require.Len(t, comics, 5)
}

func TestComicsListNoLimit(t *testing.T) {
	router := newTestComicRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/comics?limit=5&noLimit=true", nil)
	router.ServeHTTP(w, req)

	var comics []models.Comic
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &comics))
	require.Len(t, comics, 12)
}

func TestComicsSearchRequiresQuery(t *testing.T) {
	router := newTestComicRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/comics/search", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestComicsGetInvalidID(t *testing.T) {
	router := newTestComicRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/comics/not-a-number", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestComicsGetUnknownIDReturnsPlaceholder(t *testing.T) {
	router := newTestComicRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/comics/424242", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var c models.Comic
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &c))
	require.Equal(t, "Comic #424242", c.Title)
	require.Equal(t, "https://getcomics.info/", c.DownloadLinks[models.ReadOnlineKey])
}

func TestPageFor(t *testing.T) {
	require.Equal(t, 1, pageFor(0, 12))
	require.Equal(t, 1, pageFor(11, 12))
	require.Equal(t, 2, pageFor(12, 12))
	require.Equal(t, 3, pageFor(25, 12))
	require.Equal(t, 1, pageFor(5, 0))
}
