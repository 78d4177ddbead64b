package history

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"vanquish/internal/auth"
	"vanquish/internal/sync"
	"vanquish/pkg/models"
)

type Handler struct {
	Repo *Repo
	Hub  *sync.Hub
}

func NewHandler(repo *Repo, hub *sync.Hub) *Handler {
	return &Handler{Repo: repo, Hub: hub}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/history", h.listReading)
	rg.POST("/history", h.addReading)
	rg.DELETE("/history", h.clearReading)

	rg.GET("/search-history", h.listSearch)
	rg.POST("/search-history", h.addSearch)
	rg.DELETE("/search-history", h.clearSearch)
}

type addReadingReq struct {
	ComicID  int    `json:"comic_id"`
	Title    string `json:"title"`
	CoverURL string `json:"cover_url"`
}

func (h *Handler) addReading(c *gin.Context) {
	claims := auth.MustGetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req addReadingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if req.ComicID <= 0 || strings.TrimSpace(req.Title) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "comic_id and title required"})
		return
	}

	e := models.ReadingEntry{
		UserID:   claims.UserID,
		ComicID:  req.ComicID,
		Title:    strings.TrimSpace(req.Title),
		CoverURL: strings.TrimSpace(req.CoverURL),
		At:       time.Now().UTC(),
	}
	if err := h.Repo.AddReading(c.Request.Context(), e); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "save failed"})
		return
	}

	h.broadcast(sync.EventHistoryAppend, claims.UserID, models.FavoriteComic, strconv.Itoa(req.ComicID))
	c.JSON(http.StatusCreated, e)
}

func (h *Handler) listReading(c *gin.Context) {
	claims := auth.MustGetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	limit := parseInt(c.Query("limit"), 0)
	items, err := h.Repo.ListReading(c.Request.Context(), claims.UserID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *Handler) clearReading(c *gin.Context) {
	claims := auth.MustGetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	if err := h.Repo.ClearReading(c.Request.Context(), claims.UserID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "clear failed"})
		return
	}

	h.broadcast(sync.EventHistoryClear, claims.UserID, models.FavoriteComic, "")
	c.JSON(http.StatusOK, gin.H{"message": "cleared"})
}

type addSearchReq struct {
	Query string `json:"query"`
	Scope string `json:"scope"`
}

func (h *Handler) addSearch(c *gin.Context) {
	claims := auth.MustGetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req addSearchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	query := strings.TrimSpace(req.Query)
	scope := normalizeScope(req.Scope)
	if query == "" || scope == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query and scope (characters|comics) required"})
		return
	}

	e := models.SearchEntry{
		UserID: claims.UserID,
		Query:  query,
		Scope:  scope,
		At:     time.Now().UTC(),
	}
	if err := h.Repo.AddSearch(c.Request.Context(), e); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "save failed"})
		return
	}

	h.broadcast(sync.EventHistoryAppend, claims.UserID, "", query)
	c.JSON(http.StatusCreated, e)
}

func (h *Handler) listSearch(c *gin.Context) {
	claims := auth.MustGetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	limit := parseInt(c.Query("limit"), 0)
	items, err := h.Repo.ListSearch(c.Request.Context(), claims.UserID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *Handler) clearSearch(c *gin.Context) {
	claims := auth.MustGetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	if err := h.Repo.ClearSearch(c.Request.Context(), claims.UserID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "clear failed"})
		return
	}

	h.broadcast(sync.EventHistoryClear, claims.UserID, "", "")
	c.JSON(http.StatusOK, gin.H{"message": "cleared"})
}

func (h *Handler) broadcast(eventType, userID, kind, refID string) {
	if h.Hub == nil {
		return
	}
	ev := sync.Event{
		Type:   eventType,
		UserID: userID,
		Kind:   kind,
		RefID:  refID,
		At:     time.Now().UTC(),
	}
	go h.Hub.BroadcastJSON(ev)
}

func normalizeScope(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "characters":
		return "characters"
	case "comics":
		return "comics"
	default:
		return ""
	}
}

func parseInt(s string, def int) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
