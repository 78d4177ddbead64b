package characters

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"vanquish/pkg/sorting"
)

// FallbackHeader marks responses served from the bundled dataset; the UI
// network layer inspects it to show the degraded-data banner.
const FallbackHeader = "X-Using-Mock-Data"

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/characters", h.list)
	rg.GET("/characters/search", h.search)
	rg.GET("/characters/:id", h.getByID)
	rg.GET("/universe/:publisher", h.byPublisher)
}

func (h *Handler) list(c *gin.Context) {
	opts := parseListOptions(c)

	items, usedFallback := h.Svc.List(c.Request.Context(), opts)
	if usedFallback {
		c.Header(FallbackHeader, "true")
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("query"))
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "search query is required"})
		return
	}

	opts := parseListOptions(c)
	items, usedFallback := h.Svc.Search(c.Request.Context(), query, opts)
	if usedFallback {
		c.Header(FallbackHeader, "true")
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) getByID(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "character id is required"})
		return
	}

	char, usedFallback := h.Svc.GetByID(c.Request.Context(), id)
	if char == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "character not found"})
		return
	}
	if usedFallback {
		c.Header(FallbackHeader, "true")
	}
	c.JSON(http.StatusOK, char)
}

func (h *Handler) byPublisher(c *gin.Context) {
	items, ok := h.Svc.ByPublisher(c.Param("publisher"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid publisher"})
		return
	}
	c.Header(FallbackHeader, "true")
	c.JSON(http.StatusOK, items)
}

func parseListOptions(c *gin.Context) ListOptions {
	return ListOptions{
		SortBy:    c.DefaultQuery("sortBy", "name"),
		Direction: sorting.ParseDirection(c.Query("sortDirection")),
		Page: sorting.Page{
			Limit:  parseInt(c.Query("limit"), 0),
			Offset: parseInt(c.Query("offset"), 0),
		},
	}
}

func parseInt(s string, def int) int {
	if strings.TrimSpace(s) == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
