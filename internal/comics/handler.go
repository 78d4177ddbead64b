package comics

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"vanquish/pkg/models"
)

// FallbackHeader marks responses served from the bundled dataset.
const FallbackHeader = "X-Fallback"

const defaultListLimit = 12

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/comics", h.list)
	rg.GET("/comics/search", h.search)
	rg.GET("/comics/:id", h.getByID)
}

// list serves GET /comics. Without noLimit=true the response is capped at
// limit records (default 12); offset is translated to a provider page.
func (h *Handler) list(c *gin.Context) {
	limit, offset, noLimit := parseListParams(c)
	page := pageFor(offset, limit)

	var (
		comics   []models.Comic
		fallback bool
	)
	if publisher := c.Query("publisher"); publisher != "" {
		comics, fallback = h.Svc.ByPublisher(c.Request.Context(), publisher, page)
	} else {
		comics, fallback = h.Svc.Latest(c.Request.Context(), page)
	}

	if !noLimit && len(comics) > limit {
		comics = comics[:limit]
	}

	setFallbackHeader(c, fallback)
	c.JSON(http.StatusOK, comics)
}

func (h *Handler) search(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter is required"})
		return
	}

	limit, offset, noLimit := parseListParams(c)
	page := pageFor(offset, limit)

	comics, fallback := h.Svc.Search(c.Request.Context(), query, page)
	if !noLimit && len(comics) > limit {
		comics = comics[:limit]
	}

	setFallbackHeader(c, fallback)
	c.JSON(http.StatusOK, comics)
}

// getByID serves GET /comics/:id. A malformed id is the only error outcome;
// unknown ids still return 200 with a placeholder record.
func (h *Handler) getByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid comic id"})
		return
	}

	comic := h.Svc.GetByID(c.Request.Context(), id)
	c.JSON(http.StatusOK, comic)
}

func parseListParams(c *gin.Context) (limit, offset int, noLimit bool) {
	limit = parseInt(c.Query("limit"), defaultListLimit)
	offset = parseInt(c.Query("offset"), 0)
	noLimit = c.Query("noLimit") == "true"
	if limit < 1 {
		limit = defaultListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset, noLimit
}

// pageFor maps an offset into the provider's page numbering.
func pageFor(offset, limit int) int {
	if limit < 1 {
		return 1
	}
	return offset/limit + 1
}

func setFallbackHeader(c *gin.Context, fallback bool) {
	if fallback {
		c.Header(FallbackHeader, "true")
	}
}

func parseInt(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
