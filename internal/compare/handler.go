package compare

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vanquish/internal/characters"
	"vanquish/pkg/models"
)

// Handler resolves two character ids and serves the comparison table.
type Handler struct {
	Chars *characters.Service
}

func NewHandler(chars *characters.Service) *Handler {
	return &Handler{Chars: chars}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/compare", h.compare)
}

type summary struct {
	FirstWins  int    `json:"char1Wins"`
	SecondWins int    `json:"char2Wins"`
	Ties       int    `json:"ties"`
	Winner     string `json:"winner"`
}

func (h *Handler) compare(c *gin.Context) {
	first := c.Query("first")
	second := c.Query("second")
	if first == "" || second == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "first and second character ids are required"})
		return
	}

	a, _ := h.Chars.GetByID(c.Request.Context(), first)
	if a == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "character not found: " + first})
		return
	}
	b, _ := h.Chars.GetByID(c.Request.Context(), second)
	if b == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "character not found: " + second})
		return
	}

	wins1, wins2, ties := TotalWins(*a, *b)
	c.JSON(http.StatusOK, gin.H{
		"char1":      characterSummary(a),
		"char2":      characterSummary(b),
		"attributes": CompareAttributes(*a, *b),
		"summary": summary{
			FirstWins:  wins1,
			SecondWins: wins2,
			Ties:       ties,
			Winner:     overallWinner(a, b, wins1, wins2),
		},
	})
}

func characterSummary(c *models.Character) gin.H {
	return gin.H{
		"id":         c.ID,
		"name":       c.Name,
		"image":      c.Image.URL,
		"publisher":  c.Biography.Publisher,
		"powerLevel": PowerLevel(*c),
	}
}

func overallWinner(a, b *models.Character, wins1, wins2 int) string {
	switch {
	case wins1 > wins2:
		return a.Name
	case wins2 > wins1:
		return b.Name
	default:
		return "Tie"
	}
}
