package favorites

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

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

// RegisterRoutes mounts everything under the JWT-protected user group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/favorites", h.list)
	rg.POST("/favorites", h.upsert)
	rg.DELETE("/favorites/:kind/:ref_id", h.remove)

	rg.GET("/collections", h.listCollections)
	rg.POST("/collections", h.createCollection)
	rg.DELETE("/collections/:id", h.deleteCollection)
	rg.GET("/collections/:id/items", h.listItems)
	rg.POST("/collections/:id/items", h.addItem)
	rg.DELETE("/collections/:id/items/:kind/:ref_id", h.removeItem)
}

type upsertReq struct {
	Kind     string `json:"kind"`
	RefID    string `json:"ref_id"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
}

func (h *Handler) upsert(c *gin.Context) {
	claims := auth.MustGetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req upsertReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	kind := normalizeKind(req.Kind)
	if kind == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "kind must be character or comic"})
		return
	}
	refID := strings.TrimSpace(req.RefID)
	if refID == "" || strings.TrimSpace(req.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ref_id and name required"})
		return
	}

	f := models.Favorite{
		UserID:   claims.UserID,
		Kind:     kind,
		RefID:    refID,
		Name:     strings.TrimSpace(req.Name),
		ImageURL: strings.TrimSpace(req.ImageURL),
	}
	if err := h.Repo.Upsert(c.Request.Context(), f); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "save failed"})
		return
	}

	h.broadcast(sync.EventFavoriteUpdate, claims.UserID, kind, refID)
	c.JSON(http.StatusOK, gin.H{"status": "saved"})
}

func (h *Handler) list(c *gin.Context) {
	claims := auth.MustGetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	kind := strings.TrimSpace(c.Query("kind"))
	if kind != "" {
		kind = normalizeKind(kind)
		if kind == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "kind must be character or comic"})
			return
		}
	}

	items, err := h.Repo.List(c.Request.Context(), claims.UserID, kind)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *Handler) remove(c *gin.Context) {
	claims := auth.MustGetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	kind := normalizeKind(c.Param("kind"))
	refID := strings.TrimSpace(c.Param("ref_id"))
	if kind == "" || refID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "kind and ref_id required"})
		return
	}

	ok, err := h.Repo.Delete(c.Request.Context(), claims.UserID, kind, refID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	h.broadcast(sync.EventFavoriteDelete, claims.UserID, kind, refID)
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

type createCollectionReq struct {
	Name string `json:"name"`
}

func (h *Handler) createCollection(c *gin.Context) {
	claims := auth.MustGetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req createCollectionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" || len(name) > 100 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "collection name must be 1-100 chars"})
		return
	}

	col := models.Collection{
		ID:     uuid.NewString(),
		UserID: claims.UserID,
		Name:   name,
	}
	if err := h.Repo.CreateCollection(c.Request.Context(), col); err != nil {
		// UNIQUE(user_id, name) violations land here
		c.JSON(http.StatusConflict, gin.H{"error": "collection already exists"})
		return
	}

	h.broadcast(sync.EventCollectionChange, claims.UserID, "", col.ID)
	c.JSON(http.StatusCreated, col)
}

func (h *Handler) listCollections(c *gin.Context) {
	claims := auth.MustGetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	cols, err := h.Repo.ListCollections(c.Request.Context(), claims.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": cols})
}

func (h *Handler) deleteCollection(c *gin.Context) {
	claims := auth.MustGetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	ok, err := h.Repo.DeleteCollection(c.Request.Context(), claims.UserID, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	h.broadcast(sync.EventCollectionChange, claims.UserID, "", c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

type addItemReq struct {
	Kind     string `json:"kind"`
	RefID    string `json:"ref_id"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
}

func (h *Handler) addItem(c *gin.Context) {
	claims := auth.MustGetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	col, err := h.Repo.GetCollection(c.Request.Context(), claims.UserID, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}
	if col == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "collection not found"})
		return
	}

	var req addItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	kind := normalizeKind(req.Kind)
	refID := strings.TrimSpace(req.RefID)
	if kind == "" || refID == "" || strings.TrimSpace(req.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "kind, ref_id and name required"})
		return
	}

	item := models.CollectionItem{
		CollectionID: col.ID,
		Kind:         kind,
		RefID:        refID,
		Name:         strings.TrimSpace(req.Name),
		ImageURL:     strings.TrimSpace(req.ImageURL),
	}
	if err := h.Repo.AddCollectionItem(c.Request.Context(), item); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "save failed"})
		return
	}

	h.broadcast(sync.EventCollectionChange, claims.UserID, kind, refID)
	c.JSON(http.StatusOK, gin.H{"status": "saved"})
}

func (h *Handler) listItems(c *gin.Context) {
	claims := auth.MustGetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	col, err := h.Repo.GetCollection(c.Request.Context(), claims.UserID, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}
	if col == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "collection not found"})
		return
	}

	items, err := h.Repo.ListCollectionItems(c.Request.Context(), col.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"collection": col, "items": items})
}

func (h *Handler) removeItem(c *gin.Context) {
	claims := auth.MustGetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	col, err := h.Repo.GetCollection(c.Request.Context(), claims.UserID, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}
	if col == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "collection not found"})
		return
	}

	kind := normalizeKind(c.Param("kind"))
	refID := strings.TrimSpace(c.Param("ref_id"))
	if kind == "" || refID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "kind and ref_id required"})
		return
	}

	ok, err := h.Repo.RemoveCollectionItem(c.Request.Context(), col.ID, kind, refID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	h.broadcast(sync.EventCollectionChange, claims.UserID, kind, refID)
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
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

func normalizeKind(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case models.FavoriteCharacter:
		return models.FavoriteCharacter
	case models.FavoriteComic:
		return models.FavoriteComic
	default:
		return ""
	}
}
