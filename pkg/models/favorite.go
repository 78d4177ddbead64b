package models

import "time"

// Favorite kinds.
const (
	FavoriteCharacter = "character"
	FavoriteComic     = "comic"
)

// Favorite is the minimal projection stored per user: enough to render a
// card without re-fetching the full record.
type Favorite struct {
	UserID    string    `json:"user_id"`
	Kind      string    `json:"kind"` // character | comic
	RefID     string    `json:"ref_id"`
	Name      string    `json:"name"`
	ImageURL  string    `json:"image_url"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Collection is a named, user-owned grouping of favorites.
type Collection struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type CollectionItem struct {
	CollectionID string    `json:"collection_id"`
	Kind         string    `json:"kind"`
	RefID        string    `json:"ref_id"`
	Name         string    `json:"name"`
	ImageURL     string    `json:"image_url"`
	AddedAt      time.Time `json:"added_at"`
}
