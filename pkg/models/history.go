package models

import "time"

// ReadingEntry records one comic-open event.
type ReadingEntry struct {
	UserID   string    `json:"user_id"`
	ComicID  int       `json:"comic_id"`
	Title    string    `json:"title"`
	CoverURL string    `json:"cover_url"`
	At       time.Time `json:"at"`
}

// SearchEntry records one submitted search.
type SearchEntry struct {
	UserID string    `json:"user_id"`
	Query  string    `json:"query"`
	Scope  string    `json:"scope"` // characters | comics
	At     time.Time `json:"at"`
}
