package models

// Comic provenance values carried in the _source tag.
const (
	ComicSourceLive        = "live"
	ComicSourceFallback    = "fallback"
	ComicSourcePlaceholder = "placeholder"
)

// DownloadLinks key that signals the comic can be read in-app.
const ReadOnlineKey = "READONLINE"

type Comic struct {
	ID            int               `json:"id"`
	Title         string            `json:"title"`
	IssueNumber   string            `json:"issueNumber,omitempty"`
	Description   string            `json:"description"`
	CoverImageURL string            `json:"coverImageUrl"`
	ReleaseDate   string            `json:"releaseDate,omitempty"`
	Creators      Creators          `json:"creators"`
	Characters    []CharacterRef    `json:"featuredCharacters"`
	DownloadLinks map[string]string `json:"downloadLinks,omitempty"`
	// AdditionalInfo is free-form provider metadata (size, format, year).
	AdditionalInfo map[string]string `json:"additionalInfo,omitempty"`
	// Source records which branch produced the record: live, fallback
	// or placeholder. Internal tag, but the UI network layer reads it.
	Source string `json:"_source,omitempty"`
}

type Creators struct {
	Writer      []string `json:"writer"`
	Artist      []string `json:"artist"`
	CoverArtist []string `json:"coverArtist,omitempty"`
}

type CharacterRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
