package sync

import "time"

const (
	EventFavoriteUpdate   = "favorites.update"
	EventFavoriteDelete   = "favorites.delete"
	EventCollectionChange = "collections.change"
	EventHistoryAppend    = "history.append"
	EventHistoryClear     = "history.clear"
)

// Event is the envelope broadcast to every tab after a favorites or
// history mutation.
type Event struct {
	Type   string    `json:"type"`
	UserID string    `json:"user_id"`
	Kind   string    `json:"kind,omitempty"` // "character" or "comic"
	RefID  string    `json:"ref_id,omitempty"`
	At     time.Time `json:"at"`
}
