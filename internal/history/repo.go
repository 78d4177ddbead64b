package history

import (
	"context"
	"database/sql"
	"fmt"

	"vanquish/pkg/models"
)

// maxEntries caps each per-user history list. Appends past the cap evict
// the oldest rows.
const maxEntries = 100

type Repo struct {
	DB *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{DB: db}
}

func (r *Repo) AddReading(ctx context.Context, e models.ReadingEntry) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO reading_history (user_id, comic_id, title, cover_url, at)
		VALUES (?, ?, ?, ?, ?)
	`, e.UserID, e.ComicID, e.Title, e.CoverURL, e.At)
	if err != nil {
		return fmt.Errorf("add reading entry: %w", err)
	}
	return r.trim(ctx, "reading_history", e.UserID)
}

func (r *Repo) ListReading(ctx context.Context, userID string, limit int) ([]models.ReadingEntry, error) {
	if limit <= 0 || limit > maxEntries {
		limit = maxEntries
	}
	rows, err := r.DB.QueryContext(ctx, `
		SELECT user_id, comic_id, title, cover_url, at
		FROM reading_history
		WHERE user_id = ?
		ORDER BY at DESC, id DESC
		LIMIT ?
	`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list reading history: %w", err)
	}
	defer rows.Close()

	out := make([]models.ReadingEntry, 0, limit)
	for rows.Next() {
		var e models.ReadingEntry
		if err := rows.Scan(&e.UserID, &e.ComicID, &e.Title, &e.CoverURL, &e.At); err != nil {
			return nil, fmt.Errorf("scan reading entry: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows err: %w", err)
	}
	return out, nil
}

func (r *Repo) ClearReading(ctx context.Context, userID string) error {
	if _, err := r.DB.ExecContext(ctx, `
		DELETE FROM reading_history WHERE user_id = ?
	`, userID); err != nil {
		return fmt.Errorf("clear reading history: %w", err)
	}
	return nil
}

func (r *Repo) AddSearch(ctx context.Context, e models.SearchEntry) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO search_history (user_id, query, scope, at)
		VALUES (?, ?, ?, ?)
	`, e.UserID, e.Query, e.Scope, e.At)
	if err != nil {
		return fmt.Errorf("add search entry: %w", err)
	}
	return r.trim(ctx, "search_history", e.UserID)
}

func (r *Repo) ListSearch(ctx context.Context, userID string, limit int) ([]models.SearchEntry, error) {
	if limit <= 0 || limit > maxEntries {
		limit = maxEntries
	}
	rows, err := r.DB.QueryContext(ctx, `
		SELECT user_id, query, scope, at
		FROM search_history
		WHERE user_id = ?
		ORDER BY at DESC, id DESC
		LIMIT ?
	`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list search history: %w", err)
	}
	defer rows.Close()

	out := make([]models.SearchEntry, 0, limit)
	for rows.Next() {
		var e models.SearchEntry
		if err := rows.Scan(&e.UserID, &e.Query, &e.Scope, &e.At); err != nil {
			return nil, fmt.Errorf("scan search entry: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows err: %w", err)
	}
	return out, nil
}

func (r *Repo) ClearSearch(ctx context.Context, userID string) error {
	if _, err := r.DB.ExecContext(ctx, `
		DELETE FROM search_history WHERE user_id = ?
	`, userID); err != nil {
		return fmt.Errorf("clear search history: %w", err)
	}
	return nil
}

func (r *Repo) trim(ctx context.Context, table, userID string) error {
	// table is one of the two fixed history table names, never user input.
	q := fmt.Sprintf(`
		DELETE FROM %s
		WHERE user_id = ? AND id NOT IN (
			SELECT id FROM %s
			WHERE user_id = ?
			ORDER BY at DESC, id DESC
			LIMIT %d
		)
	`, table, table, maxEntries)
	if _, err := r.DB.ExecContext(ctx, q, userID, userID); err != nil {
		return fmt.Errorf("trim %s: %w", table, err)
	}
	return nil
}
