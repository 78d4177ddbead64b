package favorites

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"vanquish/pkg/models"
)

type Repo struct {
	DB *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{DB: db}
}

// Upsert writes a favorite with last-write-wins semantics. Racing tabs
// both succeed; the later write's name and image stick.
func (r *Repo) Upsert(ctx context.Context, f models.Favorite) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO favorites (user_id, kind, ref_id, name, image_url, updated_at)
		VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(user_id, kind, ref_id) DO UPDATE SET
			name = excluded.name,
			image_url = excluded.image_url,
			updated_at = CURRENT_TIMESTAMP
	`, f.UserID, f.Kind, f.RefID, f.Name, f.ImageURL)
	if err != nil {
		return fmt.Errorf("upsert favorite: %w", err)
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, userID, kind, refID string) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `
		DELETE FROM favorites
		WHERE user_id = ? AND kind = ? AND ref_id = ?
	`, userID, kind, refID)
	if err != nil {
		return false, fmt.Errorf("delete favorite: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

// List returns a user's favorites, newest first, optionally filtered by
// kind.
func (r *Repo) List(ctx context.Context, userID, kind string) ([]models.Favorite, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if kind == "" {
		rows, err = r.DB.QueryContext(ctx, `
			SELECT user_id, kind, ref_id, name, image_url, updated_at
			FROM favorites
			WHERE user_id = ?
			ORDER BY updated_at DESC
		`, userID)
	} else {
		rows, err = r.DB.QueryContext(ctx, `
			SELECT user_id, kind, ref_id, name, image_url, updated_at
			FROM favorites
			WHERE user_id = ? AND kind = ?
			ORDER BY updated_at DESC
		`, userID, kind)
	}
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	defer rows.Close()

	out := make([]models.Favorite, 0)
	for rows.Next() {
		var f models.Favorite
		var updated time.Time
		if err := rows.Scan(&f.UserID, &f.Kind, &f.RefID, &f.Name, &f.ImageURL, &updated); err != nil {
			return nil, fmt.Errorf("scan favorite: %w", err)
		}
		f.UpdatedAt = updated
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows err: %w", err)
	}
	return out, nil
}

func (r *Repo) CreateCollection(ctx context.Context, col models.Collection) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO favorite_collections (id, user_id, name)
		VALUES (?, ?, ?)
	`, col.ID, col.UserID, col.Name)
	if err != nil {
		return fmt.Errorf("create collection: %w", err)
	}
	return nil
}

func (r *Repo) DeleteCollection(ctx context.Context, userID, id string) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `
		DELETE FROM favorite_collections
		WHERE id = ? AND user_id = ?
	`, id, userID)
	if err != nil {
		return false, fmt.Errorf("delete collection: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (r *Repo) ListCollections(ctx context.Context, userID string) ([]models.Collection, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, user_id, name, created_at
		FROM favorite_collections
		WHERE user_id = ?
		ORDER BY created_at
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	defer rows.Close()

	out := make([]models.Collection, 0)
	for rows.Next() {
		var col models.Collection
		if err := rows.Scan(&col.ID, &col.UserID, &col.Name, &col.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan collection: %w", err)
		}
		out = append(out, col)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows err: %w", err)
	}
	return out, nil
}

// GetCollection checks ownership; nil means the user has no collection
// with that id.
func (r *Repo) GetCollection(ctx context.Context, userID, id string) (*models.Collection, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT id, user_id, name, created_at
		FROM favorite_collections
		WHERE id = ? AND user_id = ?
	`, id, userID)

	var col models.Collection
	if err := row.Scan(&col.ID, &col.UserID, &col.Name, &col.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get collection: %w", err)
	}
	return &col, nil
}

func (r *Repo) AddCollectionItem(ctx context.Context, item models.CollectionItem) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO favorite_collection_items (collection_id, kind, ref_id, name, image_url, added_at)
		VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(collection_id, kind, ref_id) DO UPDATE SET
			name = excluded.name,
			image_url = excluded.image_url
	`, item.CollectionID, item.Kind, item.RefID, item.Name, item.ImageURL)
	if err != nil {
		return fmt.Errorf("add collection item: %w", err)
	}
	return nil
}

func (r *Repo) RemoveCollectionItem(ctx context.Context, collectionID, kind, refID string) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `
		DELETE FROM favorite_collection_items
		WHERE collection_id = ? AND kind = ? AND ref_id = ?
	`, collectionID, kind, refID)
	if err != nil {
		return false, fmt.Errorf("remove collection item: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (r *Repo) ListCollectionItems(ctx context.Context, collectionID string) ([]models.CollectionItem, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT collection_id, kind, ref_id, name, image_url, added_at
		FROM favorite_collection_items
		WHERE collection_id = ?
		ORDER BY added_at
	`, collectionID)
	if err != nil {
		return nil, fmt.Errorf("list collection items: %w", err)
	}
	defer rows.Close()

	out := make([]models.CollectionItem, 0)
	for rows.Next() {
		var it models.CollectionItem
		if err := rows.Scan(&it.CollectionID, &it.Kind, &it.RefID, &it.Name, &it.ImageURL, &it.AddedAt); err != nil {
			return nil, fmt.Errorf("scan collection item: %w", err)
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows err: %w", err)
	}
	return out, nil
}
