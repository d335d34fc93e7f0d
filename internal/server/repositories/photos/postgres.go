// Package photos provides the PostgreSQL-backed repository for progress
// photo records. Image bytes live in object storage; rows carry URLs and
// storage keys.
package photos

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"fitprogress/internal/common"
	"fitprogress/internal/dbx"
	"fitprogress/internal/progress"
	"fitprogress/internal/server/models"
)

// PostgresRepository implements photo storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func dateArg(k progress.DateKey) any {
	if k == "" {
		return nil
	}
	return string(k)
}

// Upsert inserts the photo for (user, date, angle) or replaces the existing
// row in place, keeping its id. The unique (user_id, date, angle) index
// makes this safe against concurrent submits for the same slot.
func (r *PostgresRepository) Upsert(ctx context.Context, p *models.Photo) (*models.Photo, error) {
	query := `
		INSERT INTO photos (user_id, date, angle, url, thumbnail_url, storage_key, thumbnail_key, notes)
		VALUES ($1, $2::date, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id, date, angle)
		DO UPDATE SET
			url = EXCLUDED.url,
			thumbnail_url = EXCLUDED.thumbnail_url,
			storage_key = EXCLUDED.storage_key,
			thumbnail_key = EXCLUDED.thumbnail_key,
			notes = EXCLUDED.notes,
			updated_at = now()
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		p.UserID, string(p.Date), p.Angle, p.URL, p.ThumbnailURL, p.StorageKey, p.ThumbnailKey, p.Notes).
		Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}

const photoColumns = `id, user_id, date, angle, url, thumbnail_url, storage_key, thumbnail_key, notes, created_at, updated_at`

func scanPhoto(row interface{ Scan(...any) error }) (*models.Photo, error) {
	p := &models.Photo{}
	var date time.Time
	if err := row.Scan(&p.ID, &p.UserID, &date, &p.Angle, &p.URL, &p.ThumbnailURL,
		&p.StorageKey, &p.ThumbnailKey, &p.Notes, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	p.Date = progress.DateKey(date.Format("2006-01-02"))
	return p, nil
}

func (r *PostgresRepository) queryPhotos(ctx context.Context, query string, args ...any) ([]*models.Photo, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select photos: %w", err)
	}
	defer rows.Close()

	var result []*models.Photo
	for rows.Next() {
		p, err := scanPhoto(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// List returns the user's photos in the requested date range, ordered by
// date then angle, oldest first. Open bounds pass empty keys.
func (r *PostgresRepository) List(ctx context.Context, userID string, from, to progress.DateKey) ([]*models.Photo, error) {
	query := `
		SELECT ` + photoColumns + ` FROM photos
		WHERE user_id = $1
		  AND ($2::date IS NULL OR date >= $2::date)
		  AND ($3::date IS NULL OR date <= $3::date)
		ORDER BY date ASC, angle ASC
	`
	return r.queryPhotos(ctx, query, userID, dateArg(from), dateArg(to))
}

// ListByDate returns all of the user's photos for one calendar day.
func (r *PostgresRepository) ListByDate(ctx context.Context, userID string, date progress.DateKey) ([]*models.Photo, error) {
	query := `
		SELECT ` + photoColumns + ` FROM photos
		WHERE user_id = $1 AND date = $2::date
		ORDER BY angle ASC
	`
	return r.queryPhotos(ctx, query, userID, string(date))
}

// GetByID returns the photo by id, scoped to the owner. Rows outside the
// owner's scope look like common.ErrorNotFound.
func (r *PostgresRepository) GetByID(ctx context.Context, userID, id string) (*models.Photo, error) {
	query := `SELECT ` + photoColumns + ` FROM photos WHERE id = $1 AND user_id = $2`
	p, err := scanPhoto(r.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}

// Delete removes the photo row by id, scoped to the owner.
func (r *PostgresRepository) Delete(ctx context.Context, userID, id string) error {
	query := `DELETE FROM photos WHERE id = $1 AND user_id = $2`
	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	switch n {
	case 1:
		return nil
	case 0:
		return common.ErrorNotFound
	default:
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
}
