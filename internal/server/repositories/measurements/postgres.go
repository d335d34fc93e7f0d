// Package measurements provides the PostgreSQL-backed repository for
// body-measurement records.
package measurements

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"fitprogress/internal/common"
	"fitprogress/internal/dbx"
	"fitprogress/internal/progress"
	"fitprogress/internal/server/models"
)

// PostgresRepository implements measurement storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// dateArg converts a DateKey into a nullable query argument.
func dateArg(k progress.DateKey) any {
	if k == "" {
		return nil
	}
	return string(k)
}

// Upsert inserts the measurement for (user, date) or replaces the existing
// row in place. The unique (user_id, date) index makes this safe against
// concurrent submits for the same day.
func (r *PostgresRepository) Upsert(ctx context.Context, m *models.Measurement) (*models.Measurement, error) {
	metrics, err := json.Marshal(m.Metrics)
	if err != nil {
		return nil, fmt.Errorf("encoding metrics: %w", err)
	}

	query := `
		INSERT INTO measurements (user_id, date, weight, height, metrics, notes)
		VALUES ($1, $2::date, $3, $4, $5, $6)
		ON CONFLICT (user_id, date)
		DO UPDATE SET
			weight = EXCLUDED.weight,
			height = EXCLUDED.height,
			metrics = EXCLUDED.metrics,
			notes = EXCLUDED.notes,
			updated_at = now()
		RETURNING id, created_at, updated_at
	`
	err = r.db.QueryRowContext(ctx, query,
		m.UserID, string(m.Date), m.Weight, m.Height, metrics, m.Notes).
		Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return m, nil
}

const measurementColumns = `id, user_id, date, weight, height, metrics, notes, created_at, updated_at`

func scanMeasurement(row interface{ Scan(...any) error }) (*models.Measurement, error) {
	m := &models.Measurement{}
	var date time.Time
	var metrics []byte
	if err := row.Scan(&m.ID, &m.UserID, &date, &m.Weight, &m.Height, &metrics, &m.Notes,
		&m.CreatedAt, &m.UpdatedAt); err != nil {
		return nil, err
	}
	m.Date = progress.DateKey(date.Format("2006-01-02"))
	if err := json.Unmarshal(metrics, &m.Metrics); err != nil {
		return nil, fmt.Errorf("decoding metrics: %w", err)
	}
	return m, nil
}

// List returns the user's measurements in the requested date range,
// ordered by date ascending (oldest first). Open bounds pass empty keys.
func (r *PostgresRepository) List(ctx context.Context, userID string, from, to progress.DateKey) ([]*models.Measurement, error) {
	query := `
		SELECT ` + measurementColumns + ` FROM measurements
		WHERE user_id = $1
		  AND ($2::date IS NULL OR date >= $2::date)
		  AND ($3::date IS NULL OR date <= $3::date)
		ORDER BY date ASC
	`
	rows, err := r.db.QueryContext(ctx, query, userID, dateArg(from), dateArg(to))
	if err != nil {
		return nil, fmt.Errorf("failed to select measurements: %w", err)
	}
	defer rows.Close()

	var result []*models.Measurement
	for rows.Next() {
		m, err := scanMeasurement(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// GetByID returns the measurement by id, scoped to the owner. Rows outside
// the owner's scope look like common.ErrorNotFound.
func (r *PostgresRepository) GetByID(ctx context.Context, userID, id string) (*models.Measurement, error) {
	query := `SELECT ` + measurementColumns + ` FROM measurements WHERE id = $1 AND user_id = $2`
	m, err := scanMeasurement(r.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return m, nil
}

// Update mutates an existing row in place, scoped to the owner.
func (r *PostgresRepository) Update(ctx context.Context, m *models.Measurement) error {
	metrics, err := json.Marshal(m.Metrics)
	if err != nil {
		return fmt.Errorf("encoding metrics: %w", err)
	}

	query := `
		UPDATE measurements
		SET date = $3::date, weight = $4, height = $5, metrics = $6, notes = $7, updated_at = now()
		WHERE id = $1 AND user_id = $2
	`
	res, err := r.db.ExecContext(ctx, query, m.ID, m.UserID, string(m.Date), m.Weight, m.Height, metrics, m.Notes)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return requireOneRow(res)
}

// Delete removes the measurement by id, scoped to the owner.
func (r *PostgresRepository) Delete(ctx context.Context, userID, id string) error {
	query := `DELETE FROM measurements WHERE id = $1 AND user_id = $2`
	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return requireOneRow(res)
}

func requireOneRow(res sql.Result) error {
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
