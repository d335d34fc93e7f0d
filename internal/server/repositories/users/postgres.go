// Package users provides the PostgreSQL-backed repository for user
// accounts, including the professor/student relationship.
package users

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"fitprogress/internal/common"
	"fitprogress/internal/dbx"
	"fitprogress/internal/server/models"
)

// PostgresRepository implements user storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const userColumns = `id, name, email, password_hash, role, COALESCE(professor_id::text, ''), fcm_token, notification_settings, created_at`

func scanUser(row interface{ Scan(...any) error }) (*models.User, error) {
	user := &models.User{}
	var settings []byte
	if err := row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.Role,
		&user.ProfessorID, &user.FCMToken, &settings, &user.CreatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(settings, &user.NotificationSettings); err != nil {
		return nil, fmt.Errorf("decoding notification settings: %w", err)
	}
	return user, nil
}

// Create inserts a new user and returns it with the storage-assigned id.
func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	query := `
		INSERT INTO users (name, email, password_hash, role, professor_id)
		VALUES ($1, $2, $3, $4, NULLIF($5, '')::uuid)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		user.Name, user.Email, user.PasswordHash, user.Role, user.ProfessorID).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		// 23505 = unique_violation, the email column is the only unique key
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, common.ErrEmailAlreadyRegistered
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return user, nil
}

// GetByEmail returns the user with the given email, or common.ErrorNotFound.
func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	user, err := scanUser(r.db.QueryRowContext(ctx, query, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return user, nil
}

// GetByID returns the user with the given id, or common.ErrorNotFound.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	user, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return user, nil
}

// ListStudents returns the students registered by the given professor.
func (r *PostgresRepository) ListStudents(ctx context.Context, professorID string) ([]*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE professor_id = $1 ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query, professorID)
	if err != nil {
		return nil, fmt.Errorf("failed to select students: %w", err)
	}
	defer rows.Close()

	var result []*models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, user)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// UpdateFCMToken stores the push-notification device token for the user.
func (r *PostgresRepository) UpdateFCMToken(ctx context.Context, userID, token string) error {
	query := `UPDATE users SET fcm_token = $2 WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, userID, token)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return requireOneRow(res)
}

// UpdateNotificationSettings replaces the user's notification settings.
func (r *PostgresRepository) UpdateNotificationSettings(ctx context.Context, userID string, settings models.NotificationSettings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encoding notification settings: %w", err)
	}
	query := `UPDATE users SET notification_settings = $2 WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, userID, data)
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
