package users

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitprogress/internal/common"
	"fitprogress/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func userRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "email", "password_hash", "role", "professor_id", "fcm_token", "notification_settings", "created_at",
	})
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*INSERT\s+INTO\s+users\s*\(name,\s*email,\s*password_hash,\s*role,\s*professor_id\)`

	rows := sqlmock.NewRows([]string{"id", "created_at"}).AddRow("42", time.Now())
	mock.ExpectQuery(q).
		WithArgs("Ana", "ana@example.com", []byte("hash"), models.RoleProfessor, "").
		WillReturnRows(rows)

	u := &models.User{Name: "Ana", Email: "ana@example.com", PasswordHash: []byte("hash"), Role: models.RoleProfessor}
	got, err := repo.Create(context.Background(), u)
	require.NoError(t, err)
	assert.Equal(t, "42", got.ID)
}

func TestCreate_DuplicateEmail(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT\s+INTO\s+users`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

	_, err := repo.Create(context.Background(), &models.User{Email: "taken@example.com"})
	assert.ErrorIs(t, err, common.ErrEmailAlreadyRegistered)
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT\s+INTO\s+users`).
		WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &models.User{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
}

func TestGetByEmail_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := userRows().AddRow("42", "Ana", "ana@example.com", []byte("hash"), "professor", "",
		"", []byte(`{"measurements":true,"photos":false,"reminders":true}`), time.Now())
	mock.ExpectQuery(`SELECT .* FROM users WHERE email = \$1`).
		WithArgs("ana@example.com").
		WillReturnRows(rows)

	got, err := repo.GetByEmail(context.Background(), "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, "42", got.ID)
	assert.Equal(t, models.RoleProfessor, got.Role)
	assert.False(t, got.NotificationSettings.Photos)
	assert.True(t, got.NotificationSettings.Reminders)
}

func TestGetByEmail_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT .* FROM users WHERE email = \$1`).
		WithArgs("ghost@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByEmail(context.Background(), "ghost@example.com")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT .* FROM users WHERE id = \$1`).
		WithArgs("nope").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestListStudents(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := userRows().
		AddRow("s1", "Bruno", "bruno@example.com", []byte("h"), "student", "42", "", []byte(`{}`), time.Now()).
		AddRow("s2", "Carla", "carla@example.com", []byte("h"), "student", "42", "", []byte(`{}`), time.Now())
	mock.ExpectQuery(`SELECT .* FROM users WHERE professor_id = \$1`).
		WithArgs("42").
		WillReturnRows(rows)

	got, err := repo.ListStudents(context.Background(), "42")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "s1", got[0].ID)
	assert.Equal(t, "42", got[0].ProfessorID)
}

func TestUpdateFCMToken(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE users SET fcm_token = \$2 WHERE id = \$1`).
		WithArgs("42", "tok").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateFCMToken(context.Background(), "42", "tok"))
}

func TestUpdateNotificationSettings_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE users SET notification_settings = \$2 WHERE id = \$1`).
		WithArgs("nope", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateNotificationSettings(context.Background(), "nope", models.NotificationSettings{})
	assert.ErrorIs(t, err, common.ErrorNotFound)
}
