package refreshtokens

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitprogress/internal/common"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestCreate(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)INSERT\s+INTO\s+refresh_tokens`).
		WithArgs("u1", "tok", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), "u1", "tok", time.Hour))
}

func TestFind(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	expires := time.Now().Add(time.Hour)
	rows := sqlmock.NewRows([]string{"user_id", "expires_at"}).AddRow("u1", expires)
	mock.ExpectQuery(`(?s)SELECT user_id, expires_at\s+FROM refresh_tokens`).
		WithArgs("tok").
		WillReturnRows(rows)

	got, err := repo.Find(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.UserID)
	assert.WithinDuration(t, expires, got.Expires, time.Second)
}

func TestFind_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)SELECT user_id, expires_at\s+FROM refresh_tokens`).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Find(context.Background(), "ghost")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestDelete(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)DELETE FROM refresh_tokens\s+WHERE token = \$1`).
		WithArgs("tok").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), "tok"))
}

func TestDeleteExpired(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)DELETE FROM refresh_tokens\s+WHERE expires_at < now\(\)`).
		WillReturnResult(sqlmock.NewResult(0, 3))

	require.NoError(t, repo.DeleteExpired(context.Background()))
}
