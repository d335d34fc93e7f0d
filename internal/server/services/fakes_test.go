package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"fitprogress/internal/dbx"
	"fitprogress/internal/progress"
	"fitprogress/internal/server/models"
	measurementsrepo "fitprogress/internal/server/repositories/measurements"
	photosrepo "fitprogress/internal/server/repositories/photos"
	refreshtokensrepo "fitprogress/internal/server/repositories/refreshtokens"
	usersrepo "fitprogress/internal/server/repositories/users"
)

// --- helpers ---

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

// --- users ---

type fakeUsersRepo struct {
	createOut *models.User
	createErr error

	byEmailOut *models.User
	byEmailErr error

	byIDOut *models.User
	byIDErr error

	studentsOut []*models.User
	studentsErr error

	fcmUserID string
	fcmToken  string
	fcmErr    error

	settingsUserID string
	settingsOut    models.NotificationSettings
	settingsErr    error
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	u.ID = "new-user"
	return u, nil
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.byEmailErr != nil {
		return nil, f.byEmailErr
	}
	return f.byEmailOut, nil
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	if f.byIDErr != nil {
		return nil, f.byIDErr
	}
	return f.byIDOut, nil
}

func (f *fakeUsersRepo) ListStudents(ctx context.Context, professorID string) ([]*models.User, error) {
	if f.studentsErr != nil {
		return nil, f.studentsErr
	}
	return f.studentsOut, nil
}

func (f *fakeUsersRepo) UpdateFCMToken(ctx context.Context, userID, token string) error {
	f.fcmUserID, f.fcmToken = userID, token
	return f.fcmErr
}

func (f *fakeUsersRepo) UpdateNotificationSettings(ctx context.Context, userID string, settings models.NotificationSettings) error {
	f.settingsUserID, f.settingsOut = userID, settings
	return f.settingsErr
}

// --- refresh tokens ---

type fakeRefreshRepo struct {
	findOut *models.RefreshToken
	findErr error

	delErr    error
	deleted   []string
	createErr error
	created   []string
}

func (f *fakeRefreshRepo) Create(ctx context.Context, userID string, token string, validity time.Duration) error {
	f.created = append(f.created, token)
	return f.createErr
}

func (f *fakeRefreshRepo) Find(ctx context.Context, token string) (*models.RefreshToken, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.findOut, nil
}

func (f *fakeRefreshRepo) Delete(ctx context.Context, token string) error {
	f.deleted = append(f.deleted, token)
	return f.delErr
}

func (f *fakeRefreshRepo) DeleteExpired(ctx context.Context) error { return nil }

// --- measurements ---

type fakeMeasurementsRepo struct {
	listOut []*models.Measurement
	listErr error

	byIDOut *models.Measurement
	byIDErr error

	upsertErr error
	upserted  *models.Measurement

	updateErr error
	updated   *models.Measurement

	deleteErr  error
	deletedIDs []string
}

func (f *fakeMeasurementsRepo) Upsert(ctx context.Context, m *models.Measurement) (*models.Measurement, error) {
	if f.upsertErr != nil {
		return nil, f.upsertErr
	}
	if m.ID == "" {
		m.ID = "m-new"
	}
	f.upserted = m
	return m, nil
}

func (f *fakeMeasurementsRepo) List(ctx context.Context, userID string, from, to progress.DateKey) ([]*models.Measurement, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	if from == "" && to == "" {
		return f.listOut, nil
	}
	var out []*models.Measurement
	for _, m := range f.listOut {
		if (from == "" || m.Date >= from) && (to == "" || m.Date <= to) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMeasurementsRepo) GetByID(ctx context.Context, userID, id string) (*models.Measurement, error) {
	if f.byIDErr != nil {
		return nil, f.byIDErr
	}
	return f.byIDOut, nil
}

func (f *fakeMeasurementsRepo) Update(ctx context.Context, m *models.Measurement) error {
	f.updated = m
	return f.updateErr
}

func (f *fakeMeasurementsRepo) Delete(ctx context.Context, userID, id string) error {
	f.deletedIDs = append(f.deletedIDs, id)
	return f.deleteErr
}

// --- photos ---

type fakePhotosRepo struct {
	listOut []*models.Photo
	listErr error

	byIDOut *models.Photo
	byIDErr error

	upsertErr error
	upserted  *models.Photo

	deleteErr  error
	deletedIDs []string
}

func (f *fakePhotosRepo) Upsert(ctx context.Context, p *models.Photo) (*models.Photo, error) {
	if f.upsertErr != nil {
		return nil, f.upsertErr
	}
	if p.ID == "" {
		p.ID = "p-new"
	}
	f.upserted = p
	return p, nil
}

func (f *fakePhotosRepo) List(ctx context.Context, userID string, from, to progress.DateKey) ([]*models.Photo, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	if from == "" && to == "" {
		return f.listOut, nil
	}
	var out []*models.Photo
	for _, p := range f.listOut {
		if (from == "" || p.Date >= from) && (to == "" || p.Date <= to) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePhotosRepo) ListByDate(ctx context.Context, userID string, date progress.DateKey) ([]*models.Photo, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*models.Photo
	for _, p := range f.listOut {
		if p.Date == date {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePhotosRepo) GetByID(ctx context.Context, userID, id string) (*models.Photo, error) {
	if f.byIDErr != nil {
		return nil, f.byIDErr
	}
	return f.byIDOut, nil
}

func (f *fakePhotosRepo) Delete(ctx context.Context, userID, id string) error {
	f.deletedIDs = append(f.deletedIDs, id)
	return f.deleteErr
}

// --- manager ---

type fakeRepoManager struct {
	u  *fakeUsersRepo
	r  *fakeRefreshRepo
	m  *fakeMeasurementsRepo
	ph *fakePhotosRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }

func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository { return m.u }

func (m *fakeRepoManager) RefreshTokens(db dbx.DBTX) refreshtokensrepo.Repository { return m.r }

func (m *fakeRepoManager) Measurements(db dbx.DBTX) measurementsrepo.Repository { return m.m }

func (m *fakeRepoManager) Photos(db dbx.DBTX) photosrepo.Repository { return m.ph }

// --- object store ---

type fakeObjectStore struct {
	puts         map[string][]byte
	deleted      []string
	failOriginal bool
	failThumb    bool
}

func newFakeObjectStore() *fakeObjectStore {
	return &fakeObjectStore{puts: map[string][]byte{}}
}

func (f *fakeObjectStore) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	isThumb := strings.HasSuffix(key, "-thumb.jpg")
	if (isThumb && f.failThumb) || (!isThumb && f.failOriginal) {
		return "", errors.New("storage down")
	}
	f.puts[key] = data
	return "https://cdn.example.com/" + key, nil
}

func (f *fakeObjectStore) Delete(ctx context.Context, key string) error {
	f.deleted = append(f.deleted, key)
	return nil
}
