package httpapi

import (
	"context"

	"fitprogress/internal/progress"
	"fitprogress/internal/server/models"
	"fitprogress/internal/server/services"
)

// UserService is the account/auth surface the handlers depend on.
type UserService interface {
	RegisterProfessor(ctx context.Context, name, email, password string) (*models.User, error)
	RegisterStudent(ctx context.Context, professorID, name, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, *services.TokenPair, error)
	RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	ListStudents(ctx context.Context, professorID string) ([]*models.User, error)
	CheckStudentAccess(ctx context.Context, professorID, studentID string) (*models.User, error)
	UpdateFCMToken(ctx context.Context, userID, token string) error
	UpdateNotificationSettings(ctx context.Context, userID string, settings models.NotificationSettings) error
}

// MeasurementService is the measurement surface the handlers depend on.
type MeasurementService interface {
	Submit(ctx context.Context, userID string, input services.MeasurementInput, mode services.SubmitMode) (*models.Measurement, progress.Op, error)
	List(ctx context.Context, userID string, from, to string) ([]*models.Measurement, error)
	Get(ctx context.Context, userID, id string) (*models.Measurement, error)
	Update(ctx context.Context, userID, id string, input services.MeasurementInput) (*models.Measurement, error)
	Delete(ctx context.Context, userID, id string) error
}

// PhotoService is the photo surface the handlers depend on.
type PhotoService interface {
	Upload(ctx context.Context, userID string, upload services.PhotoUpload, mode services.SubmitMode) (*models.Photo, progress.Op, error)
	List(ctx context.Context, userID string, from, to string) ([]*models.Photo, error)
	Delete(ctx context.Context, userID, id string) error
	DeleteByDate(ctx context.Context, userID string, rawDate string) (int, error)
	Grid(ctx context.Context, userID string, months []progress.MonthYear) (*services.GridResult, error)
	Compare(ctx context.Context, userID string, rawDates []string) (*services.GridResult, error)
}
