package users

import (
	"context"

	"fitprogress/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	ListStudents(ctx context.Context, professorID string) ([]*models.User, error)
	UpdateFCMToken(ctx context.Context, userID, token string) error
	UpdateNotificationSettings(ctx context.Context, userID string, settings models.NotificationSettings) error
}
