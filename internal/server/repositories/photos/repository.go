package photos

import (
	"context"

	"fitprogress/internal/progress"
	"fitprogress/internal/server/models"
)

type Repository interface {
	// Upsert inserts the photo or, when the (user, date, angle) slot is
	// already occupied, replaces it in place.
	Upsert(ctx context.Context, p *models.Photo) (*models.Photo, error)
	// List returns the user's photos ordered by date then angle.
	// Empty from/to keys leave that bound open.
	List(ctx context.Context, userID string, from, to progress.DateKey) ([]*models.Photo, error)
	// ListByDate returns all of the user's photos for one calendar day.
	ListByDate(ctx context.Context, userID string, date progress.DateKey) ([]*models.Photo, error)
	GetByID(ctx context.Context, userID, id string) (*models.Photo, error)
	Delete(ctx context.Context, userID, id string) error
}
