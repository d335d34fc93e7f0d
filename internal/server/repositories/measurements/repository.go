package measurements

import (
	"context"

	"fitprogress/internal/progress"
	"fitprogress/internal/server/models"
)

type Repository interface {
	// Upsert inserts the measurement or, when the (user, date) slot is
	// already occupied, replaces it in place.
	Upsert(ctx context.Context, m *models.Measurement) (*models.Measurement, error)
	// List returns the user's measurements ordered by date ascending.
	// Empty from/to keys leave that bound open.
	List(ctx context.Context, userID string, from, to progress.DateKey) ([]*models.Measurement, error)
	GetByID(ctx context.Context, userID, id string) (*models.Measurement, error)
	// Update mutates an existing row by id, scoped to the owner.
	Update(ctx context.Context, m *models.Measurement) error
	Delete(ctx context.Context, userID, id string) error
}
