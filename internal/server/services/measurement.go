package services

import (
	"context"
	"database/sql"
	"errors"

	"fitprogress/internal/common"
	"fitprogress/internal/progress"
	"fitprogress/internal/server/models"
	"fitprogress/internal/server/repositories/repomanager"
)

// SubmitMode selects how a submit treats an occupied (user, date) slot.
type SubmitMode string

const (
	// SubmitModeAuto updates in place when the slot is occupied.
	SubmitModeAuto SubmitMode = "auto"
	// SubmitModeCreate rejects occupied slots with ErrDuplicateDateEntry.
	SubmitModeCreate SubmitMode = "create"
)

// MeasurementInput carries a client-submitted measurement. Date accepts any
// of the recognized date shapes and is normalized before storage.
type MeasurementInput struct {
	Date    string
	Weight  float64
	Height  float64
	Metrics map[string]float64
	Notes   string
}

// MeasurementService records and queries daily body measurements.
type MeasurementService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewMeasurementService constructs a MeasurementService.
func NewMeasurementService(db *sql.DB, m repomanager.RepositoryManager) *MeasurementService {
	return &MeasurementService{db: db, repomanager: m}
}

// Submit records the measurement for the input's day. An occupied day is
// updated in place unless mode is SubmitModeCreate, in which case
// ErrDuplicateDateEntry is returned. The returned op reports whether an
// existing row was replaced.
func (s *MeasurementService) Submit(ctx context.Context, userID string, input MeasurementInput, mode SubmitMode) (*models.Measurement, progress.Op, error) {
	date, err := progress.NormalizeDate(input.Date)
	if err != nil {
		return nil, 0, err
	}

	repo := s.repomanager.Measurements(s.db)
	existing, err := repo.List(ctx, userID, date, date)
	if err != nil {
		return nil, 0, err
	}
	refs := make([]progress.MeasurementRef, 0, len(existing))
	for _, m := range existing {
		refs = append(refs, m.Ref())
	}
	decision := progress.ResolveMeasurement(progress.GroupMeasurements(refs), date)
	if decision.Op == progress.OpUpdate && mode == SubmitModeCreate {
		return nil, 0, common.ErrDuplicateDateEntry
	}

	m := &models.Measurement{
		UserID:  userID,
		Date:    date,
		Weight:  input.Weight,
		Height:  input.Height,
		Metrics: input.Metrics,
		Notes:   input.Notes,
	}
	saved, err := repo.Upsert(ctx, m)
	if err != nil {
		return nil, 0, err
	}
	return saved, decision.Op, nil
}

// List returns the user's measurements, oldest first. Bounds are optional
// raw date strings in any recognized shape.
func (s *MeasurementService) List(ctx context.Context, userID string, from, to string) ([]*models.Measurement, error) {
	fromKey, toKey, err := normalizeBounds(from, to)
	if err != nil {
		return nil, err
	}
	return s.repomanager.Measurements(s.db).List(ctx, userID, fromKey, toKey)
}

// Get loads one measurement by id, scoped to the owner.
func (s *MeasurementService) Get(ctx context.Context, userID, id string) (*models.Measurement, error) {
	return s.repomanager.Measurements(s.db).GetByID(ctx, userID, id)
}

// Update replaces an existing measurement's fields. Moving it onto a day
// already occupied by another measurement yields ErrDuplicateDateEntry.
func (s *MeasurementService) Update(ctx context.Context, userID, id string, input MeasurementInput) (*models.Measurement, error) {
	date, err := progress.NormalizeDate(input.Date)
	if err != nil {
		return nil, err
	}

	repo := s.repomanager.Measurements(s.db)
	current, err := repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if date != current.Date {
		occupants, err := repo.List(ctx, userID, date, date)
		if err != nil {
			return nil, err
		}
		for _, o := range occupants {
			if o.ID != id {
				return nil, common.ErrDuplicateDateEntry
			}
		}
	}

	current.Date = date
	current.Weight = input.Weight
	current.Height = input.Height
	current.Metrics = input.Metrics
	current.Notes = input.Notes
	if err := repo.Update(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

// Delete removes the measurement by id, scoped to the owner.
func (s *MeasurementService) Delete(ctx context.Context, userID, id string) error {
	return s.repomanager.Measurements(s.db).Delete(ctx, userID, id)
}

// normalizeBounds converts optional raw range bounds to date keys.
func normalizeBounds(from, to string) (progress.DateKey, progress.DateKey, error) {
	var fromKey, toKey progress.DateKey
	var err error
	if from != "" {
		if fromKey, err = progress.NormalizeDate(from); err != nil {
			return "", "", err
		}
	}
	if to != "" {
		if toKey, err = progress.NormalizeDate(to); err != nil {
			return "", "", err
		}
	}
	if fromKey != "" && toKey != "" && toKey < fromKey {
		return "", "", errors.New("range end precedes range start")
	}
	return fromKey, toKey, nil
}
