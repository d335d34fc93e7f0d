package services

import (
	"context"
	"database/sql"

	"fitprogress/internal/common"
	"fitprogress/internal/progress"
	"fitprogress/internal/server/blob"
	"fitprogress/internal/server/imaging"
	"fitprogress/internal/server/models"
	"fitprogress/internal/server/repositories/repomanager"
)

// ObjectStore is the slice of blob.Store the photo service depends on.
type ObjectStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}

// PhotoUpload carries a client-submitted progress photo.
type PhotoUpload struct {
	Date        string
	Angle       string
	Notes       string
	Filename    string
	ContentType string
	Data        []byte
}

// GridResult is a comparison grid plus the month keys available to filter
// by and the weight recorded on each grid date, when one exists.
type GridResult struct {
	Grid            progress.Grid
	AvailableMonths []progress.MonthYear
	Weights         map[progress.DateKey]float64
}

// makeThumbnail is a seam for testing imaging.Thumbnail.
var makeThumbnail = imaging.Thumbnail

// PhotoService stores progress photos and builds comparison grids.
type PhotoService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	store       ObjectStore
}

// NewPhotoService constructs a PhotoService.
func NewPhotoService(db *sql.DB, m repomanager.RepositoryManager, store ObjectStore) *PhotoService {
	return &PhotoService{db: db, repomanager: m, store: store}
}

// Upload stores the photo bytes and thumbnail in object storage and records
// the row for (user, date, angle). An occupied slot is replaced in place
// unless mode is SubmitModeCreate, in which case ErrDuplicateDateEntry is
// returned. Replaced uploads get their old objects removed best-effort.
func (s *PhotoService) Upload(ctx context.Context, userID string, upload PhotoUpload, mode SubmitMode) (*models.Photo, progress.Op, error) {
	date, err := progress.NormalizeDate(upload.Date)
	if err != nil {
		return nil, 0, err
	}
	angle, err := progress.ParseAngle(upload.Angle)
	if err != nil {
		return nil, 0, err
	}

	repo := s.repomanager.Photos(s.db)
	sameDay, err := repo.ListByDate(ctx, userID, date)
	if err != nil {
		return nil, 0, err
	}
	refs := make([]progress.PhotoRef, 0, len(sameDay))
	for _, p := range sameDay {
		refs = append(refs, p.Ref())
	}
	decision := progress.ResolvePhoto(progress.GroupPhotos(refs), date, angle)
	if decision.Op == progress.OpUpdate && mode == SubmitModeCreate {
		return nil, 0, common.ErrDuplicateDateEntry
	}

	var replaced *models.Photo
	for _, p := range sameDay {
		if p.Angle == angle {
			replaced = p
			break
		}
	}

	thumb, err := makeThumbnail(upload.Data)
	if err != nil {
		return nil, 0, err
	}

	key := blob.NewStorageKey(userID, upload.Filename)
	thumbKey := key + "-thumb.jpg"

	url, err := s.store.Put(ctx, key, upload.Data, upload.ContentType)
	if err != nil {
		return nil, 0, err
	}
	thumbURL, err := s.store.Put(ctx, thumbKey, thumb, "image/jpeg")
	if err != nil {
		s.store.Delete(ctx, key)
		return nil, 0, err
	}

	photo := &models.Photo{
		UserID:       userID,
		Date:         date,
		Angle:        angle,
		URL:          url,
		ThumbnailURL: thumbURL,
		StorageKey:   key,
		ThumbnailKey: thumbKey,
		Notes:        upload.Notes,
	}
	saved, err := repo.Upsert(ctx, photo)
	if err != nil {
		// orphaned objects are worse than a failed request; clean up
		s.store.Delete(ctx, key)
		s.store.Delete(ctx, thumbKey)
		return nil, 0, err
	}

	if replaced != nil && replaced.StorageKey != key {
		s.store.Delete(ctx, replaced.StorageKey)
		s.store.Delete(ctx, replaced.ThumbnailKey)
	}

	return saved, decision.Op, nil
}

// List returns the user's photos, oldest first. Bounds are optional raw
// date strings in any recognized shape.
func (s *PhotoService) List(ctx context.Context, userID string, from, to string) ([]*models.Photo, error) {
	fromKey, toKey, err := normalizeBounds(from, to)
	if err != nil {
		return nil, err
	}
	return s.repomanager.Photos(s.db).List(ctx, userID, fromKey, toKey)
}

// Delete removes the photo row and then its stored objects. Object removal
// is best-effort; the row is gone either way.
func (s *PhotoService) Delete(ctx context.Context, userID, id string) error {
	repo := s.repomanager.Photos(s.db)
	photo, err := repo.GetByID(ctx, userID, id)
	if err != nil {
		return err
	}
	if err := repo.Delete(ctx, userID, id); err != nil {
		return err
	}
	s.store.Delete(ctx, photo.StorageKey)
	s.store.Delete(ctx, photo.ThumbnailKey)
	return nil
}

// DeleteByDate removes every photo the user recorded on the given day and
// returns how many were deleted.
func (s *PhotoService) DeleteByDate(ctx context.Context, userID string, rawDate string) (int, error) {
	date, err := progress.NormalizeDate(rawDate)
	if err != nil {
		return 0, err
	}
	repo := s.repomanager.Photos(s.db)
	sameDay, err := repo.ListByDate(ctx, userID, date)
	if err != nil {
		return 0, err
	}
	deleted := 0
	for _, p := range sameDay {
		if err := repo.Delete(ctx, userID, p.ID); err != nil {
			return deleted, err
		}
		s.store.Delete(ctx, p.StorageKey)
		s.store.Delete(ctx, p.ThumbnailKey)
		deleted++
	}
	return deleted, nil
}

// Grid builds the comparison grid over the months the client selected.
// An empty selection means every month with photos. Unknown month keys
// simply match nothing.
func (s *PhotoService) Grid(ctx context.Context, userID string, months []progress.MonthYear) (*GridResult, error) {
	set, err := s.photoSet(ctx, userID)
	if err != nil {
		return nil, err
	}
	dates := set.Dates()
	selected := progress.FilterByMonthYear(dates, months)
	grid := progress.BuildGrid(set, selected, progress.Angles())
	weights, err := s.weightsFor(ctx, userID, grid.Dates)
	if err != nil {
		return nil, err
	}
	return &GridResult{
		Grid:            grid,
		AvailableMonths: progress.MonthYearKeys(dates),
		Weights:         weights,
	}, nil
}

// Compare builds a grid restricted to explicitly chosen days.
func (s *PhotoService) Compare(ctx context.Context, userID string, rawDates []string) (*GridResult, error) {
	selected := make([]progress.DateKey, 0, len(rawDates))
	for _, raw := range rawDates {
		date, err := progress.NormalizeDate(raw)
		if err != nil {
			return nil, err
		}
		selected = append(selected, date)
	}
	set, err := s.photoSet(ctx, userID)
	if err != nil {
		return nil, err
	}
	grid := progress.BuildGrid(set, selected, progress.Angles())
	weights, err := s.weightsFor(ctx, userID, grid.Dates)
	if err != nil {
		return nil, err
	}
	return &GridResult{
		Grid:            grid,
		AvailableMonths: progress.MonthYearKeys(set.Dates()),
		Weights:         weights,
	}, nil
}

// weightsFor returns the weight recorded on each of the given days.
// Days without a measurement are simply absent from the map.
func (s *PhotoService) weightsFor(ctx context.Context, userID string, dates []progress.DateKey) (map[progress.DateKey]float64, error) {
	if len(dates) == 0 {
		return map[progress.DateKey]float64{}, nil
	}
	ms, err := s.repomanager.Measurements(s.db).List(ctx, userID, dates[0], dates[len(dates)-1])
	if err != nil {
		return nil, err
	}
	set := make(map[progress.DateKey]bool, len(dates))
	for _, d := range dates {
		set[d] = true
	}
	weights := make(map[progress.DateKey]float64)
	for _, m := range ms {
		if set[m.Date] {
			weights[m.Date] = m.Weight
		}
	}
	return weights, nil
}

func (s *PhotoService) photoSet(ctx context.Context, userID string) (progress.PhotoSet, error) {
	all, err := s.repomanager.Photos(s.db).List(ctx, userID, "", "")
	if err != nil {
		return nil, err
	}
	refs := make([]progress.PhotoRef, 0, len(all))
	for _, p := range all {
		refs = append(refs, p.Ref())
	}
	return progress.GroupPhotos(refs), nil
}
