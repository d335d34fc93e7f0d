package models

import (
	"time"

	"fitprogress/internal/progress"
)

// Photo is one progress photo, keyed by (user, date, angle). The image
// bytes live in object storage; the row carries the dereferenceable URLs
// plus the storage keys needed for deletion.
type Photo struct {
	ID           string
	UserID       string
	Date         progress.DateKey
	Angle        progress.Angle
	URL          string
	ThumbnailURL string
	StorageKey   string
	ThumbnailKey string
	Notes        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Ref projects the photo into the organizer's view.
func (p *Photo) Ref() progress.PhotoRef {
	return progress.PhotoRef{
		ID:           p.ID,
		Date:         p.Date,
		Angle:        p.Angle,
		URL:          p.URL,
		ThumbnailURL: p.ThumbnailURL,
		Notes:        p.Notes,
	}
}
