package models

import (
	"time"

	"fitprogress/internal/progress"
)

// Measurement is the body-measurement set recorded for one calendar day.
// At most one row exists per (user, date); the unique index in storage
// enforces it.
type Measurement struct {
	ID     string
	UserID string
	Date   progress.DateKey
	Weight float64
	Height float64
	// Metrics holds the open set of circumference metrics (chest, waist,
	// hips, biceps, thighs, ...) keyed by metric name. Stored as JSONB.
	Metrics   map[string]float64
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Ref projects the measurement into the organizer's view.
func (m *Measurement) Ref() progress.MeasurementRef {
	return progress.MeasurementRef{ID: m.ID, Date: m.Date, Weight: m.Weight}
}
