package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolvePhoto(t *testing.T) {
	set := GroupPhotos([]PhotoRef{
		{ID: "p1", Date: "2024-03-05", Angle: AngleFront},
	})

	tests := []struct {
		name  string
		date  DateKey
		angle Angle
		want  Decision
	}{
		{"occupied slot updates", "2024-03-05", AngleFront, Decision{Op: OpUpdate, ExistingID: "p1"}},
		{"same date new angle creates", "2024-03-05", AngleBack, Decision{Op: OpCreate}},
		{"new date creates", "2024-03-06", AngleFront, Decision{Op: OpCreate}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolvePhoto(set, tt.date, tt.angle))
		})
	}
}

func TestResolveMeasurement(t *testing.T) {
	set := GroupMeasurements([]MeasurementRef{
		{ID: "m1", Date: "2024-03-05"},
	})

	assert.Equal(t, Decision{Op: OpUpdate, ExistingID: "m1"}, ResolveMeasurement(set, "2024-03-05"))
	assert.Equal(t, Decision{Op: OpCreate}, ResolveMeasurement(set, "2024-03-06"))
}
