package progress

// Op says whether an incoming record should be stored as a new row or as an
// in-place update of an existing one.
type Op int

const (
	OpCreate Op = iota
	OpUpdate
)

// Decision is the outcome of reconciling an incoming record against the
// grouped set. ExistingID is set only for OpUpdate.
type Decision struct {
	Op         Op
	ExistingID string
}

// ResolvePhoto decides create-vs-update for a photo submission keyed by
// (date, angle). If a record already occupies the slot the decision is an
// update carrying its id, so storage replaces in place instead of
// inserting a duplicate.
//
// The check-then-act here is not atomic against concurrent writers; the
// storage layer backs it with a unique (user, date, angle) index and an
// upsert, which makes the race harmless.
func ResolvePhoto(set PhotoSet, date DateKey, angle Angle) Decision {
	if byAngle, ok := set[date]; ok {
		if existing, ok := byAngle[angle]; ok {
			return Decision{Op: OpUpdate, ExistingID: existing.ID}
		}
	}
	return Decision{Op: OpCreate}
}

// ResolveMeasurement decides create-vs-update for a measurement submission,
// keyed by date only: the measurement set for a day is a single record.
func ResolveMeasurement(set MeasurementSet, date DateKey) Decision {
	if existing, ok := set[date]; ok {
		return Decision{Op: OpUpdate, ExistingID: existing.ID}
	}
	return Decision{Op: OpCreate}
}
