package progress

// PhotoRef is the organizer's view of a stored photo record. It carries
// only what grouping and grid building need; image bytes never pass
// through this package.
type PhotoRef struct {
	ID           string
	Date         DateKey
	Angle        Angle
	URL          string
	ThumbnailURL string
	Notes        string
}

// MeasurementRef is the organizer's view of a stored measurement record.
// Weight is carried so comparison grids can annotate columns.
type MeasurementRef struct {
	ID     string
	Date   DateKey
	Weight float64
}

// PhotoSet is a flat photo collection bucketed by (date, angle).
type PhotoSet map[DateKey]map[Angle]PhotoRef

// MeasurementSet is a flat measurement collection bucketed by date; at most
// one measurement exists per day.
type MeasurementSet map[DateKey]MeasurementRef

// GroupPhotos buckets photos by (date, angle). When two records collide on
// the same key the later one in input order wins: callers supply records in
// recency order (oldest first), so the most recent write prevails.
func GroupPhotos(photos []PhotoRef) PhotoSet {
	set := make(PhotoSet)
	for _, p := range photos {
		byAngle, ok := set[p.Date]
		if !ok {
			byAngle = make(map[Angle]PhotoRef)
			set[p.Date] = byAngle
		}
		byAngle[p.Angle] = p
	}
	return set
}

// GroupMeasurements buckets measurements by date. Later input wins on
// collision, same policy as GroupPhotos.
func GroupMeasurements(measurements []MeasurementRef) MeasurementSet {
	set := make(MeasurementSet)
	for _, m := range measurements {
		set[m.Date] = m
	}
	return set
}

// Dates returns the distinct date keys present in the set, unsorted.
func (s PhotoSet) Dates() []DateKey {
	keys := make([]DateKey, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	return keys
}
