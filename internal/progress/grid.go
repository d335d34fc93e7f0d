package progress

import "sort"

// Cell is one grid slot. A nil Photo is the explicit "no data" marker: an
// empty slot renders as such, never as an error.
type Cell struct {
	Photo *PhotoRef
}

// Empty reports whether the cell has no photo.
func (c Cell) Empty() bool { return c.Photo == nil }

// Row is one grid row: a fixed angle and one cell per rendered date.
type Row struct {
	Angle Angle
	Cells []Cell
}

// Grid is the comparison matrix: rows iterate the fixed angle order,
// columns iterate the selected dates ascending.
type Grid struct {
	Dates []DateKey
	Rows  []Row
}

// BuildGrid projects the grouped photo set onto a matrix of the selected
// dates and the given angle order. Duplicated date keys are collapsed and
// columns are sorted ascending (chronological left-to-right) regardless of
// input order; row order follows angles exactly. The projection is pure:
// the grouped set is not modified.
func BuildGrid(set PhotoSet, selected []DateKey, angles []Angle) Grid {
	seen := make(map[DateKey]struct{}, len(selected))
	dates := make([]DateKey, 0, len(selected))
	for _, d := range selected {
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		dates = append(dates, d)
	}
	// DateKey is YYYY-MM-DD, so string order is date order.
	sort.Slice(dates, func(i, j int) bool { return dates[i] < dates[j] })

	rows := make([]Row, 0, len(angles))
	for _, angle := range angles {
		row := Row{Angle: angle, Cells: make([]Cell, 0, len(dates))}
		for _, d := range dates {
			var cell Cell
			if byAngle, ok := set[d]; ok {
				if p, ok := byAngle[angle]; ok {
					photo := p
					cell.Photo = &photo
				}
			}
			row.Cells = append(row.Cells, cell)
		}
		rows = append(rows, row)
	}

	return Grid{Dates: dates, Rows: rows}
}
