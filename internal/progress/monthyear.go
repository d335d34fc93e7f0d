package progress

import "sort"

// MonthYear is an MM/YYYY bucket in display form.
type MonthYear string

// MonthYearKeys derives the distinct MM/YYYY buckets present in the given
// date keys, sorted chronologically.
func MonthYearKeys(keys []DateKey) []MonthYear {
	seen := make(map[MonthYear]struct{}, len(keys))
	result := make([]MonthYear, 0, len(keys))
	for _, k := range keys {
		my := k.MonthYear()
		if my == "" {
			continue
		}
		if _, ok := seen[my]; ok {
			continue
		}
		seen[my] = struct{}{}
		result = append(result, my)
	}
	sort.Slice(result, func(i, j int) bool {
		// MM/YYYY sorts chronologically as YYYY then MM.
		return result[i][3:]+result[i][:2] < result[j][3:]+result[j][:2]
	})
	return result
}

// FilterByMonthYear keeps the date keys whose MM/YYYY bucket is in the
// selection. An empty selection means "all selected" (the UI default) and
// returns the input unchanged.
func FilterByMonthYear(keys []DateKey, selected []MonthYear) []DateKey {
	if len(selected) == 0 {
		return keys
	}
	allow := make(map[MonthYear]struct{}, len(selected))
	for _, my := range selected {
		allow[my] = struct{}{}
	}
	filtered := make([]DateKey, 0, len(keys))
	for _, k := range keys {
		if _, ok := allow[k.MonthYear()]; ok {
			filtered = append(filtered, k)
		}
	}
	return filtered
}
