// Package progress implements the progress-record organizer: date-key
// normalization, grouping of measurement and photo records by calendar day
// and angle, create-vs-update reconciliation, comparison-grid building and
// month/year filtering. Everything here is a pure function over immutable
// snapshots; persistence and transport live elsewhere.
package progress

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"fitprogress/internal/common"
)

// DateKey is a canonical YYYY-MM-DD string representing a calendar day.
// It is timezone-independent: two keys compare equal iff they denote the
// same calendar day, and lexicographic order equals chronological order.
type DateKey string

// NormalizeDate canonicalizes the accepted date shapes into a DateKey:
//
//   - "2024-03-05"               (passed through, validated)
//   - "2024-03-05T10:30:00.000Z" (date portion taken by component split)
//   - "05/03/2024"               (day/month/year, reordered)
//
// The date components are parsed directly; the input is never routed
// through a timezone-aware instant, so the calendar day cannot shift with
// the host timezone. Inputs matching none of the shapes return
// common.ErrUnrecognizedDateFormat.
func NormalizeDate(input string) (DateKey, error) {
	s := strings.TrimSpace(input)

	// ISO-8601 timestamp: everything before 'T' is the calendar date.
	if i := strings.IndexByte(s, 'T'); i >= 0 {
		s = s[:i]
	}

	var year, month, day string
	switch {
	case len(s) == 10 && s[4] == '-' && s[7] == '-':
		year, month, day = s[0:4], s[5:7], s[8:10]
	case len(s) == 10 && s[2] == '/' && s[5] == '/':
		day, month, year = s[0:2], s[3:5], s[6:10]
	default:
		return "", fmt.Errorf("%w: %q", common.ErrUnrecognizedDateFormat, input)
	}

	y, err1 := strconv.Atoi(year)
	m, err2 := strconv.Atoi(month)
	d, err3 := strconv.Atoi(day)
	if err1 != nil || err2 != nil || err3 != nil {
		return "", fmt.Errorf("%w: %q", common.ErrUnrecognizedDateFormat, input)
	}

	// Reject impossible calendar days (e.g. 2024-02-30): time.Date
	// normalizes overflow, so a round-trip mismatch means invalid input.
	// UTC here only anchors the validation; no instant escapes.
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	if t.Year() != y || t.Month() != time.Month(m) || t.Day() != d {
		return "", fmt.Errorf("%w: %q", common.ErrUnrecognizedDateFormat, input)
	}

	return DateKey(fmt.Sprintf("%04d-%02d-%02d", y, m, d)), nil
}

// String returns the canonical YYYY-MM-DD form.
func (k DateKey) String() string { return string(k) }

// Display returns the DD/MM/YYYY presentation form used by the UI.
func (k DateKey) Display() string {
	if len(k) != 10 {
		return string(k)
	}
	return string(k[8:10]) + "/" + string(k[5:7]) + "/" + string(k[0:4])
}

// MonthYear returns the MM/YYYY bucket this key belongs to.
func (k DateKey) MonthYear() MonthYear {
	if len(k) != 10 {
		return ""
	}
	return MonthYear(string(k[5:7]) + "/" + string(k[0:4]))
}
