package progress

import (
	"fmt"
	"strings"

	"fitprogress/internal/common"
)

// Angle identifies the photo angle of a progress photo. The canonical set
// is closed; ParseAngle maps the label variants used by older clients onto
// these values.
type Angle string

const (
	AngleFront       Angle = "front"
	AngleBack        Angle = "back"
	AngleLeft        Angle = "left"
	AngleRight       Angle = "right"
	AngleBicepsFront Angle = "biceps-front"
	AngleBicepsBack  Angle = "biceps-back"
)

// Angles returns the fixed presentation order for grid rows. This order is
// a contract with the UI, not a convenience.
func Angles() []Angle {
	return []Angle{AngleFront, AngleBack, AngleLeft, AngleRight, AngleBicepsFront, AngleBicepsBack}
}

// angleAliases maps label variants from the legacy mobile model
// (double-biceps) and the web grid (FRONT, BICEPS_FRONT, ...) onto the
// canonical set. Lookup keys are lowercased with underscores folded to
// hyphens.
var angleAliases = map[string]Angle{
	"front":        AngleFront,
	"back":         AngleBack,
	"left":         AngleLeft,
	"right":        AngleRight,
	"biceps-front": AngleBicepsFront,
	"biceps-back":  AngleBicepsBack,
	"double-biceps": AngleBicepsFront,
}

// ParseAngle canonicalizes an angle label. Unknown labels return
// common.ErrUnknownAngle.
func ParseAngle(s string) (Angle, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	if a, ok := angleAliases[key]; ok {
		return a, nil
	}
	return "", fmt.Errorf("%w: %q", common.ErrUnknownAngle, s)
}

// String returns the canonical label.
func (a Angle) String() string { return string(a) }

// GridCode returns the uppercase code used by the comparison grid surface
// (FRONT, BICEPS_FRONT, ...).
func (a Angle) GridCode() string {
	return strings.ToUpper(strings.ReplaceAll(string(a), "-", "_"))
}
