package models

import (
	"time"

	"github.com/smilemobilul/campaign-backend/utils"
)

// DateRange is a closed interval of calendar days. Both bounds are
// inclusive; comparisons are performed at whole-day granularity in the
// canonical timezone.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Valid reports whether the range is well-formed (Start <= End).
func (r DateRange) Valid() bool {
	return !utils.CivilDayAfter(r.Start, r.End)
}

// Contains reports whether t falls inside the range, boundaries included.
func (r DateRange) Contains(t time.Time) bool {
	return !utils.CivilDayBefore(t, r.Start) && !utils.CivilDayAfter(t, r.End)
}

// Overlaps reports whether two closed ranges share at least one calendar
// day. A shared boundary date counts as overlap.
func (r DateRange) Overlaps(o DateRange) bool {
	return !utils.CivilDayAfter(r.Start, o.End) && !utils.CivilDayBefore(r.End, o.Start)
}
