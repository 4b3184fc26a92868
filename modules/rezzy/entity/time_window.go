package entity

import "time"

// WindowState classifies one date/time window slot of a submission.
type WindowState int

const (
	// WindowAbsent - none of the four fields are set.
	WindowAbsent WindowState = iota
	// WindowPartial - some but not all fields are set. Always a validation error.
	WindowPartial
	// WindowComplete - date and all three times are set.
	WindowComplete
)

// TimeWindow is one desired reservation window: a calendar date plus the
// earliest, ideal and latest acceptable times of day ("HH:MM:SS", local
// wall-clock). Windows move as whole values; never copy the fields one by one.
type TimeWindow struct {
	Date      *time.Time
	MinTime   string
	IdealTime string
	MaxTime   string
}

// Classify is the single place completeness is derived. Validator and
// normalizer both switch on its result.
func (w TimeWindow) Classify() WindowState {
	set := 0
	if w.Date != nil {
		set++
	}
	if w.MinTime != "" {
		set++
	}
	if w.IdealTime != "" {
		set++
	}
	if w.MaxTime != "" {
		set++
	}

	switch set {
	case 0:
		return WindowAbsent
	case 4:
		return WindowComplete
	default:
		return WindowPartial
	}
}

func (w TimeWindow) IsAbsent() bool {
	return w.Classify() == WindowAbsent
}

func (w TimeWindow) IsComplete() bool {
	return w.Classify() == WindowComplete
}
