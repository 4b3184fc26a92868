package service

import (
	"time"

	"rezzy-api/modules/rezzy/dto"
	"rezzy-api/modules/rezzy/entity"
)

// promoteOrder is the fixed fallback precedence when window 1 is empty:
// window 3 is taken first if complete, otherwise window 2. This ordering is a
// tested contract; do not reorder.
var promoteOrder = [2]int{2, 1}

// PackWindows left-packs the sparse window slots into canonical form: window 1
// filled, no gaps (window 3 set implies window 2 set). Assumes validated
// input - every window complete or absent, at least one complete. Windows move
// as whole values so a promotion can never tear a slot apart.
func PackWindows(windows [3]entity.TimeWindow) [3]entity.TimeWindow {
	if windows[0].IsAbsent() {
		src := promoteOrder[1]
		if windows[promoteOrder[0]].IsComplete() {
			src = promoteOrder[0]
		}
		windows[0] = windows[src]
		windows[src] = entity.TimeWindow{}
	}

	if windows[1].IsAbsent() && windows[2].IsComplete() {
		windows[1] = windows[2]
		windows[2] = entity.TimeWindow{}
	}

	return windows
}

// Normalize turns a validated submission into the canonical persisted record.
// It does not re-validate; callers must run the validator first.
func Normalize(req *dto.MakeRezzyRequest, email string) *entity.Rezzy {
	windows := PackWindows(req.Windows())

	rezzy := &entity.Rezzy{
		UserEmail: email,
		Name:      req.UserName,
		PartySize: req.PartySize,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,

		Date1:      formatWindowDate(windows[0].Date),
		MinTime1:   windows[0].MinTime,
		IdealTime1: windows[0].IdealTime,
		MaxTime1:   windows[0].MaxTime,
	}

	if req.RestaurantName != "" {
		rezzy.RestaurantName = &req.RestaurantName
	}
	if req.OpentableURL != "" {
		rezzy.OpentableURL = &req.OpentableURL
	}

	if windows[1].IsComplete() {
		date := formatWindowDate(windows[1].Date)
		rezzy.Date2 = &date
		rezzy.MinTime2 = &windows[1].MinTime
		rezzy.IdealTime2 = &windows[1].IdealTime
		rezzy.MaxTime2 = &windows[1].MaxTime
	}
	if windows[2].IsComplete() {
		date := formatWindowDate(windows[2].Date)
		rezzy.Date3 = &date
		rezzy.MinTime3 = &windows[2].MinTime
		rezzy.IdealTime3 = &windows[2].IdealTime
		rezzy.MaxTime3 = &windows[2].MaxTime
	}

	return rezzy
}

// formatWindowDate serializes a window date as an RFC3339 instant. Bare dates
// from pickers carry midnight local time already.
func formatWindowDate(d *time.Time) string {
	if d == nil {
		return ""
	}
	return d.Format(time.RFC3339)
}
