package validator

import (
	"fmt"
	"strings"
	"time"

	"rezzy-api/core/constants"
	"rezzy-api/core/controller"
	"rezzy-api/core/utils"
	"rezzy-api/modules/rezzy/dto"
	"rezzy-api/modules/rezzy/entity"

	playground "github.com/go-playground/validator/v10"
)

var validate = playground.New()

// Messages shown to users. Field rules report every violation at once so the
// client can annotate all offending inputs in a single pass.
const (
	msgNameRequired     = "Name cannot be empty"
	msgPartySizeRange   = "Party size must be between 1 and 20"
	msgLatitudeRange    = "Latitude must be between -90 and 90"
	msgLongitudeRange   = "Longitude must be between -180 and 180"
	msgTimeFormat       = "Time must be in HH:MM:SS format"
	msgRestaurantOrURL  = "Please provide either the restaurant name or the OpenTable URL"
	msgURLNotOpentable  = "URL not from OpenTable"
	msgNoWindowDefined  = "At least one date and time must be defined"
	msgTimesUnordered   = "Times are not satisfiable"
	msgIncompleteWindow = "Incomplete date-time"
	msgDateInPast       = "Date cannot be in the past"
	msgLocationUnset    = "Please provide an approximate location"
)

// ValidateMakeRezzyRequest checks a raw submission against every field rule
// and reports all violations. Pure: same input and clock always produce the
// same result, so callers may re-run it on every field change.
func ValidateMakeRezzyRequest(req *dto.MakeRezzyRequest, now time.Time) *controller.ValidationResponse {
	result := &controller.ValidationResponse{Success: true, Message: "Validation passed"}

	addTagErrors(req, result)

	windows := req.Windows()

	// Date fields must be today or later; time of day on the date is ignored.
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	for i, w := range windows {
		if w.Date != nil {
			d := w.Date
			if time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location()).Before(today) {
				result.AddError(dateField(i+1), msgDateInPast)
			}
		}
	}

	// Exactly-neither is the only rejected restaurant identity combination.
	if req.RestaurantName == "" && req.OpentableURL == "" {
		result.AddError("restaurant_name", msgRestaurantOrURL)
		result.AddError("opentable_url", msgRestaurantOrURL)
	}

	if req.OpentableURL != "" && !strings.Contains(req.OpentableURL, constants.BookingSiteMarker) {
		result.AddError("opentable_url", msgURLNotOpentable)
	}

	anyComplete := false
	for _, w := range windows {
		if w.IsComplete() {
			anyComplete = true
			break
		}
	}
	if !anyComplete {
		result.AddError("date1", msgNoWindowDefined)
		result.AddError("date2", msgNoWindowDefined)
		result.AddError("date3", msgNoWindowDefined)
	}

	// For complete windows, min <= ideal <= max by wall-clock comparison.
	for i, w := range windows {
		if !w.IsComplete() {
			continue
		}
		if !timesSatisfiable(w) {
			result.AddError(fmt.Sprintf("min_time%d", i+1), msgTimesUnordered)
		}
	}

	// A wholly absent window is fine; a partially filled one never is.
	for i, w := range windows {
		if w.Classify() == entity.WindowPartial {
			result.AddError(dateField(i+1), msgIncompleteWindow)
		}
	}

	if req.Latitude == 0 && req.Longitude == 0 {
		result.AddError("longitude", msgLocationUnset)
		result.AddError("latitude", msgLocationUnset)
	}

	if result.HasError() {
		result.Message = "Validation failed"
	}
	return result
}

// addTagErrors folds the struct-tag bounds (name, party size, coordinate
// ranges, time formats) into the same field-error list the window rules use.
func addTagErrors(req *dto.MakeRezzyRequest, result *controller.ValidationResponse) {
	err := validate.Struct(req)
	if err == nil {
		return
	}

	validationErrors, ok := err.(playground.ValidationErrors)
	if !ok {
		result.AddError("request", "Invalid request data")
		return
	}

	for _, fieldErr := range validationErrors {
		switch fieldErr.StructField() {
		case "UserName":
			result.AddError("user_name", msgNameRequired)
		case "PartySize":
			result.AddError("party_size", msgPartySizeRange)
		case "Latitude":
			result.AddError("latitude", msgLatitudeRange)
		case "Longitude":
			result.AddError("longitude", msgLongitudeRange)
		default:
			// time format tags: MinTime1, IdealTime2, ...
			result.AddError(snakeField(fieldErr.StructField()), msgTimeFormat)
		}
	}
}

func timesSatisfiable(w entity.TimeWindow) bool {
	minOK, err := utils.IsTimeEarlierOrEqual(w.MinTime, w.IdealTime)
	if err != nil {
		// malformed times are reported by the format tags; don't double up
		return true
	}
	maxOK, err := utils.IsTimeEarlierOrEqual(w.IdealTime, w.MaxTime)
	if err != nil {
		return true
	}
	return minOK && maxOK
}

func dateField(slot int) string {
	return fmt.Sprintf("date%d", slot)
}

// snakeField maps a struct field like "IdealTime2" to its json name "ideal_time2".
func snakeField(name string) string {
	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r - 'A' + 'a')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
