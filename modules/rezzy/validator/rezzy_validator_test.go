package validator

import (
	"testing"
	"time"

	"rezzy-api/core/controller"
	"rezzy-api/modules/rezzy/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, time.March, 10, 14, 30, 0, 0, time.Local)

func tomorrow() *time.Time {
	d := testNow.AddDate(0, 0, 1)
	return &d
}

func yesterday() *time.Time {
	d := testNow.AddDate(0, 0, -1)
	return &d
}

// validRequest is the Scenario A submission: name only, one complete window.
func validRequest() *dto.MakeRezzyRequest {
	return &dto.MakeRezzyRequest{
		UserName:       "Alice",
		RestaurantName: "Chez Foo",
		PartySize:      4,
		Latitude:       37.0,
		Longitude:      -122.0,
		Date1:          tomorrow(),
		MinTime1:       "18:00:00",
		IdealTime1:     "19:00:00",
		MaxTime1:       "20:00:00",
	}
}

func fieldsWithMessage(result *controller.ValidationResponse, message string) []string {
	var fields []string
	for _, e := range result.Errors {
		if e.Message == message {
			fields = append(fields, e.Field)
		}
	}
	return fields
}

func TestValidateMakeRezzyRequest(t *testing.T) {
	t.Run("Valid Submission Passes", func(t *testing.T) {
		result := ValidateMakeRezzyRequest(validRequest(), testNow)
		assert.False(t, result.HasError(), "errors: %v", result.Errors)
		assert.True(t, result.Success)
	})

	t.Run("Deterministic And Idempotent", func(t *testing.T) {
		req := validRequest()
		req.RestaurantName = ""
		req.Latitude = 0
		req.Longitude = 0

		first := ValidateMakeRezzyRequest(req, testNow)
		second := ValidateMakeRezzyRequest(req, testNow)
		assert.Equal(t, first, second)
	})

	t.Run("Neither Restaurant Name Nor URL", func(t *testing.T) {
		req := validRequest()
		req.RestaurantName = ""
		req.OpentableURL = ""

		result := ValidateMakeRezzyRequest(req, testNow)
		require.True(t, result.HasError())
		assert.ElementsMatch(t,
			[]string{"restaurant_name", "opentable_url"},
			fieldsWithMessage(result, "Please provide either the restaurant name or the OpenTable URL"))
	})

	t.Run("Both Restaurant Name And URL Is Accepted", func(t *testing.T) {
		req := validRequest()
		req.OpentableURL = "https://www.opentable.com/r/chez-foo"

		result := ValidateMakeRezzyRequest(req, testNow)
		assert.False(t, result.HasError(), "errors: %v", result.Errors)
	})

	t.Run("URL Not From OpenTable", func(t *testing.T) {
		req := validRequest()
		req.RestaurantName = ""
		req.OpentableURL = "https://example.com/restaurant"

		result := ValidateMakeRezzyRequest(req, testNow)
		require.True(t, result.HasError())
		assert.Equal(t,
			[]string{"opentable_url"},
			fieldsWithMessage(result, "URL not from OpenTable"))
	})

	t.Run("All Windows Absent", func(t *testing.T) {
		req := validRequest()
		req.Date1 = nil
		req.MinTime1, req.IdealTime1, req.MaxTime1 = "", "", ""

		result := ValidateMakeRezzyRequest(req, testNow)
		require.True(t, result.HasError())
		assert.ElementsMatch(t,
			[]string{"date1", "date2", "date3"},
			fieldsWithMessage(result, "At least one date and time must be defined"))
	})

	t.Run("Partial Window", func(t *testing.T) {
		req := validRequest()
		req.Date2 = tomorrow()
		req.IdealTime2 = "19:00:00"
		// min_time2 and max_time2 left empty

		result := ValidateMakeRezzyRequest(req, testNow)
		require.True(t, result.HasError())
		assert.Equal(t,
			[]string{"date2"},
			fieldsWithMessage(result, "Incomplete date-time"))
	})

	t.Run("Absent Window Is Not An Error", func(t *testing.T) {
		// window 1 complete, windows 2 and 3 untouched
		result := ValidateMakeRezzyRequest(validRequest(), testNow)
		assert.Empty(t, fieldsWithMessage(result, "Incomplete date-time"))
	})

	t.Run("Equal Times Are Satisfiable", func(t *testing.T) {
		req := validRequest()
		req.MinTime1, req.IdealTime1, req.MaxTime1 = "19:00:00", "19:00:00", "19:00:00"

		result := ValidateMakeRezzyRequest(req, testNow)
		assert.False(t, result.HasError(), "errors: %v", result.Errors)
	})

	t.Run("Ideal Before Earliest Fails", func(t *testing.T) {
		req := validRequest()
		req.MinTime1, req.IdealTime1, req.MaxTime1 = "10:00:00", "09:00:00", "11:00:00"

		result := ValidateMakeRezzyRequest(req, testNow)
		require.True(t, result.HasError())
		assert.Equal(t,
			[]string{"min_time1"},
			fieldsWithMessage(result, "Times are not satisfiable"))
	})

	t.Run("Latest Before Ideal Fails", func(t *testing.T) {
		req := validRequest()
		req.MinTime1, req.IdealTime1, req.MaxTime1 = "18:00:00", "20:00:00", "19:00:00"

		result := ValidateMakeRezzyRequest(req, testNow)
		require.True(t, result.HasError())
		assert.Equal(t,
			[]string{"min_time1"},
			fieldsWithMessage(result, "Times are not satisfiable"))
	})

	t.Run("Cross Midnight Window Is Invalid", func(t *testing.T) {
		req := validRequest()
		req.MinTime1, req.IdealTime1, req.MaxTime1 = "23:00:00", "23:30:00", "01:00:00"

		result := ValidateMakeRezzyRequest(req, testNow)
		require.True(t, result.HasError())
		assert.Equal(t,
			[]string{"min_time1"},
			fieldsWithMessage(result, "Times are not satisfiable"))
	})

	t.Run("Date In Past", func(t *testing.T) {
		req := validRequest()
		req.Date1 = yesterday()

		result := ValidateMakeRezzyRequest(req, testNow)
		require.True(t, result.HasError())
		assert.Equal(t,
			[]string{"date1"},
			fieldsWithMessage(result, "Date cannot be in the past"))
	})

	t.Run("Today Is Not In The Past", func(t *testing.T) {
		req := validRequest()
		today := time.Date(testNow.Year(), testNow.Month(), testNow.Day(), 0, 0, 0, 0, testNow.Location())
		req.Date1 = &today

		result := ValidateMakeRezzyRequest(req, testNow)
		assert.Empty(t, fieldsWithMessage(result, "Date cannot be in the past"))
	})

	t.Run("Location Unset", func(t *testing.T) {
		req := validRequest()
		req.Latitude = 0
		req.Longitude = 0

		result := ValidateMakeRezzyRequest(req, testNow)
		require.True(t, result.HasError())
		assert.ElementsMatch(t,
			[]string{"longitude", "latitude"},
			fieldsWithMessage(result, "Please provide an approximate location"))
	})

	t.Run("Single Zero Coordinate Is Fine", func(t *testing.T) {
		req := validRequest()
		req.Latitude = 0
		req.Longitude = -122.0

		result := ValidateMakeRezzyRequest(req, testNow)
		assert.False(t, result.HasError(), "errors: %v", result.Errors)
	})

	t.Run("Party Size Out Of Range", func(t *testing.T) {
		req := validRequest()
		req.PartySize = 21

		result := ValidateMakeRezzyRequest(req, testNow)
		require.True(t, result.HasError())
		assert.Equal(t,
			[]string{"party_size"},
			fieldsWithMessage(result, "Party size must be between 1 and 20"))
	})

	t.Run("Name Required", func(t *testing.T) {
		req := validRequest()
		req.UserName = ""

		result := ValidateMakeRezzyRequest(req, testNow)
		require.True(t, result.HasError())
		assert.Equal(t,
			[]string{"user_name"},
			fieldsWithMessage(result, "Name cannot be empty"))
	})

	t.Run("Malformed Time Format", func(t *testing.T) {
		req := validRequest()
		req.MinTime1 = "6pm"

		result := ValidateMakeRezzyRequest(req, testNow)
		require.True(t, result.HasError())
		assert.Equal(t,
			[]string{"min_time1"},
			fieldsWithMessage(result, "Time must be in HH:MM:SS format"))
	})

	t.Run("All Violations Reported Together", func(t *testing.T) {
		req := validRequest()
		req.RestaurantName = ""          // identity: 2 errors
		req.Latitude = 0                 // location: 2 errors
		req.Longitude = 0                //
		req.IdealTime1 = "17:00:00"      // ordering: 1 error
		req.Date3 = tomorrow()           // partial window 3: 1 error

		result := ValidateMakeRezzyRequest(req, testNow)
		require.True(t, result.HasError())
		assert.Len(t, result.Errors, 6)
	})
}
