package service

import (
	"testing"
	"time"

	"rezzy-api/modules/rezzy/dto"
	"rezzy-api/modules/rezzy/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func window(day int, minTime, idealTime, maxTime string) entity.TimeWindow {
	d := time.Date(2026, time.April, day, 0, 0, 0, 0, time.Local)
	return entity.TimeWindow{Date: &d, MinTime: minTime, IdealTime: idealTime, MaxTime: maxTime}
}

func TestPackWindows(t *testing.T) {
	w1 := window(1, "18:00:00", "19:00:00", "20:00:00")
	w2 := window(2, "12:00:00", "12:30:00", "13:00:00")
	w3 := window(3, "20:00:00", "20:30:00", "21:00:00")
	empty := entity.TimeWindow{}

	t.Run("Canonical Input Unchanged", func(t *testing.T) {
		got := PackWindows([3]entity.TimeWindow{w1, w2, w3})
		assert.Equal(t, [3]entity.TimeWindow{w1, w2, w3}, got)
	})

	t.Run("Only Slot Two Promotes To One", func(t *testing.T) {
		got := PackWindows([3]entity.TimeWindow{empty, w2, empty})
		assert.Equal(t, [3]entity.TimeWindow{w2, empty, empty}, got)
	})

	t.Run("Only Slot Three Promotes To One", func(t *testing.T) {
		got := PackWindows([3]entity.TimeWindow{empty, empty, w3})
		assert.Equal(t, [3]entity.TimeWindow{w3, empty, empty}, got)
	})

	t.Run("Slot Three Wins Over Slot Two", func(t *testing.T) {
		got := PackWindows([3]entity.TimeWindow{empty, w2, w3})
		assert.Equal(t, [3]entity.TimeWindow{w3, w2, empty}, got)
	})

	t.Run("Gap Between One And Three Closes", func(t *testing.T) {
		got := PackWindows([3]entity.TimeWindow{w1, empty, w3})
		assert.Equal(t, [3]entity.TimeWindow{w1, w3, empty}, got)
	})

	t.Run("Promotion Moves Whole Windows", func(t *testing.T) {
		got := PackWindows([3]entity.TimeWindow{empty, w2, empty})
		require.True(t, got[0].IsComplete())
		assert.Equal(t, w2.Date, got[0].Date)
		assert.Equal(t, w2.MinTime, got[0].MinTime)
		assert.Equal(t, w2.IdealTime, got[0].IdealTime)
		assert.Equal(t, w2.MaxTime, got[0].MaxTime)
		assert.True(t, got[1].IsAbsent())
		assert.True(t, got[2].IsAbsent())
	})

	t.Run("Idempotent", func(t *testing.T) {
		once := PackWindows([3]entity.TimeWindow{empty, w2, w3})
		twice := PackWindows(once)
		assert.Equal(t, once, twice)
	})

	t.Run("No Gaps After Packing", func(t *testing.T) {
		inputs := [][3]entity.TimeWindow{
			{empty, w2, empty},
			{empty, empty, w3},
			{empty, w2, w3},
			{w1, empty, w3},
			{w1, w2, w3},
			{w1, empty, empty},
		}
		for _, in := range inputs {
			got := PackWindows(in)
			assert.True(t, got[0].IsComplete())
			if got[2].IsComplete() {
				assert.True(t, got[1].IsComplete())
			}
		}
	})
}

func TestNormalize(t *testing.T) {
	date3 := time.Date(2026, time.April, 3, 0, 0, 0, 0, time.Local)

	t.Run("Only Slot Three Lands In Slot One", func(t *testing.T) {
		req := &dto.MakeRezzyRequest{
			UserName:       "Alice",
			RestaurantName: "Chez Foo",
			PartySize:      2,
			Latitude:       37.0,
			Longitude:      -122.0,
			Date3:          &date3,
			MinTime3:       "20:00:00",
			IdealTime3:     "20:30:00",
			MaxTime3:       "21:00:00",
		}

		rezzy := Normalize(req, "alice@example.com")

		assert.Equal(t, "alice@example.com", rezzy.UserEmail)
		assert.Equal(t, date3.Format(time.RFC3339), rezzy.Date1)
		assert.Equal(t, "20:00:00", rezzy.MinTime1)
		assert.Equal(t, "20:30:00", rezzy.IdealTime1)
		assert.Equal(t, "21:00:00", rezzy.MaxTime1)
		assert.Nil(t, rezzy.Date2)
		assert.Nil(t, rezzy.MinTime2)
		assert.Nil(t, rezzy.Date3)
		assert.Nil(t, rezzy.MaxTime3)
	})

	t.Run("Identity Pointers Set Only When Present", func(t *testing.T) {
		req := &dto.MakeRezzyRequest{
			UserName:     "Bob",
			OpentableURL: "https://www.opentable.com/r/chez-foo",
			PartySize:    4,
			Latitude:     37.0,
			Longitude:    -122.0,
			Date1:        &date3,
			MinTime1:     "18:00:00",
			IdealTime1:   "18:30:00",
			MaxTime1:     "19:00:00",
		}

		rezzy := Normalize(req, "bob@example.com")

		assert.Nil(t, rezzy.RestaurantName)
		require.NotNil(t, rezzy.OpentableURL)
		assert.Equal(t, "https://www.opentable.com/r/chez-foo", *rezzy.OpentableURL)
	})

	t.Run("All Three Slots Persisted", func(t *testing.T) {
		d1 := time.Date(2026, time.April, 1, 0, 0, 0, 0, time.Local)
		d2 := time.Date(2026, time.April, 2, 0, 0, 0, 0, time.Local)
		req := &dto.MakeRezzyRequest{
			UserName:       "Carol",
			RestaurantName: "Chez Foo",
			PartySize:      6,
			Latitude:       37.0,
			Longitude:      -122.0,
			Date1:          &d1,
			MinTime1:       "18:00:00",
			IdealTime1:     "18:30:00",
			MaxTime1:       "19:00:00",
			Date2:          &d2,
			MinTime2:       "12:00:00",
			IdealTime2:     "12:30:00",
			MaxTime2:       "13:00:00",
			Date3:          &date3,
			MinTime3:       "20:00:00",
			IdealTime3:     "20:30:00",
			MaxTime3:       "21:00:00",
		}

		rezzy := Normalize(req, "carol@example.com")

		require.NotNil(t, rezzy.Date2)
		assert.Equal(t, d2.Format(time.RFC3339), *rezzy.Date2)
		require.NotNil(t, rezzy.IdealTime2)
		assert.Equal(t, "12:30:00", *rezzy.IdealTime2)
		require.NotNil(t, rezzy.Date3)
		assert.Equal(t, date3.Format(time.RFC3339), *rezzy.Date3)
		require.NotNil(t, rezzy.MinTime3)
		assert.Equal(t, "20:00:00", *rezzy.MinTime3)
	})
}
