package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsTimeEarlierOrEqual(t *testing.T) {
	t.Run("Earlier Hour", func(t *testing.T) {
		ok, err := IsTimeEarlierOrEqual("09:00:00", "10:00:00")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Later Hour", func(t *testing.T) {
		ok, err := IsTimeEarlierOrEqual("11:00:00", "10:59:59")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Equal Times Are Earlier Or Equal", func(t *testing.T) {
		ok, err := IsTimeEarlierOrEqual("09:00:00", "09:00:00")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Minute Breaks Hour Tie", func(t *testing.T) {
		ok, err := IsTimeEarlierOrEqual("09:30:00", "09:15:00")
		require.NoError(t, err)
		assert.False(t, ok)

		ok, err = IsTimeEarlierOrEqual("09:15:00", "09:30:00")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Second Breaks Minute Tie", func(t *testing.T) {
		ok, err := IsTimeEarlierOrEqual("09:30:01", "09:30:00")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("No Cross Midnight Wraparound", func(t *testing.T) {
		// 23:00 is always later than 01:00, never "earlier via midnight"
		ok, err := IsTimeEarlierOrEqual("23:00:00", "01:00:00")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Malformed Input", func(t *testing.T) {
		_, err := IsTimeEarlierOrEqual("", "09:00:00")
		assert.Error(t, err)

		_, err = IsTimeEarlierOrEqual("09:00", "09:00:00")
		assert.Error(t, err)

		_, err = IsTimeEarlierOrEqual("25:00:00", "09:00:00")
		assert.Error(t, err)
	})
}

func TestTimeToIndex(t *testing.T) {
	cases := []struct {
		time  string
		index int
	}{
		{"00:00:00", 0},
		{"00:30:00", 1},
		{"12:00:00", 24},
		{"12:30:00", 25},
		{"18:00:00", 36},
		{"23:30:00", 47},
	}
	for _, tc := range cases {
		idx, err := TimeToIndex(tc.time)
		require.NoError(t, err)
		assert.Equal(t, tc.index, idx, "time %s", tc.time)
	}
}

func TestIndexToTime(t *testing.T) {
	t.Run("Round Trip Display Values", func(t *testing.T) {
		cases := []struct {
			index int
			want  string
		}{
			{0, "12:00am"},
			{1, "12:30am"},
			{24, "12:00pm"},
			{25, "12:30pm"},
			{38, "7:00pm"},
			{47, "11:30pm"},
		}
		for _, tc := range cases {
			got, err := IndexToTime(tc.index)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		}
	})

	t.Run("Out Of Range", func(t *testing.T) {
		_, err := IndexToTime(-1)
		assert.Error(t, err)
		_, err = IndexToTime(48)
		assert.Error(t, err)
	})
}

func TestFormatTime(t *testing.T) {
	assert.Equal(t, "7:00 PM", FormatTime("19:00:00"))
	assert.Equal(t, "12:30 AM", FormatTime("00:30:00"))
	assert.Equal(t, "12:00 PM", FormatTime("12:00:00"))
	assert.Equal(t, "9:15 AM", FormatTime("09:15:00"))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "03/15/26", FormatDate("2026-03-15"))
	assert.Equal(t, "12/01/25", FormatDate("2025-12-01T00:00:00Z"))
}

func TestGenerateTimeOptions(t *testing.T) {
	options := GenerateTimeOptions()
	require.Len(t, options, 48)

	assert.Equal(t, "12:00 AM", options[0].Time)
	assert.Equal(t, "00:00:00", options[0].Value)
	assert.Equal(t, "11:30 PM", options[47].Time)
	assert.Equal(t, "23:30:00", options[47].Value)

	// every value maps back onto its own index
	for i, opt := range options {
		idx, err := TimeToIndex(opt.Value)
		require.NoError(t, err)
		assert.Equal(t, i, idx)
	}
}
