package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimeWindowClassify(t *testing.T) {
	date := time.Date(2026, time.April, 1, 0, 0, 0, 0, time.Local)

	tests := []struct {
		name   string
		window TimeWindow
		want   WindowState
	}{
		{
			name:   "Zero Value Is Absent",
			window: TimeWindow{},
			want:   WindowAbsent,
		},
		{
			name: "All Fields Set Is Complete",
			window: TimeWindow{
				Date: &date, MinTime: "18:00:00", IdealTime: "19:00:00", MaxTime: "20:00:00",
			},
			want: WindowComplete,
		},
		{
			name:   "Date Only Is Partial",
			window: TimeWindow{Date: &date},
			want:   WindowPartial,
		},
		{
			name:   "Single Time Is Partial",
			window: TimeWindow{IdealTime: "19:00:00"},
			want:   WindowPartial,
		},
		{
			name: "Missing One Time Is Partial",
			window: TimeWindow{
				Date: &date, MinTime: "18:00:00", IdealTime: "19:00:00",
			},
			want: WindowPartial,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.window.Classify())
		})
	}
}

func TestTimeWindowPredicates(t *testing.T) {
	date := time.Date(2026, time.April, 1, 0, 0, 0, 0, time.Local)
	complete := TimeWindow{Date: &date, MinTime: "18:00:00", IdealTime: "19:00:00", MaxTime: "20:00:00"}
	partial := TimeWindow{MinTime: "18:00:00"}

	assert.True(t, TimeWindow{}.IsAbsent())
	assert.True(t, complete.IsComplete())
	assert.False(t, partial.IsAbsent())
	assert.False(t, partial.IsComplete())
}
