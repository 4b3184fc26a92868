package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// Time-of-day helpers. Times are opaque local wall-clock values in "HH:MM:SS"
// form; there is no timezone handling and no cross-midnight wraparound.

// ParseClock splits "HH:MM:SS" into its numeric components.
func ParseClock(t string) (hour, minute, second int, err error) {
	parts := strings.Split(t, ":")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("invalid time %q: want HH:MM:SS", t)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid time %q: %w", t, err)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid time %q: %w", t, err)
	}
	second, err = strconv.Atoi(parts[2])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid time %q: %w", t, err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 59 {
		return 0, 0, 0, fmt.Errorf("invalid time %q: out of range", t)
	}
	return hour, minute, second, nil
}

// IsTimeEarlierOrEqual compares two times of day, hour first, then minute,
// then second. Equal times compare as earlier-or-equal.
func IsTimeEarlierOrEqual(time1, time2 string) (bool, error) {
	h1, m1, s1, err := ParseClock(time1)
	if err != nil {
		return false, err
	}
	h2, m2, s2, err := ParseClock(time2)
	if err != nil {
		return false, err
	}

	if h1 != h2 {
		return h1 < h2, nil
	}
	if m1 != m2 {
		return m1 < m2, nil
	}
	return s1 <= s2, nil
}

// TimeToIndex maps a time of day onto its 30-minute bucket, 0..47. Display
// only (slider positions), never used by validation.
func TimeToIndex(t string) (int, error) {
	hour, minute, _, err := ParseClock(t)
	if err != nil {
		return 0, err
	}
	index := hour * 2
	if minute >= 30 {
		index++
	}
	return index, nil
}

// IndexToTime is the inverse display mapping, e.g. 25 -> "12:30pm".
func IndexToTime(index int) (string, error) {
	if index < 0 || index > 47 {
		return "", fmt.Errorf("index must be between 0 and 47, got %d", index)
	}

	hours := index / 2
	period := "am"
	if hours >= 12 {
		period = "pm"
	}
	hours = hours % 12
	if hours == 0 {
		hours = 12
	}

	minutes := "00"
	if index%2 == 1 {
		minutes = "30"
	}
	return fmt.Sprintf("%d:%s%s", hours, minutes, period), nil
}

// FormatTime renders "HH:MM:SS" as "H:MM AM|PM" for display.
func FormatTime(t string) string {
	hour, minute, _, err := ParseClock(t)
	if err != nil {
		return t
	}

	period := "AM"
	if hour >= 12 {
		period = "PM"
	}
	hour = hour % 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%d:%02d %s", hour, minute, period)
}

// FormatDate renders a "YYYY-MM-DD..." date string as "MM/DD/YY".
func FormatDate(date string) string {
	if len(date) < 10 {
		return date
	}
	year, month, day := date[0:4], date[5:7], date[8:10]
	return fmt.Sprintf("%s/%s/%s", month, day, year[2:])
}

// TimeOption pairs a display label with its "HH:MM:SS" value.
type TimeOption struct {
	Time  string `json:"time"`
	Value string `json:"value"`
}

// GenerateTimeOptions lists the 48 half-hour times of a day for pickers.
func GenerateTimeOptions() []TimeOption {
	options := make([]TimeOption, 0, 48)
	for i := 0; i < 48; i++ {
		hour := i / 2
		minute := 0
		if i%2 == 1 {
			minute = 30
		}

		period := "AM"
		if hour >= 12 {
			period = "PM"
		}
		displayHour := hour % 12
		if displayHour == 0 {
			displayHour = 12
		}

		options = append(options, TimeOption{
			Time:  fmt.Sprintf("%02d:%02d %s", displayHour, minute, period),
			Value: fmt.Sprintf("%02d:%02d:00", hour, minute),
		})
	}
	return options
}
