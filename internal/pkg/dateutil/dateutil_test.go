package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayKey_IgnoresClockTime(t *testing.T) {
	late := time.Date(2025, 5, 14, 23, 59, 59, 0, time.Local)
	early := time.Date(2025, 5, 14, 0, 0, 0, 0, time.Local)

	assert.Equal(t, "2025-05-14", DayKey(late))
	assert.Equal(t, DayKey(early), DayKey(late))
}

func TestAddDays(t *testing.T) {
	got, err := AddDays("2025-05-14", 3)
	require.NoError(t, err)
	assert.Equal(t, "2025-05-17", got)

	got, err = AddDays("2025-03-01", -1)
	require.NoError(t, err)
	assert.Equal(t, "2025-02-28", got)

	_, err = AddDays("not-a-date", 1)
	assert.Error(t, err)
}

func TestNewWeekWindow_MondayStart(t *testing.T) {
	tests := []struct {
		name string
		ref  time.Time
		want string
	}{
		{"wednesday", time.Date(2025, 5, 14, 10, 30, 0, 0, time.Local), "2025-05-12"},
		{"monday itself", time.Date(2025, 5, 12, 0, 0, 0, 0, time.Local), "2025-05-12"},
		{"sunday belongs to previous monday", time.Date(2025, 5, 18, 12, 0, 0, 0, time.Local), "2025-05-12"},
		{"month boundary", time.Date(2025, 6, 1, 8, 0, 0, 0, time.Local), "2025-05-26"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWeekWindow(tt.ref)
			assert.Equal(t, tt.want, w.WeekID)
			assert.Equal(t, tt.want, w.Days[0])

			// 7 consecutive days
			for i := 1; i < 7; i++ {
				next, err := AddDays(w.Days[i-1], 1)
				require.NoError(t, err)
				assert.Equal(t, next, w.Days[i])
			}
		})
	}
}

func TestParseWeekWindow(t *testing.T) {
	valid := []string{"2025-05-12", "2025-05-13", "2025-05-14", "2025-05-15", "2025-05-16", "2025-05-17", "2025-05-18"}

	w, err := ParseWeekWindow(valid)
	require.NoError(t, err)
	assert.Equal(t, "2025-05-12", w.WeekID)

	_, err = ParseWeekWindow(valid[:6])
	assert.ErrorIs(t, err, ErrBadWindow)

	// Tuesday start
	tuesday := []string{"2025-05-13", "2025-05-14", "2025-05-15", "2025-05-16", "2025-05-17", "2025-05-18", "2025-05-19"}
	_, err = ParseWeekWindow(tuesday)
	assert.ErrorIs(t, err, ErrBadWindow)

	// Non-consecutive days
	gap := []string{"2025-05-12", "2025-05-13", "2025-05-15", "2025-05-16", "2025-05-17", "2025-05-18", "2025-05-19"}
	_, err = ParseWeekWindow(gap)
	assert.ErrorIs(t, err, ErrBadWindow)
}

func TestWeekWindow_Contains(t *testing.T) {
	w := NewWeekWindow(time.Date(2025, 5, 14, 0, 0, 0, 0, time.Local))

	assert.True(t, w.Contains("2025-05-12"))
	assert.True(t, w.Contains("2025-05-18"))
	assert.False(t, w.Contains("2025-05-19"))
	assert.False(t, w.Contains("2025-05-11"))
}
