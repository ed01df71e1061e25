package timetable

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDay(t *testing.T) {
	day, err := ParseDay("2024-09-11", tallinn)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 9, 11, 0, 0, 0, 0, tallinn), day)

	for _, s := range []string{"2024-13-40", "2024-02-30", "11.09.2024", "2024-9-1", "", "tomorrow"} {
		_, err := ParseDay(s, tallinn)
		assert.Error(t, err, s)
	}
}

func TestMonday(t *testing.T) {
	tests := []struct {
		day, want string
	}{
		{"2024-09-09", "2024-09-09"}, // Monday
		{"2024-09-11", "2024-09-09"}, // Wednesday
		{"2024-09-14", "2024-09-09"}, // Saturday
		{"2024-09-15", "2024-09-09"}, // Sunday
		{"2025-01-01", "2024-12-30"},
	}
	for _, tt := range tests {
		got := Monday(date(t, tt.day))
		assert.Equal(t, tt.want, got.Format(time.DateOnly), tt.day)
	}
}

func TestWorkWeek(t *testing.T) {
	var got []string
	for _, day := range WorkWeek(date(t, "2024-09-11")) {
		got = append(got, day.Format(time.DateOnly))
	}
	assert.Equal(t, []string{"2024-09-09", "2024-09-10", "2024-09-11", "2024-09-12", "2024-09-13"}, got)
}

func TestToday(t *testing.T) {
	now := time.Date(2024, 9, 10, 21, 15, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 9, 11, 0, 0, 0, 0, tallinn), Today(now, tallinn))
	assert.Equal(t, time.Date(2024, 9, 10, 0, 0, 0, 0, time.UTC), Today(now, time.UTC))
}
