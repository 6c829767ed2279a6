package calendar_test

import (
	"testing"
	"time"

	"go-attendance/internal/calendar"
	calendarerrors "go-attendance/internal/calendar/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Time
		wantErr bool
	}{
		{in: "2024-06-03", want: day(2024, 6, 3)},
		{in: "  2024-02-29 ", want: day(2024, 2, 29)},
		{in: "2023-02-29", wantErr: true},
		{in: "2024-6-3", wantErr: true},
		{in: "03-06-2024", wantErr: true},
		{in: "2024-06-03T10:00:00Z", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := calendar.ParseDate(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, calendarerrors.ErrInvalidDateFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestParseOptionalDate(t *testing.T) {
	got, err := calendar.ParseOptionalDate(" ")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = calendar.ParseOptionalDate("2024-01-01")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, day(2024, 1, 1), *got)
}

func TestNormalize(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*3600)
	// Calendar fields are kept; the zone offset does not shift the day.
	assert.Equal(t, day(2024, 6, 3), calendar.Normalize(time.Date(2024, 6, 3, 2, 0, 0, 0, jakarta)))
	// Today converts to UTC first.
	assert.Equal(t, day(2024, 6, 2), calendar.Today(time.Date(2024, 6, 3, 2, 0, 0, 0, jakarta)))
}

func TestDaysInclusive(t *testing.T) {
	assert.Equal(t, 1, calendar.DaysInclusive(day(2024, 6, 3), day(2024, 6, 3)))
	assert.Equal(t, 7, calendar.DaysInclusive(day(2024, 11, 18), day(2024, 11, 24)))
	assert.Equal(t, 0, calendar.DaysInclusive(day(2024, 11, 24), day(2024, 11, 18)))
	// Leap year.
	assert.Equal(t, 366, calendar.DaysInclusive(day(2024, 1, 1), day(2024, 12, 31)))
}

func TestIsWeekend(t *testing.T) {
	assert.True(t, calendar.IsWeekend(day(2024, 6, 1)))
	assert.True(t, calendar.IsWeekend(day(2024, 6, 2)))
	assert.False(t, calendar.IsWeekend(day(2024, 6, 3)))
	assert.False(t, calendar.IsWeekend(day(2024, 6, 7)))
}
