package calendar_test

import (
	"testing"
	"time"

	"go-attendance/internal/calendar"
	calendarerrors "go-attendance/internal/calendar/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFrequency(t *testing.T) {
	f, err := calendar.ParseFrequency(" weekly ")
	require.NoError(t, err)
	assert.Equal(t, calendar.FrequencyWeekly, f)

	f, err = calendar.ParseFrequency("MONTHLY")
	require.NoError(t, err)
	assert.Equal(t, calendar.FrequencyMonthly, f)

	_, err = calendar.ParseFrequency("DAILY")
	assert.ErrorIs(t, err, calendarerrors.ErrInvalidFrequency)
}

func TestPeriodBounds(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		freq calendar.Frequency
		want calendar.Period
	}{
		{"monday", day(2024, 11, 18), calendar.FrequencyWeekly, calendar.Period{Start: day(2024, 11, 18), End: day(2024, 11, 24)}},
		{"sunday belongs to the previous monday", day(2024, 11, 24), calendar.FrequencyWeekly, calendar.Period{Start: day(2024, 11, 18), End: day(2024, 11, 24)}},
		{"week across a year", day(2025, 1, 1), calendar.FrequencyWeekly, calendar.Period{Start: day(2024, 12, 30), End: day(2025, 1, 5)}},
		{"leap february", day(2024, 2, 10), calendar.FrequencyMonthly, calendar.Period{Start: day(2024, 2, 1), End: day(2024, 2, 29)}},
		{"december", day(2024, 12, 31), calendar.FrequencyMonthly, calendar.Period{Start: day(2024, 12, 1), End: day(2024, 12, 31)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, calendar.PeriodBounds(tt.date, tt.freq))
		})
	}
}

func TestPeriod(t *testing.T) {
	p, err := calendar.NewPeriod(day(2024, 6, 3), time.Date(2024, 6, 5, 18, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.True(t, p.Contains(day(2024, 6, 3)))
	assert.True(t, p.Contains(time.Date(2024, 6, 5, 23, 59, 0, 0, time.UTC)))
	assert.False(t, p.Contains(day(2024, 6, 6)))
	assert.Equal(t, 3, p.Len())
	assert.Equal(t, []time.Time{day(2024, 6, 3), day(2024, 6, 4), day(2024, 6, 5)}, p.Days())
	assert.Equal(t, "[2024-06-03, 2024-06-05]", p.String())

	_, err = calendar.NewPeriod(day(2024, 6, 5), day(2024, 6, 3))
	assert.ErrorIs(t, err, calendarerrors.ErrInvalidDateRange)
}
