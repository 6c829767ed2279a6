package calendar_test

import (
	"context"
	"errors"
	"testing"

	"go-attendance/internal/calendar"
	"go-attendance/internal/calendar/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testCompany  = "6f1c4f40-1a32-4c43-9c2f-7e8a2c1b0d11"
	testEmployee = "0b6d1e7a-57f0-4a7b-9d4c-2a0f7f3c9e21"
)

func TestPolicy_IsWorkingDay(t *testing.T) {
	ctx := context.Background()

	t.Run("weekend short circuits", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		holidays := mock.NewMockHolidayRepository(ctrl)
		leaves := mock.NewMockLeaveSource(ctrl)
		p := calendar.NewPolicy(holidays, leaves, "ID")

		working, err := p.IsWorkingDay(ctx, testCompany, testEmployee, day(2024, 6, 1))
		require.NoError(t, err)
		assert.False(t, working)
	})

	t.Run("holiday in region", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		holidays := mock.NewMockHolidayRepository(ctrl)
		leaves := mock.NewMockLeaveSource(ctrl)
		p := calendar.NewPolicy(holidays, leaves, "ID")

		holidays.EXPECT().
			FindBetween(gomock.Any(), testCompany, "ID", day(2024, 12, 25), day(2024, 12, 25)).
			Return([]calendar.Holiday{{Date: day(2024, 12, 25), Region: "ID"}}, nil)
		leaves.EXPECT().
			ApprovedIntervals(gomock.Any(), testCompany, testEmployee, day(2024, 12, 25), day(2024, 12, 25)).
			Return(nil, nil)

		working, err := p.IsWorkingDay(ctx, testCompany, testEmployee, day(2024, 12, 25))
		require.NoError(t, err)
		assert.False(t, working)
	})

	t.Run("approved leave boundaries are inclusive", func(t *testing.T) {
		leave := calendar.Period{Start: day(2024, 6, 4), End: day(2024, 6, 6)}
		for _, tc := range []struct {
			date    int
			working bool
		}{{3, true}, {4, false}, {5, false}, {6, false}, {7, true}} {
			ctrl := gomock.NewController(t)
			holidays := mock.NewMockHolidayRepository(ctrl)
			leaves := mock.NewMockLeaveSource(ctrl)
			p := calendar.NewPolicy(holidays, leaves, "ID")

			d := day(2024, 6, tc.date)
			holidays.EXPECT().FindBetween(gomock.Any(), testCompany, "ID", d, d).Return(nil, nil)
			leaves.EXPECT().ApprovedIntervals(gomock.Any(), testCompany, testEmployee, d, d).Return([]calendar.Period{leave}, nil)

			working, err := p.IsWorkingDay(ctx, testCompany, testEmployee, d)
			require.NoError(t, err)
			assert.Equal(t, tc.working, working, "2024-06-%02d", tc.date)
		}
	})

	t.Run("no person skips leave", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		holidays := mock.NewMockHolidayRepository(ctrl)
		leaves := mock.NewMockLeaveSource(ctrl)
		p := calendar.NewPolicy(holidays, leaves, "ID")

		holidays.EXPECT().FindBetween(gomock.Any(), testCompany, "ID", gomock.Any(), gomock.Any()).Return(nil, nil)

		working, err := p.IsWorkingDay(ctx, testCompany, "", day(2024, 6, 3))
		require.NoError(t, err)
		assert.True(t, working)
	})

	t.Run("storage error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		holidays := mock.NewMockHolidayRepository(ctrl)
		p := calendar.NewPolicy(holidays, nil, "ID")

		holidays.EXPECT().FindBetween(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

		_, err := p.IsWorkingDay(ctx, testCompany, testEmployee, day(2024, 6, 3))
		assert.Error(t, err)
	})
}

func TestSnapshot_WorkingDays(t *testing.T) {
	period := calendar.Period{Start: day(2024, 1, 1), End: day(2024, 1, 7)}
	snap := calendar.NewSnapshot(period,
		[]calendar.Holiday{{Date: day(2024, 1, 1)}},
		[]calendar.Period{{Start: day(2024, 1, 5), End: day(2024, 1, 8)}},
	)

	assert.Equal(t, period, snap.Period())
	assert.Equal(t, []string{"2024-01-02", "2024-01-03", "2024-01-04"}, formatDays(snap.WorkingDays()))
	assert.False(t, snap.IsWorkingDay(day(2024, 1, 8)), "leave applies outside the loaded period too")
	assert.True(t, snap.IsWorkingDay(day(2024, 1, 9)))
}
