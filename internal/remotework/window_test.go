package remotework_test

import (
	"testing"
	"time"

	"go-attendance/internal/remotework"
	remoteworkerrors "go-attendance/internal/remotework/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResolveWindowBounds(t *testing.T) {
	tests := []struct {
		name    string
		start   time.Time
		end     *time.Time
		want    [2]time.Time
		wantErr error
	}{
		{
			name:  "end defaults to start plus six days",
			start: day(2024, 11, 18),
			want:  [2]time.Time{day(2024, 11, 18), day(2024, 11, 24)},
		},
		{
			name:  "seven inclusive days is allowed",
			start: day(2024, 11, 18),
			end:   ptr(day(2024, 11, 24)),
			want:  [2]time.Time{day(2024, 11, 18), day(2024, 11, 24)},
		},
		{
			name:  "single day window",
			start: day(2024, 11, 18),
			end:   ptr(day(2024, 11, 18)),
			want:  [2]time.Time{day(2024, 11, 18), day(2024, 11, 18)},
		},
		{
			name:    "nine days is rejected",
			start:   day(2024, 11, 18),
			end:     ptr(day(2024, 11, 26)),
			wantErr: remoteworkerrors.ErrWindowTooLong,
		},
		{
			name:    "eight days is rejected",
			start:   day(2024, 11, 18),
			end:     ptr(day(2024, 11, 25)),
			wantErr: remoteworkerrors.ErrWindowTooLong,
		},
		{
			name:    "end before start",
			start:   day(2024, 11, 18),
			end:     ptr(day(2024, 11, 17)),
			wantErr: remoteworkerrors.ErrWindowEndBeforeStart,
		},
		{
			name:  "time of day is dropped",
			start: time.Date(2024, 11, 18, 15, 4, 5, 0, time.UTC),
			want:  [2]time.Time{day(2024, 11, 18), day(2024, 11, 24)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := remotework.ResolveWindowBounds(tt.start, tt.end)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want[0], got.Start)
			assert.Equal(t, tt.want[1], got.End)
		})
	}
}

func ptr[T any](v T) *T { return &v }
