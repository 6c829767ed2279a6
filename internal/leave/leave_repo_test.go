package leave_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"go-attendance/internal/calendar"
	"go-attendance/internal/leave"
	"go-attendance/internal/shared/connection"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestRepository_ApprovedIntervals(t *testing.T) {
	ctx := context.Background()

	db, err := connection.OpenSQLite(filepath.Join(t.TempDir(), "leave.db"))
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&leave.Leave{}))
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	companyID := uuid.New()
	employeeID := uuid.New()
	row := func(status string, start, end time.Time) leave.Leave {
		return leave.Leave{ID: uuid.New(), CompanyID: companyID, EmployeeID: employeeID, StartDate: start, EndDate: end, Status: status}
	}
	require.NoError(t, db.Create(&[]leave.Leave{
		row(leave.StatusApproved, day(2024, 6, 3), day(2024, 6, 5)),
		row(leave.StatusApproved, day(2024, 6, 20), day(2024, 6, 21)),
		row(leave.StatusPending, day(2024, 6, 10), day(2024, 6, 12)),
		row(leave.StatusRejected, day(2024, 6, 13), day(2024, 6, 13)),
		{ID: uuid.New(), CompanyID: companyID, EmployeeID: uuid.New(), StartDate: day(2024, 6, 4), EndDate: day(2024, 6, 4), Status: leave.StatusApproved},
	}).Error)

	repo := leave.NewRepository(db)

	got, err := repo.ApprovedIntervals(ctx, companyID.String(), employeeID.String(), day(2024, 6, 5), day(2024, 6, 15))
	require.NoError(t, err)
	assert.Equal(t, []calendar.Period{{Start: day(2024, 6, 3), End: day(2024, 6, 5)}}, got, "overlap on the end boundary counts")

	got, err = repo.ApprovedIntervals(ctx, companyID.String(), employeeID.String(), day(2024, 6, 1), day(2024, 6, 30))
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = repo.ApprovedIntervals(ctx, uuid.NewString(), employeeID.String(), day(2024, 6, 1), day(2024, 6, 30))
	require.NoError(t, err)
	assert.Empty(t, got)
}
