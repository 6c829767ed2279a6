package leave

import (
	"context"
	"time"

	"go-attendance/internal/calendar"
	"go-attendance/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	FindApprovedOverlapping(ctx context.Context, companyID, employeeID string, start, end time.Time) ([]Leave, error)
	ApprovedIntervals(ctx context.Context, companyID, employeeID string, start, end time.Time) ([]calendar.Period, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindApprovedOverlapping(ctx context.Context, companyID, employeeID string, start, end time.Time) ([]Leave, error) {
	var leaves []Leave
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Where("status = ?", StatusApproved).
		Where("NOT (end_date < ? OR start_date > ?)", calendar.Normalize(start), calendar.Normalize(end)).
		Order("start_date ASC").
		Find(&leaves).Error
	return leaves, err
}

// ApprovedIntervals satisfies calendar.LeaveSource.
func (r *repository) ApprovedIntervals(ctx context.Context, companyID, employeeID string, start, end time.Time) ([]calendar.Period, error) {
	leaves, err := r.FindApprovedOverlapping(ctx, companyID, employeeID, start, end)
	if err != nil {
		return nil, err
	}
	out := make([]calendar.Period, 0, len(leaves))
	for _, l := range leaves {
		out = append(out, l.Interval())
	}
	return out, nil
}
