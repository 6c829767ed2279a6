package remotework

import (
	"context"
	"database/sql"
	"time"

	"go-attendance/internal/shared/gormtx"
	"go-attendance/internal/tenant"

	"gorm.io/gorm"
)

type ListFilter struct {
	EmployeeID string
	Start      *time.Time
	End        *time.Time
}

//go:generate mockgen -source=remotework_repo.go -destination=mock/remotework_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, log *RemoteWorkLog) error
	CreateBatch(ctx context.Context, logs []RemoteWorkLog) error
	CountBetween(ctx context.Context, companyID, employeeID string, start, end time.Time) (int64, error)
	DeleteBetween(ctx context.Context, companyID, employeeID string, start, end time.Time) (int64, error)
	List(ctx context.Context, companyID string, filter ListFilter) ([]RemoteWorkLog, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, log *RemoteWorkLog) error {
	return gormtx.Conn(ctx, r.db, r.tx).Create(log).Error
}

func (r *repository) CreateBatch(ctx context.Context, logs []RemoteWorkLog) error {
	if len(logs) == 0 {
		return nil
	}
	return gormtx.Conn(ctx, r.db, r.tx).CreateInBatches(logs, 100).Error
}

func (r *repository) CountBetween(ctx context.Context, companyID, employeeID string, start, end time.Time) (int64, error) {
	var count int64
	err := gormtx.Conn(ctx, r.db, r.tx).
		Model(&RemoteWorkLog{}).
		Scopes(tenant.OwnedBy(companyID, employeeID)).
		Where("work_date BETWEEN ? AND ?", start, end).
		Count(&count).Error
	return count, err
}

func (r *repository) DeleteBetween(ctx context.Context, companyID, employeeID string, start, end time.Time) (int64, error) {
	res := gormtx.Conn(ctx, r.db, r.tx).
		Scopes(tenant.OwnedBy(companyID, employeeID)).
		Where("work_date BETWEEN ? AND ?", start, end).
		Delete(&RemoteWorkLog{})
	return res.RowsAffected, res.Error
}

func (r *repository) List(ctx context.Context, companyID string, filter ListFilter) ([]RemoteWorkLog, error) {
	q := gormtx.Conn(ctx, r.db, r.tx).Scopes(tenant.Scope(companyID))
	if filter.EmployeeID != "" {
		q = q.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.Start != nil {
		q = q.Where("work_date >= ?", *filter.Start)
	}
	if filter.End != nil {
		q = q.Where("work_date <= ?", *filter.End)
	}

	var rows []RemoteWorkLog
	err := q.Order("work_date ASC, employee_id ASC").Find(&rows).Error
	return rows, err
}
