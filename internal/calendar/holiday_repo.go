package calendar

import (
	"context"
	"time"

	"go-attendance/internal/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=holiday_repo.go -destination=mock/holiday_repo_mock.go -package=mock
type HolidayRepository interface {
	Create(ctx context.Context, h *Holiday) error
	BulkUpsert(ctx context.Context, holidays []Holiday) (int64, error)
	FindBetween(ctx context.Context, companyID, region string, start, end time.Time) ([]Holiday, error)
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*Holiday, error)
	Delete(ctx context.Context, companyID, id string) error
}

type holidayRepository struct {
	db *gorm.DB
}

func NewHolidayRepository(db *gorm.DB) HolidayRepository {
	return &holidayRepository{db: db}
}

func (r *holidayRepository) Create(ctx context.Context, h *Holiday) error {
	return r.db.WithContext(ctx).Create(h).Error
}

// BulkUpsert inserts holidays and silently skips dates that already exist
// for the same company and region. It returns the number of new rows.
func (r *holidayRepository) BulkUpsert(ctx context.Context, holidays []Holiday) (int64, error) {
	if len(holidays) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		CreateInBatches(holidays, 100)
	return res.RowsAffected, res.Error
}

func (r *holidayRepository) FindBetween(ctx context.Context, companyID, region string, start, end time.Time) ([]Holiday, error) {
	var holidays []Holiday
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("region = ?", region).
		Where("date >= ? AND date <= ?", Normalize(start), Normalize(end)).
		Order("date ASC").
		Find(&holidays).Error
	return holidays, err
}

func (r *holidayRepository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*Holiday, error) {
	var h Holiday
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&h, "id = ?", id).Error
	return &h, err
}

func (r *holidayRepository) Delete(ctx context.Context, companyID, id string) error {
	res := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Delete(&Holiday{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
