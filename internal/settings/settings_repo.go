package settings

import (
	"context"
	"database/sql"

	"go-attendance/internal/shared/gormtx"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=settings_repo.go -destination=mock/settings_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	FindByCompany(ctx context.Context, companyID string) (*Settings, error)
	FindByCompanyForUpdate(ctx context.Context, companyID string) (*Settings, error)
	CreateIfMissing(ctx context.Context, s *Settings) error
	Save(ctx context.Context, s *Settings) error
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

func (r *repository) FindByCompany(ctx context.Context, companyID string) (*Settings, error) {
	var s Settings
	err := gormtx.Conn(ctx, r.db, r.tx).
		First(&s, "company_id = ?", companyID).Error
	return &s, err
}

// FindByCompanyForUpdate locks the row until the surrounding transaction
// ends. Drivers without row locks ignore the clause.
func (r *repository) FindByCompanyForUpdate(ctx context.Context, companyID string) (*Settings, error) {
	var s Settings
	err := gormtx.Conn(ctx, r.db, r.tx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&s, "company_id = ?", companyID).Error
	return &s, err
}

// CreateIfMissing inserts the row unless another request created it first.
func (r *repository) CreateIfMissing(ctx context.Context, s *Settings) error {
	return gormtx.Conn(ctx, r.db, r.tx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(s).Error
}

func (r *repository) Save(ctx context.Context, s *Settings) error {
	return gormtx.Conn(ctx, r.db, r.tx).Save(s).Error
}
