package counter

import (
	"context"
	"database/sql"
	"time"

	"go-attendance/internal/shared/gormtx"

	"gorm.io/gorm"
)

// Counter is a monotonically increasing value per (scope, key). Bumping it
// inside a transaction also row-locks it until commit, which makes it usable
// as a per-key mutex.
type Counter struct {
	ScopeID    string    `gorm:"type:varchar(64);primaryKey"`
	CounterKey string    `gorm:"type:varchar(128);primaryKey"`
	LastValue  int64     `gorm:"not null;default:0"`
	UpdatedAt  time.Time `gorm:"not null"`
}

func (Counter) TableName() string {
	return "counters"
}

//go:generate mockgen -source=counter_repo.go -destination=mock/counter_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Next(ctx context.Context, scopeID, key string) (int64, error)
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

func (r *repository) Next(ctx context.Context, scopeID, key string) (int64, error) {
	var nextValue int64

	// Atomic upsert; concurrent callers on the same key queue on the row lock.
	err := gormtx.Conn(ctx, r.db, r.tx).Raw(`
		INSERT INTO counters (scope_id, counter_key, last_value, updated_at)
		VALUES (?, ?, 1, CURRENT_TIMESTAMP)
		ON CONFLICT (scope_id, counter_key) DO UPDATE
		SET last_value = counters.last_value + 1, updated_at = CURRENT_TIMESTAMP
		RETURNING last_value
	`, scopeID, key).Scan(&nextValue).Error
	if err != nil {
		return 0, err
	}

	return nextValue, nil
}
