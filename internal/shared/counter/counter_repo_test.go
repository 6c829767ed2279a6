package counter_test

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"go-attendance/internal/shared/connection"
	"go-attendance/internal/shared/counter"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupCounter(t *testing.T) (*gorm.DB, counter.Repository) {
	t.Helper()

	db, err := connection.OpenSQLite(filepath.Join(t.TempDir(), "counter.db"))
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&counter.Counter{}))
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	return db, counter.NewRepository(db)
}

func lastValue(t *testing.T, db *gorm.DB, scopeID, key string) int64 {
	t.Helper()
	var value int64
	require.NoError(t, db.Model(&counter.Counter{}).
		Select("last_value").
		Where("scope_id = ? AND counter_key = ?", scopeID, key).
		Scan(&value).Error)
	return value
}

func TestCounter_Next(t *testing.T) {
	ctx := context.Background()
	db, repo := setupCounter(t)

	assert.Equal(t, int64(0), lastValue(t, db, "company-1", "remote:emp-1"))

	for want := int64(1); want <= 3; want++ {
		got, err := repo.Next(ctx, "company-1", "remote:emp-1")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	other, err := repo.Next(ctx, "company-2", "remote:emp-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), other)

	assert.Equal(t, int64(3), lastValue(t, db, "company-1", "remote:emp-1"))
}

func TestCounter_NextInTx(t *testing.T) {
	ctx := context.Background()
	db, repo := setupCounter(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)

	t.Run("rollback discards the bump", func(t *testing.T) {
		tx, err := sqlDB.BeginTx(ctx, nil)
		require.NoError(t, err)

		got, err := repo.WithTx(tx).Next(ctx, "company-1", "k")
		require.NoError(t, err)
		assert.Equal(t, int64(1), got)
		require.NoError(t, tx.Rollback())

		assert.Equal(t, int64(0), lastValue(t, db, "company-1", "k"))
	})

	t.Run("concurrent transactions serialize", func(t *testing.T) {
		const workers = 8
		var wg sync.WaitGroup
		errs := make(chan error, workers)

		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				tx, err := sqlDB.BeginTx(ctx, nil)
				if err != nil {
					errs <- err
					return
				}
				defer tx.Rollback()
				if _, err := repo.WithTx(tx).Next(ctx, "company-1", "serial"); err != nil {
					errs <- err
					return
				}
				errs <- tx.Commit()
			}()
		}
		wg.Wait()
		close(errs)

		for err := range errs {
			assert.NoError(t, err)
		}
		assert.Equal(t, int64(workers), lastValue(t, db, "company-1", "serial"))
	})
}
