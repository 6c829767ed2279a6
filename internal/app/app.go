package app

import (
	"database/sql"
	"time"

	"go-attendance/internal/calendar"
	"go-attendance/internal/config"
	"go-attendance/internal/employee"
	"go-attendance/internal/eodreport"
	"go-attendance/internal/leave"
	"go-attendance/internal/messaging/kafka"
	"go-attendance/internal/middleware"
	"go-attendance/internal/remotework"
	"go-attendance/internal/settings"
	"go-attendance/internal/shared/connection"
	"go-attendance/internal/shared/counter"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Models is the schema created at start on every driver. Employees and leave
// are written by other services but are read through local tables.
func Models() []any {
	return []any{
		&employee.Employee{},
		&leave.Leave{},
		&calendar.Holiday{},
		&settings.Settings{},
		&eodreport.EodReport{},
		&remotework.RemoteWorkLog{},
		&counter.Counter{},
		&kafka.OutboxEvent{},
	}
}

// Migrate creates or updates the tables in Models. AutoMigrate only adds
// missing tables, columns and indexes, so running it on every start is safe.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}

// OpenDatabase connects and creates the schema.
func OpenDatabase(cfg config.DBConfig) (*gorm.DB, *sql.DB, error) {
	gormDB, err := connection.OpenDatabase(cfg)
	if err != nil {
		return nil, nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, nil, err
	}
	if err := Migrate(gormDB); err != nil {
		_ = sqlDB.Close()
		zap.L().Named("app").Error("auto migrate failed", zap.String("driver", cfg.Driver), zap.Error(err))
		return nil, nil, err
	}
	return gormDB, sqlDB, nil
}

// BuildApp connects the infrastructure and registers every module. The
// returned cleanup closes the connections.
func BuildApp(router *gin.Engine, cfg *config.Config) (func(), error) {
	logger := zap.L().Named("app")

	gormDB, sqlDB, err := OpenDatabase(cfg.DB)
	if err != nil {
		return nil, err
	}
	logger.Info("database connection established", zap.String("driver", cfg.DB.Driver))

	redisClient, err := connection.ConnectRedisWithRetry(cfg.Redis.Addr, cfg.Redis.MaxRetries)
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	logger.Info("redis connection established")

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID", "Idempotency-Key"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: !containsWildcard(cfg.App.CORSOrigins),
		MaxAge:           12 * time.Hour,
	}))
	router.Use(middleware.RequestID())

	if err := registerModules(router, cfg, sqlDB, gormDB, redisClient); err != nil {
		_ = redisClient.Close()
		_ = sqlDB.Close()
		return nil, err
	}

	return func() {
		_ = redisClient.Close()
		_ = sqlDB.Close()
	}, nil
}

func containsWildcard(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}

