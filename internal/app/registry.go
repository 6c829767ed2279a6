package app

import (
	"database/sql"
	"net/http"

	"go-attendance/internal/bootstrap"
	"go-attendance/internal/calendar"
	"go-attendance/internal/compliance"
	"go-attendance/internal/config"
	"go-attendance/internal/employee"
	"go-attendance/internal/eodreport"
	"go-attendance/internal/leave"
	"go-attendance/internal/messaging/kafka"
	"go-attendance/internal/middleware"
	"go-attendance/internal/rbac"
	"go-attendance/internal/rbac/infra"
	"go-attendance/internal/remotework"
	"go-attendance/internal/settings"
	"go-attendance/internal/shared/counter"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	cfg *config.Config,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	att := cfg.Attendance

	// --- Repositories ---
	employeeRepo := employee.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	holidayRepo := calendar.NewHolidayRepository(gormDB)
	settingsRepo := settings.NewRepository(gormDB)
	eodReportRepo := eodreport.NewRepository(gormDB)
	remoteWorkRepo := remotework.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(gormDB)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService, err := rbac.NewService(enforcer, rbac.DefaultRules(), rbac.DefaultInheritance())
	if err != nil {
		return err
	}

	// --- Services ---
	policy := calendar.NewPolicy(holidayRepo, leaveRepo, att.HolidayRegion)
	calendarService := calendar.NewService(policy, holidayRepo, att.HolidayRegion)
	settingsService := settings.NewService(db, settingsRepo, rdb, settings.Defaults{
		DeadlineHour:   att.DefaultDeadlineHour,
		DeadlineMinute: att.DefaultDeadlineMinute,
		GraceDays:      att.DefaultGraceDays,
		Frequency:      att.DefaultFrequency,
		Limit:          att.DefaultLimit,
		HardCap:        att.HardCap,
	}, cfg.Redis.SettingsCacheTTL)
	eodReportService := eodreport.NewService(db, eodReportRepo, employeeRepo, policy, settingsService, bootstrap.NewStdoutAuditLogger())
	remoteWorkService := remotework.NewService(remotework.Deps{
		DB:        db,
		Repo:      remoteWorkRepo,
		Counters:  counterRepo,
		Windows:   settingsService,
		Calendar:  policy,
		Employees: employeeRepo,
		Notifier:  remotework.NewOutboxNotifier(outboxRepo, cfg.Kafka.RemoteWindowTopic),
	})
	complianceService := compliance.NewService(employeeRepo, eodReportRepo, policy, att.MissingLookbackDays)

	// --- Handlers ---
	calendarHandler := calendar.NewHandler(calendarService)
	settingsHandler := settings.NewHandler(settingsService)
	eodReportHandler := eodreport.NewHandler(eodReportService, rbacService, rdb)
	remoteWorkHandler := remotework.NewHandler(remoteWorkService)
	complianceHandler := compliance.NewHandler(complianceService, rbacService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	api.Use(
		middleware.AuthMiddleware(cfg.Auth.JWTSecret),
		middleware.ContextLogger(zap.L()),
		middleware.ResolveActor(rbacService),
	)
	{
		calendar.RegisterRoutes(api, calendarHandler, rbacService)
		settings.RegisterRoutes(api, settingsHandler, rbacService)
		eodreport.RegisterRoutes(api, eodReportHandler, rbacService, rdb)
		remotework.RegisterRoutes(api, remoteWorkHandler, rbacService, rate.Limit(att.RateLimitPerSecond), att.RateLimitBurst)
		compliance.RegisterRoutes(api, complianceHandler, rbacService)
	}

	router.GET("/healthz", func(c *gin.Context) {
		if err := db.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	return nil
}
