package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	App        AppConfig
	DB         DBConfig
	Redis      RedisConfig
	Kafka      KafkaConfig
	Auth       AuthConfig
	Attendance AttendanceConfig
}

type AppConfig struct {
	Env             string
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
	CORSOrigins     []string
}

func (c AppConfig) IsProduction() bool {
	return c.Env == "production"
}

type DBConfig struct {
	Driver     string
	Host       string
	Port       string
	User       string
	Password   string
	Name       string
	SSLMode    string
	SQLitePath string
	MaxRetries int
}

type RedisConfig struct {
	Addr             string
	MaxRetries       int
	SettingsCacheTTL time.Duration
}

type KafkaConfig struct {
	Broker             string
	RemoteWindowTopic  string
	NotificationTopic  string
	ConsumerGroupID    string
	OutboxPollInterval time.Duration
	OutboxBatchSize    int
	ConnectMaxRetries  int
}

type AuthConfig struct {
	JWTSecret string
}

// AttendanceConfig holds the tenant defaults written on the first settings
// read plus the system-wide ceilings.
type AttendanceConfig struct {
	HolidayRegion         string
	HardCap               int
	DefaultDeadlineHour   int
	DefaultDeadlineMinute int
	DefaultGraceDays      int
	DefaultFrequency      string
	DefaultLimit          int
	MissingLookbackDays   int
	RateLimitPerSecond    float64
	RateLimitBurst        int
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Env:             getEnv("APP_ENV", "development"),
			Port:            getEnv("PORT", "3000"),
			ReadTimeout:     getEnvAsDuration("HTTP_READ_TIMEOUT", 5*time.Second),
			WriteTimeout:    getEnvAsDuration("HTTP_WRITE_TIMEOUT", 10*time.Second),
			IdleTimeout:     getEnvAsDuration("HTTP_IDLE_TIMEOUT", 60*time.Second),
			ShutdownTimeout: getEnvAsDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
			CORSOrigins:     getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		},
		DB: DBConfig{
			Driver:     strings.ToLower(getEnv("DB_DRIVER", DriverPostgres)),
			Host:       getEnv("DB_HOST", "localhost"),
			Port:       getEnv("DB_PORT", "5432"),
			User:       getEnv("DB_USER", "postgres"),
			Password:   getEnv("DB_PASSWORD", ""),
			Name:       getEnv("DB_NAME", "attendance"),
			SSLMode:    getEnv("DB_SSLMODE", "disable"),
			SQLitePath: getEnv("DB_SQLITE_PATH", "attendance.db"),
			MaxRetries: getEnvAsInt("DB_MAX_RETRIES", 5),
		},
		Redis: RedisConfig{
			Addr:             getEnv("REDIS_ADDR", "localhost:6379"),
			MaxRetries:       getEnvAsInt("REDIS_MAX_RETRIES", 5),
			SettingsCacheTTL: getEnvAsDuration("SETTINGS_CACHE_TTL", 5*time.Minute),
		},
		Kafka: KafkaConfig{
			Broker:             getEnv("KAFKA_BROKER", ""),
			RemoteWindowTopic:  getEnv("KAFKA_REMOTE_WINDOW_TOPIC", "hr.attendance.remote_window.v1"),
			NotificationTopic:  getEnv("KAFKA_NOTIFICATION_TOPIC", "hr.notification.requested.v1"),
			ConsumerGroupID:    getEnv("KAFKA_CONSUMER_GROUP", "go-attendance-remote-window"),
			OutboxPollInterval: getEnvAsDuration("OUTBOX_POLL_INTERVAL", 3*time.Second),
			OutboxBatchSize:    getEnvAsInt("OUTBOX_BATCH_SIZE", 50),
			ConnectMaxRetries:  getEnvAsInt("KAFKA_MAX_RETRIES", 5),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", ""),
		},
		Attendance: AttendanceConfig{
			HolidayRegion:         getEnv("HOLIDAY_REGION", "DEFAULT"),
			HardCap:               getEnvAsInt("REMOTE_WORK_HARD_CAP", 7),
			DefaultDeadlineHour:   getEnvAsInt("EOD_DEADLINE_HOUR", 23),
			DefaultDeadlineMinute: getEnvAsInt("EOD_DEADLINE_MINUTE", 59),
			DefaultGraceDays:      getEnvAsInt("EOD_GRACE_DAYS", 1),
			DefaultFrequency:      strings.ToUpper(getEnv("REMOTE_WORK_FREQUENCY", "WEEKLY")),
			DefaultLimit:          getEnvAsInt("REMOTE_WORK_LIMIT", 2),
			MissingLookbackDays:   getEnvAsInt("MISSING_REPORT_LOOKBACK_DAYS", 30),
			RateLimitPerSecond:    getEnvAsFloat("QUOTA_RATE_LIMIT_RPS", 2),
			RateLimitBurst:        getEnvAsInt("QUOTA_RATE_LIMIT_BURST", 5),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DB.Driver)
	}

	a := c.Attendance
	if a.HardCap < 1 {
		return fmt.Errorf("REMOTE_WORK_HARD_CAP must be at least 1, got %d", a.HardCap)
	}
	if a.DefaultDeadlineHour < 0 || a.DefaultDeadlineHour > 23 {
		return fmt.Errorf("EOD_DEADLINE_HOUR must be between 0 and 23, got %d", a.DefaultDeadlineHour)
	}
	if a.DefaultDeadlineMinute < 0 || a.DefaultDeadlineMinute > 59 {
		return fmt.Errorf("EOD_DEADLINE_MINUTE must be between 0 and 59, got %d", a.DefaultDeadlineMinute)
	}
	if a.DefaultGraceDays < 0 {
		return fmt.Errorf("EOD_GRACE_DAYS must not be negative, got %d", a.DefaultGraceDays)
	}
	if a.DefaultFrequency != "WEEKLY" && a.DefaultFrequency != "MONTHLY" {
		return fmt.Errorf("REMOTE_WORK_FREQUENCY must be WEEKLY or MONTHLY, got %q", a.DefaultFrequency)
	}
	if a.DefaultLimit < 0 {
		return fmt.Errorf("REMOTE_WORK_LIMIT must not be negative, got %d", a.DefaultLimit)
	}
	if a.MissingLookbackDays < 1 {
		return fmt.Errorf("MISSING_REPORT_LOOKBACK_DAYS must be at least 1, got %d", a.MissingLookbackDays)
	}
	return nil
}

func getEnv(key string, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(name string, defaultVal int) int {
	if val, err := strconv.Atoi(getEnv(name, "")); err == nil {
		return val
	}
	return defaultVal
}

func getEnvAsFloat(name string, defaultVal float64) float64 {
	if val, err := strconv.ParseFloat(getEnv(name, ""), 64); err == nil {
		return val
	}
	return defaultVal
}

func getEnvAsDuration(name string, defaultVal time.Duration) time.Duration {
	if val, err := time.ParseDuration(getEnv(name, "")); err == nil {
		return val
	}
	return defaultVal
}

func getEnvAsList(name string, defaultVal []string) []string {
	raw := getEnv(name, "")
	if raw == "" {
		return defaultVal
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
