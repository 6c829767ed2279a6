package settings

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"go-attendance/internal/calendar"
	settingserrors "go-attendance/internal/settings/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const SettingsKeyPrefix = "attendance:settings:"

func GetSettingsKey(companyID string) string {
	return SettingsKeyPrefix + companyID
}

//go:generate mockgen -source=settings_service.go -destination=mock/settings_service_mock.go -package=mock
type Service interface {
	Get(ctx context.Context, companyID string) (Settings, error)
	GetResponse(ctx context.Context, companyID string) (SettingsResponse, error)
	UpdateSubmissionPolicy(ctx context.Context, companyID, actorID string, req UpdateSubmissionPolicyRequest) (SettingsResponse, error)
	UpdateRemoteQuota(ctx context.Context, companyID, actorID string, req UpdateRemoteQuotaRequest) (SettingsResponse, error)
	OpenRemoteWindow(ctx context.Context, companyID, actorID string, window calendar.Period) (Settings, error)
	CloseRemoteWindow(ctx context.Context, companyID, actorID string) (Settings, error)
	HardCap() int
}

type service struct {
	db       *sql.DB
	repo     Repository
	rdb      *redis.Client
	sf       *singleflight.Group
	defaults Defaults
	cacheTTL time.Duration
	logger   *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	rdb *redis.Client,
	defaults Defaults,
	cacheTTL time.Duration,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("settings.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("settings.service")
	}
	if cacheTTL <= 0 {
		cacheTTL = 5 * time.Minute
	}
	return &service{
		db:       db,
		repo:     repo,
		rdb:      rdb,
		sf:       &singleflight.Group{},
		defaults: defaults,
		cacheTTL: cacheTTL,
		logger:   l,
	}
}

func (s *service) HardCap() int {
	return s.defaults.HardCap
}

// Get returns the company's settings, creating the default row on first use.
func (s *service) Get(ctx context.Context, companyID string) (Settings, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return Settings{}, settingserrors.ErrInvalidCompanyID
	}

	cacheKey := GetSettingsKey(companyID)
	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, cacheKey).Result()
		if err == nil {
			var st Settings
			if err := json.Unmarshal([]byte(cached), &st); err == nil {
				return st, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		st, err := s.repo.FindByCompany(ctx, companyID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := s.repo.CreateIfMissing(ctx, s.defaults.NewSettings(companyUUID)); err != nil {
				return nil, err
			}
			st, err = s.repo.FindByCompany(ctx, companyID)
		}
		if err != nil {
			s.logger.Error("load settings failed", zap.String("company_id", companyID), zap.Error(err))
			return nil, err
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(st); err == nil {
				s.rdb.Set(ctx, cacheKey, jsonData, s.cacheTTL)
			}
		}
		return *st, nil
	})
	if err != nil {
		return Settings{}, err
	}
	return v.(Settings), nil
}

func (s *service) GetResponse(ctx context.Context, companyID string) (SettingsResponse, error) {
	st, err := s.Get(ctx, companyID)
	if err != nil {
		return SettingsResponse{}, err
	}
	return mapToResponse(st, s.defaults.HardCap), nil
}

func (s *service) UpdateSubmissionPolicy(ctx context.Context, companyID, actorID string, req UpdateSubmissionPolicyRequest) (SettingsResponse, error) {
	if req.DeadlineHour == nil || req.DeadlineMinute == nil ||
		*req.DeadlineHour < 0 || *req.DeadlineHour > 23 ||
		*req.DeadlineMinute < 0 || *req.DeadlineMinute > 59 {
		return SettingsResponse{}, settingserrors.ErrInvalidDeadline
	}
	if req.GraceDays == nil || *req.GraceDays < 0 || *req.GraceDays > 30 {
		return SettingsResponse{}, settingserrors.ErrInvalidGraceDays
	}

	st, err := s.update(ctx, companyID, actorID, func(st *Settings) {
		st.DeadlineHour = *req.DeadlineHour
		st.DeadlineMinute = *req.DeadlineMinute
		st.GraceDays = *req.GraceDays
	})
	if err != nil {
		return SettingsResponse{}, err
	}

	s.logger.Info("submission policy updated",
		zap.String("company_id", companyID),
		zap.Int("deadline_hour", st.DeadlineHour),
		zap.Int("deadline_minute", st.DeadlineMinute),
		zap.Int("grace_days", st.GraceDays),
	)
	return mapToResponse(st, s.defaults.HardCap), nil
}

func (s *service) UpdateRemoteQuota(ctx context.Context, companyID, actorID string, req UpdateRemoteQuotaRequest) (SettingsResponse, error) {
	freq, err := calendar.ParseFrequency(req.Frequency)
	if err != nil {
		return SettingsResponse{}, err
	}
	if req.Limit == nil || *req.Limit < 0 {
		return SettingsResponse{}, settingserrors.ErrInvalidRemoteLimit
	}

	st, err := s.update(ctx, companyID, actorID, func(st *Settings) {
		st.RemoteFrequency = string(freq)
		st.RemoteLimit = *req.Limit
	})
	if err != nil {
		return SettingsResponse{}, err
	}

	s.logger.Info("remote quota updated",
		zap.String("company_id", companyID),
		zap.String("frequency", st.RemoteFrequency),
		zap.Int("limit", st.RemoteLimit),
	)
	return mapToResponse(st, s.defaults.HardCap), nil
}

func (s *service) OpenRemoteWindow(ctx context.Context, companyID, actorID string, window calendar.Period) (Settings, error) {
	start, end := window.Start, window.End
	return s.update(ctx, companyID, actorID, func(st *Settings) {
		st.RemoteWindowOpen = true
		st.RemoteWindowStart = &start
		st.RemoteWindowEnd = &end
	})
}

// CloseRemoteWindow keeps the stored bounds so the last window stays visible.
func (s *service) CloseRemoteWindow(ctx context.Context, companyID, actorID string) (Settings, error) {
	return s.update(ctx, companyID, actorID, func(st *Settings) {
		st.RemoteWindowOpen = false
	})
}

func (s *service) update(ctx context.Context, companyID, actorID string, mutate func(*Settings)) (Settings, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return Settings{}, settingserrors.ErrInvalidCompanyID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Settings{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	st, err := qtx.FindByCompanyForUpdate(ctx, companyID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := qtx.CreateIfMissing(ctx, s.defaults.NewSettings(companyUUID)); err != nil {
			return Settings{}, err
		}
		st, err = qtx.FindByCompanyForUpdate(ctx, companyID)
	}
	if err != nil {
		s.logger.Error("lock settings failed", zap.String("company_id", companyID), zap.Error(err))
		return Settings{}, err
	}

	mutate(st)
	if actorUUID, err := uuid.Parse(actorID); err == nil {
		st.UpdatedBy = &actorUUID
	}

	if err := qtx.Save(ctx, st); err != nil {
		s.logger.Error("save settings failed", zap.String("company_id", companyID), zap.Error(err))
		return Settings{}, err
	}

	if err := tx.Commit(); err != nil {
		return Settings{}, err
	}

	s.invalidate(ctx, companyID)
	return *st, nil
}

func (s *service) invalidate(ctx context.Context, companyID string) {
	if s.rdb == nil {
		return
	}
	cacheKey := GetSettingsKey(companyID)
	if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
		s.logger.Warn("invalidate settings cache failed", zap.String("key", cacheKey), zap.Error(err))
	}
}
