package calendar

import (
	"context"
	"errors"
	"strings"
	"time"

	calendarerrors "go-attendance/internal/calendar/errors"
	"go-attendance/internal/domain"
	"go-attendance/internal/shared/apperror"
	"go-attendance/internal/shared/dberr"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// maxRangeDays bounds range queries so a single request cannot walk years.
const maxRangeDays = 366

//go:generate mockgen -source=calendar_service.go -destination=mock/calendar_service_mock.go -package=mock
type Service interface {
	CheckWorkingDay(ctx context.Context, companyID string, actor domain.Actor, q WorkingDayQuery) (WorkingDayResponse, error)
	ListWorkingDays(ctx context.Context, companyID string, actor domain.Actor, q WorkingDaysQuery) (WorkingDaysResponse, error)
	ListHolidays(ctx context.Context, companyID string, year int) ([]HolidayResponse, error)
	CreateHoliday(ctx context.Context, companyID, actorID string, req CreateHolidayRequest) (HolidayResponse, error)
	DeleteHoliday(ctx context.Context, companyID, id string) error
	ImportHolidays(ctx context.Context, companyID string, file HolidayFile) (ImportHolidaysResponse, error)
}

type service struct {
	policy   Policy
	holidays HolidayRepository
	region   string
	logger   *zap.Logger
}

func NewService(policy Policy, holidays HolidayRepository, region string, logger ...*zap.Logger) Service {
	l := zap.L().Named("calendar.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("calendar.service")
	}
	return &service{policy: policy, holidays: holidays, region: region, logger: l}
}

func (s *service) CheckWorkingDay(ctx context.Context, companyID string, actor domain.Actor, q WorkingDayQuery) (WorkingDayResponse, error) {
	employeeID := actor.TargetEmployee(q.EmployeeID)
	if !actor.CanActFor(employeeID) {
		return WorkingDayResponse{}, apperror.ErrForbidden
	}

	day, err := ParseDate(q.Date)
	if err != nil {
		return WorkingDayResponse{}, err
	}

	working, err := s.policy.IsWorkingDay(ctx, companyID, employeeID, day)
	if err != nil {
		return WorkingDayResponse{}, err
	}

	return WorkingDayResponse{
		EmployeeID:   employeeID,
		Date:         FormatDate(day),
		IsWorkingDay: working,
	}, nil
}

func (s *service) ListWorkingDays(ctx context.Context, companyID string, actor domain.Actor, q WorkingDaysQuery) (WorkingDaysResponse, error) {
	employeeID := actor.TargetEmployee(q.EmployeeID)
	if !actor.CanActFor(employeeID) {
		return WorkingDaysResponse{}, apperror.ErrForbidden
	}

	start, err := ParseDate(q.Start)
	if err != nil {
		return WorkingDaysResponse{}, err
	}
	end, err := ParseDate(q.End)
	if err != nil {
		return WorkingDaysResponse{}, err
	}
	if end.Before(start) {
		return WorkingDaysResponse{}, calendarerrors.ErrInvalidDateRange
	}
	if DaysInclusive(start, end) > maxRangeDays {
		return WorkingDaysResponse{}, calendarerrors.ErrDateRangeTooLong
	}

	snap, err := s.policy.Snapshot(ctx, companyID, employeeID, start, end)
	if err != nil {
		return WorkingDaysResponse{}, err
	}

	days := snap.WorkingDays()
	out := make([]string, len(days))
	for i, d := range days {
		out[i] = FormatDate(d)
	}

	return WorkingDaysResponse{
		EmployeeID:  employeeID,
		Start:       FormatDate(start),
		End:         FormatDate(end),
		WorkingDays: out,
		Total:       len(out),
	}, nil
}

func (s *service) ListHolidays(ctx context.Context, companyID string, year int) ([]HolidayResponse, error) {
	if year < 1970 || year > 9999 {
		return nil, calendarerrors.ErrInvalidYear
	}
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	holidays, err := s.holidays.FindBetween(ctx, companyID, s.region, start, end)
	if err != nil {
		s.logger.Error("list holidays failed", zap.String("company_id", companyID), zap.Int("year", year), zap.Error(err))
		return nil, err
	}

	resp := make([]HolidayResponse, len(holidays))
	for i, h := range holidays {
		resp[i] = mapHolidayResponse(h)
	}
	return resp, nil
}

func (s *service) CreateHoliday(ctx context.Context, companyID, actorID string, req CreateHolidayRequest) (HolidayResponse, error) {
	s.logger.Debug("create holiday requested",
		zap.String("company_id", companyID),
		zap.String("date", req.Date),
	)

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return HolidayResponse{}, calendarerrors.ErrInvalidCompanyID
	}
	date, err := ParseDate(req.Date)
	if err != nil {
		return HolidayResponse{}, err
	}

	region := strings.TrimSpace(req.Region)
	if region == "" {
		region = s.region
	}

	h := &Holiday{
		ID:        uuid.New(),
		CompanyID: companyUUID,
		Region:    region,
		Date:      date,
		Name:      strings.TrimSpace(req.Name),
	}
	if actorUUID, err := uuid.Parse(actorID); err == nil {
		h.CreatedBy = &actorUUID
	}

	if err := s.holidays.Create(ctx, h); err != nil {
		if dberr.IsUniqueViolation(err) {
			return HolidayResponse{}, calendarerrors.ErrHolidayAlreadyExists
		}
		s.logger.Error("create holiday persist failed", zap.Error(err))
		return HolidayResponse{}, err
	}

	s.logger.Info("create holiday success",
		zap.String("holiday_id", h.ID.String()),
		zap.String("date", FormatDate(date)),
		zap.String("region", region),
	)
	return mapHolidayResponse(*h), nil
}

func (s *service) DeleteHoliday(ctx context.Context, companyID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return calendarerrors.ErrHolidayNotFound
	}
	if err := s.holidays.Delete(ctx, companyID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return calendarerrors.ErrHolidayNotFound
		}
		return err
	}
	s.logger.Info("delete holiday success", zap.String("holiday_id", id))
	return nil
}

func (s *service) ImportHolidays(ctx context.Context, companyID string, file HolidayFile) (ImportHolidaysResponse, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return ImportHolidaysResponse{}, calendarerrors.ErrInvalidCompanyID
	}

	region := file.Region
	if region == "" {
		region = s.region
	}

	seen := make(map[string]struct{}, len(file.Holidays))
	rows := make([]Holiday, 0, len(file.Holidays))
	for _, entry := range file.Holidays {
		date, err := ParseDate(entry.Date)
		if err != nil {
			return ImportHolidaysResponse{}, apperror.WithCause(calendarerrors.ErrInvalidHolidayFile, err)
		}
		name := strings.TrimSpace(entry.Name)
		if name == "" {
			return ImportHolidaysResponse{}, calendarerrors.ErrInvalidHolidayFile
		}
		key := FormatDate(date)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		rows = append(rows, Holiday{
			ID:        uuid.New(),
			CompanyID: companyUUID,
			Region:    region,
			Date:      date,
			Name:      name,
		})
	}

	inserted, err := s.holidays.BulkUpsert(ctx, rows)
	if err != nil {
		s.logger.Error("import holidays failed", zap.String("company_id", companyID), zap.Error(err))
		return ImportHolidaysResponse{}, err
	}

	s.logger.Info("import holidays success",
		zap.String("company_id", companyID),
		zap.String("region", region),
		zap.Int("total", len(rows)),
		zap.Int64("inserted", inserted),
	)

	return ImportHolidaysResponse{
		Region:   region,
		Total:    len(rows),
		Inserted: inserted,
		Skipped:  int64(len(rows)) - inserted,
	}, nil
}

func mapHolidayResponse(h Holiday) HolidayResponse {
	return HolidayResponse{
		ID:     h.ID.String(),
		Date:   FormatDate(Normalize(h.Date)),
		Name:   h.Name,
		Region: h.Region,
	}
}
