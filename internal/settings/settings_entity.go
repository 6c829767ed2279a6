package settings

import (
	"time"

	"go-attendance/internal/calendar"

	"github.com/google/uuid"
)

// Settings is the per-company singleton holding the submission policy and
// the remote work window state machine.
type Settings struct {
	CompanyID         uuid.UUID  `gorm:"type:uuid;primaryKey" json:"company_id"`
	DeadlineHour      int        `gorm:"not null" json:"deadline_hour"`
	DeadlineMinute    int        `gorm:"not null" json:"deadline_minute"`
	GraceDays         int        `gorm:"not null" json:"grace_days"`
	RemoteFrequency   string     `gorm:"type:varchar(10);not null" json:"remote_frequency"`
	RemoteLimit       int        `gorm:"not null" json:"remote_limit"`
	RemoteWindowOpen  bool       `gorm:"not null;default:false" json:"remote_window_open"`
	RemoteWindowStart *time.Time `gorm:"type:date" json:"remote_window_start,omitempty"`
	RemoteWindowEnd   *time.Time `gorm:"type:date" json:"remote_window_end,omitempty"`
	UpdatedBy         *uuid.UUID `gorm:"type:uuid" json:"updated_by,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

func (Settings) TableName() string {
	return "attendance_settings"
}

type SubmissionPolicy struct {
	DeadlineHour   int
	DeadlineMinute int
	GraceDays      int
}

// RemoteWindow is the remote work window as configured. Limit is the raw
// configured value; callers clamp it with EffectiveLimit.
type RemoteWindow struct {
	IsOpen    bool
	Start     *time.Time
	End       *time.Time
	Frequency calendar.Frequency
	Limit     int
}

// Bounds returns the stored window period, if both ends are set.
func (w RemoteWindow) Bounds() (calendar.Period, bool) {
	if w.Start == nil || w.End == nil {
		return calendar.Period{}, false
	}
	return calendar.Period{Start: calendar.Normalize(*w.Start), End: calendar.Normalize(*w.End)}, true
}

// EffectiveLimit clamps the configured limit to the system-wide cap.
func (w RemoteWindow) EffectiveLimit(hardCap int) int {
	limit := w.Limit
	if limit > hardCap {
		limit = hardCap
	}
	if limit < 0 {
		limit = 0
	}
	return limit
}

func (s Settings) SubmissionPolicy() SubmissionPolicy {
	return SubmissionPolicy{
		DeadlineHour:   s.DeadlineHour,
		DeadlineMinute: s.DeadlineMinute,
		GraceDays:      s.GraceDays,
	}
}

func (s Settings) RemoteWindow() RemoteWindow {
	freq, err := calendar.ParseFrequency(s.RemoteFrequency)
	if err != nil {
		freq = calendar.FrequencyWeekly
	}
	return RemoteWindow{
		IsOpen:    s.RemoteWindowOpen,
		Start:     s.RemoteWindowStart,
		End:       s.RemoteWindowEnd,
		Frequency: freq,
		Limit:     s.RemoteLimit,
	}
}

// Defaults are written on the first read of a company's settings.
type Defaults struct {
	DeadlineHour   int
	DeadlineMinute int
	GraceDays      int
	Frequency      string
	Limit          int
	HardCap        int
}

func (d Defaults) NewSettings(companyID uuid.UUID) *Settings {
	return &Settings{
		CompanyID:       companyID,
		DeadlineHour:    d.DeadlineHour,
		DeadlineMinute:  d.DeadlineMinute,
		GraceDays:       d.GraceDays,
		RemoteFrequency: d.Frequency,
		RemoteLimit:     d.Limit,
	}
}
