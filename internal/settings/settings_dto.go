package settings

import (
	"time"

	"go-attendance/internal/calendar"
)

type UpdateSubmissionPolicyRequest struct {
	DeadlineHour   *int `json:"deadline_hour" binding:"required,min=0,max=23"`
	DeadlineMinute *int `json:"deadline_minute" binding:"required,min=0,max=59"`
	GraceDays      *int `json:"grace_days" binding:"required,min=0,max=30"`
}

type UpdateRemoteQuotaRequest struct {
	Frequency string `json:"frequency" binding:"required,oneof=WEEKLY MONTHLY"`
	Limit     *int   `json:"limit" binding:"required,min=0"`
}

type SubmissionPolicyResponse struct {
	DeadlineHour   int    `json:"deadline_hour"`
	DeadlineMinute int    `json:"deadline_minute"`
	Deadline       string `json:"deadline"`
	GraceDays      int    `json:"grace_days"`
}

type RemoteWorkResponse struct {
	Frequency      string  `json:"frequency"`
	Limit          int     `json:"limit"`
	EffectiveLimit int     `json:"effective_limit"`
	WindowOpen     bool    `json:"window_open"`
	WindowStart    *string `json:"window_start,omitempty"`
	WindowEnd      *string `json:"window_end,omitempty"`
}

type SettingsResponse struct {
	CompanyID        string                   `json:"company_id"`
	SubmissionPolicy SubmissionPolicyResponse `json:"submission_policy"`
	RemoteWork       RemoteWorkResponse       `json:"remote_work"`
	UpdatedAt        time.Time                `json:"updated_at"`
}

func mapToResponse(s Settings, hardCap int) SettingsResponse {
	w := s.RemoteWindow()
	resp := SettingsResponse{
		CompanyID: s.CompanyID.String(),
		SubmissionPolicy: SubmissionPolicyResponse{
			DeadlineHour:   s.DeadlineHour,
			DeadlineMinute: s.DeadlineMinute,
			Deadline:       time.Date(2000, 1, 1, s.DeadlineHour, s.DeadlineMinute, 0, 0, time.UTC).Format("15:04"),
			GraceDays:      s.GraceDays,
		},
		RemoteWork: RemoteWorkResponse{
			Frequency:      string(w.Frequency),
			Limit:          w.Limit,
			EffectiveLimit: w.EffectiveLimit(hardCap),
			WindowOpen:     w.IsOpen,
		},
		UpdatedAt: s.UpdatedAt,
	}
	if w.Start != nil {
		v := calendar.FormatDate(*w.Start)
		resp.RemoteWork.WindowStart = &v
	}
	if w.End != nil {
		v := calendar.FormatDate(*w.End)
		resp.RemoteWork.WindowEnd = &v
	}
	return resp
}
