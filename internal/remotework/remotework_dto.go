package remotework

import (
	"time"

	"go-attendance/internal/calendar"
	"go-attendance/internal/settings"
)

type OpenWindowRequest struct {
	StartDate string  `json:"start_date" binding:"required"`
	EndDate   *string `json:"end_date"`
}

type LogDayRequest struct {
	EmployeeID string  `json:"employee_id" binding:"omitempty,uuid"`
	Date       string  `json:"date" binding:"required"`
	Reason     *string `json:"reason" binding:"omitempty,max=500"`
}

type SetPreferencesRequest struct {
	EmployeeID string   `json:"employee_id" binding:"omitempty,uuid"`
	Dates      []string `json:"dates"`
	Reason     *string  `json:"reason" binding:"omitempty,max=500"`
}

type ListLogsQuery struct {
	EmployeeID string `form:"employee_id" binding:"omitempty,uuid"`
	Start      string `form:"start"`
	End        string `form:"end"`
}

type WindowResponse struct {
	IsOpen         bool    `json:"is_open"`
	StartDate      *string `json:"start_date,omitempty"`
	EndDate        *string `json:"end_date,omitempty"`
	PastEnd        bool    `json:"past_end"`
	Frequency      string  `json:"frequency"`
	Limit          int     `json:"limit"`
	EffectiveLimit int     `json:"effective_limit"`
}

type RemoteWorkLogResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	Reason     *string `json:"reason,omitempty"`
	CreatedAt  string  `json:"created_at"`
}

type PreferencesResponse struct {
	EmployeeID  string   `json:"employee_id"`
	WindowStart string   `json:"window_start"`
	WindowEnd   string   `json:"window_end"`
	Dates       []string `json:"dates"`
	Removed     int64    `json:"removed"`
}

func mapWindowResponse(w settings.RemoteWindow, hardCap int, today time.Time) WindowResponse {
	resp := WindowResponse{
		IsOpen:         w.IsOpen,
		Frequency:      string(w.Frequency),
		Limit:          w.Limit,
		EffectiveLimit: w.EffectiveLimit(hardCap),
	}
	if bounds, ok := w.Bounds(); ok {
		start := calendar.FormatDate(bounds.Start)
		end := calendar.FormatDate(bounds.End)
		resp.StartDate = &start
		resp.EndDate = &end
		resp.PastEnd = today.After(bounds.End)
	}
	return resp
}

func mapLogResponse(l RemoteWorkLog) RemoteWorkLogResponse {
	return RemoteWorkLogResponse{
		ID:         l.ID.String(),
		EmployeeID: l.EmployeeID.String(),
		Date:       calendar.FormatDate(calendar.Normalize(l.WorkDate)),
		Reason:     l.Reason,
		CreatedAt:  l.CreatedAt.UTC().Format(time.RFC3339),
	}
}
