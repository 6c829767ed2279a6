package eodreport

import (
	"time"

	"go-attendance/internal/calendar"
)

type TaskRequest struct {
	Title       string   `json:"title" binding:"required,max=200"`
	Description string   `json:"description" binding:"max=2000"`
	Status      string   `json:"status" binding:"omitempty,oneof=DONE IN_PROGRESS BLOCKED"`
	Hours       *float64 `json:"hours" binding:"omitempty,min=0,max=24"`
}

type SubmitEodReportRequest struct {
	EmployeeID string        `json:"employee_id" binding:"omitempty,uuid"`
	ReportDate string        `json:"report_date" binding:"required"`
	Tasks      []TaskRequest `json:"tasks" binding:"omitempty,dive"`
	Notes      *string       `json:"notes"`
	// SubmitNow defaults to true. False stores a draft.
	SubmitNow   *bool   `json:"submit_now"`
	SubmittedAt *string `json:"submitted_at"`
	IsLate      *bool   `json:"is_late"`
}

func (r SubmitEodReportRequest) submitNow() bool {
	return r.SubmitNow == nil || *r.SubmitNow
}

type UpdateEodReportRequest struct {
	Tasks       []TaskRequest `json:"tasks" binding:"omitempty,dive"`
	Notes       *string       `json:"notes"`
	SubmitNow   bool          `json:"submit_now"`
	SubmittedAt *string       `json:"submitted_at"`
	IsLate      *bool         `json:"is_late"`
}

type ListEodReportsQuery struct {
	EmployeeID string `form:"employee_id" binding:"omitempty,uuid"`
	Start      string `form:"start"`
	End        string `form:"end"`
}

type EodReportResponse struct {
	ID          string         `json:"id"`
	CompanyID   string         `json:"company_id"`
	EmployeeID  string         `json:"employee_id"`
	ReportDate  string         `json:"report_date"`
	Tasks       []TaskResponse `json:"tasks"`
	Notes       *string        `json:"notes,omitempty"`
	Status      string         `json:"status"`
	SubmittedAt *string        `json:"submitted_at,omitempty"`
	Deadline    string         `json:"deadline"`
	IsLate      bool           `json:"is_late"`
	Overridden  bool           `json:"overridden"`
}

type TaskResponse struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Status      string   `json:"status,omitempty"`
	Hours       *float64 `json:"hours,omitempty"`
}

const (
	reportStatusDraft     = "DRAFT"
	reportStatusSubmitted = "SUBMITTED"
)

func mapTasks(in []TaskRequest) []Task {
	out := make([]Task, len(in))
	for i, t := range in {
		out[i] = Task{
			Title:       t.Title,
			Description: t.Description,
			Status:      t.Status,
			Hours:       t.Hours,
		}
	}
	return out
}

func mapToResponse(r EodReport, deadline time.Time) EodReportResponse {
	resp := EodReportResponse{
		ID:         r.ID.String(),
		CompanyID:  r.CompanyID.String(),
		EmployeeID: r.EmployeeID.String(),
		ReportDate: calendar.FormatDate(calendar.Normalize(r.ReportDate)),
		Tasks:      make([]TaskResponse, len(r.Tasks)),
		Notes:      r.Notes,
		Status:     reportStatusDraft,
		Deadline:   deadline.Format(time.RFC3339Nano),
		IsLate:     r.IsLate,
		Overridden: r.Overridden,
	}
	for i, t := range r.Tasks {
		resp.Tasks[i] = TaskResponse(t)
	}
	if r.SubmittedAt != nil {
		v := r.SubmittedAt.UTC().Format(time.RFC3339Nano)
		resp.SubmittedAt = &v
		resp.Status = reportStatusSubmitted
	}
	return resp
}
