package eodreport

import (
	"time"

	"github.com/google/uuid"
)

const (
	TaskStatusDone       = "DONE"
	TaskStatusInProgress = "IN_PROGRESS"
	TaskStatusBlocked    = "BLOCKED"
)

type Task struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Status      string   `json:"status,omitempty"`
	Hours       *float64 `json:"hours,omitempty"`
}

// EodReport is unique per person and report date. SubmittedAt is nil while
// the report is a draft.
type EodReport struct {
	ID          uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	CompanyID   uuid.UUID  `gorm:"column:company_id;type:uuid;not null;uniqueIndex:uq_eod_company_employee_date,priority:1"`
	EmployeeID  uuid.UUID  `gorm:"column:employee_id;type:uuid;not null;uniqueIndex:uq_eod_company_employee_date,priority:2"`
	ReportDate  time.Time  `gorm:"column:report_date;type:date;not null;uniqueIndex:uq_eod_company_employee_date,priority:3;index"`
	Tasks       []Task     `gorm:"column:tasks;type:text;serializer:json"`
	Notes       *string    `gorm:"column:notes;type:text"`
	SubmittedAt *time.Time `gorm:"column:submitted_at"`
	IsLate      bool       `gorm:"column:is_late;not null;default:false"`
	Overridden  bool       `gorm:"column:overridden;not null;default:false"`
	UpdatedBy   *uuid.UUID `gorm:"column:updated_by;type:uuid"`
	CreatedAt   time.Time  `gorm:"column:created_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at"`
}

func (EodReport) TableName() string {
	return "eod_reports"
}

func (r EodReport) IsDraft() bool {
	return r.SubmittedAt == nil
}
