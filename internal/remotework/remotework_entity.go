package remotework

import (
	"time"

	"github.com/google/uuid"
)

type RemoteWorkLog struct {
	ID         uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	CompanyID  uuid.UUID  `gorm:"column:company_id;type:uuid;not null;uniqueIndex:uq_remote_log_company_employee_date,priority:1"`
	EmployeeID uuid.UUID  `gorm:"column:employee_id;type:uuid;not null;uniqueIndex:uq_remote_log_company_employee_date,priority:2"`
	WorkDate   time.Time  `gorm:"column:work_date;type:date;not null;uniqueIndex:uq_remote_log_company_employee_date,priority:3"`
	Reason     *string    `gorm:"column:reason;type:text"`
	CreatedBy  *uuid.UUID `gorm:"column:created_by;type:uuid"`
	CreatedAt  time.Time  `gorm:"column:created_at"`
}

func (RemoteWorkLog) TableName() string {
	return "remote_work_logs"
}
