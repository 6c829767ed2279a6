package employee

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusActive     = "ACTIVE"
	StatusOnboarding = "ONBOARDING"
	StatusTerminated = "TERMINATED"
)

// Employee is the person identity attendance rules are evaluated for. The
// record is owned by the HR module.
type Employee struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CompanyID        uuid.UUID  `gorm:"type:uuid;not null;index"`
	FullName         string     `gorm:"type:varchar(150);not null"`
	Email            string     `gorm:"type:varchar(150);uniqueIndex:uq_employee_email"`
	HireDate         *time.Time `gorm:"type:date"`
	EmploymentStatus string     `gorm:"type:varchar(20);not null;default:'ACTIVE'"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt `gorm:"index"`
}

func (Employee) TableName() string {
	return "employees"
}

func (e Employee) IsActive() bool {
	return e.EmploymentStatus == StatusActive || e.EmploymentStatus == StatusOnboarding
}
