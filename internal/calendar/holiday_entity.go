package calendar

import (
	"time"

	"github.com/google/uuid"
)

type Holiday struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CompanyID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_holiday_company_region_date,priority:1"`
	Region    string     `gorm:"type:varchar(32);not null;uniqueIndex:uq_holiday_company_region_date,priority:2"`
	Date      time.Time  `gorm:"type:date;not null;uniqueIndex:uq_holiday_company_region_date,priority:3"`
	Name      string     `gorm:"type:varchar(120);not null"`
	CreatedBy *uuid.UUID `gorm:"type:uuid"`
	CreatedAt time.Time
}

func (Holiday) TableName() string {
	return "holidays"
}
