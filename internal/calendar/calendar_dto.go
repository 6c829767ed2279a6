package calendar

type WorkingDayQuery struct {
	EmployeeID string `form:"employee_id" binding:"omitempty,uuid"`
	Date       string `form:"date" binding:"required"`
}

type WorkingDaysQuery struct {
	EmployeeID string `form:"employee_id" binding:"omitempty,uuid"`
	Start      string `form:"start" binding:"required"`
	End        string `form:"end" binding:"required"`
}

type WorkingDayResponse struct {
	EmployeeID   string `json:"employee_id"`
	Date         string `json:"date"`
	IsWorkingDay bool   `json:"is_working_day"`
}

type WorkingDaysResponse struct {
	EmployeeID  string   `json:"employee_id"`
	Start       string   `json:"start"`
	End         string   `json:"end"`
	WorkingDays []string `json:"working_days"`
	Total       int      `json:"total"`
}

type CreateHolidayRequest struct {
	Date   string `json:"date" binding:"required"`
	Name   string `json:"name" binding:"required,max=120"`
	Region string `json:"region" binding:"omitempty,max=32"`
}

type HolidayResponse struct {
	ID     string `json:"id"`
	Date   string `json:"date"`
	Name   string `json:"name"`
	Region string `json:"region"`
}

type ImportHolidaysResponse struct {
	Region   string `json:"region"`
	Total    int    `json:"total"`
	Inserted int64  `json:"inserted"`
	Skipped  int64  `json:"skipped"`
}
