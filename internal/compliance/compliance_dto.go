package compliance

type MissingReportsQuery struct {
	Start string `form:"start"`
	End   string `form:"end"`
}

type MissingReportsResponse struct {
	EmployeeID   string   `json:"employee_id"`
	FullName     string   `json:"full_name,omitempty"`
	Start        *string  `json:"start,omitempty"`
	End          *string  `json:"end,omitempty"`
	Missing      int      `json:"missing"`
	MissingDates []string `json:"missing_dates"`
}
