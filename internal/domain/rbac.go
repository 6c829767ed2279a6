package domain

type EnforceRequest struct {
	Role      string `json:"role" binding:"required"`
	CompanyID string `json:"company_id" binding:"required"`
	Resource  string `json:"resource" binding:"required"`
	Action    string `json:"action" binding:"required"`
}

type EnforceResponse struct {
	Allowed bool `json:"allowed"`
}

const (
	RoleEmployee   = "EMPLOYEE"
	RoleManager    = "MANAGER"
	RoleHR         = "HR"
	RoleAdmin      = "ADMIN"
	RoleSuperAdmin = "SUPER_ADMIN"
)

const (
	ResourceAttendance   = "attendance"
	ResourceEodReport    = "eod_report"
	ResourceRemoteWork   = "remote_work"
	ResourceRemoteWindow = "remote_window"
	ResourceSettings     = "settings"
	ResourceHoliday      = "holiday"
	ResourceCalendar     = "calendar"
	ResourceCompliance   = "compliance"
)

const (
	ActionCreate   = "create"
	ActionRead     = "read"
	ActionReadAll  = "read_all"
	ActionUpdate   = "update"
	ActionManage   = "manage"
	ActionOverride = "override"
)
