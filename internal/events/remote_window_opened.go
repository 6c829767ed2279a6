package events

import "time"

const (
	RemoteWindowTopic           = "hr.attendance.remote_window.v1"
	RemoteWindowOpenedEventType = "remote_window.opened"
)

type RemoteWindowOpenedEvent struct {
	EventType   string    `json:"event_type"`
	CompanyID   string    `json:"company_id"`
	WindowStart string    `json:"window_start"`
	WindowEnd   string    `json:"window_end"`
	Frequency   string    `json:"frequency"`
	Limit       int       `json:"limit"`
	OpenedBy    string    `json:"opened_by,omitempty"`
	RequestID   string    `json:"request_id,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}
