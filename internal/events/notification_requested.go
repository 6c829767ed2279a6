package events

import "time"

const (
	NotificationTopic                = "hr.notification.requested.v1"
	NotificationRequestedEventType   = "notification.requested"
	NotificationKindRemoteWindowOpen = "REMOTE_WINDOW_OPENED"
)

// NotificationRequestedEvent asks the notification service to reach one
// employee. Delivery channels are decided downstream.
type NotificationRequestedEvent struct {
	EventType  string            `json:"event_type"`
	Kind       string            `json:"kind"`
	CompanyID  string            `json:"company_id"`
	EmployeeID string            `json:"employee_id"`
	Email      string            `json:"email,omitempty"`
	Title      string            `json:"title"`
	Body       string            `json:"body"`
	Data       map[string]string `json:"data,omitempty"`
	OccurredAt time.Time         `json:"occurred_at"`
}
