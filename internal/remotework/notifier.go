package remotework

import (
	"context"
	"encoding/json"
	"time"

	"go-attendance/internal/calendar"
	"go-attendance/internal/events"
	"go-attendance/internal/messaging/kafka"
	"go-attendance/internal/settings"
	"go-attendance/internal/shared/contextutil"

	"github.com/google/uuid"
)

// Notifier announces that a remote work window opened.
type Notifier interface {
	RemoteWindowOpened(ctx context.Context, companyID, openedBy string, window settings.RemoteWindow, bounds calendar.Period) error
}

type outboxNotifier struct {
	outbox kafka.OutboxRepository
	topic  string
	now    func() time.Time
}

// NewOutboxNotifier stores the announcement in the outbox; the producer
// worker publishes it and the consumer fans it out to employees.
func NewOutboxNotifier(outbox kafka.OutboxRepository, topic string) Notifier {
	if topic == "" {
		topic = events.RemoteWindowTopic
	}
	return &outboxNotifier{outbox: outbox, topic: topic, now: time.Now}
}

func (n *outboxNotifier) RemoteWindowOpened(ctx context.Context, companyID, openedBy string, window settings.RemoteWindow, bounds calendar.Period) error {
	requestID := contextutil.GetRequestID(ctx)
	payload, err := json.Marshal(events.RemoteWindowOpenedEvent{
		EventType:   events.RemoteWindowOpenedEventType,
		CompanyID:   companyID,
		WindowStart: calendar.FormatDate(bounds.Start),
		WindowEnd:   calendar.FormatDate(bounds.End),
		Frequency:   string(window.Frequency),
		Limit:       window.Limit,
		OpenedBy:    openedBy,
		RequestID:   requestID,
		OccurredAt:  n.now().UTC(),
	})
	if err != nil {
		return err
	}

	return n.outbox.Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     requestID,
		AggregateType: "remote_window",
		AggregateID:   companyID,
		EventType:     events.RemoteWindowOpenedEventType,
		Topic:         n.topic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}
