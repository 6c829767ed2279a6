package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go-attendance/internal/employee"
	"go-attendance/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader the consumer needs.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
}

type EmployeeDirectory interface {
	FindActiveByCompany(ctx context.Context, companyID string) ([]employee.Employee, error)
}

// ConsumeRemoteWindowOpened fans every window-opened event out to one
// notification request per active employee. A message is committed only
// after its notifications are written, so a crash replays the whole batch.
func ConsumeRemoteWindowOpened(
	ctx context.Context,
	reader MessageReader,
	employees EmployeeDirectory,
	writer MessageWriter,
	topic string,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.remote_window")
	log.Info("remote window consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("remote window consumer stopped")
				return
			}
			log.Error("fetch remote window message failed", zap.Error(err))
			continue
		}

		var event events.RemoteWindowOpenedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode remote window event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}
		if event.EventType != "" && event.EventType != events.RemoteWindowOpenedEventType {
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		sent, err := FanOutRemoteWindowOpened(ctx, event, employees, writer, topic, time.Now().UTC())
		if err != nil {
			log.Error("fan out remote window notification failed",
				zap.String("company_id", event.CompanyID),
				zap.String("request_id", event.RequestID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit remote window message failed", zap.Error(err))
			continue
		}

		log.Info("remote window notifications requested",
			zap.String("company_id", event.CompanyID),
			zap.String("window_start", event.WindowStart),
			zap.String("window_end", event.WindowEnd),
			zap.Int("recipients", sent),
		)
	}
}

// FanOutRemoteWindowOpened writes the notification requests for one event
// and returns how many were written. An empty topic means
// events.NotificationTopic.
func FanOutRemoteWindowOpened(
	ctx context.Context,
	event events.RemoteWindowOpenedEvent,
	employees EmployeeDirectory,
	writer MessageWriter,
	topic string,
	now time.Time,
) (int, error) {
	if topic == "" {
		topic = events.NotificationTopic
	}

	recipients, err := employees.FindActiveByCompany(ctx, event.CompanyID)
	if err != nil {
		return 0, fmt.Errorf("load active employees: %w", err)
	}
	if len(recipients) == 0 {
		return 0, nil
	}

	title := "Remote work window is open"
	body := fmt.Sprintf("Pick up to %d remote day(s) between %s and %s.", event.Limit, event.WindowStart, event.WindowEnd)

	msgs := make([]kafkago.Message, 0, len(recipients))
	for _, emp := range recipients {
		payload, err := json.Marshal(events.NotificationRequestedEvent{
			EventType:  events.NotificationRequestedEventType,
			Kind:       events.NotificationKindRemoteWindowOpen,
			CompanyID:  event.CompanyID,
			EmployeeID: emp.ID.String(),
			Email:      emp.Email,
			Title:      title,
			Body:       body,
			Data: map[string]string{
				"window_start": event.WindowStart,
				"window_end":   event.WindowEnd,
				"frequency":    event.Frequency,
			},
			OccurredAt: now,
		})
		if err != nil {
			return 0, err
		}

		headers := []kafkago.Header{{Key: "event_type", Value: []byte(events.NotificationRequestedEventType)}}
		if event.RequestID != "" {
			headers = append(headers, kafkago.Header{Key: "request_id", Value: []byte(event.RequestID)})
		}

		msgs = append(msgs, kafkago.Message{
			Topic:   topic,
			Key:     []byte(emp.ID.String()),
			Value:   payload,
			Headers: headers,
		})
	}

	if err := writer.WriteMessages(ctx, msgs...); err != nil {
		return 0, fmt.Errorf("write notification requests: %w", err)
	}
	return len(msgs), nil
}
