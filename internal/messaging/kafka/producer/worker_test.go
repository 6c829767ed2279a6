package producer_test

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"go-attendance/internal/messaging/kafka"
	"go-attendance/internal/messaging/kafka/producer"
	"go-attendance/internal/shared/connection"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeWriter struct {
	mu        sync.Mutex
	failTopic string
	messages  []kafkago.Message
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafkago.Message) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, m := range msgs {
		if m.Topic == w.failTopic {
			return errors.New("leader not available")
		}
		w.messages = append(w.messages, m)
	}
	return nil
}

func TestProcessPendingEvents(t *testing.T) {
	ctx := context.Background()

	db, err := connection.OpenSQLite(filepath.Join(t.TempDir(), "outbox.db"))
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&kafka.OutboxEvent{}))
	sqlDB, _ := db.DB()
	defer sqlDB.Close()

	repo := kafka.NewOutboxRepository(db)
	ok := kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     "req-1",
		AggregateType: "remote_window",
		AggregateID:   "company-1",
		EventType:     "remote_window.opened",
		Topic:         "hr.attendance.remote_window.v1",
		Payload:       []byte(`{"company_id":"company-1"}`),
	}
	bad := ok
	bad.ID = uuid.NewString()
	bad.Topic = "broken.topic"
	require.NoError(t, repo.Create(ctx, ok))
	require.NoError(t, repo.Create(ctx, bad))

	writer := &fakeWriter{failTopic: "broken.topic"}
	sent, err := producer.ProcessPendingEvents(ctx, repo, writer, zap.NewNop(), 10)

	require.NoError(t, err)
	assert.Equal(t, 1, sent)
	require.Len(t, writer.messages, 1)
	msg := writer.messages[0]
	assert.Equal(t, []byte("company-1"), msg.Key)
	assert.Equal(t, "hr.attendance.remote_window.v1", msg.Topic)
	require.Len(t, msg.Headers, 3)
	assert.Equal(t, "request_id", msg.Headers[2].Key)

	// Nothing is due again until the failed event's backoff passes.
	sent, err = producer.ProcessPendingEvents(ctx, repo, writer, zap.NewNop(), 10)
	require.NoError(t, err)
	assert.Equal(t, 0, sent)
}
