package kafka

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"go-attendance/internal/shared/connection"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupOutbox(t *testing.T) (*outboxRepository, *time.Time) {
	t.Helper()

	db, err := connection.OpenSQLite(filepath.Join(t.TempDir(), "outbox.db"))
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&OutboxEvent{}))
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	now := time.Date(2024, 11, 18, 9, 0, 0, 0, time.UTC)
	repo := &outboxRepository{db: db, now: func() time.Time { return now }}
	return repo, &now
}

func newEvent(topic string) OutboxEvent {
	return OutboxEvent{
		ID:            uuid.NewString(),
		AggregateType: "remote_window",
		AggregateID:   uuid.NewString(),
		EventType:     "remote_window.opened",
		Topic:         topic,
		Payload:       []byte(`{"ok":true}`),
	}
}

func TestOutboxRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	repo, now := setupOutbox(t)

	first := newEvent("hr.attendance.remote_window.v1")
	second := newEvent("hr.attendance.remote_window.v1")
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	pending, err := repo.ListPending(ctx, 10)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, OutboxStatusPending, pending[0].Status)

	require.NoError(t, repo.MarkSent(ctx, first.ID))
	require.NoError(t, repo.MarkFailed(ctx, second.ID, "broker unavailable"))

	pending, err = repo.ListPending(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, pending, "failed event waits for its backoff")

	*now = now.Add(15 * time.Second)
	pending, err = repo.ListPending(ctx, 10)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, second.ID, pending[0].ID)
	assert.Equal(t, 1, pending[0].RetryCount)
	require.NotNil(t, pending[0].ErrorMessage)
	assert.Equal(t, "broker unavailable", *pending[0].ErrorMessage)

	// The second failure backs off two steps.
	require.NoError(t, repo.MarkFailed(ctx, second.ID, "still down"))
	*now = now.Add(29 * time.Second)
	pending, err = repo.ListPending(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestOutboxRepository_RollbackDiscardsEvent(t *testing.T) {
	ctx := context.Background()
	repo, _ := setupOutbox(t)

	sqlDB, err := repo.db.DB()
	require.NoError(t, err)

	tx, err := sqlDB.BeginTx(ctx, nil)
	require.NoError(t, err)
	require.NoError(t, repo.WithTx(tx).Create(ctx, newEvent("topic")))
	require.NoError(t, tx.Rollback())

	pending, err := repo.ListPending(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestValidateOutboxEvent(t *testing.T) {
	ev := newEvent("topic")
	ev.Status = OutboxStatusPending
	assert.NoError(t, ValidateOutboxEvent(ev))

	ev.Topic = ""
	assert.EqualError(t, ValidateOutboxEvent(ev), "outbox topic is required")

	ev = newEvent("topic")
	ev.Status = "weird"
	assert.EqualError(t, ValidateOutboxEvent(ev), "invalid outbox status: weird")
}
