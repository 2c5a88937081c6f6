package worker

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/talentops/hiring-ops/internal/domain/entity"
)

type mockOutbox struct {
	mu       sync.Mutex
	pending  []*entity.Notification
	statuses map[int64]string
}

func newMockOutbox(pending ...*entity.Notification) *mockOutbox {
	return &mockOutbox{pending: pending, statuses: make(map[int64]string)}
}

func (m *mockOutbox) Create(ctx context.Context, notification *entity.Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pending = append(m.pending, notification)
	return nil
}

func (m *mockOutbox) ListPending(ctx context.Context, limit int) ([]*entity.Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []*entity.Notification
	for _, n := range m.pending {
		if m.statuses[n.ID] == "" && len(out) < limit {
			out = append(out, n)
		}
	}
	return out, nil
}

func (m *mockOutbox) UpdateStatus(ctx context.Context, id int64, status string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.statuses[id] = status
	return nil
}

func (m *mockOutbox) status(id int64) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.statuses[id]
}

func TestDispatcherMarksPendingSent(t *testing.T) {
	outbox := newMockOutbox(
		&entity.Notification{ID: 1, EntityKind: "interview", EntityID: 9, Message: "reminder"},
		&entity.Notification{ID: 2, EntityKind: "assignment", EntityID: 4, Message: "completed"},
	)

	d := NewDispatcher(outbox, time.Hour, 10, zap.NewNop())
	require.NoError(t, d.Start(context.Background()))
	defer d.Stop()

	// First pass runs immediately on Start
	require.Eventually(t, func() bool {
		return outbox.status(1) == entity.NotificationStatusSent &&
			outbox.status(2) == entity.NotificationStatusSent
	}, 2*time.Second, 10*time.Millisecond)
}

func TestDispatcherRejectsDoubleStart(t *testing.T) {
	d := NewDispatcher(newMockOutbox(), time.Hour, 10, zap.NewNop())
	require.NoError(t, d.Start(context.Background()))
	defer d.Stop()

	assert.Error(t, d.Start(context.Background()))
}

func TestManagerStartStopOrder(t *testing.T) {
	m := NewManager(zap.NewNop())
	d1 := NewDispatcher(newMockOutbox(), time.Hour, 10, zap.NewNop())
	d2 := NewDispatcher(newMockOutbox(), time.Hour, 10, zap.NewNop())

	m.Register(d1)
	m.Register(d2)
	require.Equal(t, 2, m.Count())

	require.NoError(t, m.StartAll(context.Background()))
	m.StopAll()

	// Stopped workers can be observed as restartable
	assert.NoError(t, d1.Start(context.Background()))
	d1.Stop()
}
