package notification

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/talentops/hiring-ops/internal/application/port"
	"github.com/talentops/hiring-ops/internal/domain/entity"
)

// QueueNotifier records notifications in the outbox table for later delivery
type QueueNotifier struct {
	repo   port.NotificationRepository
	logger *zap.Logger
}

// NewQueueNotifier creates a queue-backed notifier
func NewQueueNotifier(repo port.NotificationRepository, logger *zap.Logger) port.Notifier {
	return &QueueNotifier{repo: repo, logger: logger}
}

// Notify enqueues one notification in pending state
func (n *QueueNotifier) Notify(ctx context.Context, entityKind string, entityID int64, message string) error {
	notification := &entity.Notification{
		EntityKind: entityKind,
		EntityID:   entityID,
		Message:    message,
		Status:     entity.NotificationStatusPending,
	}

	if err := n.repo.Create(ctx, notification); err != nil {
		return fmt.Errorf("failed to enqueue notification: %w", err)
	}

	n.logger.Info("Notification enqueued",
		zap.String("entity_kind", entityKind),
		zap.Int64("entity_id", entityID))
	return nil
}
