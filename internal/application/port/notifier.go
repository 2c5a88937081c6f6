package port

import "context"

// Notifier queues an outbound message about an entity. The notify cascade
// and the background workers publish through this.
type Notifier interface {
	Notify(ctx context.Context, entityKind string, entityID int64, message string) error
}
