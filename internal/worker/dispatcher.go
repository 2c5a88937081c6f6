package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/talentops/hiring-ops/internal/application/port"
	"github.com/talentops/hiring-ops/internal/domain/entity"
)

// Dispatcher drains the notification outbox, delivering each pending
// notification and recording the outcome.
type Dispatcher struct {
	notificationRepo port.NotificationRepository
	logger           *zap.Logger

	pollInterval time.Duration
	batchSize    int

	mu        sync.Mutex
	isRunning bool
	ctx       context.Context
	cancel    context.CancelFunc
}

// NewDispatcher creates a notification dispatcher
func NewDispatcher(
	notificationRepo port.NotificationRepository,
	pollInterval time.Duration,
	batchSize int,
	logger *zap.Logger,
) *Dispatcher {
	if pollInterval <= 0 {
		pollInterval = 15 * time.Second
	}
	if batchSize <= 0 {
		batchSize = 50
	}
	return &Dispatcher{
		notificationRepo: notificationRepo,
		logger:           logger,
		pollInterval:     pollInterval,
		batchSize:        batchSize,
	}
}

// Start starts the dispatch loop
func (d *Dispatcher) Start(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.isRunning {
		return fmt.Errorf("dispatcher is already running")
	}

	d.ctx, d.cancel = context.WithCancel(ctx)
	d.isRunning = true

	d.logger.Info("Dispatcher started",
		zap.Duration("poll_interval", d.pollInterval),
		zap.Int("batch_size", d.batchSize))

	go d.dispatchLoop()
	return nil
}

// Stop stops the dispatch loop
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.isRunning {
		return
	}
	d.isRunning = false
	if d.cancel != nil {
		d.cancel()
	}
	d.logger.Info("Dispatcher stopped")
}

// Name returns the worker name for identification
func (d *Dispatcher) Name() string {
	return "Dispatcher"
}

func (d *Dispatcher) dispatchLoop() {
	ticker := time.NewTicker(d.pollInterval)
	defer ticker.Stop()

	d.dispatchPending()

	for {
		select {
		case <-d.ctx.Done():
			return
		case <-ticker.C:
			d.dispatchPending()
		}
	}
}

func (d *Dispatcher) dispatchPending() {
	ctx, cancel := context.WithTimeout(d.ctx, 10*time.Second)
	defer cancel()

	pending, err := d.notificationRepo.ListPending(ctx, d.batchSize)
	if err != nil {
		d.logger.Error("Failed to list pending notifications", zap.Error(err))
		return
	}

	for _, notification := range pending {
		// Delivery target is the application log. A mail or chat
		// integration would slot in here.
		d.logger.Info("Notification delivered",
			zap.String("entity_kind", notification.EntityKind),
			zap.Int64("entity_id", notification.EntityID),
			zap.String("message", notification.Message))

		if err := d.notificationRepo.UpdateStatus(ctx, notification.ID, entity.NotificationStatusSent); err != nil {
			d.logger.Error("Failed to mark notification sent",
				zap.Int64("id", notification.ID),
				zap.Error(err))
		}
	}

	if len(pending) > 0 {
		d.logger.Info("Notification batch dispatched", zap.Int("count", len(pending)))
	}
}
