package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/talentops/hiring-ops/internal/application/port"
	"github.com/talentops/hiring-ops/internal/domain/workflow"
)

// ReminderPoller periodically scans for interviews starting soon and
// enqueues a reminder notification for each one, once.
type ReminderPoller struct {
	interviewRepo port.InterviewRepository
	notifier      port.Notifier
	logger        *zap.Logger

	pollInterval time.Duration
	lookahead    time.Duration

	mu        sync.Mutex
	isRunning bool
	ctx       context.Context
	cancel    context.CancelFunc
	reminded  map[int64]bool
}

// NewReminderPoller creates a new reminder poller
func NewReminderPoller(
	interviewRepo port.InterviewRepository,
	notifier port.Notifier,
	pollInterval time.Duration,
	lookahead time.Duration,
	logger *zap.Logger,
) *ReminderPoller {
	if pollInterval <= 0 {
		pollInterval = time.Minute
	}
	if lookahead <= 0 {
		lookahead = 24 * time.Hour
	}
	return &ReminderPoller{
		interviewRepo: interviewRepo,
		notifier:      notifier,
		logger:        logger,
		pollInterval:  pollInterval,
		lookahead:     lookahead,
		reminded:      make(map[int64]bool),
	}
}

// Start starts the reminder polling worker
func (p *ReminderPoller) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.isRunning {
		return fmt.Errorf("reminder poller is already running")
	}

	p.ctx, p.cancel = context.WithCancel(ctx)
	p.isRunning = true

	p.logger.Info("ReminderPoller started",
		zap.Duration("poll_interval", p.pollInterval),
		zap.Duration("lookahead", p.lookahead))

	go p.pollLoop()
	return nil
}

// Stop stops the reminder polling worker
func (p *ReminderPoller) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.isRunning {
		return
	}
	p.isRunning = false
	if p.cancel != nil {
		p.cancel()
	}
	p.logger.Info("ReminderPoller stopped")
}

// Name returns the worker name for identification
func (p *ReminderPoller) Name() string {
	return "ReminderPoller"
}

func (p *ReminderPoller) pollLoop() {
	ticker := time.NewTicker(p.pollInterval)
	defer ticker.Stop()

	p.pollReminders()

	for {
		select {
		case <-p.ctx.Done():
			return
		case <-ticker.C:
			p.pollReminders()
		}
	}
}

func (p *ReminderPoller) pollReminders() {
	ctx, cancel := context.WithTimeout(p.ctx, 10*time.Second)
	defer cancel()

	interviews, err := p.interviewRepo.ListUpcoming(ctx, p.lookahead)
	if err != nil {
		p.logger.Error("Failed to list upcoming interviews", zap.Error(err))
		return
	}

	sent := 0
	for _, interview := range interviews {
		p.mu.Lock()
		already := p.reminded[interview.ID]
		p.mu.Unlock()
		if already {
			continue
		}

		message := fmt.Sprintf("Interview %s is scheduled at %s",
			interview.PublicID,
			interview.ScheduledAt.Format(time.RFC3339))

		if err := p.notifier.Notify(ctx, workflow.KindInterview.String(), interview.ID, message); err != nil {
			p.logger.Error("Failed to enqueue interview reminder",
				zap.Int64("interview_id", interview.ID),
				zap.Error(err))
			continue
		}

		p.mu.Lock()
		p.reminded[interview.ID] = true
		p.mu.Unlock()
		sent++
	}

	if sent > 0 {
		p.logger.Info("Interview reminders enqueued", zap.Int("count", sent))
	}
}
