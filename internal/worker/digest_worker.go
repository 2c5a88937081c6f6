package worker

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/talentops/hiring-ops/internal/application/port"
	"github.com/talentops/hiring-ops/internal/domain/workflow"
)

// DigestWorker runs on a cron schedule and enqueues one digest
// notification summarizing interviews still awaiting an offer decision.
type DigestWorker struct {
	interviewRepo port.InterviewRepository
	notifier      port.Notifier
	logger        *zap.Logger

	schedule string

	mu        sync.Mutex
	isRunning bool
	ctx       context.Context
	cancel    context.CancelFunc
	cron      *cron.Cron
}

// NewDigestWorker creates a digest worker. schedule is a standard cron
// expression, e.g. "0 9 * * *" for 09:00 daily.
func NewDigestWorker(
	interviewRepo port.InterviewRepository,
	notifier port.Notifier,
	schedule string,
	logger *zap.Logger,
) *DigestWorker {
	if schedule == "" {
		schedule = "0 9 * * *"
	}
	return &DigestWorker{
		interviewRepo: interviewRepo,
		notifier:      notifier,
		logger:        logger,
		schedule:      schedule,
	}
}

// Start schedules the digest job
func (w *DigestWorker) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.isRunning {
		return fmt.Errorf("digest worker is already running")
	}

	w.ctx, w.cancel = context.WithCancel(ctx)
	w.cron = cron.New()

	if _, err := w.cron.AddFunc(w.schedule, w.runDigest); err != nil {
		return fmt.Errorf("invalid digest schedule %q: %w", w.schedule, err)
	}

	w.cron.Start()
	w.isRunning = true

	w.logger.Info("DigestWorker started", zap.String("schedule", w.schedule))
	return nil
}

// Stop stops the digest worker, waiting for a running job to finish
func (w *DigestWorker) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.isRunning {
		return
	}
	w.isRunning = false
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		<-w.cron.Stop().Done()
	}
	w.logger.Info("DigestWorker stopped")
}

// Name returns the worker name for identification
func (w *DigestWorker) Name() string {
	return "DigestWorker"
}

func (w *DigestWorker) runDigest() {
	ctx, cancel := context.WithTimeout(w.ctx, 30*time.Second)
	defer cancel()

	interviews, err := w.interviewRepo.ListPendingAcceptance(ctx)
	if err != nil {
		w.logger.Error("Failed to list pending acceptances", zap.Error(err))
		return
	}
	if len(interviews) == 0 {
		w.logger.Debug("No pending acceptances for digest")
		return
	}

	ids := make([]string, 0, len(interviews))
	for _, interview := range interviews {
		ids = append(ids, interview.PublicID)
	}

	message := fmt.Sprintf("%d interview(s) awaiting an offer decision: %s",
		len(interviews), strings.Join(ids, ", "))

	if err := w.notifier.Notify(ctx, workflow.KindAcceptance.String(), 0, message); err != nil {
		w.logger.Error("Failed to enqueue acceptance digest", zap.Error(err))
		return
	}

	w.logger.Info("Acceptance digest enqueued", zap.Int("pending", len(interviews)))
}
