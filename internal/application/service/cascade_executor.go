package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/talentops/hiring-ops/internal/application/port"
	"github.com/talentops/hiring-ops/internal/domain/entity"
	"github.com/talentops/hiring-ops/internal/domain/workflow"
)

// CascadeTarget carries the identifiers of the entity that just changed
// status, resolved far enough for the cascade writes to find their related
// rows. Fields irrelevant to the entity kind stay zero.
type CascadeTarget struct {
	InterviewID  int64
	CandidateID  int64
	JobID        int64
	ProjectID    int64
	AssignmentID int64
}

// CascadeExecutor performs the related-entity writes the cascade rule table
// declares. The validator decides what happens; this decides how.
type CascadeExecutor struct {
	registry    *workflow.Registry
	interviews  port.InterviewRepository
	assignments port.AssignmentRepository
	tasks       port.AnnotationTaskRepository
	notifier    port.Notifier
	logger      *zap.Logger
}

// NewCascadeExecutor creates a cascade executor over the given registry
func NewCascadeExecutor(
	registry *workflow.Registry,
	interviews port.InterviewRepository,
	assignments port.AssignmentRepository,
	tasks port.AnnotationTaskRepository,
	notifier port.Notifier,
	logger *zap.Logger,
) *CascadeExecutor {
	return &CascadeExecutor{
		registry:    registry,
		interviews:  interviews,
		assignments: assignments,
		tasks:       tasks,
		notifier:    notifier,
		logger:      logger,
	}
}

// Execute applies every cascade rule declared for the entity kind landing
// on the given status. Rules run in the order the status node declares its
// cascade targets.
func (e *CascadeExecutor) Execute(ctx context.Context, kind workflow.EntityKind, status workflow.StatusKey, target CascadeTarget) error {
	for _, related := range e.registry.CascadeEntities(kind, status) {
		action, ok := e.registry.CascadeAction(kind, status, related)
		if !ok {
			// Node declares a cascade target but the rule table has no
			// action for it. Registry validation should prevent this.
			e.logger.Warn("cascade target without action rule",
				zap.String("kind", kind.String()),
				zap.String("status", status.String()),
				zap.String("related", related.String()))
			continue
		}

		if err := e.apply(ctx, kind, status, related, action, target); err != nil {
			return fmt.Errorf("cascade %s -> %s %s: %w", kind, related, action, err)
		}

		e.logger.Info("cascade applied",
			zap.String("kind", kind.String()),
			zap.String("status", status.String()),
			zap.String("related", related.String()),
			zap.String("action", action.String()))
	}
	return nil
}

func (e *CascadeExecutor) apply(ctx context.Context, kind workflow.EntityKind, status workflow.StatusKey, related workflow.EntityKind, action workflow.ActionKind, target CascadeTarget) error {
	switch related {
	case workflow.KindAcceptance:
		return e.applyAcceptance(ctx, action, target)
	case workflow.KindAssignment:
		return e.applyAssignment(ctx, kind, status, action, target)
	case workflow.KindAnnotationTask:
		return e.applyAnnotationTask(ctx, kind, action, target)
	case workflow.KindInterview:
		return e.applyInterview(ctx, action, target)
	default:
		return fmt.Errorf("no cascade handler for related kind %q", related)
	}
}

// applyAcceptance opens the hiring decision once an interview completes
func (e *CascadeExecutor) applyAcceptance(ctx context.Context, action workflow.ActionKind, target CascadeTarget) error {
	switch action {
	case workflow.ActionCreateOrActivate:
		return e.interviews.UpdateAcceptanceStatus(ctx, target.InterviewID, workflow.AcceptancePending.String())
	default:
		return fmt.Errorf("unsupported acceptance action %q", action)
	}
}

func (e *CascadeExecutor) applyAssignment(ctx context.Context, kind workflow.EntityKind, status workflow.StatusKey, action workflow.ActionKind, target CascadeTarget) error {
	switch action {
	case workflow.ActionCreateOrActivate:
		existing, err := e.assignments.GetByCandidateAndProject(ctx, target.CandidateID, target.ProjectID)
		if err != nil {
			return err
		}
		if existing == nil {
			return e.assignments.Create(ctx, &entity.Assignment{
				PublicID:    uuid.NewString(),
				CandidateID: target.CandidateID,
				ProjectID:   target.ProjectID,
				Status:      workflow.AssignmentActive.String(),
			})
		}
		if existing.Status == workflow.AssignmentActive.String() {
			return nil
		}
		return e.assignments.UpdateStatus(ctx, existing.ID, workflow.AssignmentActive.String())

	case workflow.ActionRemove:
		existing, err := e.assignments.GetByCandidateAndProject(ctx, target.CandidateID, target.ProjectID)
		if err != nil {
			return err
		}
		if existing == nil {
			return nil
		}
		return e.assignments.UpdateStatus(ctx, existing.ID, workflow.AssignmentRemoved.String())

	case workflow.ActionRemoveAll:
		return e.assignments.RemoveAllByProjectID(ctx, target.ProjectID)

	case workflow.ActionNotify:
		message := fmt.Sprintf("%s reached %q", titleForNotify(kind), e.registry.StatusLabel(kind, status))
		return e.notifier.Notify(ctx, workflow.KindAssignment.String(), target.AssignmentID, message)

	default:
		return fmt.Errorf("unsupported assignment action %q", action)
	}
}

func (e *CascadeExecutor) applyAnnotationTask(ctx context.Context, kind workflow.EntityKind, action workflow.ActionKind, target CascadeTarget) error {
	// Assignment cascades scope to that assignment's tasks; job and
	// project cascades scope to the whole project.
	byAssignment := kind == workflow.KindAssignment

	switch action {
	case workflow.ActionCompleteAll:
		if byAssignment {
			return e.tasks.CompleteAllByAssignmentID(ctx, target.AssignmentID)
		}
		return e.tasks.CompleteAllByProjectID(ctx, target.ProjectID)
	case workflow.ActionRemoveAll:
		if byAssignment {
			return e.tasks.RemoveAllByAssignmentID(ctx, target.AssignmentID)
		}
		return e.tasks.RemoveAllByProjectID(ctx, target.ProjectID)
	default:
		return fmt.Errorf("unsupported annotation task action %q", action)
	}
}

func titleForNotify(kind workflow.EntityKind) string {
	switch kind {
	case workflow.KindAnnotationTask:
		return "An annotation task"
	default:
		return "A related " + kind.String()
	}
}

func (e *CascadeExecutor) applyInterview(ctx context.Context, action workflow.ActionKind, target CascadeTarget) error {
	switch action {
	case workflow.ActionRemoveAll:
		return e.interviews.CancelScheduledByJobID(ctx, target.JobID)
	default:
		return fmt.Errorf("unsupported interview action %q", action)
	}
}
