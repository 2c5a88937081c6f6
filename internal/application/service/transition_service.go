package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/talentops/hiring-ops/internal/application/port"
	"github.com/talentops/hiring-ops/internal/domain/entity"
	"github.com/talentops/hiring-ops/internal/domain/workflow"
)

// CascadeEffect describes one related-entity write applied by a transition
type CascadeEffect struct {
	Entity string `json:"entity"`
	Action string `json:"action"`
}

// TransitionOutcome is what a successful status change reports back to the
// caller: the new status and a human-readable account of what else changed.
type TransitionOutcome struct {
	EntityKind string          `json:"entity_kind"`
	EntityID   int64           `json:"entity_id"`
	FromStatus string          `json:"from_status"`
	ToStatus   string          `json:"to_status"`
	Summary    string          `json:"summary"`
	Cascades   []CascadeEffect `json:"cascades,omitempty"`
}

// TransitionService is the authoritative enforcement point for status
// changes. Clients render their selection controls from the same registry
// this service validates against, so there is one source of truth for the
// state graphs.
type TransitionService interface {
	// Transition validates and applies a status change, runs the declared
	// cascades, and records the change for audit views.
	Transition(ctx context.Context, kind workflow.EntityKind, id int64, to workflow.StatusKey) (*TransitionOutcome, error)
}

type transitionService struct {
	registry    *workflow.Registry
	interviews  port.InterviewRepository
	jobs        port.JobRepository
	projects    port.ProjectRepository
	assignments port.AssignmentRepository
	tasks       port.AnnotationTaskRepository
	changes     port.StatusChangeRepository
	cascades    *CascadeExecutor
	logger      *zap.Logger
}

// NewTransitionService creates the transition service
func NewTransitionService(
	registry *workflow.Registry,
	interviews port.InterviewRepository,
	jobs port.JobRepository,
	projects port.ProjectRepository,
	assignments port.AssignmentRepository,
	tasks port.AnnotationTaskRepository,
	changes port.StatusChangeRepository,
	cascades *CascadeExecutor,
	logger *zap.Logger,
) TransitionService {
	return &transitionService{
		registry:    registry,
		interviews:  interviews,
		jobs:        jobs,
		projects:    projects,
		assignments: assignments,
		tasks:       tasks,
		changes:     changes,
		cascades:    cascades,
		logger:      logger,
	}
}

func (s *transitionService) Transition(ctx context.Context, kind workflow.EntityKind, id int64, to workflow.StatusKey) (*TransitionOutcome, error) {
	from, target, persist, err := s.resolve(ctx, kind, id)
	if err != nil {
		return nil, err
	}

	result := s.registry.ValidateTransition(kind, from, to)
	if !result.Valid {
		return nil, result.Err
	}

	if from != to {
		if err := persist(ctx, to.String()); err != nil {
			return nil, fmt.Errorf("failed to persist %s status: %w", kind, err)
		}
		if err := s.cascades.Execute(ctx, kind, to, target); err != nil {
			return nil, err
		}
	}

	outcome := &TransitionOutcome{
		EntityKind: kind.String(),
		EntityID:   id,
		FromStatus: from.String(),
		ToStatus:   to.String(),
		Summary:    s.registry.ChangeSummary(kind, from, to),
	}
	for _, related := range s.registry.CascadeEntities(kind, to) {
		if action, ok := s.registry.CascadeAction(kind, to, related); ok {
			outcome.Cascades = append(outcome.Cascades, CascadeEffect{
				Entity: related.String(),
				Action: action.String(),
			})
		}
	}

	if from != to {
		change := &entity.StatusChange{
			EntityKind: kind.String(),
			EntityID:   id,
			FromStatus: from.String(),
			ToStatus:   to.String(),
			Summary:    outcome.Summary,
		}
		if err := s.changes.Create(ctx, change); err != nil {
			// Audit rows are best effort; the transition itself stands.
			s.logger.Error("failed to record status change",
				zap.String("kind", kind.String()),
				zap.Int64("id", id),
				zap.Error(err))
		}
	}

	s.logger.Info("status transition applied",
		zap.String("kind", kind.String()),
		zap.Int64("id", id),
		zap.String("from", from.String()),
		zap.String("to", to.String()))

	return outcome, nil
}

// persistFunc writes the new status for the already-resolved entity
type persistFunc func(ctx context.Context, status string) error

// resolve loads the entity behind (kind, id) and returns its current
// status in the governing workflow, the identifiers cascades need, and the
// status writer.
func (s *transitionService) resolve(ctx context.Context, kind workflow.EntityKind, id int64) (workflow.StatusKey, CascadeTarget, persistFunc, error) {
	switch kind {
	case workflow.KindInterview, workflow.KindAcceptance:
		iv, err := s.interviews.GetByID(ctx, id)
		if err != nil {
			return "", CascadeTarget{}, nil, err
		}
		if iv == nil {
			return "", CascadeTarget{}, nil, fmt.Errorf("%w: interview %d", ErrNotFound, id)
		}
		job, err := s.jobs.GetByID(ctx, iv.JobID)
		if err != nil {
			return "", CascadeTarget{}, nil, err
		}
		target := CascadeTarget{
			InterviewID: iv.ID,
			CandidateID: iv.CandidateID,
			JobID:       iv.JobID,
		}
		if job != nil {
			target.ProjectID = job.ProjectID
		}
		if kind == workflow.KindInterview {
			return workflow.StatusKey(iv.Status), target, func(ctx context.Context, status string) error {
				return s.interviews.UpdateStatus(ctx, id, status)
			}, nil
		}
		return workflow.StatusKey(iv.AcceptanceStatus), target, func(ctx context.Context, status string) error {
			return s.interviews.UpdateAcceptanceStatus(ctx, id, status)
		}, nil

	case workflow.KindJob:
		job, err := s.jobs.GetByID(ctx, id)
		if err != nil {
			return "", CascadeTarget{}, nil, err
		}
		if job == nil {
			return "", CascadeTarget{}, nil, fmt.Errorf("%w: job %d", ErrNotFound, id)
		}
		target := CascadeTarget{JobID: job.ID, ProjectID: job.ProjectID}
		return workflow.StatusKey(job.Status), target, func(ctx context.Context, status string) error {
			return s.jobs.UpdateStatus(ctx, id, status)
		}, nil

	case workflow.KindProject:
		project, err := s.projects.GetByID(ctx, id)
		if err != nil {
			return "", CascadeTarget{}, nil, err
		}
		if project == nil {
			return "", CascadeTarget{}, nil, fmt.Errorf("%w: project %d", ErrNotFound, id)
		}
		target := CascadeTarget{ProjectID: project.ID}
		return workflow.StatusKey(project.Status), target, func(ctx context.Context, status string) error {
			return s.projects.UpdateStatus(ctx, id, status)
		}, nil

	case workflow.KindAssignment:
		assignment, err := s.assignments.GetByID(ctx, id)
		if err != nil {
			return "", CascadeTarget{}, nil, err
		}
		if assignment == nil {
			return "", CascadeTarget{}, nil, fmt.Errorf("%w: assignment %d", ErrNotFound, id)
		}
		target := CascadeTarget{
			AssignmentID: assignment.ID,
			CandidateID:  assignment.CandidateID,
			ProjectID:    assignment.ProjectID,
		}
		return workflow.StatusKey(assignment.Status), target, func(ctx context.Context, status string) error {
			return s.assignments.UpdateStatus(ctx, id, status)
		}, nil

	case workflow.KindAnnotationTask:
		task, err := s.tasks.GetByID(ctx, id)
		if err != nil {
			return "", CascadeTarget{}, nil, err
		}
		if task == nil {
			return "", CascadeTarget{}, nil, fmt.Errorf("%w: annotation task %d", ErrNotFound, id)
		}
		target := CascadeTarget{ProjectID: task.ProjectID}
		if task.AssignmentID != nil {
			target.AssignmentID = *task.AssignmentID
		}
		return workflow.StatusKey(task.Status), target, func(ctx context.Context, status string) error {
			return s.tasks.UpdateStatus(ctx, id, status)
		}, nil

	default:
		return "", CascadeTarget{}, nil, fmt.Errorf("%w: %s", workflow.ErrUnknownWorkflow, kind)
	}
}
