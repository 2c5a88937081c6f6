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

// CreateAssignmentRequest places a candidate on a project directly,
// outside the acceptance cascade (ops escape hatch).
type CreateAssignmentRequest struct {
	CandidateID int64 `json:"candidate_id"`
	ProjectID   int64 `json:"project_id"`
}

// AssignmentService manages candidate-project assignments. Status changes
// go through the transition service.
type AssignmentService interface {
	Create(ctx context.Context, req CreateAssignmentRequest) (*entity.Assignment, error)
	Get(ctx context.Context, id int64) (*entity.Assignment, error)
	List(ctx context.Context, filter port.ListFilter) ([]*entity.Assignment, error)
}

type assignmentService struct {
	repo       port.AssignmentRepository
	candidates port.CandidateRepository
	projects   port.ProjectRepository
	logger     *zap.Logger
}

// NewAssignmentService creates an assignment service
func NewAssignmentService(
	repo port.AssignmentRepository,
	candidates port.CandidateRepository,
	projects port.ProjectRepository,
	logger *zap.Logger,
) AssignmentService {
	return &assignmentService{repo: repo, candidates: candidates, projects: projects, logger: logger}
}

func (s *assignmentService) Create(ctx context.Context, req CreateAssignmentRequest) (*entity.Assignment, error) {
	candidate, err := s.candidates.GetByID(ctx, req.CandidateID)
	if err != nil {
		return nil, err
	}
	if candidate == nil {
		return nil, fmt.Errorf("%w: candidate %d", ErrNotFound, req.CandidateID)
	}
	project, err := s.projects.GetByID(ctx, req.ProjectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, fmt.Errorf("%w: project %d", ErrNotFound, req.ProjectID)
	}

	existing, err := s.repo.GetByCandidateAndProject(ctx, req.CandidateID, req.ProjectID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: candidate %d already assigned to project %d", ErrInvalidInput, req.CandidateID, req.ProjectID)
	}

	assignment := &entity.Assignment{
		PublicID:    uuid.NewString(),
		CandidateID: req.CandidateID,
		ProjectID:   req.ProjectID,
		Status:      initialStatus(workflow.KindAssignment),
	}
	if err := s.repo.Create(ctx, assignment); err != nil {
		return nil, fmt.Errorf("failed to create assignment: %w", err)
	}

	s.logger.Info("assignment created",
		zap.Int64("id", assignment.ID),
		zap.Int64("candidate_id", req.CandidateID),
		zap.Int64("project_id", req.ProjectID))
	return assignment, nil
}

func (s *assignmentService) Get(ctx context.Context, id int64) (*entity.Assignment, error) {
	assignment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if assignment == nil {
		return nil, fmt.Errorf("%w: assignment %d", ErrNotFound, id)
	}
	return assignment, nil
}

func (s *assignmentService) List(ctx context.Context, filter port.ListFilter) ([]*entity.Assignment, error) {
	return s.repo.List(ctx, filter)
}
