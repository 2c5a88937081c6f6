package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/talentops/hiring-ops/internal/application/port"
	"github.com/talentops/hiring-ops/internal/domain/entity"
	"github.com/talentops/hiring-ops/internal/domain/workflow"
)

// CreateAnnotationTaskRequest carries the fields for a new annotation task
type CreateAnnotationTaskRequest struct {
	ProjectID    int64  `json:"project_id"`
	AssignmentID *int64 `json:"assignment_id"`
	Title        string `json:"title"`
}

// UpdateAnnotationTaskRequest carries the mutable task fields
type UpdateAnnotationTaskRequest struct {
	Title string `json:"title"`
}

// AnnotationTaskService manages annotation tasks
type AnnotationTaskService interface {
	Create(ctx context.Context, req CreateAnnotationTaskRequest) (*entity.AnnotationTask, error)
	Get(ctx context.Context, id int64) (*entity.AnnotationTask, error)
	List(ctx context.Context, filter port.ListFilter) ([]*entity.AnnotationTask, error)
	Update(ctx context.Context, id int64, req UpdateAnnotationTaskRequest) (*entity.AnnotationTask, error)
}

type annotationTaskService struct {
	repo        port.AnnotationTaskRepository
	projects    port.ProjectRepository
	assignments port.AssignmentRepository
	logger      *zap.Logger
}

// NewAnnotationTaskService creates an annotation task service
func NewAnnotationTaskService(
	repo port.AnnotationTaskRepository,
	projects port.ProjectRepository,
	assignments port.AssignmentRepository,
	logger *zap.Logger,
) AnnotationTaskService {
	return &annotationTaskService{repo: repo, projects: projects, assignments: assignments, logger: logger}
}

func (s *annotationTaskService) Create(ctx context.Context, req CreateAnnotationTaskRequest) (*entity.AnnotationTask, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	project, err := s.projects.GetByID(ctx, req.ProjectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, fmt.Errorf("%w: project %d", ErrNotFound, req.ProjectID)
	}
	if req.AssignmentID != nil {
		assignment, err := s.assignments.GetByID(ctx, *req.AssignmentID)
		if err != nil {
			return nil, err
		}
		if assignment == nil {
			return nil, fmt.Errorf("%w: assignment %d", ErrNotFound, *req.AssignmentID)
		}
		if assignment.ProjectID != req.ProjectID {
			return nil, fmt.Errorf("%w: assignment %d belongs to a different project", ErrInvalidInput, *req.AssignmentID)
		}
	}

	task := &entity.AnnotationTask{
		PublicID:     uuid.NewString(),
		ProjectID:    req.ProjectID,
		AssignmentID: req.AssignmentID,
		Title:        strings.TrimSpace(req.Title),
		Status:       initialStatus(workflow.KindAnnotationTask),
	}
	if err := s.repo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create annotation task: %w", err)
	}

	s.logger.Info("annotation task created", zap.Int64("id", task.ID), zap.Int64("project_id", req.ProjectID))
	return task, nil
}

func (s *annotationTaskService) Get(ctx context.Context, id int64) (*entity.AnnotationTask, error) {
	task, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, fmt.Errorf("%w: annotation task %d", ErrNotFound, id)
	}
	return task, nil
}

func (s *annotationTaskService) List(ctx context.Context, filter port.ListFilter) ([]*entity.AnnotationTask, error) {
	return s.repo.List(ctx, filter)
}

func (s *annotationTaskService) Update(ctx context.Context, id int64, req UpdateAnnotationTaskRequest) (*entity.AnnotationTask, error) {
	task, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != "" {
		task.Title = strings.TrimSpace(req.Title)
	}
	task.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to update annotation task: %w", err)
	}
	return task, nil
}
