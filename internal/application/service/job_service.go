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

// CreateJobRequest carries the fields for a new job posting
type CreateJobRequest struct {
	ProjectID   int64  `json:"project_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Department  string `json:"department"`
}

// UpdateJobRequest carries the editable job fields. Status changes go
// through the transition endpoint, not here.
type UpdateJobRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Department  string `json:"department"`
}

// JobService manages job postings
type JobService interface {
	Create(ctx context.Context, req CreateJobRequest) (*entity.Job, error)
	Get(ctx context.Context, id int64) (*entity.Job, error)
	List(ctx context.Context, filter port.ListFilter) ([]*entity.Job, error)
	Update(ctx context.Context, id int64, req UpdateJobRequest) (*entity.Job, error)
}

type jobService struct {
	repo     port.JobRepository
	projects port.ProjectRepository
	logger   *zap.Logger
}

// NewJobService creates a job service
func NewJobService(repo port.JobRepository, projects port.ProjectRepository, logger *zap.Logger) JobService {
	return &jobService{repo: repo, projects: projects, logger: logger}
}

func (s *jobService) Create(ctx context.Context, req CreateJobRequest) (*entity.Job, error) {
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

	job := &entity.Job{
		PublicID:    uuid.NewString(),
		ProjectID:   req.ProjectID,
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Department:  req.Department,
		Status:      initialStatus(workflow.KindJob),
	}
	if err := s.repo.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	s.logger.Info("job created", zap.Int64("id", job.ID), zap.String("title", job.Title))
	return job, nil
}

func (s *jobService) Get(ctx context.Context, id int64) (*entity.Job, error) {
	job, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, fmt.Errorf("%w: job %d", ErrNotFound, id)
	}
	return job, nil
}

func (s *jobService) List(ctx context.Context, filter port.ListFilter) ([]*entity.Job, error) {
	return s.repo.List(ctx, filter)
}

func (s *jobService) Update(ctx context.Context, id int64, req UpdateJobRequest) (*entity.Job, error) {
	job, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != "" {
		job.Title = strings.TrimSpace(req.Title)
	}
	if req.Description != "" {
		job.Description = req.Description
	}
	if req.Department != "" {
		job.Department = req.Department
	}
	job.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to update job: %w", err)
	}
	return job, nil
}

// initialStatus is the first node of the kind's state graph
func initialStatus(kind workflow.EntityKind) string {
	wf, err := workflow.Default().Workflow(kind)
	if err != nil {
		return ""
	}
	return wf.Nodes()[0].Key.String()
}
