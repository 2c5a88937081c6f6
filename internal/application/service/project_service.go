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

// CreateProjectRequest carries the fields for a new project
type CreateProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UpdateProjectRequest carries the editable project fields
type UpdateProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ProjectService manages projects
type ProjectService interface {
	Create(ctx context.Context, req CreateProjectRequest) (*entity.Project, error)
	Get(ctx context.Context, id int64) (*entity.Project, error)
	List(ctx context.Context, filter port.ListFilter) ([]*entity.Project, error)
	Update(ctx context.Context, id int64, req UpdateProjectRequest) (*entity.Project, error)
}

type projectService struct {
	repo   port.ProjectRepository
	logger *zap.Logger
}

// NewProjectService creates a project service
func NewProjectService(repo port.ProjectRepository, logger *zap.Logger) ProjectService {
	return &projectService{repo: repo, logger: logger}
}

func (s *projectService) Create(ctx context.Context, req CreateProjectRequest) (*entity.Project, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	project := &entity.Project{
		PublicID:    uuid.NewString(),
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Status:      initialStatus(workflow.KindProject),
	}
	if err := s.repo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	s.logger.Info("project created", zap.Int64("id", project.ID), zap.String("name", project.Name))
	return project, nil
}

func (s *projectService) Get(ctx context.Context, id int64) (*entity.Project, error) {
	project, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, fmt.Errorf("%w: project %d", ErrNotFound, id)
	}
	return project, nil
}

func (s *projectService) List(ctx context.Context, filter port.ListFilter) ([]*entity.Project, error) {
	return s.repo.List(ctx, filter)
}

func (s *projectService) Update(ctx context.Context, id int64, req UpdateProjectRequest) (*entity.Project, error) {
	project, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		project.Name = strings.TrimSpace(req.Name)
	}
	if req.Description != "" {
		project.Description = req.Description
	}
	project.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	return project, nil
}
