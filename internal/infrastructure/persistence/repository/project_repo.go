package repository

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/talentops/hiring-ops/internal/application/port"
	"github.com/talentops/hiring-ops/internal/domain/entity"
)

// ProjectRepository implements port.ProjectRepository
type ProjectRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *sql.DB, logger *zap.Logger) port.ProjectRepository {
	return &ProjectRepository{db: db, logger: logger}
}

// Create inserts a new project
func (r *ProjectRepository) Create(ctx context.Context, project *entity.Project) error {
	query := `
		INSERT INTO projects (public_id, name, description, status)
		VALUES (?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		project.PublicID,
		project.Name,
		project.Description,
		project.Status,
	)
	if err != nil {
		r.logger.Error("Failed to create project", zap.Error(err))
		return fmt.Errorf("failed to create project: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	project.ID = id
	return nil
}

// GetByID retrieves a project by ID, nil when absent
func (r *ProjectRepository) GetByID(ctx context.Context, id int64) (*entity.Project, error) {
	query := `
		SELECT id, public_id, name, description, status, created_at, updated_at
		FROM projects
		WHERE id = ?
	`

	var project entity.Project
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&project.ID,
		&project.PublicID,
		&project.Name,
		&project.Description,
		&project.Status,
		&project.CreatedAt,
		&project.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to get project by ID", zap.Int64("id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	return &project, nil
}

// List retrieves projects matching the filter, newest first
func (r *ProjectRepository) List(ctx context.Context, filter port.ListFilter) ([]*entity.Project, error) {
	query := `
		SELECT id, public_id, name, description, status, created_at, updated_at
		FROM projects
		WHERE (? = '' OR status = ?)
		  AND (? = '' OR name LIKE '%' || ? || '%')
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`

	rows, err := r.db.QueryContext(ctx, query,
		filter.Status, filter.Status,
		filter.Search, filter.Search,
		filter.Limit, filter.Offset,
	)
	if err != nil {
		r.logger.Error("Failed to list projects", zap.Error(err))
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []*entity.Project
	for rows.Next() {
		var project entity.Project
		if err := rows.Scan(
			&project.ID,
			&project.PublicID,
			&project.Name,
			&project.Description,
			&project.Status,
			&project.CreatedAt,
			&project.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, &project)
	}

	return projects, rows.Err()
}

// Update persists the editable project fields
func (r *ProjectRepository) Update(ctx context.Context, project *entity.Project) error {
	query := `
		UPDATE projects
		SET name = ?, description = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`

	if _, err := r.db.ExecContext(ctx, query,
		project.Name,
		project.Description,
		project.ID,
	); err != nil {
		r.logger.Error("Failed to update project", zap.Int64("id", project.ID), zap.Error(err))
		return fmt.Errorf("failed to update project: %w", err)
	}
	return nil
}

// UpdateStatus writes the project's workflow status
func (r *ProjectRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	query := `UPDATE projects SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`

	if _, err := r.db.ExecContext(ctx, query, status, id); err != nil {
		r.logger.Error("Failed to update project status", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("failed to update project status: %w", err)
	}
	return nil
}
