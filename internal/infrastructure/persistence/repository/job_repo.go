package repository

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/talentops/hiring-ops/internal/application/port"
	"github.com/talentops/hiring-ops/internal/domain/entity"
)

// JobRepository implements port.JobRepository
type JobRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewJobRepository creates a new job repository
func NewJobRepository(db *sql.DB, logger *zap.Logger) port.JobRepository {
	return &JobRepository{db: db, logger: logger}
}

// Create inserts a new job
func (r *JobRepository) Create(ctx context.Context, job *entity.Job) error {
	query := `
		INSERT INTO jobs (public_id, project_id, title, description, department, status)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		job.PublicID,
		job.ProjectID,
		job.Title,
		job.Description,
		job.Department,
		job.Status,
	)
	if err != nil {
		r.logger.Error("Failed to create job", zap.Error(err))
		return fmt.Errorf("failed to create job: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	job.ID = id
	return nil
}

// GetByID retrieves a job by ID, nil when absent
func (r *JobRepository) GetByID(ctx context.Context, id int64) (*entity.Job, error) {
	query := `
		SELECT id, public_id, project_id, title, description, department, status, created_at, updated_at
		FROM jobs
		WHERE id = ?
	`

	var job entity.Job
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&job.ID,
		&job.PublicID,
		&job.ProjectID,
		&job.Title,
		&job.Description,
		&job.Department,
		&job.Status,
		&job.CreatedAt,
		&job.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to get job by ID", zap.Int64("id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to get job: %w", err)
	}

	return &job, nil
}

// List retrieves jobs matching the filter, newest first
func (r *JobRepository) List(ctx context.Context, filter port.ListFilter) ([]*entity.Job, error) {
	query := `
		SELECT id, public_id, project_id, title, description, department, status, created_at, updated_at
		FROM jobs
		WHERE (? = '' OR status = ?)
		  AND (? = '' OR title LIKE '%' || ? || '%' OR department LIKE '%' || ? || '%')
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`

	rows, err := r.db.QueryContext(ctx, query,
		filter.Status, filter.Status,
		filter.Search, filter.Search, filter.Search,
		filter.Limit, filter.Offset,
	)
	if err != nil {
		r.logger.Error("Failed to list jobs", zap.Error(err))
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	var jobs []*entity.Job
	for rows.Next() {
		var job entity.Job
		if err := rows.Scan(
			&job.ID,
			&job.PublicID,
			&job.ProjectID,
			&job.Title,
			&job.Description,
			&job.Department,
			&job.Status,
			&job.CreatedAt,
			&job.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, &job)
	}

	return jobs, rows.Err()
}

// Update persists the editable job fields
func (r *JobRepository) Update(ctx context.Context, job *entity.Job) error {
	query := `
		UPDATE jobs
		SET title = ?, description = ?, department = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`

	if _, err := r.db.ExecContext(ctx, query,
		job.Title,
		job.Description,
		job.Department,
		job.ID,
	); err != nil {
		r.logger.Error("Failed to update job", zap.Int64("id", job.ID), zap.Error(err))
		return fmt.Errorf("failed to update job: %w", err)
	}
	return nil
}

// UpdateStatus writes the job's workflow status
func (r *JobRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	query := `UPDATE jobs SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`

	if _, err := r.db.ExecContext(ctx, query, status, id); err != nil {
		r.logger.Error("Failed to update job status", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("failed to update job status: %w", err)
	}
	return nil
}
