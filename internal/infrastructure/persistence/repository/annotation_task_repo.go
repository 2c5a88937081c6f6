package repository

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/talentops/hiring-ops/internal/application/port"
	"github.com/talentops/hiring-ops/internal/domain/entity"
	"github.com/talentops/hiring-ops/internal/domain/workflow"
)

// AnnotationTaskRepository implements port.AnnotationTaskRepository
type AnnotationTaskRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewAnnotationTaskRepository creates a new annotation task repository
func NewAnnotationTaskRepository(db *sql.DB, logger *zap.Logger) port.AnnotationTaskRepository {
	return &AnnotationTaskRepository{db: db, logger: logger}
}

const taskColumns = `id, public_id, project_id, assignment_id, title, status, created_at, updated_at`

func scanTask(scan func(dest ...any) error) (*entity.AnnotationTask, error) {
	var task entity.AnnotationTask
	var assignmentID sql.NullInt64
	if err := scan(
		&task.ID,
		&task.PublicID,
		&task.ProjectID,
		&assignmentID,
		&task.Title,
		&task.Status,
		&task.CreatedAt,
		&task.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if assignmentID.Valid {
		task.AssignmentID = &assignmentID.Int64
	}
	return &task, nil
}

// Create inserts a new annotation task
func (r *AnnotationTaskRepository) Create(ctx context.Context, task *entity.AnnotationTask) error {
	query := `
		INSERT INTO annotation_tasks (public_id, project_id, assignment_id, title, status)
		VALUES (?, ?, ?, ?, ?)
	`

	var assignmentID any
	if task.AssignmentID != nil {
		assignmentID = *task.AssignmentID
	}

	result, err := r.db.ExecContext(ctx, query,
		task.PublicID,
		task.ProjectID,
		assignmentID,
		task.Title,
		task.Status,
	)
	if err != nil {
		r.logger.Error("Failed to create annotation task", zap.Error(err))
		return fmt.Errorf("failed to create annotation task: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	task.ID = id
	return nil
}

// GetByID retrieves an annotation task by ID, nil when absent
func (r *AnnotationTaskRepository) GetByID(ctx context.Context, id int64) (*entity.AnnotationTask, error) {
	query := `SELECT ` + taskColumns + ` FROM annotation_tasks WHERE id = ?`

	task, err := scanTask(r.db.QueryRowContext(ctx, query, id).Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to get annotation task by ID", zap.Int64("id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to get annotation task: %w", err)
	}
	return task, nil
}

// List retrieves annotation tasks matching the filter, oldest first
func (r *AnnotationTaskRepository) List(ctx context.Context, filter port.ListFilter) ([]*entity.AnnotationTask, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM annotation_tasks
		WHERE (? = '' OR status = ?)
		  AND (? = '' OR title LIKE '%' || ? || '%')
		ORDER BY created_at ASC
		LIMIT ? OFFSET ?
	`

	rows, err := r.db.QueryContext(ctx, query,
		filter.Status, filter.Status,
		filter.Search, filter.Search,
		filter.Limit, filter.Offset,
	)
	if err != nil {
		r.logger.Error("Failed to list annotation tasks", zap.Error(err))
		return nil, fmt.Errorf("failed to list annotation tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*entity.AnnotationTask
	for rows.Next() {
		task, err := scanTask(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan annotation task: %w", err)
		}
		tasks = append(tasks, task)
	}

	return tasks, rows.Err()
}

// Update persists the task's mutable fields
func (r *AnnotationTaskRepository) Update(ctx context.Context, task *entity.AnnotationTask) error {
	query := `UPDATE annotation_tasks SET title = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`

	if _, err := r.db.ExecContext(ctx, query, task.Title, task.ID); err != nil {
		r.logger.Error("Failed to update annotation task", zap.Int64("id", task.ID), zap.Error(err))
		return fmt.Errorf("failed to update annotation task: %w", err)
	}
	return nil
}

// UpdateStatus writes the task's workflow status
func (r *AnnotationTaskRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	query := `UPDATE annotation_tasks SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`

	if _, err := r.db.ExecContext(ctx, query, status, id); err != nil {
		r.logger.Error("Failed to update annotation task status", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("failed to update annotation task status: %w", err)
	}
	return nil
}

// CompleteAllByProjectID marks every unfinished task on the project as approved
func (r *AnnotationTaskRepository) CompleteAllByProjectID(ctx context.Context, projectID int64) error {
	query := `
		UPDATE annotation_tasks
		SET status = ?, updated_at = CURRENT_TIMESTAMP
		WHERE project_id = ? AND status != ?
	`

	if _, err := r.db.ExecContext(ctx, query,
		workflow.TaskApproved.String(),
		projectID,
		workflow.TaskApproved.String(),
	); err != nil {
		r.logger.Error("Failed to complete tasks for project", zap.Int64("project_id", projectID), zap.Error(err))
		return fmt.Errorf("failed to complete tasks for project: %w", err)
	}
	return nil
}

// RemoveAllByProjectID deletes every unfinished task on the project
func (r *AnnotationTaskRepository) RemoveAllByProjectID(ctx context.Context, projectID int64) error {
	query := `DELETE FROM annotation_tasks WHERE project_id = ? AND status != ?`

	if _, err := r.db.ExecContext(ctx, query, projectID, workflow.TaskApproved.String()); err != nil {
		r.logger.Error("Failed to remove tasks for project", zap.Int64("project_id", projectID), zap.Error(err))
		return fmt.Errorf("failed to remove tasks for project: %w", err)
	}
	return nil
}

// CompleteAllByAssignmentID marks every unfinished task on the assignment as approved
func (r *AnnotationTaskRepository) CompleteAllByAssignmentID(ctx context.Context, assignmentID int64) error {
	query := `
		UPDATE annotation_tasks
		SET status = ?, updated_at = CURRENT_TIMESTAMP
		WHERE assignment_id = ? AND status != ?
	`

	if _, err := r.db.ExecContext(ctx, query,
		workflow.TaskApproved.String(),
		assignmentID,
		workflow.TaskApproved.String(),
	); err != nil {
		r.logger.Error("Failed to complete tasks for assignment", zap.Int64("assignment_id", assignmentID), zap.Error(err))
		return fmt.Errorf("failed to complete tasks for assignment: %w", err)
	}
	return nil
}

// RemoveAllByAssignmentID deletes every unfinished task on the assignment
func (r *AnnotationTaskRepository) RemoveAllByAssignmentID(ctx context.Context, assignmentID int64) error {
	query := `DELETE FROM annotation_tasks WHERE assignment_id = ? AND status != ?`

	if _, err := r.db.ExecContext(ctx, query, assignmentID, workflow.TaskApproved.String()); err != nil {
		r.logger.Error("Failed to remove tasks for assignment", zap.Int64("assignment_id", assignmentID), zap.Error(err))
		return fmt.Errorf("failed to remove tasks for assignment: %w", err)
	}
	return nil
}
