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

// AssignmentRepository implements port.AssignmentRepository
type AssignmentRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewAssignmentRepository creates a new assignment repository
func NewAssignmentRepository(db *sql.DB, logger *zap.Logger) port.AssignmentRepository {
	return &AssignmentRepository{db: db, logger: logger}
}

const assignmentColumns = `id, public_id, candidate_id, project_id, status, created_at, updated_at`

func scanAssignment(scan func(dest ...any) error) (*entity.Assignment, error) {
	var assignment entity.Assignment
	if err := scan(
		&assignment.ID,
		&assignment.PublicID,
		&assignment.CandidateID,
		&assignment.ProjectID,
		&assignment.Status,
		&assignment.CreatedAt,
		&assignment.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &assignment, nil
}

// Create inserts a new assignment
func (r *AssignmentRepository) Create(ctx context.Context, assignment *entity.Assignment) error {
	query := `
		INSERT INTO assignments (public_id, candidate_id, project_id, status)
		VALUES (?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		assignment.PublicID,
		assignment.CandidateID,
		assignment.ProjectID,
		assignment.Status,
	)
	if err != nil {
		r.logger.Error("Failed to create assignment", zap.Error(err))
		return fmt.Errorf("failed to create assignment: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	assignment.ID = id
	return nil
}

// GetByID retrieves an assignment by ID, nil when absent
func (r *AssignmentRepository) GetByID(ctx context.Context, id int64) (*entity.Assignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM assignments WHERE id = ?`

	assignment, err := scanAssignment(r.db.QueryRowContext(ctx, query, id).Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to get assignment by ID", zap.Int64("id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}
	return assignment, nil
}

// GetByCandidateAndProject retrieves the assignment linking a candidate to
// a project, nil when none exists
func (r *AssignmentRepository) GetByCandidateAndProject(ctx context.Context, candidateID, projectID int64) (*entity.Assignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM assignments WHERE candidate_id = ? AND project_id = ?`

	assignment, err := scanAssignment(r.db.QueryRowContext(ctx, query, candidateID, projectID).Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to get assignment by candidate and project",
			zap.Int64("candidate_id", candidateID),
			zap.Int64("project_id", projectID),
			zap.Error(err))
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}
	return assignment, nil
}

// List retrieves assignments matching the filter, newest first
func (r *AssignmentRepository) List(ctx context.Context, filter port.ListFilter) ([]*entity.Assignment, error) {
	query := `
		SELECT ` + assignmentColumns + `
		FROM assignments
		WHERE (? = '' OR status = ?)
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`

	rows, err := r.db.QueryContext(ctx, query,
		filter.Status, filter.Status,
		filter.Limit, filter.Offset,
	)
	if err != nil {
		r.logger.Error("Failed to list assignments", zap.Error(err))
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	defer rows.Close()

	var assignments []*entity.Assignment
	for rows.Next() {
		assignment, err := scanAssignment(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		assignments = append(assignments, assignment)
	}

	return assignments, rows.Err()
}

// UpdateStatus writes the assignment's workflow status
func (r *AssignmentRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	query := `UPDATE assignments SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`

	if _, err := r.db.ExecContext(ctx, query, status, id); err != nil {
		r.logger.Error("Failed to update assignment status", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("failed to update assignment status: %w", err)
	}
	return nil
}

// RemoveAllByProjectID marks every non-terminal assignment on the project as removed
func (r *AssignmentRepository) RemoveAllByProjectID(ctx context.Context, projectID int64) error {
	query := `
		UPDATE assignments
		SET status = ?, updated_at = CURRENT_TIMESTAMP
		WHERE project_id = ? AND status IN (?, ?)
	`

	if _, err := r.db.ExecContext(ctx, query,
		workflow.AssignmentRemoved.String(),
		projectID,
		workflow.AssignmentActive.String(),
		workflow.AssignmentPaused.String(),
	); err != nil {
		r.logger.Error("Failed to remove assignments for project", zap.Int64("project_id", projectID), zap.Error(err))
		return fmt.Errorf("failed to remove assignments for project: %w", err)
	}
	return nil
}
