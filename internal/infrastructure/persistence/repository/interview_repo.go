package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/talentops/hiring-ops/internal/application/port"
	"github.com/talentops/hiring-ops/internal/domain/entity"
	"github.com/talentops/hiring-ops/internal/domain/workflow"
)

// InterviewRepository implements port.InterviewRepository
type InterviewRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewInterviewRepository creates a new interview repository
func NewInterviewRepository(db *sql.DB, logger *zap.Logger) port.InterviewRepository {
	return &InterviewRepository{db: db, logger: logger}
}

const interviewColumns = `id, public_id, candidate_id, job_id, scheduled_at, status, acceptance_status, notes, created_at, updated_at`

// Create inserts a new interview
func (r *InterviewRepository) Create(ctx context.Context, interview *entity.Interview) error {
	query := `
		INSERT INTO interviews (public_id, candidate_id, job_id, scheduled_at, status, acceptance_status, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		interview.PublicID,
		interview.CandidateID,
		interview.JobID,
		interview.ScheduledAt,
		interview.Status,
		interview.AcceptanceStatus,
		interview.Notes,
	)
	if err != nil {
		r.logger.Error("Failed to create interview", zap.Error(err))
		return fmt.Errorf("failed to create interview: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	interview.ID = id
	return nil
}

func scanInterview(scan func(dest ...any) error) (*entity.Interview, error) {
	var interview entity.Interview
	if err := scan(
		&interview.ID,
		&interview.PublicID,
		&interview.CandidateID,
		&interview.JobID,
		&interview.ScheduledAt,
		&interview.Status,
		&interview.AcceptanceStatus,
		&interview.Notes,
		&interview.CreatedAt,
		&interview.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &interview, nil
}

// GetByID retrieves an interview by ID, nil when absent
func (r *InterviewRepository) GetByID(ctx context.Context, id int64) (*entity.Interview, error) {
	query := `SELECT ` + interviewColumns + ` FROM interviews WHERE id = ?`

	interview, err := scanInterview(r.db.QueryRowContext(ctx, query, id).Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to get interview by ID", zap.Int64("id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to get interview: %w", err)
	}
	return interview, nil
}

// List retrieves interviews matching the filter, soonest first
func (r *InterviewRepository) List(ctx context.Context, filter port.ListFilter) ([]*entity.Interview, error) {
	query := `
		SELECT ` + interviewColumns + `
		FROM interviews
		WHERE (? = '' OR status = ?)
		  AND (? = '' OR notes LIKE '%' || ? || '%')
		ORDER BY scheduled_at ASC
		LIMIT ? OFFSET ?
	`

	rows, err := r.db.QueryContext(ctx, query,
		filter.Status, filter.Status,
		filter.Search, filter.Search,
		filter.Limit, filter.Offset,
	)
	if err != nil {
		r.logger.Error("Failed to list interviews", zap.Error(err))
		return nil, fmt.Errorf("failed to list interviews: %w", err)
	}
	defer rows.Close()

	return collectInterviews(rows)
}

func collectInterviews(rows *sql.Rows) ([]*entity.Interview, error) {
	var interviews []*entity.Interview
	for rows.Next() {
		interview, err := scanInterview(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan interview: %w", err)
		}
		interviews = append(interviews, interview)
	}
	return interviews, rows.Err()
}

// Update persists the editable interview fields
func (r *InterviewRepository) Update(ctx context.Context, interview *entity.Interview) error {
	query := `
		UPDATE interviews
		SET scheduled_at = ?, notes = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`

	if _, err := r.db.ExecContext(ctx, query,
		interview.ScheduledAt,
		interview.Notes,
		interview.ID,
	); err != nil {
		r.logger.Error("Failed to update interview", zap.Int64("id", interview.ID), zap.Error(err))
		return fmt.Errorf("failed to update interview: %w", err)
	}
	return nil
}

// UpdateStatus writes the interview's workflow status
func (r *InterviewRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	query := `UPDATE interviews SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`

	if _, err := r.db.ExecContext(ctx, query, status, id); err != nil {
		r.logger.Error("Failed to update interview status", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("failed to update interview status: %w", err)
	}
	return nil
}

// UpdateAcceptanceStatus writes the interview's acceptance decision status
func (r *InterviewRepository) UpdateAcceptanceStatus(ctx context.Context, id int64, status string) error {
	query := `UPDATE interviews SET acceptance_status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`

	if _, err := r.db.ExecContext(ctx, query, status, id); err != nil {
		r.logger.Error("Failed to update acceptance status", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("failed to update acceptance status: %w", err)
	}
	return nil
}

// CancelScheduledByJobID cancels every still-scheduled interview for a job
func (r *InterviewRepository) CancelScheduledByJobID(ctx context.Context, jobID int64) error {
	query := `
		UPDATE interviews
		SET status = ?, updated_at = CURRENT_TIMESTAMP
		WHERE job_id = ? AND status = ?
	`

	if _, err := r.db.ExecContext(ctx, query,
		workflow.InterviewCanceled.String(),
		jobID,
		workflow.InterviewScheduled.String(),
	); err != nil {
		r.logger.Error("Failed to cancel interviews for job", zap.Int64("job_id", jobID), zap.Error(err))
		return fmt.Errorf("failed to cancel interviews for job: %w", err)
	}
	return nil
}

// ListUpcoming returns scheduled interviews starting within the window
func (r *InterviewRepository) ListUpcoming(ctx context.Context, within time.Duration) ([]*entity.Interview, error) {
	query := `
		SELECT ` + interviewColumns + `
		FROM interviews
		WHERE status = ? AND scheduled_at BETWEEN ? AND ?
		ORDER BY scheduled_at ASC
	`

	now := time.Now()
	rows, err := r.db.QueryContext(ctx, query,
		workflow.InterviewScheduled.String(),
		now,
		now.Add(within),
	)
	if err != nil {
		r.logger.Error("Failed to list upcoming interviews", zap.Error(err))
		return nil, fmt.Errorf("failed to list upcoming interviews: %w", err)
	}
	defer rows.Close()

	return collectInterviews(rows)
}

// ListPendingAcceptance returns completed interviews with an undecided acceptance
func (r *InterviewRepository) ListPendingAcceptance(ctx context.Context) ([]*entity.Interview, error) {
	query := `
		SELECT ` + interviewColumns + `
		FROM interviews
		WHERE status = ? AND acceptance_status = ?
		ORDER BY updated_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query,
		workflow.InterviewCompleted.String(),
		workflow.AcceptancePending.String(),
	)
	if err != nil {
		r.logger.Error("Failed to list pending acceptances", zap.Error(err))
		return nil, fmt.Errorf("failed to list pending acceptances: %w", err)
	}
	defer rows.Close()

	return collectInterviews(rows)
}
