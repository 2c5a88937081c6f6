// Package repository provides SQLite-backed implementations of the
// application's repository ports.
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/talentops/hiring-ops/internal/application/port"
	"github.com/talentops/hiring-ops/internal/domain/entity"
)

// CandidateRepository implements port.CandidateRepository
type CandidateRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewCandidateRepository creates a new candidate repository
func NewCandidateRepository(db *sql.DB, logger *zap.Logger) port.CandidateRepository {
	return &CandidateRepository{db: db, logger: logger}
}

// Create inserts a new candidate
func (r *CandidateRepository) Create(ctx context.Context, candidate *entity.Candidate) error {
	query := `
		INSERT INTO candidates (public_id, name, email, headline, skills)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		candidate.PublicID,
		candidate.Name,
		candidate.Email,
		candidate.Headline,
		candidate.Skills,
	)
	if err != nil {
		r.logger.Error("Failed to create candidate", zap.Error(err))
		return fmt.Errorf("failed to create candidate: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	candidate.ID = id
	return nil
}

// GetByID retrieves a candidate by ID, nil when absent
func (r *CandidateRepository) GetByID(ctx context.Context, id int64) (*entity.Candidate, error) {
	query := `
		SELECT id, public_id, name, email, headline, skills, created_at, updated_at
		FROM candidates
		WHERE id = ?
	`

	var candidate entity.Candidate
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&candidate.ID,
		&candidate.PublicID,
		&candidate.Name,
		&candidate.Email,
		&candidate.Headline,
		&candidate.Skills,
		&candidate.CreatedAt,
		&candidate.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to get candidate by ID", zap.Int64("id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to get candidate: %w", err)
	}

	return &candidate, nil
}

// List retrieves candidates matching the filter, newest first
func (r *CandidateRepository) List(ctx context.Context, filter port.ListFilter) ([]*entity.Candidate, error) {
	query := `
		SELECT id, public_id, name, email, headline, skills, created_at, updated_at
		FROM candidates
		WHERE (? = '' OR name LIKE '%' || ? || '%' OR email LIKE '%' || ? || '%' OR skills LIKE '%' || ? || '%')
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`

	rows, err := r.db.QueryContext(ctx, query,
		filter.Search, filter.Search, filter.Search, filter.Search,
		filter.Limit, filter.Offset,
	)
	if err != nil {
		r.logger.Error("Failed to list candidates", zap.Error(err))
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	var candidates []*entity.Candidate
	for rows.Next() {
		var candidate entity.Candidate
		if err := rows.Scan(
			&candidate.ID,
			&candidate.PublicID,
			&candidate.Name,
			&candidate.Email,
			&candidate.Headline,
			&candidate.Skills,
			&candidate.CreatedAt,
			&candidate.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		candidates = append(candidates, &candidate)
	}

	return candidates, rows.Err()
}

// Update persists the editable candidate fields
func (r *CandidateRepository) Update(ctx context.Context, candidate *entity.Candidate) error {
	query := `
		UPDATE candidates
		SET name = ?, email = ?, headline = ?, skills = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`

	if _, err := r.db.ExecContext(ctx, query,
		candidate.Name,
		candidate.Email,
		candidate.Headline,
		candidate.Skills,
		candidate.ID,
	); err != nil {
		r.logger.Error("Failed to update candidate", zap.Int64("id", candidate.ID), zap.Error(err))
		return fmt.Errorf("failed to update candidate: %w", err)
	}
	return nil
}
