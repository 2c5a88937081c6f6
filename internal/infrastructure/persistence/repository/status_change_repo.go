package repository

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/talentops/hiring-ops/internal/application/port"
	"github.com/talentops/hiring-ops/internal/domain/entity"
)

// StatusChangeRepository implements port.StatusChangeRepository
type StatusChangeRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewStatusChangeRepository creates a new status change repository
func NewStatusChangeRepository(db *sql.DB, logger *zap.Logger) port.StatusChangeRepository {
	return &StatusChangeRepository{db: db, logger: logger}
}

// Create records one status transition
func (r *StatusChangeRepository) Create(ctx context.Context, change *entity.StatusChange) error {
	query := `
		INSERT INTO status_changes (entity_kind, entity_id, from_status, to_status, summary)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		change.EntityKind,
		change.EntityID,
		change.FromStatus,
		change.ToStatus,
		change.Summary,
	)
	if err != nil {
		r.logger.Error("Failed to create status change", zap.Error(err))
		return fmt.Errorf("failed to create status change: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	change.ID = id
	return nil
}

// ListByEntity retrieves the transition history for one entity, newest first
func (r *StatusChangeRepository) ListByEntity(ctx context.Context, entityKind string, entityID int64) ([]*entity.StatusChange, error) {
	query := `
		SELECT id, entity_kind, entity_id, from_status, to_status, summary, created_at
		FROM status_changes
		WHERE entity_kind = ? AND entity_id = ?
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.db.QueryContext(ctx, query, entityKind, entityID)
	if err != nil {
		r.logger.Error("Failed to list status changes", zap.Error(err))
		return nil, fmt.Errorf("failed to list status changes: %w", err)
	}
	defer rows.Close()

	var changes []*entity.StatusChange
	for rows.Next() {
		var c entity.StatusChange
		if err := rows.Scan(
			&c.ID,
			&c.EntityKind,
			&c.EntityID,
			&c.FromStatus,
			&c.ToStatus,
			&c.Summary,
			&c.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan status change: %w", err)
		}
		changes = append(changes, &c)
	}

	return changes, rows.Err()
}
