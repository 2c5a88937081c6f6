package entity

import "time"

// StatusChange records one applied status transition for audit views
type StatusChange struct {
	ID         int64     `json:"id"`
	EntityKind string    `json:"entity_kind"`
	EntityID   int64     `json:"entity_id"`
	FromStatus string    `json:"from_status"`
	ToStatus   string    `json:"to_status"`
	Summary    string    `json:"summary"`
	CreatedAt  time.Time `json:"created_at"`
}
