package entity

import "time"

// Notification is an outbound message queued by a notify cascade or a
// background worker, delivered by whatever channel the deployment wires up.
type Notification struct {
	ID         int64     `json:"id"`
	EntityKind string    `json:"entity_kind"`
	EntityID   int64     `json:"entity_id"`
	Message    string    `json:"message"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
