package entity

import "time"

// AnnotationTask is a unit of labeling work belonging to a project,
// optionally tied to the assignment of the candidate doing the work.
type AnnotationTask struct {
	ID           int64     `json:"id"`
	PublicID     string    `json:"public_id"`
	ProjectID    int64     `json:"project_id"`
	AssignmentID *int64    `json:"assignment_id,omitempty"`
	Title        string    `json:"title"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
