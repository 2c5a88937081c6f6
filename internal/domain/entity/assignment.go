package entity

import "time"

// Assignment links an accepted candidate to a project. Created or
// reactivated by the acceptance cascade when an interview decision lands
// on accepted.
type Assignment struct {
	ID          int64     `json:"id"`
	PublicID    string    `json:"public_id"`
	CandidateID int64     `json:"candidate_id"`
	ProjectID   int64     `json:"project_id"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
