package entity

import "time"

// Job represents a job posting candidates interview for
type Job struct {
	ID          int64     `json:"id"`
	PublicID    string    `json:"public_id"`
	ProjectID   int64     `json:"project_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Department  string    `json:"department,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
