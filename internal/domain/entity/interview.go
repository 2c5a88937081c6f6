package entity

import "time"

// Interview represents a scheduled interview between a candidate and a job.
// Status follows the interview workflow; AcceptanceStatus follows the
// acceptance workflow and governs whether the candidate is placed on a
// project afterwards.
type Interview struct {
	ID               int64     `json:"id"`
	PublicID         string    `json:"public_id"`
	CandidateID      int64     `json:"candidate_id"`
	JobID            int64     `json:"job_id"`
	ScheduledAt      time.Time `json:"scheduled_at"`
	Status           string    `json:"status"`
	AcceptanceStatus string    `json:"acceptance_status"`
	Notes            string    `json:"notes,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
