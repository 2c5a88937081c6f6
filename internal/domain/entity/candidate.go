package entity

import "time"

// Candidate represents a person in the hiring pipeline
type Candidate struct {
	ID        int64     `json:"id"`
	PublicID  string    `json:"public_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Headline  string    `json:"headline,omitempty"`
	Skills    string    `json:"skills,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
