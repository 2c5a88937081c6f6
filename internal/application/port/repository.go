// Package port defines the interfaces the application layer depends on.
// Infrastructure provides the implementations.
package port

import (
	"context"
	"time"

	"github.com/talentops/hiring-ops/internal/domain/entity"
)

// ListFilter carries the common list/search parameters for CRUD screens
type ListFilter struct {
	Status string
	Search string
	Limit  int
	Offset int
}

// CandidateRepository persists candidates
type CandidateRepository interface {
	Create(ctx context.Context, candidate *entity.Candidate) error
	GetByID(ctx context.Context, id int64) (*entity.Candidate, error)
	List(ctx context.Context, filter ListFilter) ([]*entity.Candidate, error)
	Update(ctx context.Context, candidate *entity.Candidate) error
}

// JobRepository persists job postings
type JobRepository interface {
	Create(ctx context.Context, job *entity.Job) error
	GetByID(ctx context.Context, id int64) (*entity.Job, error)
	List(ctx context.Context, filter ListFilter) ([]*entity.Job, error)
	Update(ctx context.Context, job *entity.Job) error
	UpdateStatus(ctx context.Context, id int64, status string) error
}

// InterviewRepository persists interviews and their acceptance decisions
type InterviewRepository interface {
	Create(ctx context.Context, interview *entity.Interview) error
	GetByID(ctx context.Context, id int64) (*entity.Interview, error)
	List(ctx context.Context, filter ListFilter) ([]*entity.Interview, error)
	Update(ctx context.Context, interview *entity.Interview) error
	UpdateStatus(ctx context.Context, id int64, status string) error
	UpdateAcceptanceStatus(ctx context.Context, id int64, status string) error

	// CancelScheduledByJobID cancels every still-scheduled interview for a
	// job; used by the archived-job cascade.
	CancelScheduledByJobID(ctx context.Context, jobID int64) error

	// ListUpcoming returns scheduled interviews starting within the window
	ListUpcoming(ctx context.Context, within time.Duration) ([]*entity.Interview, error)

	// ListPendingAcceptance returns completed interviews whose decision is
	// still pending; used by the daily digest.
	ListPendingAcceptance(ctx context.Context) ([]*entity.Interview, error)
}

// ProjectRepository persists projects
type ProjectRepository interface {
	Create(ctx context.Context, project *entity.Project) error
	GetByID(ctx context.Context, id int64) (*entity.Project, error)
	List(ctx context.Context, filter ListFilter) ([]*entity.Project, error)
	Update(ctx context.Context, project *entity.Project) error
	UpdateStatus(ctx context.Context, id int64, status string) error
}

// AssignmentRepository persists candidate-project assignments
type AssignmentRepository interface {
	Create(ctx context.Context, assignment *entity.Assignment) error
	GetByID(ctx context.Context, id int64) (*entity.Assignment, error)
	GetByCandidateAndProject(ctx context.Context, candidateID, projectID int64) (*entity.Assignment, error)
	List(ctx context.Context, filter ListFilter) ([]*entity.Assignment, error)
	UpdateStatus(ctx context.Context, id int64, status string) error

	// RemoveAllByProjectID marks every non-terminal assignment on the
	// project as removed; used by the canceled-project cascade.
	RemoveAllByProjectID(ctx context.Context, projectID int64) error
}

// AnnotationTaskRepository persists annotation tasks
type AnnotationTaskRepository interface {
	Create(ctx context.Context, task *entity.AnnotationTask) error
	GetByID(ctx context.Context, id int64) (*entity.AnnotationTask, error)
	List(ctx context.Context, filter ListFilter) ([]*entity.AnnotationTask, error)
	Update(ctx context.Context, task *entity.AnnotationTask) error
	UpdateStatus(ctx context.Context, id int64, status string) error

	CompleteAllByProjectID(ctx context.Context, projectID int64) error
	RemoveAllByProjectID(ctx context.Context, projectID int64) error
	CompleteAllByAssignmentID(ctx context.Context, assignmentID int64) error
	RemoveAllByAssignmentID(ctx context.Context, assignmentID int64) error
}

// NotificationRepository persists queued notifications
type NotificationRepository interface {
	Create(ctx context.Context, notification *entity.Notification) error
	ListPending(ctx context.Context, limit int) ([]*entity.Notification, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
}

// StatusChangeRepository records applied transitions for audit views
type StatusChangeRepository interface {
	Create(ctx context.Context, change *entity.StatusChange) error
	ListByEntity(ctx context.Context, entityKind string, entityID int64) ([]*entity.StatusChange, error)
}
