package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/talentops/hiring-ops/internal/application/port"
	"github.com/talentops/hiring-ops/internal/domain/entity"
	"github.com/talentops/hiring-ops/internal/domain/workflow"
)

// CreateInterviewRequest schedules a new interview
type CreateInterviewRequest struct {
	CandidateID int64     `json:"candidate_id"`
	JobID       int64     `json:"job_id"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Notes       string    `json:"notes"`
}

// UpdateInterviewRequest carries the editable interview fields
type UpdateInterviewRequest struct {
	ScheduledAt *time.Time `json:"scheduled_at"`
	Notes       string     `json:"notes"`
}

// InterviewService manages interviews. The acceptance decision is part of
// the interview record but governed by its own workflow; both change only
// through the transition service.
type InterviewService interface {
	Create(ctx context.Context, req CreateInterviewRequest) (*entity.Interview, error)
	Get(ctx context.Context, id int64) (*entity.Interview, error)
	List(ctx context.Context, filter port.ListFilter) ([]*entity.Interview, error)
	Update(ctx context.Context, id int64, req UpdateInterviewRequest) (*entity.Interview, error)
}

type interviewService struct {
	repo       port.InterviewRepository
	candidates port.CandidateRepository
	jobs       port.JobRepository
	logger     *zap.Logger
}

// NewInterviewService creates an interview service
func NewInterviewService(
	repo port.InterviewRepository,
	candidates port.CandidateRepository,
	jobs port.JobRepository,
	logger *zap.Logger,
) InterviewService {
	return &interviewService{repo: repo, candidates: candidates, jobs: jobs, logger: logger}
}

func (s *interviewService) Create(ctx context.Context, req CreateInterviewRequest) (*entity.Interview, error) {
	if req.ScheduledAt.IsZero() {
		return nil, fmt.Errorf("%w: scheduled_at is required", ErrInvalidInput)
	}

	candidate, err := s.candidates.GetByID(ctx, req.CandidateID)
	if err != nil {
		return nil, err
	}
	if candidate == nil {
		return nil, fmt.Errorf("%w: candidate %d", ErrNotFound, req.CandidateID)
	}
	job, err := s.jobs.GetByID(ctx, req.JobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, fmt.Errorf("%w: job %d", ErrNotFound, req.JobID)
	}

	interview := &entity.Interview{
		PublicID:    uuid.NewString(),
		CandidateID: req.CandidateID,
		JobID:       req.JobID,
		ScheduledAt: req.ScheduledAt,
		Status:      initialStatus(workflow.KindInterview),
		Notes:       req.Notes,
	}
	if err := s.repo.Create(ctx, interview); err != nil {
		return nil, fmt.Errorf("failed to create interview: %w", err)
	}

	s.logger.Info("interview scheduled",
		zap.Int64("id", interview.ID),
		zap.Int64("candidate_id", req.CandidateID),
		zap.Int64("job_id", req.JobID),
		zap.Time("scheduled_at", req.ScheduledAt))
	return interview, nil
}

func (s *interviewService) Get(ctx context.Context, id int64) (*entity.Interview, error) {
	interview, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if interview == nil {
		return nil, fmt.Errorf("%w: interview %d", ErrNotFound, id)
	}
	return interview, nil
}

func (s *interviewService) List(ctx context.Context, filter port.ListFilter) ([]*entity.Interview, error) {
	return s.repo.List(ctx, filter)
}

func (s *interviewService) Update(ctx context.Context, id int64, req UpdateInterviewRequest) (*entity.Interview, error) {
	interview, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.ScheduledAt != nil {
		interview.ScheduledAt = *req.ScheduledAt
	}
	if req.Notes != "" {
		interview.Notes = req.Notes
	}
	interview.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, interview); err != nil {
		return nil, fmt.Errorf("failed to update interview: %w", err)
	}
	return interview, nil
}
