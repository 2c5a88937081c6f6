package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/talentops/hiring-ops/internal/application/port"
	"github.com/talentops/hiring-ops/internal/domain/entity"
	"github.com/talentops/hiring-ops/pkg/utils"
)

// CreateCandidateRequest carries the fields for a new candidate
type CreateCandidateRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Headline string `json:"headline"`
	Skills   string `json:"skills"`
}

// UpdateCandidateRequest carries the editable candidate fields
type UpdateCandidateRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Headline string `json:"headline"`
	Skills   string `json:"skills"`
}

// CandidateService manages candidate records
type CandidateService interface {
	Create(ctx context.Context, req CreateCandidateRequest) (*entity.Candidate, error)
	Get(ctx context.Context, id int64) (*entity.Candidate, error)
	List(ctx context.Context, filter port.ListFilter) ([]*entity.Candidate, error)
	Update(ctx context.Context, id int64, req UpdateCandidateRequest) (*entity.Candidate, error)
}

type candidateService struct {
	repo   port.CandidateRepository
	logger *zap.Logger
}

// NewCandidateService creates a candidate service
func NewCandidateService(repo port.CandidateRepository, logger *zap.Logger) CandidateService {
	return &candidateService{repo: repo, logger: logger}
}

func (s *candidateService) Create(ctx context.Context, req CreateCandidateRequest) (*entity.Candidate, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if err := utils.ValidateEmail(strings.TrimSpace(req.Email)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	candidate := &entity.Candidate{
		PublicID: uuid.NewString(),
		Name:     strings.TrimSpace(req.Name),
		Email:    strings.TrimSpace(req.Email),
		Headline: req.Headline,
		Skills:   req.Skills,
	}
	if err := s.repo.Create(ctx, candidate); err != nil {
		return nil, fmt.Errorf("failed to create candidate: %w", err)
	}

	s.logger.Info("candidate created", zap.Int64("id", candidate.ID))
	return candidate, nil
}

func (s *candidateService) Get(ctx context.Context, id int64) (*entity.Candidate, error) {
	candidate, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if candidate == nil {
		return nil, fmt.Errorf("%w: candidate %d", ErrNotFound, id)
	}
	return candidate, nil
}

func (s *candidateService) List(ctx context.Context, filter port.ListFilter) ([]*entity.Candidate, error) {
	return s.repo.List(ctx, filter)
}

func (s *candidateService) Update(ctx context.Context, id int64, req UpdateCandidateRequest) (*entity.Candidate, error) {
	candidate, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		candidate.Name = strings.TrimSpace(req.Name)
	}
	if req.Email != "" {
		if err := utils.ValidateEmail(strings.TrimSpace(req.Email)); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		candidate.Email = strings.TrimSpace(req.Email)
	}
	if req.Headline != "" {
		candidate.Headline = req.Headline
	}
	if req.Skills != "" {
		candidate.Skills = req.Skills
	}
	candidate.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, candidate); err != nil {
		return nil, fmt.Errorf("failed to update candidate: %w", err)
	}
	return candidate, nil
}
