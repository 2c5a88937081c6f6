package export

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/talentops/hiring-ops/internal/application/port"
	"github.com/talentops/hiring-ops/internal/domain/entity"
)

type mockInterviewRepo struct {
	listFn func(ctx context.Context, filter port.ListFilter) ([]*entity.Interview, error)
}

func (m *mockInterviewRepo) Create(ctx context.Context, interview *entity.Interview) error {
	return nil
}
func (m *mockInterviewRepo) GetByID(ctx context.Context, id int64) (*entity.Interview, error) {
	return nil, nil
}
func (m *mockInterviewRepo) List(ctx context.Context, filter port.ListFilter) ([]*entity.Interview, error) {
	return m.listFn(ctx, filter)
}
func (m *mockInterviewRepo) Update(ctx context.Context, interview *entity.Interview) error {
	return nil
}
func (m *mockInterviewRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	return nil
}
func (m *mockInterviewRepo) UpdateAcceptanceStatus(ctx context.Context, id int64, status string) error {
	return nil
}
func (m *mockInterviewRepo) CancelScheduledByJobID(ctx context.Context, jobID int64) error {
	return nil
}
func (m *mockInterviewRepo) ListUpcoming(ctx context.Context, within time.Duration) ([]*entity.Interview, error) {
	return nil, nil
}
func (m *mockInterviewRepo) ListPendingAcceptance(ctx context.Context) ([]*entity.Interview, error) {
	return nil, nil
}

type mockCandidateRepo struct {
	getFn func(ctx context.Context, id int64) (*entity.Candidate, error)
}

func (m *mockCandidateRepo) Create(ctx context.Context, candidate *entity.Candidate) error {
	return nil
}
func (m *mockCandidateRepo) GetByID(ctx context.Context, id int64) (*entity.Candidate, error) {
	return m.getFn(ctx, id)
}
func (m *mockCandidateRepo) List(ctx context.Context, filter port.ListFilter) ([]*entity.Candidate, error) {
	return nil, nil
}
func (m *mockCandidateRepo) Update(ctx context.Context, candidate *entity.Candidate) error {
	return nil
}

type mockJobRepo struct {
	getFn func(ctx context.Context, id int64) (*entity.Job, error)
}

func (m *mockJobRepo) Create(ctx context.Context, job *entity.Job) error { return nil }
func (m *mockJobRepo) GetByID(ctx context.Context, id int64) (*entity.Job, error) {
	return m.getFn(ctx, id)
}
func (m *mockJobRepo) List(ctx context.Context, filter port.ListFilter) ([]*entity.Job, error) {
	return nil, nil
}
func (m *mockJobRepo) Update(ctx context.Context, job *entity.Job) error { return nil }
func (m *mockJobRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	return nil
}

func TestRosterExport(t *testing.T) {
	scheduled := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	interviews := &mockInterviewRepo{
		listFn: func(ctx context.Context, filter port.ListFilter) ([]*entity.Interview, error) {
			return []*entity.Interview{
				{
					ID:          1,
					PublicID:    "iv-001",
					CandidateID: 7,
					JobID:       3,
					ScheduledAt: scheduled,
					Status:      "completed",
				},
				{
					ID:               2,
					PublicID:         "iv-002",
					CandidateID:      7,
					JobID:            3,
					ScheduledAt:      scheduled.Add(48 * time.Hour),
					Status:           "completed",
					AcceptanceStatus: "accepted",
				},
			}, nil
		},
	}
	candidates := &mockCandidateRepo{
		getFn: func(ctx context.Context, id int64) (*entity.Candidate, error) {
			return &entity.Candidate{ID: id, Name: "Priya Shah", Email: "priya@example.com"}, nil
		},
	}
	jobs := &mockJobRepo{
		getFn: func(ctx context.Context, id int64) (*entity.Job, error) {
			return &entity.Job{ID: id, Title: "Senior Annotator"}, nil
		},
	}

	exporter := NewRosterExporter(interviews, candidates, jobs, zap.NewNop())

	var buf bytes.Buffer
	require.NoError(t, exporter.Export(context.Background(), port.ListFilter{Limit: 100}, &buf))

	file, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer file.Close()

	rows, err := file.GetRows(rosterSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, rosterHeader, rows[0])

	assert.Equal(t, "iv-001", rows[1][0])
	assert.Equal(t, "Priya Shah", rows[1][1])
	assert.Equal(t, "Senior Annotator", rows[1][3])
	assert.Equal(t, "Completed", rows[1][5])

	// Second interview carries an offer decision
	assert.Equal(t, "Accepted", rows[2][6])
}

func TestRosterExportEmpty(t *testing.T) {
	interviews := &mockInterviewRepo{
		listFn: func(ctx context.Context, filter port.ListFilter) ([]*entity.Interview, error) {
			return nil, nil
		},
	}
	exporter := NewRosterExporter(interviews, &mockCandidateRepo{}, &mockJobRepo{}, zap.NewNop())

	var buf bytes.Buffer
	require.NoError(t, exporter.Export(context.Background(), port.ListFilter{Limit: 100}, &buf))

	file, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer file.Close()

	rows, err := file.GetRows(rosterSheet)
	require.NoError(t, err)
	require.Len(t, rows, 1)
}
