package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/talentops/hiring-ops/internal/application/port"
	"github.com/talentops/hiring-ops/internal/domain/entity"
	"github.com/talentops/hiring-ops/internal/domain/workflow"
)

// Mock repositories in the hand-rolled function-field style.

type mockInterviewRepo struct {
	getByIDFunc                func(ctx context.Context, id int64) (*entity.Interview, error)
	updateStatusFunc           func(ctx context.Context, id int64, status string) error
	updateAcceptanceStatusFunc func(ctx context.Context, id int64, status string) error
	cancelScheduledByJobIDFunc func(ctx context.Context, jobID int64) error
}

func (m *mockInterviewRepo) Create(ctx context.Context, interview *entity.Interview) error {
	return nil
}

func (m *mockInterviewRepo) GetByID(ctx context.Context, id int64) (*entity.Interview, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockInterviewRepo) List(ctx context.Context, filter port.ListFilter) ([]*entity.Interview, error) {
	return nil, nil
}

func (m *mockInterviewRepo) Update(ctx context.Context, interview *entity.Interview) error {
	return nil
}

func (m *mockInterviewRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	if m.updateStatusFunc != nil {
		return m.updateStatusFunc(ctx, id, status)
	}
	return nil
}

func (m *mockInterviewRepo) UpdateAcceptanceStatus(ctx context.Context, id int64, status string) error {
	if m.updateAcceptanceStatusFunc != nil {
		return m.updateAcceptanceStatusFunc(ctx, id, status)
	}
	return nil
}

func (m *mockInterviewRepo) CancelScheduledByJobID(ctx context.Context, jobID int64) error {
	if m.cancelScheduledByJobIDFunc != nil {
		return m.cancelScheduledByJobIDFunc(ctx, jobID)
	}
	return nil
}

func (m *mockInterviewRepo) ListUpcoming(ctx context.Context, within time.Duration) ([]*entity.Interview, error) {
	return nil, nil
}

func (m *mockInterviewRepo) ListPendingAcceptance(ctx context.Context) ([]*entity.Interview, error) {
	return nil, nil
}

type mockJobRepo struct {
	getByIDFunc      func(ctx context.Context, id int64) (*entity.Job, error)
	updateStatusFunc func(ctx context.Context, id int64, status string) error
}

func (m *mockJobRepo) Create(ctx context.Context, job *entity.Job) error { return nil }

func (m *mockJobRepo) GetByID(ctx context.Context, id int64) (*entity.Job, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockJobRepo) List(ctx context.Context, filter port.ListFilter) ([]*entity.Job, error) {
	return nil, nil
}

func (m *mockJobRepo) Update(ctx context.Context, job *entity.Job) error { return nil }

func (m *mockJobRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	if m.updateStatusFunc != nil {
		return m.updateStatusFunc(ctx, id, status)
	}
	return nil
}

type mockProjectRepo struct{}

func (m *mockProjectRepo) Create(ctx context.Context, project *entity.Project) error { return nil }
func (m *mockProjectRepo) GetByID(ctx context.Context, id int64) (*entity.Project, error) {
	return nil, nil
}
func (m *mockProjectRepo) List(ctx context.Context, filter port.ListFilter) ([]*entity.Project, error) {
	return nil, nil
}
func (m *mockProjectRepo) Update(ctx context.Context, project *entity.Project) error { return nil }
func (m *mockProjectRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	return nil
}

type mockAssignmentRepo struct {
	createFunc                   func(ctx context.Context, assignment *entity.Assignment) error
	getByCandidateAndProjectFunc func(ctx context.Context, candidateID, projectID int64) (*entity.Assignment, error)
	updateStatusFunc             func(ctx context.Context, id int64, status string) error
	removeAllByProjectIDFunc     func(ctx context.Context, projectID int64) error
}

func (m *mockAssignmentRepo) Create(ctx context.Context, assignment *entity.Assignment) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, assignment)
	}
	return nil
}

func (m *mockAssignmentRepo) GetByID(ctx context.Context, id int64) (*entity.Assignment, error) {
	return nil, nil
}

func (m *mockAssignmentRepo) GetByCandidateAndProject(ctx context.Context, candidateID, projectID int64) (*entity.Assignment, error) {
	if m.getByCandidateAndProjectFunc != nil {
		return m.getByCandidateAndProjectFunc(ctx, candidateID, projectID)
	}
	return nil, nil
}

func (m *mockAssignmentRepo) List(ctx context.Context, filter port.ListFilter) ([]*entity.Assignment, error) {
	return nil, nil
}

func (m *mockAssignmentRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	if m.updateStatusFunc != nil {
		return m.updateStatusFunc(ctx, id, status)
	}
	return nil
}

func (m *mockAssignmentRepo) RemoveAllByProjectID(ctx context.Context, projectID int64) error {
	if m.removeAllByProjectIDFunc != nil {
		return m.removeAllByProjectIDFunc(ctx, projectID)
	}
	return nil
}

type mockTaskRepo struct {
	getByIDFunc                   func(ctx context.Context, id int64) (*entity.AnnotationTask, error)
	updateStatusFunc              func(ctx context.Context, id int64, status string) error
	completeAllByProjectIDFunc    func(ctx context.Context, projectID int64) error
	completeAllByAssignmentIDFunc func(ctx context.Context, assignmentID int64) error
}

func (m *mockTaskRepo) Create(ctx context.Context, task *entity.AnnotationTask) error { return nil }

func (m *mockTaskRepo) GetByID(ctx context.Context, id int64) (*entity.AnnotationTask, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTaskRepo) List(ctx context.Context, filter port.ListFilter) ([]*entity.AnnotationTask, error) {
	return nil, nil
}

func (m *mockTaskRepo) Update(ctx context.Context, task *entity.AnnotationTask) error { return nil }

func (m *mockTaskRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	if m.updateStatusFunc != nil {
		return m.updateStatusFunc(ctx, id, status)
	}
	return nil
}

func (m *mockTaskRepo) CompleteAllByProjectID(ctx context.Context, projectID int64) error {
	if m.completeAllByProjectIDFunc != nil {
		return m.completeAllByProjectIDFunc(ctx, projectID)
	}
	return nil
}

func (m *mockTaskRepo) RemoveAllByProjectID(ctx context.Context, projectID int64) error { return nil }

func (m *mockTaskRepo) CompleteAllByAssignmentID(ctx context.Context, assignmentID int64) error {
	if m.completeAllByAssignmentIDFunc != nil {
		return m.completeAllByAssignmentIDFunc(ctx, assignmentID)
	}
	return nil
}

func (m *mockTaskRepo) RemoveAllByAssignmentID(ctx context.Context, assignmentID int64) error {
	return nil
}

type mockChangeRepo struct {
	createFunc func(ctx context.Context, change *entity.StatusChange) error
}

func (m *mockChangeRepo) Create(ctx context.Context, change *entity.StatusChange) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, change)
	}
	return nil
}

func (m *mockChangeRepo) ListByEntity(ctx context.Context, entityKind string, entityID int64) ([]*entity.StatusChange, error) {
	return nil, nil
}

type mockNotifier struct {
	notifyFunc func(ctx context.Context, entityKind string, entityID int64, message string) error
}

func (m *mockNotifier) Notify(ctx context.Context, entityKind string, entityID int64, message string) error {
	if m.notifyFunc != nil {
		return m.notifyFunc(ctx, entityKind, entityID, message)
	}
	return nil
}

type transitionFixture struct {
	interviews  *mockInterviewRepo
	jobs        *mockJobRepo
	projects    *mockProjectRepo
	assignments *mockAssignmentRepo
	tasks       *mockTaskRepo
	changes     *mockChangeRepo
	notifier    *mockNotifier
	service     TransitionService
}

func newTransitionFixture() *transitionFixture {
	f := &transitionFixture{
		interviews:  &mockInterviewRepo{},
		jobs:        &mockJobRepo{},
		projects:    &mockProjectRepo{},
		assignments: &mockAssignmentRepo{},
		tasks:       &mockTaskRepo{},
		changes:     &mockChangeRepo{},
		notifier:    &mockNotifier{},
	}
	logger := zap.NewNop()
	registry := workflow.Default()
	executor := NewCascadeExecutor(registry, f.interviews, f.assignments, f.tasks, f.notifier, logger)
	f.service = NewTransitionService(registry, f.interviews, f.jobs, f.projects, f.assignments, f.tasks, f.changes, executor, logger)
	return f
}

func TestTransition_AcceptanceAcceptedCreatesAssignment(t *testing.T) {
	f := newTransitionFixture()

	f.interviews.getByIDFunc = func(ctx context.Context, id int64) (*entity.Interview, error) {
		return &entity.Interview{
			ID: id, CandidateID: 7, JobID: 3,
			Status:           workflow.InterviewCompleted.String(),
			AcceptanceStatus: workflow.AcceptancePending.String(),
		}, nil
	}
	f.jobs.getByIDFunc = func(ctx context.Context, id int64) (*entity.Job, error) {
		return &entity.Job{ID: id, ProjectID: 11, Status: workflow.JobInProgress.String()}, nil
	}

	var persistedStatus string
	f.interviews.updateAcceptanceStatusFunc = func(ctx context.Context, id int64, status string) error {
		persistedStatus = status
		return nil
	}

	var createdAssignment *entity.Assignment
	f.assignments.createFunc = func(ctx context.Context, assignment *entity.Assignment) error {
		createdAssignment = assignment
		assignment.ID = 42
		return nil
	}

	var recordedChange *entity.StatusChange
	f.changes.createFunc = func(ctx context.Context, change *entity.StatusChange) error {
		recordedChange = change
		return nil
	}

	outcome, err := f.service.Transition(context.Background(), workflow.KindAcceptance, 1, workflow.AcceptanceAccepted)
	if err != nil {
		t.Fatalf("Transition() error: %v", err)
	}

	if persistedStatus != "accepted" {
		t.Errorf("persisted acceptance status = %q, want accepted", persistedStatus)
	}
	if createdAssignment == nil {
		t.Fatal("expected an assignment to be created")
	}
	if createdAssignment.CandidateID != 7 || createdAssignment.ProjectID != 11 {
		t.Errorf("assignment scoped to candidate=%d project=%d, want 7/11",
			createdAssignment.CandidateID, createdAssignment.ProjectID)
	}
	if createdAssignment.Status != "active" {
		t.Errorf("assignment status = %q, want active", createdAssignment.Status)
	}

	wantSummary := `Acceptance status updated from "Pending" to "Accepted". Also updated: assignment create_or_activate`
	if outcome.Summary != wantSummary {
		t.Errorf("Summary = %q, want %q", outcome.Summary, wantSummary)
	}
	if len(outcome.Cascades) != 1 || outcome.Cascades[0].Action != "create_or_activate" {
		t.Errorf("Cascades = %+v, want one create_or_activate", outcome.Cascades)
	}
	if recordedChange == nil || recordedChange.ToStatus != "accepted" {
		t.Errorf("status change not recorded correctly: %+v", recordedChange)
	}
}

func TestTransition_AcceptanceAcceptedReactivatesExistingAssignment(t *testing.T) {
	f := newTransitionFixture()

	f.interviews.getByIDFunc = func(ctx context.Context, id int64) (*entity.Interview, error) {
		return &entity.Interview{ID: id, CandidateID: 7, JobID: 3, AcceptanceStatus: "pending"}, nil
	}
	f.jobs.getByIDFunc = func(ctx context.Context, id int64) (*entity.Job, error) {
		return &entity.Job{ID: id, ProjectID: 11}, nil
	}
	f.assignments.getByCandidateAndProjectFunc = func(ctx context.Context, candidateID, projectID int64) (*entity.Assignment, error) {
		return &entity.Assignment{ID: 42, CandidateID: candidateID, ProjectID: projectID, Status: "paused"}, nil
	}

	created := false
	f.assignments.createFunc = func(ctx context.Context, assignment *entity.Assignment) error {
		created = true
		return nil
	}
	var reactivatedID int64
	var reactivatedStatus string
	f.assignments.updateStatusFunc = func(ctx context.Context, id int64, status string) error {
		reactivatedID, reactivatedStatus = id, status
		return nil
	}

	if _, err := f.service.Transition(context.Background(), workflow.KindAcceptance, 1, workflow.AcceptanceAccepted); err != nil {
		t.Fatalf("Transition() error: %v", err)
	}
	if created {
		t.Error("existing assignment should be reactivated, not recreated")
	}
	if reactivatedID != 42 || reactivatedStatus != "active" {
		t.Errorf("reactivated assignment %d to %q, want 42 to active", reactivatedID, reactivatedStatus)
	}
}

func TestTransition_IllegalTransitionRejectedWithoutWrites(t *testing.T) {
	f := newTransitionFixture()

	f.interviews.getByIDFunc = func(ctx context.Context, id int64) (*entity.Interview, error) {
		return &entity.Interview{ID: id, AcceptanceStatus: "accepted"}, nil
	}
	f.interviews.updateAcceptanceStatusFunc = func(ctx context.Context, id int64, status string) error {
		t.Error("no status write should happen for an illegal transition")
		return nil
	}

	_, err := f.service.Transition(context.Background(), workflow.KindAcceptance, 1, workflow.AcceptancePending)
	if !errors.Is(err, workflow.ErrIllegalTransition) {
		t.Errorf("err = %v, want ErrIllegalTransition", err)
	}
}

func TestTransition_NoOpSkipsPersistAndCascades(t *testing.T) {
	f := newTransitionFixture()

	f.jobs.getByIDFunc = func(ctx context.Context, id int64) (*entity.Job, error) {
		return &entity.Job{ID: id, ProjectID: 11, Status: "open"}, nil
	}
	f.jobs.updateStatusFunc = func(ctx context.Context, id int64, status string) error {
		t.Error("re-saving the current status should not hit the repository")
		return nil
	}
	f.changes.createFunc = func(ctx context.Context, change *entity.StatusChange) error {
		t.Error("re-saving the current status should not record history")
		return nil
	}

	outcome, err := f.service.Transition(context.Background(), workflow.KindJob, 1, workflow.JobOpen)
	if err != nil {
		t.Fatalf("Transition() error: %v", err)
	}
	if outcome.FromStatus != "open" || outcome.ToStatus != "open" {
		t.Errorf("outcome = %+v, want open -> open", outcome)
	}
}

func TestTransition_ArchivedJobCancelsScheduledInterviews(t *testing.T) {
	f := newTransitionFixture()

	f.jobs.getByIDFunc = func(ctx context.Context, id int64) (*entity.Job, error) {
		return &entity.Job{ID: id, ProjectID: 11, Status: "open"}, nil
	}

	var canceledJobID int64
	f.interviews.cancelScheduledByJobIDFunc = func(ctx context.Context, jobID int64) error {
		canceledJobID = jobID
		return nil
	}

	if _, err := f.service.Transition(context.Background(), workflow.KindJob, 5, workflow.JobArchived); err != nil {
		t.Fatalf("Transition() error: %v", err)
	}
	if canceledJobID != 5 {
		t.Errorf("canceled interviews for job %d, want 5", canceledJobID)
	}
}

func TestTransition_CompletedInterviewOpensAcceptance(t *testing.T) {
	f := newTransitionFixture()

	f.interviews.getByIDFunc = func(ctx context.Context, id int64) (*entity.Interview, error) {
		return &entity.Interview{ID: id, CandidateID: 7, JobID: 3, Status: "scheduled"}, nil
	}
	f.jobs.getByIDFunc = func(ctx context.Context, id int64) (*entity.Job, error) {
		return &entity.Job{ID: id, ProjectID: 11}, nil
	}

	var acceptanceStatus string
	f.interviews.updateAcceptanceStatusFunc = func(ctx context.Context, id int64, status string) error {
		acceptanceStatus = status
		return nil
	}

	if _, err := f.service.Transition(context.Background(), workflow.KindInterview, 1, workflow.InterviewCompleted); err != nil {
		t.Fatalf("Transition() error: %v", err)
	}
	if acceptanceStatus != "pending" {
		t.Errorf("acceptance status = %q, want pending after completed interview", acceptanceStatus)
	}
}

func TestTransition_ApprovedTaskNotifiesAssignment(t *testing.T) {
	f := newTransitionFixture()

	assignmentID := int64(42)
	f.tasks.getByIDFunc = func(ctx context.Context, id int64) (*entity.AnnotationTask, error) {
		return &entity.AnnotationTask{ID: id, ProjectID: 11, AssignmentID: &assignmentID, Status: "submitted"}, nil
	}

	var notifiedKind string
	var notifiedID int64
	f.notifier.notifyFunc = func(ctx context.Context, entityKind string, entityID int64, message string) error {
		notifiedKind, notifiedID = entityKind, entityID
		return nil
	}

	if _, err := f.service.Transition(context.Background(), workflow.KindAnnotationTask, 9, workflow.TaskApproved); err != nil {
		t.Fatalf("Transition() error: %v", err)
	}
	if notifiedKind != "assignment" || notifiedID != 42 {
		t.Errorf("notified %s/%d, want assignment/42", notifiedKind, notifiedID)
	}
}

func TestTransition_UnknownKind(t *testing.T) {
	f := newTransitionFixture()

	_, err := f.service.Transition(context.Background(), workflow.EntityKind("invoice"), 1, "anything")
	if !errors.Is(err, workflow.ErrUnknownWorkflow) {
		t.Errorf("err = %v, want ErrUnknownWorkflow", err)
	}
}

func TestTransition_MissingEntity(t *testing.T) {
	f := newTransitionFixture()

	f.jobs.getByIDFunc = func(ctx context.Context, id int64) (*entity.Job, error) {
		return nil, nil
	}

	_, err := f.service.Transition(context.Background(), workflow.KindJob, 99, workflow.JobOpen)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
