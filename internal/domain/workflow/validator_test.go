package workflow

import (
	"errors"
	"testing"
)

func TestValidateTransition_Acceptance(t *testing.T) {
	tests := []struct {
		name    string
		from    StatusKey
		to      StatusKey
		valid   bool
		wantErr error
	}{
		{"pending to accepted", AcceptancePending, AcceptanceAccepted, true, nil},
		{"pending to rejected", AcceptancePending, AcceptanceRejected, true, nil},
		{"accepted back to pending", AcceptanceAccepted, AcceptancePending, false, ErrIllegalTransition},
		{"rejected to accepted", AcceptanceRejected, AcceptanceAccepted, false, ErrIllegalTransition},
		{"re-save current status", AcceptancePending, AcceptancePending, true, nil},
		{"unknown target", AcceptancePending, StatusKey("bogus"), false, ErrUnknownStatus},
		{"unknown source", StatusKey("bogus"), AcceptanceAccepted, false, ErrUnknownStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateTransition(KindAcceptance, tt.from, tt.to)
			if result.Valid != tt.valid {
				t.Errorf("ValidateTransition() valid = %v, want %v (err: %v)", result.Valid, tt.valid, result.Err)
			}
			if tt.wantErr != nil && !errors.Is(result.Err, tt.wantErr) {
				t.Errorf("ValidateTransition() err = %v, want %v", result.Err, tt.wantErr)
			}
		})
	}
}

func TestValidateTransition_IllegalMessageUsesLabels(t *testing.T) {
	result := ValidateTransition(KindAcceptance, AcceptanceAccepted, AcceptancePending)
	if result.Valid {
		t.Fatal("expected transition to be rejected")
	}
	want := `illegal transition: cannot transition from "Accepted" to "Pending"`
	if result.Err.Error() != want {
		t.Errorf("error message = %q, want %q", result.Err.Error(), want)
	}
}

func TestValidateTransition_ArchivedJobHasNoOutgoingEdges(t *testing.T) {
	result := ValidateTransition(KindJob, JobArchived, JobInProgress)
	if result.Valid {
		t.Error("archived jobs must not transition back to in_progress")
	}
	if !errors.Is(result.Err, ErrIllegalTransition) {
		t.Errorf("err = %v, want ErrIllegalTransition", result.Err)
	}
}

func TestValidateTransition_UnknownKind(t *testing.T) {
	result := ValidateTransition(EntityKind("invoice"), AcceptancePending, AcceptanceAccepted)
	if result.Valid {
		t.Error("unknown kind must not validate")
	}
	if !errors.Is(result.Err, ErrUnknownWorkflow) {
		t.Errorf("err = %v, want ErrUnknownWorkflow", result.Err)
	}
}

// Re-saving the current status is valid for every registered status.
func TestValidateTransition_IdempotentAcrossAllWorkflows(t *testing.T) {
	for _, kind := range Default().Kinds() {
		wf, err := Default().Workflow(kind)
		if err != nil {
			t.Fatalf("Workflow(%s) error: %v", kind, err)
		}
		for _, node := range wf.Nodes() {
			if result := ValidateTransition(kind, node.Key, node.Key); !result.Valid {
				t.Errorf("ValidateTransition(%s, %s, %s) not valid: %v", kind, node.Key, node.Key, result.Err)
			}
		}
	}
}

// Every edge declared in a Next list must validate.
func TestValidateTransition_ClosureOverDeclaredEdges(t *testing.T) {
	for _, kind := range Default().Kinds() {
		wf, _ := Default().Workflow(kind)
		for _, node := range wf.Nodes() {
			for _, next := range node.Next {
				if result := ValidateTransition(kind, node.Key, next); !result.Valid {
					t.Errorf("declared edge %s: %s -> %s rejected: %v", kind, node.Key, next, result.Err)
				}
			}
		}
	}
}

// Terminal statuses offer no transitions beyond re-saving themselves.
func TestIsTerminal_NoOutgoingEdges(t *testing.T) {
	for _, kind := range Default().Kinds() {
		wf, _ := Default().Workflow(kind)
		for _, node := range wf.Nodes() {
			if !IsTerminal(kind, node.Key) {
				continue
			}
			options := NextStatuses(kind, node.Key)
			if len(options) != 1 || options[0].Value != node.Key || !options[0].IsCurrent {
				t.Errorf("terminal %s.%s should offer only itself, got %v", kind, node.Key, options)
			}
		}
	}
}

func TestIsTerminal(t *testing.T) {
	tests := []struct {
		kind     EntityKind
		status   StatusKey
		expected bool
	}{
		{KindAcceptance, AcceptanceAccepted, true},
		{KindAcceptance, AcceptanceRejected, true},
		{KindAcceptance, AcceptancePending, false},
		{KindJob, JobArchived, true},
		{KindJob, JobOpen, false},
		{KindAnnotationTask, TaskApproved, true},
		// Fail-open on unknown input.
		{EntityKind("invoice"), AcceptanceAccepted, false},
		{KindJob, StatusKey("bogus"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind)+"/"+string(tt.status), func(t *testing.T) {
			if got := IsTerminal(tt.kind, tt.status); got != tt.expected {
				t.Errorf("IsTerminal(%s, %s) = %v, want %v", tt.kind, tt.status, got, tt.expected)
			}
		})
	}
}

func TestNextStatuses_CurrentFirstThenDeclarationOrder(t *testing.T) {
	options := NextStatuses(KindAcceptance, AcceptancePending)

	want := []struct {
		value     StatusKey
		isCurrent bool
	}{
		{AcceptancePending, true},
		{AcceptanceAccepted, false},
		{AcceptanceRejected, false},
	}

	if len(options) != len(want) {
		t.Fatalf("NextStatuses() returned %d options, want %d", len(options), len(want))
	}
	for i, w := range want {
		if options[i].Value != w.value || options[i].IsCurrent != w.isCurrent {
			t.Errorf("options[%d] = {%s, current=%v}, want {%s, current=%v}",
				i, options[i].Value, options[i].IsCurrent, w.value, w.isCurrent)
		}
	}
}

// The lenient helpers swallow unknown input while the strict validator
// rejects it. That asymmetry is the contract callers depend on.
func TestUnknownKind_LenientHelpersStayQuiet(t *testing.T) {
	kind := EntityKind("invoice")

	if result := ValidateTransition(kind, "a", "b"); result.Valid || !errors.Is(result.Err, ErrUnknownWorkflow) {
		t.Errorf("strict validator should reject unknown kind, got valid=%v err=%v", result.Valid, result.Err)
	}
	if options := NextStatuses(kind, "a"); len(options) != 0 {
		t.Errorf("NextStatuses() = %v, want empty", options)
	}
	if IsTerminal(kind, "a") {
		t.Error("IsTerminal() should be false for unknown kind")
	}
	if entities := CascadeEntities(kind, "a"); len(entities) != 0 {
		t.Errorf("CascadeEntities() = %v, want empty", entities)
	}
	if action, ok := CascadeAction(kind, "a", KindAssignment); ok {
		t.Errorf("CascadeAction() = %v, want absent", action)
	}
}

func TestCascadeAction(t *testing.T) {
	tests := []struct {
		name       string
		kind       EntityKind
		status     StatusKey
		related    EntityKind
		wantAction ActionKind
		wantOK     bool
	}{
		{"accepted activates assignment", KindAcceptance, AcceptanceAccepted, KindAssignment, ActionCreateOrActivate, true},
		{"rejected removes assignment", KindAcceptance, AcceptanceRejected, KindAssignment, ActionRemove, true},
		{"archived job removes interviews", KindJob, JobArchived, KindInterview, ActionRemoveAll, true},
		{"completed project completes tasks", KindProject, ProjectCompleted, KindAnnotationTask, ActionCompleteAll, true},
		{"approved task notifies assignment", KindAnnotationTask, TaskApproved, KindAssignment, ActionNotify, true},
		{"undefined related kind", KindAcceptance, AcceptanceAccepted, KindJob, "", false},
		{"undefined status", KindAcceptance, AcceptancePending, KindAssignment, "", false},
		{"undefined kind", EntityKind("invoice"), AcceptanceAccepted, KindAssignment, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, ok := CascadeAction(tt.kind, tt.status, tt.related)
			if ok != tt.wantOK || action != tt.wantAction {
				t.Errorf("CascadeAction() = (%v, %v), want (%v, %v)", action, ok, tt.wantAction, tt.wantOK)
			}
		})
	}
}

func TestCascadeEntities(t *testing.T) {
	entities := CascadeEntities(KindAcceptance, AcceptanceAccepted)
	if len(entities) != 1 || entities[0] != KindAssignment {
		t.Errorf("CascadeEntities() = %v, want [assignment]", entities)
	}

	if entities := CascadeEntities(KindAcceptance, AcceptancePending); len(entities) != 0 {
		t.Errorf("CascadeEntities() = %v, want empty", entities)
	}
}

// Every cascade rule in the default table must have a matching entry in the
// status node's cascade list, so the UI warning and the backend writes agree.
func TestDefaultRegistry_CascadeRulesDeclaredOnNodes(t *testing.T) {
	for _, kind := range Default().Kinds() {
		wf, _ := Default().Workflow(kind)
		for _, node := range wf.Nodes() {
			for _, related := range node.Cascade {
				if _, ok := CascadeAction(kind, node.Key, related); !ok {
					t.Errorf("%s.%s declares cascade to %s but no action rule exists", kind, node.Key, related)
				}
			}
		}
	}
}
