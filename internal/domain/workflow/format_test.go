package workflow

import "testing"

func TestStatusLabel(t *testing.T) {
	tests := []struct {
		name     string
		kind     EntityKind
		status   StatusKey
		expected string
	}{
		{"known status", KindAcceptance, AcceptanceAccepted, "Accepted"},
		{"multi-word label", KindJob, JobInProgress, "In Progress"},
		{"unknown status falls back to key", KindJob, StatusKey("mystery"), "mystery"},
		{"unknown kind falls back to key", EntityKind("invoice"), StatusKey("draft"), "draft"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusLabel(tt.kind, tt.status); got != tt.expected {
				t.Errorf("StatusLabel() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestStatusColor(t *testing.T) {
	if got := StatusColor(KindAcceptance, AcceptanceRejected); got != ColorRed {
		t.Errorf("StatusColor() = %v, want %v", got, ColorRed)
	}
	if got := StatusColor(EntityKind("invoice"), "draft"); got != ColorGray {
		t.Errorf("StatusColor() on unknown kind = %v, want gray fallback", got)
	}
}

func TestChangeSummary(t *testing.T) {
	tests := []struct {
		name     string
		kind     EntityKind
		from, to StatusKey
		expected string
	}{
		{
			name:     "transition with cascade",
			kind:     KindAcceptance,
			from:     AcceptancePending,
			to:       AcceptanceAccepted,
			expected: `Acceptance status updated from "Pending" to "Accepted". Also updated: assignment create_or_activate`,
		},
		{
			name:     "transition without cascade",
			kind:     KindJob,
			from:     JobDraft,
			to:       JobOpen,
			expected: `Job status updated from "Draft" to "Open".`,
		},
		{
			name:     "camel-case kind is spelled out",
			kind:     KindAnnotationTask,
			from:     TaskSubmitted,
			to:       TaskApproved,
			expected: `Annotation task status updated from "Submitted" to "Approved". Also updated: assignment notify`,
		},
		{
			name:     "multiple cascade targets",
			kind:     KindProject,
			from:     ProjectPaused,
			to:       ProjectCanceled,
			expected: `Project status updated from "Paused" to "Canceled". Also updated: annotationTask remove_all, assignment remove_all`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ChangeSummary(tt.kind, tt.from, tt.to); got != tt.expected {
				t.Errorf("ChangeSummary() = %q, want %q", got, tt.expected)
			}
		})
	}
}
