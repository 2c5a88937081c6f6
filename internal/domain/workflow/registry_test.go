package workflow

import (
	"errors"
	"strings"
	"testing"
)

func TestBuilder_BuildValidRegistry(t *testing.T) {
	reg, err := NewBuilder().
		Register(KindJob,
			StatusNode{Key: "draft", Label: "Draft", Color: ColorGray, Next: []StatusKey{"live"}},
			StatusNode{Key: "live", Label: "Live", Color: ColorGreen, Terminal: true},
		).
		Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	wf, err := reg.Workflow(KindJob)
	if err != nil {
		t.Fatalf("Workflow() error: %v", err)
	}
	if got := len(wf.Nodes()); got != 2 {
		t.Errorf("Nodes() returned %d nodes, want 2", got)
	}
}

func TestBuilder_BuildFailsFast(t *testing.T) {
	tests := []struct {
		name    string
		builder *Builder
		wantMsg string
	}{
		{
			name: "dangling next reference",
			builder: NewBuilder().Register(KindJob,
				StatusNode{Key: "draft", Label: "Draft", Next: []StatusKey{"missing"}},
			),
			wantMsg: "unknown next status",
		},
		{
			name: "terminal node with outgoing edges",
			builder: NewBuilder().Register(KindJob,
				StatusNode{Key: "draft", Label: "Draft", Next: []StatusKey{"done"}},
				StatusNode{Key: "done", Label: "Done", Terminal: true, Next: []StatusKey{"draft"}},
			),
			wantMsg: "terminal status",
		},
		{
			name: "duplicate status key",
			builder: NewBuilder().Register(KindJob,
				StatusNode{Key: "draft", Label: "Draft"},
				StatusNode{Key: "draft", Label: "Draft Again"},
			),
			wantMsg: "duplicate status",
		},
		{
			name:    "unknown entity kind",
			builder: NewBuilder().Register(EntityKind("invoice"), StatusNode{Key: "a", Label: "A"}),
			wantMsg: "unknown entity kind",
		},
		{
			name:    "empty workflow",
			builder: NewBuilder().Register(KindJob),
			wantMsg: "no statuses",
		},
		{
			name: "cascade to unknown kind on node",
			builder: NewBuilder().Register(KindJob,
				StatusNode{Key: "done", Label: "Done", Terminal: true, Cascade: []EntityKind{"invoice"}},
			),
			wantMsg: "unknown kind",
		},
		{
			name: "cascade rule for unregistered kind",
			builder: NewBuilder().
				Register(KindJob, StatusNode{Key: "done", Label: "Done", Terminal: true}).
				Cascade(KindProject, "done", KindAssignment, ActionRemove),
			wantMsg: "unregistered kind",
		},
		{
			name: "cascade rule for unknown status",
			builder: NewBuilder().
				Register(KindJob, StatusNode{Key: "done", Label: "Done", Terminal: true}).
				Cascade(KindJob, "missing", KindAssignment, ActionRemove),
			wantMsg: "unknown status",
		},
		{
			name: "cascade rule with unknown action",
			builder: NewBuilder().
				Register(KindJob, StatusNode{Key: "done", Label: "Done", Terminal: true}).
				Cascade(KindJob, "done", KindAssignment, ActionKind("explode")),
			wantMsg: "unknown action",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.builder.Build()
			if err == nil {
				t.Fatal("Build() should fail")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Build() error = %q, want substring %q", err, tt.wantMsg)
			}
		})
	}
}

func TestRegistry_WorkflowUnknownKind(t *testing.T) {
	_, err := Default().Workflow(EntityKind("invoice"))
	if !errors.Is(err, ErrUnknownWorkflow) {
		t.Errorf("Workflow() err = %v, want ErrUnknownWorkflow", err)
	}
}

func TestDefault_RegistersAllKinds(t *testing.T) {
	want := []EntityKind{
		KindInterview, KindAcceptance, KindJob,
		KindProject, KindAssignment, KindAnnotationTask,
	}
	got := Default().Kinds()
	if len(got) != len(want) {
		t.Fatalf("Kinds() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Kinds()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestMustBuild_PanicsOnMalformedTable(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("MustBuild() should panic on a malformed table")
		}
	}()

	NewBuilder().
		Register(KindJob, StatusNode{Key: "draft", Label: "Draft", Next: []StatusKey{"missing"}}).
		MustBuild()
}

// Rebuilding from a builder must not alias the previous snapshot.
func TestBuilder_SnapshotsAreIndependent(t *testing.T) {
	builder := NewBuilder().
		Register(KindJob,
			StatusNode{Key: "draft", Label: "Draft", Next: []StatusKey{"live"}},
			StatusNode{Key: "live", Label: "Live", Terminal: true},
		)

	first, err := builder.Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	builder.Register(KindJob,
		StatusNode{Key: "draft", Label: "Draft", Terminal: true},
	)
	second, err := builder.Build()
	if err != nil {
		t.Fatalf("second Build() error: %v", err)
	}

	if got := len(mustWorkflow(t, first, KindJob).Nodes()); got != 2 {
		t.Errorf("first snapshot changed: %d nodes, want 2", got)
	}
	if got := len(mustWorkflow(t, second, KindJob).Nodes()); got != 1 {
		t.Errorf("second snapshot has %d nodes, want 1", got)
	}
}

func mustWorkflow(t *testing.T, reg *Registry, kind EntityKind) *Workflow {
	t.Helper()
	wf, err := reg.Workflow(kind)
	if err != nil {
		t.Fatalf("Workflow(%s) error: %v", kind, err)
	}
	return wf
}
