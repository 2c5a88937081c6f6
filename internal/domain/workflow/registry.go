package workflow

import (
	"fmt"

	"github.com/samber/lo"
)

// cascadeTable maps (entity kind, resulting status, related kind) to the
// action the backend performs on the related entity.
type cascadeTable map[EntityKind]map[StatusKey]map[EntityKind]ActionKind

// Registry holds the state graphs and cascade rules for every entity kind.
// A registry is immutable once built; concurrent readers need no locking.
type Registry struct {
	workflows map[EntityKind]*Workflow
	order     []EntityKind
	cascades  cascadeTable
}

// Workflow returns the state graph registered for the given entity kind
func (r *Registry) Workflow(kind EntityKind) (*Workflow, error) {
	wf, ok := r.workflows[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownWorkflow, kind)
	}
	return wf, nil
}

// Kinds returns the registered entity kinds in registration order
func (r *Registry) Kinds() []EntityKind {
	return append([]EntityKind{}, r.order...)
}

// Builder assembles a Registry. Rule changes (feature flags, tenant
// overrides) go through a new builder and Build(), producing a fresh
// snapshot instead of mutating a table shared with concurrent readers.
type Builder struct {
	workflows map[EntityKind][]StatusNode
	order     []EntityKind
	cascades  cascadeTable
}

// NewBuilder creates an empty registry builder
func NewBuilder() *Builder {
	return &Builder{
		workflows: make(map[EntityKind][]StatusNode),
		cascades:  make(cascadeTable),
	}
}

// Register declares the state graph for an entity kind. Nodes keep their
// declaration order. Registering the same kind twice replaces the graph.
func (b *Builder) Register(kind EntityKind, nodes ...StatusNode) *Builder {
	if _, exists := b.workflows[kind]; !exists {
		b.order = append(b.order, kind)
	}
	b.workflows[kind] = nodes
	return b
}

// Cascade declares that when an entity of the given kind reaches status,
// the related entity kind is affected by action.
func (b *Builder) Cascade(kind EntityKind, status StatusKey, related EntityKind, action ActionKind) *Builder {
	byStatus, ok := b.cascades[kind]
	if !ok {
		byStatus = make(map[StatusKey]map[EntityKind]ActionKind)
		b.cascades[kind] = byStatus
	}
	byRelated, ok := byStatus[status]
	if !ok {
		byRelated = make(map[EntityKind]ActionKind)
		byStatus[status] = byRelated
	}
	byRelated[related] = action
	return b
}

// Build validates the declared graphs and rules and returns an immutable
// registry. Malformed tables are configuration bugs, so Build fails rather
// than letting a typo silently turn into "no transition allowed".
func (b *Builder) Build() (*Registry, error) {
	reg := &Registry{
		workflows: make(map[EntityKind]*Workflow, len(b.workflows)),
		order:     append([]EntityKind{}, b.order...),
		cascades:  make(cascadeTable, len(b.cascades)),
	}

	for _, kind := range b.order {
		wf, err := buildWorkflow(kind, b.workflows[kind])
		if err != nil {
			return nil, err
		}
		reg.workflows[kind] = wf
	}

	// Cascade rules must reference registered kinds and statuses.
	for kind, byStatus := range b.cascades {
		wf, ok := reg.workflows[kind]
		if !ok {
			return nil, fmt.Errorf("cascade rule for unregistered kind %q", kind)
		}
		copied := make(map[StatusKey]map[EntityKind]ActionKind, len(byStatus))
		for status, byRelated := range byStatus {
			if _, ok := wf.Node(status); !ok {
				return nil, fmt.Errorf("cascade rule for %s references unknown status %q", kind, status)
			}
			inner := make(map[EntityKind]ActionKind, len(byRelated))
			for related, action := range byRelated {
				if !related.IsValid() {
					return nil, fmt.Errorf("cascade rule for %s.%s references unknown kind %q", kind, status, related)
				}
				if !action.IsValid() {
					return nil, fmt.Errorf("cascade rule for %s.%s.%s has unknown action %q", kind, status, related, action)
				}
				inner[related] = action
			}
			copied[status] = inner
		}
		reg.cascades[kind] = copied
	}

	return reg, nil
}

// MustBuild is Build for process-start registration, where a malformed
// table should stop the process immediately.
func (b *Builder) MustBuild() *Registry {
	reg, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("workflow registry: %v", err))
	}
	return reg
}

func buildWorkflow(kind EntityKind, nodes []StatusNode) (*Workflow, error) {
	if !kind.IsValid() {
		return nil, fmt.Errorf("register: unknown entity kind %q", kind)
	}
	if len(nodes) == 0 {
		return nil, fmt.Errorf("register: workflow %s has no statuses", kind)
	}

	wf := &Workflow{
		kind:  kind,
		order: make([]StatusKey, 0, len(nodes)),
		nodes: make(map[StatusKey]StatusNode, len(nodes)),
	}
	for _, node := range nodes {
		if node.Key == "" {
			return nil, fmt.Errorf("workflow %s: status with empty key", kind)
		}
		if _, dup := wf.nodes[node.Key]; dup {
			return nil, fmt.Errorf("workflow %s: duplicate status %q", kind, node.Key)
		}
		wf.order = append(wf.order, node.Key)
		wf.nodes[node.Key] = node
	}

	for _, node := range wf.nodes {
		if node.Terminal && len(node.Next) > 0 {
			return nil, fmt.Errorf("workflow %s: terminal status %q has outgoing transitions", kind, node.Key)
		}
		for _, next := range node.Next {
			if _, ok := wf.nodes[next]; !ok {
				return nil, fmt.Errorf("workflow %s: status %q lists unknown next status %q", kind, node.Key, next)
			}
		}
		if bad, found := lo.Find(node.Cascade, func(k EntityKind) bool { return !k.IsValid() }); found {
			return nil, fmt.Errorf("workflow %s: status %q cascades to unknown kind %q", kind, node.Key, bad)
		}
	}

	return wf, nil
}
