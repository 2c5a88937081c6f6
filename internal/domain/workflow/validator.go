package workflow

import (
	"fmt"

	"github.com/samber/lo"
)

// ValidateTransition checks whether moving an entity of the given kind from
// one status to another is legal. Re-saving the current status is always
// allowed. Unlike the lenient helpers below, unknown kinds and statuses are
// reported as failures here: this is the strict entry point both the
// request-issuing and request-accepting layers rely on.
func (r *Registry) ValidateTransition(kind EntityKind, from, to StatusKey) TransitionResult {
	wf, err := r.Workflow(kind)
	if err != nil {
		return TransitionResult{Err: err}
	}

	fromNode, ok := wf.Node(from)
	if !ok {
		return TransitionResult{Err: fmt.Errorf("%w: %s has no status %q", ErrUnknownStatus, kind, from)}
	}
	toNode, ok := wf.Node(to)
	if !ok {
		return TransitionResult{Err: fmt.Errorf("%w: %s has no status %q", ErrUnknownStatus, kind, to)}
	}

	if from == to {
		return TransitionResult{Valid: true}
	}
	if lo.Contains(fromNode.Next, to) {
		return TransitionResult{Valid: true}
	}

	return TransitionResult{Err: fmt.Errorf("%w: cannot transition from %q to %q",
		ErrIllegalTransition, fromNode.Label, toNode.Label)}
}

// NextStatuses returns the selectable statuses from the given one: the
// current status first (flagged), then each reachable status in declaration
// order. Unknown kinds or statuses yield an empty list rather than an
// error, so selection controls simply render no options.
func (r *Registry) NextStatuses(kind EntityKind, from StatusKey) []StatusOption {
	wf, err := r.Workflow(kind)
	if err != nil {
		return []StatusOption{}
	}
	fromNode, ok := wf.Node(from)
	if !ok {
		return []StatusOption{}
	}

	options := make([]StatusOption, 0, len(fromNode.Next)+1)
	options = append(options, StatusOption{
		Value:     fromNode.Key,
		Label:     fromNode.Label,
		Color:     fromNode.Color,
		IsCurrent: true,
	})
	for _, next := range fromNode.Next {
		node, _ := wf.Node(next)
		options = append(options, StatusOption{
			Value: node.Key,
			Label: node.Label,
			Color: node.Color,
		})
	}
	return options
}

// IsTerminal reports whether the status allows no further transitions.
// Fail-open: unknown kinds and statuses are not terminal.
func (r *Registry) IsTerminal(kind EntityKind, status StatusKey) bool {
	wf, err := r.Workflow(kind)
	if err != nil {
		return false
	}
	node, ok := wf.Node(status)
	if !ok {
		return false
	}
	return node.Terminal
}

// CascadeEntities returns the related entity kinds declared on the status
// node, or an empty list when the node declares none or does not exist.
func (r *Registry) CascadeEntities(kind EntityKind, status StatusKey) []EntityKind {
	wf, err := r.Workflow(kind)
	if err != nil {
		return []EntityKind{}
	}
	node, ok := wf.Node(status)
	if !ok {
		return []EntityKind{}
	}
	return append([]EntityKind{}, node.Cascade...)
}

// CascadeAction looks up the action performed on a related entity kind when
// an entity of the given kind reaches status. The lookup is total: any
// undefined combination reports ok=false.
func (r *Registry) CascadeAction(kind EntityKind, status StatusKey, related EntityKind) (ActionKind, bool) {
	byStatus, ok := r.cascades[kind]
	if !ok {
		return "", false
	}
	byRelated, ok := byStatus[status]
	if !ok {
		return "", false
	}
	action, ok := byRelated[related]
	return action, ok
}

// Package-level shortcuts over the default registry.

// ValidateTransition validates a transition against the default registry
func ValidateTransition(kind EntityKind, from, to StatusKey) TransitionResult {
	return defaultRegistry.ValidateTransition(kind, from, to)
}

// NextStatuses returns the selectable statuses from the default registry
func NextStatuses(kind EntityKind, from StatusKey) []StatusOption {
	return defaultRegistry.NextStatuses(kind, from)
}

// IsTerminal reports terminality against the default registry
func IsTerminal(kind EntityKind, status StatusKey) bool {
	return defaultRegistry.IsTerminal(kind, status)
}

// CascadeEntities returns cascade targets from the default registry
func CascadeEntities(kind EntityKind, status StatusKey) []EntityKind {
	return defaultRegistry.CascadeEntities(kind, status)
}

// CascadeAction looks up a cascade action in the default registry
func CascadeAction(kind EntityKind, status StatusKey, related EntityKind) (ActionKind, bool) {
	return defaultRegistry.CascadeAction(kind, status, related)
}
