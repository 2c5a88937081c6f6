package workflow

import (
	"fmt"
	"strings"
)

// StatusLabel returns the display label for a status, falling back to the
// raw key when the kind or status is unknown. Display helpers never error.
func (r *Registry) StatusLabel(kind EntityKind, status StatusKey) string {
	wf, err := r.Workflow(kind)
	if err != nil {
		return string(status)
	}
	node, ok := wf.Node(status)
	if !ok {
		return string(status)
	}
	return node.Label
}

// StatusColor returns the badge color for a status, gray when unknown
func (r *Registry) StatusColor(kind EntityKind, status StatusKey) Color {
	wf, err := r.Workflow(kind)
	if err != nil {
		return ColorGray
	}
	node, ok := wf.Node(status)
	if !ok {
		return ColorGray
	}
	return node.Color
}

// ChangeSummary builds a one-line human-readable description of a status
// change and its cascades, for toasts and audit rows. It formats whatever
// it is given; legality is the validator's job.
func (r *Registry) ChangeSummary(kind EntityKind, from, to StatusKey) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s status updated from %q to %q.",
		titleKind(kind), r.StatusLabel(kind, from), r.StatusLabel(kind, to))

	var effects []string
	for _, related := range r.CascadeEntities(kind, to) {
		if action, ok := r.CascadeAction(kind, to, related); ok {
			effects = append(effects, fmt.Sprintf("%s %s", related, action))
		} else {
			effects = append(effects, string(related))
		}
	}
	if len(effects) > 0 {
		fmt.Fprintf(&b, " Also updated: %s", strings.Join(effects, ", "))
	}
	return b.String()
}

// StatusLabel returns the display label from the default registry
func StatusLabel(kind EntityKind, status StatusKey) string {
	return defaultRegistry.StatusLabel(kind, status)
}

// StatusColor returns the badge color from the default registry
func StatusColor(kind EntityKind, status StatusKey) Color {
	return defaultRegistry.StatusColor(kind, status)
}

// ChangeSummary builds a change summary from the default registry
func ChangeSummary(kind EntityKind, from, to StatusKey) string {
	return defaultRegistry.ChangeSummary(kind, from, to)
}

// titleKind renders an entity kind for the start of a sentence
func titleKind(kind EntityKind) string {
	s := string(kind)
	if s == "" {
		return s
	}
	// annotationTask -> "Annotation task"
	var words []string
	start := 0
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			words = append(words, strings.ToLower(s[start:i]))
			start = i
		}
	}
	words = append(words, strings.ToLower(s[start:]))
	joined := strings.Join(words, " ")
	return strings.ToUpper(joined[:1]) + joined[1:]
}
