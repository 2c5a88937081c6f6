package workflow

// StatusKey identifies a node in an entity's state graph
type StatusKey string

// String returns the string representation of the status key
func (s StatusKey) String() string {
	return string(s)
}

// Color is a design-token color name used by dashboard status badges
type Color string

const (
	ColorGray   Color = "gray"
	ColorBlue   Color = "blue"
	ColorGreen  Color = "green"
	ColorRed    Color = "red"
	ColorAmber  Color = "amber"
	ColorPurple Color = "purple"
)

// StatusNode describes a single status within a workflow: its display
// attributes, the statuses it may transition to, and the related entity
// kinds affected when an entity lands on it.
type StatusNode struct {
	Key         StatusKey    `json:"key"`
	Label       string       `json:"label"`
	Description string       `json:"description,omitempty"`
	Color       Color        `json:"color"`
	Terminal    bool         `json:"terminal,omitempty"`
	Next        []StatusKey  `json:"next"`
	Cascade     []EntityKind `json:"cascade,omitempty"`
}

// Workflow is the full state graph for one entity kind. Nodes keep their
// declaration order so selection controls render consistently.
type Workflow struct {
	kind  EntityKind
	order []StatusKey
	nodes map[StatusKey]StatusNode
}

// Kind returns the entity kind this workflow governs
func (w *Workflow) Kind() EntityKind {
	return w.kind
}

// Node returns the status node for the given key
func (w *Workflow) Node(key StatusKey) (StatusNode, bool) {
	node, ok := w.nodes[key]
	return node, ok
}

// Nodes returns all status nodes in declaration order
func (w *Workflow) Nodes() []StatusNode {
	nodes := make([]StatusNode, 0, len(w.order))
	for _, key := range w.order {
		nodes = append(nodes, w.nodes[key])
	}
	return nodes
}

// StatusOption is one selectable entry in a status-selection control
type StatusOption struct {
	Value     StatusKey `json:"value"`
	Label     string    `json:"label"`
	Color     Color     `json:"color"`
	IsCurrent bool      `json:"isCurrent"`
}

// TransitionResult reports whether a status transition is legal.
// Err carries a human-readable message when Valid is false.
type TransitionResult struct {
	Valid bool
	Err   error
}
