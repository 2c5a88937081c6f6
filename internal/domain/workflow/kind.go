package workflow

// EntityKind identifies which domain object a workflow governs
type EntityKind string

const (
	KindInterview      EntityKind = "interview"
	KindAcceptance     EntityKind = "acceptance"
	KindJob            EntityKind = "job"
	KindProject        EntityKind = "project"
	KindAssignment     EntityKind = "assignment"
	KindAnnotationTask EntityKind = "annotationTask"
)

var validKinds = map[EntityKind]bool{
	KindInterview:      true,
	KindAcceptance:     true,
	KindJob:            true,
	KindProject:        true,
	KindAssignment:     true,
	KindAnnotationTask: true,
}

// String returns the string representation of the entity kind
func (k EntityKind) String() string {
	return string(k)
}

// IsValid returns true if the kind is a recognized entity kind
func (k EntityKind) IsValid() bool {
	return validKinds[k]
}

// ActionKind describes the effect a cascade has on a related entity
type ActionKind string

const (
	ActionCreateOrActivate ActionKind = "create_or_activate"
	ActionRemove           ActionKind = "remove"
	ActionCompleteAll      ActionKind = "complete_all"
	ActionRemoveAll        ActionKind = "remove_all"
	ActionNotify           ActionKind = "notify"
)

var validActions = map[ActionKind]bool{
	ActionCreateOrActivate: true,
	ActionRemove:           true,
	ActionCompleteAll:      true,
	ActionRemoveAll:        true,
	ActionNotify:           true,
}

// String returns the string representation of the action kind
func (a ActionKind) String() string {
	return string(a)
}

// IsValid returns true if the action is a recognized cascade action
func (a ActionKind) IsValid() bool {
	return validActions[a]
}
