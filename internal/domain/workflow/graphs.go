package workflow

// Status keys for the interview workflow
const (
	InterviewScheduled StatusKey = "scheduled"
	InterviewCompleted StatusKey = "completed"
	InterviewCanceled  StatusKey = "canceled"
	InterviewNoShow    StatusKey = "no_show"
)

// Status keys for the acceptance workflow (interview outcome decision)
const (
	AcceptancePending  StatusKey = "pending"
	AcceptanceAccepted StatusKey = "accepted"
	AcceptanceRejected StatusKey = "rejected"
)

// Status keys for the job workflow
const (
	JobDraft      StatusKey = "draft"
	JobOpen       StatusKey = "open"
	JobInProgress StatusKey = "in_progress"
	JobCompleted  StatusKey = "completed"
	JobArchived   StatusKey = "archived"
)

// Status keys for the project workflow
const (
	ProjectPlanned   StatusKey = "planned"
	ProjectActive    StatusKey = "active"
	ProjectPaused    StatusKey = "paused"
	ProjectCompleted StatusKey = "completed"
	ProjectCanceled  StatusKey = "canceled"
)

// Status keys for the assignment workflow
const (
	AssignmentActive    StatusKey = "active"
	AssignmentPaused    StatusKey = "paused"
	AssignmentCompleted StatusKey = "completed"
	AssignmentRemoved   StatusKey = "removed"
)

// Status keys for the annotation task workflow
const (
	TaskQueued     StatusKey = "queued"
	TaskInProgress StatusKey = "in_progress"
	TaskSubmitted  StatusKey = "submitted"
	TaskRework     StatusKey = "rework"
	TaskApproved   StatusKey = "approved"
)

// defaultRegistry holds the production state graphs and cascade rules.
// Built once at process start; MustBuild stops the process on a malformed
// table instead of letting it surface later as a rejected transition.
var defaultRegistry = NewBuilder().
	Register(KindInterview,
		StatusNode{
			Key:         InterviewScheduled,
			Label:       "Scheduled",
			Description: "Interview is on the calendar",
			Color:       ColorBlue,
			Next:        []StatusKey{InterviewCompleted, InterviewCanceled, InterviewNoShow},
		},
		StatusNode{
			Key:         InterviewCompleted,
			Label:       "Completed",
			Description: "Interview took place and awaits a decision",
			Color:       ColorGreen,
			Terminal:    true,
			Cascade:     []EntityKind{KindAcceptance},
		},
		StatusNode{
			Key:      InterviewCanceled,
			Label:    "Canceled",
			Color:    ColorGray,
			Terminal: true,
		},
		StatusNode{
			Key:         InterviewNoShow,
			Label:       "No Show",
			Description: "Candidate did not attend",
			Color:       ColorRed,
			Terminal:    true,
		},
	).
	Register(KindAcceptance,
		StatusNode{
			Key:         AcceptancePending,
			Label:       "Pending",
			Description: "Awaiting hiring decision",
			Color:       ColorAmber,
			Next:        []StatusKey{AcceptanceAccepted, AcceptanceRejected},
		},
		StatusNode{
			Key:         AcceptanceAccepted,
			Label:       "Accepted",
			Description: "Candidate accepted for the project",
			Color:       ColorGreen,
			Terminal:    true,
			Cascade:     []EntityKind{KindAssignment},
		},
		StatusNode{
			Key:      AcceptanceRejected,
			Label:    "Rejected",
			Color:    ColorRed,
			Terminal: true,
			Cascade:  []EntityKind{KindAssignment},
		},
	).
	Register(KindJob,
		StatusNode{
			Key:         JobDraft,
			Label:       "Draft",
			Description: "Job posting is being prepared",
			Color:       ColorGray,
			Next:        []StatusKey{JobOpen},
		},
		StatusNode{
			Key:         JobOpen,
			Label:       "Open",
			Description: "Accepting candidates",
			Color:       ColorBlue,
			Next:        []StatusKey{JobInProgress, JobArchived},
		},
		StatusNode{
			Key:         JobInProgress,
			Label:       "In Progress",
			Description: "Interviews underway",
			Color:       ColorPurple,
			Next:        []StatusKey{JobCompleted, JobArchived},
		},
		StatusNode{
			Key:      JobCompleted,
			Label:    "Completed",
			Color:    ColorGreen,
			Terminal: true,
			Cascade:  []EntityKind{KindAnnotationTask},
		},
		StatusNode{
			Key:         JobArchived,
			Label:       "Archived",
			Description: "Posting closed without completion",
			Color:       ColorGray,
			Terminal:    true,
			Cascade:     []EntityKind{KindInterview},
		},
	).
	Register(KindProject,
		StatusNode{
			Key:   ProjectPlanned,
			Label: "Planned",
			Color: ColorGray,
			Next:  []StatusKey{ProjectActive, ProjectCanceled},
		},
		StatusNode{
			Key:   ProjectActive,
			Label: "Active",
			Color: ColorBlue,
			Next:  []StatusKey{ProjectPaused, ProjectCompleted},
		},
		StatusNode{
			Key:   ProjectPaused,
			Label: "Paused",
			Color: ColorAmber,
			Next:  []StatusKey{ProjectActive, ProjectCanceled},
		},
		StatusNode{
			Key:      ProjectCompleted,
			Label:    "Completed",
			Color:    ColorGreen,
			Terminal: true,
			Cascade:  []EntityKind{KindAnnotationTask},
		},
		StatusNode{
			Key:      ProjectCanceled,
			Label:    "Canceled",
			Color:    ColorRed,
			Terminal: true,
			Cascade:  []EntityKind{KindAnnotationTask, KindAssignment},
		},
	).
	Register(KindAssignment,
		StatusNode{
			Key:         AssignmentActive,
			Label:       "Active",
			Description: "Candidate is working on the project",
			Color:       ColorGreen,
			Next:        []StatusKey{AssignmentPaused, AssignmentCompleted, AssignmentRemoved},
		},
		StatusNode{
			Key:   AssignmentPaused,
			Label: "Paused",
			Color: ColorAmber,
			Next:  []StatusKey{AssignmentActive, AssignmentRemoved},
		},
		StatusNode{
			Key:      AssignmentCompleted,
			Label:    "Completed",
			Color:    ColorGreen,
			Terminal: true,
			Cascade:  []EntityKind{KindAnnotationTask},
		},
		StatusNode{
			Key:      AssignmentRemoved,
			Label:    "Removed",
			Color:    ColorRed,
			Terminal: true,
			Cascade:  []EntityKind{KindAnnotationTask},
		},
	).
	Register(KindAnnotationTask,
		StatusNode{
			Key:   TaskQueued,
			Label: "Queued",
			Color: ColorGray,
			Next:  []StatusKey{TaskInProgress},
		},
		StatusNode{
			Key:   TaskInProgress,
			Label: "In Progress",
			Color: ColorBlue,
			Next:  []StatusKey{TaskSubmitted},
		},
		StatusNode{
			Key:         TaskSubmitted,
			Label:       "Submitted",
			Description: "Awaiting review",
			Color:       ColorPurple,
			Next:        []StatusKey{TaskApproved, TaskRework},
		},
		StatusNode{
			Key:         TaskRework,
			Label:       "Rework",
			Description: "Sent back for changes",
			Color:       ColorAmber,
			Next:        []StatusKey{TaskInProgress},
		},
		StatusNode{
			Key:      TaskApproved,
			Label:    "Approved",
			Color:    ColorGreen,
			Terminal: true,
			Cascade:  []EntityKind{KindAssignment},
		},
	).
	Cascade(KindInterview, InterviewCompleted, KindAcceptance, ActionCreateOrActivate).
	Cascade(KindAcceptance, AcceptanceAccepted, KindAssignment, ActionCreateOrActivate).
	Cascade(KindAcceptance, AcceptanceRejected, KindAssignment, ActionRemove).
	Cascade(KindJob, JobCompleted, KindAnnotationTask, ActionCompleteAll).
	Cascade(KindJob, JobArchived, KindInterview, ActionRemoveAll).
	Cascade(KindProject, ProjectCompleted, KindAnnotationTask, ActionCompleteAll).
	Cascade(KindProject, ProjectCanceled, KindAnnotationTask, ActionRemoveAll).
	Cascade(KindProject, ProjectCanceled, KindAssignment, ActionRemoveAll).
	Cascade(KindAssignment, AssignmentCompleted, KindAnnotationTask, ActionCompleteAll).
	Cascade(KindAssignment, AssignmentRemoved, KindAnnotationTask, ActionRemoveAll).
	Cascade(KindAnnotationTask, TaskApproved, KindAssignment, ActionNotify).
	MustBuild()

// Default returns the registry of production workflows
func Default() *Registry {
	return defaultRegistry
}
