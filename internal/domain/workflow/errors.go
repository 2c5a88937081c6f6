package workflow

import "errors"

var (
	// ErrUnknownWorkflow is returned when no workflow is registered for an entity kind
	ErrUnknownWorkflow = errors.New("unknown workflow")

	// ErrUnknownStatus is returned when a status key is not part of the resolved workflow
	ErrUnknownStatus = errors.New("unknown status")

	// ErrIllegalTransition is returned when the target status is not reachable from the source
	ErrIllegalTransition = errors.New("illegal transition")
)
