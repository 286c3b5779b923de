package models

import "fmt"

// ValidationError reports malformed caller input (bad slot times, day-of-week
// out of range, missing cancellation reason). Never retried.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NotFoundError reports an unknown entity identity.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// InvalidTransitionError reports a lifecycle transition that is not legal
// from the session's current status. The record is left untouched.
type InvalidTransitionError struct {
	From       WalkStatus
	Transition string
}

func (e InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot %s a walk session in status %q", e.Transition, e.From)
}

// ConflictError reports that a concurrent transition won the race. Unlike an
// invalid transition it may be transient, so callers can choose to retry.
type ConflictError struct {
	Resource string
	ID       string
}

func (e ConflictError) Error() string {
	return fmt.Sprintf("%s %s was modified concurrently", e.Resource, e.ID)
}
