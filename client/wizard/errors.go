package wizard

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrUnknownField       = errors.New("wizard: unknown field")
	ErrNoSlotSelected     = errors.New("wizard: no interview slot selected")
	ErrSubmissionInFlight = errors.New("wizard: submission already in progress")
	ErrAlreadySubmitted   = errors.New("wizard: application already submitted")
	ErrSelectionCommitted = errors.New("wizard: slot selection already committed")
	// ErrStaleResponse is returned by a month fetch that was superseded by a
	// later navigation before it completed.
	ErrStaleResponse = errors.New("wizard: stale month response discarded")
	ErrStepLocked    = errors.New("wizard: step not reached yet")
)

// FieldTypeError rejects a value that does not parse for its field.
type FieldTypeError struct {
	Field  FieldKey
	Value  string
	Reason string
}

func (e *FieldTypeError) Error() string {
	return fmt.Sprintf("wizard: %s: %q %s", e.Field, e.Value, e.Reason)
}

// AttachmentError rejects a file that breaks its field's type or size rule.
type AttachmentError struct {
	Field  FieldKey
	File   string
	Reason string
}

func (e *AttachmentError) Error() string {
	if e.File == "" {
		return fmt.Sprintf("wizard: %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("wizard: %s: %s: %s", e.Field, e.File, e.Reason)
}

// ValidationError aggregates the failed fields of one or more steps.
type ValidationError struct {
	Errors ErrorSet
	Steps  []Step
}

func (e *ValidationError) Error() string {
	steps := make([]string, len(e.Steps))
	for i, s := range e.Steps {
		steps[i] = fmt.Sprint(int(s))
	}
	return fmt.Sprintf("wizard: %d field(s) invalid in step(s) %s: %s",
		len(e.Errors), strings.Join(steps, ", "), e.Errors)
}

// SlotRejectedError explains why a slot could not be selected.
type SlotRejectedError struct {
	Date    string
	Time    string
	Reason  DisabledReason
	Message string
}

func (e *SlotRejectedError) Error() string {
	return fmt.Sprintf("wizard: slot %s %s rejected: %s", e.Date, e.Time, e.Message)
}

// IntakeError is a failed application upload. Nothing was stored remotely.
type IntakeError struct {
	Err error
}

func (e *IntakeError) Error() string { return "wizard: application intake failed: " + e.Err.Error() }
func (e *IntakeError) Unwrap() error { return e.Err }

// BookingError is a failed booking after a successful intake. The
// application exists remotely under ApplicationID.
type BookingError struct {
	ApplicationID string
	Message       string
	Err           error
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("wizard: booking failed for application %s: %s", e.ApplicationID, e.Message)
}

func (e *BookingError) Unwrap() error { return e.Err }

// ErrorSet maps a field to a human-readable reason.
type ErrorSet map[FieldKey]string

func (s ErrorSet) String() string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, string(k))
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ": " + s[FieldKey(k)]
	}
	return strings.Join(parts, "; ")
}

func (s ErrorSet) clone() ErrorSet {
	out := make(ErrorSet, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}
