package slots

import "errors"

var (
	// ErrSlotUnavailable: the slot exists but is no longer open, or it has passed.
	ErrSlotUnavailable = errors.New("slot no longer available")
	ErrSlotNotFound    = errors.New("interview slot not found")
	ErrInvalidMonth    = errors.New("month must be 1-12 and year 1970-9999")
	ErrInvalidSlot     = errors.New("invalid slot date or time")
	ErrInvalidStatus   = errors.New("invalid slot status")
	ErrDuplicateSlot   = errors.New("a slot already exists at that date and time")
	ErrSlotBooked      = errors.New("booked slots cannot be deleted")
)
