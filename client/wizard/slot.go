package wizard

import (
	"time"

	"cpicareers/models"
)

// DisabledReason says why a slot cannot be picked.
type DisabledReason string

const (
	ReasonNone    DisabledReason = ""
	ReasonPassed  DisabledReason = "passed"
	ReasonBooked  DisabledReason = "booked"
	ReasonPending DisabledReason = "pending"
	ReasonInvalid DisabledReason = "invalid"
)

// Message returns the applicant-facing explanation.
func (r DisabledReason) Message() string {
	switch r {
	case ReasonPassed:
		return MsgSlotPassed
	case ReasonBooked:
		return MsgSlotBooked
	case ReasonPending:
		return MsgSlotPending
	case ReasonInvalid:
		return "This slot is not available"
	}
	return ""
}

// slotState decides whether a slot can be picked at now. Passed slots are
// reported as passed whatever their status.
func slotState(date string, slot models.SlotView, now time.Time, loc *time.Location) DisabledReason {
	start, err := models.ParseSlotTime(date, slot.Time, loc)
	if err != nil {
		return ReasonInvalid
	}
	if !start.After(now) {
		return ReasonPassed
	}
	switch slot.Status {
	case models.SlotOpen:
		return ReasonNone
	case models.SlotBooked:
		return ReasonBooked
	case models.SlotPending:
		return ReasonPending
	}
	return ReasonInvalid
}
