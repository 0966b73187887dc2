package models

import (
	"fmt"
	"time"
)

// SlotStatus is the lifecycle state of an interview slot.
type SlotStatus string

const (
	SlotOpen    SlotStatus = "open"
	SlotPending SlotStatus = "pending"
	SlotBooked  SlotStatus = "booked"
)

// Valid reports whether s is one of the known statuses.
func (s SlotStatus) Valid() bool {
	switch s {
	case SlotOpen, SlotPending, SlotBooked:
		return true
	}
	return false
}

const (
	// DateLayout is the ISO calendar date used as the month map key.
	DateLayout = "2006-01-02"
	// TimeLayout is the time-of-day format slots are published with.
	TimeLayout = "15:04"
)

// InterviewSlot is a bookable interview time unit as stored by the backend.
type InterviewSlot struct {
	ID             string     `bson:"id" json:"id"`
	Date           string     `bson:"date" json:"date"` // e.g., "2025-02-25"
	Time           string     `bson:"time" json:"time"` // e.g., "14:30"
	Status         SlotStatus `bson:"status" json:"status"`
	ApplicantEmail string     `bson:"applicantEmail,omitempty" json:"-"`
	ApplicantName  string     `bson:"applicantName,omitempty" json:"-"`
	BookedAt       *time.Time `bson:"bookedAt,omitempty" json:"-"`
	CreatedAt      time.Time  `bson:"createdAt" json:"-"`
}

// SlotView is the public projection of a slot inside a month response.
type SlotView struct {
	ID     string     `json:"id"`
	Time   string     `json:"time"`
	Status SlotStatus `json:"status"`
}

// View projects the slot for the public month listing.
func (s InterviewSlot) View() SlotView {
	return SlotView{ID: s.ID, Time: s.Time, Status: s.Status}
}

// MonthSlots maps an ISO date to the slots of that day ordered by time.
type MonthSlots map[string][]SlotView

// ParseSlotTime combines an ISO date and a time of day ("15:04" or
// "15:04:05") into an instant in loc.
func ParseSlotTime(date, clock string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range []string{TimeLayout, "15:04:05"} {
		if t, err := time.ParseInLocation(DateLayout+"T"+layout, date+"T"+clock, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid slot date/time %q %q", date, clock)
}

// BookSlotRequest is the body of POST /api/interview-slots/book.
type BookSlotRequest struct {
	Date           string `json:"date" binding:"required"`
	Time           string `json:"time" binding:"required"`
	ApplicantEmail string `json:"applicantEmail" binding:"required,email"`
	ApplicantName  string `json:"applicantName" binding:"required"`
}

// CreateSlotsRequest defines the admin payload for publishing slots.
type CreateSlotsRequest struct {
	Slots []NewSlot `json:"slots" binding:"required,min=1,dive"`
}

// NewSlot is one slot in a CreateSlotsRequest.
type NewSlot struct {
	Date   string     `json:"date" binding:"required"`
	Time   string     `json:"time" binding:"required"`
	Status SlotStatus `json:"status,omitempty"`
}

// UpdateSlotStatusRequest changes a slot's status from the admin console.
type UpdateSlotStatusRequest struct {
	Status SlotStatus `json:"status" binding:"required"`
}
