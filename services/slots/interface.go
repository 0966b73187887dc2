package slots

import (
	"context"
	"time"

	"cpicareers/models"
)

// SlotService publishes and books interview slots.
type SlotService interface {
	GetMonth(ctx context.Context, year, month int) (models.MonthSlots, error)
	Book(ctx context.Context, req models.BookSlotRequest) (*models.InterviewSlot, error)
	CreateSlots(ctx context.Context, req models.CreateSlotsRequest) ([]string, error)
	SetStatus(ctx context.Context, id string, status models.SlotStatus) error
	DeleteSlot(ctx context.Context, id string) error
}

// MonthCache stores rendered month listings.
type MonthCache interface {
	Get(ctx context.Context, key string) (models.MonthSlots, bool, error)
	Set(ctx context.Context, key string, month models.MonthSlots, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// BookingLinker attaches a confirmed booking to the applicant's application.
type BookingLinker interface {
	MarkScheduled(ctx context.Context, email string, slot models.InterviewSlot, at time.Time) (bool, error)
}
