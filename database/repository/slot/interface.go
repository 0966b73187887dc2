// File: database/repository/slot/interface.go
package slotRepo

import (
	"context"
	"errors"
	"time"

	"cpicareers/models"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	// ErrNotFound is returned when no slot matches the lookup.
	ErrNotFound = errors.New("interview slot not found")
	// ErrNotOpen is returned when a conditional booking or delete finds the
	// slot in a state that does not allow it.
	ErrNotOpen = errors.New("interview slot is not open")
)

type SlotRepository interface {
	CreateMany(ctx context.Context, slots []models.InterviewSlot) ([]string, error)
	ListByDateRange(ctx context.Context, from, to string) ([]models.InterviewSlot, error)
	GetByID(ctx context.Context, id string) (*models.InterviewSlot, error)
	GetByDateTime(ctx context.Context, date, clock string) (*models.InterviewSlot, error)
	TryBook(ctx context.Context, date, clock, email, name string, at time.Time) (*models.InterviewSlot, error)
	UpdateStatus(ctx context.Context, id string, status models.SlotStatus) error
	DeleteUnbooked(ctx context.Context, id string) error
	EnsureIndexes(ctx context.Context) error
}

type mongoSlotRepo struct {
	coll *mongo.Collection
}

// NewMongoSlotRepo constructs a SlotRepository over the interview_slots collection.
func NewMongoSlotRepo(db *mongo.Database) SlotRepository {
	return &mongoSlotRepo{
		coll: db.Collection("interview_slots"),
	}
}
