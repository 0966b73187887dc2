package slotRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cpicareers/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TryBook flips an open slot to booked in a single conditional update, so two
// concurrent bookings of the same slot cannot both succeed.
func (r *mongoSlotRepo) TryBook(ctx context.Context, date, clock, email, name string, at time.Time) (*models.InterviewSlot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"date":   date,
		"time":   clock,
		"status": models.SlotOpen,
	}
	update := bson.M{
		"$set": bson.M{
			"status":         models.SlotBooked,
			"applicantEmail": email,
			"applicantName":  name,
			"bookedAt":       at,
		},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var slot models.InterviewSlot
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&slot)
	if err == nil {
		return &slot, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("failed to book interview slot: %w", err)
	}
	if _, lookupErr := r.GetByDateTime(ctx, date, clock); lookupErr != nil {
		return nil, lookupErr
	}
	return nil, ErrNotOpen
}
