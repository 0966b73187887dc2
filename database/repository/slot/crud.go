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

func (r *mongoSlotRepo) CreateMany(ctx context.Context, slots []models.InterviewSlot) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	docs := make([]interface{}, len(slots))
	ids := make([]string, len(slots))
	for i, s := range slots {
		docs[i] = s
		ids[i] = s.ID
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return nil, fmt.Errorf("failed to insert interview slots: %w", err)
	}
	return ids, nil
}

func (r *mongoSlotRepo) ListByDateRange(ctx context.Context, from, to string) ([]models.InterviewSlot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"date": bson.M{"$gte": from, "$lte": to}}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query interview slots: %w", err)
	}
	defer cursor.Close(ctx)

	var slots []models.InterviewSlot
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, fmt.Errorf("failed to decode interview slots: %w", err)
	}
	return slots, nil
}

func (r *mongoSlotRepo) findOne(ctx context.Context, filter bson.M) (*models.InterviewSlot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var slot models.InterviewSlot
	if err := r.coll.FindOne(ctx, filter).Decode(&slot); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch interview slot: %w", err)
	}
	return &slot, nil
}

func (r *mongoSlotRepo) GetByID(ctx context.Context, id string) (*models.InterviewSlot, error) {
	return r.findOne(ctx, bson.M{"id": id})
}

func (r *mongoSlotRepo) GetByDateTime(ctx context.Context, date, clock string) (*models.InterviewSlot, error) {
	return r.findOne(ctx, bson.M{"date": date, "time": clock})
}

func (r *mongoSlotRepo) UpdateStatus(ctx context.Context, id string, status models.SlotStatus) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": status}}
	if status != models.SlotBooked {
		update["$unset"] = bson.M{"applicantEmail": "", "applicantName": "", "bookedAt": ""}
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update interview slot status: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteUnbooked removes a slot unless it has already been booked.
func (r *mongoSlotRepo) DeleteUnbooked(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id, "status": bson.M{"$ne": models.SlotBooked}})
	if err != nil {
		return fmt.Errorf("failed to delete interview slot: %w", err)
	}
	if res.DeletedCount == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return ErrNotOpen
	}
	return nil
}
