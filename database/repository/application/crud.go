package applicationRepo

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

func (r *mongoApplicationRepo) Create(ctx context.Context, app *models.Application) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, app); err != nil {
		return fmt.Errorf("failed to insert application: %w", err)
	}
	return nil
}

func (r *mongoApplicationRepo) GetByID(ctx context.Context, id string) (*models.Application, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var app models.Application
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&app); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch application: %w", err)
	}
	return &app, nil
}

func (r *mongoApplicationRepo) ListByStatus(ctx context.Context, status models.ApplicationStatus, limit int64) ([]models.Application, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query applications: %w", err)
	}
	defer cursor.Close(ctx)

	apps := []models.Application{}
	if err := cursor.All(ctx, &apps); err != nil {
		return nil, fmt.Errorf("failed to decode applications: %w", err)
	}
	return apps, nil
}

func (r *mongoApplicationRepo) MarkScheduled(ctx context.Context, email string, slot models.InterviewSlot, at time.Time) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"emailAddress": email,
		"status":       models.ApplicationReceived,
	}
	update := bson.M{"$set": bson.M{
		"status":            models.ApplicationScheduled,
		"scheduledAt":       at,
		"interviewSlotId":   slot.ID,
		"interviewSlotDate": slot.Date,
		"interviewSlotTime": slot.Time,
	}}
	opts := options.FindOneAndUpdate().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to link application to booking: %w", err)
	}
	return true, nil
}

func (r *mongoApplicationRepo) Resolve(ctx context.Context, id string, status models.ApplicationStatus, at time.Time) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{"status": status, "reconciledAt": at}
	if status == models.ApplicationScheduled {
		set["scheduledAt"] = at
	}
	filter := bson.M{"id": id, "status": models.ApplicationReceived}
	res, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return false, fmt.Errorf("failed to resolve application: %w", err)
	}
	return res.ModifiedCount > 0, nil
}
