package jobPostingRepo

import (
	"context"
	"fmt"
	"time"

	"cpicareers/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type JobPostingRepository interface {
	Create(ctx context.Context, posting *models.JobPosting) error
	// ListActive returns active postings whose deadline has not passed, newest first.
	ListActive(ctx context.Context, now time.Time) ([]models.JobPosting, error)
	EnsureIndexes(ctx context.Context) error
}

type mongoJobPostingRepo struct {
	coll *mongo.Collection
}

func NewMongoJobPostingRepo(db *mongo.Database) JobPostingRepository {
	return &mongoJobPostingRepo{coll: db.Collection("job_postings")}
}

func (r *mongoJobPostingRepo) Create(ctx context.Context, posting *models.JobPosting) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, posting); err != nil {
		return fmt.Errorf("failed to insert job posting: %w", err)
	}
	return nil
}

func (r *mongoJobPostingRepo) ListActive(ctx context.Context, now time.Time) ([]models.JobPosting, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"isActive": true,
		"$or": bson.A{
			bson.M{"applicationDeadline": bson.M{"$exists": false}},
			bson.M{"applicationDeadline": nil},
			bson.M{"applicationDeadline": bson.M{"$gte": now}},
		},
	}
	opts := options.Find().SetSort(bson.D{{Key: "postedAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query job postings: %w", err)
	}
	defer cursor.Close(ctx)

	postings := []models.JobPosting{}
	if err := cursor.All(ctx, &postings); err != nil {
		return nil, fmt.Errorf("failed to decode job postings: %w", err)
	}
	return postings, nil
}

func (r *mongoJobPostingRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys:    bson.D{{Key: "isActive", Value: 1}, {Key: "postedAt", Value: -1}},
			Options: options.Index().SetName("active_posted_idx"),
		},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create job posting indexes: %w", err)
	}
	return nil
}
