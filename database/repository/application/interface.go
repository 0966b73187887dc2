// File: database/repository/application/interface.go
package applicationRepo

import (
	"context"
	"errors"
	"time"

	"cpicareers/models"

	"go.mongodb.org/mongo-driver/mongo"
)

var ErrNotFound = errors.New("application not found")

type ApplicationRepository interface {
	Create(ctx context.Context, app *models.Application) error
	GetByID(ctx context.Context, id string) (*models.Application, error)
	ListByStatus(ctx context.Context, status models.ApplicationStatus, limit int64) ([]models.Application, error)
	// MarkScheduled moves the applicant's newest received application to
	// scheduled and points it at the booked slot. It reports whether a record
	// was updated.
	MarkScheduled(ctx context.Context, email string, slot models.InterviewSlot, at time.Time) (bool, error)
	// Resolve sets the final status of a received application. Records that
	// already left the received state are not touched.
	Resolve(ctx context.Context, id string, status models.ApplicationStatus, at time.Time) (bool, error)
	EnsureIndexes(ctx context.Context) error
}

type mongoApplicationRepo struct {
	coll *mongo.Collection
}

// NewMongoApplicationRepo constructs an ApplicationRepository over the applications collection.
func NewMongoApplicationRepo(db *mongo.Database) ApplicationRepository {
	return &mongoApplicationRepo{
		coll: db.Collection("applications"),
	}
}
