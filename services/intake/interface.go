package intake

import (
	"context"

	"cpicareers/models"

	"github.com/hibiken/asynq"
)

// IntakeService accepts completed applications.
type IntakeService interface {
	Submit(ctx context.Context, form *models.ApplicationForm) (*models.Application, error)
}

// Enqueuer schedules background tasks. *asynq.Client satisfies it.
type Enqueuer interface {
	Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// ApplicationCreator persists a new application record.
type ApplicationCreator interface {
	Create(ctx context.Context, app *models.Application) error
}
