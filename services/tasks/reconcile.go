package tasks

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

// TypeReconcileApplication checks whether a received application was followed
// by a booking.
const TypeReconcileApplication = "application:reconcile"

type ReconcilePayload struct {
	ApplicationID string `json:"applicationId"`
}

func NewReconcileTask(applicationID string, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(ReconcilePayload{ApplicationID: applicationID})
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeReconcileApplication, b)
	opts := []asynq.Option{
		asynq.ProcessAt(fireAt),
		asynq.MaxRetry(5),
		asynq.TaskID("reconcile:" + applicationID),
	}

	return task, opts, nil
}

// ParseReconcilePayload decodes a reconcile task body.
func ParseReconcilePayload(task *asynq.Task) (ReconcilePayload, error) {
	var p ReconcilePayload
	err := json.Unmarshal(task.Payload(), &p)
	return p, err
}
