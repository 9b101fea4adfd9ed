package tasks

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/hibiken/asynq"
)

const TypeHomeworkReconcile = "homework:reconcile"

// ReconcileMaxRetry bounds how many times a failed replay is retried.
const ReconcileMaxRetry = 5

type ReconcilePayload struct {
	UserID     string `json:"userId"`
	HomeworkID string `json:"homeworkId"`
}

func NewReconcileTask(payload ReconcilePayload) (*asynq.Task, []asynq.Option, error) {
	if payload.UserID == "" || payload.HomeworkID == "" {
		return nil, nil, errors.New("reconcile task needs both userId and homeworkId")
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeHomeworkReconcile, b)
	opts := []asynq.Option{asynq.MaxRetry(ReconcileMaxRetry), asynq.Queue("default")}

	return task, opts, nil
}

// ParseReconcilePayload decodes and validates a reconcile task body.
func ParseReconcilePayload(task *asynq.Task) (ReconcilePayload, error) {
	var p ReconcilePayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		return p, err
	}
	if p.UserID == "" || p.HomeworkID == "" {
		return p, errors.New("reconcile payload is missing userId or homeworkId")
	}
	return p, nil
}

// AsynqEnqueuer schedules reconcile tasks on the asynq queue.
type AsynqEnqueuer struct {
	Client *asynq.Client
}

func NewAsynqEnqueuer(client *asynq.Client) *AsynqEnqueuer {
	return &AsynqEnqueuer{Client: client}
}

func (e *AsynqEnqueuer) EnqueueReconcile(ctx context.Context, userID, homeworkID string) error {
	if e == nil || e.Client == nil {
		return errors.New("asynq client not initialized")
	}
	task, opts, err := NewReconcileTask(ReconcilePayload{UserID: userID, HomeworkID: homeworkID})
	if err != nil {
		return err
	}
	_, err = e.Client.EnqueueContext(ctx, task, opts...)
	return err
}
