package publisher

//go:generate mockgen -source=adapter.go -destination=mock_adapter.go -package=publisher

import (
	"context"

	"github.com/hibiken/asynq"
)

type Publisher interface {
	Publish(ctx context.Context, taskType string, payload any, opts ...asynq.Option) error
}

// Enqueuer is the subset of *asynq.Client used by Task.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}
