package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IsaacDSC/placecache/pkg/ctxlogger"
	"github.com/hibiken/asynq"
)

type Task struct {
	client Enqueuer
}

var _ Publisher = (*Task)(nil)

func NewPublisher(client Enqueuer) *Task {
	return &Task{client: client}
}

// Publish enqueues payload as JSON under taskType. opts are applied after the defaults.
func (t *Task) Publish(ctx context.Context, taskType string, payload any, opts ...asynq.Option) error {
	l := ctxlogger.GetLogger(ctx)

	defaultOpts := NewDefaultOpt()
	definedOpts := make([]asynq.Option, 0, len(defaultOpts)+len(opts))
	definedOpts = append(definedOpts, defaultOpts...)
	definedOpts = append(definedOpts, opts...)

	p, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("could not marshal payload: %w", err)
	}

	task := asynq.NewTask(taskType, p)
	info, err := t.client.EnqueueContext(ctx, task, definedOpts...)
	if err != nil {
		return fmt.Errorf("could not enqueue task: %w", err)
	}

	l.Info("enqueued task", "task_id", info.ID, "queue", info.Queue, "task_type", taskType)

	return nil
}

func WithQueue(queue string) asynq.Option {
	return asynq.Queue(queue)
}

func WithMaxRetry(maxRetry int) asynq.Option {
	return asynq.MaxRetry(maxRetry)
}

func WithUnique(ttl time.Duration) asynq.Option {
	return asynq.Unique(ttl)
}

func NewDefaultOpt() []asynq.Option {
	return []asynq.Option{
		asynq.Queue("default"),
		asynq.MaxRetry(3),
		asynq.Retention(24 * time.Hour),
	}
}
