package asyncadapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

// AsynqHandle is the raw asynq registration: task type plus handler.
type AsynqHandle struct {
	Event   string
	Handler func(ctx context.Context, task *asynq.Task) error
}

// AsyncCtx gives a typed handler lazy access to the JSON task payload.
type AsyncCtx[T any] struct {
	ctx         context.Context
	bytePayload []byte
}

func NewAsyncCtx[T any](ctx context.Context, payload []byte) AsyncCtx[T] {
	return AsyncCtx[T]{
		ctx:         ctx,
		bytePayload: payload,
	}
}

func (c AsyncCtx[T]) Payload() (T, error) {
	var payload T

	if err := json.Unmarshal(c.bytePayload, &payload); err != nil {
		return payload, fmt.Errorf("unmarshal payload: %w", err)
	}

	return payload, nil
}

func (c AsyncCtx[T]) Context() context.Context {
	return c.ctx
}

type Handle[T any] struct {
	Event   string
	Handler func(c AsyncCtx[T]) error
}

func (h Handle[T]) ToAsynqHandler() AsynqHandle {
	return AsynqHandle{
		Event: h.Event,
		Handler: func(ctx context.Context, task *asynq.Task) error {
			if err := h.Handler(NewAsyncCtx[T](ctx, task.Payload())); err != nil {
				return fmt.Errorf("handle task %s: %w", task.Type(), err)
			}

			return nil
		},
	}
}
