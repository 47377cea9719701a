package asyncadapter

import (
	"context"
	"errors"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type samplePayload struct {
	IDs []string `json:"ids"`
}

func TestAsyncCtx_Payload(t *testing.T) {
	t.Run("valid json", func(t *testing.T) {
		c := NewAsyncCtx[samplePayload](context.Background(), []byte(`{"ids":["a","b"]}`))
		p, err := c.Payload()
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, p.IDs)
	})

	t.Run("invalid json", func(t *testing.T) {
		c := NewAsyncCtx[samplePayload](context.Background(), []byte(`{`))
		_, err := c.Payload()
		assert.Error(t, err)
	})
}

func TestHandle_ToAsynqHandler(t *testing.T) {
	var received samplePayload
	h := Handle[samplePayload]{
		Event: "sample.task",
		Handler: func(c AsyncCtx[samplePayload]) error {
			p, err := c.Payload()
			if err != nil {
				return err
			}
			received = p
			if len(p.IDs) == 0 {
				return errors.New("empty")
			}
			return nil
		},
	}

	raw := h.ToAsynqHandler()
	assert.Equal(t, "sample.task", raw.Event)

	err := raw.Handler(context.Background(), asynq.NewTask("sample.task", []byte(`{"ids":["x"]}`)))
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, received.IDs)

	err = raw.Handler(context.Background(), asynq.NewTask("sample.task", []byte(`{"ids":[]}`)))
	assert.ErrorContains(t, err, "handle task sample.task")
}
