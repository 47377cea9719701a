package fetcher

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotification_Notify(t *testing.T) {
	tests := []struct {
		name        string
		statusCode  int
		wantErr     bool
		errContains string
	}{
		{name: "successful notification with 200 status", statusCode: http.StatusOK},
		{name: "successful notification with 204 status", statusCode: http.StatusNoContent},
		{name: "failed notification with 500 status", statusCode: http.StatusInternalServerError, wantErr: true, errContains: "unexpected status code: 500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var received Alert
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
				require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
				w.WriteHeader(tt.statusCode)
			}))
			defer server.Close()

			n := NewNotification(server.Client(), server.URL)
			err := n.Notify(context.Background(), Alert{
				Operation: "photo",
				Key:       "google-place-photo/abc",
				Message:   "photo fetch failed",
			})

			if tt.wantErr {
				assert.ErrorContains(t, err, tt.errContains)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, "google-place-photo/abc", received.Key)
			assert.False(t, received.At.IsZero())
		})
	}
}

func TestNotification_NoURLIsNoop(t *testing.T) {
	n := NewNotification(http.DefaultClient, "")
	assert.NoError(t, n.Notify(context.Background(), Alert{Operation: "place"}))

	var nilNotification *Notification
	assert.NoError(t, nilNotification.Notify(context.Background(), Alert{Operation: "place"}))
}
