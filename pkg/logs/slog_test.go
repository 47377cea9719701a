package logs

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions(t *testing.T) {
	tests := []struct {
		name       string
		level      string
		format     string
		source     bool
		wantJSON   bool
		wantSource bool
		wantDebug  bool
	}{
		{name: "defaults to json", level: "info", format: "", wantJSON: true},
		{name: "text format", level: "info", format: "TEXT"},
		{name: "source location", level: "debug", format: "json", source: true, wantJSON: true, wantSource: true, wantDebug: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := New(append(Options(tt.level, tt.format, tt.source), WithOutput(&buf))...)

			l.Debug("debug line")
			l.Info("cache ready", "bucket", "caches")

			out := buf.String()
			assert.Equal(t, tt.wantDebug, strings.Contains(out, "debug line"))

			lines := strings.Split(strings.TrimSpace(out), "\n")
			last := lines[len(lines)-1]

			if !tt.wantJSON {
				assert.Contains(t, last, "msg=\"cache ready\"")
				assert.Contains(t, last, "bucket=caches")
				return
			}

			var entry map[string]any
			require.NoError(t, json.Unmarshal([]byte(last), &entry))
			assert.Equal(t, "cache ready", entry["msg"])
			assert.Equal(t, "caches", entry["bucket"])

			_, hasSource := entry["source"]
			assert.Equal(t, tt.wantSource, hasSource)
		})
	}
}
