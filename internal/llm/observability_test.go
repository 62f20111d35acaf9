package llm

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLogObserver_Line(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogObserver(&buf)
	obs.now = func() time.Time { return time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC) }

	obs.OnCallComplete(CallEvent{Task: TaskChat, Model: "gpt-3.5-turbo", LatencyMs: 420, Success: true})
	assert.Equal(t, "[2026-05-01T10:00:00Z] llm_call task=chat model=gpt-3.5-turbo latency_ms=420 status=ok\n", buf.String())

	buf.Reset()
	obs.OnCallComplete(CallEvent{Task: TaskChat, Model: "gpt-3.5-turbo", ErrorCode: "BAD_STATUS", StatusCode: 429})
	assert.Contains(t, buf.String(), "status=err:BAD_STATUS http_status=429")
}
