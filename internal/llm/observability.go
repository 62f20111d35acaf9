package llm

import (
	"fmt"
	"io"
	"time"
)

// CallEvent records metadata about a single completion call.
type CallEvent struct {
	Task       TaskType
	Model      string
	LatencyMs  int64
	Success    bool
	ErrorCode  string
	StatusCode int
}

// Observer receives events about completion calls.
type Observer interface {
	OnCallComplete(event CallEvent)
}

// LogObserver writes one line per call to an io.Writer.
type LogObserver struct {
	w   io.Writer
	now func() time.Time
}

func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{w: w, now: time.Now}
}

func (o *LogObserver) OnCallComplete(event CallEvent) {
	ts := o.now().UTC().Format(time.RFC3339)
	status := "ok"
	if !event.Success {
		status = "err:" + event.ErrorCode
	}
	line := fmt.Sprintf("[%s] llm_call task=%s model=%s latency_ms=%d status=%s",
		ts, event.Task, event.Model, event.LatencyMs, status)
	if event.StatusCode != 0 {
		line += fmt.Sprintf(" http_status=%d", event.StatusCode)
	}
	fmt.Fprintln(o.w, line)
}

type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}
