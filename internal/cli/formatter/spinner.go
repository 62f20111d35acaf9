package formatter

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
)

// Spinner animates a one-line status message on w while a remote call is
// in flight. It reuses the bubbles frame sets outside a tea program.
type Spinner struct {
	w       io.Writer
	message string
	frames  spinner.Spinner

	once   sync.Once
	cancel context.CancelFunc
	done   chan struct{}
}

// NewSpinner creates a stopped spinner that draws on w.
func NewSpinner(w io.Writer, message string) *Spinner {
	return &Spinner{w: w, message: message, frames: spinner.MiniDot}
}

// Start begins drawing in the background.
func (s *Spinner) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})
	go s.run(ctx)
}

func (s *Spinner) run(ctx context.Context) {
	defer close(s.done)
	fps := s.frames.FPS
	if fps <= 0 {
		fps = 100 * time.Millisecond
	}
	ticker := time.NewTicker(fps)
	defer ticker.Stop()

	for i := 0; ; i++ {
		frame := s.frames.Frames[i%len(s.frames.Frames)]
		fmt.Fprintf(s.w, "\r  %s %s", StyleHighlight.Render(frame), Dim(s.message))
		select {
		case <-ctx.Done():
			fmt.Fprint(s.w, "\r\033[K")
			return
		case <-ticker.C:
		}
	}
}

// Stop clears the line and waits for the drawing goroutine to exit.
// Safe to call more than once, or without Start.
func (s *Spinner) Stop() {
	s.once.Do(func() {
		if s.cancel == nil {
			return
		}
		s.cancel()
		<-s.done
	})
}

// StartSpinner starts a spinner on w and returns its Stop.
func StartSpinner(w io.Writer, message string) func() {
	s := NewSpinner(w, message)
	s.Start()
	return s.Stop
}
