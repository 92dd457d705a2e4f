package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

var spinnerFrames = []rune("⠋⠙⠹⠸⠼⠴⠦⠧⠇⠏")

const spinnerInterval = 80 * time.Millisecond

// Spinner animates a status line on stderr while a repository is queried.
// The message may change while it runs, e.g. to report harvested pages.
type Spinner struct {
	out    io.Writer
	parent context.Context
	stop   chan struct{}
	wg     sync.WaitGroup
	once   sync.Once

	mu    sync.Mutex
	msg   string
	drawn int // width of the last line written
}

// newSpinner creates a spinner that also halts when ctx is done.
func newSpinner(ctx context.Context, message string) *Spinner {
	return &Spinner{out: os.Stderr, parent: ctx, stop: make(chan struct{}), msg: message}
}

// Start begins the animation in the background.
func (s *Spinner) Start() {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		tick := time.NewTicker(spinnerInterval)
		defer tick.Stop()
		for frame := 0; ; frame++ {
			select {
			case <-s.parent.Done():
				return
			case <-s.stop:
				return
			case <-tick.C:
				s.draw(spinnerFrames[frame%len(spinnerFrames)])
			}
		}
	}()
}

// SetMessage replaces the status text.
func (s *Spinner) SetMessage(format string, args ...any) {
	s.mu.Lock()
	s.msg = fmt.Sprintf(format, args...)
	s.mu.Unlock()
}

func (s *Spinner) draw(frame rune) {
	s.mu.Lock()
	defer s.mu.Unlock()
	line := styleSpinner.Render(string(frame)) + " " + styleMuted.Render(s.msg)
	width := len(s.msg) + 2
	fmt.Fprintf(s.out, "\r%s%s", line, strings.Repeat(" ", max(s.drawn-width, 0)))
	s.drawn = max(s.drawn, width)
}

// Stop halts the animation and erases the line. Later calls do nothing.
func (s *Spinner) Stop() {
	s.once.Do(func() {
		close(s.stop)
		s.wg.Wait()
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.drawn > 0 {
			fmt.Fprintf(s.out, "\r%s\r", strings.Repeat(" ", s.drawn))
		}
	})
}

// StopWithSuccess stops the spinner and prints a success line.
func (s *Spinner) StopWithSuccess(format string, args ...any) {
	s.Stop()
	printSuccess(format, args...)
}
