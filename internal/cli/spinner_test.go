package cli

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestSpinnerDrawsMessage(t *testing.T) {
	var out syncBuffer
	s := newSpinner(context.Background(), "Harvesting...")
	s.out = &out
	s.Start()
	time.Sleep(3 * spinnerInterval / 2)
	s.SetMessage("Harvesting page %d", 2)
	time.Sleep(3 * spinnerInterval / 2)
	s.Stop()

	got := out.String()
	if !strings.Contains(got, "Harvesting...") || !strings.Contains(got, "Harvesting page 2") {
		t.Errorf("spinner output %q missing messages", got)
	}
	if !strings.HasSuffix(got, "\r") {
		t.Errorf("Stop() should erase the line, output ends %q", got[max(len(got)-10, 0):])
	}
}

func TestSpinnerContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	out := &syncBuffer{}
	s := newSpinner(ctx, "Waiting...")
	s.out = out
	s.Start()
	cancel()
	time.Sleep(spinnerInterval)
	before := out.String()
	time.Sleep(3 * spinnerInterval)
	if out.String() != before {
		t.Error("spinner kept drawing after its context was cancelled")
	}
	s.Stop()
}

func TestSpinnerStop(t *testing.T) {
	t.Run("idempotent", func(t *testing.T) {
		s := newSpinner(context.Background(), "Stopping...")
		s.out = &syncBuffer{}
		s.Start()
		s.Stop()
		s.Stop()
	})
	t.Run("never started", func(t *testing.T) {
		out := &syncBuffer{}
		s := newSpinner(context.Background(), "Idle")
		s.out = out
		s.Stop()
		if out.String() != "" {
			t.Errorf("unstarted spinner wrote %q", out.String())
		}
	})
}
