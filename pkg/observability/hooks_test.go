package observability

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	h := NoopHarvestHooks{}
	h.OnRequest(ctx, "ListRecords", "repo.test")
	h.OnResponse(ctx, "ListRecords", "repo.test", 200, 1024, time.Second)
	h.OnError(ctx, "ListRecords", "repo.test", nil)

	NoopRenderHooks{}.OnRender(ctx, "svg", 512, time.Millisecond, nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	if _, ok := Harvest().(NoopHarvestHooks); !ok {
		t.Error("Harvest() should return NoopHarvestHooks by default")
	}
	if _, ok := Render().(NoopRenderHooks); !ok {
		t.Error("Render() should return NoopRenderHooks by default")
	}

	harvest := &countingHooks{}
	SetHarvestHooks(harvest)
	if Harvest() != harvest {
		t.Error("SetHarvestHooks should set custom hooks")
	}
	SetRenderHooks(harvest)
	if Render() != harvest {
		t.Error("SetRenderHooks should set custom hooks")
	}

	SetHarvestHooks(nil)
	if Harvest() != harvest {
		t.Error("SetHarvestHooks(nil) should keep the current hooks")
	}

	Reset()
	if _, ok := Harvest().(NoopHarvestHooks); !ok {
		t.Error("Reset should restore NoopHarvestHooks")
	}
}

type countingHooks struct {
	requests, responses, errors, renders atomic.Int32
}

func (c *countingHooks) OnRequest(context.Context, string, string) { c.requests.Add(1) }
func (c *countingHooks) OnResponse(context.Context, string, string, int, int, time.Duration) {
	c.responses.Add(1)
}
func (c *countingHooks) OnError(context.Context, string, string, error) { c.errors.Add(1) }
func (c *countingHooks) OnRender(context.Context, string, int, time.Duration, error) {
	c.renders.Add(1)
}

func TestConcurrentAccess(t *testing.T) {
	Reset()
	t.Cleanup(Reset)
	done := make(chan struct{})
	go func() {
		for range 100 {
			SetHarvestHooks(&countingHooks{})
		}
		close(done)
	}()
	for range 100 {
		Harvest().OnRequest(context.Background(), "Identify", "repo.test")
	}
	<-done
}
