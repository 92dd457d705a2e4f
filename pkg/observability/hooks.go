// Package observability provides hooks for instrumenting harvests and
// renders without tying the libraries to a metrics backend.
//
// Hooks are registered once by main and read by the libraries:
//
//	func main() {
//	    observability.SetHarvestHooks(&promHarvestHooks{})
//	    // ... run application
//	}
//
//	observability.Harvest().OnRequest(ctx, verb, host)
//
// Unregistered hooks are no-ops.
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Harvest Hooks
// =============================================================================

// HarvestHooks receives events from OAI-PMH requests.
type HarvestHooks interface {
	// OnRequest records an outgoing request for verb.
	OnRequest(ctx context.Context, verb, host string)

	// OnResponse records a response that reached the XML parser.
	OnResponse(ctx context.Context, verb, host string, status, bytes int, duration time.Duration)

	// OnError records a failed request: transport, status, XML or OAI error.
	OnError(ctx context.Context, verb, host string, err error)
}

// =============================================================================
// Render Hooks
// =============================================================================

// RenderHooks receives events from Graphviz rendering.
type RenderHooks interface {
	OnRender(ctx context.Context, format string, bytes int, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopHarvestHooks is a no-op implementation of HarvestHooks.
type NoopHarvestHooks struct{}

func (NoopHarvestHooks) OnRequest(context.Context, string, string)                             {}
func (NoopHarvestHooks) OnResponse(context.Context, string, string, int, int, time.Duration) {}
func (NoopHarvestHooks) OnError(context.Context, string, string, error)                        {}

// NoopRenderHooks is a no-op implementation of RenderHooks.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnRender(context.Context, string, int, time.Duration, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	harvestHooks HarvestHooks = NoopHarvestHooks{}
	renderHooks  RenderHooks  = NoopRenderHooks{}
	hooksMu      sync.RWMutex
)

// SetHarvestHooks registers custom harvest hooks. Nil is ignored.
func SetHarvestHooks(h HarvestHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		harvestHooks = h
	}
}

// SetRenderHooks registers custom render hooks. Nil is ignored.
func SetRenderHooks(h RenderHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		renderHooks = h
	}
}

// Harvest returns the registered harvest hooks.
func Harvest() HarvestHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return harvestHooks
}

// Render returns the registered render hooks.
func Render() RenderHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return renderHooks
}

// Reset restores all hooks to their no-op defaults.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	harvestHooks = NoopHarvestHooks{}
	renderHooks = NoopRenderHooks{}
}
