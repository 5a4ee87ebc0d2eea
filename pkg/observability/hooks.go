// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers can register
// hooks at startup to receive events about solver execution and result-store
// operations.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach avoids import cycles (hooks are registered by main, not by
// libraries) and keeps the core library free of observability frameworks.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetSolverHooks(&mySolverHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Solver().OnPhaseStart(ctx, "sweep")
//	// ... run phase ...
//	observability.Solver().OnPhaseComplete(ctx, "sweep", candidates, duration)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Solver Hooks
// =============================================================================

// SolverHooks receives events from the three-phase search.
type SolverHooks interface {
	// OnSolveStart records the start of a solve with instance dimensions.
	OnSolveStart(ctx context.Context, vertices, edges int)

	// OnPhaseStart records the start of a search phase ("sweep", "resample",
	// or "improve").
	OnPhaseStart(ctx context.Context, phase string)

	// OnPhaseComplete records the end of a search phase with the number of
	// candidates retained and the elapsed time.
	OnPhaseComplete(ctx context.Context, phase string, candidates int, duration time.Duration)

	// OnCandidateScored records a scored candidate.
	OnCandidateScored(ctx context.Context, teamCount int, score float64)

	// OnSolveComplete records the end of a solve with the final score.
	OnSolveComplete(ctx context.Context, score float64, duration time.Duration)
}

// =============================================================================
// Store Hooks
// =============================================================================

// StoreHooks receives events from result-store operations.
type StoreHooks interface {
	// OnPut records a stored result.
	OnPut(ctx context.Context, backend string, size int)

	// OnGet records a lookup and whether it was found.
	OnGet(ctx context.Context, backend string, found bool)

	// OnDelete records a removal.
	OnDelete(ctx context.Context, backend string)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopSolverHooks is a no-op implementation of SolverHooks.
type NoopSolverHooks struct{}

func (NoopSolverHooks) OnSolveStart(context.Context, int, int)                          {}
func (NoopSolverHooks) OnPhaseStart(context.Context, string)                            {}
func (NoopSolverHooks) OnPhaseComplete(context.Context, string, int, time.Duration)     {}
func (NoopSolverHooks) OnCandidateScored(context.Context, int, float64)                 {}
func (NoopSolverHooks) OnSolveComplete(context.Context, float64, time.Duration)         {}

// NoopStoreHooks is a no-op implementation of StoreHooks.
type NoopStoreHooks struct{}

func (NoopStoreHooks) OnPut(context.Context, string, int)   {}
func (NoopStoreHooks) OnGet(context.Context, string, bool)  {}
func (NoopStoreHooks) OnDelete(context.Context, string)     {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	solverHooks SolverHooks = NoopSolverHooks{}
	storeHooks  StoreHooks  = NoopStoreHooks{}
	hooksMu     sync.RWMutex
)

// SetSolverHooks registers custom solver hooks.
// This should be called once at application startup before any solve.
func SetSolverHooks(h SolverHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		solverHooks = h
	}
}

// SetStoreHooks registers custom store hooks.
// This should be called once at application startup before any store use.
func SetStoreHooks(h StoreHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		storeHooks = h
	}
}

// Solver returns the registered solver hooks.
func Solver() SolverHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return solverHooks
}

// Store returns the registered store hooks.
func Store() StoreHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return storeHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	solverHooks = NoopSolverHooks{}
	storeHooks = NoopStoreHooks{}
}
