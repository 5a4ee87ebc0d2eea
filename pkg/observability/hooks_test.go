package observability

import (
	"context"
	"testing"
	"time"
)

type countingSolverHooks struct {
	NoopSolverHooks
	phases int
	scored int
}

func (h *countingSolverHooks) OnPhaseStart(context.Context, string) { h.phases++ }
func (h *countingSolverHooks) OnCandidateScored(context.Context, int, float64) {
	h.scored++
}

type countingStoreHooks struct {
	NoopStoreHooks
	puts int
}

func (h *countingStoreHooks) OnPut(context.Context, string, int) { h.puts++ }

func TestHookRegistry(t *testing.T) {
	defer Reset()
	ctx := context.Background()

	sh := &countingSolverHooks{}
	SetSolverHooks(sh)
	Solver().OnPhaseStart(ctx, "sweep")
	Solver().OnCandidateScored(ctx, 2, 100)
	Solver().OnCandidateScored(ctx, 3, 90)

	if sh.phases != 1 {
		t.Errorf("phases = %d, want 1", sh.phases)
	}
	if sh.scored != 2 {
		t.Errorf("scored = %d, want 2", sh.scored)
	}

	st := &countingStoreHooks{}
	SetStoreHooks(st)
	Store().OnPut(ctx, "memory", 4)
	if st.puts != 1 {
		t.Errorf("puts = %d, want 1", st.puts)
	}
}

func TestSetNilHooksIgnored(t *testing.T) {
	defer Reset()

	SetSolverHooks(nil)
	SetStoreHooks(nil)

	// Still usable without panics.
	Solver().OnSolveComplete(context.Background(), 100, time.Second)
	Store().OnDelete(context.Background(), "memory")
}

func TestReset(t *testing.T) {
	SetSolverHooks(&countingSolverHooks{})
	Reset()

	if _, ok := Solver().(NoopSolverHooks); !ok {
		t.Error("Reset should restore no-op solver hooks")
	}
	if _, ok := Store().(NoopStoreHooks); !ok {
		t.Error("Reset should restore no-op store hooks")
	}
}
