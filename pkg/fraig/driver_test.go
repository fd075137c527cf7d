package fraig

import (
	"testing"

	"github.com/lhuang-aig/aigopt/pkg/aig"
	"github.com/lhuang-aig/aigopt/pkg/satif"
	"github.com/lhuang-aig/aigopt/pkg/sim"
)

// buildDupCircuit builds two structurally distinct AND chains that
// both compute i1 & i2 & i3, wired to separate outputs so strash alone
// can't collapse them (the grouping differs, so no two AND gates share
// a fanin pair).
func buildDupCircuit() *aig.Store {
	s := aig.New()
	s.Insert(aig.KindInput, 1, 1)
	s.Insert(aig.KindInput, 2, 2)
	s.Insert(aig.KindInput, 3, 3)

	a := s.Insert(aig.KindAnd, 4, 4) // i1 & i2
	s.AddFanin(a, aig.EdgeTo(1, false))
	s.AddFanin(a, aig.EdgeTo(2, false))
	b := s.Insert(aig.KindAnd, 5, 5) // (i1 & i2) & i3
	s.AddFanin(b, aig.EdgeTo(4, false))
	s.AddFanin(b, aig.EdgeTo(3, false))

	c := s.Insert(aig.KindAnd, 6, 6) // i2 & i3, opposite grouping
	s.AddFanin(c, aig.EdgeTo(2, false))
	s.AddFanin(c, aig.EdgeTo(3, false))
	d := s.Insert(aig.KindAnd, 7, 7) // i1 & (i2 & i3)
	s.AddFanin(d, aig.EdgeTo(1, false))
	s.AddFanin(d, aig.EdgeTo(6, false))

	o1 := s.Insert(aig.KindOutput, 8, 8)
	s.AddFanin(o1, aig.EdgeTo(5, false))
	o2 := s.Insert(aig.KindOutput, 9, 9)
	s.AddFanin(o2, aig.EdgeTo(7, false))
	return s
}

func TestRunMergesProvenEquivalentGates(t *testing.T) {
	store := buildDupCircuit()

	partition := &sim.FECPartition{Classes: [][]aig.Edge{
		{aig.EdgeTo(5, false), aig.EdgeTo(7, false)},
	}}

	solver := satif.NewNaiveSolver()
	msgs := Run(store, solver, partition)

	if len(msgs) != 1 {
		t.Fatalf("got %d merge messages, want 1: %v", len(msgs), msgs)
	}
	if store.Get(5) == nil && store.Get(7) == nil {
		t.Fatalf("both candidates were removed, one should survive")
	}
	if store.Get(5) != nil && store.Get(7) != nil {
		t.Fatalf("neither candidate was merged away")
	}
}

func TestRunParallelMatchesRunOnProvenEquivalentGates(t *testing.T) {
	store := buildDupCircuit()
	partition := &sim.FECPartition{Classes: [][]aig.Edge{
		{aig.EdgeTo(5, false), aig.EdgeTo(7, false)},
	}}
	msgs := RunParallel(store, func() satif.Solver { return satif.NewNaiveSolver() }, partition, Config{NumWorkers: 4})
	if len(msgs) != 1 {
		t.Fatalf("got %d merge messages, want 1: %v", len(msgs), msgs)
	}
	if store.Get(5) != nil && store.Get(7) != nil {
		t.Fatalf("neither candidate was merged away")
	}
}

func TestRunLeavesDistinctSignalsAlone(t *testing.T) {
	store := buildDupCircuit()
	partition := &sim.FECPartition{Classes: [][]aig.Edge{
		{aig.EdgeTo(4, false), aig.EdgeTo(6, false)}, // i1&i2 vs i2&i3: not equivalent
	}}
	solver := satif.NewNaiveSolver()
	msgs := Run(store, solver, partition)
	if len(msgs) != 0 {
		t.Fatalf("expected no merges for non-equivalent gates, got %v", msgs)
	}
	if store.Get(4) == nil || store.Get(6) == nil {
		t.Fatalf("neither gate should have been removed")
	}
}
