package rewrite

import (
	"testing"

	"github.com/lhuang-aig/aigopt/pkg/aig"
)

func TestSweepRemovesDanglingChain(t *testing.T) {
	s := aig.New()
	s.Insert(aig.KindInput, 1, 1)
	a := s.Insert(aig.KindAnd, 2, 2)
	s.AddFanin(a, aig.EdgeTo(1, false))
	s.AddFanin(a, aig.EdgeTo(0, false))
	// gate 2 has no fanout: sweep should remove it.
	msgs := Sweep(s)
	if len(msgs) != 1 {
		t.Fatalf("got %d messages, want 1: %v", len(msgs), msgs)
	}
	if s.Get(2) != nil {
		t.Fatalf("gate 2 should have been swept")
	}
}

func TestOptimizeFoldsConstantFanin(t *testing.T) {
	s := aig.New()
	s.Insert(aig.KindInput, 1, 1)
	a := s.Insert(aig.KindAnd, 2, 2)
	s.AddFanin(a, aig.EdgeTo(1, false))
	s.AddFanin(a, aig.EdgeTo(0, true)) // inverted const0 = const1, so a == fanin[0]
	o := s.Insert(aig.KindOutput, 3, 3)
	s.AddFanin(o, aig.EdgeTo(2, false))

	Optimize(s)

	if len(o.Fanin) != 1 || o.Fanin[0].Gate() != 1 {
		t.Fatalf("output fanin after optimize = %+v, want edge to gate 1", o.Fanin)
	}
	if s.Get(2) != nil {
		t.Fatalf("gate 2 should have been folded away")
	}
}

func TestOptimizeFoldsIdenticalFanin(t *testing.T) {
	s := aig.New()
	s.Insert(aig.KindInput, 1, 1)
	a := s.Insert(aig.KindAnd, 2, 2)
	s.AddFanin(a, aig.EdgeTo(1, false))
	s.AddFanin(a, aig.EdgeTo(1, true)) // x & !x == 0
	o := s.Insert(aig.KindOutput, 3, 3)
	s.AddFanin(o, aig.EdgeTo(2, false))

	Optimize(s)

	if len(o.Fanin) != 1 || o.Fanin[0] != aig.Const0 {
		t.Fatalf("output fanin after optimize = %+v, want const0", o.Fanin)
	}
}

func TestStrashCollapsesIdenticalGates(t *testing.T) {
	s := aig.New()
	s.Insert(aig.KindInput, 1, 1)
	s.Insert(aig.KindInput, 2, 2)
	a := s.Insert(aig.KindAnd, 3, 3)
	s.AddFanin(a, aig.EdgeTo(1, false))
	s.AddFanin(a, aig.EdgeTo(2, false))
	b := s.Insert(aig.KindAnd, 4, 4)
	s.AddFanin(b, aig.EdgeTo(1, false))
	s.AddFanin(b, aig.EdgeTo(2, false))
	o1 := s.Insert(aig.KindOutput, 5, 5)
	s.AddFanin(o1, aig.EdgeTo(3, false))
	o2 := s.Insert(aig.KindOutput, 6, 6)
	s.AddFanin(o2, aig.EdgeTo(4, false))

	msgs := Strash(s)
	if len(msgs) != 1 {
		t.Fatalf("got %d messages, want 1: %v", len(msgs), msgs)
	}
	if o2.Fanin[0].Gate() != 3 {
		t.Fatalf("second output should now point at gate 3, got %+v", o2.Fanin[0])
	}
}
