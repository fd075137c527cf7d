package sim

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/lhuang-aig/aigopt/pkg/aig"
)

func xorCircuit() *aig.Store {
	// o = i1 XOR i2, built from AND/inverter gates.
	s := aig.New()
	s.Insert(aig.KindInput, 1, 1)
	s.Insert(aig.KindInput, 2, 2)
	n1 := s.Insert(aig.KindAnd, 3, 3) // !i1 & i2
	s.AddFanin(n1, aig.EdgeTo(1, true))
	s.AddFanin(n1, aig.EdgeTo(2, false))
	n2 := s.Insert(aig.KindAnd, 4, 4) // i1 & !i2
	s.AddFanin(n2, aig.EdgeTo(1, false))
	s.AddFanin(n2, aig.EdgeTo(2, true))
	n3 := s.Insert(aig.KindAnd, 5, 5) // !n1 & !n2 = !(n1 | n2) = i1 == i2
	s.AddFanin(n3, aig.EdgeTo(3, true))
	s.AddFanin(n3, aig.EdgeTo(4, true))
	out := s.Insert(aig.KindOutput, 6, 6)
	s.AddFanin(out, aig.EdgeTo(5, true)) // !n3 = i1 XOR i2
	return s
}

func TestSimulateOnceComputesXOR(t *testing.T) {
	s := xorCircuit()
	sim := New(s)
	rx := sim.SimulateOnce([]uint64{0b1010, 0b0110})
	want := uint64(0b1010) ^ uint64(0b0110)
	if rx[0] != want {
		t.Fatalf("output = %b, want %b", rx[0], want)
	}
}

func TestFECPartitionRefinesBySimulation(t *testing.T) {
	s := aig.New()
	s.Insert(aig.KindInput, 1, 1)
	a := s.Insert(aig.KindAnd, 2, 2) // i1 & 1 == i1
	s.AddFanin(a, aig.EdgeTo(1, false))
	s.AddFanin(a, aig.EdgeTo(0, true))
	b := s.Insert(aig.KindAnd, 3, 3) // also == i1, different structure
	s.AddFanin(b, aig.EdgeTo(1, false))
	s.AddFanin(b, aig.EdgeTo(1, false))
	o1 := s.Insert(aig.KindOutput, 4, 4)
	s.AddFanin(o1, aig.EdgeTo(2, false))
	o2 := s.Insert(aig.KindOutput, 5, 5)
	s.AddFanin(o2, aig.EdgeTo(3, false))
	_ = o1
	_ = o2

	simulator := New(s)
	fec := NewFECPartition()
	rng := rand.New(rand.NewSource(1))
	simulator.RandomSim(fec, rng)

	foundPair := false
	for _, cls := range fec.Classes {
		has1, has2 := false, false
		for _, e := range cls {
			if e.Gate() == 2 {
				has1 = true
			}
			if e.Gate() == 3 {
				has2 = true
			}
		}
		if has1 && has2 {
			foundPair = true
		}
	}
	if !foundPair {
		t.Fatalf("expected gates 2 and 3 to end up in the same FEC class, got %+v", fec.Classes)
	}
}

func TestParsePatternFileBatchesBy64(t *testing.T) {
	var lines []string
	for i := 0; i < 70; i++ {
		if i%2 == 0 {
			lines = append(lines, "01")
		} else {
			lines = append(lines, "10")
		}
	}
	r := strings.NewReader(strings.Join(lines, "\n"))
	batches, count, err := ParsePatternFile(r, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 70 {
		t.Fatalf("count = %d, want 70", count)
	}
	if len(batches) != 2 {
		t.Fatalf("got %d batches, want 2", len(batches))
	}
}

func TestParsePatternFileRejectsBadLength(t *testing.T) {
	r := strings.NewReader("010\n01\n")
	_, count, err := ParsePatternFile(r, 2)
	if err == nil {
		t.Fatalf("expected an error for mismatched pattern length")
	}
	if count != 0 {
		t.Fatalf("count = %d, want 0 before the bad line", count)
	}
}
