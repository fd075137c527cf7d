package satif

import "testing"

func TestNaiveSolverAndGate(t *testing.T) {
	s := NewNaiveSolver()
	a := s.NewVar()
	b := s.NewVar()
	out := s.NewVar()
	s.AddAndClauses(out, a, false, b, false)

	s.Assume(a, true)
	s.Assume(b, true)
	s.Assume(out, false)
	if s.Solve() {
		t.Fatalf("a=1,b=1,out=0 should be unsatisfiable for an AND gate")
	}
	s.ClearAssumptions()

	s.Assume(a, true)
	s.Assume(b, false)
	s.Assume(out, false)
	if !s.Solve() {
		t.Fatalf("a=1,b=0,out=0 should be satisfiable for an AND gate")
	}
}

func TestNaiveSolverXorEquivalence(t *testing.T) {
	s := NewNaiveSolver()
	a := s.NewVar()
	b := s.NewVar()
	x := s.NewVar()
	s.AddXorClauses(x, a, false, b, false)

	s.Assume(a, true)
	s.Assume(b, true)
	s.Assume(x, true)
	if s.Solve() {
		t.Fatalf("a=1,b=1,x=1 should be unsatisfiable: a and b agree, xor must be 0")
	}
}
