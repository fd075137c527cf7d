package satif

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
)

// GiniSolver implements Solver on top of github.com/go-air/gini,
// expanding each AND/XOR gate into CNF by hand the same way
// irifrance/gini's own logic.C.ToCnf does for its AND nodes: three
// clauses per AND gate (two for the forward implication, one for the
// reverse), and the standard four clauses per XOR gate.
type GiniSolver struct {
	g           *gini.Gini
	vars        map[Var]z.Var
	next        Var
	assumptions []z.Lit
}

// NewGiniSolver returns a GiniSolver with a fresh, empty clause
// database.
func NewGiniSolver() *GiniSolver {
	return &GiniSolver{g: gini.New(), vars: make(map[Var]z.Var)}
}

func (s *GiniSolver) NewVar() Var {
	s.next++
	s.vars[s.next] = s.g.NewVar()
	return s.next
}

func (s *GiniSolver) lit(v Var, inv bool) z.Lit {
	l := s.vars[v].Pos()
	if inv {
		l = s.vars[v].Neg()
	}
	return l
}

func (s *GiniSolver) clause(lits ...z.Lit) {
	for _, l := range lits {
		s.g.Add(l)
	}
	s.g.Add(0)
}

func (s *GiniSolver) AddAndClauses(out, a Var, aInv bool, b Var, bInv bool) {
	o := s.lit(out, false)
	la := s.lit(a, aInv)
	lb := s.lit(b, bInv)
	s.clause(o.Not(), la)
	s.clause(o.Not(), lb)
	s.clause(o, la.Not(), lb.Not())
}

func (s *GiniSolver) AddXorClauses(out, a Var, aInv bool, b Var, bInv bool) {
	o := s.lit(out, false)
	la := s.lit(a, aInv)
	lb := s.lit(b, bInv)
	s.clause(o.Not(), la.Not(), lb.Not())
	s.clause(o.Not(), la, lb)
	s.clause(o, la.Not(), lb)
	s.clause(o, la, lb.Not())
}

func (s *GiniSolver) Assume(v Var, value bool) {
	s.assumptions = append(s.assumptions, s.lit(v, !value))
}

func (s *GiniSolver) ClearAssumptions() {
	s.assumptions = s.assumptions[:0]
}

func (s *GiniSolver) Solve() bool {
	s.g.Assume(s.assumptions...)
	return s.g.Solve() == 1
}
