package satif

// NaiveSolver is a small in-memory DPLL-style solver used by this
// repository's own tests so they don't depend on cgo or a system SAT
// binary to exercise the fraig driver deterministically. It implements
// the same Solver contract as GiniSolver but keeps its own CNF and
// does plain backtracking, pruning a branch as soon as one clause is
// fully assigned and false (no unit propagation) — adequate for the
// handful of variables a unit test circuit produces, not meant for
// anything production-sized.
type NaiveSolver struct {
	nvars       int
	clauses     [][]int // each literal is var*2 for positive, var*2+1 for negative, 1-indexed vars
	assumptions []int
}

// NewNaiveSolver returns an empty NaiveSolver.
func NewNaiveSolver() *NaiveSolver { return &NaiveSolver{} }

func (s *NaiveSolver) NewVar() Var {
	s.nvars++
	return Var(s.nvars)
}

func lit(v Var, inv bool) int {
	l := int(v) * 2
	if inv {
		l++
	}
	return l
}

func (s *NaiveSolver) AddAndClauses(out, a Var, aInv bool, b Var, bInv bool) {
	o, la, lb := lit(out, false), lit(a, aInv), lit(b, bInv)
	s.clauses = append(s.clauses,
		[]int{flip(o), la},
		[]int{flip(o), lb},
		[]int{o, flip(la), flip(lb)},
	)
}

func (s *NaiveSolver) AddXorClauses(out, a Var, aInv bool, b Var, bInv bool) {
	o, la, lb := lit(out, false), lit(a, aInv), lit(b, bInv)
	s.clauses = append(s.clauses,
		[]int{flip(o), flip(la), flip(lb)},
		[]int{flip(o), la, lb},
		[]int{o, flip(la), lb},
		[]int{o, la, flip(lb)},
	)
}

func flip(l int) int {
	if l%2 == 0 {
		return l + 1
	}
	return l - 1
}

func (s *NaiveSolver) Assume(v Var, value bool) {
	s.assumptions = append(s.assumptions, lit(v, !value))
}

func (s *NaiveSolver) ClearAssumptions() { s.assumptions = s.assumptions[:0] }

func (s *NaiveSolver) Solve() bool {
	assign := make([]int, s.nvars+1) // 0 unassigned, 1 true, -1 false
	for _, a := range s.assumptions {
		v := a / 2
		val := 1
		if a%2 == 1 {
			val = -1
		}
		assign[v] = val
	}
	return s.search(assign, 1)
}

func (s *NaiveSolver) search(assign []int, v int) bool {
	if v > s.nvars {
		return s.satisfiedBy(assign)
	}
	if assign[v] != 0 {
		return s.search(assign, v+1)
	}
	for _, val := range []int{1, -1} {
		assign[v] = val
		if s.satisfiedPartial(assign) && s.search(assign, v+1) {
			return true
		}
	}
	assign[v] = 0
	return false
}

func (s *NaiveSolver) litTrue(assign []int, l int) bool {
	v := l / 2
	want := 1
	if l%2 == 1 {
		want = -1
	}
	return assign[v] == want
}

func (s *NaiveSolver) satisfiedPartial(assign []int) bool {
	for _, cl := range s.clauses {
		sat := false
		allAssigned := true
		for _, l := range cl {
			v := l / 2
			if assign[v] == 0 {
				allAssigned = false
				continue
			}
			if s.litTrue(assign, l) {
				sat = true
				break
			}
		}
		if !sat && allAssigned {
			return false
		}
	}
	return true
}

func (s *NaiveSolver) satisfiedBy(assign []int) bool {
	for _, cl := range s.clauses {
		sat := false
		for _, l := range cl {
			if s.litTrue(assign, l) {
				sat = true
				break
			}
		}
		if !sat {
			return false
		}
	}
	return true
}
