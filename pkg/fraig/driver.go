// Package fraig drives the functionally-reduced AIG pass: it emits a
// CNF defining the circuit, sorts the simulation-derived FEC classes
// from sim.FECPartition by ascending size, and for each class proves
// or refutes equivalence between its members with the SAT solver,
// collapsing everything proved equal into the circuit with aig.Merge.
package fraig

import (
	"fmt"
	"sort"

	"github.com/lhuang-aig/aigopt/pkg/aig"
	"github.com/lhuang-aig/aigopt/pkg/satif"
	"github.com/lhuang-aig/aigopt/pkg/sim"
)

func invMark(inv bool) string {
	if inv {
		return "!"
	}
	return ""
}

// Run allocates one SAT variable per live gate, defines every AND gate
// with solver.AddAndClauses, then walks partition.Classes from smallest
// to largest. Within a class, each unconsumed member in turn becomes
// the seed of a group: every later unconsumed member is tested against
// it by asserting their XOR and checking satisfiability. A SAT result
// means the two can still differ and both stay candidates; an UNSAT
// result proves them equal and the later gate is folded into the seed
// once the whole class has been scanned. Run mutates both store and
// partition and returns the merge messages it printed along the way.
func Run(store *aig.Store, solver satif.Solver, partition *sim.FECPartition) []string {
	if len(partition.Classes) == 0 {
		return nil
	}

	vars := make(map[uint32]satif.Var, len(store.Gates))
	for _, g := range store.Gates {
		if g == nil {
			continue
		}
		vars[g.ID] = solver.NewVar()
	}
	for _, id := range store.Ands {
		g := store.Get(id)
		if g == nil {
			continue
		}
		e0, e1 := g.Fanin[0], g.Fanin[1]
		v0, ok0 := vars[e0.Gate()]
		v1, ok1 := vars[e1.Gate()]
		if !ok0 || !ok1 {
			continue
		}
		solver.AddAndClauses(vars[id], v0, e0.Inverted(), v1, e1.Inverted())
	}

	classes := append([][]aig.Edge(nil), partition.Classes...)
	sort.Slice(classes, func(i, j int) bool { return len(classes[i]) < len(classes[j]) })

	var msgs []string
	for _, cls := range classes {
		merged := make([]bool, len(cls))
		for j := range cls {
			if merged[j] {
				continue
			}
			var equivalent []int
			for k := j + 1; k < len(cls); k++ {
				if merged[k] {
					continue
				}
				cj, ck := cls[j], cls[k]
				vj, vk := vars[cj.Gate()], vars[ck.Gate()]
				x := solver.NewVar()
				solver.AddXorClauses(x, vj, cj.Inverted(), vk, ck.Inverted())
				solver.ClearAssumptions()
				solver.Assume(x, true)
				if solver.Solve() {
					fmt.Printf("\rProving %d = %d...SAT", cj.Gate(), ck.Gate())
				} else {
					fmt.Printf("\rProving %d = %d...UNSAT\n", cj.Gate(), ck.Gate())
					equivalent = append(equivalent, k)
				}
			}
			if len(equivalent) == 0 {
				continue
			}
			rep := cls[j]
			for _, k := range equivalent {
				eq := cls[k]
				invNew := rep.Inverted() != eq.Inverted()
				msg := fmt.Sprintf("Fraig: %d merging %s%d...", rep.Gate(), invMark(invNew), eq.Gate())
				fmt.Println(msg)
				msgs = append(msgs, msg)
				store.Merge(eq.Gate(), aig.EdgeTo(rep.Gate(), invNew))
				merged[k] = true
			}
			merged[j] = true
		}
	}

	partition.Classes = nil
	return msgs
}
