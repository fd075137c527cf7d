package fraig

import (
	"fmt"
	"runtime"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lhuang-aig/aigopt/pkg/aig"
	"github.com/lhuang-aig/aigopt/pkg/satif"
	"github.com/lhuang-aig/aigopt/pkg/sim"
)

// query is one XOR-assumption equivalence check: does cls[j] equal cls[k]?
type query struct {
	classIdx, j, k int
}

type verdict struct {
	query
	unsat bool
}

// Config tunes RunParallel the way the teacher's search.Config tunes
// its worker pool: NumWorkers <= 0 defaults to runtime.NumCPU().
type Config struct {
	NumWorkers int
}

// RunParallel proves equivalence across every FEC class the same way
// Run does, but farms the independent SAT queries (every pairwise
// comparison within a class) out to cfg.NumWorkers goroutines, each
// with its own solver built by newSolver — most SAT solver
// implementations, including GiniSolver, aren't safe to share across
// goroutines. The merge step that follows is still single-threaded: it
// replays the verdicts in class/seed order and commits them with
// aig.Store.Merge exactly as Run would, so the result is identical
// regardless of how many workers ran the queries.
func RunParallel(store *aig.Store, newSolver func() satif.Solver, partition *sim.FECPartition, cfg Config) []string {
	if len(partition.Classes) == 0 {
		return nil
	}
	numWorkers := cfg.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	classes := append([][]aig.Edge(nil), partition.Classes...)
	sort.Slice(classes, func(i, j int) bool { return len(classes[i]) < len(classes[j]) })

	// Each worker gets its own solver instance and its own gate-id ->
	// Var mapping — solvers aren't shared across goroutines, so there's
	// no need for the numbering to agree between them, only to be
	// self-consistent within each solver's own queries.
	defineVars := func(s satif.Solver) map[uint32]satif.Var {
		vars := make(map[uint32]satif.Var, len(store.Gates))
		for _, g := range store.Gates {
			if g == nil {
				continue
			}
			vars[g.ID] = s.NewVar()
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
			s.AddAndClauses(vars[id], v0, e0.Inverted(), v1, e1.Inverted())
		}
		return vars
	}

	var tasks []query
	for ci, cls := range classes {
		for j := 0; j < len(cls); j++ {
			for k := j + 1; k < len(cls); k++ {
				tasks = append(tasks, query{ci, j, k})
			}
		}
	}

	taskCh := make(chan query, len(tasks))
	for _, t := range tasks {
		taskCh <- t
	}
	close(taskCh)

	results := make([]verdict, 0, len(tasks))
	var mu sync.Mutex
	var checked atomic.Int64

	done := make(chan struct{})
	start := time.Now()
	go func() {
		ticker := time.NewTicker(10 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				fmt.Printf("  [%s] %d/%d equivalence queries checked\n",
					time.Since(start).Round(time.Second), checked.Load(), len(tasks))
			}
		}
	}()

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s := newSolver()
			vars := defineVars(s)
			for t := range taskCh {
				cls := classes[t.classIdx]
				cj, ck := cls[t.j], cls[t.k]
				x := s.NewVar()
				s.AddXorClauses(x, vars[cj.Gate()], cj.Inverted(), vars[ck.Gate()], ck.Inverted())
				s.ClearAssumptions()
				s.Assume(x, true)
				sat := s.Solve()
				mu.Lock()
				if sat {
					fmt.Printf("\rProving %d = %d...SAT", cj.Gate(), ck.Gate())
				} else {
					fmt.Printf("\rProving %d = %d...UNSAT\n", cj.Gate(), ck.Gate())
				}
				results = append(results, verdict{t, !sat})
				mu.Unlock()
				checked.Add(1)
			}
		}()
	}
	wg.Wait()
	close(done)

	byClass := make(map[int][]verdict)
	for _, v := range results {
		byClass[v.classIdx] = append(byClass[v.classIdx], v)
	}

	var msgs []string
	for ci, cls := range classes {
		merged := make([]bool, len(cls))
		unsatAt := make(map[[2]int]bool)
		for _, v := range byClass[ci] {
			if v.unsat {
				unsatAt[[2]int{v.j, v.k}] = true
			}
		}
		for j := range cls {
			if merged[j] {
				continue
			}
			var equivalent []int
			for k := j + 1; k < len(cls); k++ {
				if merged[k] {
					continue
				}
				if unsatAt[[2]int{j, k}] {
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
