// Package sim implements 64-wide parallel bit-vector simulation and the
// functionally-equivalent-candidate partition refinement that narrows
// fraig's SAT queries down to gates that already agree on every
// simulated pattern.
package sim

import (
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/lhuang-aig/aigopt/pkg/aig"
	"github.com/lhuang-aig/aigopt/pkg/report"
)

// Simulator drives one circuit's gates through successive 64-lane
// simulation rounds.
type Simulator struct {
	Store *aig.Store

	// Log, if set, receives LogLane's lines (one per lane) for every
	// simulated batch.
	Log io.Writer

	// CheckpointPath, if set, is rewritten after every simulated batch
	// with the patterns-so-far count and the current FEC partition, so a
	// killed run can resume from the last completed batch instead of
	// starting the partition over.
	CheckpointPath string

	// ResumeCount is the pattern count a loaded checkpoint already
	// accounts for; RandomSim and FileSim add to it rather than
	// restarting from zero.
	ResumeCount int
}

func (sim *Simulator) checkpoint(fec *FECPartition, count int) {
	if sim.CheckpointPath == "" {
		return
	}
	ckpt := &report.Checkpoint{PatternsSimulated: count, FECClasses: fec.Classes}
	if err := report.SaveCheckpoint(sim.CheckpointPath, ckpt); err != nil {
		fmt.Fprintf(os.Stderr, "checkpoint: %v\n", err)
	}
}

// New returns a Simulator over s.
func New(s *aig.Store) *Simulator { return &Simulator{Store: s} }

func value(s *aig.Store, e aig.Edge) uint64 {
	g := s.Get(e.Gate())
	if e.Inverted() {
		return ^g.State
	}
	return g.State
}

// SimulateOnce feeds tx (one word per primary input, in input order)
// into the circuit, evaluates every reachable gate in DFS order, and
// returns one word per primary output.
func (sim *Simulator) SimulateOnce(tx []uint64) []uint64 {
	s := sim.Store
	for i, id := range s.Inputs {
		s.Get(id).State = tx[i]
	}

	for _, g := range s.BuildDFS() {
		switch g.Kind {
		case aig.KindConst:
			g.State = 0
		case aig.KindAnd:
			g.State = value(s, g.Fanin[0]) & value(s, g.Fanin[1])
		case aig.KindOutput:
			g.State = value(s, g.Fanin[0])
		}
	}

	rx := make([]uint64, len(s.Outputs))
	for i, id := range s.Outputs {
		rx[i] = s.Get(id).State
	}
	return rx
}

// LogLane writes the simulation log for a maskLength-wide batch, one
// line per lane, most-significant lane first: one bit per primary input
// (len(tx) columns), a space, then one bit per primary output (len(rx)
// columns).
func LogLane(w io.Writer, tx, rx []uint64, maskLength int) {
	bit := uint64(1) << uint(maskLength-1)
	for i := 0; i < maskLength; i++ {
		for _, t := range tx {
			if t&bit != 0 {
				fmt.Fprint(w, "1")
			} else {
				fmt.Fprint(w, "0")
			}
		}
		fmt.Fprint(w, " ")
		for _, r := range rx {
			if r&bit != 0 {
				fmt.Fprint(w, "1")
			} else {
				fmt.Fprint(w, "0")
			}
		}
		fmt.Fprintln(w)
		bit >>= 1
	}
}

// RandomSim repeatedly simulates random 64-lane batches against fec,
// initializing the partition first unless a loaded checkpoint already
// filled it, until a batch leaves the class count unchanged (and
// non-zero), matching the termination rule of the original
// random-pattern loop. It returns the total number of patterns
// simulated, starting from ResumeCount.
func (sim *Simulator) RandomSim(fec *FECPartition, rng *rand.Rand) int {
	resumed := len(fec.Classes) > 0
	if !resumed {
		fec.Init(sim.Store)
	}
	count := sim.ResumeCount
	for {
		prev := fec.Count()
		tx := make([]uint64, len(sim.Store.Inputs))
		for i := range tx {
			tx[i] = rng.Uint64()
		}
		rx := sim.SimulateOnce(tx)
		if sim.Log != nil {
			LogLane(sim.Log, tx, rx, 64)
		}
		count += 64
		again := resumed || count != sim.ResumeCount+64
		fec.Refine(sim.Store, 64, again)
		sim.checkpoint(fec, count)
		fmt.Printf("\rTotal #FEC Group = %d", fec.Count())
		if fec.Count() == prev || fec.Count() == 0 {
			break
		}
	}
	fmt.Printf("\r%d patterns simulated.\n", count)
	return count
}

// FileSim simulates every batch produced by ParsePatternFile in order,
// initializing fec first unless a loaded checkpoint already filled it.
// It returns ResumeCount plus the number of patterns simulated.
func (sim *Simulator) FileSim(fec *FECPartition, batches [][]uint64, count int) int {
	if count == 0 {
		return sim.ResumeCount
	}
	resumed := len(fec.Classes) > 0
	if !resumed {
		fec.Init(sim.Store)
	}
	total := sim.ResumeCount
	for i, tx := range batches {
		maskLength := count - i*64
		if maskLength > 64 {
			maskLength = 64
		}
		if maskLength < 0 {
			maskLength = 0
		}
		rx := sim.SimulateOnce(tx)
		if sim.Log != nil && maskLength > 0 {
			LogLane(sim.Log, tx, rx, maskLength)
		}
		fec.Refine(sim.Store, maskLength, resumed || i != 0)
		total += maskLength
		sim.checkpoint(fec, total)
		fmt.Printf("\rTotal #FEC Group = %d", fec.Count())
	}
	fmt.Printf("\r%d patterns simulated.\n", total)
	return total
}
