package sim

import (
	"io"
	"math/rand"

	"github.com/lhuang-aig/aigopt/pkg/aig"
	"github.com/lhuang-aig/aigopt/pkg/report"
)

// Config gathers the tunables one simulation run needs, the same way
// the teacher's search.Config/stoke.Config bundle flags into a single
// value passed to a Run entry point.
type Config struct {
	Seed int64 // random seed for RandomSim; defaults to 1 when zero

	FromFile bool       // if true, FileSim runs against Patterns instead of RandomSim
	Patterns [][]uint64 // pattern batches backing FileSim, possibly empty if parsing failed early
	Count    int        // pattern count backing Patterns

	Log io.Writer // optional per-lane simulation log

	// CheckpointPath, if non-empty, resumes from a checkpoint already at
	// that path (if any) and rewrites it after every simulated batch.
	CheckpointPath string
}

// Run drives s through the simulation cfg describes and returns the
// resulting FEC partition along with the number of patterns simulated.
func Run(s *aig.Store, cfg Config) (*FECPartition, int) {
	simulator := New(s)
	simulator.Log = cfg.Log
	simulator.CheckpointPath = cfg.CheckpointPath
	fec := NewFECPartition()

	if cfg.CheckpointPath != "" {
		if ckpt, err := report.LoadCheckpoint(cfg.CheckpointPath); err == nil {
			fec.Classes = ckpt.FECClasses
			simulator.ResumeCount = ckpt.PatternsSimulated
		}
	}

	if cfg.FromFile {
		return fec, simulator.FileSim(fec, cfg.Patterns, cfg.Count)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = 1
	}
	return fec, simulator.RandomSim(fec, rand.New(rand.NewSource(seed)))
}
