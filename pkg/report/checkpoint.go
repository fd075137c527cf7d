package report

import (
	"encoding/gob"
	"os"

	"github.com/lhuang-aig/aigopt/pkg/aig"
)

// Checkpoint holds enough state to resume a long random-simulation or
// fraig run on a large circuit: the patterns already simulated and the
// FEC partition they produced.
type Checkpoint struct {
	PatternsSimulated int
	FECClasses        [][]aig.Edge
}

func init() {
	gob.Register(aig.Edge{})
}

// SaveCheckpoint writes ckpt to path.
func SaveCheckpoint(path string, ckpt *Checkpoint) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gob.NewEncoder(f).Encode(ckpt)
}

// LoadCheckpoint reads a Checkpoint previously written by SaveCheckpoint.
func LoadCheckpoint(path string) (*Checkpoint, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var ckpt Checkpoint
	if err := gob.NewDecoder(f).Decode(&ckpt); err != nil {
		return nil, err
	}
	return &ckpt, nil
}
