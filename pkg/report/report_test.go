package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lhuang-aig/aigopt/pkg/aig"
)

func buildSmall() *aig.Store {
	s := aig.New()
	s.Insert(aig.KindInput, 1, 1)
	s.Insert(aig.KindInput, 2, 2)
	a := s.Insert(aig.KindAnd, 3, 3)
	s.AddFanin(a, aig.EdgeTo(1, false))
	s.AddFanin(a, aig.EdgeTo(2, false))
	o := s.Insert(aig.KindOutput, 4, 4)
	s.AddFanin(o, aig.EdgeTo(3, false))
	return s
}

func TestSummaryCountsCategories(t *testing.T) {
	s := buildSmall()
	out := Summary(s)
	if !strings.Contains(out, "PI") || !strings.Contains(out, "AIG") {
		t.Fatalf("summary missing expected sections:\n%s", out)
	}
}

func TestGateReportIncludesSymbolAndState(t *testing.T) {
	s := buildSmall()
	s.Get(1).Symbol = "clk"
	s.Get(1).State = 0xFF
	out := GateReport(s, 1, nil)
	if !strings.Contains(out, "clk") {
		t.Fatalf("report missing symbol:\n%s", out)
	}
}

func TestFaninTreeListsGateAndItsFanins(t *testing.T) {
	s := buildSmall()
	lines := FaninTree(s, 3, 5)
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3 (gate 3, gate 1, gate 2): %v", len(lines), lines)
	}
}

func TestCheckpointRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ckpt.gob")
	ckpt := &Checkpoint{
		PatternsSimulated: 128,
		FECClasses: [][]aig.Edge{
			{aig.EdgeTo(3, false), aig.EdgeTo(7, true)},
		},
	}
	if err := SaveCheckpoint(path, ckpt); err != nil {
		t.Fatalf("SaveCheckpoint: %v", err)
	}
	loaded, err := LoadCheckpoint(path)
	if err != nil {
		t.Fatalf("LoadCheckpoint: %v", err)
	}
	if loaded.PatternsSimulated != 128 {
		t.Fatalf("PatternsSimulated = %d, want 128", loaded.PatternsSimulated)
	}
	if len(loaded.FECClasses) != 1 || len(loaded.FECClasses[0]) != 2 {
		t.Fatalf("FECClasses did not round-trip: %+v", loaded.FECClasses)
	}
	if loaded.FECClasses[0][1].Gate() != 7 || !loaded.FECClasses[0][1].Inverted() {
		t.Fatalf("edge did not round-trip its id/inversion: %+v", loaded.FECClasses[0][1])
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("checkpoint file missing: %v", err)
	}
}
