package rewrite

import (
	"fmt"

	"github.com/lhuang-aig/aigopt/pkg/aig"
)

func invMark(inv bool) string {
	if inv {
		return "!"
	}
	return ""
}

// Optimize walks the circuit in DFS order and folds every AND gate that
// is trivially reducible: a constant fanin collapses the gate to
// constant-zero or to its other fanin depending on polarity, and two
// identical fanins (same gate, same or opposite polarity) collapse it
// to constant-zero or to one of the fanins. Each fold is committed via
// aig.Store.Merge before the walk continues, so later gates see the
// simplified graph.
func Optimize(s *aig.Store) []string {
	var msgs []string
	for _, t := range s.BuildDFS() {
		if t.Kind != aig.KindAnd {
			continue
		}
		if s.Get(t.ID) == nil {
			continue // removed by an earlier fold in this same pass
		}

		fanin := t.Fanin
		var target aig.Edge
		folded := false

		for idx, e := range fanin {
			g := s.Get(e.Gate())
			if g == nil || g.Kind != aig.KindConst {
				continue
			}
			if !e.Inverted() {
				target = aig.Const0
			} else {
				target = fanin[1-idx]
			}
			folded = true
			break
		}

		if !folded && fanin[0].Gate() == fanin[1].Gate() {
			if fanin[0].Inverted() != fanin[1].Inverted() {
				target = aig.Const0
			} else {
				target = fanin[0]
			}
			folded = true
		}

		if !folded {
			continue
		}

		msg := fmt.Sprintf("Simplifying: %d merging %s%d...", target.Gate(), invMark(target.Inverted()), t.ID)
		fmt.Println(msg)
		msgs = append(msgs, msg)
		s.Merge(t.ID, target)
	}
	s.RebuildCaches()
	return msgs
}
