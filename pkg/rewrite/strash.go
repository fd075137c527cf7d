package rewrite

import (
	"fmt"

	"github.com/lhuang-aig/aigopt/pkg/aig"
)

type strashKey struct {
	a, b aig.Edge
}

// Strash collapses AND gates that share the exact same ordered pair of
// fanin edges (same gates, same polarities, same order — no
// commutative canonicalization) into a single gate, keeping whichever
// one was inserted first. It is a pure structural hash: two gates that
// compute the same function but were built with swapped fanin order
// are left alone, since proving that equivalence is fraig's job, not
// strash's.
func Strash(s *aig.Store) []string {
	var msgs []string
	table := make(map[strashKey]uint32)

	for _, t := range s.BuildDFS() {
		if t.Kind != aig.KindAnd {
			continue
		}
		if s.Get(t.ID) == nil {
			continue
		}
		key := strashKey{t.Fanin[0], t.Fanin[1]}
		existingID, ok := table[key]
		if !ok {
			table[key] = t.ID
			continue
		}
		if s.Get(existingID) == nil {
			table[key] = t.ID
			continue
		}
		msg := fmt.Sprintf("Strashing: %d merging %d...", existingID, t.ID)
		fmt.Println(msg)
		msgs = append(msgs, msg)
		s.Merge(t.ID, aig.EdgeTo(existingID, false))
	}

	s.RebuildCaches()
	return msgs
}
