// Package rewrite implements the three in-place cleanups every pass in
// this repository can run on a circuit before handing it to fraig:
// dead-code elimination (sweep), local algebraic simplification
// (optimize), and structural duplicate collapse (strash).
package rewrite

import (
	"fmt"

	"github.com/lhuang-aig/aigopt/pkg/aig"
)

// Sweep removes every AND and UNDEF gate that carries no fanout,
// propagating the removal to whatever it was driving until nothing
// dead remains. Primary inputs and outputs are never removed, even
// when an output has no observer — its value is still externally
// visible. The emitted messages are also printed to stdout as they're
// produced.
func Sweep(s *aig.Store) []string {
	s.RebuildCaches()
	frontier := append([]uint32(nil), s.NotUsed()...)

	for i := 0; i < len(frontier); i++ {
		target := s.Get(frontier[i])
		if target == nil {
			continue
		}
		for _, e := range append([]aig.Edge(nil), target.Fanin...) {
			peer := s.Get(e.Gate())
			s.DisconnectFanin(target, e)
			if peer != nil && peer.Kind != aig.KindConst && len(peer.Fanout) == 0 {
				frontier = append(frontier, peer.ID)
			}
		}
	}

	var msgs []string
	for _, id := range frontier {
		target := s.Get(id)
		if target == nil || (target.Kind != aig.KindAnd && target.Kind != aig.KindUndef) {
			continue
		}
		msg := fmt.Sprintf("Sweeping: %s(%d) removed...", target.Kind, id)
		fmt.Println(msg)
		msgs = append(msgs, msg)
		s.Remove(id)
	}

	s.RebuildCaches()
	return msgs
}
