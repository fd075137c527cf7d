package aig

// DFS walks the fanin cone of root in post-order (fanins before the
// gate itself), appending every gate reached exactly once under the
// current traversal epoch. UNDEF placeholders are skipped from the
// output list but still visited, so their fanins (there are none) don't
// get walked twice through two different outputs.
func (s *Store) DFS(root uint32, out *[]*Gate) {
	g := s.Get(root)
	if g == nil || g.marked(s.epoch) {
		return
	}
	g.mark(s.epoch)
	for _, e := range g.Fanin {
		s.DFS(e.Gate(), out)
	}
	if g.Kind != KindUndef {
		*out = append(*out, g)
	}
}

// Marked reports whether g has already been visited under the current
// traversal epoch, letting callers outside this package (report's
// bounded fanin/fanout walks) reuse the same cycle-guard DFS relies on.
func (s *Store) Marked(g *Gate) bool { return g.marked(s.epoch) }

// MarkSeen marks g visited under the current traversal epoch.
func (s *Store) MarkSeen(g *Gate) { g.mark(s.epoch) }

// BuildDFS raises a fresh marker and walks every primary output's
// fanin cone, returning the gates reached in post-order with each gate
// appearing once. This is the order optimize, strash and simulation
// process gates in.
func (s *Store) BuildDFS() []*Gate {
	s.RaiseMarker()
	var out []*Gate
	for _, oid := range s.Outputs {
		s.DFS(oid, &out)
	}
	return out
}
