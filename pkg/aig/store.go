package aig

import "sort"

// Store is the gate arena for one circuit. Exactly one Store exists per
// circuit under edit — every rewrite pass and the fraig driver take a
// *Store and mutate it in place, matching the single-manager-per-process
// contract the original circuit manager enforced.
type Store struct {
	Gates []*Gate // indexed by gate id; nil slot means removed or never allocated

	Inputs  []uint32
	Outputs []uint32
	Ands    []uint32

	M, I, L, O, A uint32 // header counts as declared by the source file

	epoch uint64

	notused  []uint32 // cache: AND gates with no fanout, rebuilt on demand
	floating []uint32 // cache: AND/OUTPUT gates with at least one UNDEF fanin, rebuilt on demand
}

// New returns an empty store with the constant-zero gate allocated at
// id 0, as every AIGER circuit implicitly has.
func New() *Store {
	s := &Store{Gates: make([]*Gate, 1)}
	s.Gates[0] = &Gate{ID: 0, Kind: KindConst}
	return s
}

// Get returns the gate at id, or nil if the slot is empty or out of range.
func (s *Store) Get(id uint32) *Gate {
	if int(id) >= len(s.Gates) {
		return nil
	}
	return s.Gates[id]
}

// Insert allocates (or replaces an UNDEF placeholder at) gate id with
// the given kind, growing the arena as needed.
func (s *Store) Insert(kind Kind, id uint32, line int) *Gate {
	for uint32(len(s.Gates)) <= id {
		s.Gates = append(s.Gates, nil)
	}
	g := &Gate{ID: id, Kind: kind, Line: line}
	s.Gates[id] = g
	switch kind {
	case KindInput:
		s.Inputs = append(s.Inputs, id)
	case KindOutput:
		s.Outputs = append(s.Outputs, id)
	case KindAnd:
		s.Ands = append(s.Ands, id)
	}
	return g
}

// Remove deletes gate id from the store and from whichever category
// slice it belonged to. Callers are responsible for disconnecting the
// gate's fanin/fanout edges first; Remove only retires the slot.
func (s *Store) Remove(id uint32) {
	if int(id) >= len(s.Gates) || s.Gates[id] == nil {
		return
	}
	switch s.Gates[id].Kind {
	case KindInput:
		s.Inputs = removeID(s.Inputs, id)
	case KindOutput:
		s.Outputs = removeID(s.Outputs, id)
	case KindAnd:
		s.Ands = removeID(s.Ands, id)
	}
	s.Gates[id] = nil
}

func removeID(ids []uint32, id uint32) []uint32 {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}

// RaiseMarker advances the traversal epoch and returns it. A gate is
// considered visited in the current traversal when its stored marker
// equals this value. On the rare wraparound of the epoch counter every
// gate's marker is reset so stale values can't alias the new epoch.
func (s *Store) RaiseMarker() uint64 {
	s.epoch++
	if s.epoch == 0 {
		for _, g := range s.Gates {
			if g != nil {
				g.marker = 0
			}
		}
		s.epoch = 1
	}
	return s.epoch
}

// NotUsed returns AND gates with no fanout left, in ascending id order.
// The slice is cached by RebuildCaches; callers that mutate fanout
// outside of sweep should call RebuildCaches before relying on it.
func (s *Store) NotUsed() []uint32 { return s.notused }

// Floating returns the ids of AND/OUTPUT gates with at least one fanin
// pointing at a gate that was never declared (still KindUndef), in
// ascending id order.
func (s *Store) Floating() []uint32 { return s.floating }

func (s *Store) hasUndefFanin(g *Gate) bool {
	for _, e := range g.Fanin {
		fanin := s.Get(e.Gate())
		if fanin != nil && fanin.Kind == KindUndef {
			return true
		}
	}
	return false
}

// RebuildCaches recomputes NotUsed and Floating from current state.
func (s *Store) RebuildCaches() {
	s.notused = s.notused[:0]
	s.floating = s.floating[:0]
	for _, id := range s.Ands {
		g := s.Gates[id]
		if g == nil {
			continue
		}
		if len(g.Fanout) == 0 {
			s.notused = append(s.notused, id)
		}
		if s.hasUndefFanin(g) {
			s.floating = append(s.floating, id)
		}
	}
	for _, id := range s.Outputs {
		g := s.Gates[id]
		if g != nil && s.hasUndefFanin(g) {
			s.floating = append(s.floating, id)
		}
	}
	sort.Slice(s.notused, func(i, j int) bool { return s.notused[i] < s.notused[j] })
	sort.Slice(s.floating, func(i, j int) bool { return s.floating[i] < s.floating[j] })
}
