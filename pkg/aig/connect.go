package aig

// AddFanin records that u reads e as an input, and reciprocally records
// u as a fanout of the gate e points at. Every connection in the graph
// is kept symmetric this way so either direction can be walked without
// consulting the other gate's list.
func (s *Store) AddFanin(u *Gate, e Edge) {
	u.Fanin = append(u.Fanin, e)
	if peer := s.Get(e.Gate()); peer != nil {
		peer.Fanout = append(peer.Fanout, Edge{id: u.ID, inv: e.inv})
	}
}

// AddFanout records that u drives e, and reciprocally adds u to the
// fanin list of the gate e points at.
func (s *Store) AddFanout(u *Gate, e Edge) {
	u.Fanout = append(u.Fanout, e)
	if peer := s.Get(e.Gate()); peer != nil {
		peer.Fanin = append(peer.Fanin, Edge{id: u.ID, inv: e.inv})
	}
}

func removeOneEdge(list []Edge, e Edge) []Edge {
	for i, v := range list {
		if v == e {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

// DisconnectFanin removes exactly one edge equal to e from u's fanin
// list, along with the matching reciprocal entry in the peer gate's
// fanout list.
func (s *Store) DisconnectFanin(u *Gate, e Edge) {
	u.Fanin = removeOneEdge(u.Fanin, e)
	if peer := s.Get(e.Gate()); peer != nil {
		peer.Fanout = removeOneEdge(peer.Fanout, Edge{id: u.ID, inv: e.inv})
	}
}

// DisconnectFanout removes exactly one edge equal to e from u's fanout
// list, along with the matching reciprocal entry in the peer gate's
// fanin list.
func (s *Store) DisconnectFanout(u *Gate, e Edge) {
	u.Fanout = removeOneEdge(u.Fanout, e)
	if peer := s.Get(e.Gate()); peer != nil {
		peer.Fanin = removeOneEdge(peer.Fanin, Edge{id: u.ID, inv: e.inv})
	}
}

// DisconnectAllFanin tears down every fanin edge of u and their
// reciprocal fanout entries, leaving u with no inputs.
func (s *Store) DisconnectAllFanin(u *Gate) {
	for _, e := range append([]Edge(nil), u.Fanin...) {
		s.DisconnectFanin(u, e)
	}
}

// DisconnectAllFanout tears down every fanout edge of u and their
// reciprocal fanin entries, leaving u undriving anything.
func (s *Store) DisconnectAllFanout(u *Gate) {
	for _, e := range append([]Edge(nil), u.Fanout...) {
		s.DisconnectFanout(u, e)
	}
}

// Merge redirects every consumer of fromID to read to instead, composing
// inversion bits so the replaced signal is electrically identical, then
// disconnects and removes the fromID gate. Every rewrite pass in this
// repository — optimize's constant/identity folding, strash's structural
// duplicate collapse, fraig's SAT-proved equivalence collapse — bottoms
// out in this one operation.
func (s *Store) Merge(fromID uint32, to Edge) {
	from := s.Get(fromID)
	if from == nil {
		return
	}
	toGate := s.Get(to.Gate())
	for _, outEdge := range append([]Edge(nil), from.Fanout...) {
		consumer := s.Get(outEdge.Gate())
		if consumer == nil {
			continue
		}
		newEdge := Edge{id: to.Gate(), inv: to.inv != outEdge.inv}
		for i, fe := range consumer.Fanin {
			if fe.id == fromID && fe.inv == outEdge.inv {
				consumer.Fanin[i] = newEdge
				break
			}
		}
		if toGate != nil {
			toGate.Fanout = append(toGate.Fanout, Edge{id: consumer.ID, inv: newEdge.inv})
		}
	}
	s.DisconnectAllFanin(from)
	from.Fanout = nil
	s.Remove(fromID)
}
