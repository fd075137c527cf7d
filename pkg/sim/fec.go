package sim

import "github.com/lhuang-aig/aigopt/pkg/aig"

// FECPartition holds the current partition of gates into
// functionally-equivalent candidate classes. Each class is a slice of
// signed edges: the inversion bit on a member records the polarity it
// needs relative to the class's canonical signature, not a property of
// the gate itself.
type FECPartition struct {
	Classes [][]aig.Edge
}

// NewFECPartition returns an empty partition; call Init before the
// first Refine.
func NewFECPartition() *FECPartition { return &FECPartition{} }

// Count returns the number of classes currently in the partition.
func (p *FECPartition) Count() int { return len(p.Classes) }

// Init resets the partition to its coarsest state: one class holding
// constant-zero, every primary input, and every AND gate, each
// uninverted. Primary outputs are deliberately excluded — an output is
// a named observation point, not a candidate for being folded into
// another signal.
func (p *FECPartition) Init(s *aig.Store) {
	cls := make([]aig.Edge, 0, 1+len(s.Inputs)+len(s.Ands))
	cls = append(cls, aig.EdgeTo(0, false))
	for _, id := range s.Inputs {
		cls = append(cls, aig.EdgeTo(id, false))
	}
	for _, id := range s.Ands {
		cls = append(cls, aig.EdgeTo(id, false))
	}
	p.Classes = [][]aig.Edge{cls}
}

func simMask(length int) uint64 {
	if length <= 0 {
		return 0
	}
	if length >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << uint(length-1)) | ((uint64(1) << uint(length-1)) - 1)
}

// Refine re-partitions every existing class by the simulation value
// each member's gate holds after the most recent SimulateOnce, masked
// to maskLength bits. On the first round (again == false) the polarity
// of each member is chosen canonically — whichever sign puts the value
// in the lower half of the mask range — and that polarity then governs
// how later rounds (again == true) interpret the same edge's sign, so a
// member found equivalent under one polarity stays grouped under it.
// Singleton buckets are dropped; what remains becomes the new
// partition.
func (p *FECPartition) Refine(s *aig.Store, maskLength int, again bool) {
	m := simMask(maskLength)
	var newClasses [][]aig.Edge

	for _, cls := range p.Classes {
		buckets := make(map[uint64][]aig.Edge)
		for _, e := range cls {
			g := s.Get(e.Gate())
			v := g.State & m

			var inv bool
			if again {
				inv = e.Inverted()
			} else {
				inv = v > (m >> 1)
			}
			if inv {
				v = (^v) & m
			}
			buckets[v] = append(buckets[v], aig.EdgeTo(e.Gate(), inv))
		}
		for _, grp := range buckets {
			if len(grp) > 1 {
				newClasses = append(newClasses, grp)
			}
		}
	}

	p.Classes = newClasses
}
