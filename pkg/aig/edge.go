// Package aig implements the gate-level data model for combinational
// And-Inverter Graphs: signed edges, the gate store, traversal and the
// connection bookkeeping every rewrite in this repository mutates through.
package aig

import "errors"

var errInvalidEdgeEncoding = errors.New("aig: invalid gob-encoded Edge")

// Edge is a signed edge: a reference to a gate plus the inversion bit
// carried on that particular connection. It is the AIGER literal made
// safe to pass around as a value — no pointer tagging, just a struct
// with the same two fields an AIGER literal packs into one word.
type Edge struct {
	id  uint32
	inv bool
}

// EdgeTo builds a signed edge pointing at gate id with the given
// inversion bit.
func EdgeTo(id uint32, inv bool) Edge {
	return Edge{id: id, inv: inv}
}

// Const0 is the signed edge to the constant-zero gate, uninverted.
// Inverting it reaches constant-one.
var Const0 = Edge{id: 0, inv: false}

// Gate returns the id of the gate this edge points at.
func (e Edge) Gate() uint32 { return e.id }

// Inverted reports whether this edge carries an inversion.
func (e Edge) Inverted() bool { return e.inv }

// Flip returns the same edge with the inversion bit toggled.
func (e Edge) Flip() Edge { return Edge{id: e.id, inv: !e.inv} }

// WithInvert returns the edge repointed at the same gate with the given
// inversion bit.
func (e Edge) WithInvert(inv bool) Edge { return Edge{id: e.id, inv: inv} }

// GobEncode and GobDecode let Edge round-trip through encoding/gob
// despite its fields being unexported — gob otherwise silently drops
// them, which would make every checkpointed FEC class come back empty.
func (e Edge) GobEncode() ([]byte, error) {
	b := make([]byte, 5)
	b[0] = 0
	if e.inv {
		b[0] = 1
	}
	b[1] = byte(e.id)
	b[2] = byte(e.id >> 8)
	b[3] = byte(e.id >> 16)
	b[4] = byte(e.id >> 24)
	return b, nil
}

func (e *Edge) GobDecode(b []byte) error {
	if len(b) != 5 {
		return errInvalidEdgeEncoding
	}
	e.inv = b[0] == 1
	e.id = uint32(b[1]) | uint32(b[2])<<8 | uint32(b[3])<<16 | uint32(b[4])<<24
	return nil
}
