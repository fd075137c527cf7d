// Package aiger reads and writes the ASCII AIGER circuit format. It sits
// outside the engineering core of this repository — no rewrite pass
// depends on it — but the CLI needs it to load and save circuits, and
// no third-party AIGER parser turned up anywhere in the retrieval pack,
// so this is a deliberately plain, stdlib-only reader/writer.
package aiger

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lhuang-aig/aigopt/pkg/aig"
)

// Read parses an ASCII AIGER file (the "aag" format) into a fresh
// *aig.Store. Latches are rejected: this engine works on combinational
// circuits only.
func Read(r io.Reader) (*aig.Store, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 1<<20), 1<<20)

	if !scanner.Scan() {
		return nil, fmt.Errorf("aiger: empty input")
	}
	header := strings.Fields(scanner.Text())
	if len(header) != 6 || header[0] != "aag" {
		return nil, fmt.Errorf("aiger: bad header %q", strings.Join(header, " "))
	}
	nums := make([]uint64, 5)
	for i := 0; i < 5; i++ {
		n, err := strconv.ParseUint(header[i+1], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("aiger: bad header field %q: %w", header[i+1], err)
		}
		nums[i] = n
	}
	m, i, l, o, a := uint32(nums[0]), uint32(nums[1]), uint32(nums[2]), uint32(nums[3]), uint32(nums[4])
	if l != 0 {
		return nil, fmt.Errorf("aiger: sequential circuits (L=%d) are not supported", l)
	}

	s := aig.New()
	s.M, s.I, s.L, s.O, s.A = m, i, l, o, a

	line := 1
	inputIDs := make([]uint32, 0, i)
	for k := uint32(0); k < i; k++ {
		if !scanner.Scan() {
			return nil, fmt.Errorf("aiger: truncated input section")
		}
		line++
		lit, err := strconv.ParseUint(strings.TrimSpace(scanner.Text()), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("aiger: bad input literal: %w", err)
		}
		id := uint32(lit / 2)
		s.Insert(aig.KindInput, id, line)
		inputIDs = append(inputIDs, id)
	}

	outputLits := make([]uint64, 0, o)
	outputLines := make([]int, 0, o)
	for k := uint32(0); k < o; k++ {
		if !scanner.Scan() {
			return nil, fmt.Errorf("aiger: truncated output section")
		}
		line++
		lit, err := strconv.ParseUint(strings.TrimSpace(scanner.Text()), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("aiger: bad output literal: %w", err)
		}
		outputLits = append(outputLits, lit)
		outputLines = append(outputLines, line)
	}

	type andDef struct {
		id, r0, r1 uint64
		line       int
	}
	ands := make([]andDef, 0, a)
	for k := uint32(0); k < a; k++ {
		if !scanner.Scan() {
			return nil, fmt.Errorf("aiger: truncated AND section")
		}
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) != 3 {
			return nil, fmt.Errorf("aiger: bad AND line %q", scanner.Text())
		}
		vals := make([]uint64, 3)
		for fi, f := range fields {
			v, err := strconv.ParseUint(f, 10, 32)
			if err != nil {
				return nil, fmt.Errorf("aiger: bad AND literal %q: %w", f, err)
			}
			vals[fi] = v
		}
		ands = append(ands, andDef{vals[0], vals[1], vals[2], line})
	}

	ensureGate := func(id uint32) {
		if s.Get(id) == nil {
			s.Insert(aig.KindUndef, id, 0)
		}
	}
	for _, ad := range ands {
		ensureGate(uint32(ad.id / 2))
	}
	for _, ad := range ands {
		s.Insert(aig.KindAnd, uint32(ad.id/2), ad.line)
	}
	for _, ad := range ands {
		g := s.Get(uint32(ad.id / 2))
		r0id, r1id := uint32(ad.r0/2), uint32(ad.r1/2)
		ensureGate(r0id)
		ensureGate(r1id)
		s.AddFanin(g, aig.EdgeTo(r0id, ad.r0%2 == 1))
		s.AddFanin(g, aig.EdgeTo(r1id, ad.r1%2 == 1))
	}

	for oi, lit := range outputLits {
		id := uint32(len(s.Gates))
		og := s.Insert(aig.KindOutput, id, outputLines[oi])
		faninID := uint32(lit / 2)
		ensureGate(faninID)
		s.AddFanin(og, aig.EdgeTo(faninID, lit%2 == 1))
		_ = oi
	}

	// Symbol table and trailing comment, both optional.
	for scanner.Scan() {
		text := scanner.Text()
		if text == "c" {
			break
		}
		if len(text) == 0 {
			continue
		}
		switch text[0] {
		case 'i', 'o':
			fields := strings.SplitN(text[1:], " ", 2)
			if len(fields) != 2 {
				continue
			}
			idx, err := strconv.Atoi(fields[0])
			if err != nil {
				continue
			}
			if text[0] == 'i' && idx < len(inputIDs) {
				s.Get(inputIDs[idx]).Symbol = fields[1]
			}
			if text[0] == 'o' && idx < len(s.Outputs) {
				s.Get(s.Outputs[idx]).Symbol = fields[1]
			}
		}
	}

	s.RebuildCaches()
	return s, nil
}

// Write renders s back out in ASCII AIGER form. Gate ids are
// renumbered densely in DFS order starting at 1, since the in-memory
// store's ids may have gaps left by merges.
func Write(w io.Writer, s *aig.Store) error {
	dfs := s.BuildDFS()
	litOf := make(map[uint32]uint64)
	litOf[0] = 0 // constant zero

	next := uint64(1)
	for _, id := range s.Inputs {
		litOf[id] = next * 2
		next++
	}
	var andGates []*aig.Gate
	for _, g := range dfs {
		if g.Kind == aig.KindAnd {
			litOf[g.ID] = next * 2
			next++
			andGates = append(andGates, g)
		}
	}

	litFor := func(e aig.Edge) uint64 {
		l := litOf[e.Gate()]
		if e.Inverted() {
			l++
		}
		return l
	}

	fmt.Fprintf(w, "aag %d %d 0 %d %d\n", next-1, len(s.Inputs), len(s.Outputs), len(andGates))
	for _, id := range s.Inputs {
		fmt.Fprintf(w, "%d\n", litOf[id])
	}
	for _, oid := range s.Outputs {
		og := s.Get(oid)
		fmt.Fprintf(w, "%d\n", litFor(og.Fanin[0]))
	}
	for _, g := range andGates {
		fmt.Fprintf(w, "%d %d %d\n", litOf[g.ID], litFor(g.Fanin[0]), litFor(g.Fanin[1]))
	}
	for i, id := range s.Inputs {
		if sym := s.Get(id).Symbol; sym != "" {
			fmt.Fprintf(w, "i%d %s\n", i, sym)
		}
	}
	for i, oid := range s.Outputs {
		if sym := s.Get(oid).Symbol; sym != "" {
			fmt.Fprintf(w, "o%d %s\n", i, sym)
		}
	}
	return nil
}
