// Package report renders circuit summaries, boxed per-gate reports and
// per-gate fanin/fanout trees, and checkpoints long-running
// simulation/fraig passes to disk so they can be resumed.
package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lhuang-aig/aigopt/pkg/aig"
)

// Summary returns the multi-line circuit statistics block the original
// tool prints on load: declared header counts plus how many gates in
// each category currently survive in the store. It rebuilds the
// store's NotUsed/Floating caches first, so a FLOATING line appears
// whenever an AND/OUTPUT gate still has an undeclared fanin.
func Summary(s *aig.Store) string {
	s.RebuildCaches()
	var b strings.Builder
	fmt.Fprintf(&b, "Circuit Statistics\n==================\n")
	fmt.Fprintf(&b, "  PI%6d\n", len(s.Inputs))
	fmt.Fprintf(&b, "  PO%6d\n", len(s.Outputs))
	fmt.Fprintf(&b, "  AIG%5d\n", len(s.Ands))
	fmt.Fprintf(&b, "------------------\n")
	fmt.Fprintf(&b, "  Total%3d\n", len(s.Inputs)+len(s.Outputs)+len(s.Ands))
	if floating := s.Floating(); len(floating) > 0 {
		fmt.Fprintf(&b, "FLOATING%3d\n", len(floating))
	}
	return b.String()
}

// GateReport renders the boxed single-gate report: type, id, symbol and
// line, its current FEC class membership if one is supplied, and a
// nibble-grouped binary dump of its current simulation state.
func GateReport(s *aig.Store, id uint32, fecRep *aig.Edge) string {
	g := s.Get(id)
	if g == nil {
		return fmt.Sprintf("Gate(%d) does not exist.", id)
	}

	header := fmt.Sprintf("%s(%d)", g.Kind, id)
	if g.Symbol != "" {
		header += fmt.Sprintf("\"%s\"", g.Symbol)
	}
	if g.Line != 0 {
		header += fmt.Sprintf(", line %d", g.Line)
	}

	lines := []string{header}
	if fecRep != nil {
		mark := ""
		if fecRep.Inverted() {
			mark = "!"
		}
		lines = append(lines, fmt.Sprintf("FECs: %s%d", mark, fecRep.Gate()))
	}
	lines = append(lines, "Value: "+nibbleGroup(g.State))

	width := 0
	for _, l := range lines {
		if len(l) > width {
			width = len(l)
		}
	}
	var b strings.Builder
	b.WriteString("==" + strings.Repeat("=", width) + "==\n")
	for _, l := range lines {
		fmt.Fprintf(&b, "= %-*s =\n", width, l)
	}
	b.WriteString("==" + strings.Repeat("=", width) + "==")
	return b.String()
}

func nibbleGroup(v uint64) string {
	s := strconv.FormatUint(v, 2)
	for len(s) < 64 {
		s = "0" + s
	}
	var groups []string
	for i := 0; i < 64; i += 4 {
		groups = append(groups, s[i:i+4])
	}
	return strings.Join(groups, "_")
}

// FaninTree renders the fanin cone of id up to level deep, one line per
// gate visited, indented by depth. A gate already printed earlier in
// the walk is marked "(*)" instead of being expanded again, matching
// the cycle-guard the original recursive fanin report used (this
// engine's AIGs are acyclic by construction, but a corrupt or
// hand-edited AIGER file could still describe one).
func FaninTree(s *aig.Store, id uint32, level int) []string {
	s.RaiseMarker()
	var lines []string
	var walk func(id uint32, depth, indent int, inv bool)
	walk = func(id uint32, depth, indent int, inv bool) {
		g := s.Get(id)
		prefix := strings.Repeat("  ", indent)
		mark := ""
		if inv {
			mark = "!"
		}
		if g == nil {
			lines = append(lines, fmt.Sprintf("%s%s%d (missing)", prefix, mark, id))
			return
		}
		seen := s.Marked(g)
		lines = append(lines, fmt.Sprintf("%s%s%s(%d)%s", prefix, mark, g.Kind, id, cycleTag(seen)))
		if seen || depth >= level {
			return
		}
		s.MarkSeen(g)
		for _, e := range g.Fanin {
			walk(e.Gate(), depth+1, indent+1, e.Inverted())
		}
	}
	walk(id, 0, 0, false)
	return lines
}

// FanoutTree is FaninTree's mirror image, walking consumers instead of
// producers.
func FanoutTree(s *aig.Store, id uint32, level int) []string {
	s.RaiseMarker()
	var lines []string
	var walk func(id uint32, depth, indent int, inv bool)
	walk = func(id uint32, depth, indent int, inv bool) {
		g := s.Get(id)
		prefix := strings.Repeat("  ", indent)
		mark := ""
		if inv {
			mark = "!"
		}
		if g == nil {
			lines = append(lines, fmt.Sprintf("%s%s%d (missing)", prefix, mark, id))
			return
		}
		seen := s.Marked(g)
		lines = append(lines, fmt.Sprintf("%s%s%s(%d)%s", prefix, mark, g.Kind, id, cycleTag(seen)))
		if seen || depth >= level {
			return
		}
		s.MarkSeen(g)
		for _, e := range g.Fanout {
			walk(e.Gate(), depth+1, indent+1, e.Inverted())
		}
	}
	walk(id, 0, 0, false)
	return lines
}

func cycleTag(seen bool) string {
	if seen {
		return " (*)"
	}
	return ""
}
