package aiger

import (
	"bytes"
	"strings"
	"testing"
)

const sampleAAG = `aag 3 2 0 1 1
2
4
6
6 2 4
i0 a
i1 b
o0 c
`

func TestReadParsesHeaderAndGates(t *testing.T) {
	s, err := Read(strings.NewReader(sampleAAG))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(s.Inputs) != 2 || len(s.Outputs) != 1 || len(s.Ands) != 1 {
		t.Fatalf("counts = I:%d O:%d A:%d, want 2/1/1", len(s.Inputs), len(s.Outputs), len(s.Ands))
	}
	if s.Get(1).Symbol != "a" || s.Get(2).Symbol != "b" {
		t.Fatalf("input symbols not attached correctly")
	}
}

func TestRejectsSequentialCircuits(t *testing.T) {
	_, err := Read(strings.NewReader("aag 3 1 1 1 1\n2\n4\n6 2 4\n6 2 4\n"))
	if err == nil {
		t.Fatalf("expected an error for a nonzero latch count")
	}
}

func TestWriteThenReadRoundTrips(t *testing.T) {
	s, err := Read(strings.NewReader(sampleAAG))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	var buf bytes.Buffer
	if err := Write(&buf, s); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	s2, err := Read(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatalf("re-Read failed: %v\n%s", err, buf.String())
	}
	if len(s2.Inputs) != len(s.Inputs) || len(s2.Outputs) != len(s.Outputs) || len(s2.Ands) != len(s.Ands) {
		t.Fatalf("round trip changed gate counts")
	}
}
