package lattice

import "testing"

func TestSSplitCrossingSouthPole(t *testing.T) {
	v := FromBounds(W8, 250, 5)
	pieces := SSplit(v)
	if len(pieces) != 2 {
		t.Fatalf("expected 2 pieces, got %d", len(pieces))
	}
	for _, e := range []MachineInt{250, 255, 0, 5} {
		found := false
		for _, p := range pieces {
			if p.Contains(e) {
				found = true
			}
		}
		if !found {
			t.Fatalf("no piece of %v contains %d", pieces, e)
		}
	}
}

func TestSSplitNonWrappingIsUnsplit(t *testing.T) {
	v := FromBounds(W8, 10, 20)
	pieces := SSplit(v)
	if len(pieces) != 1 || !pieces[0].Eq(v) {
		t.Fatalf("non-wrapping range should split into itself, got %v", pieces)
	}
}

func TestNSplitCrossingNorthPole(t *testing.T) {
	// MaxS=127, MinS=-128(=128 unsigned); a range straddling that boundary.
	v := FromBounds(W8, 120, 10)
	pieces := NSplit(v)
	if len(pieces) != 2 {
		t.Fatalf("expected 2 pieces, got %d", len(pieces))
	}
}

func TestPSplitPiecesAreSignAndWrapUniform(t *testing.T) {
	v := FromBounds(W8, 250, 10)
	for _, p := range PSplit(v) {
		if p.kind != rangeKind {
			continue
		}
		if p.lb > p.ub {
			t.Fatalf("psplit piece %s still crosses the south pole", p)
		}
		if (p.w.ToSigned(p.lb) < 0) != (p.w.ToSigned(p.ub) < 0) {
			t.Fatalf("psplit piece %s mixes signs", p)
		}
	}
}

func TestSplitsPassBotTopThrough(t *testing.T) {
	for _, split := range []func(Wrapped) []Wrapped{SSplit, NSplit, PSplit} {
		if got := split(Bot(W8)); len(got) != 1 || !got[0].IsBot() {
			t.Fatalf("split should pass Bot through unchanged, got %v", got)
		}
		if got := split(Top(W8)); len(got) != 1 || !got[0].IsTop() {
			t.Fatalf("split should pass Top through unchanged, got %v", got)
		}
	}
}
