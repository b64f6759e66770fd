package lattice

import "testing"

func TestFromBoundsFullCircleCanonicalizesToTop(t *testing.T) {
	v := FromBounds(W8, 5, 4)
	if !v.IsTop() {
		t.Fatalf("lb-1 == ub should canonicalize to Top, got %s", v)
	}
}

func TestSingletonCardinality(t *testing.T) {
	v := Singleton(W8, 7)
	if v.Cardinality().Int64() != 1 {
		t.Fatalf("singleton cardinality: got %s, want 1", v.Cardinality())
	}
}

func TestBotTopCardinality(t *testing.T) {
	if Bot(W8).Cardinality().Int64() != 0 {
		t.Fatal("bot cardinality should be 0")
	}
	if Top(W8).Cardinality().Int64() != 256 {
		t.Fatal("top cardinality at w=8 should be 256")
	}
}

func TestContainsWraparound(t *testing.T) {
	v := FromBounds(W8, 250, 5)
	for _, e := range []MachineInt{250, 255, 0, 5} {
		if !v.Contains(e) {
			t.Fatalf("[250,5] should contain %d", e)
		}
	}
	if v.Contains(100) {
		t.Fatal("[250,5] should not contain 100")
	}
}

// TestContainsMatchesSignedRotation cross-checks the single unsigned
// rotation test Contains implements against an independently written
// sign-aware version, for both hemispheres, per Open Question resolution 1
// in DESIGN.md.
func TestContainsMatchesSignedRotation(t *testing.T) {
	w := W8
	signedRotationContains := func(v Wrapped, e MachineInt) bool {
		if v.IsBot() {
			return false
		}
		if v.IsTop() {
			return true
		}
		lb, ub := w.ToSigned(v.lb), w.ToSigned(v.ub)
		se := w.ToSigned(e)
		dist := func(from, to int64) int64 {
			d := to - from
			if d < 0 {
				d += 256
			}
			return d
		}
		return dist(lb, se) <= dist(lb, ub)
	}

	for lb := 0; lb < 256; lb += 7 {
		for ub := 0; ub < 256; ub += 11 {
			v := FromBounds(w, MachineInt(lb), MachineInt(ub))
			if v.IsTop() {
				continue
			}
			for e := 0; e < 256; e += 13 {
				got := v.Contains(MachineInt(e))
				want := signedRotationContains(v, MachineInt(e))
				if got != want {
					t.Fatalf("Contains(%s,%d) = %v, signed rotation says %v", v, e, got, want)
				}
			}
		}
	}
}

func TestComplementRoundTrip(t *testing.T) {
	v := FromBounds(W8, 10, 20)
	c := v.Complement()
	if c.Contains(15) {
		t.Fatal("complement of [10,20] should not contain 15")
	}
	if !c.Complement().Eq(v) {
		t.Fatalf("double complement should return the original, got %s", c.Complement())
	}
}

func TestLeqReflexiveAndWithBotTop(t *testing.T) {
	v := FromBounds(W8, 10, 20)
	if !v.Leq(v) {
		t.Fatal("Leq should be reflexive")
	}
	if !Bot(W8).Leq(v) {
		t.Fatal("Bot <= anything")
	}
	if !v.Leq(Top(W8)) {
		t.Fatal("anything <= Top")
	}
}

func TestJoinOfDisjointPieces(t *testing.T) {
	a := FromBounds(W8, 0, 5)
	b := FromBounds(W8, 10, 20)
	j := Join(a, b)
	if !a.Leq(j) || !b.Leq(j) {
		t.Fatalf("join %s should contain both operands", j)
	}
}

func TestMeetOfOverlapping(t *testing.T) {
	a := FromBounds(W8, 0, 10)
	b := FromBounds(W8, 5, 20)
	m := Meet(a, b)
	want := FromBounds(W8, 5, 10)
	if !m.Eq(want) {
		t.Fatalf("meet: got %s, want %s", m, want)
	}
}

func TestMeetOfDisjointIsBot(t *testing.T) {
	a := FromBounds(W8, 0, 5)
	b := FromBounds(W8, 10, 20)
	if !Meet(a, b).IsBot() {
		t.Fatal("disjoint ranges should meet to Bot")
	}
}

func TestGeneralizedJoinEmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic on an empty GeneralizedJoin input")
		}
	}()
	GeneralizedJoin(nil)
}

func TestWidenNoneDegradesToJoin(t *testing.T) {
	prev := FromBounds(W8, 0, 5)
	curr := FromBounds(W8, 0, 10)
	got := Widen(prev, curr, EmptyJumpSet(W8), None)
	want := Join(prev, curr)
	if !got.Eq(want) {
		t.Fatalf("None strategy: got %s, want %s", got, want)
	}
}

func TestWidenClassicalJumpsToTopOnInstability(t *testing.T) {
	prev := FromBounds(W8, 0, 5)
	curr := FromBounds(W8, 0, 10)
	got := Widen(prev, curr, EmptyJumpSet(W8), Classical)
	if !got.IsTop() {
		t.Fatalf("Classical strategy on an unstable bound should reach Top, got %s", got)
	}
}

func TestWidenJumpSetSnapsToLandmark(t *testing.T) {
	prev := FromBounds(W8, 0, 5)
	curr := FromBounds(W8, 0, 10)
	jumps := NewJumpSet(W8, 100)
	got := Widen(prev, curr, jumps, JumpSetStrategy)
	if got.IsTop() {
		t.Fatalf("a landmark above curr's bound should avoid Top, got %s", got)
	}
	if !curr.Leq(got) {
		t.Fatalf("widened value %s should still over-approximate curr %s", got, curr)
	}
}

func TestWidenIsSoundOverApproximation(t *testing.T) {
	prev := FromBounds(W8, 0, 10)
	curr := FromBounds(W8, 0, 10)
	got := Widen(prev, curr, EmptyJumpSet(W8), JumpSetStrategy)
	if !curr.Leq(got) {
		t.Fatalf("widened value %s must over-approximate curr %s", got, curr)
	}
}
