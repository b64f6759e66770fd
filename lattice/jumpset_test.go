package lattice

import "testing"

func TestNewJumpSetDedupsAndSorts(t *testing.T) {
	j := NewJumpSet(W8, 100, 1, 100, 0)
	if j.Len() != 4 {
		t.Fatalf("expected 4 distinct landmarks (0, 1, 100, MaxU), got %d", j.Len())
	}
	for i := 1; i < j.Len(); i++ {
		if j.at(i-1) >= j.at(i) {
			t.Fatalf("landmarks not strictly ascending at %d: %v then %v", i, j.at(i-1), j.at(i))
		}
	}
}

func TestNewJumpSetAlwaysHasExtremes(t *testing.T) {
	j := NewJumpSet(W8)
	if j.Len() != 2 {
		t.Fatalf("an empty landmark list should still carry MinU/MaxU, got len %d", j.Len())
	}
	if v, ok := j.LargestBelowOrEqual(0); !ok || v != W8.MinU() {
		t.Fatalf("expected MinU as the only landmark <= 0, got %v/%v", v, ok)
	}
}

func TestLargestBelowOrEqual(t *testing.T) {
	j := NewJumpSet(W8, 10, 20, 30)
	v, ok := j.LargestBelowOrEqual(25)
	if !ok || v != 20 {
		t.Fatalf("largest landmark <= 25: got %v/%v, want 20", v, ok)
	}
}

func TestSmallestAboveOrEqual(t *testing.T) {
	j := NewJumpSet(W8, 10, 20, 30)
	v, ok := j.SmallestAboveOrEqual(25)
	if !ok || v != 30 {
		t.Fatalf("smallest landmark >= 25: got %v/%v, want 30", v, ok)
	}
}

func TestSmallestAboveOrEqualFindsMaxU(t *testing.T) {
	// NewJumpSet always seeds MaxU, so it's the answer at the top edge
	// even when the caller supplied no landmark that high.
	j := NewJumpSet(W8, 10)
	v, ok := j.SmallestAboveOrEqual(255)
	if !ok || v != W8.MaxU() {
		t.Fatalf("smallest landmark >= 255: got %v/%v, want MaxU", v, ok)
	}
}

func TestLoadJumpSetFromYAML(t *testing.T) {
	j, err := LoadJumpSet("testdata/jumpset.yaml")
	if err != nil {
		t.Fatalf("LoadJumpSet: %v", err)
	}
	// width: 32, landmarks: [0, 1, -1, 100]; -1 folds to MaxU(w32) and
	// dedups against the always-present extreme, leaving {0, 1, 100, MaxU}.
	if j.Len() != 4 {
		t.Fatalf("expected 4 distinct landmarks, got %d", j.Len())
	}
	if v, ok := j.LargestBelowOrEqual(50); !ok || v != 1 {
		t.Fatalf("largest landmark <= 50: got %v/%v, want 1", v, ok)
	}
	if v, ok := j.SmallestAboveOrEqual(W32.MaxU()); !ok || v != W32.MaxU() {
		t.Fatalf("-1 should have folded into MaxU(w32), got %v/%v", v, ok)
	}
}

func TestLoadJumpSetMissingFile(t *testing.T) {
	if _, err := LoadJumpSet("testdata/does-not-exist.yaml"); err == nil {
		t.Fatal("expected an error reading a missing jump-set file")
	}
}
