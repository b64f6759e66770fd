package lattice

import (
	"os"
	"sort"

	"github.com/benbjohnson/immutable"
	"gopkg.in/yaml.v2"

	"github.com/pkg/errors"
)

// JumpSet is a sorted, deduplicated set of landmark constants for a given
// width, used by Widen's jump-set strategy to snap an unstable bound out
// to a syntactic constant in the analysed program rather than an arbitrary
// power-of-two boundary. It is backed by an immutable.List so the same
// JumpSet value can be shared by reference across concurrent widening
// calls without the core ever mutating a caller's landmark set.
type JumpSet struct {
	w    Width
	list *immutable.List[MachineInt]
}

// EmptyJumpSet is the landmark set with no constants: every widen call
// under the jump-set strategy keeps the bounds obtained by doubling prev's
// cardinality; it does not fall back to the width's extremes.
func EmptyJumpSet(w Width) JumpSet {
	return JumpSet{w: w, list: immutable.NewList[MachineInt]()}
}

// NewJumpSet builds a JumpSet at width w from the given landmark values,
// always including the width's MinU/MaxU so widening is guaranteed to
// terminate even if the caller supplies no constants of its own.
func NewJumpSet(w Width, landmarks ...MachineInt) JumpSet {
	seen := map[MachineInt]bool{w.MinU(): true, w.MaxU(): true}
	vals := []MachineInt{w.MinU(), w.MaxU()}
	for _, v := range landmarks {
		v = w.Mod(v)
		if !seen[v] {
			seen[v] = true
			vals = append(vals, v)
		}
	}
	sort.Slice(vals, func(i, j int) bool { return vals[i] < vals[j] })
	l := immutable.NewList[MachineInt]()
	for _, v := range vals {
		l = l.Append(v)
	}
	return JumpSet{w: w, list: l}
}

// Len is the number of distinct landmarks in the set.
func (j JumpSet) Len() int {
	if j.list == nil {
		return 0
	}
	return j.list.Len()
}

func (j JumpSet) at(i int) MachineInt { return j.list.Get(i) }

// LargestBelowOrEqual returns the largest landmark not exceeding x.
func (j JumpSet) LargestBelowOrEqual(x MachineInt) (MachineInt, bool) {
	n := j.Len()
	lo, hi, best, found := 0, n-1, MachineInt(0), false
	for lo <= hi {
		mid := (lo + hi) / 2
		v := j.at(mid)
		if v <= x {
			best, found = v, true
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	return best, found
}

// SmallestAboveOrEqual returns the smallest landmark not smaller than y.
func (j JumpSet) SmallestAboveOrEqual(y MachineInt) (MachineInt, bool) {
	n := j.Len()
	lo, hi, best, found := 0, n-1, MachineInt(0), false
	for lo <= hi {
		mid := (lo + hi) / 2
		v := j.at(mid)
		if v >= y {
			best, found = v, true
			hi = mid - 1
		} else {
			lo = mid + 1
		}
	}
	return best, found
}

type jumpSetFile struct {
	Width     uint8   `yaml:"width"`
	Landmarks []int64 `yaml:"landmarks"`
}

// LoadJumpSet reads a YAML landmark file of the form:
//
//	width: 32
//	landmarks: [0, 1, -1, 100]
//
// the on-disk form of the "syntactic constants in the analysed program"
// landmark source the design notes describe.
func LoadJumpSet(path string) (JumpSet, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return JumpSet{}, errors.Wrapf(err, "reading jump-set file %s", path)
	}
	var f jumpSetFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return JumpSet{}, errors.Wrapf(err, "parsing jump-set file %s", path)
	}
	w := Width(f.Width)
	w.check()
	landmarks := make([]MachineInt, len(f.Landmarks))
	for i, v := range f.Landmarks {
		landmarks[i] = MachineInt(uint64(v))
	}
	return NewJumpSet(w, landmarks...), nil
}
