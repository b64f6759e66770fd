package visualize

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/caballa/wrapped-intervals/lattice"
)

func TestBuildDOTRing(t *testing.T) {
	full := lattice.FromBounds(lattice.W8, 10, 200)
	splits := lattice.SSplit(full)
	dot := buildDOT(full, splits)
	goldie.New(t).Assert(t, t.Name(), []byte(dot))
}

func TestBuildDOTSingleton(t *testing.T) {
	full := lattice.Singleton(lattice.W1, 1)
	dot := buildDOT(full, []lattice.Wrapped{full})
	goldie.New(t).Assert(t, t.Name(), []byte(dot))
}
