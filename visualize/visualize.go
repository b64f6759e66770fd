// Package visualize is a debugging aid that renders a wrapped interval and
// its pole-split pieces as a ring graph: the Z/2^w circle sampled at a
// bounded resolution, one node per sample, colored by which split piece
// (if any) contains it. It mirrors the teacher's utils/dot-based
// visualizers (analysis/cfg/visualize.go, utils/dot/dot.go) but renders
// in-process via github.com/goccy/go-graphviz instead of shelling out to
// the `dot` binary, the same library the teacher's own DotToImage keeps
// as its (commented-out) non-exec alternative. Nothing in lattice or ops
// imports this package, and it never participates in soundness.
package visualize

import (
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/goccy/go-graphviz"
	"github.com/google/uuid"

	"github.com/caballa/wrapped-intervals/lattice"
)

// maxSamples bounds the ring's resolution for wide widths (w=64 has
// 2^64 points, far too many to lay out); the circle is sampled evenly
// instead of rendering every point.
const maxSamples = 64

var palette = []string{
	"#e6194b", "#3cb44b", "#4363d8", "#f58231",
	"#911eb4", "#46f0f0", "#f032e6", "#bcf60c",
}

// RenderSplit lays out full's Z/2^w circle as a ring of sampled nodes,
// highlights full's own arc, and colors each of splits' pieces
// distinctly, writing an SVG file tagged with a random request id so
// repeated calls in one run never collide. It returns the written file's
// path.
func RenderSplit(full lattice.Wrapped, splits []lattice.Wrapped) (string, error) {
	dot := buildDOT(full, splits)

	g := graphviz.New()
	defer g.Close()
	graph, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return "", err
	}
	defer graph.Close()

	path := fmt.Sprintf("%s/wrapped-split-%s.svg", os.TempDir(), uuid.New().String())
	if err := g.RenderFilename(graph, graphviz.Format("svg"), path); err != nil {
		return "", err
	}
	return path, nil
}

// buildDOT renders full's sampled ring as DOT source, split out from
// RenderSplit so the deterministic text this produces can be golden-tested
// without touching the graphviz renderer itself.
func buildDOT(full lattice.Wrapped, splits []lattice.Wrapped) string {
	w := full.Width()
	span := new(big.Int).Lsh(big.NewInt(1), uint(w))
	n := maxSamples
	if span.Cmp(big.NewInt(int64(maxSamples))) < 0 {
		n = int(span.Int64())
	}
	step := new(big.Int).Div(span, big.NewInt(int64(n)))

	var b strings.Builder
	fmt.Fprintln(&b, "digraph WrappedSplit {")
	fmt.Fprintln(&b, `  layout="circo"; node [shape=circle style=filled fontsize=10];`)
	for i := 0; i < n; i++ {
		point := new(big.Int).Mul(big.NewInt(int64(i)), step)
		m := lattice.MachineInt(point.Uint64())
		color := sampleColor(m, full, splits)
		fmt.Fprintf(&b, "  p%d [label=%q fillcolor=%q];\n", i, fmt.Sprint(uint64(m)), color)
	}
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "  p%d -> p%d;\n", i, (i+1)%n)
	}
	fmt.Fprintln(&b, "}")
	return b.String()
}

func sampleColor(m lattice.MachineInt, full lattice.Wrapped, splits []lattice.Wrapped) string {
	for i, s := range splits {
		if s.Contains(m) {
			return palette[i%len(palette)]
		}
	}
	if full.Contains(m) {
		return "#cccccc"
	}
	return "#ffffff"
}
