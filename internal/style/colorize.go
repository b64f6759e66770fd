// Package style centralizes the colorized text fragments used by the
// domain packages' String() methods, the way goat's analysis/lattice
// package centralizes its colorize struct.
package style

import "github.com/fatih/color"

// Enabled toggles whether String() methods across the module emit ANSI
// color codes. It defaults to off so the library is side-effect free for
// callers that pipe output elsewhere; a CLI front-end flips it on.
var Enabled = false

type colorize struct {
	Lattice func(...interface{}) string
	Const   func(...interface{}) string
	Bound   func(...interface{}) string
	Bot     func(...interface{}) string
	Top     func(...interface{}) string
}

func wrap(c *color.Color) func(...interface{}) string {
	return func(a ...interface{}) string {
		if !Enabled {
			return color.New().SprintFunc()(a...)
		}
		return c.SprintFunc()(a...)
	}
}

// Colorize holds the printer fragments shared by lattice.Wrapped and
// classical.Interval.
var Colorize = colorize{
	Lattice: wrap(color.New(color.FgMagenta)),
	Const:   wrap(color.New(color.FgCyan)),
	Bound:   wrap(color.New(color.FgYellow)),
	Bot:     wrap(color.New(color.FgRed)),
	Top:     wrap(color.New(color.FgGreen)),
}
