package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/caballa/wrapped-intervals/lattice"
)

// parseWidth maps a raw --width flag onto one of the five supported
// lattice.Width values.
func parseWidth(n uint8) (lattice.Width, error) {
	switch n {
	case 1:
		return lattice.W1, nil
	case 8:
		return lattice.W8, nil
	case 16:
		return lattice.W16, nil
	case 32:
		return lattice.W32, nil
	case 64:
		return lattice.W64, nil
	}
	return 0, fmt.Errorf("unsupported width %d, must be one of 1, 8, 16, 32, 64", n)
}

// parseValue parses one of wrange's value specs at width w:
//
//	"bot"        -> lattice.Bot(w)
//	"top"        -> lattice.Top(w)
//	"N"          -> lattice.Singleton(w, N)
//	"LB:UB"      -> lattice.FromBounds(w, LB, UB)
//
// N, LB, UB accept either an unsigned decimal literal or a signed one
// (e.g. "-1"), both read as a bit pattern at width w.
func parseValue(w lattice.Width, s string) (lattice.Wrapped, error) {
	switch s {
	case "bot":
		return lattice.Bot(w), nil
	case "top":
		return lattice.Top(w), nil
	}
	parts := strings.SplitN(s, ":", 2)
	lb, err := parseMachineInt(w, parts[0])
	if err != nil {
		return lattice.Wrapped{}, err
	}
	if len(parts) == 1 {
		return lattice.Singleton(w, lb), nil
	}
	ub, err := parseMachineInt(w, parts[1])
	if err != nil {
		return lattice.Wrapped{}, err
	}
	return lattice.FromBounds(w, lb, ub), nil
}

func parseMachineInt(w lattice.Width, s string) (lattice.MachineInt, error) {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return w.Mod(lattice.MachineInt(uint64(n))), nil
	}
	u, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q", s)
	}
	return w.Mod(lattice.MachineInt(u)), nil
}
