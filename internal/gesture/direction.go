// Package gesture implements the drag and resize interactions that move and
// size a window while a pointer gesture is active.
package gesture

import (
	"fmt"
	"strings"
)

// Direction is one of the eight resize handles.
type Direction string

const (
	North     Direction = "n"
	South     Direction = "s"
	East      Direction = "e"
	West      Direction = "w"
	NorthEast Direction = "ne"
	NorthWest Direction = "nw"
	SouthEast Direction = "se"
	SouthWest Direction = "sw"
)

// Directions lists every resize handle.
var Directions = []Direction{North, South, East, West, NorthEast, NorthWest, SouthEast, SouthWest}

// ParseDirection accepts a compass abbreviation in any case.
func ParseDirection(s string) (Direction, error) {
	d := Direction(strings.ToLower(strings.TrimSpace(s)))
	if !d.Valid() {
		return "", fmt.Errorf("invalid resize direction %q (want one of n, s, e, w, ne, nw, se, sw)", s)
	}
	return d, nil
}

// Valid reports whether d names a resize handle.
func (d Direction) Valid() bool {
	for _, v := range Directions {
		if d == v {
			return true
		}
	}
	return false
}

// East reports whether the handle moves the right edge.
func (d Direction) East() bool { return strings.Contains(string(d), "e") }

// West reports whether the handle moves the left edge.
func (d Direction) West() bool { return strings.Contains(string(d), "w") }

// South reports whether the handle moves the bottom edge.
func (d Direction) South() bool { return strings.Contains(string(d), "s") }

// North reports whether the handle moves the top edge.
func (d Direction) North() bool { return strings.Contains(string(d), "n") }

func (d Direction) String() string { return string(d) }
