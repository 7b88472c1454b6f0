package core

import (
	"fmt"
	"strings"
)

// Direction is a unit movement vector on the board, or DirNone while idle.
type Direction int

const (
	DirNone Direction = iota
	DirLeft
	DirUp
	DirRight
	DirDown
)

// Cardinals lists the four movement directions in input order.
var Cardinals = [4]Direction{DirLeft, DirUp, DirRight, DirDown}

// Vector returns the cell offset for one step in this direction.
func (d Direction) Vector() Point {
	switch d {
	case DirLeft:
		return Point{X: -1, Y: 0}
	case DirUp:
		return Point{X: 0, Y: -1}
	case DirRight:
		return Point{X: 1, Y: 0}
	case DirDown:
		return Point{X: 0, Y: 1}
	default:
		return Point{}
	}
}

// Opposite returns the 180° reversal of d. DirNone is its own opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	default:
		return DirNone
	}
}

// IsOpposite reports whether d and other sum to the zero vector.
// DirNone is never opposite to anything.
func (d Direction) IsOpposite(other Direction) bool {
	if d == DirNone || other == DirNone {
		return false
	}
	return d.Vector().Add(other.Vector()) == Point{}
}

// DirectionFromVector returns the direction whose vector is v,
// or DirNone when v is not a unit vector.
func DirectionFromVector(v Point) Direction {
	for _, d := range Cardinals {
		if d.Vector() == v {
			return d
		}
	}
	return DirNone
}

func (d Direction) String() string {
	switch d {
	case DirNone:
		return "none"
	case DirLeft:
		return "left"
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	default:
		return "unknown"
	}
}

// ParseDirection accepts a direction name or its first letter.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "":
		return DirNone, nil
	case "left", "l":
		return DirLeft, nil
	case "up", "u":
		return DirUp, nil
	case "right", "r":
		return DirRight, nil
	case "down", "d":
		return DirDown, nil
	}
	return DirNone, fmt.Errorf("core: unknown direction %q", s)
}
