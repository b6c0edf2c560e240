package types

import (
	"fmt"
	"strings"
)

// Direction is one of the four cardinal headings.
type Direction int

const (
	Left Direction = iota
	Up
	Right
	Down
)

var directionNames = [...]string{
	Left:  "left",
	Up:    "up",
	Right: "right",
	Down:  "down",
}

// Opposite returns the heading that would reverse the snake onto its neck.
func (d Direction) Opposite() Direction {
	switch d {
	case Left:
		return Right
	case Up:
		return Down
	case Right:
		return Left
	case Down:
		return Up
	default:
		return d
	}
}

// Delta returns the unit offset of one step in d.
func (d Direction) Delta() Point {
	switch d {
	case Left:
		return Point{X: -1, Y: 0}
	case Up:
		return Point{X: 0, Y: 1} // Y grows upwards
	case Right:
		return Point{X: 1, Y: 0}
	case Down:
		return Point{X: 0, Y: -1}
	default:
		return Point{}
	}
}

func (d Direction) Valid() bool {
	return d >= Left && d <= Down
}

func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

func (d Direction) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("invalid direction %d", int(d))
	}
	return []byte(directionNames[d]), nil
}

func (d *Direction) UnmarshalText(b []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(b)))
	for i, name := range directionNames {
		if name == s {
			*d = Direction(i)
			return nil
		}
	}
	return fmt.Errorf("unknown direction %q", string(b))
}
