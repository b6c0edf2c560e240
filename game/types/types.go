package types

import "fmt"

// Point is a cell on the board. Y grows upwards.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Add returns p translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Reference board and timing constants.
const (
	DefaultWidth  = 10
	DefaultHeight = 10

	// HeadVelocity is the number of tiles the head advances per movement tick.
	HeadVelocity = 1
)

// Wrap applies Euclidean modulo so that c always lands in [0, bound).
func Wrap(c, bound int) int {
	m := c % bound
	if m < 0 {
		m += bound
	}
	return m
}

// Clamp pins c to [0, bound-1].
func Clamp(c, bound int) int {
	if c < 0 {
		return 0
	}
	if c >= bound {
		return bound - 1
	}
	return c
}

// Contains reports whether p lies on the board.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Wrap folds p back onto the board on both axes.
func (g Grid) Wrap(p Point) Point {
	return Point{X: Wrap(p.X, g.Width), Y: Wrap(p.Y, g.Height)}
}

// Clamp pins p to the board edges on both axes.
func (g Grid) Clamp(p Point) Point {
	return Point{X: Clamp(p.X, g.Width), Y: Clamp(p.Y, g.Height)}
}

// Step moves p one HeadVelocity in dir and brings the result back onto the
// board according to policy.
func (g Grid) Step(p Point, dir Direction, policy MovementPolicy) Point {
	d := dir.Delta()
	next := p.Add(Point{X: d.X * HeadVelocity, Y: d.Y * HeadVelocity})
	if policy == Clamped {
		return g.Clamp(next)
	}
	return g.Wrap(next)
}
