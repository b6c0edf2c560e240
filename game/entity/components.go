package entity

import "gridsnake/game/types"

// Kind tells the presentation layer what an entity is.
type Kind int

const (
	KindHead Kind = iota
	KindSegment
	KindFood
)

func (k Kind) String() string {
	switch k {
	case KindHead:
		return "head"
	case KindSegment:
		return "segment"
	case KindFood:
		return "food"
	default:
		return "unknown"
	}
}

// Logical footprints as a fraction of one tile.
const (
	HeadSize    = 0.8
	SegmentSize = 0.65
	FoodSize    = 0.8
)

// Size is the logical footprint of an entity, in tiles.
type Size struct {
	Width, Height float32
}

// Square creates a square footprint.
func Square(dim float32) Size {
	return Size{Width: dim, Height: dim}
}

// Head carries the heading of the snake. Exactly one exists per session.
type Head struct {
	Direction     types.Direction
	LastDirection types.Direction
	// HasLast is false until the first input resolution is accepted.
	HasLast bool
}

// Segment marks a link of the snake chain, head included.
type Segment struct{}

// Food marks an edible entity.
type Food struct{}
