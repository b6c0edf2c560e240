package types

import (
	"fmt"
	"strings"
)

// MovementPolicy selects what happens when the head steps off the board.
type MovementPolicy int

const (
	// Wraparound treats the board as a torus.
	Wraparound MovementPolicy = iota
	// Clamped stops the head at the edge.
	Clamped
)

func (p MovementPolicy) String() string {
	switch p {
	case Wraparound:
		return "wraparound"
	case Clamped:
		return "clamped"
	default:
		return fmt.Sprintf("MovementPolicy(%d)", int(p))
	}
}

func (p MovementPolicy) MarshalText() ([]byte, error) {
	switch p {
	case Wraparound, Clamped:
		return []byte(p.String()), nil
	}
	return nil, fmt.Errorf("invalid movement policy %d", int(p))
}

func (p *MovementPolicy) UnmarshalText(b []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(b))) {
	case "wraparound", "wrap", "torus":
		*p = Wraparound
	case "clamped", "clamp":
		*p = Clamped
	default:
		return fmt.Errorf("unknown movement policy %q", string(b))
	}
	return nil
}

// FoodPolicy selects how food lives and dies.
type FoodPolicy int

const (
	// FoodSingle keeps at most one live food: a spawn replaces the old one and
	// the snake eats and grows when its head reaches it.
	FoodSingle FoodPolicy = iota
	// FoodLiteral lets food pile up and never be eaten.
	FoodLiteral
)

func (p FoodPolicy) String() string {
	switch p {
	case FoodSingle:
		return "single"
	case FoodLiteral:
		return "literal"
	default:
		return fmt.Sprintf("FoodPolicy(%d)", int(p))
	}
}

func (p FoodPolicy) MarshalText() ([]byte, error) {
	switch p {
	case FoodSingle, FoodLiteral:
		return []byte(p.String()), nil
	}
	return nil, fmt.Errorf("invalid food policy %d", int(p))
}

func (p *FoodPolicy) UnmarshalText(b []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(b))) {
	case "single":
		*p = FoodSingle
	case "literal", "accumulate":
		*p = FoodLiteral
	default:
		return fmt.Errorf("unknown food policy %q", string(b))
	}
	return nil
}
