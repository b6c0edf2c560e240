package manager

import (
	"time"

	"gridsnake/game/clock"
	"gridsnake/game/entity"
	"gridsnake/game/event"
	"gridsnake/game/system"
	"gridsnake/game/types"
)

// MovementManager advances the snake one tile each time its timer fires.
type MovementManager struct {
	reg    *entity.Registry
	grid   types.Grid
	policy types.MovementPolicy
	timer  *clock.Timer
	sink   event.Sink

	moved   bool
	vacated types.Point
	steps   int
}

func NewMovementManager(reg *entity.Registry, grid types.Grid, policy types.MovementPolicy, period time.Duration, sink event.Sink) *MovementManager {
	if sink == nil {
		sink = event.Discard
	}
	return &MovementManager{
		reg:    reg,
		grid:   grid,
		policy: policy,
		timer:  clock.NewTimer(period),
		sink:   sink,
	}
}

func (mm *MovementManager) Phase() system.Phase { return system.PhaseUpdate }

func (mm *MovementManager) Update(dt time.Duration) {
	mm.moved = false
	if mm.timer.Tick(dt).JustFinished() {
		mm.Advance()
	}
}

// Advance moves the head one step and pulls every trailing segment into the
// cell its predecessor held before the move. A head held at a clamped edge
// does not move and the body stays where it is.
func (mm *MovementManager) Advance() {
	headID, head, ok := mm.reg.Head()
	if !ok {
		return
	}

	chain := mm.reg.Snake()
	// Copy every position first: segment i follows where i-1 was, not where
	// it just went.
	before := mm.reg.SnakePositions()
	if len(before) != len(chain) {
		return
	}

	newHead := mm.grid.Step(before[0], head.Direction, mm.policy)
	if newHead == before[0] {
		return
	}
	mm.reg.SetPosition(headID, newHead)
	for i := 1; i < len(chain); i++ {
		mm.reg.SetPosition(chain[i], before[i-1])
	}

	mm.vacated = before[len(before)-1]
	mm.moved = true
	mm.steps++
	mm.sink.Record(event.Event{Kind: event.Move, Entity: uint64(headID), Pos: newHead, Dir: head.Direction.String()})
}

// Moved reports whether the snake advanced during the current frame.
func (mm *MovementManager) Moved() bool {
	return mm.moved
}

// Vacated is the cell the tail left on the last advance.
func (mm *MovementManager) Vacated() types.Point {
	return mm.vacated
}

// Steps counts advances since the manager was created or reset.
func (mm *MovementManager) Steps() int {
	return mm.steps
}

func (mm *MovementManager) Reset() {
	mm.timer.Reset()
	mm.moved = false
	mm.steps = 0
}
