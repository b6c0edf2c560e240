package manager

import (
	"time"

	"gridsnake/game/clock"
	"gridsnake/game/entity"
	"gridsnake/game/event"
	"gridsnake/game/system"
	"gridsnake/game/types"
)

// Rand is the uniform source behind food placement; Float64 must return a
// value in [0, 1).
type Rand interface {
	Float64() float64
}

type FoodManager struct {
	reg          *entity.Registry
	grid         types.Grid
	rng          Rand
	timer        *clock.Timer
	policy       types.FoodPolicy
	growth       int
	collisionMgr *CollisionManager
	movement     *MovementManager
	sink         event.Sink

	spawned int
	eaten   int
}

type FoodOptions struct {
	Period time.Duration
	Policy types.FoodPolicy
	// Growth is the number of segments added per food eaten.
	Growth int
}

func NewFoodManager(reg *entity.Registry, grid types.Grid, rng Rand, opts FoodOptions, collisionMgr *CollisionManager, movement *MovementManager, sink event.Sink) *FoodManager {
	if sink == nil {
		sink = event.Discard
	}
	return &FoodManager{
		reg:          reg,
		grid:         grid,
		rng:          rng,
		timer:        clock.NewTimer(opts.Period),
		policy:       opts.Policy,
		growth:       opts.Growth,
		collisionMgr: collisionMgr,
		movement:     movement,
		sink:         sink,
	}
}

func (fm *FoodManager) Phase() system.Phase { return system.PhasePostUpdate }

func (fm *FoodManager) Update(dt time.Duration) {
	if fm.policy == types.FoodSingle && fm.movement != nil && fm.movement.Moved() {
		fm.Consume(fm.movement.Vacated())
	}
	if fm.timer.Tick(dt).JustFinished() {
		fm.Spawn()
	}
}

// RandomCell draws a uniformly random cell. Occupied cells are not rejected.
func (fm *FoodManager) RandomCell() types.Point {
	x := int(fm.rng.Float64() * float64(fm.grid.Width))
	y := int(fm.rng.Float64() * float64(fm.grid.Height))
	return types.Point{
		X: types.Clamp(x, fm.grid.Width),
		Y: types.Clamp(y, fm.grid.Height),
	}
}

// Spawn places a new food. Under the single policy any live food is removed
// first.
func (fm *FoodManager) Spawn() entity.ID {
	if fm.policy == types.FoodSingle {
		for _, old := range fm.reg.FoodIDs() {
			pos, _ := fm.reg.Position(old)
			fm.reg.MarkForDestruction(old)
			fm.sink.Record(event.Event{Kind: event.Replace, Entity: uint64(old), Pos: pos})
		}
	}

	pos := fm.RandomCell()
	id := fm.reg.SpawnFood(pos)
	fm.spawned++
	fm.sink.Record(event.Event{Kind: event.Spawn, Entity: uint64(id), Pos: pos, Covered: fm.collisionMgr.OnSnake(pos)})
	return id
}

// Consume eats any food under the head and grows the snake into tail, the
// cell the tail just left. It returns the number of foods eaten.
func (fm *FoodManager) Consume(tail types.Point) int {
	headID, _, ok := fm.reg.Head()
	if !ok {
		return 0
	}
	headPos, _ := fm.reg.Position(headID)

	hits := fm.collisionMgr.FoodAt(headPos)
	for _, id := range hits {
		fm.reg.MarkForDestruction(id)
		fm.eaten++
		fm.sink.Record(event.Event{Kind: event.Eat, Entity: uint64(id), Pos: headPos})
		for i := 0; i < fm.growth; i++ {
			seg := fm.reg.AppendSegment(tail)
			fm.sink.Record(event.Event{Kind: event.Grow, Entity: uint64(seg), Pos: tail})
		}
	}
	return len(hits)
}

// GetFoodList returns the cells of every live food.
func (fm *FoodManager) GetFoodList() []types.Point {
	ids := fm.reg.FoodIDs()
	out := make([]types.Point, 0, len(ids))
	for _, id := range ids {
		if p, ok := fm.reg.Position(id); ok {
			out = append(out, p)
		}
	}
	return out
}

func (fm *FoodManager) Spawned() int { return fm.spawned }
func (fm *FoodManager) Eaten() int   { return fm.eaten }

func (fm *FoodManager) Reset() {
	fm.timer.Reset()
	fm.spawned = 0
	fm.eaten = 0
}
