package manager

import (
	"gridsnake/game/entity"
	"gridsnake/game/types"
)

// SnakeSpawn describes the snake a session starts with.
type SnakeSpawn struct {
	Head      types.Point
	Direction types.Direction
	Tail      []types.Point
}

// PopulationManager owns the lifecycle of the session's single snake.
type PopulationManager struct {
	reg   *entity.Registry
	grid  types.Grid
	spawn SnakeSpawn
}

func NewPopulationManager(reg *entity.Registry, grid types.Grid, spawn SnakeSpawn) *PopulationManager {
	tail := make([]types.Point, len(spawn.Tail))
	copy(tail, spawn.Tail)
	spawn.Tail = tail
	return &PopulationManager{
		reg:   reg,
		grid:  grid,
		spawn: spawn,
	}
}

// InitializePopulation spawns the starting snake, replacing any existing one.
// Spawn cells are folded onto the board.
func (pm *PopulationManager) InitializePopulation() []entity.ID {
	tail := make([]types.Point, len(pm.spawn.Tail))
	for i, p := range pm.spawn.Tail {
		tail[i] = pm.grid.Wrap(p)
	}
	return pm.reg.SpawnSnake(pm.grid.Wrap(pm.spawn.Head), pm.spawn.Direction, tail)
}

// Body returns the chain cells, head first.
func (pm *PopulationManager) Body() []types.Point {
	return pm.reg.SnakePositions()
}

// Direction returns the current heading, or the spawn heading if no snake is
// alive.
func (pm *PopulationManager) Direction() types.Direction {
	if _, head, ok := pm.reg.Head(); ok {
		return head.Direction
	}
	return pm.spawn.Direction
}
