package manager

import (
	"gridsnake/game/entity"
	"gridsnake/game/types"
)

// CollisionManager answers "what is on this cell" questions. There is no
// self-collision or wall check: the snake may cross itself freely.
type CollisionManager struct {
	reg *entity.Registry
}

func NewCollisionManager(reg *entity.Registry) *CollisionManager {
	return &CollisionManager{reg: reg}
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point) bool {
	return pos == food
}

// FoodAt returns the live food entities sitting on pos.
func (cm *CollisionManager) FoodAt(pos types.Point) []entity.ID {
	var hits []entity.ID
	for _, id := range cm.reg.FoodIDs() {
		fp, ok := cm.reg.Position(id)
		if ok && cm.IsFoodCollision(pos, fp) {
			hits = append(hits, id)
		}
	}
	return hits
}

// OnSnake reports whether any snake segment, head included, occupies pos.
func (cm *CollisionManager) OnSnake(pos types.Point) bool {
	for _, p := range cm.reg.SnakePositions() {
		if p == pos {
			return true
		}
	}
	return false
}
