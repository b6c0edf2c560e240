package manager

import (
	"time"

	"gridsnake/game/entity"
	"gridsnake/game/event"
	"gridsnake/game/system"
	"gridsnake/game/types"
)

// InputManager turns the held directional keys into a heading change for the
// snake head, once per frame.
type InputManager struct {
	reg  *entity.Registry
	keys types.InputState
	sink event.Sink
}

func NewInputManager(reg *entity.Registry, sink event.Sink) *InputManager {
	if sink == nil {
		sink = event.Discard
	}
	return &InputManager{reg: reg, sink: sink}
}

func (im *InputManager) Phase() system.Phase { return system.PhaseInput }

// SetInput stores the key snapshot for the coming frame.
func (im *InputManager) SetInput(keys types.InputState) {
	im.keys = keys
}

func (im *InputManager) Update(_ time.Duration) {
	im.Resolve(im.keys)
}

// Resolve applies keys to the head and reports whether the candidate heading
// was accepted. A candidate opposite to the current heading is rejected.
func (im *InputManager) Resolve(keys types.InputState) bool {
	id, head, ok := im.reg.Head()
	if !ok {
		return false
	}

	dir := keys.Resolve(head.Direction)
	if dir == head.Direction.Opposite() {
		return false
	}

	prev := head.Direction
	head.LastDirection = prev
	head.HasLast = true
	head.Direction = dir

	if dir != prev {
		pos, _ := im.reg.Position(id)
		im.sink.Record(event.Event{Kind: event.Turn, Entity: uint64(id), Pos: pos, Dir: dir.String()})
	}
	return true
}
