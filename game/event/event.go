// Package event carries what happened during a frame out of the systems.
package event

import "gridsnake/game/types"

type Kind string

const (
	Turn    Kind = "turn"
	Move    Kind = "move"
	Spawn   Kind = "spawn"
	Replace Kind = "replace"
	Eat     Kind = "eat"
	Grow    Kind = "grow"
)

type Event struct {
	Frame   uint64      `json:"frame"`
	Kind    Kind        `json:"kind"`
	Entity  uint64      `json:"entity,omitempty"`
	Pos     types.Point `json:"pos"`
	Dir     string      `json:"dir,omitempty"`
	Covered bool        `json:"covered,omitempty"` // spawn landed on the snake
}

// Sink receives events as systems emit them.
type Sink interface {
	Record(Event)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(Event)

func (f SinkFunc) Record(e Event) { f(e) }

// Discard drops everything.
var Discard Sink = SinkFunc(func(Event) {})

// Buffer collects the events of the current frame and stamps them with the
// frame number.
type Buffer struct {
	frame  uint64
	events []Event
}

func NewBuffer() *Buffer {
	return &Buffer{events: make([]Event, 0, 8)}
}

func (b *Buffer) Record(e Event) {
	e.Frame = b.frame
	b.events = append(b.events, e)
}

// Begin starts a new frame.
func (b *Buffer) Begin(frame uint64) {
	b.frame = frame
	b.events = b.events[:0]
}

// Events returns the events recorded since Begin. The slice is reused by the
// next Begin.
func (b *Buffer) Events() []Event {
	return b.events
}
