package trace

import (
	"bytes"
	"os"
	"testing"
	"time"

	"gridsnake/game"
	"gridsnake/game/event"
	"gridsnake/game/types"
)

func TestWriterGroupsEventsByFrame(t *testing.T) {
	dir := t.TempDir()
	w, err := Open(dir, "abc", nil)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if w.Path() != Path(dir, "abc") {
		t.Fatalf("path = %s", w.Path())
	}

	w.Record(event.Event{Frame: 1, Kind: event.Turn, Dir: "left"})
	w.Record(event.Event{Frame: 1, Kind: event.Move, Pos: types.Point{X: 2, Y: 3}})
	w.Record(event.Event{Frame: 2, Kind: event.Spawn, Pos: types.Point{X: 9, Y: 9}})
	w.Record(event.Event{Frame: 4, Kind: event.Move, Pos: types.Point{X: 1, Y: 3}})
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	frames, err := Read(w.Path())
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(frames) != 3 {
		t.Fatalf("frames = %+v, want 3", frames)
	}
	if frames[0].Session != "abc" || frames[0].Frame != 1 || len(frames[0].Events) != 2 {
		t.Fatalf("first frame = %+v", frames[0])
	}
	if frames[0].Events[0].Dir != "left" || frames[0].Events[1].Pos != (types.Point{X: 2, Y: 3}) {
		t.Fatalf("first frame events = %+v", frames[0].Events)
	}
	if frames[2].Frame != 4 || frames[2].Events[0].Kind != event.Move {
		t.Fatalf("last frame = %+v", frames[2])
	}
}

func TestCloseWithoutEvents(t *testing.T) {
	w, err := Open(t.TempDir(), "empty", nil)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	// A second close is harmless and records are ignored afterwards.
	if err := w.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
	w.Record(event.Event{Frame: 1, Kind: event.Move})

	frames, err := Read(w.Path())
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(frames) != 0 {
		t.Fatalf("frames = %+v, want none", frames)
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	if _, err := Decode(bytes.NewReader([]byte("not zstd"))); err == nil {
		t.Fatalf("decoded garbage")
	}
}

func TestTraceFollowsGame(t *testing.T) {
	g := game.NewGame(game.DefaultSettings(), rngConst(0.95), nil)
	w, err := Open(t.TempDir(), g.UUID, nil)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	g.Observe(w)
	for i := 0; i < 60; i++ {
		g.Update(50*time.Millisecond, types.InputState{})
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	f, err := os.Open(w.Path())
	if err != nil {
		t.Fatalf("open trace: %v", err)
	}
	defer f.Close()
	frames, err := Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	moves, spawns := 0, 0
	for _, fr := range frames {
		if fr.Session != g.UUID {
			t.Fatalf("session = %s, want %s", fr.Session, g.UUID)
		}
		for _, e := range fr.Events {
			switch e.Kind {
			case event.Move:
				moves++
			case event.Spawn:
				spawns++
			}
		}
	}
	if moves != g.Steps() || moves != 20 {
		t.Fatalf("moves = %d, steps = %d, want 20", moves, g.Steps())
	}
	if spawns != 3 {
		t.Fatalf("spawns = %d, want 3", spawns)
	}
}

type rngConst float64

func (r rngConst) Float64() float64 { return float64(r) }
