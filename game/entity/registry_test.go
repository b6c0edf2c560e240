package entity

import (
	"testing"

	"gridsnake/game/types"
)

func TestSpawnSnakeBuildsOrderedChain(t *testing.T) {
	r := NewRegistry()
	ids := r.SpawnSnake(types.Point{X: 3, Y: 3}, types.Up, []types.Point{{X: 3, Y: 2}})
	if len(ids) != 2 || r.SnakeLen() != 2 {
		t.Fatalf("chain length = %d/%d, want 2", len(ids), r.SnakeLen())
	}

	headID, head, ok := r.Head()
	if !ok || headID != ids[0] {
		t.Fatalf("head = %v ok=%v, want %v", headID, ok, ids[0])
	}
	if head.Direction != types.Up || head.HasLast {
		t.Fatalf("head component = %+v, want Up with no last direction", *head)
	}
	if _, ok := r.Heads.Get(ids[1]); ok {
		t.Fatalf("trailing segment carries a head component")
	}

	got := r.SnakePositions()
	want := []types.Point{{X: 3, Y: 3}, {X: 3, Y: 2}}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("position[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	if s, _ := r.Sizes.Get(ids[0]); s.Width != HeadSize {
		t.Fatalf("head size = %v, want %v", s.Width, HeadSize)
	}
	if s, _ := r.Sizes.Get(ids[1]); s.Width != SegmentSize {
		t.Fatalf("segment size = %v, want %v", s.Width, SegmentSize)
	}
}

func TestSpawnSnakeReplacesWholesale(t *testing.T) {
	r := NewRegistry()
	old := r.SpawnSnake(types.Point{X: 1, Y: 1}, types.Right, []types.Point{{X: 0, Y: 1}, {X: 9, Y: 1}})
	fresh := r.SpawnSnake(types.Point{X: 5, Y: 5}, types.Down, []types.Point{{X: 5, Y: 6}})

	for _, id := range old {
		if r.Alive(id) {
			t.Fatalf("old segment %v still alive", id)
		}
		if _, ok := r.Positions.Get(id); ok {
			t.Fatalf("old segment %v still has a position", id)
		}
	}
	if r.SnakeLen() != 2 {
		t.Fatalf("chain length = %d, want 2", r.SnakeLen())
	}
	if r.Live() != len(fresh) {
		t.Fatalf("live entities = %d, want %d", r.Live(), len(fresh))
	}
}

func TestStaleIDDoesNotResolveAfterSlotReuse(t *testing.T) {
	r := NewRegistry()
	food := r.SpawnFood(types.Point{X: 2, Y: 2})
	r.MarkForDestruction(food)
	if r.Alive(food) {
		t.Fatalf("queued food still reported alive")
	}
	if len(r.FoodIDs()) != 0 {
		t.Fatalf("queued food still listed")
	}
	if n := r.Flush(); n != 1 {
		t.Fatalf("flushed %d, want 1", n)
	}

	again := r.SpawnFood(types.Point{X: 4, Y: 4})
	if again.Index() != food.Index() {
		t.Fatalf("expected slot reuse, got index %d want %d", again.Index(), food.Index())
	}
	if again == food {
		t.Fatalf("reused slot kept the same generation")
	}
	if r.Alive(food) {
		t.Fatalf("stale id resolves after reuse")
	}
	if p, ok := r.Position(again); !ok || p != (types.Point{X: 4, Y: 4}) {
		t.Fatalf("position of new food = %v ok=%v", p, ok)
	}
}

func TestSetPositionAndAppend(t *testing.T) {
	r := NewRegistry()
	r.SpawnSnake(types.Point{X: 0, Y: 0}, types.Up, nil)
	tail := r.AppendSegment(types.Point{X: 0, Y: 9})
	r.SetPosition(tail, types.Point{X: 1, Y: 9})
	got := r.SnakePositions()
	if len(got) != 2 || got[1] != (types.Point{X: 1, Y: 9}) {
		t.Fatalf("positions = %v", got)
	}
}

func TestClearRemovesEverything(t *testing.T) {
	r := NewRegistry()
	r.SpawnSnake(types.Point{X: 3, Y: 3}, types.Up, []types.Point{{X: 3, Y: 2}})
	r.SpawnFood(types.Point{X: 1, Y: 1})
	r.SpawnFood(types.Point{X: 7, Y: 7})
	r.Clear()
	if r.Live() != 0 || r.SnakeLen() != 0 || len(r.Positions.IDs()) != 0 {
		t.Fatalf("live=%d chain=%d positions=%d after clear", r.Live(), r.SnakeLen(), len(r.Positions.IDs()))
	}
	if _, _, ok := r.Head(); ok {
		t.Fatalf("head still present after clear")
	}
}
