package entity

import "gridsnake/game/types"

// Registry owns every entity of a session and their components. The snake is
// kept as an ordered chain of segment IDs, head first; segments never point at
// each other.
type Registry struct {
	pool   *pool
	stores []remover

	Positions *Store[types.Point]
	Sizes     *Store[Size]
	Heads     *Store[Head]
	Segments  *Store[Segment]
	Foods     *Store[Food]

	snake []ID

	destroyQueue []ID
	queued       map[ID]struct{}
}

func NewRegistry() *Registry {
	r := &Registry{
		pool:      newPool(),
		Positions: newStore[types.Point](),
		Sizes:     newStore[Size](),
		Heads:     newStore[Head](),
		Segments:  newStore[Segment](),
		Foods:     newStore[Food](),
		queued:    make(map[ID]struct{}),
	}
	r.stores = []remover{r.Positions, r.Sizes, r.Heads, r.Segments, r.Foods}
	return r
}

// Alive reports whether id names a live entity that is not queued for
// destruction.
func (r *Registry) Alive(id ID) bool {
	if _, ok := r.queued[id]; ok {
		return false
	}
	return r.pool.alive(id)
}

// Live is the number of allocated entities, queued ones included.
func (r *Registry) Live() int {
	return r.pool.live()
}

// SpawnSnake replaces the current snake wholesale with a new chain: a head at
// head facing dir, followed by one segment per tail position.
func (r *Registry) SpawnSnake(head types.Point, dir types.Direction, tail []types.Point) []ID {
	old := r.snake
	r.snake = make([]ID, 0, 1+len(tail))
	for _, id := range old {
		r.destroy(id)
	}

	id := r.pool.create()
	r.Heads.set(id, &Head{Direction: dir})
	r.Segments.set(id, &Segment{})
	r.Positions.set(id, ptr(head))
	r.Sizes.set(id, ptr(Square(HeadSize)))
	r.snake = append(r.snake, id)

	for _, p := range tail {
		r.AppendSegment(p)
	}
	return r.Snake()
}

// SpawnSegment creates a trailing segment entity at pos without linking it
// into the chain.
func (r *Registry) SpawnSegment(pos types.Point) ID {
	id := r.pool.create()
	r.Segments.set(id, &Segment{})
	r.Positions.set(id, ptr(pos))
	r.Sizes.set(id, ptr(Square(SegmentSize)))
	return id
}

// AppendSegment spawns a segment at pos and links it as the new tail.
func (r *Registry) AppendSegment(pos types.Point) ID {
	id := r.SpawnSegment(pos)
	r.snake = append(r.snake, id)
	return id
}

// Snake returns a copy of the chain, head first.
func (r *Registry) Snake() []ID {
	out := make([]ID, len(r.snake))
	copy(out, r.snake)
	return out
}

func (r *Registry) SnakeLen() int {
	return len(r.snake)
}

// Head returns the head entity and its heading component.
func (r *Registry) Head() (ID, *Head, bool) {
	if len(r.snake) == 0 {
		return 0, nil, false
	}
	id := r.snake[0]
	h, ok := r.Heads.Get(id)
	return id, h, ok
}

// SnakePositions snapshots every chain position by value, head first.
func (r *Registry) SnakePositions() []types.Point {
	out := make([]types.Point, 0, len(r.snake))
	for _, id := range r.snake {
		if p, ok := r.Positions.Get(id); ok {
			out = append(out, *p)
		}
	}
	return out
}

// Position returns the cell of id.
func (r *Registry) Position(id ID) (types.Point, bool) {
	p, ok := r.Positions.Get(id)
	if !ok {
		return types.Point{}, false
	}
	return *p, true
}

// SetPosition moves id to p. Entities without a position are left alone.
func (r *Registry) SetPosition(id ID, p types.Point) {
	if cur, ok := r.Positions.Get(id); ok {
		*cur = p
	}
}

// SpawnFood creates a food entity at pos.
func (r *Registry) SpawnFood(pos types.Point) ID {
	id := r.pool.create()
	r.Foods.set(id, &Food{})
	r.Positions.set(id, ptr(pos))
	r.Sizes.set(id, ptr(Square(FoodSize)))
	return id
}

// FoodIDs lists live food entities, skipping any queued for destruction.
func (r *Registry) FoodIDs() []ID {
	ids := r.Foods.IDs()
	out := ids[:0]
	for _, id := range ids {
		if _, ok := r.queued[id]; !ok {
			out = append(out, id)
		}
	}
	return out
}

// MarkForDestruction queues id for removal at the next Flush.
func (r *Registry) MarkForDestruction(id ID) {
	if !r.Alive(id) {
		return
	}
	r.queued[id] = struct{}{}
	r.destroyQueue = append(r.destroyQueue, id)
}

// Flush destroys every queued entity and returns how many were removed.
func (r *Registry) Flush() int {
	n := 0
	for _, id := range r.destroyQueue {
		if r.destroy(id) {
			n++
		}
		delete(r.queued, id)
	}
	r.destroyQueue = r.destroyQueue[:0]
	return n
}

// Clear destroys every entity immediately.
func (r *Registry) Clear() {
	old := r.snake
	r.snake = nil
	for _, id := range old {
		r.destroy(id)
	}
	for _, id := range r.Foods.IDs() {
		r.destroy(id)
	}
	r.destroyQueue = r.destroyQueue[:0]
	for id := range r.queued {
		delete(r.queued, id)
	}
}

func (r *Registry) destroy(id ID) bool {
	if !r.pool.destroy(id) {
		return false
	}
	for _, s := range r.stores {
		s.remove(id)
	}
	for i, sid := range r.snake {
		if sid == id {
			r.snake = append(r.snake[:i], r.snake[i+1:]...)
			break
		}
	}
	return true
}

func ptr[T any](v T) *T {
	return &v
}
