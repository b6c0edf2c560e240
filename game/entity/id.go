package entity

// ID packs a 32-bit slot index in the low bits and a 32-bit generation in the
// high bits. Destroying an entity bumps the generation so stale IDs stop
// resolving.
type ID uint64

func newID(index, generation uint32) ID {
	return ID(uint64(generation)<<32 | uint64(index))
}

func (id ID) Index() uint32      { return uint32(id) }
func (id ID) Generation() uint32 { return uint32(id >> 32) }

// pool hands out IDs with generational reuse of freed slots.
type pool struct {
	generations []uint32
	free        []uint32
}

func newPool() *pool {
	return &pool{
		generations: make([]uint32, 0, 64),
		free:        make([]uint32, 0, 16),
	}
}

func (p *pool) create() ID {
	if n := len(p.free); n > 0 {
		idx := p.free[n-1]
		p.free = p.free[:n-1]
		return newID(idx, p.generations[idx])
	}
	idx := uint32(len(p.generations))
	// Generation starts at 1 so the zero ID never names a live entity.
	p.generations = append(p.generations, 1)
	return newID(idx, 1)
}

func (p *pool) alive(id ID) bool {
	idx := id.Index()
	if int(idx) >= len(p.generations) {
		return false
	}
	return p.generations[idx] == id.Generation()
}

func (p *pool) destroy(id ID) bool {
	if !p.alive(id) {
		return false
	}
	idx := id.Index()
	p.generations[idx]++
	p.free = append(p.free, idx)
	return true
}

func (p *pool) live() int {
	return len(p.generations) - len(p.free)
}
