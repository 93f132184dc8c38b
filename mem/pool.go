package mem

import "sync"

// PoolAllocator recycles fixed-size buffers through sync.Pool. It fits
// callers whose allocations are a single known size, such as list
// nodes; requests of any other size fall back to the Go runtime.
// Alloc never fails.
type PoolAllocator struct {
	size int
	pool sync.Pool
}

// NewPoolAllocator creates a pool for buffers of a single size.
func NewPoolAllocator(size int) *PoolAllocator {
	p := &PoolAllocator{size: size}
	p.pool.New = func() any {
		return make([]byte, size)
	}
	return p
}

func (p *PoolAllocator) Alloc(size int) ([]byte, error) {
	if size != p.size {
		return make([]byte, size), nil
	}
	buf := p.pool.Get().([]byte)[:p.size]
	clear(buf)
	return buf, nil
}

// Free returns a buffer to the pool if it matches the pool size.
func (p *PoolAllocator) Free(buf []byte) {
	if cap(buf) < p.size {
		return
	}
	p.pool.Put(buf[:p.size])
}

// Size reports the pool's fixed buffer size.
func (p *PoolAllocator) Size() int {
	return p.size
}
