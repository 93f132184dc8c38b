package mem

import "errors"

// ErrAlloc is returned when an allocator cannot satisfy a request.
var ErrAlloc = errors.New("mem: allocation failed")

// Allocator defines the node allocation contract consumed by the list.
// Alloc either succeeds or fails immediately; a failed request charges
// nothing.
type Allocator interface {
	Alloc(size int) ([]byte, error)
	Free(buf []byte)
}

// GoAllocator delegates to the Go runtime. Alloc never fails and Free
// is a no-op, the runtime reclaims the memory.
type GoAllocator struct{}

func (GoAllocator) Alloc(size int) ([]byte, error) {
	return make([]byte, size), nil
}

func (GoAllocator) Free([]byte) {}

// DefaultAllocator is the allocator used unless the caller overrides it.
var DefaultAllocator Allocator = GoAllocator{}

// CappedAllocator enforces a byte budget. Alloc fails with ErrAlloc
// once the budget would be exceeded; Free credits the bytes back.
type CappedAllocator struct {
	limit int
	used  int
}

// NewCappedAllocator creates an allocator with the given byte budget.
func NewCappedAllocator(limit int) *CappedAllocator {
	return &CappedAllocator{limit: limit}
}

func (a *CappedAllocator) Alloc(size int) ([]byte, error) {
	if size < 0 || a.used+size > a.limit {
		return nil, ErrAlloc
	}
	a.used += size
	return make([]byte, size), nil
}

func (a *CappedAllocator) Free(buf []byte) {
	a.used -= len(buf)
}

// Used reports the bytes currently charged against the budget.
func (a *CappedAllocator) Used() int {
	return a.used
}

// TrackingAllocator wraps another allocator and counts allocations, so
// callers can assert that teardown released every node.
type TrackingAllocator struct {
	Inner Allocator
	live  int
	total int
}

// NewTrackingAllocator wraps inner; a nil inner uses DefaultAllocator.
func NewTrackingAllocator(inner Allocator) *TrackingAllocator {
	if inner == nil {
		inner = DefaultAllocator
	}
	return &TrackingAllocator{Inner: inner}
}

func (a *TrackingAllocator) Alloc(size int) ([]byte, error) {
	buf, err := a.Inner.Alloc(size)
	if err != nil {
		return nil, err
	}
	a.live++
	a.total++
	return buf, nil
}

func (a *TrackingAllocator) Free(buf []byte) {
	a.live--
	a.Inner.Free(buf)
}

// Live reports allocations not yet freed.
func (a *TrackingAllocator) Live() int {
	return a.live
}

// Total reports all allocations ever made.
func (a *TrackingAllocator) Total() int {
	return a.total
}
