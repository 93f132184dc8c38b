package mem

import (
	"errors"
	"testing"
)

func TestArenaGrowth(t *testing.T) {
	a := NewArena(32)
	if len(a.blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(a.blocks))
	}
	if _, err := a.Alloc(16); err != nil {
		t.Fatalf("Alloc: %v", err)
	}
	if _, err := a.Alloc(10); err != nil {
		t.Fatalf("Alloc: %v", err)
	}
	if len(a.blocks) != 1 {
		t.Fatalf("expected 1 block after small allocs, got %d", len(a.blocks))
	}
	if _, err := a.Alloc(16); err != nil {
		t.Fatalf("Alloc: %v", err)
	}
	if len(a.blocks) != 2 {
		t.Fatalf("expected 2 blocks after growth, got %d", len(a.blocks))
	}
	if a.Size() != len(a.blocks[0].buf)+len(a.blocks[1].buf) {
		t.Fatalf("Size mismatch: %d", a.Size())
	}
}

func TestArenaCarvesDistinctBuffers(t *testing.T) {
	a := NewArena(64)
	one, err := a.Alloc(8)
	if err != nil {
		t.Fatalf("Alloc: %v", err)
	}
	two, err := a.Alloc(8)
	if err != nil {
		t.Fatalf("Alloc: %v", err)
	}
	one[0] = 0x5A
	if two[0] == 0x5A {
		t.Fatalf("allocations overlap")
	}
}

func TestArenaCap(t *testing.T) {
	a := NewArenaWithCap(32, 48)
	if _, err := a.Alloc(32); err != nil {
		t.Fatalf("Alloc within first block: %v", err)
	}
	if _, err := a.Alloc(32); !errors.Is(err, ErrAlloc) {
		t.Fatalf("Alloc past cap err=%v, want ErrAlloc", err)
	}
	if a.Size() != 32 {
		t.Fatalf("failed Alloc grew the arena to %d", a.Size())
	}
}

func TestArenaBadSize(t *testing.T) {
	a := NewArena(32)
	if _, err := a.Alloc(0); !errors.Is(err, ErrAlloc) {
		t.Fatalf("Alloc(0) err=%v, want ErrAlloc", err)
	}
	if _, err := a.Alloc(-4); !errors.Is(err, ErrAlloc) {
		t.Fatalf("Alloc(-4) err=%v, want ErrAlloc", err)
	}
}

func TestArenaRelease(t *testing.T) {
	a := NewArena(32)
	if _, err := a.Alloc(32); err != nil {
		t.Fatalf("Alloc: %v", err)
	}
	if _, err := a.Alloc(32); err != nil {
		t.Fatalf("Alloc: %v", err)
	}
	a.Release()
	if len(a.blocks) != 0 || a.Size() != 0 {
		t.Fatalf("Release left %d blocks, size %d", len(a.blocks), a.Size())
	}
}
