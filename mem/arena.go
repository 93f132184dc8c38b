package mem

const (
	// BlockStartSize is the smallest first-block size for an arena.
	BlockStartSize = 64
	// BlockStandardSize caps block growth once an arena is warm.
	BlockStandardSize = 8000
)

// Arena is a block-backed bump allocator. Alloc carves from the last
// block and grows the arena when the block is exhausted; Free on an
// individual buffer is a no-op, memory comes back only through
// Release. A non-zero byte cap makes Alloc fallible.
type Arena struct {
	blocks    []*arenaBlock
	cap       int
	totalSize int
}

type arenaBlock struct {
	buf  []byte
	used int
}

// NewArena creates an arena whose first block holds at least size
// bytes. A size of zero or less uses BlockStartSize.
func NewArena(size int) *Arena {
	if size <= 0 {
		size = BlockStartSize
	}
	a := &Arena{}
	a.addBlock(size)
	return a
}

// NewArenaWithCap creates an arena that refuses to grow past capBytes
// total block storage.
func NewArenaWithCap(size, capBytes int) *Arena {
	a := NewArena(size)
	a.cap = capBytes
	return a
}

func (a *Arena) Alloc(size int) ([]byte, error) {
	if size <= 0 {
		return nil, ErrAlloc
	}
	block := a.blocks[len(a.blocks)-1]
	if size > len(block.buf)-block.used {
		next := a.nextBlockSize(size)
		if a.cap > 0 && a.totalSize+next > a.cap {
			return nil, ErrAlloc
		}
		block = a.addBlock(next)
	}
	start := block.used
	block.used += size
	return block.buf[start:block.used], nil
}

// Free is a no-op; arena memory is reclaimed in bulk by Release.
func (a *Arena) Free([]byte) {}

// Release drops every block. The arena must not be used afterwards.
func (a *Arena) Release() {
	a.blocks = nil
	a.totalSize = 0
}

// Size reports the total size of all arena blocks.
func (a *Arena) Size() int {
	return a.totalSize
}

func (a *Arena) nextBlockSize(minSize int) int {
	last := a.blocks[len(a.blocks)-1]
	newSize := len(last.buf) * 2
	if newSize > BlockStandardSize {
		newSize = BlockStandardSize
	}
	if newSize < minSize {
		newSize = minSize
	}
	return newSize
}

func (a *Arena) addBlock(size int) *arenaBlock {
	block := &arenaBlock{buf: make([]byte, size)}
	a.blocks = append(a.blocks, block)
	a.totalSize += size
	return block
}
