package alloc

// FreeList keeps released blocks, bucketed by length, and hands them back
// out before asking the inner allocator for fresh storage. At most depth
// blocks of any one length are kept; the rest go straight to inner.
type FreeList[T any] struct {
	inner Allocator[T]
	depth int
	free  map[int][][]T
	count int
}

func NewFreeList[T any](inner Allocator[T], depth int) *FreeList[T] {
	if inner == nil {
		inner = Heap[T]{}
	}
	return &FreeList[T]{
		inner: inner,
		depth: depth,
		free:  make(map[int][][]T),
	}
}

func (f *FreeList[T]) Allocate(n int) []T {
	if n == 0 {
		return nil
	}
	if block, ok := f.pop(n); ok {
		return f.zero(block)
	}
	return f.inner.Allocate(n)
}

func (f *FreeList[T]) Deallocate(block []T) {
	n := len(block)
	if n == 0 {
		return
	}
	if len(f.free[n]) >= f.depth {
		f.inner.Deallocate(block)
		return
	}
	f.free[n] = append(f.free[n], block)
	f.count++
}

// Len is the number of blocks currently held for reuse.
func (f *FreeList[T]) Len() int {
	return f.count
}

// Purge hands every held block back to the inner allocator.
func (f *FreeList[T]) Purge() {
	for n, blocks := range f.free {
		for _, block := range blocks {
			f.inner.Deallocate(block)
		}
		delete(f.free, n)
	}
	f.count = 0
}

func (f *FreeList[T]) pop(n int) ([]T, bool) {
	blocks := f.free[n]
	if len(blocks) == 0 {
		return nil, false
	}
	last := len(blocks) - 1
	block := blocks[last]
	blocks[last] = nil
	f.free[n] = blocks[:last]
	f.count--
	return block, true
}

func (f *FreeList[T]) zero(block []T) []T {
	clear(block)
	return block
}
