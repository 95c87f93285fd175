package alloc

import (
	"github.com/AniTigerSib/STL-Containers/errors"
	"github.com/AniTigerSib/STL-Containers/slice"
)

// Heap allocates straight from the Go heap.
type Heap[T any] struct{}

func (Heap[T]) Allocate(n int) []T {
	if n == 0 {
		return nil
	}
	if n < 0 || n > slice.MaxLen[T]() {
		panic(errors.AllocationFailedf("cannot allocate %d slots", n))
	}
	return make([]T, n)
}

// Deallocate leaves the block to the garbage collector.
func (Heap[T]) Deallocate(block []T) {}
