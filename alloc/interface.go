package alloc

import (
	"github.com/AniTigerSib/STL-Containers/slice"
)

// Allocator obtains and releases raw storage for elements of T. It never
// constructs or destroys elements: a block comes back zeroed and the owner
// is responsible for destroying whatever it constructed before handing the
// block back.
//
// Allocate(0) returns nil and does not touch the underlying source.
// Allocation failure is fatal: implementations panic with an error marked
// errors.ErrAllocation.
type Allocator[T any] interface {
	Allocate(n int) []T
	Deallocate(block []T)
}

// Destroy ends the lifetime of the elements in block by zeroing them so
// nothing they referenced is kept alive.
func Destroy[T any](block []T) {
	clear(block)
}

// MaxSize is the largest element count a container of T could request.
func MaxSize[T any]() int {
	return slice.MaxLen[T]()
}

// Guard is a scoped owner of a freshly allocated block. Unless Commit is
// called the deferred Release hands the block back to its allocator, so a
// panic between allocation and hand-off never leaks the block.
type Guard[T any] struct {
	a     Allocator[T]
	block []T
	done  bool
}

func NewGuard[T any](a Allocator[T], block []T) *Guard[T] {
	return &Guard[T]{a: a, block: block}
}

// Block is the guarded block.
func (g *Guard[T]) Block() []T {
	return g.block
}

// Commit transfers ownership of the block to the caller.
func (g *Guard[T]) Commit() []T {
	g.done = true
	return g.block
}

func (g *Guard[T]) Release() {
	if g.done {
		return
	}
	g.done = true
	Destroy(g.block)
	g.a.Deallocate(g.block)
}
