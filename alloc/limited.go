package alloc

import (
	"github.com/AniTigerSib/STL-Containers/errors"
)

type budget struct {
	limit int
	used  int
}

// Limited enforces a budget of live slots. Every allocator rebound from
// the same Strategy draws on the same budget.
type Limited[T any] struct {
	inner  Allocator[T]
	budget *budget
}

func NewLimited[T any](inner Allocator[T], slots int) *Limited[T] {
	return newLimited(inner, &budget{limit: slots})
}

func newLimited[T any](inner Allocator[T], b *budget) *Limited[T] {
	if inner == nil {
		inner = Heap[T]{}
	}
	return &Limited[T]{inner: inner, budget: b}
}

func (l *Limited[T]) Allocate(n int) []T {
	if n == 0 {
		return nil
	}
	if n < 0 || l.budget.used+n > l.budget.limit {
		panic(errors.AllocationFailedf(
			"need %d slots, %d of %d in use", n, l.budget.used, l.budget.limit))
	}
	block := l.inner.Allocate(n)
	l.budget.used += n
	return block
}

func (l *Limited[T]) Deallocate(block []T) {
	if len(block) == 0 {
		return
	}
	l.budget.used -= len(block)
	l.inner.Deallocate(block)
}

func (l *Limited[T]) Used() int {
	return l.budget.used
}

func (l *Limited[T]) Limit() int {
	return l.budget.limit
}
