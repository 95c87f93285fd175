package list

import (
	"iter"
)

import (
	containers "github.com/AniTigerSib/STL-Containers"
)

// Iterator is a bidirectional position in a list. It stays valid until
// the node it points at is erased; End() is never invalidated.
type Iterator[T any] struct {
	n *node[T]
}

// ConstIterator is the read-only view of an Iterator.
type ConstIterator[T any] struct {
	it Iterator[T]
}

func (it Iterator[T]) Next() Iterator[T] {
	return Iterator[T]{n: it.n.next}
}

func (it Iterator[T]) Prev() Iterator[T] {
	return Iterator[T]{n: it.n.prev}
}

func (it Iterator[T]) Value() T {
	return it.n.value
}

func (it Iterator[T]) Ref() *T {
	return &it.n.value
}

func (it Iterator[T]) Set(v T) {
	it.n.value = v
}

func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.n == other.n
}

func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T]{it: it}
}

func (c ConstIterator[T]) Next() ConstIterator[T] {
	return c.it.Next().Const()
}

func (c ConstIterator[T]) Prev() ConstIterator[T] {
	return c.it.Prev().Const()
}

func (c ConstIterator[T]) Value() T {
	return c.it.Value()
}

func (c ConstIterator[T]) Equal(other ConstIterator[T]) bool {
	return c.it.Equal(other.it)
}

func (self *List[T]) Begin() Iterator[T] {
	self.ring()
	return Iterator[T]{n: self.head}
}

func (self *List[T]) End() Iterator[T] {
	return Iterator[T]{n: self.ring()}
}

func (self *List[T]) CBegin() ConstIterator[T] {
	return self.Begin().Const()
}

func (self *List[T]) CEnd() ConstIterator[T] {
	return self.End().Const()
}

// All yields the values front to back.
func (self *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		s := self.ring()
		for n := s.next; n != s; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Backward yields the values back to front.
func (self *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		s := self.ring()
		for n := s.prev; n != s; n = n.prev {
			if !yield(n.value) {
				return
			}
		}
	}
}

func (self *List[T]) Items() containers.ItemIterator[T] {
	s := self.ring()
	n := s.next
	var items containers.ItemIterator[T]
	items = func() (T, containers.ItemIterator[T]) {
		if n == s {
			var zero T
			return zero, nil
		}
		v := n.value
		n = n.next
		return v, items
	}
	return items
}
