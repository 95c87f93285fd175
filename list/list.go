// Package list is a doubly linked list over a sentinel ring. The sentinel
// is both the element before the first and the element after the last, so
// End() is always a valid position and no operation special cases an
// empty list.
//
// Every list algorithm (splice, merge, sort, unique, reverse) relinks the
// existing nodes; none of them copies values or allocates.
package list

import (
	containers "github.com/AniTigerSib/STL-Containers"
	"github.com/AniTigerSib/STL-Containers/alloc"
	"github.com/AniTigerSib/STL-Containers/slice"
)

// List is a doubly linked list. The zero value is an empty list
// allocating from the Go heap.
//
// Splicing and merging move nodes between lists, so the lists involved
// must be built with the same Strategy.
type List[T any] struct {
	sentinel *node[T]
	head     *node[T]
	size     int
	alloc    alloc.Allocator[node[T]]
	strategy *alloc.Strategy
}

func New[T any](opts ...alloc.Option) *List[T] {
	return newWith[T](alloc.NewStrategy(opts...))
}

func newWith[T any](s *alloc.Strategy) *List[T] {
	self := &List[T]{
		alloc:    alloc.Rebind[node[T]](s),
		strategy: s,
	}
	self.ring()
	return self
}

// NewSize builds a list of n zero values.
func NewSize[T any](n int, opts ...alloc.Option) *List[T] {
	var zero T
	return NewFill(n, zero, opts...)
}

// NewFill builds a list of n copies of v.
func NewFill[T any](n int, v T, opts ...alloc.Option) *List[T] {
	self := New[T](opts...)
	self.appendGroup(n, func(int) T { return v })
	return self
}

// From builds a list holding a copy of items, in order.
func From[T any](items []T, opts ...alloc.Option) *List[T] {
	self := New[T](opts...)
	self.appendGroup(len(items), func(i int) T { return items[i] })
	return self
}

// Clone is a deep copy using the same strategy.
func (self *List[T]) Clone() *List[T] {
	c := newWith[T](self.strategy)
	c.appendGroup(self.Size(), self.values())
	return c
}

// Move returns a list owning every node of self and leaves self empty.
func (self *List[T]) Move() *List[T] {
	m := &List[T]{alloc: self.allocator(), strategy: self.strategy}
	m.Splice(m.End(), self)
	return m
}

// Assign replaces the contents of self with a copy of other's.
func (self *List[T]) Assign(other *List[T]) {
	if self == other {
		return
	}
	tmp := &List[T]{alloc: self.allocator(), strategy: self.strategy}
	tmp.appendGroup(other.Size(), other.values())
	self.Swap(tmp)
	tmp.Release()
}

// MoveAssign drops the contents of self and takes over other's nodes,
// leaving other empty.
func (self *List[T]) MoveAssign(other *List[T]) {
	if self == other {
		return
	}
	self.Clear()
	self.Splice(self.End(), other)
}

func (self *List[T]) allocator() alloc.Allocator[node[T]] {
	if self.alloc == nil {
		self.alloc = alloc.Heap[node[T]]{}
	}
	return self.alloc
}

// ring returns the sentinel, allocating it on first use.
func (self *List[T]) ring() *node[T] {
	if self.sentinel == nil {
		self.sentinel = &self.allocator().Allocate(1)[0]
		self.sentinel.init()
		self.head = self.sentinel
	}
	return self.sentinel
}

// repair refreshes the cached first node after the ring changed.
func (self *List[T]) repair() {
	self.head = self.ring().next
}

func (self *List[T]) newNode(v T) *node[T] {
	n := &self.allocator().Allocate(1)[0]
	n.value = v
	n.init()
	return n
}

func (self *List[T]) freeNode(n *node[T]) {
	block := slice.One(n)
	alloc.Destroy(block)
	self.allocator().Deallocate(block)
}

// freeRing frees every node of the ring anchored at s except s itself.
func (self *List[T]) freeRing(s *node[T]) {
	for n := s.next; n != s; {
		next := n.next
		self.freeNode(n)
		n = next
	}
	s.init()
}

// build allocates n detached nodes holding value(i), chained in order.
// If an allocation panics the nodes built so far are freed.
func (self *List[T]) build(n int, value func(int) T) (first, last *node[T]) {
	var chain node[T]
	chain.init()
	ok := false
	defer func() {
		if !ok {
			self.freeRing(&chain)
		}
	}()
	for i := 0; i < n; i++ {
		chain.linkBefore(self.newNode(value(i)))
	}
	first, last = chain.next, chain.prev
	unlinkGroup(first, last)
	ok = true
	return first, last
}

func (self *List[T]) appendGroup(n int, value func(int) T) {
	self.insertGroup(self.ring(), n, value)
}

func (self *List[T]) insertGroup(pos *node[T], n int, value func(int) T) {
	if n <= 0 {
		return
	}
	first, last := self.build(n, value)
	pos.linkGroupBefore(first, last)
	self.size += n
	self.repair()
}

// values snapshots the list for copying into another.
func (self *List[T]) values() func(int) T {
	n := self.ring().next
	return func(int) T {
		v := n.value
		n = n.next
		return v
	}
}

func (self *List[T]) Empty() bool {
	return self.size == 0
}

func (self *List[T]) Size() int {
	return self.size
}

func (self *List[T]) MaxSize() int {
	return alloc.MaxSize[node[T]]()
}

// Front is the first value. Calling it on an empty list is a contract
// violation.
func (self *List[T]) Front() T {
	self.ring()
	return self.head.value
}

// Back is the last value. Calling it on an empty list is a contract
// violation.
func (self *List[T]) Back() T {
	return self.ring().prev.value
}

func (self *List[T]) PushBack(v T) {
	self.ring().linkBefore(self.newNode(v))
	self.size++
	self.repair()
}

func (self *List[T]) PushFront(v T) {
	self.ring().next.linkBefore(self.newNode(v))
	self.size++
	self.repair()
}

// PopBack removes the last value. It is a no-op on an empty list.
func (self *List[T]) PopBack() {
	self.Erase(Iterator[T]{n: self.ring().prev})
}

// PopFront removes the first value. It is a no-op on an empty list.
func (self *List[T]) PopFront() {
	self.Erase(self.Begin())
}

// Insert places v before pos and returns its position.
func (self *List[T]) Insert(pos Iterator[T], v T) Iterator[T] {
	n := self.newNode(v)
	pos.n.linkBefore(n)
	self.size++
	self.repair()
	return Iterator[T]{n: n}
}

// InsertMany places vs before pos, in order, and returns the position
// after the last inserted value, which is pos itself.
func (self *List[T]) InsertMany(pos Iterator[T], vs ...T) Iterator[T] {
	self.insertGroup(pos.n, len(vs), func(i int) T { return vs[i] })
	return pos
}

func (self *List[T]) InsertManyBack(vs ...T) {
	self.InsertMany(self.End(), vs...)
}

func (self *List[T]) InsertManyFront(vs ...T) {
	self.InsertMany(self.Begin(), vs...)
}

// Erase removes the value at pos and returns the position that followed
// it. Erasing End() does nothing and returns End().
func (self *List[T]) Erase(pos Iterator[T]) Iterator[T] {
	if pos.n == self.ring() {
		return pos
	}
	next := pos.n.next
	pos.n.unlink()
	self.freeNode(pos.n)
	self.size--
	self.repair()
	return Iterator[T]{n: next}
}

// EraseRange removes [first, last) and returns last.
func (self *List[T]) EraseRange(first, last Iterator[T]) Iterator[T] {
	for it := first; !it.Equal(last); {
		it = self.Erase(it)
	}
	return last
}

func (self *List[T]) Clear() {
	if self.sentinel == nil {
		return
	}
	self.freeRing(self.sentinel)
	self.size = 0
	self.repair()
}

// Release frees every node and the sentinel. The list can be used again
// afterwards and will allocate a fresh sentinel.
func (self *List[T]) Release() {
	if self.sentinel == nil {
		return
	}
	self.Clear()
	self.freeNode(self.sentinel)
	self.sentinel = nil
	self.head = nil
}

// Swap exchanges the contents of two lists in O(1).
func (self *List[T]) Swap(other *List[T]) {
	*self, *other = *other, *self
}

var _ containers.DequeSequence[int] = (*List[int])(nil)
