// Package vector is a growable contiguous sequence. Elements live in a
// single block obtained from the vector's allocation strategy; the block is
// replaced (and every iterator into it invalidated) whenever the vector
// outgrows it.
package vector

import (
	containers "github.com/AniTigerSib/STL-Containers"
	"github.com/AniTigerSib/STL-Containers/alloc"
	"github.com/AniTigerSib/STL-Containers/buffer"
	"github.com/AniTigerSib/STL-Containers/consts"
	"github.com/AniTigerSib/STL-Containers/errors"
)

// Vector is a dynamic array. The zero value is an empty vector allocating
// from the Go heap.
type Vector[T any] struct {
	buf      buffer.Buffer[T]
	strategy *alloc.Strategy
}

func New[T any](opts ...alloc.Option) *Vector[T] {
	return newWith[T](alloc.NewStrategy(opts...))
}

func newWith[T any](s *alloc.Strategy) *Vector[T] {
	v := &Vector[T]{strategy: s}
	v.buf.Init(alloc.Rebind[T](s))
	return v
}

// NewSize builds a vector of n zero values with capacity n.
func NewSize[T any](n int, opts ...alloc.Option) *Vector[T] {
	var zero T
	return NewFill(n, zero, opts...)
}

// NewFill builds a vector of n copies of v with capacity n.
func NewFill[T any](n int, v T, opts ...alloc.Option) *Vector[T] {
	self := New[T](opts...)
	self.buf.CreateStorage(n)
	for i := 0; i < n; i++ {
		self.buf.Construct(v)
	}
	return self
}

// From builds a vector holding a copy of items with capacity len(items).
func From[T any](items []T, opts ...alloc.Option) *Vector[T] {
	self := New[T](opts...)
	self.buf.CreateStorage(len(items))
	for _, item := range items {
		self.buf.Construct(item)
	}
	return self
}

// Clone is a deep copy with capacity exactly Size(), using the same
// strategy.
func (self *Vector[T]) Clone() *Vector[T] {
	c := newWith[T](self.strategy)
	c.buf.CreateStorage(self.Size())
	for _, item := range self.buf.Slots() {
		c.buf.Construct(item)
	}
	return c
}

// Move returns a vector owning self's storage and leaves self empty.
func (self *Vector[T]) Move() *Vector[T] {
	return &Vector[T]{buf: self.buf.Take(), strategy: self.strategy}
}

// Assign replaces the contents of self with a copy of other's.
func (self *Vector[T]) Assign(other *Vector[T]) {
	if self == other {
		return
	}
	var tmp buffer.Buffer[T]
	tmp.Init(self.buf.Allocator())
	tmp.CreateStorage(other.Size())
	for _, item := range other.buf.Slots() {
		tmp.Construct(item)
	}
	self.buf.Swap(&tmp)
	tmp.Release()
}

// MoveAssign releases self's storage and takes over other's, leaving other
// empty.
func (self *Vector[T]) MoveAssign(other *Vector[T]) {
	if self == other {
		return
	}
	self.buf.Release()
	self.buf = other.buf.Take()
	self.strategy = other.strategy
}

func (self *Vector[T]) Empty() bool {
	return self.buf.Len() == 0
}

func (self *Vector[T]) Size() int {
	return self.buf.Len()
}

func (self *Vector[T]) MaxSize() int {
	return alloc.MaxSize[T]()
}

func (self *Vector[T]) Capacity() int {
	return self.buf.Cap()
}

// Reserve grows the capacity to exactly n when n exceeds it. Every
// iterator is invalidated when the storage moves.
func (self *Vector[T]) Reserve(n int) {
	self.buf.Reserve(n)
}

func (self *Vector[T]) ShrinkToFit() {
	self.buf.ShrinkToFit()
}

// At is the bounds checked element access.
func (self *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= self.Size() {
		var zero T
		return zero, errors.OutOfRangef("vector.At: index %d, size %d", i, self.Size())
	}
	return self.buf.Block()[i], nil
}

// Index returns element i without a bounds check beyond the block's own.
func (self *Vector[T]) Index(i int) T {
	return self.buf.Block()[i]
}

func (self *Vector[T]) Set(i int, v T) {
	self.buf.Block()[i] = v
}

func (self *Vector[T]) Front() T {
	return self.buf.Block()[0]
}

func (self *Vector[T]) Back() T {
	return self.buf.Block()[self.Size()-1]
}

// Data is the constructed prefix of the storage block. It aliases the
// vector until the next reallocation.
func (self *Vector[T]) Data() []T {
	return self.buf.Slots()
}

func (self *Vector[T]) PushBack(v T) {
	self.buf.Grow()
	self.buf.Construct(v)
}

// PopBack removes the last element. It is a no-op on an empty vector and
// never shrinks the capacity.
func (self *Vector[T]) PopBack() {
	if self.Empty() {
		return
	}
	self.buf.DestroyFrom(self.Size() - 1)
}

func (self *Vector[T]) Clear() {
	self.buf.Clear()
}

// Release destroys every element and frees the storage.
func (self *Vector[T]) Release() {
	self.buf.Release()
}

// Swap exchanges the contents, strategies included, in O(1).
func (self *Vector[T]) Swap(other *Vector[T]) {
	*self, *other = *other, *self
}

func (self *Vector[T]) Verify() error {
	return self.buf.Verify()
}

// growFor makes room for n more elements, doubling when that is enough.
func (self *Vector[T]) growFor(n int) {
	need := self.Size() + n
	if need <= self.Capacity() {
		return
	}
	doubled := self.Capacity() * consts.GrowthFactor
	if doubled < need {
		doubled = need
	}
	self.buf.Reserve(doubled)
}

var _ containers.BackSequence[int] = (*Vector[int])(nil)
