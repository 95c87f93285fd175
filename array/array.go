// Package array is a fixed length sequence. The length is chosen when the
// array is built and never changes; the storage is a buffer that is filled
// once and never grows.
package array

import (
	"iter"
)

import (
	"github.com/AniTigerSib/STL-Containers/alloc"
	"github.com/AniTigerSib/STL-Containers/buffer"
	"github.com/AniTigerSib/STL-Containers/errors"
)

type Array[T any] struct {
	buf      buffer.Buffer[T]
	strategy *alloc.Strategy
}

// New builds an array of n zero values.
func New[T any](n int, opts ...alloc.Option) *Array[T] {
	return newWith[T](n, alloc.NewStrategy(opts...))
}

func newWith[T any](n int, s *alloc.Strategy) *Array[T] {
	self := &Array[T]{strategy: s}
	self.buf.Init(alloc.Rebind[T](s))
	self.buf.CreateStorage(n)
	var zero T
	for i := 0; i < n; i++ {
		self.buf.Construct(zero)
	}
	return self
}

// From builds an array of length n starting with items; the remaining
// slots hold zero values. More than n items is an out of range error.
func From[T any](n int, items ...T) (*Array[T], error) {
	return FromWith(n, items, nil)
}

// FromWith is From with allocation options.
func FromWith[T any](n int, items []T, opts []alloc.Option) (*Array[T], error) {
	if len(items) > n {
		return nil, errors.OutOfRangef("array.From: %d items for length %d", len(items), n)
	}
	self := New[T](n, opts...)
	copy(self.buf.Slots(), items)
	return self, nil
}

func (self *Array[T]) Clone() *Array[T] {
	c := newWith[T](self.Size(), self.strategy)
	copy(c.buf.Slots(), self.buf.Slots())
	return c
}

func (self *Array[T]) Empty() bool {
	return self.buf.Len() == 0
}

func (self *Array[T]) Size() int {
	return self.buf.Len()
}

// MaxSize equals Size: an array never grows.
func (self *Array[T]) MaxSize() int {
	return self.buf.Len()
}

func (self *Array[T]) At(i int) (T, error) {
	if i < 0 || i >= self.Size() {
		var zero T
		return zero, errors.OutOfRangef("array.At: index %d, size %d", i, self.Size())
	}
	return self.buf.Block()[i], nil
}

func (self *Array[T]) Index(i int) T {
	return self.buf.Block()[i]
}

func (self *Array[T]) Set(i int, v T) {
	self.buf.Block()[i] = v
}

func (self *Array[T]) Front() T {
	return self.buf.Block()[0]
}

func (self *Array[T]) Back() T {
	return self.buf.Block()[self.Size()-1]
}

// Data is the storage, or nil for a zero length array.
func (self *Array[T]) Data() []T {
	if self.Size() == 0 {
		return nil
	}
	return self.buf.Slots()
}

func (self *Array[T]) Begin() buffer.Iterator[T] {
	return buffer.NewIterator(self.buf.Block(), 0)
}

func (self *Array[T]) End() buffer.Iterator[T] {
	return buffer.NewIterator(self.buf.Block(), self.Size())
}

func (self *Array[T]) CBegin() buffer.ConstIterator[T] {
	return self.Begin().Const()
}

func (self *Array[T]) CEnd() buffer.ConstIterator[T] {
	return self.End().Const()
}

func (self *Array[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range self.buf.Slots() {
			if !yield(item) {
				return
			}
		}
	}
}

// Fill sets every element to v.
func (self *Array[T]) Fill(v T) {
	slots := self.buf.Slots()
	for i := range slots {
		slots[i] = v
	}
}

// Swap exchanges the elements of two arrays of the same length.
func (self *Array[T]) Swap(other *Array[T]) error {
	if self.Size() != other.Size() {
		return errors.OutOfRangef("array.Swap: lengths %d and %d", self.Size(), other.Size())
	}
	a, b := self.buf.Slots(), other.buf.Slots()
	for i := range a {
		a[i], b[i] = b[i], a[i]
	}
	return nil
}

// Release frees the storage. The array has length 0 afterwards.
func (self *Array[T]) Release() {
	self.buf.Release()
}
