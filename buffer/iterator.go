package buffer

import (
	"github.com/AniTigerSib/STL-Containers/slice"
)

// Iterator is a random-access position in a block. It stays tied to the
// block it was taken from; after the owning container reallocates, Owns
// reports false for it.
type Iterator[T any] struct {
	block []T
	off   int
}

// ConstIterator is the read-only view of an Iterator.
type ConstIterator[T any] struct {
	it Iterator[T]
}

func NewIterator[T any](block []T, off int) Iterator[T] {
	return Iterator[T]{block: block, off: off}
}

func (it Iterator[T]) Value() T {
	return it.block[it.off]
}

func (it Iterator[T]) Ref() *T {
	return &it.block[it.off]
}

func (it Iterator[T]) Set(v T) {
	it.block[it.off] = v
}

func (it Iterator[T]) Next() Iterator[T] {
	return it.Add(1)
}

func (it Iterator[T]) Prev() Iterator[T] {
	return it.Add(-1)
}

func (it Iterator[T]) Add(n int) Iterator[T] {
	return Iterator[T]{block: it.block, off: it.off + n}
}

func (it Iterator[T]) Sub(n int) Iterator[T] {
	return it.Add(-n)
}

// Diff is the signed distance it - other.
func (it Iterator[T]) Diff(other Iterator[T]) int {
	return it.off - other.off
}

// At is it[n].
func (it Iterator[T]) At(n int) T {
	return it.block[it.off+n]
}

func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.off == other.off && slice.SameBlock(it.block, other.block)
}

func (it Iterator[T]) Less(other Iterator[T]) bool {
	return it.off < other.off
}

func (it Iterator[T]) LessEq(other Iterator[T]) bool {
	return it.off <= other.off
}

func (it Iterator[T]) Greater(other Iterator[T]) bool {
	return it.off > other.off
}

func (it Iterator[T]) GreaterEq(other Iterator[T]) bool {
	return it.off >= other.off
}

// Index is the offset from the start of the block.
func (it Iterator[T]) Index() int {
	return it.off
}

// Owns reports whether it was taken from a block starting at the same
// address as block. It cannot tell blocks of a zero-size T apart, nor a
// block that was released and handed out again by a free list.
func (it Iterator[T]) Owns(block []T) bool {
	return slice.SameBlock(it.block, block)
}

func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T]{it: it}
}

func (c ConstIterator[T]) Value() T {
	return c.it.Value()
}

func (c ConstIterator[T]) Next() ConstIterator[T] {
	return c.it.Next().Const()
}

func (c ConstIterator[T]) Prev() ConstIterator[T] {
	return c.it.Prev().Const()
}

func (c ConstIterator[T]) Add(n int) ConstIterator[T] {
	return c.it.Add(n).Const()
}

func (c ConstIterator[T]) Sub(n int) ConstIterator[T] {
	return c.it.Sub(n).Const()
}

func (c ConstIterator[T]) Diff(other ConstIterator[T]) int {
	return c.it.Diff(other.it)
}

func (c ConstIterator[T]) At(n int) T {
	return c.it.At(n)
}

func (c ConstIterator[T]) Equal(other ConstIterator[T]) bool {
	return c.it.Equal(other.it)
}

func (c ConstIterator[T]) Less(other ConstIterator[T]) bool {
	return c.it.Less(other.it)
}

func (c ConstIterator[T]) Index() int {
	return c.it.Index()
}

func (c ConstIterator[T]) Owns(block []T) bool {
	return c.it.Owns(block)
}
