package containers

import (
	"iter"
)

// BackSequence is what a stack needs from the container it adapts.
type BackSequence[T any] interface {
	PushBack(v T)
	PopBack()
	Back() T
	Size() int
	Empty() bool
}

// DequeSequence is what a queue needs from the container it adapts.
type DequeSequence[T any] interface {
	BackSequence[T]
	PopFront()
	Front() T
}

// ItemIterator yields one item per call together with the iterator to call
// next. A nil next iterator means the sequence is exhausted and the item
// returned with it is not part of the sequence.
type ItemIterator[T any] func() (T, ItemIterator[T])

// DoItem calls do for every item of it, stopping at the first error.
func DoItem[T any](it ItemIterator[T], do func(T) error) error {
	if it == nil {
		return nil
	}
	var item T
	for item, it = it(); it != nil; item, it = it() {
		if err := do(item); err != nil {
			return err
		}
	}
	return nil
}

// Collect copies a sequence into a fresh slice. An empty sequence gives an
// empty, non-nil slice.
func Collect[T any](seq iter.Seq[T]) []T {
	items := []T{}
	for item := range seq {
		items = append(items, item)
	}
	return items
}
