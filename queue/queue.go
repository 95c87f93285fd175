// Package queue is a first in, first out adapter over any DequeSequence.
package queue

import (
	containers "github.com/AniTigerSib/STL-Containers"
	"github.com/AniTigerSib/STL-Containers/alloc"
	"github.com/AniTigerSib/STL-Containers/list"
)

type Queue[T any] struct {
	seq containers.DequeSequence[T]
}

// New builds an empty queue backed by a list.
func New[T any](opts ...alloc.Option) *Queue[T] {
	return On[T](list.New[T](opts...))
}

// From builds a queue holding items, the first one at the front.
func From[T any](items ...T) *Queue[T] {
	return On[T](list.From(items))
}

// On adapts an existing sequence; values enter at its back and leave from
// its front.
func On[T any](seq containers.DequeSequence[T]) *Queue[T] {
	return &Queue[T]{seq: seq}
}

// Front is the oldest value. Calling it on an empty queue is a contract
// violation.
func (self *Queue[T]) Front() T {
	return self.seq.Front()
}

// Back is the newest value.
func (self *Queue[T]) Back() T {
	return self.seq.Back()
}

func (self *Queue[T]) Push(v T) {
	self.seq.PushBack(v)
}

// Pop removes the front value. It is a no-op on an empty queue.
func (self *Queue[T]) Pop() {
	if self.seq.Empty() {
		return
	}
	self.seq.PopFront()
}

func (self *Queue[T]) Empty() bool {
	return self.seq.Empty()
}

func (self *Queue[T]) Size() int {
	return self.seq.Size()
}

func (self *Queue[T]) Swap(other *Queue[T]) {
	self.seq, other.seq = other.seq, self.seq
}

func (self *Queue[T]) InsertManyBack(vs ...T) {
	for _, v := range vs {
		self.seq.PushBack(v)
	}
}
