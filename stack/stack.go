// Package stack is a last in, first out adapter over any BackSequence.
package stack

import (
	containers "github.com/AniTigerSib/STL-Containers"
	"github.com/AniTigerSib/STL-Containers/alloc"
	"github.com/AniTigerSib/STL-Containers/list"
)

type Stack[T any] struct {
	seq containers.BackSequence[T]
}

// New builds an empty stack backed by a list.
func New[T any](opts ...alloc.Option) *Stack[T] {
	return On[T](list.New[T](opts...))
}

// From builds a stack holding items, the last one on top.
func From[T any](items ...T) *Stack[T] {
	return On[T](list.From(items))
}

// On adapts an existing sequence; its back is the top of the stack.
func On[T any](seq containers.BackSequence[T]) *Stack[T] {
	return &Stack[T]{seq: seq}
}

// Top is the last pushed value. Calling it on an empty stack is a contract
// violation.
func (self *Stack[T]) Top() T {
	return self.seq.Back()
}

func (self *Stack[T]) Push(v T) {
	self.seq.PushBack(v)
}

// Pop removes the top value. It is a no-op on an empty stack.
func (self *Stack[T]) Pop() {
	if self.seq.Empty() {
		return
	}
	self.seq.PopBack()
}

func (self *Stack[T]) Empty() bool {
	return self.seq.Empty()
}

func (self *Stack[T]) Size() int {
	return self.seq.Size()
}

// Swap exchanges the underlying sequences.
func (self *Stack[T]) Swap(other *Stack[T]) {
	self.seq, other.seq = other.seq, self.seq
}

// InsertManyBack pushes vs in order, so the last one ends on top.
func (self *Stack[T]) InsertManyBack(vs ...T) {
	for _, v := range vs {
		self.seq.PushBack(v)
	}
}
