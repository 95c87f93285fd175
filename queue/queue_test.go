package queue

import "testing"

import (
	"runtime/debug"
)

import (
	"github.com/AniTigerSib/STL-Containers/list"
)

type T testing.T

func (t *T) assert(msg string, oks ...bool) {
	for _, ok := range oks {
		if !ok {
			t.Log("\n" + string(debug.Stack()))
			t.Error(msg)
			t.Fatal("assert failed")
		}
	}
}

func TestFIFO(x *testing.T) {
	t := (*T)(x)
	q := New[int]()
	q.Pop()
	t.assert("pop on empty is a no-op", q.Empty())
	q.Push(1)
	q.InsertManyBack(2, 3)
	t.assert("ends", q.Front() == 1, q.Back() == 3, q.Size() == 3)
	got := []int{}
	for !q.Empty() {
		got = append(got, q.Front())
		q.Pop()
	}
	t.assert("order", len(got) == 3, got[0] == 1, got[2] == 3)
}

func TestOnExistingList(x *testing.T) {
	t := (*T)(x)
	l := list.From([]int{5, 6})
	q := On[int](l)
	q.Push(7)
	t.assert("shares the list", l.Size() == 3, l.Back() == 7)
	other := From(1)
	q.Swap(other)
	t.assert("swapped", q.Size() == 1, other.Front() == 5)
}
