package list

import (
	"golang.org/x/exp/constraints"
)

// Merge moves every value of src into dst. Both must be sorted ascending;
// the result is sorted and, among equal values, dst's come first. src is
// empty on return.
func Merge[T constraints.Ordered](dst, src *List[T]) {
	dst.MergeFunc(src, less[T])
}

// Sort sorts l ascending. The sort is stable.
func Sort[T constraints.Ordered](l *List[T]) {
	l.SortFunc(less[T])
}

// Unique removes every value equal to the one before it.
func Unique[T comparable](l *List[T]) {
	l.UniqueFunc(func(a, b T) bool { return a == b })
}

func less[T constraints.Ordered](a, b T) bool {
	return a < b
}

// MergeFunc is Merge with the ordering given by less.
func (self *List[T]) MergeFunc(other *List[T], less func(a, b T) bool) {
	if other == self || other.Empty() {
		return
	}
	mergeRings(self.ring(), other.ring(), less)
	self.size += other.size
	other.size = 0
	self.repair()
	other.repair()
}

// SortFunc is a stable merge sort by less. Nodes are relinked in place;
// no value is copied and nothing is allocated from the list's strategy.
func (self *List[T]) SortFunc(less func(a, b T) bool) {
	if self.size < 2 {
		return
	}
	mergeSort(self.ring(), self.size, less)
	self.repair()
}

// UniqueFunc removes every value eq to the one before it.
func (self *List[T]) UniqueFunc(eq func(a, b T) bool) {
	s := self.ring()
	if self.size < 2 {
		return
	}
	for n := s.next; n.next != s; {
		if eq(n.value, n.next.value) {
			dup := n.next
			dup.unlink()
			self.freeNode(dup)
			self.size--
		} else {
			n = n.next
		}
	}
	self.repair()
}

// Reverse reverses the order of the values in O(n) without moving them.
func (self *List[T]) Reverse() {
	s := self.ring()
	n := s
	for {
		n.reverse()
		n = n.prev
		if n == s {
			break
		}
	}
	self.repair()
}

// mergeSort sorts the n nodes of the ring anchored at s. The second half
// is parked on a temporary sentinel that lives outside the allocator.
func mergeSort[T any](s *node[T], n int, less func(a, b T) bool) {
	if n < 2 {
		return
	}
	mid := n / 2
	cut := s.next
	for i := 0; i < mid; i++ {
		cut = cut.next
	}
	right := new(node[T])
	right.init()
	last := s.prev
	unlinkGroup(cut, last)
	right.linkGroupBefore(cut, last)

	mergeSort(s, mid, less)
	mergeSort(right, n-mid, less)
	mergeRings(s, right, less)
}

// mergeRings moves every node of the sorted ring src into the sorted ring
// dst. A src node only passes a dst node that is strictly greater.
func mergeRings[T any](dst, src *node[T], less func(a, b T) bool) {
	at := dst.next
	for src.next != src {
		for at != dst && !less(src.next.value, at.value) {
			at = at.next
		}
		first := src.next
		last := first
		if at == dst {
			last = src.prev
		} else {
			for last.next != src && less(last.next.value, at.value) {
				last = last.next
			}
		}
		unlinkGroup(first, last)
		at.linkGroupBefore(first, last)
	}
}
