package list

// Splice moves every node of other before pos. other is left empty.
func (self *List[T]) Splice(pos Iterator[T], other *List[T]) {
	if other == self || other.Empty() {
		return
	}
	s := other.ring()
	first, last := s.next, s.prev
	unlinkGroup(first, last)
	pos.n.linkGroupBefore(first, last)
	self.size += other.size
	other.size = 0
	self.repair()
	other.repair()
}

// SpliceOne moves the node at it, which belongs to other, before pos.
// Moving a node to where it already is does nothing.
func (self *List[T]) SpliceOne(pos Iterator[T], other *List[T], it Iterator[T]) {
	if it.n == other.ring() || it.n == pos.n || it.n.next == pos.n {
		return
	}
	it.n.unlink()
	pos.n.linkBefore(it.n)
	if other != self {
		self.size++
		other.size--
	}
	self.repair()
	other.repair()
}

// SpliceRange moves [first, last), which belongs to other, before pos.
// pos must not lie inside the range. The relink is O(1); counting the
// moved nodes for the sizes is O(distance) when the lists differ.
func (self *List[T]) SpliceRange(pos Iterator[T], other *List[T], first, last Iterator[T]) {
	if first.Equal(last) || pos.Equal(last) {
		return
	}
	if other != self {
		n := distance(first.n, last.n)
		self.size += n
		other.size -= n
	}
	end := last.n.prev
	unlinkGroup(first.n, end)
	pos.n.linkGroupBefore(first.n, end)
	self.repair()
	other.repair()
}

func distance[T any](first, last *node[T]) int {
	n := 0
	for ; first != last; first = first.next {
		n++
	}
	return n
}
