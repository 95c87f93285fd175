package list

// node is one link of the ring. The sentinel is a node too; its value is
// never read.
type node[T any] struct {
	prev, next *node[T]
	value      T
}

// init makes n a ring of one.
func (n *node[T]) init() {
	n.prev = n
	n.next = n
}

// unlink takes n out of its ring and leaves it as a ring of one.
func (n *node[T]) unlink() {
	n.prev.next = n.next
	n.next.prev = n.prev
	n.init()
}

// linkBefore places the detached node n just before anchor.
func (anchor *node[T]) linkBefore(n *node[T]) {
	n.prev = anchor.prev
	n.next = anchor
	anchor.prev.next = n
	anchor.prev = n
}

// linkGroupBefore places the detached chain first..last just before
// anchor.
func (anchor *node[T]) linkGroupBefore(first, last *node[T]) {
	first.prev = anchor.prev
	last.next = anchor
	anchor.prev.next = first
	anchor.prev = last
}

// unlinkGroup cuts first..last out of their ring and closes them into a
// ring of their own.
func unlinkGroup[T any](first, last *node[T]) {
	first.prev.next = last.next
	last.next.prev = first.prev
	last.next = first
	first.prev = last
}

// reverse swaps n's own links.
func (n *node[T]) reverse() {
	n.prev, n.next = n.next, n.prev
}
