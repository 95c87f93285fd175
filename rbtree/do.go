package rbtree

import (
	"iter"
)

// Ascend calls do on every key in sorted order until do returns false.
func (self *Tree[K]) Ascend(do func(K) bool) {
	for n := self.min(self.root); n != self.leaf; n = self.next(n) {
		if !do(n.key) {
			return
		}
	}
}

// Descend calls do on every key in reverse sorted order until do returns
// false.
func (self *Tree[K]) Descend(do func(K) bool) {
	for n := self.max(self.root); n != self.leaf; n = self.prev(n) {
		if !do(n.key) {
			return
		}
	}
}

// Preorder visits each node before its children.
func (self *Tree[K]) Preorder(do func(K) bool) {
	self.preorder(self.root, do)
}

func (self *Tree[K]) preorder(n *node[K], do func(K) bool) bool {
	if n == self.leaf {
		return true
	}
	return do(n.key) && self.preorder(n.left, do) && self.preorder(n.right, do)
}

// Postorder visits each node after its children.
func (self *Tree[K]) Postorder(do func(K) bool) {
	self.postorder(self.root, do)
}

func (self *Tree[K]) postorder(n *node[K], do func(K) bool) bool {
	if n == self.leaf {
		return true
	}
	return self.postorder(n.left, do) && self.postorder(n.right, do) && do(n.key)
}

// All yields the keys in sorted order.
func (self *Tree[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		self.Ascend(yield)
	}
}
