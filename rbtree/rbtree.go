// Package rbtree is a red-black tree of keys with duplicate support. Leaves
// are a single black sentinel shared by every node, so rotations and the
// fixups never test for nil.
package rbtree

import (
	"golang.org/x/exp/constraints"
)

import (
	"github.com/AniTigerSib/STL-Containers/alloc"
	"github.com/AniTigerSib/STL-Containers/consts"
	"github.com/AniTigerSib/STL-Containers/slice"
)

type node[K any] struct {
	key    K
	color  consts.Color
	left   *node[K]
	right  *node[K]
	parent *node[K]
}

// Tree is a red-black tree ordered by less. Build one with New or NewFunc;
// the zero value is not usable.
type Tree[K any] struct {
	root  *node[K]
	leaf  *node[K]
	size  int
	less  func(a, b K) bool
	alloc alloc.Allocator[node[K]]
}

// New builds an empty tree ordered by <.
func New[K constraints.Ordered](opts ...alloc.Option) *Tree[K] {
	return NewFunc(func(a, b K) bool { return a < b }, opts...)
}

// NewFunc builds an empty tree ordered by less.
func NewFunc[K any](less func(a, b K) bool, opts ...alloc.Option) *Tree[K] {
	self := &Tree[K]{
		less:  less,
		alloc: alloc.Rebind[node[K]](alloc.NewStrategy(opts...)),
	}
	self.leaf = self.newNode()
	self.leaf.color = consts.Black
	self.root = self.leaf
	return self
}

func (self *Tree[K]) newNode() *node[K] {
	return &self.alloc.Allocate(1)[0]
}

func (self *Tree[K]) freeNode(n *node[K]) {
	block := slice.One(n)
	alloc.Destroy(block)
	self.alloc.Deallocate(block)
}

func (self *Tree[K]) Size() int {
	return self.size
}

func (self *Tree[K]) Empty() bool {
	return self.size == 0
}

// Height is the number of nodes on the longest root to leaf path. An empty
// tree has height 0.
func (self *Tree[K]) Height() int {
	return self.height(self.root)
}

func (self *Tree[K]) height(n *node[K]) int {
	if n == self.leaf {
		return 0
	}
	return max(self.height(n.left), self.height(n.right)) + 1
}

// Clear frees every node, children before parents.
func (self *Tree[K]) Clear() {
	self.clear(self.root)
	self.root = self.leaf
	self.leaf.parent = nil
	self.size = 0
}

func (self *Tree[K]) clear(n *node[K]) {
	if n == self.leaf {
		return
	}
	self.clear(n.left)
	self.clear(n.right)
	self.freeNode(n)
}
