package rbtree

import (
	"github.com/AniTigerSib/STL-Containers/consts"
)

// Insert adds k. Keys equal to k already in the tree stay before it.
func (self *Tree[K]) Insert(k K) {
	z := self.newNode()
	y := self.leaf
	x := self.root
	for x != self.leaf {
		y = x
		if self.less(k, x.key) {
			x = x.left
		} else {
			x = x.right
		}
	}
	z.key = k
	z.color = consts.Red
	z.left = self.leaf
	z.right = self.leaf
	z.parent = y
	if y == self.leaf {
		self.root = z
	} else if self.less(k, y.key) {
		y.left = z
	} else {
		y.right = z
	}
	self.insertFixup(z)
	self.size++
}

func (self *Tree[K]) insertFixup(z *node[K]) {
	for z.parent.color == consts.Red {
		if z.parent == z.parent.parent.left {
			uncle := z.parent.parent.right
			if uncle.color == consts.Red {
				z.parent.color = consts.Black
				uncle.color = consts.Black
				z.parent.parent.color = consts.Red
				z = z.parent.parent
			} else {
				if z == z.parent.right {
					z = z.parent
					self.leftRotate(z)
				}
				z.parent.color = consts.Black
				z.parent.parent.color = consts.Red
				self.rightRotate(z.parent.parent)
			}
		} else {
			uncle := z.parent.parent.left
			if uncle.color == consts.Red {
				z.parent.color = consts.Black
				uncle.color = consts.Black
				z.parent.parent.color = consts.Red
				z = z.parent.parent
			} else {
				if z == z.parent.left {
					z = z.parent
					self.rightRotate(z)
				}
				z.parent.color = consts.Black
				z.parent.parent.color = consts.Red
				self.leftRotate(z.parent.parent)
			}
		}
	}
	self.root.color = consts.Black
}
