package rbtree

import (
	"github.com/AniTigerSib/STL-Containers/consts"
)

// Remove deletes one key equal to k. It reports whether one was found.
func (self *Tree[K]) Remove(k K) bool {
	z := self.search(k)
	if z == self.leaf {
		return false
	}
	self.delete(z)
	self.freeNode(z)
	self.size--
	return true
}

// delete unhooks z. A node with two children is replaced by its in-order
// successor, which keeps z's color.
func (self *Tree[K]) delete(z *node[K]) {
	y := z
	color := y.color
	var x *node[K]
	if z.left == self.leaf {
		x = z.right
		self.transplant(z, z.right)
	} else if z.right == self.leaf {
		x = z.left
		self.transplant(z, z.left)
	} else {
		y = self.min(z.right)
		color = y.color
		x = y.right
		if y.parent == z {
			x.parent = y
		} else {
			self.transplant(y, y.right)
			y.right = z.right
			y.right.parent = y
		}
		self.transplant(z, y)
		y.left = z.left
		y.left.parent = y
		y.color = z.color
	}
	if color == consts.Black {
		self.deleteFixup(x)
	}
	self.leaf.parent = nil
}

func (self *Tree[K]) deleteFixup(x *node[K]) {
	for x != self.root && x.color == consts.Black {
		if x == x.parent.left {
			w := x.parent.right
			if w.color == consts.Red {
				w.color = consts.Black
				x.parent.color = consts.Red
				self.leftRotate(x.parent)
				w = x.parent.right
			}
			if w.left.color == consts.Black && w.right.color == consts.Black {
				w.color = consts.Red
				x = x.parent
			} else {
				if w.right.color == consts.Black {
					w.left.color = consts.Black
					w.color = consts.Red
					self.rightRotate(w)
					w = x.parent.right
				}
				w.color = x.parent.color
				x.parent.color = consts.Black
				w.right.color = consts.Black
				self.leftRotate(x.parent)
				x = self.root
			}
		} else {
			w := x.parent.left
			if w.color == consts.Red {
				w.color = consts.Black
				x.parent.color = consts.Red
				self.rightRotate(x.parent)
				w = x.parent.left
			}
			if w.right.color == consts.Black && w.left.color == consts.Black {
				w.color = consts.Red
				x = x.parent
			} else {
				if w.left.color == consts.Black {
					w.right.color = consts.Black
					w.color = consts.Red
					self.leftRotate(w)
					w = x.parent.left
				}
				w.color = x.parent.color
				x.parent.color = consts.Black
				w.left.color = consts.Black
				self.rightRotate(x.parent)
				x = self.root
			}
		}
	}
	x.color = consts.Black
}
