package rbtree

func (self *Tree[K]) leftRotate(x *node[K]) {
	y := x.right
	x.right = y.left
	if y.left != self.leaf {
		y.left.parent = x
	}
	y.parent = x.parent
	if x.parent == self.leaf {
		self.root = y
	} else if x == x.parent.left {
		x.parent.left = y
	} else {
		x.parent.right = y
	}
	y.left = x
	x.parent = y
}

func (self *Tree[K]) rightRotate(y *node[K]) {
	x := y.left
	y.left = x.right
	if x.right != self.leaf {
		x.right.parent = y
	}
	x.parent = y.parent
	if y.parent == self.leaf {
		self.root = x
	} else if y == y.parent.right {
		y.parent.right = x
	} else {
		y.parent.left = x
	}
	x.right = y
	y.parent = x
}

// transplant puts v where u hangs. v may be the sentinel, whose parent is
// then set so the delete fixup can climb from it.
func (self *Tree[K]) transplant(u, v *node[K]) {
	if u.parent == self.leaf {
		self.root = v
	} else if u == u.parent.left {
		u.parent.left = v
	} else {
		u.parent.right = v
	}
	v.parent = u.parent
}
