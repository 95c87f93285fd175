package rbtree

// Search returns a key equal to k.
func (self *Tree[K]) Search(k K) (K, bool) {
	n := self.search(k)
	if n == self.leaf {
		var zero K
		return zero, false
	}
	return n.key, true
}

func (self *Tree[K]) Contains(k K) bool {
	return self.search(k) != self.leaf
}

// Min is the smallest key.
func (self *Tree[K]) Min() (K, bool) {
	n := self.min(self.root)
	if n == self.leaf {
		var zero K
		return zero, false
	}
	return n.key, true
}

// Max is the largest key.
func (self *Tree[K]) Max() (K, bool) {
	n := self.max(self.root)
	if n == self.leaf {
		var zero K
		return zero, false
	}
	return n.key, true
}

func (self *Tree[K]) search(k K) *node[K] {
	n := self.root
	for n != self.leaf {
		if self.less(k, n.key) {
			n = n.left
		} else if self.less(n.key, k) {
			n = n.right
		} else {
			return n
		}
	}
	return self.leaf
}

func (self *Tree[K]) min(n *node[K]) *node[K] {
	if n == self.leaf {
		return n
	}
	for n.left != self.leaf {
		n = n.left
	}
	return n
}

func (self *Tree[K]) max(n *node[K]) *node[K] {
	if n == self.leaf {
		return n
	}
	for n.right != self.leaf {
		n = n.right
	}
	return n
}

// next is the in-order successor of n, or the sentinel.
func (self *Tree[K]) next(n *node[K]) *node[K] {
	if n.right != self.leaf {
		return self.min(n.right)
	}
	p := n.parent
	for p != self.leaf && n == p.right {
		n = p
		p = p.parent
	}
	return p
}

// prev is the in-order predecessor of n, or the sentinel.
func (self *Tree[K]) prev(n *node[K]) *node[K] {
	if n.left != self.leaf {
		return self.max(n.left)
	}
	p := n.parent
	for p != self.leaf && n == p.left {
		n = p
		p = p.parent
	}
	return p
}
