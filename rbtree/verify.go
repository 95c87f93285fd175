package rbtree

import (
	"fmt"
)

import (
	"go.uber.org/zap"
)

import (
	"github.com/AniTigerSib/STL-Containers/consts"
	"github.com/AniTigerSib/STL-Containers/errors"
	"github.com/AniTigerSib/STL-Containers/logutil"
)

// Verify checks the red-black properties (black root and sentinel, no red
// node with a red child, one black height on every path), the key order,
// the parent links and the node count.
func (self *Tree[K]) Verify() error {
	log := logutil.Named("rbtree")
	if self.leaf.color != consts.Black {
		log.Error("error in Verify", zap.String("reason", "red sentinel"))
		return errors.Errorf("rbtree: sentinel is red")
	}
	if self.root.color != consts.Black {
		log.Error("error in Verify", zap.String("reason", "red root"))
		return errors.Errorf("rbtree: root is red")
	}
	if self.root != self.leaf && self.root.parent != self.leaf {
		log.Error("error in Verify", zap.String("reason", "root has a parent"))
		return errors.Errorf("rbtree: root has a parent")
	}
	count := 0
	if _, err := self.verify(self.root, &count); err != nil {
		return err
	}
	if count != self.size {
		log.Error("error in Verify",
			zap.String("reason", "size mismatch"),
			zap.Int("counted", count),
			zap.Int("size", self.size))
		return errors.Errorf("rbtree: size %d but %d nodes", self.size, count)
	}
	for n := self.min(self.root); n != self.leaf; n = self.next(n) {
		if next := self.next(n); next != self.leaf && self.less(next.key, n.key) {
			log.Error("error in Verify",
				zap.String("reason", "in-order walk out of order"),
				zap.String("key", fmt.Sprint(n.key)))
			return errors.Errorf("rbtree: %v follows %v", next.key, n.key)
		}
	}
	return nil
}

// verify checks the subtree at n and returns its black height.
func (self *Tree[K]) verify(n *node[K], count *int) (int, error) {
	if n == self.leaf {
		return 1, nil
	}
	*count++
	log := logutil.Named("rbtree")
	key := zap.String("key", fmt.Sprint(n.key))
	for _, c := range []*node[K]{n.left, n.right} {
		if c == self.leaf {
			continue
		}
		if c.parent != n {
			log.Error("error in verify", zap.String("reason", "bad parent link"), key)
			return 0, errors.Errorf("rbtree: child of %v does not point back at it", n.key)
		}
		if n.color == consts.Red && c.color == consts.Red {
			log.Error("error in verify", zap.String("reason", "red red edge"), key)
			return 0, errors.Errorf("rbtree: red node %v has a red child", n.key)
		}
	}
	if n.left != self.leaf && self.less(n.key, n.left.key) {
		log.Error("error in verify", zap.String("reason", "out of order"), key)
		return 0, errors.Errorf("rbtree: left child of %v is greater", n.key)
	}
	if n.right != self.leaf && self.less(n.right.key, n.key) {
		log.Error("error in verify", zap.String("reason", "out of order"), key)
		return 0, errors.Errorf("rbtree: right child of %v is smaller", n.key)
	}
	left, err := self.verify(n.left, count)
	if err != nil {
		return 0, err
	}
	right, err := self.verify(n.right, count)
	if err != nil {
		return 0, err
	}
	if left != right {
		log.Error("error in verify",
			zap.String("reason", "unequal black height"),
			key,
			zap.Int("left", left),
			zap.Int("right", right))
		return 0, errors.Errorf("rbtree: black heights %d and %d under %v", left, right, n.key)
	}
	if n.color == consts.Black {
		left++
	}
	return left, nil
}
