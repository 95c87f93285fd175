package list

import (
	"go.uber.org/zap"
)

import (
	"github.com/AniTigerSib/STL-Containers/errors"
	"github.com/AniTigerSib/STL-Containers/logutil"
)

// Verify walks the ring and checks that every node's neighbours point back
// at it, that the number of data nodes equals Size() and that the cached
// first node is the sentinel's successor.
func (self *List[T]) Verify() error {
	log := logutil.Named("list")
	s := self.ring()
	if self.head != s.next {
		log.Error("error in Verify", zap.String("reason", "stale head"), zap.Int("size", self.size))
		return errors.Errorf("list: cached head is not the first node")
	}
	count := 0
	n := s
	for {
		if n.next.prev != n || n.prev.next != n {
			log.Error("error in Verify",
				zap.String("reason", "broken link"),
				zap.Int("position", count),
				zap.Int("size", self.size))
			return errors.Errorf("list: broken link at position %d", count)
		}
		n = n.next
		if n == s {
			break
		}
		count++
		if count > self.size {
			log.Error("error in Verify",
				zap.String("reason", "ring longer than size"),
				zap.Int("size", self.size))
			return errors.Errorf("list: more than %d nodes in the ring", self.size)
		}
	}
	if count != self.size {
		log.Error("error in Verify",
			zap.String("reason", "size mismatch"),
			zap.Int("counted", count),
			zap.Int("size", self.size))
		return errors.Errorf("list: size %d but %d nodes", self.size, count)
	}
	return nil
}
