package vector

import (
	"github.com/AniTigerSib/STL-Containers/buffer"
	"github.com/AniTigerSib/STL-Containers/errors"
)

// position checks that pos was taken from the current block and that its
// offset lies in [0, limit]. It returns the offset.
func (self *Vector[T]) position(op string, pos buffer.Iterator[T], limit int) (int, error) {
	if !pos.Owns(self.buf.Block()) {
		return 0, errors.OutOfRangef("vector.%s: iterator does not belong to this vector", op)
	}
	i := pos.Index()
	if i < 0 || i > limit {
		return 0, errors.OutOfRangef("vector.%s: position %d outside [0, %d]", op, i, limit)
	}
	return i, nil
}

// Insert places v before pos and returns an iterator to it. The storage is
// grown before the insertion slot is recomputed, so pos may be invalidated
// by the call but the returned iterator is valid.
func (self *Vector[T]) Insert(pos buffer.Iterator[T], v T) (buffer.Iterator[T], error) {
	i, err := self.position("Insert", pos, self.Size())
	if err != nil {
		return self.End(), err
	}
	self.buf.Grow()
	size := self.Size()
	if i == size {
		self.buf.Construct(v)
		return buffer.NewIterator(self.buf.Block(), i), nil
	}
	block := self.buf.Block()
	self.buf.Construct(block[size-1])
	for j := size - 1; j > i; j-- {
		block[j] = block[j-1]
	}
	block[i] = v
	return buffer.NewIterator(block, i), nil
}

// InsertMany places vs before pos, in order, and returns the position just
// after the last inserted value.
func (self *Vector[T]) InsertMany(pos buffer.Iterator[T], vs ...T) (buffer.Iterator[T], error) {
	i, err := self.position("InsertMany", pos, self.Size())
	if err != nil {
		return self.End(), err
	}
	k := len(vs)
	if k == 0 {
		return buffer.NewIterator(self.buf.Block(), i), nil
	}
	self.growFor(k)
	block := self.buf.Block()
	for j := self.Size() - 1; j >= i; j-- {
		self.buf.ConstructAt(j+k, block[j])
	}
	for j, v := range vs {
		self.buf.ConstructAt(i+j, v)
	}
	return buffer.NewIterator(block, i+k), nil
}

// InsertManyBack appends vs in order.
func (self *Vector[T]) InsertManyBack(vs ...T) {
	self.growFor(len(vs))
	for _, v := range vs {
		self.buf.Construct(v)
	}
}

// Erase removes the element at pos and returns an iterator to the element
// that followed it. Erasing End() is an out of range error.
func (self *Vector[T]) Erase(pos buffer.Iterator[T]) (buffer.Iterator[T], error) {
	i, err := self.position("Erase", pos, self.Size()-1)
	if err != nil {
		return self.End(), err
	}
	block := self.buf.Block()
	copy(block[i:], block[i+1:self.Size()])
	self.buf.DestroyFrom(self.Size() - 1)
	return buffer.NewIterator(block, i), nil
}

// EraseRange removes [first, last) and returns an iterator to the element
// that followed the range.
func (self *Vector[T]) EraseRange(first, last buffer.Iterator[T]) (buffer.Iterator[T], error) {
	i, err := self.position("EraseRange", first, self.Size())
	if err != nil {
		return self.End(), err
	}
	j, err := self.position("EraseRange", last, self.Size())
	if err != nil {
		return self.End(), err
	}
	if j < i {
		return self.End(), errors.OutOfRangef("vector.EraseRange: first %d after last %d", i, j)
	}
	if i == j {
		return first, nil
	}
	block := self.buf.Block()
	n := copy(block[i:], block[j:self.Size()])
	self.buf.DestroyFrom(i + n)
	return buffer.NewIterator(block, i), nil
}
