package buffer

import (
	"github.com/AniTigerSib/STL-Containers/alloc"
	"github.com/AniTigerSib/STL-Containers/consts"
	"github.com/AniTigerSib/STL-Containers/errors"
)

// Buffer is the storage triple behind vector and array: block holds every
// allocated slot (its length is the capacity), the first finish slots hold
// constructed elements. 0 <= finish <= len(block) always.
type Buffer[T any] struct {
	block  []T
	finish int
	alloc  alloc.Allocator[T]
}

// Init sets the allocator used for every block. A nil allocator means the
// Go heap. Init must be called before any storage is created.
func (self *Buffer[T]) Init(a alloc.Allocator[T]) {
	if a == nil {
		a = alloc.Heap[T]{}
	}
	self.alloc = a
}

// Allocator is the allocator blocks are drawn from.
func (self *Buffer[T]) Allocator() alloc.Allocator[T] {
	return self.allocator()
}

func (self *Buffer[T]) allocator() alloc.Allocator[T] {
	if self.alloc == nil {
		self.alloc = alloc.Heap[T]{}
	}
	return self.alloc
}

// Allocate obtains n raw slots. It does not touch the buffer.
func (self *Buffer[T]) Allocate(n int) []T {
	return self.allocator().Allocate(n)
}

// Deallocate releases a block previously returned by Allocate.
func (self *Buffer[T]) Deallocate(block []T) {
	if len(block) == 0 {
		return
	}
	self.allocator().Deallocate(block)
}

// CreateStorage gives an empty buffer exactly n slots. The buffer must not
// own storage yet.
func (self *Buffer[T]) CreateStorage(n int) {
	self.block = self.Allocate(n)
	self.finish = 0
}

func (self *Buffer[T]) Len() int {
	return self.finish
}

func (self *Buffer[T]) Cap() int {
	return len(self.block)
}

// Slots is the constructed prefix of the block.
func (self *Buffer[T]) Slots() []T {
	return self.block[:self.finish:self.finish]
}

// Block is the whole allocated block, constructed or not.
func (self *Buffer[T]) Block() []T {
	return self.block
}

// Reserve relocates into exactly n slots when n exceeds the capacity. The
// old block is released only after the elements have been copied, so an
// allocation failure leaves the buffer as it was.
func (self *Buffer[T]) Reserve(n int) {
	if n <= self.Cap() {
		return
	}
	self.relocate(n)
}

// ShrinkToFit relocates into exactly Len() slots, or frees the block when
// the buffer is empty.
func (self *Buffer[T]) ShrinkToFit() {
	if self.finish == self.Cap() {
		return
	}
	if self.finish == 0 {
		self.Release()
		return
	}
	self.relocate(self.finish)
}

func (self *Buffer[T]) relocate(n int) {
	a := self.allocator()
	guard := alloc.NewGuard(a, a.Allocate(n))
	defer guard.Release()
	copy(guard.Block(), self.block[:self.finish])
	old := self.block
	self.block = guard.Commit()
	alloc.Destroy(old)
	self.Deallocate(old)
}

// Grow makes room for at least one more element using the doubling policy.
func (self *Buffer[T]) Grow() {
	if self.finish < self.Cap() {
		return
	}
	if self.Cap() == 0 {
		self.Reserve(consts.InitialCapacity)
		return
	}
	if self.Cap() > alloc.MaxSize[T]()/consts.GrowthFactor {
		self.Reserve(alloc.MaxSize[T]())
		return
	}
	self.Reserve(self.Cap() * consts.GrowthFactor)
}

// Construct places v in the first unconstructed slot. The caller ensures
// there is room.
func (self *Buffer[T]) Construct(v T) {
	self.block[self.finish] = v
	self.finish++
}

// ConstructAt copies v into slot i and extends finish to cover it.
func (self *Buffer[T]) ConstructAt(i int, v T) {
	self.block[i] = v
	if i >= self.finish {
		self.finish = i + 1
	}
}

// DestroyFrom destroys every element from i on, leaving i elements.
func (self *Buffer[T]) DestroyFrom(i int) {
	if i >= self.finish {
		return
	}
	alloc.Destroy(self.block[i:self.finish])
	self.finish = i
}

// Clear destroys all elements and keeps the block.
func (self *Buffer[T]) Clear() {
	self.DestroyFrom(0)
}

// Release destroys all elements and frees the block.
func (self *Buffer[T]) Release() {
	self.Clear()
	old := self.block
	self.block = nil
	self.Deallocate(old)
}

// Swap exchanges storage with other. The allocators stay where they are,
// so both buffers must draw from the same strategy.
func (self *Buffer[T]) Swap(other *Buffer[T]) {
	self.block, other.block = other.block, self.block
	self.finish, other.finish = other.finish, self.finish
}

// Take moves the storage out of self into a new buffer and leaves self
// empty.
func (self *Buffer[T]) Take() Buffer[T] {
	b := Buffer[T]{block: self.block, finish: self.finish, alloc: self.alloc}
	self.block = nil
	self.finish = 0
	return b
}

// Verify checks the storage triple.
func (self *Buffer[T]) Verify() error {
	if self.finish < 0 || self.finish > len(self.block) {
		return errors.Errorf("buffer: finish %d outside [0, %d]", self.finish, len(self.block))
	}
	return nil
}
