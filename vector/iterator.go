package vector

import (
	"iter"
)

import (
	containers "github.com/AniTigerSib/STL-Containers"
	"github.com/AniTigerSib/STL-Containers/buffer"
)

func (self *Vector[T]) Begin() buffer.Iterator[T] {
	return buffer.NewIterator(self.buf.Block(), 0)
}

func (self *Vector[T]) End() buffer.Iterator[T] {
	return buffer.NewIterator(self.buf.Block(), self.Size())
}

func (self *Vector[T]) CBegin() buffer.ConstIterator[T] {
	return self.Begin().Const()
}

func (self *Vector[T]) CEnd() buffer.ConstIterator[T] {
	return self.End().Const()
}

// All yields the elements front to back.
func (self *Vector[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range self.buf.Slots() {
			if !yield(item) {
				return
			}
		}
	}
}

// Backward yields the elements back to front.
func (self *Vector[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		slots := self.buf.Slots()
		for i := len(slots) - 1; i >= 0; i-- {
			if !yield(slots[i]) {
				return
			}
		}
	}
}

func (self *Vector[T]) Items() containers.ItemIterator[T] {
	var items containers.ItemIterator[T]
	i := 0
	items = func() (T, containers.ItemIterator[T]) {
		if i >= self.Size() {
			var zero T
			return zero, nil
		}
		item := self.Index(i)
		i++
		return item, items
	}
	return items
}
