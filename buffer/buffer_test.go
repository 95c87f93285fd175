package buffer

import "testing"

import (
	"runtime/debug"
)

import (
	"github.com/google/go-cmp/cmp"
)

import (
	"github.com/AniTigerSib/STL-Containers/alloc"
	"github.com/AniTigerSib/STL-Containers/errors"
)

type T testing.T

func (t *T) assert(msg string, oks ...bool) {
	for _, ok := range oks {
		if !ok {
			t.Log("\n" + string(debug.Stack()))
			t.Error(msg)
			t.Fatal("assert failed")
		}
	}
}

func (t *T) assert_nil(errors ...error) {
	for _, err := range errors {
		if err != nil {
			t.Log("\n" + string(debug.Stack()))
			t.Fatal(err)
		}
	}
}

func (t *T) same(want, got []int) {
	if diff := cmp.Diff(want, got); diff != "" {
		t.Log("\n" + string(debug.Stack()))
		t.Fatalf("contents differ (-want +got):\n%s", diff)
	}
}

func fill(b *Buffer[int], n int) {
	for i := 0; i < n; i++ {
		b.Grow()
		b.Construct(i)
	}
}

func TestGrowDoubles(x *testing.T) {
	t := (*T)(x)
	var b Buffer[int]
	caps := []int{}
	for i := 0; i < 9; i++ {
		b.Grow()
		b.Construct(i)
		caps = append(caps, b.Cap())
	}
	t.same([]int{1, 2, 4, 4, 8, 8, 8, 8, 16}, caps)
	t.same([]int{0, 1, 2, 3, 4, 5, 6, 7, 8}, b.Slots())
	t.assert_nil(b.Verify())
}

func TestReserveExact(x *testing.T) {
	t := (*T)(x)
	var b Buffer[int]
	fill(&b, 3)
	b.Reserve(2)
	t.assert("smaller reserve is a no-op", b.Cap() == 4)
	b.Reserve(10)
	t.assert("exact growth", b.Cap() == 10, b.Len() == 3)
	t.same([]int{0, 1, 2}, b.Slots())
}

func TestShrinkToFit(x *testing.T) {
	t := (*T)(x)
	var b Buffer[int]
	fill(&b, 5)
	b.ShrinkToFit()
	t.assert("cap == len", b.Cap() == 5)
	b.Clear()
	b.ShrinkToFit()
	t.assert("empty shrink frees", b.Cap() == 0, b.Block() == nil)
}

func TestReserveFailureKeepsState(x *testing.T) {
	t := (*T)(x)
	s := alloc.NewStrategy(alloc.WithBudget(6))
	var b Buffer[int]
	b.Init(alloc.Rebind[int](s))
	fill(&b, 4)
	old := b.Block()
	func() {
		defer func() {
			err, _ := recover().(error)
			t.assert("allocation failure", errors.IsAllocation(err))
		}()
		b.Reserve(8)
	}()
	t.assert("storage untouched", &old[0] == &b.Block()[0], b.Cap() == 4, b.Len() == 4)
	t.same([]int{0, 1, 2, 3}, b.Slots())
	t.assert("budget unchanged", s.Used() == 4)
}

func TestSwapAndTake(x *testing.T) {
	t := (*T)(x)
	var a, b Buffer[int]
	fill(&a, 3)
	fill(&b, 1)
	a.Swap(&b)
	t.same([]int{0}, a.Slots())
	t.same([]int{0, 1, 2}, b.Slots())
	c := b.Take()
	t.assert("taken", b.Len() == 0, b.Cap() == 0, c.Len() == 3)
}

func TestDestroyFrom(x *testing.T) {
	t := (*T)(x)
	var b Buffer[int]
	fill(&b, 5)
	b.DestroyFrom(2)
	t.same([]int{0, 1}, b.Slots())
	t.assert("destroyed slots zeroed", b.Block()[3] == 0, b.Block()[4] == 0)
	b.ConstructAt(2, 9)
	t.same([]int{0, 1, 9}, b.Slots())
}

func TestIterator(x *testing.T) {
	t := (*T)(x)
	var b Buffer[int]
	fill(&b, 4)
	begin := NewIterator(b.Block(), 0)
	end := NewIterator(b.Block(), b.Len())
	t.assert("distance", end.Diff(begin) == 4)
	t.assert("ordering", begin.Less(end), end.Greater(begin), begin.LessEq(begin), end.GreaterEq(end))
	it := begin.Add(2)
	t.assert("value", it.Value() == 2, it.At(1) == 3, it.Prev().Value() == 1)
	it.Set(7)
	t.assert("set", b.Slots()[2] == 7, *it.Ref() == 7)
	t.assert("equal", it.Sub(2).Equal(begin), it.Next().Next().Equal(end))
	c := it.Const()
	t.assert("const view", c.Value() == 7, c.Index() == 2, c.Next().Value() == 3)
	t.assert("owns", it.Owns(b.Block()))
	b.Reserve(100)
	t.assert("stale after reallocation", !it.Owns(b.Block()))
}

func TestOwnsComparesAddresses(x *testing.T) {
	t := (*T)(x)
	var b Buffer[int]
	b.Init(alloc.Rebind[int](alloc.NewStrategy(alloc.WithPool(4))))
	fill(&b, 4)
	it := NewIterator(b.Block(), 1)
	b.ShrinkToFit()
	b.Reserve(8)
	t.assert("moved storage is detected", !it.Owns(b.Block()))

	var z Buffer[struct{}]
	z.Grow()
	z.Construct(struct{}{})
	zit := NewIterator(z.Block(), 0)
	z.Reserve(4)
	t.assert("zero-size blocks share an address", zit.Owns(z.Block()))
}
