package list

import "testing"

import (
	"runtime/debug"
)

import (
	"github.com/google/go-cmp/cmp"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

import (
	containers "github.com/AniTigerSib/STL-Containers"
	"github.com/AniTigerSib/STL-Containers/alloc"
	"github.com/AniTigerSib/STL-Containers/errors"
	"github.com/AniTigerSib/STL-Containers/logutil"
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

func (t *T) same(want []int, l *List[int]) {
	t.assert_nil(l.Verify())
	if diff := cmp.Diff(want, containers.Collect(l.All())); diff != "" {
		t.Log("\n" + string(debug.Stack()))
		t.Fatalf("contents differ (-want +got):\n%s", diff)
	}
	back := containers.Collect(l.Backward())
	for i, j := 0, len(back)-1; i < j; i, j = i+1, j-1 {
		back[i], back[j] = back[j], back[i]
	}
	if diff := cmp.Diff(want, back); diff != "" {
		t.Fatalf("backward walk differs (-want +got):\n%s", diff)
	}
}

func TestZeroValue(x *testing.T) {
	t := (*T)(x)
	var l List[int]
	t.assert("empty", l.Empty(), l.Size() == 0)
	t.assert("begin == end", l.Begin().Equal(l.End()))
	l.PushBack(2)
	l.PushFront(1)
	t.same([]int{1, 2}, &l)
	t.assert("front/back", l.Front() == 1, l.Back() == 2)
}

func TestConstruction(x *testing.T) {
	t := (*T)(x)
	t.same([]int{0, 0}, NewSize[int](2))
	t.same([]int{4, 4, 4}, NewFill(3, 4))
	l := From([]int{1, 2, 3})
	c := l.Clone()
	c.Begin().Set(9)
	t.same([]int{1, 2, 3}, l)
	t.same([]int{9, 2, 3}, c)

	m := l.Move()
	t.same([]int{1, 2, 3}, m)
	t.same([]int{}, l)

	l.Assign(c)
	t.same([]int{9, 2, 3}, l)
	t.same([]int{9, 2, 3}, c)
	m.MoveAssign(c)
	t.same([]int{9, 2, 3}, m)
	t.assert("moved from", c.Empty())
}

func TestPushPop(x *testing.T) {
	t := (*T)(x)
	l := New[int]()
	l.PopBack()
	l.PopFront()
	t.assert("pop on empty is a no-op", l.Empty())
	for i := 0; i < 5; i++ {
		l.PushBack(i)
	}
	l.PopFront()
	l.PopBack()
	t.same([]int{1, 2, 3}, l)
}

func TestInsertErase(x *testing.T) {
	t := (*T)(x)
	l := From([]int{1, 3})
	it := l.Insert(l.Begin().Next(), 2)
	t.assert("inserted", it.Value() == 2)
	t.same([]int{1, 2, 3}, l)

	it = l.InsertMany(l.End(), 4, 5)
	t.assert("after the last inserted", it.Equal(l.End()))
	l.InsertManyFront(-1, 0)
	l.InsertManyBack(6)
	t.same([]int{-1, 0, 1, 2, 3, 4, 5, 6}, l)

	it = l.Erase(l.Begin())
	t.assert("next after erase", it.Value() == 0)
	t.assert("head repaired", l.Front() == 0)

	it = l.Erase(l.End())
	t.assert("erase end is a no-op", it.Equal(l.End()), l.Size() == 7)

	first := l.Begin().Next()
	last := first.Next().Next().Next()
	it = l.EraseRange(first, last)
	t.assert("range returns last", it.Equal(last), it.Value() == 4)
	t.same([]int{0, 4, 5, 6}, l)
	l.Clear()
	t.same([]int{}, l)
}

func TestIteratorWalk(x *testing.T) {
	t := (*T)(x)
	l := From([]int{1, 2, 3})
	sum := 0
	for it := l.CBegin(); !it.Equal(l.CEnd()); it = it.Next() {
		sum += it.Value()
	}
	t.assert("sum", sum == 6)
	t.assert("end wraps", l.End().Next().Equal(l.Begin()), l.Begin().Prev().Equal(l.End()))
	*l.Begin().Ref() = 7
	got := []int{}
	t.assert_nil(containers.DoItem(l.Items(), func(v int) error {
		got = append(got, v)
		return nil
	}))
	require.Equal(x, []int{7, 2, 3}, got)
}

func TestSplice(x *testing.T) {
	t := (*T)(x)
	a := From([]int{1, 5})
	b := From([]int{2, 3, 4})
	a.Splice(a.Begin().Next(), b)
	t.same([]int{1, 2, 3, 4, 5}, a)
	t.same([]int{}, b)
	a.Splice(a.Begin(), a)
	t.same([]int{1, 2, 3, 4, 5}, a)
}

func TestSpliceOne(x *testing.T) {
	t := (*T)(x)
	a := From([]int{1, 2})
	b := From([]int{3, 4})
	a.SpliceOne(a.Begin(), b, b.Begin().Next())
	t.same([]int{4, 1, 2}, a)
	t.same([]int{3}, b)
	a.SpliceOne(a.End(), a, a.Begin())
	t.same([]int{1, 2, 4}, a)
	a.SpliceOne(a.Begin().Next(), a, a.Begin())
	t.same([]int{1, 2, 4}, a)
}

func TestSpliceRange(x *testing.T) {
	t := (*T)(x)
	a := From([]int{1, 2, 3, 4, 5})
	b := From([]int{10})
	b.SpliceRange(b.Begin(), a, a.Begin().Next(), a.Begin().Next().Next().Next())
	t.same([]int{2, 3, 10}, b)
	t.same([]int{1, 4, 5}, a)
	total := a.Size() + b.Size()
	a.SpliceRange(a.Begin(), a, a.Begin().Next(), a.End())
	t.same([]int{4, 5, 1}, a)
	t.assert("count conserved", a.Size()+b.Size() == total)
}

func TestUniqueExample(x *testing.T) {
	t := (*T)(x)
	l := From([]int{1, 1, 2, 2, 2, 3, 4, 4, 5, 5, 5})
	Unique(l)
	t.same([]int{1, 2, 3, 4, 5}, l)
}

func TestReverse(x *testing.T) {
	t := (*T)(x)
	l := From([]int{1, 2, 3, 4})
	l.Reverse()
	t.same([]int{4, 3, 2, 1}, l)
	e := New[int]()
	e.Reverse()
	t.same([]int{}, e)
}

func TestMerge(x *testing.T) {
	t := (*T)(x)
	a := From([]int{1, 3, 5, 7})
	b := From([]int{0, 2, 3, 8, 9})
	Merge(a, b)
	t.same([]int{0, 1, 2, 3, 3, 5, 7, 8, 9}, a)
	t.same([]int{}, b)
}

type pair struct {
	key, seq int
}

func TestMergeKeepsDestinationFirst(x *testing.T) {
	t := (*T)(x)
	a := From([]pair{{1, 0}, {2, 0}})
	b := From([]pair{{1, 1}, {2, 1}})
	a.MergeFunc(b, func(x, y pair) bool { return x.key < y.key })
	require.Equal(x, []pair{{1, 0}, {1, 1}, {2, 0}, {2, 1}}, containers.Collect(a.All()))
	t.assert_nil(a.Verify(), b.Verify())
}

func TestSortStable(x *testing.T) {
	t := (*T)(x)
	l := From([]pair{{3, 0}, {1, 0}, {3, 1}, {2, 0}, {1, 1}, {3, 2}})
	l.SortFunc(func(x, y pair) bool { return x.key < y.key })
	require.Equal(x,
		[]pair{{1, 0}, {1, 1}, {2, 0}, {3, 0}, {3, 1}, {3, 2}},
		containers.Collect(l.All()))
	t.assert_nil(l.Verify())
}

func TestSortDoesNotAllocate(x *testing.T) {
	t := (*T)(x)
	s := alloc.NewStrategy(alloc.WithBudget(6))
	l := New[int](alloc.Use(s))
	l.InsertManyBack(5, 4, 3, 2, 1)
	t.assert("budget spent", s.Used() == 6)
	Sort(l)
	t.same([]int{1, 2, 3, 4, 5}, l)
	t.assert("budget unchanged", s.Used() == 6)
}

func TestInsertManyAllocationFailure(x *testing.T) {
	t := (*T)(x)
	s := alloc.NewStrategy(alloc.WithBudget(4))
	l := New[int](alloc.Use(s))
	l.PushBack(1)
	func() {
		defer func() {
			err, _ := recover().(error)
			t.assert("allocation failure", errors.IsAllocation(err))
		}()
		l.InsertManyBack(2, 3, 4)
	}()
	t.same([]int{1}, l)
	t.assert("partial nodes freed", s.Used() == 2)
	l.Release()
	t.assert("sentinel freed", s.Used() == 0)
}

func TestSwap(x *testing.T) {
	t := (*T)(x)
	a := From([]int{1, 2})
	b := From([]int{3})
	a.Swap(b)
	t.same([]int{3}, a)
	t.same([]int{1, 2}, b)
}

func TestVerifyLogs(x *testing.T) {
	t := (*T)(x)
	core, logs := observer.New(zap.ErrorLevel)
	prev := logutil.SetGlobalLogger(zap.New(core))
	defer logutil.SetGlobalLogger(prev)

	l := From([]int{1, 2, 3})
	l.size = 4
	t.assert("size mismatch detected", l.Verify() != nil)
	t.assert("logged", logs.Len() == 1)
	l.size = 3
	l.head = l.sentinel
	t.assert("stale head detected", l.Verify() != nil)
}

func TestSortMatchesModel(x *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())
	properties.Property("sort orders and keeps every value", prop.ForAll(
		func(items []int) bool {
			l := From(items)
			Sort(l)
			if l.Verify() != nil || l.Size() != len(items) {
				return false
			}
			counts := map[int]int{}
			for _, v := range items {
				counts[v]++
			}
			prev, first := 0, true
			for v := range l.All() {
				if !first && v < prev {
					return false
				}
				prev, first = v, false
				counts[v]--
			}
			for _, c := range counts {
				if c != 0 {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(-50, 50)),
	))
	properties.Property("sorting a sorted list changes nothing", prop.ForAll(
		func(items []int) bool {
			l := From(items)
			Sort(l)
			once := containers.Collect(l.All())
			Sort(l)
			return l.Verify() == nil && cmp.Equal(once, containers.Collect(l.All()))
		},
		gen.SliceOf(gen.IntRange(-50, 50)),
	))
	properties.Property("merge of sorted lists is sorted and empties src", prop.ForAll(
		func(a, b []int) bool {
			dst, src := From(a), From(b)
			Sort(dst)
			Sort(src)
			Merge(dst, src)
			if !src.Empty() || src.Verify() != nil || dst.Verify() != nil {
				return false
			}
			if dst.Size() != len(a)+len(b) {
				return false
			}
			merged := containers.Collect(dst.All())
			for i := 1; i < len(merged); i++ {
				if merged[i] < merged[i-1] {
					return false
				}
			}
			return len(merged) == len(a)+len(b)
		},
		gen.SliceOf(gen.IntRange(-50, 50)),
		gen.SliceOf(gen.IntRange(-50, 50)),
	))
	properties.Property("splice conserves the element count", prop.ForAll(
		func(a, b []int, cut int) bool {
			la, lb := From(a), From(b)
			total := len(a) + len(b)
			first := lb.Begin()
			for i := 0; i < cut && !first.Equal(lb.End()); i++ {
				first = first.Next()
			}
			la.SpliceRange(la.Begin(), lb, first, lb.End())
			return la.Size()+lb.Size() == total && la.Verify() == nil && lb.Verify() == nil
		},
		gen.SliceOf(gen.Int()),
		gen.SliceOf(gen.Int()),
		gen.IntRange(0, 10),
	))
	properties.TestingRun(x)
}
