package array

import "testing"

import (
	"runtime/debug"
)

import (
	"github.com/stretchr/testify/require"
)

import (
	containers "github.com/AniTigerSib/STL-Containers"
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

func TestFromTooMany(x *testing.T) {
	t := (*T)(x)
	a, err := From(3, 1, 2, 3, 4, 5)
	t.assert("out of range", errors.IsOutOfRange(err), a == nil)
}

func TestFromPads(x *testing.T) {
	t := (*T)(x)
	a, err := From(4, 1, 2)
	t.assert_nil(err)
	require.Equal(x, []int{1, 2, 0, 0}, containers.Collect(a.All()))
	t.assert("fixed size", a.Size() == 4, a.MaxSize() == 4, !a.Empty())
	t.assert("front/back", a.Front() == 1, a.Back() == 0)
}

func TestAt(x *testing.T) {
	t := (*T)(x)
	a, err := From(2, 7, 8)
	t.assert_nil(err)
	v, err := a.At(1)
	t.assert_nil(err)
	t.assert("at", v == 8)
	_, err = a.At(2)
	t.assert("out of range", errors.IsOutOfRange(err))
	a.Set(0, 9)
	t.assert("set", a.Index(0) == 9)
}

func TestZeroLength(x *testing.T) {
	t := (*T)(x)
	a := New[int](0)
	t.assert("empty", a.Empty(), a.Data() == nil, a.Begin().Equal(a.End()))
}

func TestFillSwap(x *testing.T) {
	t := (*T)(x)
	a := New[int](3)
	b := New[int](3)
	a.Fill(1)
	b.Fill(2)
	t.assert_nil(a.Swap(b))
	require.Equal(x, []int{2, 2, 2}, containers.Collect(a.All()))
	require.Equal(x, []int{1, 1, 1}, containers.Collect(b.All()))
	t.assert("length mismatch", errors.IsOutOfRange(a.Swap(New[int](2))))
}

func TestCloneAndIterators(x *testing.T) {
	t := (*T)(x)
	a, err := FromWith(3, []int{1, 2, 3}, []alloc.Option{alloc.WithName("array")})
	t.assert_nil(err)
	c := a.Clone()
	c.Set(0, 0)
	t.assert("deep copy", a.Front() == 1)
	sum := 0
	for it := a.CBegin(); !it.Equal(a.CEnd()); it = it.Next() {
		sum += it.Value()
	}
	t.assert("sum", sum == 6, a.End().Diff(a.Begin()) == 3)
	a.Release()
	t.assert("released", a.Size() == 0)
}
