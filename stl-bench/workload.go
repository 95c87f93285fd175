package main

import (
	"math/rand"
	"time"
)

import (
	"go.uber.org/zap"
)

import (
	"github.com/AniTigerSib/STL-Containers/alloc"
	"github.com/AniTigerSib/STL-Containers/array"
	"github.com/AniTigerSib/STL-Containers/errors"
	"github.com/AniTigerSib/STL-Containers/list"
	"github.com/AniTigerSib/STL-Containers/queue"
	"github.com/AniTigerSib/STL-Containers/rbtree"
	"github.com/AniTigerSib/STL-Containers/stack"
	"github.com/AniTigerSib/STL-Containers/vector"
)

type Result struct {
	Container string
	Ops       int
	Elapsed   time.Duration
}

// Workload drives n operations against one container kind and checks the
// container afterwards.
type Workload func(n int, s *alloc.Strategy, r *rand.Rand) (ops int, err error)

var Workloads = map[string]Workload{
	"vector": VectorWorkload,
	"list":   ListWorkload,
	"rbtree": TreeWorkload,
	"array":  ArrayWorkload,
	"stack":  StackWorkload,
	"queue":  QueueWorkload,
}

// Run executes the configured workloads in order.
func Run(cfg Config, s *alloc.Strategy, log *zap.Logger) ([]Result, error) {
	r := rand.New(rand.NewSource(cfg.Seed))
	results := make([]Result, 0, len(cfg.Containers))
	for _, name := range cfg.Containers {
		work, has := Workloads[name]
		if !has {
			return results, errors.Errorf("unknown container %q", name)
		}
		start := time.Now()
		ops, err := work(cfg.Count, s, r)
		if err != nil {
			log.Error("workload failed", zap.String("container", name), zap.Error(err))
			return results, err
		}
		res := Result{Container: name, Ops: ops, Elapsed: time.Since(start)}
		log.Info("workload done",
			zap.String("container", name),
			zap.Int("ops", ops),
			zap.Duration("elapsed", res.Elapsed),
			zap.Int("live_slots", s.Used()))
		results = append(results, res)
	}
	return results, nil
}

func VectorWorkload(n int, s *alloc.Strategy, r *rand.Rand) (int, error) {
	v := vector.New[int](alloc.Use(s))
	defer v.Release()
	for i := 0; i < n; i++ {
		v.PushBack(r.Int())
	}
	ops := n
	for i := 0; i < n/10 && !v.Empty(); i++ {
		if _, err := v.Insert(v.Begin().Add(r.Intn(v.Size()+1)), i); err != nil {
			return ops, err
		}
		if _, err := v.Erase(v.Begin().Add(r.Intn(v.Size()))); err != nil {
			return ops, err
		}
		ops += 2
	}
	for v.Size() > n/2 {
		v.PopBack()
		ops++
	}
	v.ShrinkToFit()
	if v.Capacity() != v.Size() {
		return ops, errors.Errorf("vector: capacity %d after shrink, size %d", v.Capacity(), v.Size())
	}
	return ops, v.Verify()
}

func ListWorkload(n int, s *alloc.Strategy, r *rand.Rand) (int, error) {
	a := list.New[int](alloc.Use(s))
	b := list.New[int](alloc.Use(s))
	defer a.Release()
	defer b.Release()
	for i := 0; i < n; i++ {
		if i%2 == 0 {
			a.PushBack(r.Intn(n + 1))
		} else {
			b.PushFront(r.Intn(n + 1))
		}
	}
	list.Sort(a)
	list.Sort(b)
	list.Merge(a, b)
	list.Unique(a)
	a.Reverse()
	ops := n + 4
	for prev, it := 0, a.Begin(); !it.Equal(a.End()); it = it.Next() {
		if it != a.Begin() && it.Value() >= prev {
			return ops, errors.Errorf("list: %d after %d in a reversed unique list", it.Value(), prev)
		}
		prev = it.Value()
	}
	if err := b.Verify(); err != nil {
		return ops, err
	}
	return ops, a.Verify()
}

func TreeWorkload(n int, s *alloc.Strategy, r *rand.Rand) (int, error) {
	t := rbtree.New[int](alloc.Use(s))
	defer t.Clear()
	keys := make([]int, n)
	for i := range keys {
		keys[i] = r.Intn(n + 1)
		t.Insert(keys[i])
	}
	ops := n
	for _, k := range keys[:n/2] {
		if !t.Remove(k) {
			return ops, errors.Errorf("rbtree: inserted key %d not found", k)
		}
		ops++
	}
	if t.Size() != n-n/2 {
		return ops, errors.Errorf("rbtree: size %d, want %d", t.Size(), n-n/2)
	}
	return ops, t.Verify()
}

func ArrayWorkload(n int, s *alloc.Strategy, r *rand.Rand) (int, error) {
	a, err := array.FromWith(n, []int{}, []alloc.Option{alloc.Use(s)})
	if err != nil {
		return 0, err
	}
	defer a.Release()
	for i := 0; i < n; i++ {
		a.Set(i, r.Int())
	}
	b := a.Clone()
	defer b.Release()
	b.Fill(0)
	if err := a.Swap(b); err != nil {
		return n, err
	}
	for v := range a.All() {
		if v != 0 {
			return n, errors.Errorf("array: swap left %d behind", v)
		}
	}
	return 2 * n, nil
}

func StackWorkload(n int, s *alloc.Strategy, r *rand.Rand) (int, error) {
	st := stack.New[int](alloc.Use(s))
	for i := 0; i < n; i++ {
		st.Push(i)
	}
	for i := n - 1; i >= 0; i-- {
		if st.Top() != i {
			return n, errors.Errorf("stack: top %d, want %d", st.Top(), i)
		}
		st.Pop()
	}
	return 2 * n, nil
}

func QueueWorkload(n int, s *alloc.Strategy, r *rand.Rand) (int, error) {
	q := queue.New[int](alloc.Use(s))
	for i := 0; i < n; i++ {
		q.Push(i)
	}
	for i := 0; i < n; i++ {
		if q.Front() != i {
			return n, errors.Errorf("queue: front %d, want %d", q.Front(), i)
		}
		q.Pop()
	}
	return 2 * n, nil
}
