package query

import (
	"context"
	"fmt"
	"sync"
	"testing"
)

func intSliceEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func stringSliceEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFromSlice_Collect(t *testing.T) {
	s := FromSlice([]int{1, 2, 3})
	got, err := Collect(context.Background(), s)
	if err != nil {
		t.Fatal(err)
	}
	want := []int{1, 2, 3}
	if !intSliceEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFromSlice_Empty(t *testing.T) {
	s := FromSlice([]int{})
	got, err := Collect(context.Background(), s)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty, got %v", got)
	}
}

func TestFromSlice_ReenumerationSeesMutation(t *testing.T) {
	backing := []int{1, 2, 3}
	s := FromSlice(backing)
	if _, err := Collect(context.Background(), s); err != nil {
		t.Fatal(err)
	}
	backing[0] = 99
	got, err := Collect(context.Background(), s)
	if err != nil {
		t.Fatal(err)
	}
	if got[0] != 99 {
		t.Errorf("expected live read of mutated backing slice, got %v", got)
	}
}

func TestFrom_Iterator(t *testing.T) {
	iter := &sliceIter[string]{items: []string{"a", "b"}}
	s := From[string](iter)
	got, err := Collect(context.Background(), s)
	if err != nil {
		t.Fatal(err)
	}
	if !stringSliceEqual(got, []string{"a", "b"}) {
		t.Errorf("got %v, want [a b]", got)
	}
}

func TestRange(t *testing.T) {
	got, err := Collect(context.Background(), Range(5, 3))
	if err != nil {
		t.Fatal(err)
	}
	if !intSliceEqual(got, []int{5, 6, 7}) {
		t.Errorf("got %v, want [5 6 7]", got)
	}
}

func TestRange_ZeroCount(t *testing.T) {
	got, err := Collect(context.Background(), Range(5, 0))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty, got %v", got)
	}
}

func TestRepeat(t *testing.T) {
	got, err := Collect(context.Background(), Repeat("x", 3))
	if err != nil {
		t.Fatal(err)
	}
	if !stringSliceEqual(got, []string{"x", "x", "x"}) {
		t.Errorf("got %v, want [x x x]", got)
	}
}

func TestGenerate_InfiniteBounded(t *testing.T) {
	squares := Generate(func(i int) int { return i * i })
	got, err := Collect(context.Background(), Take(squares, 4))
	if err != nil {
		t.Fatal(err)
	}
	if !intSliceEqual(got, []int{0, 1, 4, 9}) {
		t.Errorf("got %v, want [0 1 4 9]", got)
	}
}

func TestComposition_IsLazy(t *testing.T) {
	pulls := 0
	s := FromFunc(func(_ context.Context) Iterator[int] {
		return &countingIter{pulls: &pulls}
	})
	filtered := Filter(s, func(n int) bool { return n%2 == 0 })
	mapped := Map(filtered, func(_ context.Context, n int) (int, error) { return n + 1, nil })
	if pulls != 0 {
		t.Fatalf("composition alone pulled %d elements", pulls)
	}
	if _, err := Collect(context.Background(), Take(mapped, 1)); err != nil {
		t.Fatal(err)
	}
	if pulls == 0 {
		t.Error("terminal did not pull from the source")
	}
}

// countingIter yields 0,1,2,... and records how many pulls it served.
type countingIter struct {
	n     int
	pulls *int
}

func (it *countingIter) Next(_ context.Context) (int, bool, error) {
	*it.pulls++
	v := it.n
	it.n++
	return v, true, nil
}

func (it *countingIter) Close() error { return nil }

func TestReenumeration_Idempotent(t *testing.T) {
	s := Filter(FromSlice([]int{1, 2, 3, 4, 5, 6}), func(n int) bool { return n%2 == 0 })
	first, err := Collect(context.Background(), s)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Collect(context.Background(), s)
	if err != nil {
		t.Fatal(err)
	}
	if !intSliceEqual(first, second) {
		t.Errorf("re-enumeration differs: %v vs %v", first, second)
	}
}

func TestConcurrentEnumerations_Independent(t *testing.T) {
	s := Map(FromSlice([]int{1, 2, 3, 4, 5}), func(_ context.Context, n int) (int, error) {
		return n * 10, nil
	})
	want := []int{10, 20, 30, 40, 50}

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := Collect(context.Background(), s)
			if err != nil {
				errs <- err
				return
			}
			if !intSliceEqual(got, want) {
				errs <- fmt.Errorf("got %v, want %v", got, want)
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Errorf("concurrent enumeration failed: %v", err)
	}
}

func TestIter_IndependentCursors(t *testing.T) {
	ctx := context.Background()
	s := FromSlice([]int{1, 2, 3})
	a := s.Iter(ctx)
	b := s.Iter(ctx)
	defer a.Close()
	defer b.Close()

	va, _, _ := a.Next(ctx)
	vb, _, _ := b.Next(ctx)
	if va != 1 || vb != 1 {
		t.Errorf("cursors share state: got %d and %d, want 1 and 1", va, vb)
	}
}

func TestDrain_StopsOnSinkError(t *testing.T) {
	seen := 0
	err := Drain(context.Background(), FromSlice([]int{1, 2, 3}), func(_ context.Context, n int) error {
		seen++
		if n == 2 {
			return context.Canceled
		}
		return nil
	})
	if err == nil {
		t.Fatal("expected sink error")
	}
	if seen != 2 {
		t.Errorf("expected drain to stop at the failing element, saw %d", seen)
	}
}

func TestForEach(t *testing.T) {
	var got []int
	err := ForEach(context.Background(), FromSlice([]int{1, 2}), func(_ context.Context, n int) error {
		got = append(got, n)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if !intSliceEqual(got, []int{1, 2}) {
		t.Errorf("got %v, want [1 2]", got)
	}
}
