package query

import (
	"context"
	stderrors "errors"
	"fmt"
	"testing"

	qerrors "github.com/kbukum/querykit/errors"
)

type person struct {
	Name string
	Age  int
	City string
}

var people = []person{
	{"Aino", 17, "Helsinki"},
	{"Mika", 22, "Espoo"},
	{"Sara", 35, "Helsinki"},
}

func TestFilter(t *testing.T) {
	s := Filter(FromSlice([]int{1, 2, 3, 4, 5}), func(n int) bool { return n%2 == 1 })
	got, err := Collect(context.Background(), s)
	if err != nil {
		t.Fatal(err)
	}
	if !intSliceEqual(got, []int{1, 3, 5}) {
		t.Errorf("got %v, want [1 3 5]", got)
	}
}

func TestFilter_PreservesOrder(t *testing.T) {
	s := Filter(FromSlice([]int{5, 1, 4, 2, 3}), func(n int) bool { return n > 1 })
	got, err := Collect(context.Background(), s)
	if err != nil {
		t.Fatal(err)
	}
	if !intSliceEqual(got, []int{5, 4, 2, 3}) {
		t.Errorf("expected sub-order of the source, got %v", got)
	}
}

func TestFilter_NoneMatch(t *testing.T) {
	s := Filter(FromSlice([]int{1, 2, 3}), func(int) bool { return false })
	got, err := Collect(context.Background(), s)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty, got %v", got)
	}
}

func TestMap(t *testing.T) {
	s := Map(FromSlice([]int{1, 2, 3}), func(_ context.Context, n int) (int, error) {
		return n * 2, nil
	})
	got, err := Collect(context.Background(), s)
	if err != nil {
		t.Fatal(err)
	}
	if !intSliceEqual(got, []int{2, 4, 6}) {
		t.Errorf("got %v, want [2 4 6]", got)
	}
}

func TestMap_ErrorStopsAtOffendingElement(t *testing.T) {
	boom := fmt.Errorf("boom")
	seen := 0
	s := Map(FromSlice([]int{1, 2, 3}), func(_ context.Context, n int) (int, error) {
		seen++
		if n == 2 {
			return 0, boom
		}
		return n, nil
	})
	_, err := Collect(context.Background(), s)
	if err == nil {
		t.Fatal("expected error")
	}
	if !stderrors.Is(err, boom) {
		t.Errorf("expected original error in chain, got %v", err)
	}
	if !qerrors.IsCode(err, qerrors.ErrCodeCallerFunction) {
		t.Errorf("expected CALLER_FUNCTION code, got %v", err)
	}
	if seen != 2 {
		t.Errorf("expected projector called twice, got %d", seen)
	}
}

func TestFilterThenMap_Scenario(t *testing.T) {
	adults := Filter(FromSlice(people), func(p person) bool { return p.Age >= 18 })
	names := Map(adults, func(_ context.Context, p person) (string, error) {
		return p.Name, nil
	})
	got, err := Collect(context.Background(), names)
	if err != nil {
		t.Fatal(err)
	}
	if !stringSliceEqual(got, []string{"Mika", "Sara"}) {
		t.Errorf("got %v, want [Mika Sara]", got)
	}
}

func TestMapIndexed_PositionIsLocal(t *testing.T) {
	// Upstream filtering renumbers: positions count elements reaching
	// MapIndexed, not elements of the root source.
	evens := Filter(FromSlice([]string{"a", "b", "c", "d"}), func(s string) bool {
		return s == "b" || s == "d"
	})
	s := MapIndexed(evens, func(_ context.Context, i int, v string) (string, error) {
		return fmt.Sprintf("%d:%s", i, v), nil
	})
	got, err := Collect(context.Background(), s)
	if err != nil {
		t.Fatal(err)
	}
	if !stringSliceEqual(got, []string{"0:b", "1:d"}) {
		t.Errorf("got %v, want [0:b 1:d]", got)
	}
}

func TestMapIndexed_RestartsPerEnumeration(t *testing.T) {
	s := MapIndexed(FromSlice([]string{"a", "b"}), func(_ context.Context, i int, v string) (string, error) {
		return fmt.Sprintf("%d%s", i, v), nil
	})
	first, err := Collect(context.Background(), s)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Collect(context.Background(), s)
	if err != nil {
		t.Fatal(err)
	}
	if !stringSliceEqual(first, second) {
		t.Errorf("positions leaked across enumerations: %v vs %v", first, second)
	}
}

func TestFlatMap_DepthFirst(t *testing.T) {
	s := FlatMap(FromSlice([]int{2, 3}), func(_ context.Context, n int) (*Seq[int], error) {
		return Repeat(n, n), nil
	})
	got, err := Collect(context.Background(), s)
	if err != nil {
		t.Fatal(err)
	}
	if !intSliceEqual(got, []int{2, 2, 3, 3, 3}) {
		t.Errorf("got %v, want [2 2 3 3 3]", got)
	}
}

func TestFlatMap_EmptyInner(t *testing.T) {
	s := FlatMap(FromSlice([]int{1, 2, 3}), func(_ context.Context, n int) (*Seq[int], error) {
		if n == 2 {
			return FromSlice([]int{}), nil
		}
		return FromSlice([]int{n}), nil
	})
	got, err := Collect(context.Background(), s)
	if err != nil {
		t.Fatal(err)
	}
	if !intSliceEqual(got, []int{1, 3}) {
		t.Errorf("got %v, want [1 3]", got)
	}
}

func TestTap_PassesThrough(t *testing.T) {
	var side []int
	s := Tap(FromSlice([]int{1, 2}), func(_ context.Context, n int) error {
		side = append(side, n)
		return nil
	})
	got, err := Collect(context.Background(), s)
	if err != nil {
		t.Fatal(err)
	}
	if !intSliceEqual(got, []int{1, 2}) || !intSliceEqual(side, []int{1, 2}) {
		t.Errorf("got %v side %v", got, side)
	}
}

func TestConcat(t *testing.T) {
	s := Concat(FromSlice([]int{1, 2}), FromSlice([]int{}), FromSlice([]int{3}))
	got, err := Collect(context.Background(), s)
	if err != nil {
		t.Fatal(err)
	}
	if !intSliceEqual(got, []int{1, 2, 3}) {
		t.Errorf("got %v, want [1 2 3]", got)
	}
}

func TestTakeSkip(t *testing.T) {
	s := Skip(Take(Range(0, 10), 7), 2)
	got, err := Collect(context.Background(), s)
	if err != nil {
		t.Fatal(err)
	}
	if !intSliceEqual(got, []int{2, 3, 4, 5, 6}) {
		t.Errorf("got %v, want [2 3 4 5 6]", got)
	}
}

func TestTake_StopsPulling(t *testing.T) {
	pulls := 0
	src := FromFunc(func(_ context.Context) Iterator[int] {
		return &countingIter{pulls: &pulls}
	})
	if _, err := Collect(context.Background(), Take(src, 3)); err != nil {
		t.Fatal(err)
	}
	if pulls != 3 {
		t.Errorf("expected exactly 3 pulls, got %d", pulls)
	}
}

func TestTakeWhile(t *testing.T) {
	s := TakeWhile(FromSlice([]int{1, 2, 5, 1}), func(n int) bool { return n < 3 })
	got, err := Collect(context.Background(), s)
	if err != nil {
		t.Fatal(err)
	}
	if !intSliceEqual(got, []int{1, 2}) {
		t.Errorf("got %v, want [1 2]", got)
	}
}

func TestSkipWhile(t *testing.T) {
	s := SkipWhile(FromSlice([]int{1, 2, 5, 1}), func(n int) bool { return n < 3 })
	got, err := Collect(context.Background(), s)
	if err != nil {
		t.Fatal(err)
	}
	if !intSliceEqual(got, []int{5, 1}) {
		t.Errorf("got %v, want [5 1]", got)
	}
}
