package query

import (
	"cmp"
	"context"
	"sort"
)

// Ordered is a sequence with a multi-key ordering attached. Extend the key
// chain with ThenBy / ThenByDesc / ThenFunc, then call Seq to continue
// composing or to enumerate.
//
// The sort is stable: elements whose full key chain compares equal keep
// their upstream relative order. Sorting is eager — the first pull drains
// the whole upstream before yielding anything.
type Ordered[T any] struct {
	source   *Seq[T]
	compares []func(a, b T) int
}

// SortBy orders the sequence ascending by the selected key.
func SortBy[T any, K cmp.Ordered](s *Seq[T], key func(T) K) *Ordered[T] {
	return SortFunc(s, func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	})
}

// SortByDesc orders the sequence descending by the selected key.
func SortByDesc[T any, K cmp.Ordered](s *Seq[T], key func(T) K) *Ordered[T] {
	return SortFunc(s, func(a, b T) int {
		return cmp.Compare(key(b), key(a))
	})
}

// SortFunc orders the sequence by an explicit comparison function.
// compare must return a negative value when a sorts before b, zero when they
// tie, positive otherwise.
func SortFunc[T any](s *Seq[T], compare func(a, b T) int) *Ordered[T] {
	return &Ordered[T]{source: s, compares: []func(a, b T) int{compare}}
}

// ThenBy appends an ascending secondary key, breaking ties left by the keys
// before it. Returns a new Ordered; the receiver is not modified.
func ThenBy[T any, K cmp.Ordered](o *Ordered[T], key func(T) K) *Ordered[T] {
	return ThenFunc(o, func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	})
}

// ThenByDesc appends a descending secondary key.
func ThenByDesc[T any, K cmp.Ordered](o *Ordered[T], key func(T) K) *Ordered[T] {
	return ThenFunc(o, func(a, b T) int {
		return cmp.Compare(key(b), key(a))
	})
}

// ThenFunc appends an explicit secondary comparison function.
func ThenFunc[T any](o *Ordered[T], compare func(a, b T) int) *Ordered[T] {
	chain := make([]func(a, b T) int, 0, len(o.compares)+1)
	chain = append(chain, o.compares...)
	chain = append(chain, compare)
	return &Ordered[T]{source: o.source, compares: chain}
}

// Seq returns the sorted sequence. Each enumeration re-drains and re-sorts
// the upstream, so it reflects the current state of the root source.
func (o *Ordered[T]) Seq() *Seq[T] {
	source := o.source
	compares := o.compares
	return &Seq[T]{
		create: func(ctx context.Context) Iterator[T] {
			return &sortIter[T]{source: source, compares: compares}
		},
	}
}

// Reverse yields the upstream elements in reverse order. Eager: the first
// pull drains the whole upstream.
func Reverse[T any](s *Seq[T]) *Seq[T] {
	return &Seq[T]{
		create: func(ctx context.Context) Iterator[T] {
			return &reverseIter[T]{source: s}
		},
	}
}

// --- Iterator implementations ---

type sortIter[T any] struct {
	source   *Seq[T]
	compares []func(a, b T) int
	buf      []T
	index    int
	loaded   bool
}

func (it *sortIter[T]) Next(ctx context.Context) (result T, ok bool, err error) {
	if !it.loaded {
		buf, err := Collect(ctx, it.source)
		if err != nil {
			var zero T
			return zero, false, err
		}
		sort.SliceStable(buf, func(i, j int) bool {
			for _, compare := range it.compares {
				if c := compare(buf[i], buf[j]); c != 0 {
					return c < 0
				}
			}
			return false
		})
		it.buf = buf
		it.loaded = true
	}
	if it.index >= len(it.buf) {
		var zero T
		return zero, false, nil
	}
	val := it.buf[it.index]
	it.index++
	return val, true, nil
}

func (it *sortIter[T]) Close() error {
	it.buf = nil
	return nil
}

type reverseIter[T any] struct {
	source *Seq[T]
	buf    []T
	index  int
	loaded bool
}

func (it *reverseIter[T]) Next(ctx context.Context) (result T, ok bool, err error) {
	if !it.loaded {
		buf, err := Collect(ctx, it.source)
		if err != nil {
			var zero T
			return zero, false, err
		}
		it.buf = buf
		it.index = len(buf) - 1
		it.loaded = true
	}
	if it.index < 0 {
		var zero T
		return zero, false, nil
	}
	val := it.buf[it.index]
	it.index--
	return val, true, nil
}

func (it *reverseIter[T]) Close() error {
	it.buf = nil
	return nil
}
