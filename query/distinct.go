package query

import "context"

// Distinct suppresses duplicate elements, keeping the first occurrence of
// each value in encounter order. Memory grows with the number of distinct
// values seen, not the total element count.
func Distinct[T comparable](s *Seq[T]) *Seq[T] {
	return DistinctBy(s, func(v T) T { return v })
}

// DistinctBy suppresses elements whose selected key has been seen before,
// keeping the first element per key in encounter order.
func DistinctBy[T any, K comparable](s *Seq[T], key func(T) K) *Seq[T] {
	return &Seq[T]{
		create: func(ctx context.Context) Iterator[T] {
			return &distinctIter[T, K]{
				source: s.create(ctx),
				key:    key,
				seen:   make(map[K]struct{}),
			}
		},
	}
}

// DistinctFunc suppresses duplicates under an explicit equality capability.
// Each element is compared against every previously yielded element, so this
// is quadratic in the distinct count; prefer Distinct or DistinctBy when the
// element or a key is comparable.
func DistinctFunc[T any](s *Seq[T], eq func(a, b T) bool) *Seq[T] {
	return &Seq[T]{
		create: func(ctx context.Context) Iterator[T] {
			return &distinctFuncIter[T]{source: s.create(ctx), eq: eq}
		},
	}
}

type distinctIter[T any, K comparable] struct {
	source Iterator[T]
	key    func(T) K
	seen   map[K]struct{}
}

func (it *distinctIter[T, K]) Next(ctx context.Context) (result T, ok bool, err error) {
	for {
		val, ok, err := it.source.Next(ctx)
		if err != nil || !ok {
			return val, false, err
		}
		k := it.key(val)
		if _, dup := it.seen[k]; dup {
			continue
		}
		it.seen[k] = struct{}{}
		return val, true, nil
	}
}

func (it *distinctIter[T, K]) Close() error {
	it.seen = nil
	return it.source.Close()
}

type distinctFuncIter[T any] struct {
	source Iterator[T]
	eq     func(a, b T) bool
	seen   []T
}

func (it *distinctFuncIter[T]) Next(ctx context.Context) (result T, ok bool, err error) {
	for {
		val, ok, err := it.source.Next(ctx)
		if err != nil || !ok {
			return val, false, err
		}
		dup := false
		for _, prev := range it.seen {
			if it.eq(prev, val) {
				dup = true
				break
			}
		}
		if dup {
			continue
		}
		it.seen = append(it.seen, val)
		return val, true, nil
	}
}

func (it *distinctFuncIter[T]) Close() error {
	it.seen = nil
	return it.source.Close()
}
