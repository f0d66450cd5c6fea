package query

import (
	"context"

	qerrors "github.com/kbukum/querykit/errors"
)

// Count returns the number of elements. Drains the sequence.
func Count[T any](ctx context.Context, s *Seq[T]) (int, error) {
	return CountFunc(ctx, s, func(T) bool { return true })
}

// CountFunc returns the number of elements satisfying fn.
func CountFunc[T any](ctx context.Context, s *Seq[T], fn func(T) bool) (int, error) {
	iter := s.create(ctx)
	defer iter.Close()
	n := 0
	for {
		val, ok, err := iter.Next(ctx)
		if err != nil {
			return 0, err
		}
		if !ok {
			return n, nil
		}
		if fn(val) {
			n++
		}
	}
}

// Any reports whether the sequence has at least one element. Pulls at most
// one element.
func Any[T any](ctx context.Context, s *Seq[T]) (bool, error) {
	return AnyFunc(ctx, s, func(T) bool { return true })
}

// AnyFunc reports whether any element satisfies fn, stopping at the first
// match.
func AnyFunc[T any](ctx context.Context, s *Seq[T], fn func(T) bool) (bool, error) {
	iter := s.create(ctx)
	defer iter.Close()
	for {
		val, ok, err := iter.Next(ctx)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
		if fn(val) {
			return true, nil
		}
	}
}

// All reports whether every element satisfies fn, stopping at the first
// non-match. Vacuously true on an empty sequence.
func All[T any](ctx context.Context, s *Seq[T], fn func(T) bool) (bool, error) {
	iter := s.create(ctx)
	defer iter.Close()
	for {
		val, ok, err := iter.Next(ctx)
		if err != nil {
			return false, err
		}
		if !ok {
			return true, nil
		}
		if !fn(val) {
			return false, nil
		}
	}
}

// Contains reports whether the sequence contains v, stopping at the first
// match.
func Contains[T comparable](ctx context.Context, s *Seq[T], v T) (bool, error) {
	return AnyFunc(ctx, s, func(e T) bool { return e == v })
}

// ContainsFunc is Contains under an explicit equality capability.
func ContainsFunc[T any](ctx context.Context, s *Seq[T], v T, eq func(a, b T) bool) (bool, error) {
	return AnyFunc(ctx, s, func(e T) bool { return eq(e, v) })
}

// First returns the first element. Fails with EMPTY_RESULT on an empty
// sequence.
func First[T any](ctx context.Context, s *Seq[T]) (T, error) {
	return FirstFunc(ctx, s, func(T) bool { return true })
}

// FirstFunc returns the first element satisfying fn, stopping as soon as one
// is found. Fails with EMPTY_RESULT when nothing matches.
func FirstFunc[T any](ctx context.Context, s *Seq[T], fn func(T) bool) (T, error) {
	iter := s.create(ctx)
	defer iter.Close()
	for {
		val, ok, err := iter.Next(ctx)
		if err != nil {
			var zero T
			return zero, err
		}
		if !ok {
			var zero T
			return zero, qerrors.EmptyResult("query.First")
		}
		if fn(val) {
			return val, nil
		}
	}
}

// FirstOrDefault returns the first element, or the zero value of T on an
// empty sequence.
func FirstOrDefault[T any](ctx context.Context, s *Seq[T]) (T, error) {
	return FirstOrDefaultFunc(ctx, s, func(T) bool { return true })
}

// FirstOrDefaultFunc returns the first element satisfying fn, or the zero
// value of T when nothing matches.
func FirstOrDefaultFunc[T any](ctx context.Context, s *Seq[T], fn func(T) bool) (T, error) {
	val, err := FirstFunc(ctx, s, fn)
	if qerrors.IsCode(err, qerrors.ErrCodeEmptyResult) {
		var zero T
		return zero, nil
	}
	return val, err
}

// Single returns the only element. Fails with EMPTY_RESULT on an empty
// sequence and AMBIGUOUS_RESULT when more than one element exists.
func Single[T any](ctx context.Context, s *Seq[T]) (T, error) {
	return SingleFunc(ctx, s, func(T) bool { return true })
}

// SingleFunc returns the only element satisfying fn. Fails with EMPTY_RESULT
// on zero matches and AMBIGUOUS_RESULT on more than one; enumeration stops at
// the second match.
func SingleFunc[T any](ctx context.Context, s *Seq[T], fn func(T) bool) (T, error) {
	iter := s.create(ctx)
	defer iter.Close()
	var found T
	matched := false
	for {
		val, ok, err := iter.Next(ctx)
		if err != nil {
			var zero T
			return zero, err
		}
		if !ok {
			if !matched {
				var zero T
				return zero, qerrors.EmptyResult("query.Single")
			}
			return found, nil
		}
		if !fn(val) {
			continue
		}
		if matched {
			var zero T
			return zero, qerrors.AmbiguousResult("query.Single")
		}
		found = val
		matched = true
	}
}

// SingleOrDefault returns the only element, or the zero value of T on an
// empty sequence. Still fails with AMBIGUOUS_RESULT on more than one element.
func SingleOrDefault[T any](ctx context.Context, s *Seq[T]) (T, error) {
	return SingleOrDefaultFunc(ctx, s, func(T) bool { return true })
}

// SingleOrDefaultFunc returns the only element satisfying fn, or the zero
// value of T on zero matches. Still fails with AMBIGUOUS_RESULT on more than
// one match.
func SingleOrDefaultFunc[T any](ctx context.Context, s *Seq[T], fn func(T) bool) (T, error) {
	val, err := SingleFunc(ctx, s, fn)
	if qerrors.IsCode(err, qerrors.ErrCodeEmptyResult) {
		var zero T
		return zero, nil
	}
	return val, err
}

// Last returns the final element. Fails with EMPTY_RESULT on an empty
// sequence. Drains the sequence.
func Last[T any](ctx context.Context, s *Seq[T]) (T, error) {
	iter := s.create(ctx)
	defer iter.Close()
	var last T
	found := false
	for {
		val, ok, err := iter.Next(ctx)
		if err != nil {
			var zero T
			return zero, err
		}
		if !ok {
			if !found {
				var zero T
				return zero, qerrors.EmptyResult("query.Last")
			}
			return last, nil
		}
		last = val
		found = true
	}
}

// LastOrDefault returns the final element, or the zero value of T on an
// empty sequence.
func LastOrDefault[T any](ctx context.Context, s *Seq[T]) (T, error) {
	val, err := Last(ctx, s)
	if qerrors.IsCode(err, qerrors.ErrCodeEmptyResult) {
		var zero T
		return zero, nil
	}
	return val, err
}

// CollectMap drains the sequence into a map keyed by the selected key.
// Fails with DUPLICATE_KEY when two elements produce the same key; a failed
// materialization returns no partial map.
func CollectMap[T any, K comparable](ctx context.Context, s *Seq[T], key func(T) K) (map[K]T, error) {
	return CollectMapValues(ctx, s, key, func(v T) T { return v })
}

// CollectMapValues is CollectMap with a per-element value projection.
func CollectMapValues[T, V any, K comparable](ctx context.Context, s *Seq[T], key func(T) K, val func(T) V) (map[K]V, error) {
	iter := s.create(ctx)
	defer iter.Close()
	out := make(map[K]V)
	for {
		v, ok, err := iter.Next(ctx)
		if err != nil {
			return nil, err
		}
		if !ok {
			return out, nil
		}
		k := key(v)
		if _, dup := out[k]; dup {
			return nil, qerrors.DuplicateKey("query.CollectMap", k)
		}
		out[k] = val(v)
	}
}
