package query

import "context"

// Iterator provides pull-based sequential access to a stream of values.
// It is the cursor half of the engine: transient, single-enumeration state.
type Iterator[T any] interface {
	// Next returns the next value. Returns (zero, false, nil) when exhausted.
	Next(ctx context.Context) (T, bool, error)
	// Close releases any resources held by the iterator.
	Close() error
}

// Seq is a lazy, re-enumerable description of a query pipeline.
// Composing an operator returns a new Seq wrapping the previous one and never
// mutates it. No work happens until values are pulled via a terminal.
type Seq[T any] struct {
	create func(ctx context.Context) Iterator[T]
}

// --- Constructors ---

// From creates a sequence from an existing Iterator.
// The sequence is only enumerable once; prefer FromFunc for re-enumerable
// sources.
func From[T any](iter Iterator[T]) *Seq[T] {
	return &Seq[T]{
		create: func(_ context.Context) Iterator[T] {
			return iter
		},
	}
}

// FromSlice creates a sequence over a backing slice. The slice is not
// snapshotted: each enumeration reads it live, so mutations between
// enumerations are visible on the next run.
func FromSlice[T any](items []T) *Seq[T] {
	return &Seq[T]{
		create: func(_ context.Context) Iterator[T] {
			return &sliceIter[T]{items: items}
		},
	}
}

// FromFunc creates a sequence from a factory that produces a fresh Iterator
// per enumeration.
func FromFunc[T any](fn func(ctx context.Context) Iterator[T]) *Seq[T] {
	return &Seq[T]{create: fn}
}

// Range creates a sequence of count consecutive integers starting at start.
func Range(start, count int) *Seq[int] {
	return &Seq[int]{
		create: func(_ context.Context) Iterator[int] {
			return &rangeIter{next: start, remaining: count}
		},
	}
}

// Repeat creates a sequence yielding v count times.
func Repeat[T any](v T, count int) *Seq[T] {
	return &Seq[T]{
		create: func(_ context.Context) Iterator[T] {
			return &repeatIter[T]{v: v, remaining: count}
		},
	}
}

// Generate creates an infinite sequence whose i-th element is fn(i).
// Callers must bound it (Take, TakeWhile, a short-circuiting terminal)
// before draining terminals such as Collect.
func Generate[T any](fn func(i int) T) *Seq[T] {
	return &Seq[T]{
		create: func(_ context.Context) Iterator[T] {
			return &generateIter[T]{fn: fn}
		},
	}
}

// --- Terminals ---

// Iter returns a fresh cursor over this sequence. The caller must Close() it.
// Cursors from separate Iter calls are independent and never share state.
func (s *Seq[T]) Iter(ctx context.Context) Iterator[T] {
	return s.create(ctx)
}

// Collect runs the pipeline and returns all values as a slice.
func Collect[T any](ctx context.Context, s *Seq[T]) ([]T, error) {
	iter := s.create(ctx)
	defer iter.Close()
	var result []T
	for {
		val, ok, err := iter.Next(ctx)
		if err != nil {
			return nil, err
		}
		if !ok {
			return result, nil
		}
		result = append(result, val)
	}
}

// Drain pulls all values and sends each to sink, stopping on the first error.
func Drain[T any](ctx context.Context, s *Seq[T], sink func(context.Context, T) error) error {
	iter := s.create(ctx)
	defer iter.Close()
	for {
		val, ok, err := iter.Next(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if err := sink(ctx, val); err != nil {
			return err
		}
	}
}

// ForEach pulls all values and calls fn for each. Convenience wrapper around Drain.
func ForEach[T any](ctx context.Context, s *Seq[T], fn func(context.Context, T) error) error {
	return Drain(ctx, s, fn)
}

// --- Internal iterators ---

type sliceIter[T any] struct {
	items []T
	index int
}

func (it *sliceIter[T]) Next(_ context.Context) (T, bool, error) {
	if it.index >= len(it.items) {
		var zero T
		return zero, false, nil
	}
	val := it.items[it.index]
	it.index++
	return val, true, nil
}

func (it *sliceIter[T]) Close() error { return nil }

type rangeIter struct {
	next      int
	remaining int
}

func (it *rangeIter) Next(_ context.Context) (int, bool, error) {
	if it.remaining <= 0 {
		return 0, false, nil
	}
	v := it.next
	it.next++
	it.remaining--
	return v, true, nil
}

func (it *rangeIter) Close() error { return nil }

type repeatIter[T any] struct {
	v         T
	remaining int
}

func (it *repeatIter[T]) Next(_ context.Context) (T, bool, error) {
	if it.remaining <= 0 {
		var zero T
		return zero, false, nil
	}
	it.remaining--
	return it.v, true, nil
}

func (it *repeatIter[T]) Close() error { return nil }

type generateIter[T any] struct {
	fn    func(i int) T
	index int
}

func (it *generateIter[T]) Next(_ context.Context) (T, bool, error) {
	v := it.fn(it.index)
	it.index++
	return v, true, nil
}

func (it *generateIter[T]) Close() error { return nil }
