package query

import (
	"context"

	qerrors "github.com/kbukum/querykit/errors"
)

// Filter keeps only elements that satisfy the predicate, preserving relative
// order. The predicate must be a pure function of its argument.
func Filter[T any](s *Seq[T], fn func(T) bool) *Seq[T] {
	return &Seq[T]{
		create: func(ctx context.Context) Iterator[T] {
			return &filterIter[T]{source: s.create(ctx), fn: fn}
		},
	}
}

// Map transforms each element using fn, keeping cardinality and order.
// An error returned by fn stops enumeration at that element and propagates
// to the caller wrapped with code CALLER_FUNCTION; the original error stays
// reachable through errors.Is/As.
func Map[I, O any](s *Seq[I], fn func(context.Context, I) (O, error)) *Seq[O] {
	return &Seq[O]{
		create: func(ctx context.Context) Iterator[O] {
			return &mapIter[I, O]{source: s.create(ctx), fn: fn}
		},
	}
}

// MapIndexed transforms each element together with its zero-based position
// within this operator's enumeration. The position counts elements arriving
// at this operator, not elements of the root source, so upstream filtering
// renumbers as expected.
func MapIndexed[I, O any](s *Seq[I], fn func(ctx context.Context, i int, v I) (O, error)) *Seq[O] {
	return &Seq[O]{
		create: func(ctx context.Context) Iterator[O] {
			return &mapIndexedIter[I, O]{source: s.create(ctx), fn: fn}
		},
	}
}

// FlatMap transforms each element into a sequence and flattens the results
// depth-first: each inner sequence is fully enumerated before the next
// upstream element is pulled. An empty inner sequence contributes nothing.
func FlatMap[I, O any](s *Seq[I], fn func(context.Context, I) (*Seq[O], error)) *Seq[O] {
	return &Seq[O]{
		create: func(ctx context.Context) Iterator[O] {
			return &flatMapIter[I, O]{source: s.create(ctx), fn: fn}
		},
	}
}

// Tap calls fn as a side-effect for each element, then passes the element
// through unchanged. Use for logging, metrics, or mid-pipeline publishing.
func Tap[T any](s *Seq[T], fn func(context.Context, T) error) *Seq[T] {
	return &Seq[T]{
		create: func(ctx context.Context) Iterator[T] {
			return &tapIter[T]{source: s.create(ctx), fn: fn}
		},
	}
}

// Concat joins sequences end to end. All elements of the first sequence are
// yielded before the second, and so on.
func Concat[T any](seqs ...*Seq[T]) *Seq[T] {
	return &Seq[T]{
		create: func(ctx context.Context) Iterator[T] {
			iters := make([]Iterator[T], len(seqs))
			for i, s := range seqs {
				iters[i] = s.create(ctx)
			}
			return &concatIter[T]{iters: iters}
		},
	}
}

// Take yields at most n leading elements.
func Take[T any](s *Seq[T], n int) *Seq[T] {
	return &Seq[T]{
		create: func(ctx context.Context) Iterator[T] {
			return &takeIter[T]{source: s.create(ctx), remaining: n}
		},
	}
}

// Skip discards the first n elements and yields the rest.
func Skip[T any](s *Seq[T], n int) *Seq[T] {
	return &Seq[T]{
		create: func(ctx context.Context) Iterator[T] {
			return &skipIter[T]{source: s.create(ctx), toSkip: n}
		},
	}
}

// TakeWhile yields leading elements while fn returns true, then stops pulling
// from upstream entirely.
func TakeWhile[T any](s *Seq[T], fn func(T) bool) *Seq[T] {
	return &Seq[T]{
		create: func(ctx context.Context) Iterator[T] {
			return &takeWhileIter[T]{source: s.create(ctx), fn: fn}
		},
	}
}

// SkipWhile discards leading elements while fn returns true, then yields
// every remaining element regardless of the predicate.
func SkipWhile[T any](s *Seq[T], fn func(T) bool) *Seq[T] {
	return &Seq[T]{
		create: func(ctx context.Context) Iterator[T] {
			return &skipWhileIter[T]{source: s.create(ctx), fn: fn, skipping: true}
		},
	}
}

// --- Iterator implementations ---

type filterIter[T any] struct {
	source Iterator[T]
	fn     func(T) bool
}

func (it *filterIter[T]) Next(ctx context.Context) (result T, ok bool, err error) {
	for {
		val, ok, err := it.source.Next(ctx)
		if err != nil || !ok {
			return val, false, err
		}
		if it.fn(val) {
			return val, true, nil
		}
	}
}

func (it *filterIter[T]) Close() error { return it.source.Close() }

type mapIter[I, O any] struct {
	source Iterator[I]
	fn     func(context.Context, I) (O, error)
}

func (it *mapIter[I, O]) Next(ctx context.Context) (result O, ok bool, err error) {
	val, ok, err := it.source.Next(ctx)
	if err != nil || !ok {
		var zero O
		return zero, false, err
	}
	out, err := it.fn(ctx, val)
	if err != nil {
		var zero O
		return zero, false, qerrors.CallerFunction("query.Map", err)
	}
	return out, true, nil
}

func (it *mapIter[I, O]) Close() error { return it.source.Close() }

type mapIndexedIter[I, O any] struct {
	source Iterator[I]
	fn     func(context.Context, int, I) (O, error)
	index  int
}

func (it *mapIndexedIter[I, O]) Next(ctx context.Context) (result O, ok bool, err error) {
	val, ok, err := it.source.Next(ctx)
	if err != nil || !ok {
		var zero O
		return zero, false, err
	}
	out, err := it.fn(ctx, it.index, val)
	if err != nil {
		var zero O
		return zero, false, qerrors.CallerFunction("query.MapIndexed", err)
	}
	it.index++
	return out, true, nil
}

func (it *mapIndexedIter[I, O]) Close() error { return it.source.Close() }

type flatMapIter[I, O any] struct {
	source  Iterator[I]
	fn      func(context.Context, I) (*Seq[O], error)
	current Iterator[O]
}

func (it *flatMapIter[I, O]) Next(ctx context.Context) (result O, ok bool, err error) {
	for {
		if it.current != nil {
			val, ok, err := it.current.Next(ctx)
			if err != nil {
				var zero O
				return zero, false, err
			}
			if ok {
				return val, true, nil
			}
			_ = it.current.Close()
			it.current = nil
		}
		in, ok, err := it.source.Next(ctx)
		if err != nil || !ok {
			var zero O
			return zero, false, err
		}
		inner, err := it.fn(ctx, in)
		if err != nil {
			var zero O
			return zero, false, qerrors.CallerFunction("query.FlatMap", err)
		}
		it.current = inner.create(ctx)
	}
}

func (it *flatMapIter[I, O]) Close() error {
	if it.current != nil {
		_ = it.current.Close()
	}
	return it.source.Close()
}

type tapIter[T any] struct {
	source Iterator[T]
	fn     func(context.Context, T) error
}

func (it *tapIter[T]) Next(ctx context.Context) (result T, ok bool, err error) {
	val, ok, err := it.source.Next(ctx)
	if err != nil || !ok {
		return val, ok, err
	}
	if err := it.fn(ctx, val); err != nil {
		var zero T
		return zero, false, qerrors.CallerFunction("query.Tap", err)
	}
	return val, true, nil
}

func (it *tapIter[T]) Close() error { return it.source.Close() }

type concatIter[T any] struct {
	iters []Iterator[T]
	index int
}

func (it *concatIter[T]) Next(ctx context.Context) (result T, ok bool, err error) {
	for it.index < len(it.iters) {
		val, ok, err := it.iters[it.index].Next(ctx)
		if err != nil {
			return val, false, err
		}
		if ok {
			return val, true, nil
		}
		it.index++
	}
	var zero T
	return zero, false, nil
}

func (it *concatIter[T]) Close() error {
	var firstErr error
	for _, iter := range it.iters {
		if err := iter.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

type takeIter[T any] struct {
	source    Iterator[T]
	remaining int
}

func (it *takeIter[T]) Next(ctx context.Context) (result T, ok bool, err error) {
	if it.remaining <= 0 {
		var zero T
		return zero, false, nil
	}
	val, ok, err := it.source.Next(ctx)
	if err != nil || !ok {
		return val, false, err
	}
	it.remaining--
	return val, true, nil
}

func (it *takeIter[T]) Close() error { return it.source.Close() }

type skipIter[T any] struct {
	source Iterator[T]
	toSkip int
}

func (it *skipIter[T]) Next(ctx context.Context) (result T, ok bool, err error) {
	for it.toSkip > 0 {
		_, ok, err := it.source.Next(ctx)
		if err != nil || !ok {
			var zero T
			return zero, false, err
		}
		it.toSkip--
	}
	return it.source.Next(ctx)
}

func (it *skipIter[T]) Close() error { return it.source.Close() }

type takeWhileIter[T any] struct {
	source Iterator[T]
	fn     func(T) bool
	done   bool
}

func (it *takeWhileIter[T]) Next(ctx context.Context) (result T, ok bool, err error) {
	if it.done {
		var zero T
		return zero, false, nil
	}
	val, ok, err := it.source.Next(ctx)
	if err != nil || !ok {
		it.done = true
		return val, false, err
	}
	if !it.fn(val) {
		it.done = true
		var zero T
		return zero, false, nil
	}
	return val, true, nil
}

func (it *takeWhileIter[T]) Close() error { return it.source.Close() }

type skipWhileIter[T any] struct {
	source   Iterator[T]
	fn       func(T) bool
	skipping bool
}

func (it *skipWhileIter[T]) Next(ctx context.Context) (result T, ok bool, err error) {
	for {
		val, ok, err := it.source.Next(ctx)
		if err != nil || !ok {
			return val, false, err
		}
		if it.skipping && it.fn(val) {
			continue
		}
		it.skipping = false
		return val, true, nil
	}
}

func (it *skipWhileIter[T]) Close() error { return it.source.Close() }
