package query

import (
	"cmp"
	"context"

	qerrors "github.com/kbukum/querykit/errors"
)

// Number constrains the numeric element types accepted by Sum and Average.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Sum adds all elements. An empty sequence sums to zero, the additive
// identity — never an error.
func Sum[T Number](ctx context.Context, s *Seq[T]) (T, error) {
	return SumBy(ctx, s, func(v T) T { return v })
}

// SumBy adds the selected value of every element.
func SumBy[T any, N Number](ctx context.Context, s *Seq[T], sel func(T) N) (N, error) {
	var total N
	err := Drain(ctx, s, func(_ context.Context, v T) error {
		total += sel(v)
		return nil
	})
	if err != nil {
		var zero N
		return zero, err
	}
	return total, nil
}

// Average returns the arithmetic mean of all elements. Fails with
// EMPTY_SEQUENCE on zero elements.
func Average[T Number](ctx context.Context, s *Seq[T]) (float64, error) {
	return AverageBy(ctx, s, func(v T) T { return v })
}

// AverageBy returns the arithmetic mean of the selected values.
func AverageBy[T any, N Number](ctx context.Context, s *Seq[T], sel func(T) N) (float64, error) {
	var total float64
	n := 0
	err := Drain(ctx, s, func(_ context.Context, v T) error {
		total += float64(sel(v))
		n++
		return nil
	})
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, qerrors.EmptySequence("query.Average")
	}
	return total / float64(n), nil
}

// Min returns the smallest element. Fails with EMPTY_SEQUENCE on zero
// elements.
func Min[T cmp.Ordered](ctx context.Context, s *Seq[T]) (T, error) {
	return MinBy(ctx, s, func(v T) T { return v })
}

// MinBy returns the smallest selected value across all elements.
func MinBy[T any, K cmp.Ordered](ctx context.Context, s *Seq[T], sel func(T) K) (K, error) {
	return extremumBy(ctx, s, sel, "query.Min", func(candidate, best K) bool {
		return candidate < best
	})
}

// Max returns the largest element. Fails with EMPTY_SEQUENCE on zero
// elements.
func Max[T cmp.Ordered](ctx context.Context, s *Seq[T]) (T, error) {
	return MaxBy(ctx, s, func(v T) T { return v })
}

// MaxBy returns the largest selected value across all elements.
func MaxBy[T any, K cmp.Ordered](ctx context.Context, s *Seq[T], sel func(T) K) (K, error) {
	return extremumBy(ctx, s, sel, "query.Max", func(candidate, best K) bool {
		return candidate > best
	})
}

func extremumBy[T any, K cmp.Ordered](ctx context.Context, s *Seq[T], sel func(T) K, op string, better func(candidate, best K) bool) (K, error) {
	var best K
	found := false
	err := Drain(ctx, s, func(_ context.Context, v T) error {
		k := sel(v)
		if !found || better(k, best) {
			best = k
			found = true
		}
		return nil
	})
	if err != nil {
		var zero K
		return zero, err
	}
	if !found {
		var zero K
		return zero, qerrors.EmptySequence(op)
	}
	return best, nil
}

// Aggregate reduces the sequence left to right with a binary combiner: the
// first element seeds the accumulator and folding starts from the second.
// Fails with EMPTY_SEQUENCE on zero elements.
func Aggregate[T any](ctx context.Context, s *Seq[T], combine func(acc, v T) T) (T, error) {
	var acc T
	seeded := false
	err := Drain(ctx, s, func(_ context.Context, v T) error {
		if !seeded {
			acc = v
			seeded = true
			return nil
		}
		acc = combine(acc, v)
		return nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	if !seeded {
		var zero T
		return zero, qerrors.EmptySequence("query.Aggregate")
	}
	return acc, nil
}

// Fold reduces the sequence left to right starting from seed. An empty
// sequence returns the seed unchanged.
func Fold[T, R any](ctx context.Context, s *Seq[T], seed R, fn func(acc R, v T) R) (R, error) {
	acc := seed
	err := Drain(ctx, s, func(_ context.Context, v T) error {
		acc = fn(acc, v)
		return nil
	})
	if err != nil {
		var zero R
		return zero, err
	}
	return acc, nil
}
