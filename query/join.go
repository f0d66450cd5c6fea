package query

import "context"

// Join performs an inner equi-join. For each left element, one result is
// produced per right element with an equal key, combined by combine; left
// elements with no match are suppressed. Results come out grouped by left
// element in left order, with matches in the right sequence's relative order.
//
// The right sequence is drained once into a keyed lookup on the first pull;
// the left sequence then streams.
func Join[L, R any, K comparable, O any](
	left *Seq[L],
	right *Seq[R],
	leftKey func(L) K,
	rightKey func(R) K,
	combine func(L, R) O,
) *Seq[O] {
	return &Seq[O]{
		create: func(ctx context.Context) Iterator[O] {
			return &joinIter[L, R, K, O]{
				left:    left,
				leftKey: leftKey,
				combine: combine,
				buildLookup: func(ctx context.Context) (func(K) []R, error) {
					groups, err := buildGroups(ctx, right, rightKey, func(r R) R { return r })
					if err != nil {
						return nil, err
					}
					index := make(map[K]int, len(groups))
					for i, g := range groups {
						index[g.Key] = i
					}
					return func(k K) []R {
						if i, ok := index[k]; ok {
							return groups[i].Values
						}
						return nil
					}, nil
				},
			}
		},
	}
}

// JoinFunc is Join under an explicit key-equality capability. The right-side
// lookup degrades to a linear probe per left element, so prefer Join when the
// key is comparable.
func JoinFunc[L, R any, K any, O any](
	left *Seq[L],
	right *Seq[R],
	leftKey func(L) K,
	rightKey func(R) K,
	eq func(a, b K) bool,
	combine func(L, R) O,
) *Seq[O] {
	return &Seq[O]{
		create: func(ctx context.Context) Iterator[O] {
			return &joinIter[L, R, K, O]{
				left:    left,
				leftKey: leftKey,
				combine: combine,
				buildLookup: func(ctx context.Context) (func(K) []R, error) {
					groups, err := buildGroupsFunc(ctx, right, rightKey, eq)
					if err != nil {
						return nil, err
					}
					return func(k K) []R {
						for i := range groups {
							if eq(groups[i].Key, k) {
								return groups[i].Values
							}
						}
						return nil
					}, nil
				},
			}
		},
	}
}

type joinIter[L, R any, K any, O any] struct {
	left        *Seq[L]
	leftKey     func(L) K
	combine     func(L, R) O
	buildLookup func(ctx context.Context) (func(K) []R, error)

	lookup   func(K) []R
	leftIter Iterator[L]
	current  L
	matches  []R
	pos      int
}

func (it *joinIter[L, R, K, O]) Next(ctx context.Context) (result O, ok bool, err error) {
	if it.lookup == nil {
		lookup, err := it.buildLookup(ctx)
		if err != nil {
			var zero O
			return zero, false, err
		}
		it.lookup = lookup
		it.leftIter = it.left.create(ctx)
	}
	for {
		if it.pos < len(it.matches) {
			r := it.matches[it.pos]
			it.pos++
			return it.combine(it.current, r), true, nil
		}
		l, ok, err := it.leftIter.Next(ctx)
		if err != nil || !ok {
			var zero O
			return zero, false, err
		}
		it.current = l
		it.matches = it.lookup(it.leftKey(l))
		it.pos = 0
	}
}

func (it *joinIter[L, R, K, O]) Close() error {
	it.lookup = nil
	it.matches = nil
	if it.leftIter != nil {
		return it.leftIter.Close()
	}
	return nil
}
