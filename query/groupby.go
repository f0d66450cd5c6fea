package query

import "context"

// Group is one bucket of a GroupBy result: a key plus the elements that
// produced it, in their upstream relative order.
type Group[K, V any] struct {
	Key    K
	Values []V
}

// GroupBy buckets elements by the selected key. Groups come out ordered by
// the first encounter of their key in the upstream, not by key value, and
// each group's members keep their upstream relative order.
//
// Eager: the first pull drains the whole upstream. A failure while draining
// yields no partial groups.
func GroupBy[T any, K comparable](s *Seq[T], key func(T) K) *Seq[Group[K, T]] {
	return GroupBySelect(s, key, func(v T) T { return v })
}

// GroupBySelect is GroupBy with a per-element projection: each group holds
// elem(v) instead of v.
func GroupBySelect[T, V any, K comparable](s *Seq[T], key func(T) K, elem func(T) V) *Seq[Group[K, V]] {
	return &Seq[Group[K, V]]{
		create: func(ctx context.Context) Iterator[Group[K, V]] {
			return &groupIter[K, V]{
				load: func(ctx context.Context) ([]Group[K, V], error) {
					return buildGroups(ctx, s, key, elem)
				},
			}
		},
	}
}

// GroupByFunc buckets elements under an explicit key-equality capability.
// Key lookup probes existing groups linearly, so this is quadratic in the
// group count; prefer GroupBy when the key is comparable.
func GroupByFunc[T any, K any](s *Seq[T], key func(T) K, eq func(a, b K) bool) *Seq[Group[K, T]] {
	return &Seq[Group[K, T]]{
		create: func(ctx context.Context) Iterator[Group[K, T]] {
			return &groupIter[K, T]{
				load: func(ctx context.Context) ([]Group[K, T], error) {
					return buildGroupsFunc(ctx, s, key, eq)
				},
			}
		},
	}
}

// buildGroups drains s into first-encounter-ordered buckets. The ordered
// bucket slice carries group order; the index map only locates a key's
// bucket position.
func buildGroups[T, V any, K comparable](ctx context.Context, s *Seq[T], key func(T) K, elem func(T) V) ([]Group[K, V], error) {
	iter := s.create(ctx)
	defer iter.Close()

	var groups []Group[K, V]
	index := make(map[K]int)
	for {
		val, ok, err := iter.Next(ctx)
		if err != nil {
			return nil, err
		}
		if !ok {
			return groups, nil
		}
		k := key(val)
		pos, seen := index[k]
		if !seen {
			pos = len(groups)
			index[k] = pos
			groups = append(groups, Group[K, V]{Key: k})
		}
		groups[pos].Values = append(groups[pos].Values, elem(val))
	}
}

func buildGroupsFunc[T any, K any](ctx context.Context, s *Seq[T], key func(T) K, eq func(a, b K) bool) ([]Group[K, T], error) {
	iter := s.create(ctx)
	defer iter.Close()

	var groups []Group[K, T]
	for {
		val, ok, err := iter.Next(ctx)
		if err != nil {
			return nil, err
		}
		if !ok {
			return groups, nil
		}
		k := key(val)
		pos := -1
		for i := range groups {
			if eq(groups[i].Key, k) {
				pos = i
				break
			}
		}
		if pos < 0 {
			pos = len(groups)
			groups = append(groups, Group[K, T]{Key: k})
		}
		groups[pos].Values = append(groups[pos].Values, val)
	}
}

type groupIter[K, V any] struct {
	load   func(ctx context.Context) ([]Group[K, V], error)
	groups []Group[K, V]
	index  int
	loaded bool
}

func (it *groupIter[K, V]) Next(ctx context.Context) (result Group[K, V], ok bool, err error) {
	if !it.loaded {
		groups, err := it.load(ctx)
		if err != nil {
			var zero Group[K, V]
			return zero, false, err
		}
		it.groups = groups
		it.loaded = true
	}
	if it.index >= len(it.groups) {
		var zero Group[K, V]
		return zero, false, nil
	}
	g := it.groups[it.index]
	it.index++
	return g, true, nil
}

func (it *groupIter[K, V]) Close() error {
	it.groups = nil
	return nil
}
