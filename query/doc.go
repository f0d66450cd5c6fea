// Package query provides a deferred-execution query engine over in-memory
// sequences.
//
// A Seq is a lazy, re-enumerable description of a pipeline — no work happens
// until values are pulled via a terminal such as Collect, Count, or First.
// Each operator wraps its upstream sequence and pulls from it on demand, so
// composing operators never enumerates anything. Enumerating the same Seq
// twice re-runs the whole pipeline against the current state of the root
// source.
//
// # Operators
//
// Streaming (constant work per pull):
//
//   - Filter: keep elements matching a predicate
//   - Map / MapIndexed: transform each element, optionally with its position
//   - FlatMap: transform each element into a sequence and flatten depth-first
//   - Tap: side-effect without altering the element
//   - Concat, Take, Skip, TakeWhile, SkipWhile
//
// Eager (full upstream drainage before the first result):
//
//   - SortBy / ThenBy chains: stable multi-key ordering
//   - Distinct / DistinctBy / DistinctFunc: first-occurrence dedup
//   - GroupBy: first-encounter-ordered grouping
//   - Join: inner equi-join with a one-pass right-side lookup
//
// # Terminals
//
// Collect, CollectMap, Drain, ForEach, Count, Any, All, Contains,
// First/Single (and OrDefault variants), Sum, Average, Min, Max, Aggregate,
// Fold.
//
// # Usage
//
//	people := query.FromSlice([]Person{{"Aino", 17}, {"Mika", 22}})
//	adults := query.Filter(people, func(p Person) bool { return p.Age >= 18 })
//	names := query.Map(adults, func(_ context.Context, p Person) (string, error) {
//	    return p.Name, nil
//	})
//	got, _ := query.Collect(ctx, names) // ["Mika"]
//
// # Caller responsibilities
//
// Predicates, selectors, and combiners must be pure functions of their
// arguments for the determinism guarantees to hold; the engine does not
// enforce purity. A backing slice mutated between enumerations is re-read
// live on the next enumeration; mutation during an enumeration is undefined
// behavior and must be synchronized by the caller. The engine takes no locks
// over backing data.
package query
