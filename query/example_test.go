package query_test

import (
	"context"
	"fmt"

	"github.com/kbukum/querykit/query"
)

func ExampleFilter() {
	ctx := context.Background()
	evens := query.Filter(query.Range(1, 6), func(n int) bool { return n%2 == 0 })
	got, _ := query.Collect(ctx, evens)
	fmt.Println(got)
	// Output: [2 4 6]
}

func ExampleGroupBy() {
	ctx := context.Background()
	cities := query.FromSlice([]string{"Helsinki", "Espoo", "Helsinki", "Tampere"})
	groups, _ := query.Collect(ctx, query.GroupBy(cities, func(c string) string { return c }))
	for _, g := range groups {
		fmt.Printf("%s(%d)\n", g.Key, len(g.Values))
	}
	// Output:
	// Helsinki(2)
	// Espoo(1)
	// Tampere(1)
}

func ExampleSortBy() {
	ctx := context.Background()
	type stop struct {
		City string
		Age  int
	}
	stops := query.FromSlice([]stop{{"Helsinki", 41}, {"Espoo", 22}, {"Helsinki", 22}})
	ordered := query.ThenByDesc(
		query.SortBy(stops, func(s stop) string { return s.City }),
		func(s stop) int { return s.Age },
	)
	got, _ := query.Collect(ctx, ordered.Seq())
	fmt.Println(got)
	// Output: [{Espoo 22} {Helsinki 41} {Helsinki 22}]
}

func ExampleAggregate() {
	ctx := context.Background()
	total, _ := query.Aggregate(ctx, query.Range(1, 5), func(acc, v int) int { return acc + v })
	fmt.Println(total)
	// Output: 15
}
