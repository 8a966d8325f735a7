package builtin

import (
	"cmp"

	"github.com/hupe1980/exemplar/core"
)

func maxOf[T cmp.Ordered](values ...T) T {
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

func mapSlice[T, U any](in []T, f func(T) U) []U {
	out := make([]U, len(in))
	for i, v := range in {
		out[i] = f(v)
	}
	return out
}

func genericUnits() []core.Unit {
	return []core.Unit{
		{
			ID:    "generics-ordered-max",
			Title: "Type parameters with an ordered constraint",
			Topic: TopicGenerics,
			Source: `func maxOf[T cmp.Ordered](values ...T) T {
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

fmt.Println(maxOf(3, 1, 4))           // T inferred as int
fmt.Println(maxOf("pear", "apple"))   // the same code compares strings`,
			Body: func(rc *core.RunContext) error {
				rc.Println(maxOf(3, 1, 4))
				rc.Println(maxOf("pear", "apple"))
				return nil
			},
			Expected: []string{"4", "pear"},
		},
		{
			ID:    "generics-map-slice",
			Title: "A generic map over slices",
			Topic: TopicGenerics,
			Source: `func mapSlice[T, U any](in []T, f func(T) U) []U {
	out := make([]U, len(in))
	for i, v := range in {
		out[i] = f(v)
	}
	return out
}

doubled := mapSlice([]int{1, 2, 3}, func(n int) int { return n * 2 })
lengths := mapSlice([]string{"go", "gopher"}, func(s string) int { return len(s) })
fmt.Println(doubled)
fmt.Println(lengths)`,
			Body: func(rc *core.RunContext) error {
				doubled := mapSlice([]int{1, 2, 3}, func(n int) int { return n * 2 })
				lengths := mapSlice([]string{"go", "gopher"}, func(s string) int { return len(s) })
				rc.Println(doubled)
				rc.Println(lengths)
				return nil
			},
			Expected: []string{"[2 4 6]", "[2 6]"},
		},
	}
}
