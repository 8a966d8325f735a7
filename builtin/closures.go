package builtin

import "github.com/hupe1980/exemplar/core"

func closureUnits() []core.Unit {
	return []core.Unit{
		{
			ID:    "closure-counter",
			Title: "Closures capture variables, not values",
			Topic: TopicClosures,
			Source: `func counter() func() int {
	n := 0
	return func() int {
		n++
		return n
	}
}

a, b := counter(), counter()
fmt.Println(a(), a(), a()) // each call advances a's own n
fmt.Println(b())           // b has an independent n`,
			Body: func(rc *core.RunContext) error {
				counter := func() func() int {
					n := 0
					return func() int {
						n++
						return n
					}
				}
				a, b := counter(), counter()
				rc.Println(a(), a(), a())
				rc.Println(b())
				return nil
			},
			Expected: []string{"1 2 3", "1"},
		},
		{
			ID:    "closure-loop-variable",
			Title: "Loop variables are per-iteration since Go 1.22",
			Topic: TopicClosures,
			Source: `var fns []func() int
for i := 1; i <= 3; i++ {
	fns = append(fns, func() int { return i })
}
for _, f := range fns {
	fmt.Println(f()) // 1 2 3, not 4 4 4
}`,
			Body: func(rc *core.RunContext) error {
				var fns []func() int
				for i := 1; i <= 3; i++ {
					fns = append(fns, func() int { return i })
				}
				for _, f := range fns {
					rc.Println(f())
				}
				return nil
			},
			Expected: []string{"1", "2", "3"},
		},
	}
}
