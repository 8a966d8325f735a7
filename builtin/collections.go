package builtin

import (
	"sort"

	"github.com/hupe1980/exemplar/core"
)

func collectionUnits() []core.Unit {
	return []core.Unit{
		{
			ID:    "slices-share-backing-array",
			Title: "Slices share their backing array",
			Topic: TopicCollections,
			Source: `base := []int{1, 2, 3, 4}
head := base[:2]      // same backing array as base
head[0] = 99          // visible through base
fmt.Println(base)

clone := append([]int(nil), base...) // a real copy
clone[0] = 1
fmt.Println(base)
fmt.Println(clone)`,
			Body: func(rc *core.RunContext) error {
				base := []int{1, 2, 3, 4}
				head := base[:2]
				head[0] = 99
				rc.Println(base)

				clone := append([]int(nil), base...)
				clone[0] = 1
				rc.Println(base)
				rc.Println(clone)
				return nil
			},
			Expected: []string{"[99 2 3 4]", "[99 2 3 4]", "[1 2 3 4]"},
		},
		{
			ID:    "maps-deterministic-iteration",
			Title: "Map iteration order is random; sort the keys",
			Topic: TopicCollections,
			Source: `ages := map[string]int{"ada": 36, "carol": 41, "bob": 29}

// Ranging over a map yields keys in a randomized order. For stable
// output, collect and sort the keys first.
keys := make([]string, 0, len(ages))
for k := range ages {
	keys = append(keys, k)
}
sort.Strings(keys)
for _, k := range keys {
	fmt.Printf("%s=%d\n", k, ages[k])
}`,
			Body: func(rc *core.RunContext) error {
				ages := map[string]int{"ada": 36, "carol": 41, "bob": 29}
				keys := make([]string, 0, len(ages))
				for k := range ages {
					keys = append(keys, k)
				}
				sort.Strings(keys)
				for _, k := range keys {
					rc.Printf("%s=%d\n", k, ages[k])
				}
				return nil
			},
			Expected: []string{"ada=36", "bob=29", "carol=41"},
		},
	}
}
