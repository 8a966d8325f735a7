package builtin

import (
	"strings"
	"unicode/utf8"

	"github.com/hupe1980/exemplar/core"
)

func stringUnits() []core.Unit {
	return []core.Unit{
		{
			ID:    "strings-bytes-vs-runes",
			Title: "len counts bytes, not characters",
			Topic: TopicStrings,
			Source: `s := "héllo"
fmt.Println(len(s))                        // bytes: é is two bytes in UTF-8
fmt.Println(utf8.RuneCountInString(s))     // runes
for i, r := range s {
	fmt.Printf("%d:%c ", i, r)             // range decodes runes; note the index jump
}
fmt.Println()`,
			Body: func(rc *core.RunContext) error {
				s := "héllo"
				rc.Println(len(s))
				rc.Println(utf8.RuneCountInString(s))
				for i, r := range s {
					rc.Printf("%d:%c ", i, r)
				}
				rc.Println()
				return nil
			},
			Expected: []string{"6", "5", "0:h 1:é 3:l 4:l 5:o "},
		},
		{
			ID:    "strings-builder",
			Title: "strings.Builder avoids quadratic concatenation",
			Topic: TopicStrings,
			Source: `var b strings.Builder
for i := 0; i < 3; i++ {
	b.WriteString("go")
}
fmt.Println(b.String())
fmt.Println(b.Len())

// Strings are immutable; building via + in a loop reallocates every time,
// while Builder grows a single buffer.`,
			Body: func(rc *core.RunContext) error {
				var b strings.Builder
				for i := 0; i < 3; i++ {
					b.WriteString("go")
				}
				rc.Println(b.String())
				rc.Println(b.Len())
				return nil
			},
			Expected: []string{"gogogo", "6"},
		},
	}
}
