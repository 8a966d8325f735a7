package builtin

import (
	"fmt"
	"math"

	"github.com/hupe1980/exemplar/core"
)

type shape interface {
	area() float64
}

type rect struct{ w, h float64 }

func (r rect) area() float64 { return r.w * r.h }

type circle struct{ r float64 }

func (c circle) area() float64 { return math.Pi * c.r * c.r }

func interfaceUnits() []core.Unit {
	return []core.Unit{
		{
			ID:    "iface-implicit-satisfaction",
			Title: "Interfaces are satisfied implicitly",
			Topic: TopicInterfaces,
			Source: `type shape interface {
	area() float64
}

type rect struct{ w, h float64 }
func (r rect) area() float64 { return r.w * r.h }

type circle struct{ r float64 }
func (c circle) area() float64 { return math.Pi * c.r * c.r }

// Neither type declares that it implements shape; having the method is enough.
shapes := []shape{rect{w: 3, h: 4}, circle{r: 1}}
for _, s := range shapes {
	fmt.Printf("%.2f\n", s.area())
}`,
			Body: func(rc *core.RunContext) error {
				shapes := []shape{rect{w: 3, h: 4}, circle{r: 1}}
				for _, s := range shapes {
					rc.Printf("%.2f\n", s.area())
				}
				return nil
			},
			Expected: []string{"12.00", "3.14"},
		},
		{
			ID:    "iface-type-switch",
			Title: "Type switches recover the concrete type",
			Topic: TopicInterfaces,
			Source: `func describe(v any) string {
	switch x := v.(type) {
	case int:
		return fmt.Sprintf("int %d", x)
	case string:
		return fmt.Sprintf("string %q", x)
	case nil:
		return "nil"
	default:
		return fmt.Sprintf("unhandled %T", x)
	}
}

for _, v := range []any{42, "go", nil, 1.5} {
	fmt.Println(describe(v))
}`,
			Body: func(rc *core.RunContext) error {
				describe := func(v any) string {
					switch x := v.(type) {
					case int:
						return fmt.Sprintf("int %d", x)
					case string:
						return fmt.Sprintf("string %q", x)
					case nil:
						return "nil"
					default:
						return fmt.Sprintf("unhandled %T", x)
					}
				}
				for _, v := range []any{42, "go", nil, 1.5} {
					rc.Println(describe(v))
				}
				return nil
			},
			Expected: []string{"int 42", `string "go"`, "nil", "unhandled float64"},
		},
	}
}
