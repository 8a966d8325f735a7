package builtin

import (
	"fmt"

	"github.com/hupe1980/exemplar/core"
)

func deferUnits() []core.Unit {
	return []core.Unit{
		{
			ID:    "defer-lifo-order",
			Title: "Deferred calls run last-in, first-out",
			Topic: TopicDefer,
			Source: `func steps(print func(...any)) {
	print("open")
	defer print("close")       // runs last
	defer print("flush")       // runs before close
	print("write")
}
// Arguments are evaluated at defer time, the call happens at return.`,
			Body: func(rc *core.RunContext) error {
				steps := func() {
					rc.Println("open")
					defer rc.Println("close")
					defer rc.Println("flush")
					rc.Println("write")
				}
				steps()
				return nil
			},
			Expected: []string{"open", "write", "flush", "close"},
		},
		{
			ID:    "recover-panic",
			Title: "recover converts a panic into an error",
			Topic: TopicDefer,
			Source: `func safeDivide(a, b int) (q int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("recovered: %v", r)
		}
	}()
	return a / b, nil // b == 0 panics with a runtime error
}

q, err := safeDivide(10, 2)
fmt.Println(q, err)
_, err = safeDivide(1, 0)
fmt.Println(err)`,
			Body: func(rc *core.RunContext) error {
				safeDivide := func(a, b int) (q int, err error) {
					defer func() {
						if r := recover(); r != nil {
							err = fmt.Errorf("recovered: %v", r)
						}
					}()
					return a / b, nil
				}
				q, err := safeDivide(10, 2)
				rc.Println(q, err)
				_, err = safeDivide(1, 0)
				rc.Println(err)
				return nil
			},
			Expected: []string{
				"5 <nil>",
				"recovered: runtime error: integer divide by zero",
			},
		},
	}
}
