package builtin

import (
	"errors"
	"fmt"

	"github.com/hupe1980/exemplar/core"
)

var errQuotaExceeded = errors.New("quota exceeded")

type parseError struct {
	Line int
	Msg  string
}

func (e *parseError) Error() string {
	return fmt.Sprintf("parse error at line %d: %s", e.Line, e.Msg)
}

func errorUnits() []core.Unit {
	return []core.Unit{
		{
			ID:    "errors-wrapping",
			Title: "Wrapping with %w preserves the sentinel",
			Topic: TopicErrors,
			Source: `var errQuotaExceeded = errors.New("quota exceeded")

err := fmt.Errorf("upload failed: %w", errQuotaExceeded)
fmt.Println(err)
fmt.Println(errors.Is(err, errQuotaExceeded)) // the chain is inspected, not the string`,
			Body: func(rc *core.RunContext) error {
				err := fmt.Errorf("upload failed: %w", errQuotaExceeded)
				rc.Println(err)
				rc.Println(errors.Is(err, errQuotaExceeded))
				return nil
			},
			Expected: []string{"upload failed: quota exceeded", "true"},
		},
		{
			ID:    "errors-custom-type",
			Title: "Custom error types and errors.As",
			Topic: TopicErrors,
			Source: `type parseError struct {
	Line int
	Msg  string
}

func (e *parseError) Error() string {
	return fmt.Sprintf("parse error at line %d: %s", e.Line, e.Msg)
}

err := fmt.Errorf("loading config: %w", &parseError{Line: 7, Msg: "unexpected '}'"})
var pe *parseError
if errors.As(err, &pe) {
	fmt.Println("line:", pe.Line) // structured data survives the wrap
}
fmt.Println(err)`,
			Body: func(rc *core.RunContext) error {
				err := fmt.Errorf("loading config: %w", &parseError{Line: 7, Msg: "unexpected '}'"})
				var pe *parseError
				if errors.As(err, &pe) {
					rc.Println("line:", pe.Line)
				}
				rc.Println(err)
				return nil
			},
			Expected: []string{
				"line: 7",
				"loading config: parse error at line 7: unexpected '}'",
			},
		},
	}
}
