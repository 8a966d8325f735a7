package builtin

import (
	"strings"

	"github.com/hupe1980/exemplar/core"
)

type weekday int

const (
	sunday weekday = iota
	monday
	tuesday
)

func (d weekday) String() string {
	return [...]string{"Sunday", "Monday", "Tuesday"}[d]
}

type permission uint8

const (
	permRead permission = 1 << iota
	permWrite
	permExec
)

func (p permission) String() string {
	var parts []string
	if p&permRead != 0 {
		parts = append(parts, "read")
	}
	if p&permWrite != 0 {
		parts = append(parts, "write")
	}
	if p&permExec != 0 {
		parts = append(parts, "exec")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

func enumUnits() []core.Unit {
	return []core.Unit{
		{
			ID:    "enum-iota",
			Title: "iota enumerations with a String method",
			Topic: TopicEnums,
			Source: `type weekday int

const (
	sunday weekday = iota // 0
	monday                // 1
	tuesday               // 2
)

func (d weekday) String() string {
	return [...]string{"Sunday", "Monday", "Tuesday"}[d]
}

fmt.Println(monday)             // fmt uses the Stringer
fmt.Println(int(tuesday))       // the underlying value is still there
fmt.Println(monday < tuesday)   // values stay ordered`,
			Body: func(rc *core.RunContext) error {
				rc.Println(monday)
				rc.Println(int(tuesday))
				rc.Println(monday < tuesday)
				return nil
			},
			Expected: []string{"Monday", "2", "true"},
		},
		{
			ID:    "enum-bit-flags",
			Title: "Bit flags built with iota shifts",
			Topic: TopicEnums,
			Source: `type permission uint8

const (
	permRead  permission = 1 << iota // 1
	permWrite                        // 2
	permExec                         // 4
)

p := permRead | permExec
fmt.Println(p)                  // read|exec
fmt.Println(p&permWrite != 0)   // membership test
p &^= permExec                  // clear a flag
fmt.Println(p)`,
			Body: func(rc *core.RunContext) error {
				p := permRead | permExec
				rc.Println(p)
				rc.Println(p&permWrite != 0)
				p &^= permExec
				rc.Println(p)
				return nil
			},
			Expected: []string{"read|exec", "false", "read"},
		},
	}
}
