package exemplar

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/hupe1980/exemplar/builtin"
	"github.com/hupe1980/exemplar/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExemplar_RegisterAndRun(t *testing.T) {
	x := New()

	require.NoError(t, x.Register(core.Unit{
		ID:    "sum",
		Topic: "Basics",
		Body: func(rc *core.RunContext) error {
			rc.Println(1 + 2)
			return nil
		},
		Expected: []string{"3"},
	}))

	res, err := x.Run(context.Background(), "sum")
	require.NoError(t, err)
	assert.True(t, res.Passed)
	assert.Equal(t, []string{"3"}, res.Output)
}

func TestExemplar_RunAllWithSinkAndSummary(t *testing.T) {
	var buf bytes.Buffer

	x := New(func(o *Options) {
		o.Sink = core.NewWriterSink(&buf)
	})

	require.NoError(t, x.Register(core.Unit{
		ID: "hello", Topic: "Basics",
		Body:     func(rc *core.RunContext) error { rc.Println("hello"); return nil },
		Expected: []string{"hello"},
	}))
	require.NoError(t, x.Register(core.Unit{
		ID: "broken", Topic: "Basics",
		Body: func(*core.RunContext) error { return errors.New("boom") },
	}))

	count := 0
	for range x.RunAll(context.Background()) {
		count++
	}

	assert.Equal(t, 2, count)
	assert.Equal(t, "hello\n", buf.String())
	assert.Equal(t, core.Summary{Total: 2, Passed: 1, Failed: 1}, x.Summary())
}

func TestExemplar_SeededWithBuiltinCatalog(t *testing.T) {
	x := New(func(o *Options) { o.Catalog = builtin.Catalog() })

	assert.Equal(t, len(builtin.Units()), x.Catalog().Len())

	res, err := x.Run(context.Background(), "closure-counter")
	require.NoError(t, err)
	assert.True(t, res.Passed)
}
