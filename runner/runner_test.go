package runner

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/hupe1980/exemplar/catalog"
	"github.com/hupe1980/exemplar/core"
	"github.com/hupe1980/exemplar/history"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildCatalog(t *testing.T, units ...core.Unit) *catalog.Catalog {
	t.Helper()
	c := catalog.New()
	for _, u := range units {
		require.NoError(t, c.Register(u))
	}
	return c
}

func TestRunner_PassingUnit(t *testing.T) {
	c := buildCatalog(t, core.Unit{
		ID:    "sum",
		Topic: "Basics",
		Body: func(rc *core.RunContext) error {
			rc.Println(1 + 2)
			return nil
		},
		Expected: []string{"3"},
	})

	r := New(c)
	res, err := r.Run(context.Background(), "sum")
	require.NoError(t, err)

	assert.True(t, res.Passed)
	assert.Equal(t, core.FailureNone, res.Failure)
	assert.Equal(t, []string{"3"}, res.Output)
	assert.Equal(t, "sum", res.UnitID)
	assert.NotEmpty(t, res.RunID)
}

func TestRunner_BodyError(t *testing.T) {
	c := buildCatalog(t, core.Unit{
		ID:    "bad",
		Topic: "Basics",
		Body: func(rc *core.RunContext) error {
			rc.Println("before failure")
			return errors.New("boom")
		},
	})

	res, err := New(c).Run(context.Background(), "bad")
	require.NoError(t, err)

	assert.False(t, res.Passed)
	assert.Equal(t, core.FailureExecution, res.Failure)
	assert.Contains(t, res.Err, "boom")
	// Output captured before the failure is still reported.
	assert.Equal(t, []string{"before failure"}, res.Output)
}

func TestRunner_PanicRecovered(t *testing.T) {
	c := buildCatalog(t, core.Unit{
		ID:    "panics",
		Topic: "Basics",
		Body: func(*core.RunContext) error {
			panic("boom")
		},
	})

	res, err := New(c).Run(context.Background(), "panics")
	require.NoError(t, err)

	assert.False(t, res.Passed)
	assert.Equal(t, core.FailureExecution, res.Failure)
	assert.Contains(t, res.Err, "boom")
}

func TestRunner_NoExpectationPasses(t *testing.T) {
	c := buildCatalog(t, core.Unit{
		ID:    "demo",
		Topic: "Basics",
		Body: func(rc *core.RunContext) error {
			rc.Println("anything goes")
			return nil
		},
	})

	res, err := New(c).Run(context.Background(), "demo")
	require.NoError(t, err)
	assert.True(t, res.Passed)
}

func TestRunner_OutputMismatch(t *testing.T) {
	c := buildCatalog(t, core.Unit{
		ID:    "off-by-one",
		Topic: "Basics",
		Body: func(rc *core.RunContext) error {
			rc.Println("42")
			return nil
		},
		Expected: []string{"41"},
	})

	res, err := New(c).Run(context.Background(), "off-by-one")
	require.NoError(t, err)

	assert.False(t, res.Passed)
	assert.Equal(t, core.FailureMismatch, res.Failure)
	assert.Contains(t, res.Detail, `expected "41", got "42"`)
}

func TestRunner_UnknownUnit(t *testing.T) {
	r := New(catalog.New())
	_, err := r.Run(context.Background(), "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestRunner_SinkReceivesOutput(t *testing.T) {
	c := buildCatalog(t, core.Unit{
		ID:    "hello",
		Topic: "Basics",
		Body: func(rc *core.RunContext) error {
			rc.Println("hello")
			rc.Println("world")
			return nil
		},
	})

	var buf bytes.Buffer
	r := New(c, func(o *Options) { o.Sink = core.NewWriterSink(&buf) })

	_, err := r.Run(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "hello\nworld\n", buf.String())
}

func TestRunner_RunAll(t *testing.T) {
	c := buildCatalog(t,
		core.Unit{ID: "a", Topic: "T", Body: func(rc *core.RunContext) error { rc.Println("a"); return nil }, Expected: []string{"a"}},
		core.Unit{ID: "b", Topic: "T", Body: func(*core.RunContext) error { return errors.New("broken") }},
		core.Unit{ID: "c", Topic: "T", Body: func(rc *core.RunContext) error { rc.Println("c"); return nil }, Expected: []string{"c"}},
	)

	r := New(c)

	var results []core.RunResult
	for res := range r.RunAll(context.Background()) {
		results = append(results, res)
	}

	// One result per unit, registration order, no short-circuit on failure.
	require.Len(t, results, 3)
	assert.Equal(t, "a", results[0].UnitID)
	assert.Equal(t, "b", results[1].UnitID)
	assert.Equal(t, "c", results[2].UnitID)
	assert.True(t, results[0].Passed)
	assert.False(t, results[1].Passed)
	assert.True(t, results[2].Passed)
}

func TestRunner_RunAllCancelled(t *testing.T) {
	c := buildCatalog(t,
		core.Unit{ID: "a", Topic: "T", Body: func(*core.RunContext) error { return nil }},
		core.Unit{ID: "b", Topic: "T", Body: func(*core.RunContext) error { return nil }},
	)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	count := 0
	for range New(c).RunAll(ctx) {
		count++
	}
	assert.Zero(t, count)
}

func TestRunner_FreshBufferPerRun(t *testing.T) {
	c := buildCatalog(t, core.Unit{
		ID:    "once",
		Topic: "Basics",
		Body: func(rc *core.RunContext) error {
			rc.Println("line")
			return nil
		},
		Expected: []string{"line"},
	})

	r := New(c)
	first, err := r.Run(context.Background(), "once")
	require.NoError(t, err)
	second, err := r.Run(context.Background(), "once")
	require.NoError(t, err)

	assert.True(t, first.Passed)
	assert.True(t, second.Passed)
	assert.Equal(t, []string{"line"}, second.Output)
	assert.NotEqual(t, first.RunID, second.RunID)
}

func TestRunner_HistoryRecordsResults(t *testing.T) {
	c := buildCatalog(t,
		core.Unit{ID: "a", Topic: "T", Body: func(*core.RunContext) error { return nil }},
		core.Unit{ID: "b", Topic: "T", Body: func(*core.RunContext) error { return errors.New("broken") }},
	)

	store := history.NewInMemoryStore()
	r := New(c, func(o *Options) { o.History = store })

	for range r.RunAll(context.Background()) {
	}

	assert.Equal(t, core.Summary{Total: 2, Passed: 1, Failed: 1}, store.Summary())
}
