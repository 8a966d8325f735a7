package catalog

import (
	"testing"

	"github.com/hupe1980/exemplar/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUnit(id, topic string) core.Unit {
	return core.Unit{
		ID:    id,
		Title: "Unit " + id,
		Topic: topic,
		Body:  func(*core.RunContext) error { return nil },
	}
}

func TestCatalog_RegisterAndGet(t *testing.T) {
	c := New()
	u := newUnit("sum", "Basics")
	require.NoError(t, c.Register(u))

	got, err := c.Get("sum")
	require.NoError(t, err)
	assert.Equal(t, "sum", got.ID)
	assert.Equal(t, "Basics", got.Topic)
	assert.Equal(t, 1, c.Len())
}

func TestCatalog_DuplicateID(t *testing.T) {
	c := New()
	require.NoError(t, c.Register(newUnit("dup", "Basics")))

	err := c.Register(newUnit("dup", "Other"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateID)
	assert.Equal(t, 1, c.Len())
}

func TestCatalog_InvalidUnit(t *testing.T) {
	c := New()

	err := c.Register(core.Unit{Title: "no id", Body: func(*core.RunContext) error { return nil }})
	assert.ErrorIs(t, err, ErrInvalidUnit)

	err = c.Register(core.Unit{ID: "no-body"})
	assert.ErrorIs(t, err, ErrInvalidUnit)
}

func TestCatalog_GetUnknown(t *testing.T) {
	c := New()
	_, err := c.Get("missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCatalog_MustRegisterPanics(t *testing.T) {
	c := New()
	c.MustRegister(newUnit("once", "Basics"))
	assert.Panics(t, func() { c.MustRegister(newUnit("once", "Basics")) })
}

func TestCatalog_AllPreservesRegistrationOrder(t *testing.T) {
	c := New()
	ids := []string{"c", "a", "b"}
	for _, id := range ids {
		require.NoError(t, c.Register(newUnit(id, "Basics")))
	}

	var seen []string
	for u := range c.All() {
		seen = append(seen, u.ID)
	}
	assert.Equal(t, ids, seen)
}

func TestCatalog_ByTopic(t *testing.T) {
	c := New()
	require.NoError(t, c.Register(newUnit("e1", "Enums")))
	require.NoError(t, c.Register(newUnit("c1", "Closures")))
	require.NoError(t, c.Register(newUnit("e2", "Enums")))

	collect := func() []string {
		var ids []string
		for u := range c.ByTopic("Enums") {
			assert.Equal(t, "Enums", u.Topic)
			ids = append(ids, u.ID)
		}
		return ids
	}

	first := collect()
	assert.Equal(t, []string{"e1", "e2"}, first)

	// Re-iteration yields the identical sequence.
	assert.Equal(t, first, collect())
}

func TestCatalog_ByTopicEarlyBreak(t *testing.T) {
	c := New()
	require.NoError(t, c.Register(newUnit("e1", "Enums")))
	require.NoError(t, c.Register(newUnit("e2", "Enums")))

	var ids []string
	for u := range c.ByTopic("Enums") {
		ids = append(ids, u.ID)
		break
	}
	assert.Equal(t, []string{"e1"}, ids)
}

func TestCatalog_Topics(t *testing.T) {
	c := New()
	require.NoError(t, c.Register(newUnit("e1", "Enums")))
	require.NoError(t, c.Register(newUnit("c1", "Closures")))
	require.NoError(t, c.Register(newUnit("e2", "Enums")))

	assert.Equal(t, []string{"Enums", "Closures"}, c.Topics())
}
