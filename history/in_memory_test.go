package history

import (
	"testing"

	"github.com/hupe1980/exemplar/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Interface compliance (compile-time assertion)
var _ core.RunStore = (*InMemoryStore)(nil)

func TestInMemoryStore_AppendAndList(t *testing.T) {
	s := NewInMemoryStore()

	require.NoError(t, s.Append(core.RunResult{RunID: "r1", UnitID: "a", Passed: true}))
	require.NoError(t, s.Append(core.RunResult{RunID: "r2", UnitID: "b", Passed: false, Failure: core.FailureExecution}))
	require.NoError(t, s.Append(core.RunResult{RunID: "r3", UnitID: "a", Passed: true}))

	all := s.List()
	require.Len(t, all, 3)
	assert.Equal(t, "r1", all[0].RunID)
	assert.Equal(t, "r3", all[2].RunID)

	byA := s.ByUnit("a")
	require.Len(t, byA, 2)
	assert.Equal(t, "r1", byA[0].RunID)
	assert.Equal(t, "r3", byA[1].RunID)
}

func TestInMemoryStore_Summary(t *testing.T) {
	s := NewInMemoryStore()
	assert.Equal(t, core.Summary{}, s.Summary())

	require.NoError(t, s.Append(core.RunResult{UnitID: "a", Passed: true}))
	require.NoError(t, s.Append(core.RunResult{UnitID: "b", Passed: false}))

	assert.Equal(t, core.Summary{Total: 2, Passed: 1, Failed: 1}, s.Summary())

	s.Reset()
	assert.Equal(t, core.Summary{}, s.Summary())
	assert.Empty(t, s.List())
}

func TestInMemoryStore_ListIsCopy(t *testing.T) {
	s := NewInMemoryStore()
	require.NoError(t, s.Append(core.RunResult{RunID: "r1", UnitID: "a", Passed: true}))

	out := s.List()
	out[0].UnitID = "mutated"

	assert.Equal(t, "a", s.List()[0].UnitID)
}
