package builtin

import (
	"context"
	"testing"

	"github.com/hupe1980/exemplar/runner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_BuildsWithoutPanic(t *testing.T) {
	c := Catalog()
	assert.Equal(t, len(Units()), c.Len())
	assert.NotEmpty(t, c.Topics())
}

func TestUnits_HaveCompleteMetadata(t *testing.T) {
	seen := map[string]bool{}
	for _, u := range Units() {
		assert.NotEmpty(t, u.ID)
		assert.NotEmpty(t, u.Title, "unit %s", u.ID)
		assert.NotEmpty(t, u.Topic, "unit %s", u.ID)
		assert.NotEmpty(t, u.Source, "unit %s", u.ID)
		assert.NotNil(t, u.Body, "unit %s", u.ID)
		assert.True(t, u.HasExpectation(), "unit %s must be self-verifying", u.ID)
		assert.False(t, seen[u.ID], "duplicate id %s", u.ID)
		seen[u.ID] = true
	}
}

// Every built-in unit must reproduce its own expected output.
func TestUnits_SelfVerify(t *testing.T) {
	r := runner.New(Catalog())

	for res := range r.RunAll(context.Background()) {
		res := res
		t.Run(res.UnitID, func(t *testing.T) {
			require.Empty(t, res.Err)
			assert.True(t, res.Passed, "detail: %s output: %v", res.Detail, res.Output)
		})
	}
}

func TestTopics_CoverEveryConstant(t *testing.T) {
	want := []string{
		TopicClosures, TopicGenerics, TopicErrors, TopicInterfaces,
		TopicEnums, TopicDefer, TopicCollections, TopicStrings, TopicConcurrency,
	}
	assert.Equal(t, want, Catalog().Topics())
}
