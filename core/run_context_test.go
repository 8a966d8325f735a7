package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunContext_CapturesPrintedOutput(t *testing.T) {
	rc := NewRunContext(context.Background(), "run-1", Unit{ID: "u"}, nil)

	rc.Println("hello")
	rc.Printf("%d-%d\n", 1, 2)
	rc.Print("no newline")

	assert.Equal(t, []string{"hello", "1-2", "no newline"}, rc.Lines())
	assert.Equal(t, "hello\n1-2\nno newline", rc.Raw())
}

func TestRunContext_TrailingNewlineDoesNotAddEmptyLine(t *testing.T) {
	rc := NewRunContext(context.Background(), "run-1", Unit{ID: "u"}, nil)
	rc.Println("only")
	assert.Equal(t, []string{"only"}, rc.Lines())
}

func TestRunContext_NoOutput(t *testing.T) {
	rc := NewRunContext(context.Background(), "run-1", Unit{ID: "u"}, nil)
	assert.Nil(t, rc.Lines())
}

func TestRunContext_EmbeddedContextAndAccessors(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rc := NewRunContext(ctx, "run-1", Unit{ID: "u", Topic: "T"}, nil)

	assert.Error(t, rc.Err())
	assert.Equal(t, "run-1", rc.RunID())
	assert.Equal(t, "u", rc.Unit().ID)
	assert.NotNil(t, rc.Logger())
}

func TestRunContext_NilContextDefaults(t *testing.T) {
	rc := NewRunContext(nil, "run-1", Unit{ID: "u"}, nil) //nolint:staticcheck // nil ctx fallback is the behavior under test
	assert.NoError(t, rc.Err())
}
