package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStackTrace(t *testing.T) {
	assert.Empty(t, StackTrace(stderrors.New("plain")))
	assert.Empty(t, StackTrace(nil))

	wrapped := Wrap(WithStack(stderrors.New("connection refused")), "load business")
	trace := StackTrace(wrapped)
	assert.Contains(t, trace, "TestStackTrace")
}

func TestWrapKeepsIdentity(t *testing.T) {
	sentinel := stderrors.New("sentinel")

	assert.True(t, Is(Wrapf(sentinel, "page %d", 2), sentinel))
	assert.Nil(t, Wrap(nil, "ignored"))
}
