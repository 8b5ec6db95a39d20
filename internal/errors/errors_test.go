package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type codedError struct{ code int }

func (e *codedError) Error() string { return fmt.Sprintf("code %d", e.code) }

func TestAsType(t *testing.T) {
	err := Wrap(&codedError{code: 7}, "outer")

	coded, ok := AsType[*codedError](err)
	assert.True(t, ok)
	assert.Equal(t, 7, coded.code)

	_, ok = AsType[*codedError](New("plain"))
	assert.False(t, ok)
}

func TestWrapKeepsChain(t *testing.T) {
	base := New("base")
	wrapped := Wrap(WithStack(base), "context")

	assert.True(t, Is(wrapped, base))
	assert.Equal(t, "context: base", wrapped.Error())
	assert.NoError(t, Wrap(nil, "ignored"))
	assert.Contains(t, fmt.Sprintf("%+v", Errorf("page %d", 2)), "errors_test.go")
}
