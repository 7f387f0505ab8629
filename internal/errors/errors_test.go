package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type codedError struct{ code string }

func (e *codedError) Error() string { return e.code }

func TestAsType_FindsWrappedError(t *testing.T) {
	err := Wrap(&codedError{code: "STOCK"}, "place order")

	got, ok := AsType[*codedError](err)
	assert.True(t, ok)
	assert.Equal(t, "STOCK", got.code)

	_, ok = AsType[*codedError](New("plain"))
	assert.False(t, ok)
}

func TestWrapKeepsCause(t *testing.T) {
	base := New("root")
	err := Wrapf(base, "layer %d", 2)

	assert.True(t, Is(err, base))
	assert.Equal(t, base, Cause(err))
	assert.Equal(t, "layer 2: root", err.Error())
}
