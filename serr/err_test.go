package serr

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	for c := TErrNoerror; c <= TErrError; c++ {
		assert.True(t, c.String() != "unknown error", c)
	}
	assert.Equal(t, "unknown error", (TErrError + 1).String())
}

func TestIsErrCode(t *testing.T) {
	err := NewErr(TErrNotfound, 7)
	assert.True(t, IsErrCode(err, TErrNotfound))
	assert.False(t, IsErrCode(err, TErrNospace))
	assert.Equal(t, "7", err.Obj)

	wrapped := fmt.Errorf("close: %w", err)
	assert.True(t, IsErrCode(wrapped, TErrNotfound))

	assert.False(t, IsErrCode(io.EOF, TErrNotfound))
	assert.False(t, IsErrCode(nil, TErrNotfound))
}

func TestEOF(t *testing.T) {
	err := NewErrError(io.EOF)
	assert.True(t, errors.Is(err, io.EOF))
	assert.True(t, IsErrCode(err, TErrError))
}

func TestRetryOK(t *testing.T) {
	assert.True(t, IsErrorRetryOK(NewErr(TErrNospace, "table")))
	assert.False(t, IsErrorRetryOK(NewErr(TErrNotfound, 1)))
}
