package freelist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type obj struct {
	n int
}

func TestReuse(t *testing.T) {
	fl := NewFreeList[obj](2)
	o, reused := fl.New()
	assert.False(t, reused)
	o.n = 1
	fl.Free(o)
	assert.Equal(t, 1, fl.Len())

	o1, reused := fl.New()
	assert.True(t, reused)
	assert.Same(t, o, o1)
	assert.Equal(t, 0, fl.Len())

	nnew, nreuse := fl.Stats()
	assert.Equal(t, 1, nnew)
	assert.Equal(t, 1, nreuse)
}

func TestBounded(t *testing.T) {
	fl := NewFreeList[obj](1)
	a, _ := fl.New()
	b, _ := fl.New()
	fl.Free(a)
	fl.Free(b)
	assert.Equal(t, 1, fl.Len())
	c, reused := fl.New()
	assert.True(t, reused)
	assert.Same(t, a, c)
}
