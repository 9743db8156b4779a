package event

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"eventsync/serr"
)

const MAX = 8

func TestCapacity(t *testing.T) {
	tab := NewTable(MAX)
	for i := 0; i < MAX; i++ {
		id, err := tab.Open()
		assert.Nil(t, err)
		assert.Equal(t, Tid(i), id)
	}
	assert.Equal(t, MAX, tab.Len())

	_, err := tab.Open()
	assert.True(t, serr.IsErrCode(err, serr.TErrNospace), "err %v", err)

	e, ok := tab.Remove(5)
	assert.True(t, ok)
	tab.Put(e)

	id, err := tab.Open()
	assert.Nil(t, err)
	assert.Equal(t, Tid(5), id)
	_, err = tab.Open()
	assert.True(t, serr.IsErrCode(err, serr.TErrNospace))
}

func TestLowestFree(t *testing.T) {
	tab := NewTable(MAX)
	for i := 0; i < 4; i++ {
		tab.Open()
	}
	for _, id := range []Tid{2, 0} {
		e, ok := tab.Remove(id)
		assert.True(t, ok)
		tab.Put(e)
	}
	id, _ := tab.Open()
	assert.Equal(t, Tid(0), id)
	id, _ = tab.Open()
	assert.Equal(t, Tid(2), id)
	id, _ = tab.Open()
	assert.Equal(t, Tid(4), id)
}

func TestBadIds(t *testing.T) {
	tab := NewTable(MAX)
	for _, id := range []Tid{-1, MAX, MAX + 1, 0, 3} {
		_, ok := tab.Lookup(id)
		assert.False(t, ok, id)
		_, ok = tab.Remove(id)
		assert.False(t, ok, id)
	}
}

func TestRemoveTwice(t *testing.T) {
	tab := NewTable(MAX)
	id, _ := tab.Open()
	e, ok := tab.Remove(id)
	assert.True(t, ok)
	_, ok = tab.Remove(id)
	assert.False(t, ok)
	tab.Put(e)
}

func TestRefKeepsEvent(t *testing.T) {
	tab := NewTable(MAX)
	id, _ := tab.Open()
	e, ok := tab.Lookup(id)
	assert.True(t, ok)

	e1, ok := tab.Remove(id)
	assert.True(t, ok)
	assert.Same(t, e, e1)
	e1.Close()
	tab.Put(e1)

	// e is still referenced, so a new open must not reuse it.
	id1, _ := tab.Open()
	assert.Equal(t, id, id1)
	e2, ok := tab.Lookup(id1)
	assert.True(t, ok)
	assert.NotSame(t, e, e2)
	assert.False(t, e.IsActive())
	assert.Nil(t, e.Wait(context.Background()))
	tab.Put(e)
	tab.Put(e2)
}

func TestNoResurrection(t *testing.T) {
	tab := NewTable(1)
	id, _ := tab.Open()
	e, _ := tab.Lookup(id)
	e.Signal()
	gen := e.Gen()
	tab.Put(e)

	e, _ = tab.Remove(id)
	e.Close()
	tab.Put(e)

	id1, err := tab.Open()
	assert.Nil(t, err)
	assert.Equal(t, id, id1)
	e1, ok := tab.Lookup(id1)
	assert.True(t, ok)
	assert.True(t, e1.IsActive())
	assert.False(t, e1.IsSignaled())
	assert.Greater(t, e1.Gen(), gen)
	tab.Put(e1)

	nnew, nreuse := tab.Allocs()
	assert.Equal(t, 1, nnew)
	assert.Equal(t, 1, nreuse)
}

func TestConcurOpenRemove(t *testing.T) {
	const N = 16
	tab := NewTable(MAX)
	var wg sync.WaitGroup
	for i := 0; i < N; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				id, err := tab.Open()
				if err != nil {
					assert.True(t, serr.IsErrCode(err, serr.TErrNospace))
					continue
				}
				e, ok := tab.Remove(id)
				if assert.True(t, ok) {
					assert.Equal(t, id, e.Id())
					e.Close()
					tab.Put(e)
				}
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 0, tab.Len())
}
