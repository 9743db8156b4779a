package clnt_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"eventsync/serr"
	"eventsync/test"
)

func TestEvent(t *testing.T) {
	ts := test.NewTstate(t)
	ev, err := ts.Clnt.NewEvent(context.Background())
	assert.Nil(t, err)

	ch := make(chan error)
	go func() {
		ev1 := ts.Clnt.Attach(ev.Id())
		ch <- ev1.Wait(context.Background())
	}()
	ts.WaitBlocked(ev.Id(), 1)

	assert.Nil(t, ev.Signal())
	assert.Nil(t, <-ch)
	assert.Nil(t, ev.Destroy())
	err = ev.Destroy()
	assert.True(t, serr.IsErrCode(err, serr.TErrNotfound))
	ts.Shutdown()
}

func TestNewEventWaitsForSlot(t *testing.T) {
	ts := test.NewTstateMax(t, 1)
	ev, err := ts.Clnt.NewEvent(context.Background())
	assert.Nil(t, err)

	ch := make(chan error)
	go func() {
		_, err := ts.Clnt.NewEvent(context.Background())
		ch <- err
	}()

	time.Sleep(30 * time.Millisecond)
	select {
	case <-ch:
		assert.False(t, true, "NewEvent should be retrying")
	default:
	}

	assert.Nil(t, ev.Destroy())
	assert.Nil(t, <-ch)
	assert.Equal(t, 1, ts.Len())
	ts.Shutdown()
}

func TestNewEventCancel(t *testing.T) {
	ts := test.NewTstateMax(t, 1)
	_, err := ts.Clnt.NewEvent(context.Background())
	assert.Nil(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = ts.Clnt.NewEvent(ctx)
	assert.True(t, serr.IsErrCode(err, serr.TErrInterrupted), "err %v", err)
	ts.Shutdown()
}
