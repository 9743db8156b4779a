package retry

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"eventsync/serr"
)

func TestSucceedsAfterNospace(t *testing.T) {
	n := 0
	err := RetryNospace(context.Background(), func() error {
		n++
		if n < 3 {
			return serr.NewErr(serr.TErrNospace, "table")
		}
		return nil
	})
	assert.Nil(t, err)
	assert.Equal(t, 3, n)
}

func TestNoRetryOtherErr(t *testing.T) {
	n := 0
	err := RetryNospace(context.Background(), func() error {
		n++
		return serr.NewErr(serr.TErrNotfound, 1)
	})
	assert.True(t, serr.IsErrCode(err, serr.TErrNotfound))
	assert.Equal(t, 1, n)
}

func TestGiveUp(t *testing.T) {
	n := 0
	err := retry(context.Background(), func() error {
		n++
		return serr.NewErr(serr.TErrNospace, "table")
	}, serr.IsErrorRetryOK, 2, time.Millisecond)
	assert.True(t, serr.IsErrCode(err, serr.TErrNospace))
	assert.Equal(t, 3, n)
}

func TestCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := retry(ctx, func() error {
		return serr.NewErr(serr.TErrNospace, "table")
	}, serr.IsErrorRetryOK, 100, time.Hour)
	assert.True(t, serr.IsErrCode(err, serr.TErrInterrupted))
}
