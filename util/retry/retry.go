package retry

import (
	"context"
	"time"

	"eventsync/config"
	db "eventsync/debug"
	"eventsync/serr"
)

// retry calls f until it succeeds, okf rejects its error, the retry
// budget is used up, or ctx is done.
func retry(ctx context.Context, f func() error, okf func(error) bool, n int, d time.Duration) error {
	var err error
	for i := 0; true; i++ {
		if err = f(); err == nil {
			return nil
		} else if !okf(err) {
			return err
		} else if i >= n {
			db.DPrintf(db.RETRY, "give up after %d retries err %v", i, err)
			return err
		}
		db.DPrintf(db.RETRY, "retry %d err %v", i, err)
		select {
		case <-ctx.Done():
			return serr.NewErr(serr.TErrInterrupted, ctx.Err())
		case <-time.After(d):
		}
	}
	return err
}

// RetryNospace is intended for operations that fail because a table
// is full, and may succeed once another caller frees a slot.
func RetryNospace(ctx context.Context, f func() error) error {
	return retry(ctx, f, serr.IsErrorRetryOK, config.Conf.Retry.MAX_RETRY, config.Conf.Retry.INTERVAL)
}
