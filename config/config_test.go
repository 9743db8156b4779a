package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLocal(t *testing.T) {
	assert.Equal(t, 256, Conf.Event.MAX_EVENTS)
	assert.Equal(t, 10*time.Millisecond, Conf.Retry.INTERVAL)
	assert.Equal(t, 3*time.Second, Conf.EvTest.MAX_DELAY)
}

func TestOverride(t *testing.T) {
	c := ReadConfig(local)
	err := c.Override("event:\n  max_events: 8\n")
	assert.Nil(t, err)
	assert.Equal(t, 8, c.Event.MAX_EVENTS)
	assert.Equal(t, 20, c.Retry.MAX_RETRY)
}

func TestBadConfig(t *testing.T) {
	_, err := ParseConfig("event: [")
	assert.NotNil(t, err)
}
