package cronjob

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSweeper struct{ calls atomic.Int32 }

func (c *countingSweeper) Sweep() int {
	c.calls.Add(1)
	return 1
}

func TestScheduler_RunsSweep(t *testing.T) {
	s := NewScheduler(nil)
	sw := &countingSweeper{}
	require.NoError(t, s.ScheduleSweep("* * * * * *", sw))

	s.Start()
	defer s.Stop()

	assert.Eventually(t, func() bool { return sw.calls.Load() > 0 }, 3*time.Second, 50*time.Millisecond)
}

func TestScheduler_RejectsBadSpec(t *testing.T) {
	s := NewScheduler(nil)
	assert.Error(t, s.ScheduleSweep("not a spec", &countingSweeper{}))
}
