package testutils

import (
	"time"
)

// TestClock is a deterministic clock. Every call to Now returns the current reading and advances it by step.
type TestClock struct {
	time time.Time
	step time.Duration
}

func NewTestClock(t time.Time, step time.Duration) *TestClock {
	return &TestClock{
		time: t,
		step: step,
	}
}

func (c *TestClock) Now() time.Time {
	res := c.time
	c.time = c.time.Add(c.step)
	return res
}
