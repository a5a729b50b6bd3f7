package messages

import (
	"sync"
	"time"
)

// monotonicClock hands out strictly increasing UTC timestamps at the given
// resolution, so messages written back to back never share an instant.
type monotonicClock struct {
	mu   sync.Mutex
	now  func() time.Time
	res  time.Duration
	last time.Time
}

func newMonotonicClock(res time.Duration) *monotonicClock {
	return &monotonicClock{now: time.Now, res: res}
}

func (c *monotonicClock) Next() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := c.now().UTC().Truncate(c.res)
	if !t.After(c.last) {
		t = c.last.Add(c.res)
	}
	c.last = t
	return t
}
