package timeline

import "github.com/cbegin/stan-go/internal/notation"

// Cursor steps through a timeline in time order.
type Cursor struct {
	t     *Timeline
	index int
	now   notation.Duration
}

func (t *Timeline) Cursor() *Cursor {
	return &Cursor{t: t, now: notation.ZeroDuration()}
}

// Advance moves the cursor to `to` and returns every event whose onset is at
// or before it and has not been returned yet. Moving backwards is a no-op.
func (c *Cursor) Advance(to notation.Duration) []Event {
	if to.Less(c.now) {
		return nil
	}
	c.now = to
	start := c.index
	for c.index < len(c.t.events) && !to.Less(c.t.events[c.index].Onset) {
		c.index++
	}
	if start == c.index {
		return nil
	}
	out := make([]Event, c.index-start)
	copy(out, c.t.events[start:c.index])
	return out
}

// Position is the time of the last Advance.
func (c *Cursor) Position() notation.Duration { return c.now }

// Done reports whether every event has been returned.
func (c *Cursor) Done() bool { return c.index >= len(c.t.events) }

func (c *Cursor) Reset() {
	c.index = 0
	c.now = notation.ZeroDuration()
}
