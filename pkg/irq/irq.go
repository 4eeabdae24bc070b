package irq

import (
	"math/bits"
	"sync"
)

// Line identifies a single interrupt line.
type Line uint8

// LineSet is a bitmask of interrupt lines.
type LineSet uint32

// MaxLines is the number of lines a Controller supports.
const MaxLines = 32

// Mask returns the set containing only this line.
func (l Line) Mask() LineSet {
	return LineSet(1) << l
}

// Lines builds a set from individual lines.
func Lines(ls ...Line) LineSet {
	var s LineSet
	for _, l := range ls {
		s |= l.Mask()
	}
	return s
}

// Has reports whether the set contains the line.
func (s LineSet) Has(l Line) bool {
	return s&l.Mask() != 0
}

func (s LineSet) lowest() Line {
	return Line(bits.TrailingZeros32(uint32(s)))
}

// Handler services one interrupt line. It runs with the whole controller
// held: no other handler and no critical section can run concurrently.
type Handler func()

// Controller dispatches a small fixed set of interrupt lines with
// mask, pend and deliver semantics: a line triggered while masked, or
// while a handler or critical section is in flight, is latched pending
// and delivered exactly once when the line becomes deliverable again.
// Multiple triggers of a latched line collapse into one delivery.
type Controller struct {
	mu       sync.Mutex
	cond     *sync.Cond
	handlers [MaxLines]Handler
	masked   LineSet
	pending  LineSet
	busy     bool
}

// NewController creates a Controller with all lines unmasked and unwired.
func NewController() *Controller {
	c := &Controller{}
	c.cond = sync.NewCond(&c.mu)
	return c
}

// Handle installs the handler for a line. Installing must happen before
// the line can be triggered; there is no handler-swap synchronization.
func (c *Controller) Handle(l Line, h Handler) {
	c.mu.Lock()
	c.handlers[l] = h
	c.mu.Unlock()
}

// Mask masks the lines in set until Unmask.
func (c *Controller) Mask(set LineSet) {
	c.mu.Lock()
	c.masked |= set
	c.mu.Unlock()
}

// Unmask unmasks the lines in set and delivers any pended ones.
func (c *Controller) Unmask(set LineSet) {
	c.mu.Lock()
	c.masked &^= set
	if c.busy {
		// In-flight handler or section delivers on completion.
		c.mu.Unlock()
		return
	}
	c.busy = true
	c.mu.Unlock()
	c.deliver()
}

// Pending returns the currently latched lines.
func (c *Controller) Pending() LineSet {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending
}

// Trigger raises a line. It never blocks on a held critical section:
// if the line is masked, unwired, or the controller is busy, the line
// is latched and delivered later. Otherwise the handler runs on the
// calling goroutine before Trigger returns.
func (c *Controller) Trigger(l Line) {
	c.mu.Lock()
	if c.busy || c.masked.Has(l) || c.handlers[l] == nil {
		c.pending |= l.Mask()
		c.mu.Unlock()
		return
	}
	h := c.handlers[l]
	c.busy = true
	c.mu.Unlock()
	h()
	c.deliver()
}

// RunMasked masks set, runs body with exclusive access to everything the
// set's handlers touch, then restores the previous mask state and delivers
// deferred lines. The mask is restored even if body panics.
//
// Caller obligations, not detected here: RunMasked must not be nested and
// must never be entered from inside a handler (both deadlock, the same way
// masking your own executing interrupt source would on hardware), and body
// must not wait for a line in set to fire.
func (c *Controller) RunMasked(set LineSet, body func() error) error {
	c.mu.Lock()
	for c.busy {
		c.cond.Wait()
	}
	prev := c.masked
	c.masked |= set
	c.busy = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.masked = prev
		c.mu.Unlock()
		c.deliver()
	}()
	return body()
}

// deliver drains pended deliverable lines, then releases the controller.
// Caller must have set busy.
func (c *Controller) deliver() {
	for {
		c.mu.Lock()
		ready := c.pending &^ c.masked
		for ready != 0 {
			l := ready.lowest()
			if c.handlers[l] != nil {
				c.pending &^= l.Mask()
				h := c.handlers[l]
				c.mu.Unlock()
				h()
				break
			}
			// Unwired lines stay latched until a handler is installed.
			ready &^= l.Mask()
		}
		if ready == 0 {
			c.busy = false
			c.cond.Broadcast()
			c.mu.Unlock()
			return
		}
	}
}
