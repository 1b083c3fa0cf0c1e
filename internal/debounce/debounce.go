// Package debounce coalesces rapid successive values into one delayed
// notification per quiet period.
package debounce

import (
	"sync"
	"time"
)

const DefaultDelay = 500 * time.Millisecond

// Debouncer buffers values passed to Set and invokes the callback with the
// most recent one once no newer value arrives within the delay. A stopped
// debouncer never fires again.
type Debouncer[T any] struct {
	delay time.Duration
	fn    func(T)

	mu      sync.Mutex
	timer   *time.Timer
	gen     uint64
	last    T
	stopped bool
}

func New[T any](delay time.Duration, fn func(T)) *Debouncer[T] {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Debouncer[T]{delay: delay, fn: fn}
}

// Set buffers v immediately and schedules the callback after the quiet
// period. A newer Set supersedes any pending notification.
func (d *Debouncer[T]) Set(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	d.last = v
	// Stop does not cancel a callback that has already expired and is
	// waiting on the mutex; the generation check in fire handles that one.
	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.timer = time.AfterFunc(d.delay, func() { d.fire(gen) })
}

// Value returns the currently buffered value.
func (d *Debouncer[T]) Value() T {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.last
}

// Stop cancels any pending notification. Guaranteed on teardown so a stale
// callback cannot fire after its owner is gone.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// fire delivers the buffered value only when it still belongs to the current
// generation. A Set that landed between timer expiry and this call owns a
// fresh timer; the superseded callback must not deliver the new value early.
func (d *Debouncer[T]) fire(gen uint64) {
	d.mu.Lock()
	if d.stopped || gen != d.gen {
		d.mu.Unlock()
		return
	}
	v := d.last
	d.timer = nil
	d.mu.Unlock()

	d.fn(v)
}
