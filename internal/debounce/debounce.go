// Package debounce delays an action until input has been quiet for a while.
package debounce

import (
	"sync"
	"time"

	"fyne.io/fyne/v2"
)

// Timer is the part of *time.Timer the debouncer needs.
type Timer interface {
	Stop() bool
}

// AfterFunc schedules f to run once after d.
type AfterFunc func(d time.Duration, f func()) Timer

// Option configures a Debouncer.
type Option func(*Debouncer)

// WithAfterFunc replaces time.AfterFunc, mainly for tests.
func WithAfterFunc(after AfterFunc) Option {
	return func(d *Debouncer) { d.after = after }
}

// WithDispatch sets how the action reaches the UI thread. Defaults to fyne.Do.
func WithDispatch(dispatch func(func())) Option {
	return func(d *Debouncer) { d.dispatch = dispatch }
}

// Debouncer is a single-shot timer restarted on every Trigger.
type Debouncer struct {
	action   func()
	after    AfterFunc
	dispatch func(func())

	mu    sync.Mutex
	delay time.Duration
	timer Timer
	// gen invalidates callbacks of timers that were stopped too late.
	gen uint64
}

// New returns a debouncer that runs action once input pauses for delay.
func New(delay time.Duration, action func(), opts ...Option) *Debouncer {
	d := &Debouncer{
		action:   action,
		delay:    delay,
		after:    func(delay time.Duration, f func()) Timer { return time.AfterFunc(delay, f) },
		dispatch: fyne.Do,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Trigger stops any pending timer and starts a new one.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopLocked()
	gen := d.gen
	d.timer = d.after(d.delay, func() { d.fire(gen) })
}

// Flush cancels the pending timer and runs the action now, on the calling goroutine.
func (d *Debouncer) Flush() {
	d.Stop()
	d.action()
}

// Stop cancels the pending timer, if any.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopLocked()
}

// Pending reports whether a timer is running.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

// SetDelay changes the delay used by later Triggers.
func (d *Debouncer) SetDelay(delay time.Duration) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.delay = delay
}

// Delay returns the current delay.
func (d *Debouncer) Delay() time.Duration {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.delay
}

func (d *Debouncer) stopLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.gen++
}

func (d *Debouncer) fire(gen uint64) {
	d.mu.Lock()
	if gen != d.gen {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	d.mu.Unlock()

	d.dispatch(d.action)
}
