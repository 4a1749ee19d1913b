package services

import (
	"sync"
	"time"
)

// DefaultQuietPeriod is how long input must stay unchanged before the
// debouncer settles on it.
const DefaultQuietPeriod = 200 * time.Millisecond

// Debouncer converts a rapid input stream into a stable settled value.
// Each Observe cancels any pending quiet-period timer and starts a new
// one; the emit callback fires only once no new input has arrived for the
// quiet period. One Debouncer per active input field; no I/O.
type Debouncer struct {
	quiet time.Duration
	emit  func(string)

	mu         sync.Mutex
	timer      *time.Timer
	generation uint64
	settled    string
	hasSettled bool
	stopped    bool
}

// NewDebouncer creates a debouncer with the given quiet period. A
// non-positive quiet period falls back to DefaultQuietPeriod. emit is
// called from a timer goroutine once per settled value.
func NewDebouncer(quiet time.Duration, emit func(string)) *Debouncer {
	if quiet <= 0 {
		quiet = DefaultQuietPeriod
	}
	return &Debouncer{quiet: quiet, emit: emit}
}

// Observe feeds a new raw value. Any pending settle is superseded and its
// timer cancelled outright. Observing a value equal to the last settled
// one schedules nothing, so a torn-down and recreated pipeline carrying
// the same value produces no spurious emission.
func (d *Debouncer) Observe(value string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.generation++

	if d.hasSettled && value == d.settled {
		return
	}

	gen := d.generation
	d.timer = time.AfterFunc(d.quiet, func() {
		d.settle(gen, value)
	})
}

// settle commits value as settled unless it was superseded or the
// debouncer was stopped while the timer callback was pending.
func (d *Debouncer) settle(gen uint64, value string) {
	d.mu.Lock()
	if d.stopped || gen != d.generation {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	d.settled = value
	d.hasSettled = true
	d.mu.Unlock()

	d.emit(value)
}

// Settled returns the last settled value, if any.
func (d *Debouncer) Settled() (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.settled, d.hasSettled
}

// Stop cancels any pending timer. No emit fires after Stop returns.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	d.generation++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
