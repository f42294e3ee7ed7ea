package debounce

import (
	"sync"
	"time"
)

// DefaultWindow is the coalescing window used when none is configured.
const DefaultWindow = 500 * time.Millisecond

// Debouncer coalesces side-effecting callbacks per key: scheduling a new
// callback for a key that already has one pending supersedes the pending
// one, so only the latest callback fires when the window elapses. Rapid
// successive mutations of one budget therefore produce a single write.
//
// Scheduling never blocks; callbacks run on timer goroutines.
type Debouncer struct {
	mu      sync.Mutex
	window  time.Duration
	pending map[string]*entry
	closed  bool
}

type entry struct {
	timer *time.Timer
	fn    func()
}

// New creates a Debouncer with the given coalescing window. A
// non-positive window falls back to DefaultWindow.
func New(window time.Duration) *Debouncer {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Debouncer{
		window:  window,
		pending: make(map[string]*entry),
	}
}

// Schedule registers fn to run after the window elapses. A pending
// callback for the same key is cancelled and replaced: last write wins.
func (d *Debouncer) Schedule(key string, fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return
	}

	if prev, ok := d.pending[key]; ok {
		prev.timer.Stop()
	}

	e := &entry{fn: fn}
	e.timer = time.AfterFunc(d.window, func() {
		d.mu.Lock()
		// Only fire if still the current entry; a newer Schedule or a
		// Flush may have raced ahead of this timer.
		if cur, ok := d.pending[key]; !ok || cur != e {
			d.mu.Unlock()
			return
		}
		delete(d.pending, key)
		d.mu.Unlock()

		fn()
	})
	d.pending[key] = e
}

// Flush fires every pending callback immediately, synchronously. Used on
// shutdown so the last state of each key is not lost, and by tests to
// avoid real timers.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	var fns []func()
	for key, e := range d.pending {
		e.timer.Stop()
		fns = append(fns, e.fn)
		delete(d.pending, key)
	}
	d.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Close flushes pending callbacks and rejects further scheduling.
func (d *Debouncer) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	d.mu.Unlock()

	d.Flush()
}

// Pending reports how many keys have a callback waiting.
func (d *Debouncer) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.pending)
}
