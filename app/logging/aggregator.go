package logging

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
)

// Aggregator collects log lines from any number of goroutines and makes
// them visible to a single owner goroutine, typically the one driving
// the UI draw loop. Lines written by the owner appear immediately;
// lines written by other goroutines are buffered and become visible as
// a batch on the next Flush. Lines from the same producer always keep
// their relative order.
//
// The visible log is only ever touched by the owner goroutine, so
// Snapshot and Flush need no locking on that side. Only the pending
// buffer is guarded by a mutex.
type Aggregator struct {
	owner uint64

	// Owner goroutine only.
	visible []string

	mu       sync.Mutex
	pending  []string
	npending atomic.Int64

	closed atomic.Bool

	mirror mirror
}

// New creates an Aggregator owned by the calling goroutine. The caller
// is the only goroutine that may invoke Flush, Snapshot and Clear.
func New() *Aggregator {
	a := &Aggregator{owner: goroutineID()}
	a.mirror.init()
	return a
}

// Logf formats a message and appends it to the log. It is safe to call
// from any goroutine. Messages from non-owner goroutines stay invisible
// until the owner calls Flush. Logf never fails: a panicking operand
// formatter drops the message instead of unwinding into the caller.
func (a *Aggregator) Logf(format string, args ...interface{}) {
	defer func() {
		_ = recover()
	}()

	if a.closed.Load() {
		return
	}

	msg := fmt.Sprintf(format, args...)
	a.mirror.writeLine(msg)

	if goroutineID() == a.owner {
		a.visible = append(a.visible, msg)
		return
	}

	a.mu.Lock()
	a.pending = append(a.pending, msg)
	a.npending.Store(int64(len(a.pending)))
	a.mu.Unlock()
}

// Flush moves all buffered non-owner messages into the visible log, in
// the order they were enqueued. Owner goroutine only. When nothing is
// pending this is a single atomic load; losing a race on that check
// just defers the batch to the next Flush.
func (a *Aggregator) Flush() {
	if a.npending.Load() == 0 {
		return
	}

	a.mu.Lock()
	a.visible = append(a.visible, a.pending...)
	a.pending = a.pending[:0]
	a.npending.Store(0)
	a.mu.Unlock()
}

// Snapshot returns the visible log lines for rendering. Owner goroutine
// only. The returned slice is valid until the next Clear and must not
// be mutated.
func (a *Aggregator) Snapshot() []string {
	return a.visible
}

// Len returns the number of visible lines. Owner goroutine only.
func (a *Aggregator) Len() int {
	return len(a.visible)
}

// Clear flushes any buffered messages and then empties the visible log,
// so nothing produced before the call can survive it. Owner goroutine
// only.
func (a *Aggregator) Clear() {
	a.Flush()
	a.visible = nil
}

// Close marks the aggregator dead; subsequent Logf calls are dropped.
// The visible log is left intact, call Clear first if it should go too.
func (a *Aggregator) Close() {
	a.closed.Store(true)
}

// goroutineID extracts the caller's goroutine id from the runtime.Stack
// header ("goroutine N [...]"). The runtime exposes no id API; parsing
// the header is the only stable way to tell the owner apart from
// producer goroutines.
func goroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)

	// Skip the "goroutine " prefix.
	var id uint64
	for _, c := range buf[10:n] {
		if c < '0' || c > '9' {
			break
		}
		id = id*10 + uint64(c-'0')
	}
	return id
}
