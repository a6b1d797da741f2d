// Package render implements the concurrency runtime around the ray
// tracer: a Future exposing progress/pause/cancel to a caller, a fixed
// worker pool that stripes image rows across goroutines, and the
// in-memory canvas the workers write into.
package render

import (
	"sync"

	"github.com/google/uuid"
)

// Future represents a long-running render as a background task: progress
// reporting with threshold waits, cooperative pause/resume, and
// cancellation, ported from dmnsn_progress (libdimension/progress.c).
// Go has no direct pthread_rwlock_t/pthread_cond_t equivalent pairing, so
// this uses a sync.RWMutex for the progress counter (read-heavy,
// written once per row) and a sync.Cond over a separate sync.Mutex for
// threshold waits, exactly mirroring the original's two-lock split.
type Future struct {
	ID uuid.UUID

	rw             sync.RWMutex
	progress, total int

	waitMu  sync.Mutex
	waitCnd *sync.Cond
	minWait float64

	pauseMu sync.Mutex
	pauseCnd *sync.Cond
	paused  bool

	cancelled bool

	done     chan struct{}
	doneOnce sync.Once
	err      error
}

// NewFuture creates a Future with an initial total of 1 (matching
// dmnsn_new_progress's default before SetTotal is called).
func NewFuture() *Future {
	f := &Future{
		ID:      uuid.New(),
		total:   1,
		minWait: 1.0,
		done:    make(chan struct{}),
	}
	f.waitCnd = sync.NewCond(&f.waitMu)
	f.pauseCnd = sync.NewCond(&f.pauseMu)
	return f
}

// SetTotal sets the number of units of work (e.g. image rows) this
// render will perform.
func (f *Future) SetTotal(total int) {
	f.rw.Lock()
	f.total = total
	f.rw.Unlock()
}

// Progress returns completed/total in [0,1].
func (f *Future) Progress() float64 {
	f.rw.RLock()
	defer f.rw.RUnlock()
	if f.total == 0 {
		return 1
	}
	return float64(f.progress) / float64(f.total)
}

// Increment signals one unit of work done, waking any Wait callers whose
// threshold is now satisfied.
func (f *Future) Increment() {
	f.rw.Lock()
	f.progress++
	f.rw.Unlock()

	f.waitMu.Lock()
	if f.Progress() >= f.minWait {
		f.minWait = 1.0
		f.waitCnd.Broadcast()
	}
	f.waitMu.Unlock()
}

// Wait blocks until Progress() >= threshold.
func (f *Future) Wait(threshold float64) {
	f.waitMu.Lock()
	defer f.waitMu.Unlock()
	for f.Progress() < threshold {
		if threshold < f.minWait {
			f.minWait = threshold
		}
		f.waitCnd.Wait()
	}
}

// Done immediately sets progress to 100% and wakes all waiters, matching
// dmnsn_done_progress. The render driver does not call it, and it does
// not unblock Join.
func (f *Future) Done() {
	f.rw.Lock()
	f.progress = f.total
	f.rw.Unlock()

	f.waitMu.Lock()
	f.waitCnd.Broadcast()
	f.waitMu.Unlock()
}

// Pause makes every worker block at its next row boundary. It returns at
// once without waiting for them: a worker in the middle of a row goes on
// writing that row's pixels after Pause has returned.
func (f *Future) Pause() {
	f.pauseMu.Lock()
	f.paused = true
	f.pauseMu.Unlock()
}

// Resume releases workers blocked in checkpoint() by Pause.
func (f *Future) Resume() {
	f.pauseMu.Lock()
	f.paused = false
	f.pauseCnd.Broadcast()
	f.pauseMu.Unlock()
}

// checkpoint is called by a worker between rows: it blocks while paused,
// then reports whether the render has been cancelled.
func (f *Future) checkpoint() bool {
	f.pauseMu.Lock()
	for f.paused {
		f.pauseCnd.Wait()
	}
	cancelled := f.cancelled
	f.pauseMu.Unlock()
	return cancelled
}

// Cancel flags the render for cooperative cancellation; workers observe
// this at the next row boundary via checkpoint.
func (f *Future) Cancel() {
	f.pauseMu.Lock()
	f.cancelled = true
	f.pauseCnd.Broadcast()
	f.pauseMu.Unlock()
}

// IsCancelled reports whether Cancel has been called.
func (f *Future) IsCancelled() bool {
	f.pauseMu.Lock()
	defer f.pauseMu.Unlock()
	return f.cancelled
}

// markDone records the render's terminal error (nil on success) and
// unblocks Join. Called exactly once by the driver goroutine.
func (f *Future) markDone(err error) {
	f.doneOnce.Do(func() {
		f.err = err
		close(f.done)
	})
}

// Join blocks until the render completes and returns its terminal error,
// surfacing the first nonzero worker exit code — matching
// dmnsn_finish_progress's join-then-return-retval contract.
func (f *Future) Join() error {
	<-f.done
	return f.err
}
