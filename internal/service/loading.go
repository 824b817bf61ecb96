// internal/service/loading.go
package service

import (
	"sync"
	"sync/atomic"
)

// LoadingFlag is the shared busy state of an in-flight backend call. The
// owning view reads it to disable submit controls; at most one workflow
// should hold write access to a given flag.
type LoadingFlag struct {
	busy atomic.Bool
	// writeMu serializes a change with its notification so subscribers see
	// changes in the order they happened.
	writeMu sync.Mutex

	mu        sync.Mutex
	nextID    int
	listeners map[int]func(bool)
}

// NewLoadingFlag returns a flag that is not loading.
func NewLoadingFlag() *LoadingFlag {
	return &LoadingFlag{listeners: make(map[int]func(bool))}
}

// Loading reports whether a call is in flight.
func (f *LoadingFlag) Loading() bool {
	return f.busy.Load()
}

// Set stores v and notifies subscribers when the value changes. Subscribers
// must not call Set or TryAcquire.
func (f *LoadingFlag) Set(v bool) {
	f.writeMu.Lock()
	defer f.writeMu.Unlock()

	if f.busy.Swap(v) != v {
		f.notify(v)
	}
}

// TryAcquire flips the flag from false to true. It returns false, leaving the
// flag untouched, when a call is already in flight.
func (f *LoadingFlag) TryAcquire() bool {
	f.writeMu.Lock()
	defer f.writeMu.Unlock()

	if !f.busy.CompareAndSwap(false, true) {
		return false
	}
	f.notify(true)
	return true
}

// Subscribe registers fn to be called on every change. The returned func
// removes the subscription.
func (f *LoadingFlag) Subscribe(fn func(bool)) func() {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := f.nextID
	f.nextID++
	f.listeners[id] = fn
	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		delete(f.listeners, id)
	}
}

func (f *LoadingFlag) notify(v bool) {
	f.mu.Lock()
	fns := make([]func(bool), 0, len(f.listeners))
	for _, fn := range f.listeners {
		fns = append(fns, fn)
	}
	f.mu.Unlock()

	for _, fn := range fns {
		fn(v)
	}
}
