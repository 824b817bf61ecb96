package service

import (
	"context"
	"sync"
)

// Task is the pending result of a submission.
type Task struct {
	done chan struct{}
	err  error
}

func startTask(fn func() error) *Task {
	t := &Task{done: make(chan struct{})}
	go func() {
		defer close(t.done)
		t.err = fn()
	}()
	return t
}

// Done is closed once the submission has completed.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until the submission completes or ctx ends, returning the
// backend error if any.
func (t *Task) Wait(ctx context.Context) error {
	select {
	case <-t.done:
		return t.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// lifetime ties in-flight work to the workflow that started it. Once ended,
// requests are cancelled and late completions are discarded.
type lifetime struct {
	ctx    context.Context
	cancel context.CancelFunc
	once   sync.Once
}

func newLifetime() *lifetime {
	ctx, cancel := context.WithCancel(context.Background())
	return &lifetime{ctx: ctx, cancel: cancel}
}

func (l *lifetime) alive() bool {
	return l.ctx.Err() == nil
}

func (l *lifetime) end() {
	l.once.Do(l.cancel)
}

// bind returns a context cancelled when either parent or the lifetime ends.
func (l *lifetime) bind(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)
	stop := context.AfterFunc(l.ctx, cancel)
	return ctx, func() {
		stop()
		cancel()
	}
}
