// Package resource models one remote fetch as seen by a screen: idle, loading,
// then either a value or a single user-facing message.
package resource

import (
	"context"
	"errors"
	"sync"
)

type State int

const (
	Idle State = iota
	Loading
	Ready
	Failed
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	default:
		return "idle"
	}
}

// Fetch produces the value of a resource.
type Fetch[T any] func(ctx context.Context) (T, error)

// Snapshot is a consistent view of a resource at one instant.
type Snapshot[T any] struct {
	State   State
	Value   T
	Message string
}

// classified is satisfied by errors that carry a message meant for the user.
type classified interface {
	error
	Classified() bool
}

// Resource holds the lifecycle of one fetch. The zero value is not usable; call New.
type Resource[T any] struct {
	mu       sync.Mutex
	fallback string
	gen      uint64
	state    State
	value    T
	message  string
}

// New returns an idle resource that reports fallback for failures without a
// classified message of their own.
func New[T any](fallback string) *Resource[T] {
	return &Resource[T]{fallback: fallback}
}

// Load runs fetch and settles the resource with its outcome. It returns the
// fetch error unchanged. If the resource was unmounted or reloaded while the
// fetch ran, the outcome is dropped.
func (r *Resource[T]) Load(ctx context.Context, fetch Fetch[T]) error {
	gen := r.begin()
	value, err := fetch(ctx)
	r.settle(gen, value, err)
	return err
}

// Start is Load on its own goroutine. The returned channel is closed once the
// fetch has settled (or been dropped).
func (r *Resource[T]) Start(ctx context.Context, fetch Fetch[T]) <-chan struct{} {
	gen := r.begin()
	done := make(chan struct{})
	go func() {
		defer close(done)
		value, err := fetch(ctx)
		r.settle(gen, value, err)
	}()
	return done
}

// Begin marks the resource as loading and returns a token for Settle. Screens
// that assemble one value from several fetches use it around a Join.
func (r *Resource[T]) Begin() uint64 { return r.begin() }

// Settle records an outcome for the load identified by gen. It reports
// whether the outcome was applied.
func (r *Resource[T]) Settle(gen uint64, value T, err error) bool {
	return r.settle(gen, value, err)
}

// Unmount detaches the resource. Loads still in flight are ignored when they finish.
func (r *Resource[T]) Unmount() {
	r.mu.Lock()
	r.gen++
	r.mu.Unlock()
}

func (r *Resource[T]) Snapshot() Snapshot[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Snapshot[T]{State: r.state, Value: r.value, Message: r.message}
}

func (r *Resource[T]) begin() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.gen++
	r.state = Loading
	r.message = ""
	return r.gen
}

func (r *Resource[T]) settle(gen uint64, value T, err error) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if gen != r.gen {
		return false
	}
	if err != nil {
		var zero T
		r.state = Failed
		r.value = zero
		r.message = Message(err, r.fallback)
		return true
	}
	r.state = Ready
	r.value = value
	r.message = ""
	return true
}

// Message picks the text shown for err: its own when it is a classified
// failure, fallback otherwise.
func Message(err error, fallback string) string {
	var c classified
	if errors.As(err, &c) && c.Classified() {
		return c.Error()
	}
	return fallback
}
