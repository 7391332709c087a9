package functional

import (
	"errors"
	"sync"
	"time"
)

var ErrTimeout = errors.New(
	"a timeout occurred while waiting for offloaded work - try submitting it again",
)

// Future represents work that will complete at a later point in time.
type Future[T any] interface {
	// Await blocks until the work completes or the timeout elapses and
	// returns the result. Repeated calls return the same result.
	Await() Result[T]
}

// future implements the Future interface.
type future[T any] struct {
	// The channel that will receive the result.
	responseCh chan Result[T]

	// The amount of time to wait on a result before timing out.
	timeout time.Duration

	// The result of the future, set by the first Await.
	response Result[T]

	mu sync.Mutex
}

func newFuture[T any](timeout time.Duration) *future[T] {
	return &future[T]{
		timeout:    timeout,
		responseCh: make(chan Result[T], 1),
	}
}

// resolve delivers the result. Only the first call has any effect.
func (f *future[T]) resolve(response Result[T]) {
	select {
	case f.responseCh <- response:
	default:
	}
}

func (f *future[T]) Await() Result[T] {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.response != nil {
		return f.response
	}

	timer := time.NewTimer(f.timeout)
	defer timer.Stop()

	select {
	case response := <-f.responseCh:
		f.response = response
	case <-timer.C:
		f.response = &result[T]{err: ErrTimeout}
	}
	return f.response
}

// Result represents the outcome of offloaded work.
type Result[T any] interface {
	// Success returns the value produced by the work.
	// Error should always be called before Success - the value
	// returned by Success is only valid if Error returns nil.
	Success() T

	// Error returns any error that occurred while producing the value.
	Error() error
}

// result implements the Result interface.
type result[T any] struct {
	// The value produced by the work.
	success T

	// Any error that occurred while producing the value.
	err error
}

func newResult[T any](response T, err error) Result[T] {
	return &result[T]{success: response, err: err}
}

func (r *result[T]) Success() T {
	return r.success
}

func (r *result[T]) Error() error {
	return r.err
}
