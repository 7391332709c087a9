package functional

import (
	"sync"

	"github.com/pkg/errors"

	ierrors "github.com/jmsadair/functional/internal/errors"
)

// ErrExecutorNotRunning is returned for work submitted to an executor that
// has not been started or has been stopped.
var ErrExecutorNotRunning = errors.New("executor is not running")

// task is a unit of offloaded work. Exactly one of run or fail is called.
type task struct {
	run  func()
	fail func(err error)
}

// Executor runs offloaded work on a dedicated worker goroutine, separate from
// the goroutine that submits it. Work is executed in submission order.
type Executor struct {
	options *options

	// Queued work, recreated on every Start.
	tasks chan task

	// Closed by Stop to signal the worker to exit.
	stopCh chan struct{}

	// Indicates whether the executor accepts work.
	running bool

	// Guards running and tasks. Submitters hold the read lock while
	// queueing so that Stop never races with a send.
	mu sync.RWMutex

	wg sync.WaitGroup
}

// NewExecutor creates an executor with the provided options. The executor
// does not accept work until Start is called.
func NewExecutor(opts ...Option) (*Executor, error) {
	options, err := newOptions(opts...)
	if err != nil {
		return nil, ierrors.WrapError(err, "failed to create executor")
	}
	return &Executor{options: options}, nil
}

// Start launches the worker goroutine. Calling Start on a running executor
// has no effect.
func (e *Executor) Start() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.running {
		return
	}

	e.tasks = make(chan task, e.options.queueSize)
	e.stopCh = make(chan struct{})
	e.running = true

	e.wg.Add(1)
	go e.loop(e.tasks, e.stopCh)

	e.options.logger.Infof("executor started: queueSize = %d, timeout = %v", e.options.queueSize, e.options.timeout)
}

// Stop stops the worker and waits for it to exit. Work still queued is
// failed with ErrExecutorNotRunning. Calling Stop on a stopped executor has
// no effect.
func (e *Executor) Stop() {
	e.mu.Lock()
	if !e.running {
		e.mu.Unlock()
		return
	}
	e.running = false
	close(e.stopCh)
	tasks := e.tasks
	e.mu.Unlock()

	e.wg.Wait()

	dropped := 0
	for {
		select {
		case t := <-tasks:
			t.fail(ErrExecutorNotRunning)
			dropped++
		default:
			e.options.logger.Infof("executor stopped: dropped = %d", dropped)
			return
		}
	}
}

// Running indicates whether the executor currently accepts work.
func (e *Executor) Running() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.running
}

func (e *Executor) loop(tasks <-chan task, stopCh <-chan struct{}) {
	defer e.wg.Done()
	for {
		select {
		case <-stopCh:
			return
		case t := <-tasks:
			// Both channels may be ready at once; work taken after Stop
			// fails like the rest of the queue.
			select {
			case <-stopCh:
				t.fail(ErrExecutorNotRunning)
				return
			default:
			}
			t.run()
		}
	}
}

func (e *Executor) submit(t task) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if !e.running {
		t.fail(ErrExecutorNotRunning)
		return
	}
	e.tasks <- t
}

// Offload runs fn on the executor's worker goroutine and returns a future
// for its value. A panic in fn is recovered and reported as the error of
// the result; the worker keeps running.
//
// Offload blocks while the queue is full. Work that offloads to its own
// executor must therefore leave room in the queue: the worker cannot drain
// the queue while it waits to add to it.
func Offload[T any](e *Executor, fn func() T) Future[T] {
	f := newFuture[T](e.options.timeout)
	e.submit(task{
		run: func() {
			value, err := call(fn)
			if err != nil {
				e.options.logger.Errorf("offloaded work failed: %s", err.Error())
			}
			f.resolve(newResult(value, err))
		},
		fail: func(err error) {
			var zero T
			e.options.logger.Debugf("rejecting offloaded work: %s", err.Error())
			f.resolve(newResult(zero, err))
		},
	})
	return f
}

// Invoke applies op to the operands on the executor's worker goroutine.
func Invoke[T any](e *Executor, op BinaryOp[T], lhs, rhs T) Future[T] {
	return Offload(e, func() T {
		return op.Apply(lhs, rhs)
	})
}

func call[T any](fn func() T) (value T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("operation panicked: %v", r)
		}
	}()
	return fn(), nil
}
