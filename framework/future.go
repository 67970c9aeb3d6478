package framework

import (
	"errors"
	"fmt"
)

// Awaitable is a deferred result. A case body that returns one is not considered finished
// until Await returns.
type Awaitable interface {
	Await() (interface{}, error)
}

// Future is a value or error that becomes available at some point. It can be awaited any number
// of times, from any goroutine, and always yields the same outcome.
type Future struct {
	done  chan struct{}
	value interface{}
	err   error
}

// Resolved returns a Future that is already settled with a value.
func Resolved(value interface{}) *Future {
	f := &Future{done: make(chan struct{}), value: value}
	close(f.done)
	return f
}

// Rejected returns a Future that is already settled with an error.
func Rejected(err error) *Future {
	if err == nil {
		err = errors.New("rejected with no error")
	}
	f := &Future{done: make(chan struct{}), err: err}
	close(f.done)
	return f
}

// Go runs fn on a new goroutine and returns a Future for its outcome. A panic in fn rejects the
// Future.
func Go(fn func() (interface{}, error)) *Future {
	f := &Future{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		defer func() {
			if r := recover(); r != nil {
				f.err = panicError(r)
			}
		}()
		f.value, f.err = fn()
	}()
	return f
}

func (f *Future) Await() (interface{}, error) {
	<-f.done
	return f.value, f.err
}

// settled reports whether Await would return without blocking.
func (f *Future) settled() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

func panicError(r interface{}) error {
	if err, ok := r.(error); ok {
		return err
	}
	return fmt.Errorf("%v", r)
}
