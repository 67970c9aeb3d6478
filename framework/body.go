package framework

import (
	"fmt"
	"reflect"
)

// Body is the normalized form of a case or hook body.
type Body func() error

// normalizeBody accepts the shapes a case or hook may be written in. Passing anything else is
// an authoring error, reported by panicking at registration time.
func normalizeBody(body interface{}) Body {
	switch fn := body.(type) {
	case nil:
		panic(fmt.Errorf("body must not be nil"))
	case Body:
		return fn
	case func() error:
		return fn
	case func():
		return func() error {
			fn()
			return nil
		}
	case func() *Future:
		return func() error {
			if f := fn(); f != nil {
				_, err := f.Await()
				return err
			}
			return nil
		}
	case func() Awaitable:
		return func() error {
			if a := fn(); !isNilAwaitable(a) {
				_, err := a.Await()
				return err
			}
			return nil
		}
	default:
		panic(fmt.Errorf("unsupported body type %T: expected func(), func() error, or a func returning a deferred result", body))
	}
}

// isNilAwaitable also catches a nil pointer stored in a non-nil interface, such as a
// (*Future)(nil) returned as an Awaitable.
func isNilAwaitable(a Awaitable) bool {
	if a == nil {
		return true
	}
	v := reflect.ValueOf(a)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// callSafely runs a body, converting a panic into an error. Panics whose value is an error keep
// that error, so assertion failures surface with their own message.
func callSafely(b Body) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = panicError(r)
		}
	}()
	return b()
}
