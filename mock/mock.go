package mock

import (
	"fmt"
	"reflect"
	"sync"
)

// Mock is a callable test double backed by a Handler.
//
// Besides being callable, a Mock can be asked for arbitrary members. A member that is not part
// of the configuration surface is resolved from the default return value if that value has
// it, and otherwise is a child Mock created on first access and memoized by name. A child's
// invocations are also forwarded to its parent.
type Mock struct {
	handler  *Handler
	children map[string]*Mock
	restore  func()
	lock     sync.Mutex
}

// New creates a Mock. If an implementation is given, it computes the result of every call
// until it is replaced.
func New(implementation ...Func) *Mock {
	var impl Func
	if len(implementation) > 0 {
		impl = implementation[0]
	}
	return newMock(impl, nil)
}

func newMock(implementation Func, parent *Handler) *Mock {
	return &Mock{
		handler:  newHandler(implementation, parent),
		children: make(map[string]*Mock),
	}
}

// Handler returns the recording state behind this Mock.
func (m *Mock) Handler() *Handler {
	return m.handler
}

// Call invokes the mock.
func (m *Mock) Call(args ...interface{}) interface{} {
	return m.handler.Invoke(args...)
}

// Fn returns the mock as a plain function value, for passing to code under test.
func (m *Mock) Fn() Func {
	return m.Call
}

// Calls returns a copy of the recorded argument lists.
func (m *Mock) Calls() [][]interface{} {
	return m.handler.Calls()
}

func (m *Mock) SetReturn(value interface{}) {
	m.handler.SetReturn(value)
}

func (m *Mock) SetDeferredReturn(value interface{}) {
	m.handler.SetDeferredReturn(value)
}

func (m *Mock) SetImplementation(fn Func) {
	m.handler.SetImplementation(fn)
}

// Clear empties the call log of this mock and of every child created so far.
func (m *Mock) Clear() {
	m.handler.Clear()
	for _, child := range m.childList() {
		child.Clear()
	}
}

// Reset clears the call log, discards the configured implementation and return value, and
// forgets every child, so that the next member access creates a fresh one.
func (m *Mock) Reset() {
	m.handler.Reset()
	m.lock.Lock()
	m.children = make(map[string]*Mock)
	m.lock.Unlock()
}

// Restore puts back the original function of a mock created by Spy. For other mocks it does
// nothing.
func (m *Mock) Restore() {
	if m.restore != nil {
		m.restore()
	}
}

// Configure applies a configuration operation selected by one of its dialect aliases, such as
// "yields" or "mockResolvedValue".
func (m *Mock) Configure(alias string, value interface{}) error {
	op, ok := LookupConfigOp(alias)
	if !ok {
		return fmt.Errorf("%q is not a mock configuration operation", alias)
	}
	return m.apply(op, value)
}

func (m *Mock) apply(op ConfigOp, value interface{}) error {
	switch op {
	case OpSetReturn:
		m.SetReturn(value)
	case OpSetDeferredReturn:
		m.SetDeferredReturn(value)
	case OpSetImplementation:
		fn, err := toFunc(value)
		if err != nil {
			return err
		}
		m.SetImplementation(fn)
	case OpClear:
		m.Clear()
	case OpReset:
		m.Reset()
	default:
		return fmt.Errorf("unknown configuration operation %s", op)
	}
	return nil
}

// Get resolves a member by name. Reserved configuration names resolve to a configuration
// function: func(interface{}) for the setters, func() for clear and reset. Otherwise, if the
// default return value has a member with that name (a map key, struct field, or method), its
// value is returned. Otherwise the result is the memoized child *Mock.
func (m *Mock) Get(name string) interface{} {
	if op, ok := LookupConfigOp(name); ok {
		return m.configFunc(op)
	}
	if value, ok := memberOf(m.handler.DefaultReturn(), name); ok {
		return value
	}
	return m.child(name)
}

// Member returns the child mock for name, creating it on first access. Reserved configuration
// names cannot be members; asking for one panics.
func (m *Mock) Member(name string) *Mock {
	if IsReserved(name) {
		panic(fmt.Errorf("%q is a mock configuration operation and cannot be used as a member", name))
	}
	return m.child(name)
}

func (m *Mock) configFunc(op ConfigOp) interface{} {
	switch op {
	case OpClear, OpReset:
		return func() { _ = m.apply(op, nil) }
	default:
		return func(value interface{}) {
			if err := m.apply(op, value); err != nil {
				panic(err)
			}
		}
	}
}

func (m *Mock) child(name string) *Mock {
	m.lock.Lock()
	defer m.lock.Unlock()
	c, ok := m.children[name]
	if !ok {
		c = newMock(nil, m.handler)
		m.children[name] = c
	}
	return c
}

func (m *Mock) childList() []*Mock {
	m.lock.Lock()
	defer m.lock.Unlock()
	ret := make([]*Mock, 0, len(m.children))
	for _, c := range m.children {
		ret = append(ret, c)
	}
	return ret
}

// memberOf looks name up on an arbitrary value: a key of a map with string keys, an exported
// field of a struct (or pointer to struct), or an exported method.
func memberOf(value interface{}, name string) (interface{}, bool) {
	if value == nil {
		return nil, false
	}
	v := reflect.ValueOf(value)
	if method := v.MethodByName(name); method.IsValid() {
		return method.Interface(), true
	}
	for v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil, false
		}
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		item := v.MapIndex(reflect.ValueOf(name).Convert(v.Type().Key()))
		if !item.IsValid() {
			return nil, false
		}
		return item.Interface(), true
	case reflect.Struct:
		field, ok := v.Type().FieldByName(name)
		if !ok || field.PkgPath != "" {
			return nil, false
		}
		return v.FieldByIndex(field.Index).Interface(), true
	}
	return nil, false
}
