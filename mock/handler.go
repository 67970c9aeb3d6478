package mock

import (
	"sync"

	"github.com/oneproof4all/oneproof/framework"
)

// Func is the shape of a mock implementation: it receives the arguments of one invocation and
// returns the invocation's result.
type Func func(args ...interface{}) interface{}

// Handler is the recording and configuration state behind a Mock.
//
// Every invocation appends its argument list to the call log. If the handler has a parent, the
// invocation is then forwarded to the parent (and so on up the chain), so that assertions on a
// mock see calls made through its lazily created members. The parent's result is discarded.
type Handler struct {
	calls          [][]interface{}
	implementation Func
	defaultReturn  interface{}
	deferred       bool
	parent         *Handler
	lock           sync.Mutex
}

func newHandler(implementation Func, parent *Handler) *Handler {
	return &Handler{implementation: implementation, parent: parent}
}

// Invoke records args, forwards them to the parent, and returns the configured result. An
// implementation, if set, takes precedence over the default return value; otherwise the default
// return value is returned as is, or wrapped in an already resolved *framework.Future if it was
// set as deferred.
func (h *Handler) Invoke(args ...interface{}) interface{} {
	call := append([]interface{}{}, args...)
	h.lock.Lock()
	h.calls = append(h.calls, call)
	h.lock.Unlock()

	if h.parent != nil {
		h.parent.Invoke(args...)
	}

	h.lock.Lock()
	impl, value, deferred := h.implementation, h.defaultReturn, h.deferred
	h.lock.Unlock()

	if impl != nil {
		return impl(args...)
	}
	if deferred {
		return framework.Resolved(value)
	}
	return value
}

// Calls returns a copy of the call log, oldest first.
func (h *Handler) Calls() [][]interface{} {
	h.lock.Lock()
	defer h.lock.Unlock()
	return append([][]interface{}(nil), h.calls...)
}

// CallCount returns the number of recorded invocations.
func (h *Handler) CallCount() int {
	h.lock.Lock()
	defer h.lock.Unlock()
	return len(h.calls)
}

// Parent returns the handler that also receives this handler's invocations, or nil.
func (h *Handler) Parent() *Handler {
	return h.parent
}

// DefaultReturn returns the value configured with SetReturn or SetDeferredReturn.
func (h *Handler) DefaultReturn() interface{} {
	h.lock.Lock()
	defer h.lock.Unlock()
	return h.defaultReturn
}

func (h *Handler) SetReturn(value interface{}) {
	h.lock.Lock()
	h.defaultReturn = value
	h.deferred = false
	h.lock.Unlock()
}

func (h *Handler) SetDeferredReturn(value interface{}) {
	h.lock.Lock()
	h.defaultReturn = value
	h.deferred = true
	h.lock.Unlock()
}

func (h *Handler) SetImplementation(fn Func) {
	h.lock.Lock()
	h.implementation = fn
	h.lock.Unlock()
}

// Clear empties the call log but keeps the configuration.
func (h *Handler) Clear() {
	h.lock.Lock()
	h.calls = nil
	h.lock.Unlock()
}

// Reset empties the call log and discards the implementation and the default return value.
func (h *Handler) Reset() {
	h.lock.Lock()
	h.calls = nil
	h.implementation = nil
	h.defaultReturn = nil
	h.deferred = false
	h.lock.Unlock()
}
