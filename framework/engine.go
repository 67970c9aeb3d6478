package framework

import (
	"fmt"
	"time"
)

// Engine is the execution core. It holds one suite tree and one cursor into it; every dialect
// bound to the same Engine shares them.
//
// An Engine is not safe for concurrent use. Group and Case must be called from a single
// goroutine, and a host running several independent spec files must call Reset between them.
type Engine struct {
	root        *suiteNode
	current     *suiteNode
	testLogger  TestLogger
	filter      Filter
	results     Results
	debugLogger *CapturingLogger
}

// Option configures an Engine.
type Option func(*Engine)

// WithFilter makes the Engine skip every case for which filter returns false.
func WithFilter(filter Filter) Option {
	return func(e *Engine) {
		e.filter = filter
	}
}

// NewEngine creates an Engine whose current node is a fresh ROOT node. Group starts and case
// outcomes are reported to testLogger; a nil testLogger discards them.
func NewEngine(testLogger TestLogger, options ...Option) *Engine {
	if testLogger == nil {
		testLogger = nullTestLogger{}
	}
	e := &Engine{testLogger: testLogger}
	for _, o := range options {
		o(e)
	}
	e.Reset()
	return e
}

// Reset discards the suite tree, the started-tracking, and the accumulated results, leaving a
// fresh ROOT node as the current node.
func (e *Engine) Reset() {
	e.root = newSuiteNode(RootSuiteName, nil)
	e.current = e.root
	e.results = Results{}
	e.debugLogger = nil
}

// Current returns the name of the node that registrations currently attach to.
func (e *Engine) Current() string {
	return e.current.name
}

// Results returns the outcome of every case run since the last Reset.
func (e *Engine) Results() Results {
	return e.results
}

// Group creates a suite node under the current node and runs body with that node as current.
// When body returns, the node's AfterAll hooks run in registration order. The previous node is
// restored as current even if body panics; the panic is then propagated, since a failing group
// body is an authoring error rather than a test failure.
func (e *Engine) Group(name string, body func()) {
	parent := e.current
	node := newSuiteNode(name, parent)
	e.current = node
	defer func() {
		e.current = parent
	}()

	e.testLogger.GroupStarted(name)
	body()
	if err := node.fireHooks(AfterAll); err != nil {
		panic(err)
	}
}

// Case runs body immediately as a case of the current node.
//
// The node's BeforeAll hooks run first if this is the node's first case. Then the BeforeEach
// hooks run, then body, whose deferred result (if any) is awaited, then the AfterEach hooks. If
// any of these fails, the case is recorded as failed and the remaining steps, including the
// AfterEach hooks, are skipped. A failing case never panics out of Case.
func (e *Engine) Case(name string, body interface{}) {
	node := e.current
	b := normalizeBody(body)
	node.cases = append(node.cases, registeredCase{name: name, body: b})

	id := TestID{Suite: node.name, Name: name, Path: node.path()}
	e.testLogger.TestStarted(id)
	if e.filter != nil && !e.filter(id) {
		e.record(TestResult{TestID: id, Skipped: true})
		e.testLogger.TestSkipped(id, "excluded by filter parameters")
		return
	}

	outerLogger := e.debugLogger
	e.debugLogger = &CapturingLogger{}
	defer func() {
		e.debugLogger = outerLogger
	}()

	startTime := time.Now()
	err := e.runCase(node, b)
	result := TestResult{TestID: id, Duration: time.Since(startTime)}
	if err != nil {
		result.Err = CaseFailure{ID: id, Err: err}
	}
	e.record(result)
	e.testLogger.TestFinished(id, err, e.debugLogger.Output())
}

func (e *Engine) runCase(node *suiteNode, body Body) error {
	if !node.started {
		node.started = true
		if err := node.fireHooks(BeforeAll); err != nil {
			return err
		}
	}
	if err := node.fireHooks(BeforeEach); err != nil {
		return err
	}
	if err := callSafely(body); err != nil {
		return err
	}
	return node.fireHooks(AfterEach)
}

func (e *Engine) record(result TestResult) {
	e.results.Tests = append(e.results.Tests, result)
	if result.Skipped {
		e.results.Skipped = append(e.results.Skipped, result)
	} else if result.Err != nil {
		e.results.Failures = append(e.results.Failures, result)
	}
}

// AddHook appends body to the current node's hooks of the given kind.
func (e *Engine) AddHook(kind HookKind, body interface{}) {
	if kind < BeforeAll || kind > AfterEach {
		panic(fmt.Errorf("unknown hook kind %s", kind))
	}
	e.current.hooks[kind] = append(e.current.hooks[kind], normalizeBody(body))
}

// CaseLogger returns a Logger for code under test that writes into the debug output of the case
// that is currently running, with prefix in front of every message. Outside of a case it
// discards everything.
func (e *Engine) CaseLogger(prefix string) Logger {
	if e.debugLogger == nil {
		return NullLogger()
	}
	return LoggerWithPrefix(e.debugLogger, prefix)
}
