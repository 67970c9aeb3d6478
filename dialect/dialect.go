// Package dialect provides the vocabularies that tests are written in. Every dialect is a thin
// renaming of the same operations on one framework.Engine, so a spec file may mix them freely
// and the behavior never depends on which name was used.
package dialect

import (
	"github.com/oneproof4all/oneproof/assertion"
	"github.com/oneproof4all/oneproof/framework"
	"github.com/oneproof4all/oneproof/mock"
)

// core holds the canonical operations that the dialect methods forward to.
type core struct {
	engine *framework.Engine
}

func (c core) group(name string, body func())     { c.engine.Group(name, body) }
func (c core) test(name string, body interface{}) { c.engine.Case(name, body) }
func (c core) hook(kind framework.HookKind, body interface{}) {
	c.engine.AddHook(kind, body)
}

func (c core) expect(actual interface{}) *assertion.Assertion { return assertion.That(actual) }
func (c core) mock(impl []mock.Func) *mock.Mock               { return mock.New(impl...) }
func (c core) spy(target interface{}) *mock.Mock              { return mock.Spy(target) }

// Math is the mathematical dialect.
type Math struct{ c core }

func NewMath(e *framework.Engine) Math { return Math{core{e}} }

func (d Math) Axiom(name string, body func())                  { d.c.group(name, body) }
func (d Math) Proof(name string, body interface{})             { d.c.test(name, body) }
func (d Math) Implies(actual interface{}) *assertion.Assertion { return d.c.expect(actual) }
func (d Math) Arbitrary(impl ...mock.Func) *mock.Mock          { return d.c.mock(impl) }
func (d Math) Lambda(impl ...mock.Func) *mock.Mock             { return d.c.mock(impl) }
func (d Math) Monitor(target interface{}) *mock.Mock           { return d.c.spy(target) }
func (d Math) Postulate(body interface{})                      { d.c.hook(framework.BeforeAll, body) }
func (d Math) Conclude(body interface{})                       { d.c.hook(framework.AfterAll, body) }
func (d Math) Given(body interface{})                          { d.c.hook(framework.BeforeEach, body) }

// Narrative is the storytelling dialect.
type Narrative struct{ c core }

func NewNarrative(e *framework.Engine) Narrative { return Narrative{core{e}} }

func (d Narrative) Intend(name string, body func())        { d.c.group(name, body) }
func (d Narrative) Story(name string, body func())         { d.c.group(name, body) }
func (d Narrative) Detail(name string, body interface{})   { d.c.test(name, body) }
func (d Narrative) Scenario(name string, body interface{}) { d.c.test(name, body) }
func (d Narrative) To(actual interface{}) *assertion.Assertion {
	return d.c.expect(actual)
}
func (d Narrative) Dummy(impl ...mock.Func) *mock.Mock   { return d.c.mock(impl) }
func (d Narrative) StandIn(impl ...mock.Func) *mock.Mock { return d.c.mock(impl) }
func (d Narrative) Watch(target interface{}) *mock.Mock  { return d.c.spy(target) }
func (d Narrative) Shadow(target interface{}) *mock.Mock { return d.c.spy(target) }
func (d Narrative) Background(body interface{})          { d.c.hook(framework.BeforeAll, body) }
func (d Narrative) Cleanup(body interface{})             { d.c.hook(framework.AfterAll, body) }
func (d Narrative) Before(body interface{})              { d.c.hook(framework.BeforeEach, body) }

// Imperative is the command-style dialect.
type Imperative struct{ c core }

func NewImperative(e *framework.Engine) Imperative { return Imperative{core{e}} }

func (d Imperative) Ensure(name string, body func())      { d.c.group(name, body) }
func (d Imperative) Suite(name string, body func())       { d.c.group(name, body) }
func (d Imperative) Check(name string, body interface{})  { d.c.test(name, body) }
func (d Imperative) Verify(name string, body interface{}) { d.c.test(name, body) }
func (d Imperative) That(actual interface{}) *assertion.Assertion {
	return d.c.expect(actual)
}
func (d Imperative) Stub(impl ...mock.Func) *mock.Mock     { return d.c.mock(impl) }
func (d Imperative) Mock(impl ...mock.Func) *mock.Mock     { return d.c.mock(impl) }
func (d Imperative) Inspect(target interface{}) *mock.Mock { return d.c.spy(target) }
func (d Imperative) Spy(target interface{}) *mock.Mock     { return d.c.spy(target) }
func (d Imperative) InitAll(body interface{})              { d.c.hook(framework.BeforeAll, body) }
func (d Imperative) DisposeAll(body interface{})           { d.c.hook(framework.AfterAll, body) }

// Reset registers a hook that runs before every case, typically to put mocks back into a known
// state.
func (d Imperative) Reset(body interface{}) { d.c.hook(framework.BeforeEach, body) }

// Classic is the describe/it vocabulary familiar from Jest and Mocha.
type Classic struct {
	c core
	// Jest holds the mock factories, reached as Jest.Fn and Jest.SpyOn.
	Jest Jest
}

// Jest is the namespace for mock creation in the classic dialect.
type Jest struct{ c core }

func NewClassic(e *framework.Engine) Classic {
	return Classic{c: core{e}, Jest: Jest{core{e}}}
}

func (d Classic) Describe(name string, body func())  { d.c.group(name, body) }
func (d Classic) It(name string, body interface{})   { d.c.test(name, body) }
func (d Classic) Test(name string, body interface{}) { d.c.test(name, body) }
func (d Classic) Expect(actual interface{}) *assertion.Assertion {
	return d.c.expect(actual)
}
func (d Classic) BeforeAll(body interface{})  { d.c.hook(framework.BeforeAll, body) }
func (d Classic) AfterAll(body interface{})   { d.c.hook(framework.AfterAll, body) }
func (d Classic) BeforeEach(body interface{}) { d.c.hook(framework.BeforeEach, body) }
func (d Classic) AfterEach(body interface{})  { d.c.hook(framework.AfterEach, body) }

func (j Jest) Fn(impl ...mock.Func) *mock.Mock     { return j.c.mock(impl) }
func (j Jest) SpyOn(target interface{}) *mock.Mock { return j.c.spy(target) }

// All bundles the four dialects over one engine, for spec files that mix vocabularies.
type All struct {
	Math
	Narrative
	Imperative
	Classic
	engine *framework.Engine
}

func New(e *framework.Engine) All {
	return All{
		Math:       NewMath(e),
		Narrative:  NewNarrative(e),
		Imperative: NewImperative(e),
		Classic:    NewClassic(e),
		engine:     e,
	}
}

// Logger returns a logger for the running case; see framework.Engine.CaseLogger.
func (d All) Logger(prefix string) framework.Logger {
	return d.engine.CaseLogger(prefix)
}
