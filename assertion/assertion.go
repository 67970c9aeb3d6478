// Package assertion implements the fluent assertions used inside case bodies.
//
// An assertion that does not hold panics with a *Failure. Using an assertion on a value it
// cannot apply to (matching a non-string, or asking a non-mock about its calls) panics with a
// *UsageError. The framework package turns either panic into a failed case.
package assertion

import (
	"fmt"
	"math"
	"reflect"
	"regexp"

	"github.com/oneproof4all/oneproof/mock"

	"github.com/stretchr/testify/assert"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

const negatedPrefix = "[NOT] "

// Failure is raised when an assertion does not hold.
type Failure struct {
	Message string
	Negated bool
}

func (f *Failure) Error() string {
	if f.Negated {
		return negatedPrefix + f.Message
	}
	return f.Message
}

// UsageError is raised when an assertion is applied to a value it does not support. It is a
// mistake in the test itself, so negation does not turn it into a pass.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}

// MockTarget is anything that exposes the Handler of a mock; *mock.Mock implements it.
type MockTarget interface {
	Handler() *mock.Handler
}

// Assertion wraps a value under test. It is immutable: Not returns a new Assertion.
type Assertion struct {
	actual  interface{}
	negated bool
}

// That starts an assertion about actual.
func That(actual interface{}) *Assertion {
	return &Assertion{actual: actual}
}

// Not returns an assertion about the same value that passes exactly when this one fails.
func (a *Assertion) Not() *Assertion {
	return &Assertion{actual: a.actual, negated: !a.negated}
}

// Negated reports whether the assertion is inverted.
func (a *Assertion) Negated() bool {
	return a.negated
}

func (a *Assertion) pass(condition bool, format string, args ...interface{}) {
	if condition != a.negated {
		return
	}
	panic(&Failure{Message: fmt.Sprintf(format, args...), Negated: a.negated})
}

// ToBe passes when actual is the same value as expected: equal for plain values, the same
// underlying object for pointers, maps, slices, channels and functions. Numbers of different Go
// types are compared by value.
func (a *Assertion) ToBe(expected interface{}) {
	a.pass(identical(a.actual, expected), "Expected %s to be %s", describe(a.actual), describe(expected))
}

// ToEqual passes when actual is structurally equal to expected. Top-level numbers of different Go
// types are compared by value; everything else must match in type and content.
func (a *Assertion) ToEqual(expected interface{}) {
	a.pass(structurallyEqual(a.actual, expected),
		"Expected %s to equal %s", describe(a.actual), describe(expected))
}

// ToBeTruthy passes for every value except nil, false, zero numbers, NaN, the empty string,
// and nil pointers, maps, slices, channels, functions and interfaces.
func (a *Assertion) ToBeTruthy() {
	a.pass(truthy(a.actual), "Ensure %s is truthy", describe(a.actual))
}

// ToMatch passes when actual, which must be a string, matches pattern. pattern is either a
// *regexp.Regexp or a string holding a regular expression.
func (a *Assertion) ToMatch(pattern interface{}) {
	s, ok := a.actual.(string)
	if !ok {
		panic(&UsageError{Message: fmt.Sprintf("Value must be string, got %T", a.actual)})
	}
	var rx *regexp.Regexp
	switch p := pattern.(type) {
	case *regexp.Regexp:
		rx = p
	case string:
		var err error
		if rx, err = regexp.Compile(p); err != nil {
			panic(&UsageError{Message: fmt.Sprintf("invalid pattern %q: %s", p, err)})
		}
	default:
		panic(&UsageError{Message: fmt.Sprintf("pattern must be a string or *regexp.Regexp, got %T", pattern)})
	}
	a.pass(rx.MatchString(s), "Ensure '%s' matches /%s/", s, rx)
}

// ToHaveProperty passes when actual is a non-nil map with a key called name, or a struct (or
// pointer to one) with an exported field or method called name.
func (a *Assertion) ToHaveProperty(name string) {
	a.pass(hasMember(a.actual, name), "Intend object to have '%s'", name)
}

// ToHaveBeenCalled passes when the mock has at least one recorded call.
func (a *Assertion) ToHaveBeenCalled() {
	h := a.mockHandler()
	a.pass(h.CallCount() > 0, "Expected mock to have been called")
}

// ToHaveBeenCalledWith passes when some recorded call has the same arguments as args. Argument
// lists are compared in their canonical JSON form, so values that serialize alike match.
func (a *Assertion) ToHaveBeenCalledWith(args ...interface{}) {
	h := a.mockHandler()
	expected := canonicalArgs(args)
	match := false
	for _, call := range h.Calls() {
		if canonicalArgs(call).Equal(expected) {
			match = true
			break
		}
	}
	a.pass(match, "Expected mock called with %s", expected.JSONString())
}

// ToHaveBeenCalledTimes passes when the mock has exactly n recorded calls.
func (a *Assertion) ToHaveBeenCalledTimes(n int) {
	h := a.mockHandler()
	count := h.CallCount()
	a.pass(count == n, "Expected mock called %d times, got %d", n, count)
}

func (a *Assertion) mockHandler() *mock.Handler {
	if target, ok := a.actual.(MockTarget); ok && !isNil(a.actual) {
		if h := target.Handler(); h != nil {
			return h
		}
	}
	panic(&UsageError{Message: "Assertion target is not a registered Mock/Spy function."})
}

func canonicalArgs(args []interface{}) ldvalue.Value {
	if args == nil {
		args = []interface{}{}
	}
	return ldvalue.CopyArbitraryValue(args)
}

func identical(actual, expected interface{}) bool {
	if actual == nil || expected == nil {
		return actual == nil && expected == nil
	}
	va, ve := reflect.ValueOf(actual), reflect.ValueOf(expected)
	if isNumeric(va.Kind()) && isNumeric(ve.Kind()) {
		return numericEqual(va, ve)
	}
	if va.Type() != ve.Type() {
		return false
	}
	switch va.Kind() {
	case reflect.Slice:
		return va.Len() == ve.Len() && va.Pointer() == ve.Pointer()
	case reflect.Map, reflect.Func, reflect.Chan, reflect.Ptr, reflect.UnsafePointer:
		return va.Pointer() == ve.Pointer()
	}
	return comparableEqual(actual, expected)
}

func structurallyEqual(actual, expected interface{}) bool {
	if actual != nil && expected != nil {
		va, ve := reflect.ValueOf(actual), reflect.ValueOf(expected)
		if isNumeric(va.Kind()) && isNumeric(ve.Kind()) {
			return numericEqual(va, ve)
		}
	}
	return assert.ObjectsAreEqual(expected, actual)
}

// comparableEqual compares with ==, treating values that cannot be compared (such as structs
// holding slices in interface fields) as not identical.
func comparableEqual(a, b interface{}) (equal bool) {
	defer func() {
		if recover() != nil {
			equal = false
		}
	}()
	return a == b
}

func isNumeric(k reflect.Kind) bool {
	return isInt(k) || isUint(k) || isFloat(k)
}

func isInt(k reflect.Kind) bool {
	return k >= reflect.Int && k <= reflect.Int64
}

func isUint(k reflect.Kind) bool {
	return k >= reflect.Uint && k <= reflect.Uintptr
}

func isFloat(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}

func numericEqual(a, b reflect.Value) bool {
	switch {
	case isInt(a.Kind()) && isInt(b.Kind()):
		return a.Int() == b.Int()
	case isUint(a.Kind()) && isUint(b.Kind()):
		return a.Uint() == b.Uint()
	case isInt(a.Kind()) && isUint(b.Kind()):
		return a.Int() >= 0 && uint64(a.Int()) == b.Uint()
	case isUint(a.Kind()) && isInt(b.Kind()):
		return b.Int() >= 0 && uint64(b.Int()) == a.Uint()
	}
	return toFloat(a) == toFloat(b)
}

func toFloat(v reflect.Value) float64 {
	switch {
	case isInt(v.Kind()):
		return float64(v.Int())
	case isUint(v.Kind()):
		return float64(v.Uint())
	default:
		return v.Float()
	}
}

func truthy(value interface{}) bool {
	if value == nil {
		return false
	}
	v := reflect.ValueOf(value)
	switch k := v.Kind(); {
	case k == reflect.Bool:
		return v.Bool()
	case isInt(k):
		return v.Int() != 0
	case isUint(k):
		return v.Uint() != 0
	case isFloat(k):
		f := v.Float()
		return f != 0 && !math.IsNaN(f)
	case k == reflect.String:
		return v.Len() > 0
	}
	return !isNil(value)
}

func isNil(value interface{}) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan,
		reflect.Interface, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}

func hasMember(value interface{}, name string) bool {
	if isNil(value) {
		return false
	}
	v := reflect.ValueOf(value)
	if v.MethodByName(name).IsValid() {
		return true
	}
	for v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return false
		}
		return v.MapIndex(reflect.ValueOf(name).Convert(v.Type().Key())).IsValid()
	case reflect.Struct:
		field, ok := v.Type().FieldByName(name)
		return ok && field.PkgPath == ""
	}
	return false
}

func describe(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return "nil"
	case string:
		return fmt.Sprintf("%q", v)
	case MockTarget:
		return fmt.Sprintf("mock(%T)", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
