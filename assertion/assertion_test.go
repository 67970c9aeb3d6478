package assertion

import (
	"errors"
	"math"
	"regexp"
	"testing"

	"github.com/oneproof4all/oneproof/framework"
	"github.com/oneproof4all/oneproof/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expectPass(t *testing.T, fn func()) {
	t.Helper()
	assert.NoError(t, Check(fn))
}

func expectFailure(t *testing.T, message string, fn func()) {
	t.Helper()
	err := Check(fn)
	var f *Failure
	require.True(t, errors.As(err, &f), "expected an assertion failure, got %v", err)
	assert.Equal(t, message, f.Error())
}

func expectUsageError(t *testing.T, message string, fn func()) {
	t.Helper()
	err := Check(fn)
	var u *UsageError
	require.True(t, errors.As(err, &u), "expected a usage error, got %v", err)
	assert.Equal(t, message, u.Error())
}

func TestToBe(t *testing.T) {
	expectPass(t, func() { That(4).ToBe(4) })
	expectPass(t, func() { That("a").ToBe("a") })
	expectPass(t, func() { That(nil).ToBe(nil) })
	expectPass(t, func() { That(2.0).ToBe(2) })
	expectPass(t, func() { That(uint8(7)).ToBe(int64(7)) })

	expectFailure(t, `Expected "a" to be "b"`, func() { That("a").ToBe("b") })
	expectFailure(t, "Expected 1 to be 2", func() { That(1).ToBe(2) })
	expectFailure(t, "Expected -1 to be 18446744073709551615", func() { That(-1).ToBe(uint64(math.MaxUint64)) })
	expectFailure(t, "Expected nil to be 0", func() { That(nil).ToBe(0) })
}

func TestToBeComparesReferencesByIdentity(t *testing.T) {
	items := []int{1, 2}
	same := items
	expectPass(t, func() { That(items).ToBe(same) })
	expectFailure(t, "Expected [1 2] to be [1 2]", func() { That(items).ToBe([]int{1, 2}) })

	m := map[string]int{"a": 1}
	expectPass(t, func() { That(m).ToBe(m) })
	expectPass(t, func() { That(m).Not().ToBe(map[string]int{"a": 1}) })

	type point struct{ X, Y int }
	p := &point{1, 2}
	expectPass(t, func() { That(p).ToBe(p) })
	expectPass(t, func() { That(p).Not().ToBe(&point{1, 2}) })
	expectPass(t, func() { That(point{1, 2}).ToBe(point{1, 2}) })
}

func TestToEqual(t *testing.T) {
	expectPass(t, func() { That([]int{1, 2}).ToEqual([]int{1, 2}) })
	expectPass(t, func() { That(map[string]interface{}{"a": []int{1}}).ToEqual(map[string]interface{}{"a": []int{1}}) })
	expectPass(t, func() { That(int64(3)).ToEqual(3) })
	expectPass(t, func() { That(2.0).ToEqual(2) })

	expectFailure(t, "Expected 1.5 to equal 1", func() { That(1.5).ToEqual(1) })
	expectFailure(t, `Expected "A" to equal 65`, func() { That("A").ToEqual(65) })
	expectFailure(t, "Expected [1] to equal [1]", func() { That([]int64{1}).ToEqual([]int{1}) })
	expectPass(t, func() { That(1.5).Not().ToEqual(1) })
	expectPass(t, func() { That("A").Not().ToEqual(65) })

	expectFailure(t, "Expected [1 2] to equal [2 1]", func() { That([]int{1, 2}).ToEqual([]int{2, 1}) })
	expectFailure(t, "[NOT] Expected [1] to equal [1]", func() { That([]int{1}).Not().ToEqual([]int{1}) })
}

func TestToBeTruthy(t *testing.T) {
	var nilMap map[string]int
	var nilPtr *int
	for _, v := range []interface{}{true, 1, -2.5, "x", []int{}, map[string]int{}, struct{}{}, &struct{}{}} {
		expectPass(t, func() { That(v).ToBeTruthy() })
	}
	for _, v := range []interface{}{nil, false, 0, uint(0), 0.0, math.NaN(), "", nilMap, nilPtr} {
		expectPass(t, func() { That(v).Not().ToBeTruthy() })
	}
	expectFailure(t, `Ensure "" is truthy`, func() { That("").ToBeTruthy() })
}

func TestToMatch(t *testing.T) {
	expectPass(t, func() { That("order-42").ToMatch(`^order-\d+$`) })
	expectPass(t, func() { That("order-42").ToMatch(regexp.MustCompile(`\d+`)) })
	expectFailure(t, "Ensure 'abc' matches /^\\d+$/", func() { That("abc").ToMatch(`^\d+$`) })

	expectUsageError(t, "Value must be string, got int", func() { That(42).ToMatch(`\d+`) })
	expectUsageError(t, "Value must be string, got int", func() { That(42).Not().ToMatch(`\d+`) })
	expectUsageError(t, "pattern must be a string or *regexp.Regexp, got int", func() { That("x").ToMatch(1) })
	err := Check(func() { That("x").ToMatch("(") })
	assert.IsType(t, &UsageError{}, err)
}

func TestToHaveProperty(t *testing.T) {
	type user struct {
		Name  string
		email string
	}
	expectPass(t, func() { That(map[string]int{"count": 0}).ToHaveProperty("count") })
	expectPass(t, func() { That(user{Name: "a"}).ToHaveProperty("Name") })
	expectPass(t, func() { That(&user{}).ToHaveProperty("Name") })
	expectPass(t, func() { That(regexp.MustCompile("x")).ToHaveProperty("MatchString") })

	expectFailure(t, "Intend object to have 'email'", func() { That(user{}).ToHaveProperty("email") })
	expectFailure(t, "Intend object to have 'missing'", func() { That(map[string]int{}).ToHaveProperty("missing") })
	expectFailure(t, "Intend object to have 'x'", func() { That(nil).ToHaveProperty("x") })
	expectFailure(t, "Intend object to have 'x'", func() { That(42).ToHaveProperty("x") })
}

func TestCallAssertions(t *testing.T) {
	m := mock.New()
	expectFailure(t, "Expected mock to have been called", func() { That(m).ToHaveBeenCalled() })
	expectPass(t, func() { That(m).Not().ToHaveBeenCalled() })

	m.Call("a", 1)
	m.Call(map[string]interface{}{"id": 7})

	expectPass(t, func() { That(m).ToHaveBeenCalled() })
	expectPass(t, func() { That(m).ToHaveBeenCalledTimes(2) })
	expectPass(t, func() { That(m).ToHaveBeenCalledWith("a", 1) })
	expectPass(t, func() { That(m).ToHaveBeenCalledWith("a", 1.0) })
	expectPass(t, func() { That(m).ToHaveBeenCalledWith(map[string]interface{}{"id": 7}) })

	expectFailure(t, `Expected mock called with ["a",2]`, func() { That(m).ToHaveBeenCalledWith("a", 2) })
	expectFailure(t, `Expected mock called with ["a"]`, func() { That(m).ToHaveBeenCalledWith("a") })
	expectFailure(t, "Expected mock called 3 times, got 2", func() { That(m).ToHaveBeenCalledTimes(3) })
	expectFailure(t, "[NOT] Expected mock called 2 times, got 2", func() { That(m).Not().ToHaveBeenCalledTimes(2) })
}

func TestCallAssertionsOnNoArgumentCall(t *testing.T) {
	m := mock.New()
	m.Call()
	expectPass(t, func() { That(m).ToHaveBeenCalledWith() })
}

func TestCallAssertionsRequireMock(t *testing.T) {
	const message = "Assertion target is not a registered Mock/Spy function."
	var nilMock *mock.Mock
	expectUsageError(t, message, func() { That(func() {}).ToHaveBeenCalled() })
	expectUsageError(t, message, func() { That(nil).Not().ToHaveBeenCalledTimes(0) })
	expectUsageError(t, message, func() { That(nilMock).ToHaveBeenCalledWith() })
}

func TestDoubleNegationRestoresSense(t *testing.T) {
	a := That(1)
	assert.False(t, a.Negated())
	assert.True(t, a.Not().Negated())
	assert.False(t, a.Not().Not().Negated())
	assert.False(t, a.Negated(), "Not must not modify the original assertion")

	expectPass(t, func() { That(1).Not().Not().ToBe(1) })
	expectFailure(t, "Expected 1 to be 2", func() { That(1).Not().Not().ToBe(2) })
}

func TestNegatedPassAndFailure(t *testing.T) {
	expectPass(t, func() { That(1).Not().ToBe(2) })
	expectFailure(t, "[NOT] Expected 1 to be 1", func() { That(1).Not().ToBe(1) })
}

func TestCheckPropagatesOtherPanics(t *testing.T) {
	assert.PanicsWithValue(t, "unrelated", func() {
		_ = Check(func() { panic("unrelated") })
	})
}

func TestDialectAliasesDelegate(t *testing.T) {
	m := mock.New()
	m.Call("bad-ip")

	expectPass(t, func() { That(3).Is(3) })
	expectPass(t, func() { That(m).WasEvaluated() })
	expectPass(t, func() { That(m).AppliedTo("bad-ip") })
	expectPass(t, func() { That(m).Evaluated(1) })

	expectPass(t, func() { That("x").Be("x") })
	expectPass(t, func() { That(map[string]int{"k": 1}).Have("k") })
	expectPass(t, func() { That(m).WasCalled() })
	expectPass(t, func() { That(m).Received("bad-ip") })
	expectPass(t, func() { That(m).Uploaded("bad-ip") })
	expectPass(t, func() { That(m).Called(1) })

	expectPass(t, func() { That(true).IsOk() })
	expectPass(t, func() { That("abc").Matches("b") })
	expectPass(t, func() { That(m).Triggered() })
	expectPass(t, func() { That(m).CalledWith("bad-ip") })
	expectPass(t, func() { That(m).TriggeredCount(1) })
	expectPass(t, func() { That(m).Not().TriggeredCount(2) })
}

func TestFirewallScenario(t *testing.T) {
	firewall := mock.New()
	firewall.SetImplementation(func(args ...interface{}) interface{} {
		return args[0] != "bad-ip"
	})

	allowed := firewall.Call("bad-ip")

	expectPass(t, func() {
		That(allowed).Not().IsOk()
		That(firewall).CalledWith("bad-ip")
		That(firewall).TriggeredCount(1)
		That(firewall).Not().TriggeredCount(2)
	})
	expectFailure(t, `Expected mock called with ["good-ip"]`, func() {
		That(firewall).CalledWith("good-ip")
	})
}

func TestBlockedAddressScenarioInsideEngine(t *testing.T) {
	e := framework.NewEngine(nil)
	firewall := mock.New()
	firewall.SetReturn(map[string]interface{}{"allowed": false})

	e.Group("Firewall", func() {
		e.Case("blocks bad-ip", func() {
			firewall.Call("bad-ip")
			That(firewall).ToHaveBeenCalledWith("bad-ip")
			That(firewall).ToHaveBeenCalledTimes(1)
		})
		e.Case("is not called twice", func() {
			That(firewall).ToHaveBeenCalledTimes(2)
		})
	})

	results := e.Results()
	assert.Equal(t, 1, results.Passed())
	require.Len(t, results.Failures, 1)
	assert.Equal(t, "is not called twice", results.Failures[0].TestID.Name)
	assert.EqualError(t, errors.Unwrap(results.Failures[0].Err), "Expected mock called 2 times, got 1")
}
