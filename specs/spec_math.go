package specs

import (
	"math"

	"github.com/oneproof4all/oneproof/dialect"
	"github.com/oneproof4all/oneproof/framework"
)

func compoundInterest(principal, rate float64, years int) float64 {
	return principal * math.Pow(1+rate, float64(years))
}

// MathSpec proves properties of pure functions.
func MathSpec(d dialect.All) {
	d.Axiom("Finance: compound interest", func() {
		d.Proof("capital grows exponentially", func() {
			d.Implies(compoundInterest(1000, 0.5, 2)).Is(2250)
		})

		d.Proof("a zero rate leaves the capital unchanged", func() {
			d.Implies(compoundInterest(500, 0, 10)).Is(500)
		})
	})

	d.Axiom("Boolean algebra: De Morgan's laws", func() {
		a, b := true, false

		d.Proof("the negation of a disjunction is the conjunction of the negations", func() {
			d.Implies(!(a || b)).Is(!a && !b)
		})
	})

	d.Axiom("Recursive functions", func() {
		factorial := d.Arbitrary()
		factorial.Derive(func(args ...interface{}) interface{} {
			n := args[0].(int)
			if n <= 1 {
				return 1
			}
			return n * factorial.Call(n-1).(int)
		})

		d.Proof("factorial of 5 converges to 120", func() {
			d.Implies(factorial.Call(5)).Is(120)
			d.Implies(factorial).Evaluated(5)
		})
	})

	d.Axiom("Deferred values", func() {
		limit := d.Lambda()
		limit.ConvergesTo(1.0)

		d.Proof("a converging sequence settles on its limit", func() framework.Awaitable {
			return framework.Go(func() (interface{}, error) {
				value, err := limit.Call().(*framework.Future).Await()
				if err != nil {
					return nil, err
				}
				d.Implies(value).Is(1)
				return value, nil
			})
		})
	})
}
