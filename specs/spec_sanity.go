package specs

import "github.com/oneproof4all/oneproof/dialect"

// SanitySpec runs one trivial group per dialect.
func SanitySpec(d dialect.All) {
	d.Axiom("Set theory (math dialect)", func() {
		f := d.Arbitrary()
		f.Yields(10)

		d.Proof("f maps to 10", func() {
			d.Implies(f.Call()).Is(10)
			d.Implies(f).WasEvaluated()
		})
	})

	d.Intend("User authentication (narrative dialect)", func() {
		login := d.StandIn()
		login.RespondsWith(true)

		d.Detail("successful login", func() {
			login.Call("user", "pass")
			d.To(login).Received("user", "pass")
			d.To(login).WasCalled()
		})
	})

	d.Ensure("Payment service (imperative dialect)", func() {
		api := d.Stub()
		api.ForceReturn(200)

		d.Check("API status is 200", func() {
			d.That(api.Call()).Is(200)
			d.That(api).TriggeredCount(1)
		})
	})
}
