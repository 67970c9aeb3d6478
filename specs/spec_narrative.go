package specs

import "github.com/oneproof4all/oneproof/dialect"

// NarrativeSpec tells user journeys with stand-ins for the collaborating services.
func NarrativeSpec(d dialect.All) {
	d.Intend("Checkout journey", func() {
		cart := d.StandIn()
		paymentGateway := d.StandIn()
		notifications := d.StandIn()

		d.Before(func() {
			cart.Clear()
			paymentGateway.Clear()
			notifications.Clear()
		})

		d.Background(func() {
			cart.Member("getTotal").RespondsWith(150.0)
			paymentGateway.Member("process").RespondsWith(true)
		})

		d.Detail("the customer completes the purchase", func() {
			total := cart.Member("getTotal").Call()
			success := paymentGateway.Member("process").Call(total)

			if success == true {
				notifications.Member("sendEmail").Call("Purchase approved!")
			}

			d.To(cart).WasCalled()
			d.To(paymentGateway).Uploaded(total)
			d.To(notifications).Received("Purchase approved!")
		})

		d.Detail("the system handles a declined payment", func() {
			paymentGateway.Member("process").RespondsWith(false)

			success := paymentGateway.Member("process").Call(100)

			d.To(success).Be(false)
			d.To(notifications).Not().WasCalled()
		})
	})

	d.Story("Onboarding new members", func() {
		database := d.Dummy()

		d.Scenario("registering creates a default profile", func() {
			newUser := map[string]interface{}{"name": "Alice", "email": "alice@wonder.land"}

			database.Member("save").Call(newUser)

			d.To(database).Received(newUser)
			d.To(newUser).Have("email")
		})
	})
}
