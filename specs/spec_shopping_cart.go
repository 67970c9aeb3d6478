package specs

import (
	"math"
	"regexp"

	"github.com/oneproof4all/oneproof/dialect"
)

type cartItem struct {
	Name  string
	Price float64
	Qty   int
}

// ShoppingCartSpec tests one feature at three layers, each in the dialect that suits it: pure
// pricing rules in the math dialect, the user journey in the narrative dialect, and the
// payment gateway contract in the imperative dialect.
func ShoppingCartSpec(d dialect.All) {
	d.Axiom("Pricing theory", func() {
		var (
			discount func(price, percent float64) float64
			total    func(items []cartItem) float64
			withTax  func(subtotal, rate float64) float64
		)

		d.Given(func() {
			discount = func(price, percent float64) float64 { return price - price*(percent/100) }
			total = func(items []cartItem) float64 {
				sum := 0.0
				for _, i := range items {
					sum += i.Price * float64(i.Qty)
				}
				return sum
			}
			withTax = func(subtotal, rate float64) float64 {
				return math.Round(subtotal*(1+rate)*100) / 100
			}
		})

		d.Proof("10% off 100 implies 90", func() {
			d.Implies(discount(100, 10)).Is(90)
		})

		d.Proof("0% off preserves the price", func() {
			d.Implies(discount(250, 0)).Is(250)
		})

		d.Proof("100% off cancels the price", func() {
			d.Implies(discount(500, 100)).Is(0)
		})

		d.Proof("the total of an empty cart converges to zero", func() {
			d.Implies(total(nil)).Is(0)
		})

		d.Proof("three lines of two items at 10 imply 60", func() {
			items := []cartItem{{Price: 10, Qty: 2}, {Price: 10, Qty: 2}, {Price: 10, Qty: 2}}
			d.Implies(total(items)).Is(60)
		})

		d.Proof("10% tax on 100 yields 110", func() {
			d.Implies(withTax(100, 0.1)).Is(110)
		})
	})

	d.Intend("Shopping journey", func() {
		cart := d.StandIn()
		user := d.StandIn()

		d.Background(func() {
			cart.RespondsWith(map[string]interface{}{"items": []cartItem{}, "total": 0})
			user.RespondsWith(map[string]interface{}{"name": "João", "loggedIn": true})
		})

		d.Scenario("the user adds a first product", func() {
			cart.Member("add").Call(cartItem{Name: "T-shirt", Price: 49.9})
			cart.RespondsWith(map[string]interface{}{
				"items": []cartItem{{Name: "T-shirt", Price: 49.9}},
				"total": 49.9,
			})

			d.To(cart).WasCalled()
			d.To(cart.Get("items")).Not().Be(nil)
		})

		d.Scenario("the user applies a discount coupon", func() {
			coupon := d.StandIn()
			coupon.RespondsWith(map[string]interface{}{"valid": true, "discount": 15})

			cart.Member("applyCoupon").ActsLike(func(args ...interface{}) interface{} {
				return coupon.Call(args...)
			})

			cart.Member("applyCoupon").Call("DISCOUNT15")
			cart.RespondsWith(map[string]interface{}{"total": 42.42})

			d.To(coupon).WasCalled()
			d.To(coupon).Received("DISCOUNT15")
			d.To(cart.Get("total")).Be(42.42)
		})

		d.Scenario("an anonymous user cannot check out", func() {
			user.RespondsWith(map[string]interface{}{"loggedIn": false})
			checkout := d.StandIn()
			checkout.RespondsWith(map[string]interface{}{"error": "LOGIN_REQUIRED", "status": 401})

			d.To(user.Get("loggedIn")).Be(false)
			d.To(checkout.Get("status")).Be(401)
		})
	})

	d.Ensure("Payment gateway v2.1 compliance", func() {
		gateway := d.Stub()
		firewall := d.Stub()
		auditLog := d.Stub()

		d.InitAll(func() {
			gateway.Member("process").ForceReturn(map[string]interface{}{
				"status":        200,
				"transactionId": "tx_abc123",
				"timestamp":     "2026-01-01T00:00:00Z",
			})
			firewall.ForceReturn(map[string]interface{}{"allowed": false})
			auditLog.Member("log").ForceReturn(true)
		})

		d.Reset(func() {
			gateway.Clear()
			firewall.Clear()
			auditLog.Clear()
		})

		d.Check("a successful transaction returns status 200", func() {
			response := gateway.Member("process").Call(map[string]interface{}{
				"amount": 99.9, "currency": "BRL", "cardToken": "tok_visa_xxxx",
			}).(map[string]interface{})

			d.That(response["status"]).Is(200)
			d.That(response["transactionId"]).Matches(regexp.MustCompile(`^tx_[a-z0-9]+$`))
			d.That(response["timestamp"]).Matches(`^\d{4}-\d{2}-\d{2}T`)
		})

		d.Check("blocked addresses are reported once", func() {
			firewall.Call("bad-ip")

			d.That(firewall).CalledWith("bad-ip")
			d.That(firewall).TriggeredCount(1)
			d.That(firewall).Not().TriggeredCount(2)
		})

		d.Check("every transaction is logged for audit", func() {
			gateway.Member("process").Call(map[string]interface{}{"amount": 100})
			auditLog.Member("log").Call(map[string]interface{}{"event": "PAYMENT_PROCESSED"})

			d.That(auditLog).Triggered()
			d.That(auditLog).CalledWith(map[string]interface{}{"event": "PAYMENT_PROCESSED"})
		})

		d.Check("the gateway is hit exactly once per request", func() {
			gateway.Member("process").Call(map[string]interface{}{"amount": 100})
			d.That(gateway).TriggeredCount(1)
		})
	})
}
