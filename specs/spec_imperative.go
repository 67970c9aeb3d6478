package specs

import (
	"regexp"

	"github.com/oneproof4all/oneproof/dialect"
	"github.com/oneproof4all/oneproof/framework"
	"github.com/oneproof4all/oneproof/mock"
)

type accessDecision struct {
	Allowed     bool
	ThreatLevel int
}

type auditTrail struct {
	log  framework.Logger
	sink mock.Func
}

func (a auditTrail) record(event string) {
	a.log.Printf("recording %q", event)
	a.sink(event)
}

// ImperativeSpec checks integration contracts with stubbed infrastructure.
func ImperativeSpec(d dialect.All) {
	d.Ensure("Security and compliance", func() {
		firewall := d.Stub()
		logger := d.Stub()

		d.InitAll(func() {
			firewall.ForceReturn(accessDecision{Allowed: true})
		})

		d.Check("connections from blacklisted addresses are blocked", func() {
			const maliciousIP = "192.168.1.666"

			firewall.Executes(func(args ...interface{}) interface{} {
				return accessDecision{Allowed: args[0] != maliciousIP}
			})

			access := firewall.Call(maliciousIP).(accessDecision)

			d.That(access.Allowed).Is(false)
			d.That(firewall).Triggered()
			d.That(firewall).CalledWith(maliciousIP)
		})

		d.Check("every access is audited", func() {
			audit := auditTrail{log: d.Logger("audit: "), sink: logger.Fn()}
			audit.record("admin access started")

			d.That(logger).TriggeredCount(1)
			d.That(logger).CalledWith("admin access started")
		})
	})

	d.Suite("API v2 structural validation", func() {
		apiResponse := map[string]interface{}{
			"status": 200,
			"data": map[string]interface{}{
				"id":   "uuid-1234",
				"role": "admin",
				"meta": map[string]interface{}{"version": 2},
			},
		}
		data := apiResponse["data"].(map[string]interface{})

		d.Verify("payload carries the expected metadata", func() {
			d.That(apiResponse["status"]).Is(200)
			d.That(data["role"]).Is("admin")
			d.That(data["meta"]).ToEqual(map[string]interface{}{"version": 2})
		})

		d.Verify("required fields are present", func() {
			d.That(data).IsOk()
			d.That(data).ToHaveProperty("id")
			d.That(data["id"]).Matches(regexp.MustCompile(`^uuid-`))
		})
	})
}
