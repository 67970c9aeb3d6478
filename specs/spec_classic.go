package specs

import (
	"errors"
	"strings"

	"github.com/oneproof4all/oneproof/dialect"
	"github.com/oneproof4all/oneproof/framework"
)

var normalizeUsername = func(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// ClassicSpec uses the describe/it vocabulary, including spies and afterEach hooks.
func ClassicSpec(d dialect.All) {
	d.Describe("Username normalization", func() {
		var spy = d.Jest.SpyOn(&normalizeUsername)
		var checked int

		d.AfterEach(func() {
			checked++
			spy.Clear()
		})
		d.AfterAll(func() {
			spy.Restore()
		})

		d.It("trims and lower-cases", func() {
			d.Expect(normalizeUsername("  Alice ")).ToBe("alice")
			d.Expect(spy).ToHaveBeenCalledWith("  Alice ")
		})

		d.It("is called once per lookup", func() {
			normalizeUsername("Bob")
			d.Expect(spy).ToHaveBeenCalledTimes(1)
			d.Expect(checked).ToBe(1)
		})
	})

	d.Describe("Token store", func() {
		store := d.Jest.Fn()

		d.BeforeEach(func() {
			store.Reset()
			store.MockResolvedValue("tok_123")
		})

		d.Test("resolves the stored token", func() error {
			value, err := store.Call("user-1").(framework.Awaitable).Await()
			if err != nil {
				return err
			}
			if value != "tok_123" {
				return errors.New("unexpected token")
			}
			return nil
		})

		d.Test("unknown members become child mocks", func() {
			d.Expect(store.Get("mockReturnValue")).Not().ToBe(nil)
			d.Expect(store.Get("refresh")).ToBeTruthy()
		})
	})
}
