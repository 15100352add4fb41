package api

import (
	"net/http"
	"sync/atomic"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("registry", func() {
	var r *registry

	BeforeEach(func() {
		r = newRegistry()
	})

	It("tracks handles until they are removed", func() {
		id := r.Add(http.MethodGet, "/api/waitlists/wl/count", func() {})
		Expect(r.Len()).To(Equal(1))

		r.Remove(id)
		Expect(r.Len()).To(Equal(0))
	})

	It("generates distinct IDs for identical operations", func() {
		a := r.Add(http.MethodPost, "/api/waitlists/wl/entries", func() {})
		b := r.Add(http.MethodPost, "/api/waitlists/wl/entries", func() {})
		Expect(a).NotTo(Equal(b))
		Expect(r.Len()).To(Equal(2))
	})

	It("cancels every handle and empties itself", func() {
		var cancelled atomic.Int32
		cancel := func() { cancelled.Add(1) }

		r.Add(http.MethodGet, "/a", cancel)
		r.Add(http.MethodGet, "/b", cancel)
		r.Add(http.MethodPost, "/c", cancel)

		r.CancelAll()
		Expect(cancelled.Load()).To(Equal(int32(3)))
		Expect(r.Len()).To(Equal(0))
	})

	It("is a no-op with nothing in flight", func() {
		Expect(func() { r.CancelAll() }).NotTo(Panic())
		r.CancelAll()
		Expect(r.Len()).To(Equal(0))
	})

	It("removing an unknown ID is harmless", func() {
		r.Remove("GET /nope 0-0")
		Expect(r.Len()).To(Equal(0))
	})
})
