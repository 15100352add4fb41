package api

import (
	"context"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Endpoints", func() {
	var (
		handler *recordingHandler
		server  *httptest.Server
		client  *Client
	)

	BeforeEach(func() {
		handler = &recordingHandler{}
		server = httptest.NewServer(handler)
		client = New("sk_test_key", "wl_test", WithBaseURL(server.URL))
	})

	AfterEach(func() {
		server.Close()
	})

	Describe("CreateEntry", func() {
		It("posts the submission to the entries endpoint", func() {
			handler.respond = func(attempt int, w http.ResponseWriter) {
				_, _ = w.Write([]byte(`{"id":"ent_42","email":"ada@example.com"}`))
			}

			resp, err := client.CreateEntry(context.Background(), CreateEntryRequest{
				Email:          "ada@example.com",
				ReferredByCode: "FRIEND",
				UTM:            map[string]string{"source": "newsletter"},
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.ID).To(Equal("ent_42"))

			req := handler.requests[0]
			Expect(req.Method).To(Equal(http.MethodPost))
			Expect(req.URL.Path).To(Equal("/api/waitlists/wl_test/entries"))
			Expect(handler.bodies[0]).To(MatchJSON(`{
				"email": "ada@example.com",
				"referredByCode": "FRIEND",
				"utm": {"source": "newsletter"}
			}`))
		})
	})

	Describe("EntryCount", func() {
		It("prefers totalEntries when both shapes are present", func() {
			handler.respond = func(attempt int, w http.ResponseWriter) {
				_, _ = w.Write([]byte(`{"totalEntries":5,"count":7}`))
			}

			count, err := client.EntryCount(context.Background())
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(5))

			req := handler.requests[0]
			Expect(req.Method).To(Equal(http.MethodGet))
			Expect(req.URL.Path).To(Equal("/api/waitlists/wl_test/count"))
		})

		It("falls back to count", func() {
			handler.respond = func(attempt int, w http.ResponseWriter) {
				_, _ = w.Write([]byte(`{"count":7}`))
			}

			count, err := client.EntryCount(context.Background())
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(7))
		})

		It("returns zero when neither field is present", func() {
			handler.respond = func(attempt int, w http.ResponseWriter) {
				_, _ = w.Write([]byte(`{}`))
			}

			count, err := client.EntryCount(context.Background())
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(0))
		})
	})

	Describe("CheckEmail", func() {
		It("posts the email to the check endpoint", func() {
			handler.respond = func(attempt int, w http.ResponseWriter) {
				_, _ = w.Write([]byte(`{"exists":true}`))
			}

			exists, err := client.CheckEmail(context.Background(), "ada@example.com")
			Expect(err).NotTo(HaveOccurred())
			Expect(exists).To(BeTrue())

			req := handler.requests[0]
			Expect(req.Method).To(Equal(http.MethodPost))
			Expect(req.URL.Path).To(Equal("/api/waitlists/wl_test/check"))
			Expect(handler.bodies[0]).To(MatchJSON(`{"email":"ada@example.com"}`))
		})
	})
})
