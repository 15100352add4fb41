package api

import (
	"context"
	"errors"
	"io"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("StatusClassifier", func() {
	var classifier StatusClassifier

	DescribeTable("IsRetryable",
		func(err error, expected bool) {
			Expect(classifier.IsRetryable(err)).To(Equal(expected))
		},
		Entry("nil error", nil, false),
		Entry("context deadline exceeded", context.DeadlineExceeded, false),
		Entry("context canceled", context.Canceled, false),
		Entry("400 bad request", &APIError{StatusCode: 400}, false),
		Entry("401 unauthorized", &APIError{StatusCode: 401}, false),
		Entry("404 not found", &APIError{StatusCode: 404}, false),
		Entry("409 conflict", &APIError{StatusCode: 409}, false),
		Entry("429 rate limit", &APIError{StatusCode: 429}, false),
		Entry("499 client error", &APIError{StatusCode: 499}, false),
		Entry("500 internal server error", &APIError{StatusCode: 500}, true),
		Entry("502 bad gateway", &APIError{StatusCode: 502}, true),
		Entry("503 service unavailable", &APIError{StatusCode: 503}, true),
		Entry("network error", &NetworkError{Err: io.EOF}, true),
		Entry("wrapped network error", &NetworkError{Err: errors.New("connection refused")}, true),
	)

	It("treats a network error wrapping a context error as terminal", func() {
		err := &NetworkError{Err: context.DeadlineExceeded}
		Expect(classifier.IsRetryable(err)).To(BeFalse())
	})
})

var _ = Describe("newBackoff", func() {
	It("doubles the delay on each retry", func() {
		b := newBackoff(4, 100*time.Millisecond)

		d1, stop := b.Next()
		Expect(stop).To(BeFalse())
		Expect(d1).To(Equal(100 * time.Millisecond))

		d2, stop := b.Next()
		Expect(stop).To(BeFalse())
		Expect(d2).To(Equal(200 * time.Millisecond))

		d3, stop := b.Next()
		Expect(stop).To(BeFalse())
		Expect(d3).To(Equal(400 * time.Millisecond))

		_, stop = b.Next()
		Expect(stop).To(BeTrue())
	})

	It("stops immediately with a single attempt", func() {
		b := newBackoff(1, time.Second)
		_, stop := b.Next()
		Expect(stop).To(BeTrue())
	})
})
