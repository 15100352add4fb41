package waitly

import (
	ginkgo "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = ginkgo.Describe("email validation", func() {
	ginkgo.DescribeTable("validEmail",
		func(email string, valid bool) {
			Expect(validEmail(email)).To(Equal(valid))
		},
		ginkgo.Entry("simple address", "ada@example.com", true),
		ginkgo.Entry("subdomain", "ada@mail.example.co.uk", true),
		ginkgo.Entry("plus tag", "ada+waitlist@example.com", true),
		ginkgo.Entry("missing at sign", "ada.example.com", false),
		ginkgo.Entry("missing domain dot", "ada@example", false),
		ginkgo.Entry("embedded space", "ada lovelace@example.com", false),
		ginkgo.Entry("empty", "", false),
		ginkgo.Entry("double at sign", "ada@@example.com", false),
	)

	ginkgo.DescribeTable("normalizeEmail",
		func(in, out string) {
			Expect(normalizeEmail(in)).To(Equal(out))
		},
		ginkgo.Entry("lower-cases", "Ada@Example.COM", "ada@example.com"),
		ginkgo.Entry("trims", "  ada@example.com\t", "ada@example.com"),
		ginkgo.Entry("leaves inner whitespace", "ada l@example.com", "ada l@example.com"),
	)
})
