package waitly

import (
	"regexp"
	"strings"
)

// emailPattern rejects addresses with embedded whitespace, a missing @,
// or a domain without a dot. Anything stricter is the server's job.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// normalizeEmail lower-cases and trims an address before transmission.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validEmail(email string) bool {
	return emailPattern.MatchString(email)
}
