package validators

import (
	"net"
	"strings"
)

// HasMailboxShape is a cheap syntactic check used before the DNS lookup.
func HasMailboxShape(email string) bool {
	at := strings.LastIndex(email, "@")
	return at > 0 && at < len(email)-1
}

// IsEmailDomainValid checks that the address's domain resolves to either an
// MX record or an A/AAAA record. Network errors count as invalid.
func IsEmailDomainValid(email string) bool {
	if !HasMailboxShape(email) {
		return false
	}

	domain := email[strings.LastIndex(email, "@")+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
