package validators

import (
	"net"
	"strings"
)

// IsEmailDomainValid reports whether the address carries a domain that
// resolves, preferring MX records and falling back to a host lookup for
// domains that receive mail on their A record. Mailbox existence is not
// checked; this only filters typo domains out at registration.
func IsEmailDomainValid(email string) bool {
	domain, ok := emailDomain(email)
	if !ok {
		return false
	}

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	ips, err := net.LookupIP(domain)
	return err == nil && len(ips) > 0
}

func emailDomain(email string) (string, bool) {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return "", false
	}
	return email[at+1:], true
}
