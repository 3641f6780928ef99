package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Only shapes that fail before any DNS lookup; resolving domains would make
// the test depend on the network.
func TestIsEmailDomainValidRejectsMalformed(t *testing.T) {
	for _, email := range []string{"", "no-at-sign", "trailing@"} {
		assert.False(t, IsEmailDomainValid(email), "input %q", email)
	}
}
