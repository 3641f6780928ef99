package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "11987654321", NormalizePhone("(11) 98765-4321"))
	assert.Equal(t, "11987654321", NormalizePhone("11987654321"))
	assert.Equal(t, "5511987654321", NormalizePhone("+55 11 98765-4321"))
	assert.Equal(t, "", NormalizePhone("abc"))
}

func TestIsValidPhone(t *testing.T) {
	assert.True(t, IsValidPhone("(11) 98765-4321"))
	assert.True(t, IsValidPhone("1133334444"))
	assert.True(t, IsValidPhone("+55 11 98765-4321"))
	assert.False(t, IsValidPhone("12345"))
	assert.False(t, IsValidPhone(""))
	assert.False(t, IsValidPhone("991198765432199"))
}
