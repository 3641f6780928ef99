package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseHHMM(t *testing.T) {
	min, err := ParseHHMM("09:30")
	assert.NoError(t, err)
	assert.Equal(t, 570, min)

	min, err = ParseHHMM("23:59")
	assert.NoError(t, err)
	assert.Equal(t, 1439, min)

	for _, bad := range []string{
		"", "banana", "9:00", "09:0", "09-30", "24:00", "10:60", "0900", " 09:00",
	} {
		_, err := ParseHHMM(bad)
		assert.ErrorIs(t, err, ErrBadTime, "input %q", bad)
	}
}

func TestToMinutes(t *testing.T) {
	assert.Equal(t, 0, ToMinutes("00:00"))
	assert.Equal(t, 570, ToMinutes("09:30"))
	assert.Equal(t, 1439, ToMinutes("23:59"))
}

func TestFromMinutes(t *testing.T) {
	assert.Equal(t, "00:00", FromMinutes(0))
	assert.Equal(t, "09:30", FromMinutes(570))
	assert.Equal(t, "18:00", FromMinutes(1080))
}

func TestAddMinutes(t *testing.T) {
	assert.Equal(t, "10:00", AddMinutes("09:30", 30))
	assert.Equal(t, "18:00", AddMinutes("17:15", 45))
	assert.Equal(t, "09:30", AddMinutes("09:30", 0))
}

func TestRoundTrip(t *testing.T) {
	for m := 0; m < 24*60; m += 7 {
		assert.Equal(t, m, ToMinutes(FromMinutes(m)))
	}
}
