package schedule

import (
	"errors"
	"fmt"
)

// "HH:mm" helpers. Request boundaries go through ParseHHMM, which also pins
// the canonical zero-padded form; every stored time string is canonical, so
// string equality and the slot uniqueness key agree with minute equality.
// Business hours never cross midnight, so there is no day rollover to handle.

// ErrBadTime reports a string that is not canonical "HH:mm".
var ErrBadTime = errors.New("schedule: invalid HH:mm time")

// ParseHHMM converts canonical "HH:mm" to minutes since midnight. Anything
// else, including unpadded forms like "9:00", is rejected.
func ParseHHMM(hm string) (int, error) {
	if len(hm) != 5 || hm[2] != ':' {
		return 0, ErrBadTime
	}
	for _, i := range []int{0, 1, 3, 4} {
		if hm[i] < '0' || hm[i] > '9' {
			return 0, ErrBadTime
		}
	}
	h := int(hm[0]-'0')*10 + int(hm[1]-'0')
	m := int(hm[3]-'0')*10 + int(hm[4]-'0')
	if h > 23 || m > 59 {
		return 0, ErrBadTime
	}
	return h*60 + m, nil
}

// ToMinutes converts stored canonical "HH:mm" to minutes since midnight.
func ToMinutes(hm string) int {
	min, _ := ParseHHMM(hm)
	return min
}

// FromMinutes converts minutes since midnight back to "HH:mm".
func FromMinutes(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// AddMinutes adds n minutes to an "HH:mm" time.
func AddMinutes(hm string, n int) string {
	return FromMinutes(ToMinutes(hm) + n)
}
