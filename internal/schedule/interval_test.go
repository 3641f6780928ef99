package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntersect(t *testing.T) {
	tests := []struct {
		name string
		a, b Interval
		want Interval
	}{
		{"identical", Interval{540, 1080}, Interval{540, 1080}, Interval{540, 1080}},
		{"barber tighter", Interval{600, 1020}, Interval{540, 1080}, Interval{600, 1020}},
		{"shop tighter", Interval{540, 1080}, Interval{600, 1020}, Interval{600, 1020}},
		{"disjoint", Interval{540, 600}, Interval{700, 800}, Interval{700, 600}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Intersect(tt.a, tt.b)
			if tt.want.Empty() {
				assert.True(t, got.Empty())
			} else {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestSubtract(t *testing.T) {
	day := Interval{540, 1080} // 09:00-18:00

	t.Run("middle split", func(t *testing.T) {
		got := Subtract(day, Interval{720, 780}) // 12:00-13:00
		assert.Equal(t, []Interval{{540, 720}, {780, 1080}}, got)
	})

	t.Run("leading edge", func(t *testing.T) {
		got := Subtract(day, Interval{540, 600})
		assert.Equal(t, []Interval{{600, 1080}}, got)
	})

	t.Run("trailing edge", func(t *testing.T) {
		got := Subtract(day, Interval{1020, 1080})
		assert.Equal(t, []Interval{{540, 1020}}, got)
	})

	t.Run("whole interval", func(t *testing.T) {
		got := Subtract(day, Interval{500, 1100})
		assert.Empty(t, got)
	})

	t.Run("no overlap", func(t *testing.T) {
		got := Subtract(day, Interval{1100, 1200})
		assert.Equal(t, []Interval{day}, got)
	})

	t.Run("touching end is not overlap", func(t *testing.T) {
		got := Subtract(day, Interval{1080, 1140})
		assert.Equal(t, []Interval{day}, got)
	})

	t.Run("zero-length remainder discarded", func(t *testing.T) {
		got := Subtract(Interval{540, 600}, Interval{540, 600})
		assert.Empty(t, got)
	})
}

func TestOverlapsHalfOpen(t *testing.T) {
	a := Interval{600, 630}

	assert.True(t, a.Overlaps(Interval{615, 645}))
	assert.True(t, a.Overlaps(Interval{600, 630}))
	assert.True(t, a.Overlaps(Interval{590, 610}))

	// Shared endpoints are not conflicts.
	assert.False(t, a.Overlaps(Interval{630, 660}))
	assert.False(t, a.Overlaps(Interval{570, 600}))
}
