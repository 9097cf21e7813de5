package symbols

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEditDistance(t *testing.T) {
	t.Parallel()

	cases := []struct {
		a, b string
		want int
	}{
		{"", "a", 1},
		{"a", "", 1},
		{"same", "same", 0},
		{"kitten", "sitting", 3},
		{"sitting", "kitten", 3},
		{"aa", "aü", 1},
		{"inser", "insert", 1},
		{"elsif", "else", 2},
	}

	rows := &editRows{}

	for _, tc := range cases {
		assert.Equal(t, tc.want, rows.distance(tc.a, tc.b), "%q -> %q", tc.a, tc.b)
	}
}
