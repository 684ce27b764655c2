package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Yoga & Meditation", "yoga-meditation"},
		{"  Community   Cleanup  ", "community-cleanup"},
		{"Blood Donation 2025", "blood-donation-2025"},
		{"---", ""},
		{"Ünïcode Title", "n-code-title"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, Slugify(tc.in), "input %q", tc.in)
	}
}
