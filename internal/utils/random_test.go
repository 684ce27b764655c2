package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRandomNumericString(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		code := RandomNumericString(6)
		require.Len(t, code, 6)
		for _, r := range code {
			require.True(t, r >= '0' && r <= '9', "unexpected rune %q", r)
		}
		seen[code] = true
	}
	// 50 draws from a million possibilities should not all collide.
	require.Greater(t, len(seen), 1)
}

func TestRandomStringLength(t *testing.T) {
	for _, n := range []int{1, 16, 64} {
		require.Len(t, RandomString(n), n)
	}
}
