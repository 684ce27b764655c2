package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateEmailSyntax(t *testing.T) {
	ctx := context.Background()

	// MX checks disabled so only syntax is exercised.
	require.True(t, ValidateEmail(ctx, "binit@example.com", false))
	require.True(t, ValidateEmail(ctx, "first.last+tag@club.org.np", false))

	require.False(t, ValidateEmail(ctx, "", false))
	require.False(t, ValidateEmail(ctx, "not-an-email", false))
	require.False(t, ValidateEmail(ctx, "missing@domain@double.com", false))
	require.False(t, ValidateEmail(ctx, "Name <binit@example.com>", false))
}
