package test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmailProviderUniqueness(t *testing.T) {
	provider, err := NewEmailProvider("example.com")
	require.NoError(t, err)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		email := provider.Next()
		require.False(t, seen[email], "duplicate address %s", email)
		require.True(t, strings.HasSuffix(email, "@example.com"))
		seen[email] = true
	}
}

func TestEmailProvidersDoNotCollide(t *testing.T) {
	a, err := NewEmailProvider("")
	require.NoError(t, err)
	b, err := NewEmailProvider("")
	require.NoError(t, err)

	require.NotEqual(t, a.Next(), b.Next())
}
