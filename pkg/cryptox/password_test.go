package cryptox

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		require.Equal(t, HashPassword("secret"), HashPassword("secret"))
	})

	t.Run("known digest", func(t *testing.T) {
		// sha256("password") in hex
		require.Equal(t,
			"5e884898da28047151d0e56f8dc6292773603d0d6aabbdd62a11ef721d1542d8",
			HashPassword("password"),
		)
	})

	t.Run("fixed output size", func(t *testing.T) {
		require.Len(t, HashPassword(""), 64)
		require.Len(t, HashPassword("a much longer password than usual"), 64)
	})
}

func TestVerifyPassword(t *testing.T) {
	digest := HashPassword("correct horse battery staple")

	require.True(t, VerifyPassword("correct horse battery staple", digest))
	require.False(t, VerifyPassword("wrong", digest))
	require.False(t, VerifyPassword("correct horse battery staple", "not-a-digest"))
}
