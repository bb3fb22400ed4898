package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecureRandomInt(t *testing.T) {
	t.Run("stays within bounds", func(t *testing.T) {
		for i := 0; i < 1000; i++ {
			n, err := SecureRandomInt(3, 7)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, n, 3)
			assert.LessOrEqual(t, n, 7)
		}
	})

	t.Run("min equals max", func(t *testing.T) {
		n, err := SecureRandomInt(5, 5)
		require.NoError(t, err)
		assert.Equal(t, 5, n)
	})

	t.Run("min greater than max", func(t *testing.T) {
		_, err := SecureRandomInt(6, 5)
		assert.Error(t, err)
	})
}

func TestSecureIndex(t *testing.T) {
	assert.Equal(t, 0, SecureIndex(0))
	assert.Equal(t, 0, SecureIndex(1))

	seen := make(map[int]int)
	for i := 0; i < 3000; i++ {
		idx := SecureIndex(3)
		require.True(t, idx >= 0 && idx < 3, "index %d out of range", idx)
		seen[idx]++
	}
	assert.Len(t, seen, 3, "every index should be drawn at least once")
}
