package starfield

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateStaysInShell(t *testing.T) {
	stars := Generate(rand.New(rand.NewSource(7)), 500, 100, 0.8)
	require.Len(t, stars, 500)
	for _, s := range stars {
		assert.GreaterOrEqual(t, s.Len(), float32(80))
		for i := 0; i < 3; i++ {
			assert.LessOrEqual(t, s[i], float32(100))
			assert.GreaterOrEqual(t, s[i], float32(-100))
		}
	}
}

func TestGenerateIsDeterministicPerSeed(t *testing.T) {
	a := Generate(rand.New(rand.NewSource(42)), 50, 1000, 0.8)
	b := Generate(rand.New(rand.NewSource(42)), 50, 1000, 0.8)
	assert.Equal(t, a, b)
}

func TestGenerateDegenerateInput(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	assert.Empty(t, Generate(rng, 0, 100, 0.5))
	assert.Empty(t, Generate(rng, 10, 0, 0.5))
	assert.Len(t, Generate(rng, 10, 100, 2), 10)
}
