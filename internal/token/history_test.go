package token

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateHistoryPinsFinalPoint(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for _, length := range []int{1, 2, 50, 100} {
		h := GenerateHistory(rng, 2.45, length)
		require.Len(t, h, length)
		require.Equal(t, 2.45, h[length-1])
	}
}

func TestGenerateHistoryEmpty(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	require.Nil(t, GenerateHistory(rng, 1.0, 0))
	require.Nil(t, GenerateHistory(rng, 1.0, -3))
}

func TestNextPointStaysWithinStepBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	last := 0.156
	for i := 0; i < 1000; i++ {
		next := NextPoint(rng, last)
		ratio := next / last
		require.GreaterOrEqual(t, ratio, 1-0.48*LiveStepScale)
		require.Less(t, ratio, 1+0.52*LiveStepScale)
		last = next
	}
}

func TestAppendPointGrowsUntilWindow(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	h := []float64{1.0}
	for i := 0; i < 250; i++ {
		prev := len(h)
		h = AppendPoint(rng, h, 1.0)
		want := prev + 1
		if want > HistoryWindow {
			want = HistoryWindow
		}
		require.Len(t, h, want)
	}
}

func TestAppendPointDropsOldest(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	h := make([]float64, HistoryWindow)
	for i := range h {
		h[i] = float64(i + 1)
	}

	out := AppendPoint(rng, h, 1.0)
	require.Len(t, out, HistoryWindow)
	// Former second element is now first; the new point derives from the
	// former last element.
	require.Equal(t, 2.0, out[0])
	require.NotEqual(t, float64(HistoryWindow), out[HistoryWindow-1])
}

func TestAppendPointEmptyUsesFallback(t *testing.T) {
	rng := rand.New(rand.NewSource(9))

	out := AppendPoint(rng, nil, 2.45)
	require.Len(t, out, 1)
	ratio := out[0] / 2.45
	require.GreaterOrEqual(t, ratio, 1-0.48*LiveStepScale)
	require.Less(t, ratio, 1+0.52*LiveStepScale)
}

func TestCatalog(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	tokens := Catalog(rng)
	require.Len(t, tokens, 5)

	seen := map[string]bool{}
	for _, tok := range tokens {
		require.False(t, seen[tok.Address], "duplicate address %s", tok.Address)
		seen[tok.Address] = true

		require.Len(t, tok.PriceHistory, HistoryWindow)
		require.Equal(t, tok.Price, tok.PriceHistory[HistoryWindow-1])
	}
}
