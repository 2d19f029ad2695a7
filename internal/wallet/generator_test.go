package wallet

import (
	"math/rand"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var addressPattern = regexp.MustCompile(`^0x[0-9a-f]{4}\.\.\.[0-9a-f]{4}$`)

func TestGenerate(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	now := time.Now()

	wallets := Generate(rng, 5, now)
	require.Len(t, wallets, 5)

	for _, w := range wallets {
		require.Regexp(t, addressPattern, w.Address)
		require.True(t, w.IsTracking)

		require.GreaterOrEqual(t, w.TradeCount, 50)
		require.LessOrEqual(t, w.TradeCount, 549)

		require.GreaterOrEqual(t, w.WinRate, 45.0)
		require.LessOrEqual(t, w.WinRate, 80.0)

		require.GreaterOrEqual(t, w.TotalPnL, -150_000.0)
		require.LessOrEqual(t, w.TotalPnL, 350_000.0)

		require.False(t, w.LastActive.After(now))
		require.False(t, w.LastActive.Before(now.Add(-time.Hour)))
	}
}

func TestGenerateLabelRosterCycles(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	wallets := Generate(rng, len(labels)+2, time.Now())
	require.Equal(t, labels[0], wallets[0].Label)
	require.Equal(t, labels[0], wallets[len(labels)].Label)
	require.Equal(t, labels[1], wallets[len(labels)+1].Label)
}

func TestGenerateZeroCount(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	require.Empty(t, Generate(rng, 0, time.Now()))
}
