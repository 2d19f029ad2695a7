package panels

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFormatPriceTiers(t *testing.T) {
	require.Equal(t, "1.23e-05", formatPrice(0.0000123))
	require.Equal(t, "0.156000", formatPrice(0.156))
	require.Equal(t, "2.4500", formatPrice(2.45))
	require.Equal(t, "175.00", formatPrice(175))
	require.Equal(t, "0.000000", formatPrice(0))
}

func TestFormatUSD(t *testing.T) {
	require.Equal(t, "$12.00", formatUSD(12))
	require.Equal(t, "$1.5K", formatUSD(1500))
	require.Equal(t, "$2.35M", formatUSD(2_350_000))
}

func TestFormatAmount(t *testing.T) {
	require.Equal(t, "900", formatAmount(900))
	require.Equal(t, "100.0K", formatAmount(100_000))
	require.Equal(t, "10.10M", formatAmount(10_100_000))
}

func TestFormatCompact(t *testing.T) {
	require.Equal(t, "$5.20B", formatCompact(5_200_000_000, "$"))
	require.Equal(t, "234.6K", formatCompact(234_567, ""))
	require.Equal(t, "$12", formatCompact(12, "$"))
}

func TestFormatPnLSign(t *testing.T) {
	require.Equal(t, "+$250.00", formatPnL(250))
	require.Equal(t, "-$1.2K", formatPnL(-1234))
	require.Equal(t, "+$1.50M", formatPnL(1_500_000))
	require.Equal(t, "+$0.00", formatPnL(0))
}

func TestTimeAgo(t *testing.T) {
	now := time.Now()
	require.Equal(t, "30s ago", timeAgo(now.Add(-30*time.Second), now))
	require.Equal(t, "5m ago", timeAgo(now.Add(-5*time.Minute), now))
	require.Equal(t, "2h ago", timeAgo(now.Add(-2*time.Hour), now))
	require.Equal(t, "0s ago", timeAgo(now.Add(time.Minute), now))
}

func TestChangePercentGuards(t *testing.T) {
	require.Zero(t, changePercent(nil))
	require.Zero(t, changePercent([]float64{}))
	require.Zero(t, changePercent([]float64{0, 5}))
	require.InDelta(t, 50.0, changePercent([]float64{2, 3}), 1e-9)
	require.InDelta(t, -50.0, changePercent([]float64{2, 1}), 1e-9)
}
