package panels

import (
	"fmt"
	"time"
)

// formatPrice renders a token unit price with precision tiered by
// magnitude, so meme-coin prices stay readable.
func formatPrice(price float64) string {
	switch {
	case price != 0 && price < 0.0001:
		return fmt.Sprintf("%.2e", price)
	case price < 1:
		return fmt.Sprintf("%.6f", price)
	case price < 100:
		return fmt.Sprintf("%.4f", price)
	default:
		return fmt.Sprintf("%.2f", price)
	}
}

// formatUSD renders a dollar value with K/M suffixes.
func formatUSD(value float64) string {
	switch {
	case value >= 1_000_000:
		return fmt.Sprintf("$%.2fM", value/1_000_000)
	case value >= 1_000:
		return fmt.Sprintf("$%.1fK", value/1_000)
	default:
		return fmt.Sprintf("$%.2f", value)
	}
}

// formatAmount renders a token amount with K/M suffixes.
func formatAmount(amount float64) string {
	switch {
	case amount >= 1_000_000:
		return fmt.Sprintf("%.2fM", amount/1_000_000)
	case amount >= 1_000:
		return fmt.Sprintf("%.1fK", amount/1_000)
	default:
		return fmt.Sprintf("%.0f", amount)
	}
}

// formatCompact renders a large stat with K/M/B suffixes and an optional
// currency prefix.
func formatCompact(value float64, prefix string) string {
	switch {
	case value >= 1e9:
		return fmt.Sprintf("%s%.2fB", prefix, value/1e9)
	case value >= 1e6:
		return fmt.Sprintf("%s%.2fM", prefix, value/1e6)
	case value >= 1e3:
		return fmt.Sprintf("%s%.1fK", prefix, value/1e3)
	default:
		return fmt.Sprintf("%s%.0f", prefix, value)
	}
}

// formatPnL renders a signed dollar value with an explicit plus sign.
func formatPnL(pnl float64) string {
	abs := pnl
	prefix := "+"
	if pnl < 0 {
		abs = -pnl
		prefix = "-"
	}
	switch {
	case abs >= 1_000_000:
		return fmt.Sprintf("%s$%.2fM", prefix, abs/1_000_000)
	case abs >= 1_000:
		return fmt.Sprintf("%s$%.1fK", prefix, abs/1_000)
	default:
		return fmt.Sprintf("%s$%.2f", prefix, abs)
	}
}

// timeAgo renders the distance from t to now as Ns/Nm/Nh ago.
func timeAgo(t, now time.Time) string {
	seconds := int(now.Sub(t).Seconds())
	if seconds < 0 {
		seconds = 0
	}
	switch {
	case seconds < 60:
		return fmt.Sprintf("%ds ago", seconds)
	case seconds < 3600:
		return fmt.Sprintf("%dm ago", seconds/60)
	default:
		return fmt.Sprintf("%dh ago", seconds/3600)
	}
}

// changePercent returns the percent change across a price series, guarding
// empty series and zero starting prices.
func changePercent(history []float64) float64 {
	if len(history) == 0 || history[0] == 0 {
		return 0
	}
	first := history[0]
	last := history[len(history)-1]
	return (last - first) / first * 100
}
