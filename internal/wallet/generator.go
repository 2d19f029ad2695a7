package wallet

import (
	"fmt"
	"math/rand"
	"time"
)

// labels is the fixed roster of themed wallet names. When generating more
// wallets than the roster holds, labels repeat.
var labels = []string{
	"Whale Alpha",
	"Degen King",
	"Smart Money",
	"Copy This",
	"Moon Hunter",
	"Gem Finder",
	"Early Bird",
	"Insider",
}

// Generate produces count synthetic tracked wallets with randomized
// performance stats. Addresses are short hex prefix/suffix pairs;
// uniqueness is probabilistic, not guaranteed.
func Generate(rng *rand.Rand, count int, now time.Time) []Wallet {
	wallets := make([]Wallet, 0, count)
	for i := 0; i < count; i++ {
		wallets = append(wallets, Wallet{
			Address:    fmt.Sprintf("0x%04x...%04x", rng.Intn(0x10000), rng.Intn(0x10000)),
			Label:      labels[i%len(labels)],
			TotalPnL:   (rng.Float64() - 0.3) * 500_000,
			TradeCount: rng.Intn(500) + 50,
			WinRate:    45 + rng.Float64()*35,
			LastActive: now.Add(-time.Duration(rng.Float64() * float64(time.Hour))),
			IsTracking: true,
		})
	}
	return wallets
}
