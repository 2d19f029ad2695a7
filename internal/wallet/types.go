package wallet

import "time"

// Wallet is a tracked pseudo-account with cumulative trading stats.
// Wallets are created once at startup and mutated in place by the
// simulation as trades are attributed to them; never deleted.
type Wallet struct {
	// Address is unique across the wallet set and stable for the
	// wallet's lifetime.
	Address string
	Label   string
	// TotalPnL is cumulative and signed.
	TotalPnL   float64
	TradeCount int
	// WinRate is a static descriptive stat in percent; it is not
	// recomputed from trade outcomes.
	WinRate    float64
	LastActive time.Time
	IsTracking bool
}
