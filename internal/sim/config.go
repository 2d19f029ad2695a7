package sim

import "time"

// Config holds configuration for the simulation service.
type Config struct {
	// WalletCount is the number of tracked wallets generated at startup.
	WalletCount int
	// FeedCapacity is the capacity of the trade feed ring buffer.
	FeedCapacity int
	// BuyProbability is the probability a generated trade is a BUY.
	BuyProbability float64
	// MinTradeInterval is the inclusive lower bound of the randomized
	// trade-emission interval.
	MinTradeInterval time.Duration
	// MaxTradeInterval is the exclusive upper bound of the randomized
	// trade-emission interval.
	MaxTradeInterval time.Duration
	// EventBuffer is the size of the external trade events channel.
	EventBuffer int
	// DropEvents determines whether the events channel drops on overflow.
	DropEvents bool
	// Seed seeds the random stream; 0 means seed from the clock.
	Seed int64
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		WalletCount:      5,
		FeedCapacity:     50,
		BuyProbability:   0.55,
		MinTradeInterval: 2 * time.Second,
		MaxTradeInterval: 5 * time.Second,
		EventBuffer:      64,
		DropEvents:       true,
	}
}
