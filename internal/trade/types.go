package trade

import (
	"time"

	"github.com/clonkbot/wallet-radar-70db61/internal/token"
)

type Side uint8

const (
	SideBuy Side = iota
	SideSell
)

func (s Side) String() string {
	switch s {
	case SideBuy:
		return "BUY"
	case SideSell:
		return "SELL"
	default:
		return "UNKNOWN"
	}
}

// Trade is a single synthetic buy/sell event linking a wallet to a token.
// Trades are immutable once created.
type Trade struct {
	ID            string
	WalletAddress string
	// Token is a snapshot of the token at trade time.
	Token     token.Token
	Side      Side
	Amount    float64
	Value     float64
	Price     float64
	Timestamp time.Time
	// PnL is the realized outcome, set only for SELL trades (HasPnL
	// reports presence). BUY trades carry no pnl; the position is
	// unrealized.
	PnL    float64
	HasPnL bool
}
