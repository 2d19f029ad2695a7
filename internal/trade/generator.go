package trade

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/clonkbot/wallet-radar-70db61/internal/token"
)

const (
	minAmount = 100_000
	maxAmount = 10_100_000
)

// Generator produces synthetic trades against a fixed token catalog.
type Generator struct {
	rng            *rand.Rand
	catalog        []token.Token
	buyProbability float64
}

// NewGenerator creates a Generator. The catalog must be non-empty.
func NewGenerator(rng *rand.Rand, catalog []token.Token, buyProbability float64) *Generator {
	return &Generator{
		rng:            rng,
		catalog:        catalog,
		buyProbability: buyProbability,
	}
}

// Generate produces one trade attributed to walletAddress: a uniformly
// random catalog token, BUY with the configured probability, and an
// integer amount in [100000, 10100000). SELL trades get a realized pnl
// skewed positive with magnitude up to half the trade value.
func (g *Generator) Generate(walletAddress string, now time.Time) Trade {
	tok := g.catalog[g.rng.Intn(len(g.catalog))]

	side := SideSell
	if g.rng.Float64() < g.buyProbability {
		side = SideBuy
	}

	amount := float64(g.rng.Intn(maxAmount-minAmount) + minAmount)

	tr := Trade{
		ID:            uuid.NewString(),
		WalletAddress: walletAddress,
		Token:         tok,
		Side:          side,
		Amount:        amount,
		Value:         amount * tok.Price,
		Price:         tok.Price,
		Timestamp:     now,
	}
	if side == SideSell {
		tr.PnL = (g.rng.Float64() - 0.3) * tr.Value * 0.5
		tr.HasPnL = true
	}
	return tr
}
