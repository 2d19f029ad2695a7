package token

// Token represents a tradable asset with price and market metadata.
// Catalog tokens are immutable reference data; only the price history
// held by the simulation evolves over a session.
type Token struct {
	Address        string
	Symbol         string
	Name           string
	Price          float64
	PriceChange24h float64
	MarketCap      float64
	Holders        int
	Volume24h      float64
	Liquidity      float64
	PriceHistory   []float64
}
