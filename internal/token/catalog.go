package token

import "math/rand"

// Catalog returns the fixed token set tracked by the dashboard, each with a
// freshly generated price history ending at its declared price. Histories
// are regenerated per session; nothing persists.
func Catalog(rng *rand.Rand) []Token {
	tokens := []Token{
		{
			Address:        "0x1234...5678",
			Symbol:         "PEPE",
			Name:           "Pepe",
			Price:          0.00001234,
			PriceChange24h: 15.7,
			MarketCap:      5_200_000_000,
			Holders:        234567,
			Volume24h:      890_000_000,
			Liquidity:      45_000_000,
		},
		{
			Address:        "0xABCD...EFGH",
			Symbol:         "WIF",
			Name:           "dogwifhat",
			Price:          2.45,
			PriceChange24h: -8.3,
			MarketCap:      2_400_000_000,
			Holders:        156789,
			Volume24h:      340_000_000,
			Liquidity:      28_000_000,
		},
		{
			Address:        "0x9876...5432",
			Symbol:         "BONK",
			Name:           "Bonk",
			Price:          0.0000234,
			PriceChange24h: 42.1,
			MarketCap:      1_800_000_000,
			Holders:        567890,
			Volume24h:      560_000_000,
			Liquidity:      32_000_000,
		},
		{
			Address:        "0xDEAD...BEEF",
			Symbol:         "MOG",
			Name:           "Mog Coin",
			Price:          0.00000189,
			PriceChange24h: -3.2,
			MarketCap:      780_000_000,
			Holders:        89012,
			Volume24h:      120_000_000,
			Liquidity:      15_000_000,
		},
		{
			Address:        "0xCAFE...BABE",
			Symbol:         "BRETT",
			Name:           "Brett",
			Price:          0.156,
			PriceChange24h: 28.9,
			MarketCap:      1_500_000_000,
			Holders:        123456,
			Volume24h:      280_000_000,
			Liquidity:      22_000_000,
		},
	}

	for i := range tokens {
		tokens[i].PriceHistory = GenerateHistory(rng, tokens[i].Price, HistoryWindow)
	}
	return tokens
}
