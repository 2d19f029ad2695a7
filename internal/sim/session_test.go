package sim

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/clonkbot/wallet-radar-70db61/internal/token"
	"github.com/clonkbot/wallet-radar-70db61/internal/trade"
	"github.com/clonkbot/wallet-radar-70db61/internal/wallet"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	return NewSession(DefaultConfig(), rand.New(rand.NewSource(99)), time.Now())
}

func TestNewSessionDefaults(t *testing.T) {
	s := newTestSession(t)

	require.Len(t, s.Wallets(), 5)
	require.Len(t, s.Catalog(), 5)
	require.True(t, s.Live())
	require.Equal(t, s.Wallets()[0].Address, s.SelectedWallet())
	require.Equal(t, s.Catalog()[0].Address, s.SelectedToken())
	require.Empty(t, s.Trades())
}

func TestEmitTradeUpdatesFeedAndWallet(t *testing.T) {
	s := newTestSession(t)
	now := time.Now()

	tr, ok := s.EmitTrade(now)
	require.True(t, ok)

	trades := s.Trades()
	require.Len(t, trades, 1)
	require.Equal(t, tr.ID, trades[0].ID)

	w, found := s.Wallet(tr.WalletAddress)
	require.True(t, found)
	require.Equal(t, now, w.LastActive)
}

func TestEmitTradeEmptyWalletSet(t *testing.T) {
	s := newTestSession(t)
	s.wallets = nil

	_, ok := s.EmitTrade(time.Now())
	require.False(t, ok)
	require.Empty(t, s.Trades())
}

func TestIngestBuyIsDeterministic(t *testing.T) {
	s := newTestSession(t)
	now := time.Now()
	s.wallets = []wallet.Wallet{{
		Address:    "0xaaaa...bbbb",
		TradeCount: 50,
	}}

	s.Ingest(trade.Trade{
		ID:            "t1",
		WalletAddress: "0xaaaa...bbbb",
		Side:          trade.SideBuy,
		Value:         1000,
	}, now)

	w, ok := s.Wallet("0xaaaa...bbbb")
	require.True(t, ok)
	require.Equal(t, 51, w.TradeCount)
	require.Equal(t, -100.0, w.TotalPnL)
	require.Equal(t, now, w.LastActive)
}

func TestIngestSellDeltaWithinRange(t *testing.T) {
	s := newTestSession(t)
	s.wallets = []wallet.Wallet{{Address: "0xaaaa...bbbb"}}

	for i := 0; i < 200; i++ {
		before, _ := s.Wallet("0xaaaa...bbbb")
		s.Ingest(trade.Trade{
			ID:            "t",
			WalletAddress: "0xaaaa...bbbb",
			Side:          trade.SideSell,
			Value:         1000,
		}, time.Now())
		after, _ := s.Wallet("0xaaaa...bbbb")

		delta := after.TotalPnL - before.TotalPnL
		require.GreaterOrEqual(t, delta, -100.0)
		require.Less(t, delta, 400.0)
	}
}

func TestFeedCapacityEviction(t *testing.T) {
	s := newTestSession(t)
	now := time.Now()

	var oldest string
	for i := 0; i < 51; i++ {
		tr, ok := s.EmitTrade(now)
		require.True(t, ok)
		if i == 0 {
			oldest = tr.ID
		}
	}

	trades := s.Trades()
	require.Len(t, trades, 50)
	for _, tr := range trades {
		require.NotEqual(t, oldest, tr.ID)
	}
}

func TestTickPriceWindowsHistory(t *testing.T) {
	s := newTestSession(t)
	addr := s.SelectedToken()

	before := s.History(addr)
	require.Len(t, before, token.HistoryWindow)

	h := s.TickPrice()
	require.Len(t, h, token.HistoryWindow)
	// Oldest point dropped, newest derived from the previous last.
	require.Equal(t, before[1], h[0])
	require.NotEqual(t, before[token.HistoryWindow-1], h[token.HistoryWindow-1])
}

func TestTickPriceNoSelection(t *testing.T) {
	s := newTestSession(t)
	s.selectedToken = ""
	require.Nil(t, s.TickPrice())
}

func TestSelectValidation(t *testing.T) {
	s := newTestSession(t)

	require.ErrorIs(t, s.SelectWallet("0x0000...0000"), ErrUnknownWallet)
	require.ErrorIs(t, s.SelectToken("0x0000...0000"), ErrUnknownToken)

	w := s.Wallets()[2]
	require.NoError(t, s.SelectWallet(w.Address))
	require.Equal(t, w.Address, s.SelectedWallet())

	tok := s.Catalog()[3]
	require.NoError(t, s.SelectToken(tok.Address))
	require.Equal(t, tok.Address, s.SelectedToken())
}

func TestSelectionDoesNotBlockMutation(t *testing.T) {
	s := newTestSession(t)
	selected := s.SelectedWallet()

	// Force every emission onto the selected wallet.
	s.wallets = []wallet.Wallet{{Address: selected, TradeCount: 1}}

	_, ok := s.EmitTrade(time.Now())
	require.True(t, ok)

	w, _ := s.Wallet(selected)
	require.Equal(t, 2, w.TradeCount)
}
