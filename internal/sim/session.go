package sim

import (
	"errors"
	"math/rand"
	"time"

	"github.com/clonkbot/wallet-radar-70db61/internal/feed"
	"github.com/clonkbot/wallet-radar-70db61/internal/token"
	"github.com/clonkbot/wallet-radar-70db61/internal/trade"
	"github.com/clonkbot/wallet-radar-70db61/internal/wallet"
)

var (
	ErrUnknownWallet = errors.New("unknown wallet")
	ErrUnknownToken  = errors.New("unknown token")
)

// Session is the canonical mutable state of one dashboard run: the wallet
// set, the trade feed, per-token price histories, the user selections, and
// the LIVE/PAUSED flag. All mutation goes through its methods; it has no
// timers of its own, so every transition is directly testable.
type Session struct {
	rng       *rand.Rand
	catalog   []token.Token
	wallets   []wallet.Wallet
	tape      *feed.Tape
	gen       *trade.Generator
	histories map[string][]float64

	selectedWallet string
	selectedToken  string
	live           bool
}

// NewSession seeds a session: generated wallets, the fixed token catalog
// with fresh histories, an empty feed, and state LIVE. The first wallet and
// the first catalog token start selected, matching the dashboard defaults.
func NewSession(cfg Config, rng *rand.Rand, now time.Time) *Session {
	catalog := token.Catalog(rng)

	s := &Session{
		rng:       rng,
		catalog:   catalog,
		wallets:   wallet.Generate(rng, cfg.WalletCount, now),
		tape:      feed.NewTape(cfg.FeedCapacity),
		gen:       trade.NewGenerator(rng, catalog, cfg.BuyProbability),
		histories: make(map[string][]float64, len(catalog)),
		live:      true,
	}

	for _, tok := range catalog {
		s.histories[tok.Address] = append([]float64(nil), tok.PriceHistory...)
	}
	if len(s.wallets) > 0 {
		s.selectedWallet = s.wallets[0].Address
	}
	if len(catalog) > 0 {
		s.selectedToken = catalog[0].Address
	}
	return s
}

// EmitTrade runs one trade tick: pick a wallet uniformly at random,
// generate a trade for it, and ingest it. No-op when the wallet set is
// empty.
func (s *Session) EmitTrade(now time.Time) (trade.Trade, bool) {
	if len(s.wallets) == 0 {
		return trade.Trade{}, false
	}
	w := s.wallets[s.rng.Intn(len(s.wallets))]
	tr := s.gen.Generate(w.Address, now)
	s.Ingest(tr, now)
	return tr, true
}

// Ingest prepends a trade to the feed and mutates the originating wallet
// in place: BUY costs a flat 10% of value (fee/impact), SELL applies a
// signed delta in roughly [-10%, +40%] of value. The wallet delta is drawn
// independently of the trade's own realized pnl; the two are deliberately
// separate draws.
func (s *Session) Ingest(tr trade.Trade, now time.Time) {
	s.tape.Push(tr)

	for i := range s.wallets {
		if s.wallets[i].Address != tr.WalletAddress {
			continue
		}
		var delta float64
		if tr.Side == trade.SideBuy {
			delta = -tr.Value * 0.1
		} else {
			delta = tr.Value * (s.rng.Float64()*0.5 - 0.1)
		}
		s.wallets[i].TotalPnL += delta
		s.wallets[i].TradeCount++
		s.wallets[i].LastActive = now
		return
	}
}

// TickPrice appends one live point to the selected token's history,
// windowed to the most recent token.HistoryWindow points. No-op without a
// selection. Runs regardless of LIVE/PAUSED.
func (s *Session) TickPrice() []float64 {
	if s.selectedToken == "" {
		return nil
	}
	tok, ok := s.Token(s.selectedToken)
	if !ok {
		return nil
	}
	h := token.AppendPoint(s.rng, s.histories[s.selectedToken], tok.Price)
	s.histories[s.selectedToken] = h
	return append([]float64(nil), h...)
}

// SetLive switches between LIVE and PAUSED.
func (s *Session) SetLive(live bool) { s.live = live }

// Live reports whether the session is in the LIVE state.
func (s *Session) Live() bool { return s.live }

// SelectWallet points the wallet selection at an existing wallet.
func (s *Session) SelectWallet(address string) error {
	for _, w := range s.wallets {
		if w.Address == address {
			s.selectedWallet = address
			return nil
		}
	}
	return ErrUnknownWallet
}

// SelectToken points the token selection at a catalog token.
func (s *Session) SelectToken(address string) error {
	if _, ok := s.Token(address); !ok {
		return ErrUnknownToken
	}
	s.selectedToken = address
	return nil
}

// SelectedWallet returns the selected wallet address ("" when none).
func (s *Session) SelectedWallet() string { return s.selectedWallet }

// SelectedToken returns the selected token address ("" when none).
func (s *Session) SelectedToken() string { return s.selectedToken }

// Wallets returns the wallet set in insertion order. Returns a copy.
func (s *Session) Wallets() []wallet.Wallet {
	return append([]wallet.Wallet(nil), s.wallets...)
}

// Wallet returns the wallet with the given address.
func (s *Session) Wallet(address string) (wallet.Wallet, bool) {
	for _, w := range s.wallets {
		if w.Address == address {
			return w, true
		}
	}
	return wallet.Wallet{}, false
}

// Trades returns the retained trades, newest first.
func (s *Session) Trades() []trade.Trade {
	return s.tape.All()
}

// Catalog returns the fixed token catalog.
func (s *Session) Catalog() []token.Token {
	return append([]token.Token(nil), s.catalog...)
}

// Token returns the catalog token with the given address.
func (s *Session) Token(address string) (token.Token, bool) {
	for _, tok := range s.catalog {
		if tok.Address == address {
			return tok, true
		}
	}
	return token.Token{}, false
}

// History returns a copy of the evolving price history for a token.
func (s *Session) History(address string) []float64 {
	return append([]float64(nil), s.histories[address]...)
}
