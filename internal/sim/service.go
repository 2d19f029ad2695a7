package sim

import (
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/clonkbot/wallet-radar-70db61/internal/token"
	"github.com/clonkbot/wallet-radar-70db61/internal/trade"
	"github.com/clonkbot/wallet-radar-70db61/internal/wallet"
)

// TradeEvent is emitted after each trade tick: the new trade plus the
// post-mutation snapshot of the originating wallet.
type TradeEvent struct {
	Trade  trade.Trade
	Wallet wallet.Wallet
}

// Service owns a Session and drives its trade-emission timer: a one-shot
// interval redrawn uniformly from [MinTradeInterval, MaxTradeInterval)
// after every firing, suspended entirely while PAUSED. Price ticks are
// caller-driven (they gate on token selection, not on LIVE/PAUSED).
type Service struct {
	cfg Config

	mu      sync.Mutex
	session *Session
	sched   Scheduler

	events  chan TradeEvent
	dropped atomic.Int64

	closed    chan struct{}
	closeOnce sync.Once
}

// NewService creates a Service, seeds the session, and schedules the first
// emission (the session starts LIVE).
func NewService(cfg Config) *Service {
	return newService(cfg, NewTimerScheduler())
}

func newService(cfg Config, sched Scheduler) *Service {
	def := DefaultConfig()
	if cfg.WalletCount <= 0 {
		cfg.WalletCount = def.WalletCount
	}
	if cfg.FeedCapacity <= 0 {
		cfg.FeedCapacity = def.FeedCapacity
	}
	if cfg.BuyProbability <= 0 {
		cfg.BuyProbability = def.BuyProbability
	}
	if cfg.MinTradeInterval <= 0 {
		cfg.MinTradeInterval = def.MinTradeInterval
	}
	if cfg.MaxTradeInterval <= cfg.MinTradeInterval {
		cfg.MaxTradeInterval = cfg.MinTradeInterval + (def.MaxTradeInterval - def.MinTradeInterval)
	}
	if cfg.EventBuffer <= 0 {
		cfg.EventBuffer = def.EventBuffer
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	s := &Service{
		cfg:     cfg,
		session: NewSession(cfg, rng, time.Now()),
		sched:   sched,
		events:  make(chan TradeEvent, cfg.EventBuffer),
		closed:  make(chan struct{}),
	}

	s.mu.Lock()
	s.scheduleNextLocked()
	s.mu.Unlock()
	return s
}

// scheduleNextLocked draws a fresh randomized interval and arms the timer.
func (s *Service) scheduleNextLocked() {
	span := s.cfg.MaxTradeInterval - s.cfg.MinTradeInterval
	interval := s.cfg.MinTradeInterval + time.Duration(s.session.rng.Float64()*float64(span))
	s.sched.Schedule(interval, s.emit)
}

func (s *Service) emit() {
	select {
	case <-s.closed:
		return
	default:
	}

	s.mu.Lock()
	if !s.session.Live() {
		// Fired after a pause raced the cancel; drop it.
		s.mu.Unlock()
		return
	}
	tr, ok := s.session.EmitTrade(time.Now())
	var w wallet.Wallet
	if ok {
		w, _ = s.session.Wallet(tr.WalletAddress)
	}
	s.scheduleNextLocked()
	s.mu.Unlock()

	if !ok {
		return
	}

	ev := TradeEvent{Trade: tr, Wallet: w}
	if s.cfg.DropEvents {
		select {
		case s.events <- ev:
		default:
			s.dropped.Add(1)
		}
	} else {
		select {
		case s.events <- ev:
		case <-s.closed:
		}
	}
}

// SetLive transitions between LIVE and PAUSED. Pausing cancels any pending
// emission so no trade fires after the toggle; resuming arms exactly one
// fresh randomized-interval timer.
func (s *Service) SetLive(live bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session.Live() == live {
		return
	}
	s.session.SetLive(live)
	if live {
		s.scheduleNextLocked()
	} else {
		s.sched.Cancel()
	}
}

// ToggleLive flips the LIVE/PAUSED state and returns the new value.
func (s *Service) ToggleLive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	live := !s.session.Live()
	s.session.SetLive(live)
	if live {
		s.scheduleNextLocked()
	} else {
		s.sched.Cancel()
	}
	return live
}

// Live reports whether the simulation is LIVE.
func (s *Service) Live() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.Live()
}

// TickPrice advances the selected token's live price history by one point
// and returns the updated series (nil without a selection).
func (s *Service) TickPrice() []float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.TickPrice()
}

// Wallets returns the wallet set in insertion order.
func (s *Service) Wallets() []wallet.Wallet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.Wallets()
}

// Trades returns the retained trade feed, newest first.
func (s *Service) Trades() []trade.Trade {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.Trades()
}

// Catalog returns the fixed token catalog.
func (s *Service) Catalog() []token.Token {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.Catalog()
}

// Token returns the catalog token with the given address.
func (s *Service) Token(address string) (token.Token, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.Token(address)
}

// History returns the evolving price history for a token.
func (s *Service) History(address string) []float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.History(address)
}

// SelectWallet points the wallet selection at an existing wallet.
func (s *Service) SelectWallet(address string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.SelectWallet(address)
}

// SelectToken points the token selection at a catalog token.
func (s *Service) SelectToken(address string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.SelectToken(address)
}

// SelectedWallet returns the selected wallet address ("" when none).
func (s *Service) SelectedWallet() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.SelectedWallet()
}

// SelectedToken returns the selected token address ("" when none).
func (s *Service) SelectedToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.SelectedToken()
}

// Events returns the trade events channel for subscribers.
func (s *Service) Events() <-chan TradeEvent {
	return s.events
}

// DroppedEvents returns the count of dropped trade events.
func (s *Service) DroppedEvents() int64 {
	return s.dropped.Load()
}

// Close stops the emission timer. Idempotent.
func (s *Service) Close() {
	s.closeOnce.Do(func() {
		close(s.closed)
	})
	s.sched.Cancel()
}
