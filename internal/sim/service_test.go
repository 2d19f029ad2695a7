package sim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// fakeScheduler records scheduled actions so tests can advance the
// emission timer by hand.
type fakeScheduler struct {
	scheduled int
	canceled  int
	pending   func()
	lastAfter time.Duration
}

func (f *fakeScheduler) Schedule(after time.Duration, fn func()) {
	f.scheduled++
	f.lastAfter = after
	f.pending = fn
}

func (f *fakeScheduler) Cancel() {
	f.canceled++
	f.pending = nil
}

// fire simulates the timer going off, including the stale-callback case
// where the function was captured before a cancel.
func (f *fakeScheduler) fire() {
	if f.pending == nil {
		return
	}
	fn := f.pending
	f.pending = nil
	fn()
}

func newTestService(t *testing.T) (*Service, *fakeScheduler) {
	t.Helper()
	sched := &fakeScheduler{}
	cfg := DefaultConfig()
	cfg.Seed = 99
	svc := newService(cfg, sched)
	t.Cleanup(svc.Close)
	return svc, sched
}

func TestServiceSchedulesOnStart(t *testing.T) {
	_, sched := newTestService(t)

	require.Equal(t, 1, sched.scheduled)
	require.GreaterOrEqual(t, sched.lastAfter, 2*time.Second)
	require.Less(t, sched.lastAfter, 5*time.Second)
}

func TestServiceEmitReschedules(t *testing.T) {
	svc, sched := newTestService(t)

	sched.fire()

	require.Len(t, svc.Trades(), 1)
	require.Equal(t, 2, sched.scheduled)

	select {
	case ev := <-svc.Events():
		require.Equal(t, svc.Trades()[0].ID, ev.Trade.ID)
		require.Equal(t, ev.Trade.WalletAddress, ev.Wallet.Address)
	default:
		t.Fatal("expected a trade event")
	}
}

func TestPauseCancelsPendingEmission(t *testing.T) {
	svc, sched := newTestService(t)

	svc.SetLive(false)
	require.Equal(t, 1, sched.canceled)

	// A stale callback captured before the cancel must not emit.
	walletsBefore := svc.Wallets()
	svc.emit()

	require.Empty(t, svc.Trades())
	for i, w := range svc.Wallets() {
		require.Equal(t, walletsBefore[i].TradeCount, w.TradeCount)
	}
}

func TestResumeSchedulesExactlyOne(t *testing.T) {
	svc, sched := newTestService(t)

	svc.SetLive(false)
	svc.SetLive(true)
	require.Equal(t, 2, sched.scheduled)

	// Redundant transitions are no-ops.
	svc.SetLive(true)
	require.Equal(t, 2, sched.scheduled)
}

func TestToggleLive(t *testing.T) {
	svc, sched := newTestService(t)

	require.False(t, svc.ToggleLive())
	require.False(t, svc.Live())
	require.Equal(t, 1, sched.canceled)

	require.True(t, svc.ToggleLive())
	require.True(t, svc.Live())
	require.Equal(t, 2, sched.scheduled)
}

func TestServiceTickPrice(t *testing.T) {
	svc, _ := newTestService(t)

	h1 := svc.TickPrice()
	require.NotEmpty(t, h1)

	// Price ticks keep running while PAUSED.
	svc.SetLive(false)
	h2 := svc.TickPrice()
	require.NotEmpty(t, h2)
	require.NotEqual(t, h1[len(h1)-1], h2[len(h2)-1])
}

func TestServiceCloseIdempotent(t *testing.T) {
	sched := &fakeScheduler{}
	cfg := DefaultConfig()
	cfg.Seed = 99
	svc := newService(cfg, sched)

	svc.Close()
	svc.Close()
	require.NotZero(t, sched.canceled)

	// Emission after close is a no-op.
	svc.emit()
	require.Empty(t, svc.Trades())
}
