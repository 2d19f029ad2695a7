// Package feed holds the bounded live-trade tape backing the trade feed
// view: a ring buffer that keeps the most recent trades and reads back
// newest first.
package feed

import "github.com/clonkbot/wallet-radar-70db61/internal/trade"

// Tape is a ring buffer of trades (bounded memory). Once full, pushing
// evicts the oldest trade.
type Tape struct {
	buf   []trade.Trade
	size  int
	start int
	count int
}

// NewTape creates a Tape with the given capacity.
func NewTape(capacity int) *Tape {
	if capacity <= 0 {
		capacity = 1
	}
	return &Tape{
		buf:  make([]trade.Trade, capacity),
		size: capacity,
	}
}

// Push adds a trade to the tape, evicting the oldest when full.
func (t *Tape) Push(tr trade.Trade) {
	if t.count < t.size {
		t.buf[(t.start+t.count)%t.size] = tr
		t.count++
		return
	}
	// overwrite oldest
	t.buf[t.start] = tr
	t.start = (t.start + 1) % t.size
}

// Recent returns up to n trades, newest first.
// Returns a copy (not internal references).
func (t *Tape) Recent(n int) []trade.Trade {
	if n <= 0 || t.count == 0 {
		return nil
	}
	if n > t.count {
		n = t.count
	}
	out := make([]trade.Trade, n)
	for i := 0; i < n; i++ {
		out[i] = t.buf[(t.start+t.count-1-i+t.size)%t.size]
	}
	return out
}

// All returns every retained trade, newest first.
func (t *Tape) All() []trade.Trade {
	return t.Recent(t.count)
}

// Latest returns the most recently pushed trade, if any.
func (t *Tape) Latest() (trade.Trade, bool) {
	if t.count == 0 {
		return trade.Trade{}, false
	}
	return t.buf[(t.start+t.count-1)%t.size], true
}

// Len returns the number of trades in the tape.
func (t *Tape) Len() int {
	return t.count
}
