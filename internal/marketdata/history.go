package marketdata

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// History is the bounded candle series behind the animated market chart.
// One ticker goroutine advances it; request handlers read snapshots. It is
// deliberately decoupled from the request-scoped generators: this is the
// only state in the service.
type History struct {
	mu        sync.RWMutex
	candles   []Candle
	depth     int
	lastClose float64
	rng       *rand.Rand
}

// NewHistory pre-fills the buffer by walking depth candles forward from a
// random price near 1.2.
func NewHistory(depth int, rng *rand.Rand) *History {
	if depth <= 0 {
		depth = 50
	}
	h := &History{
		candles:   make([]Candle, 0, depth),
		depth:     depth,
		lastClose: 1.2 + rng.Float64()*0.1,
		rng:       rng,
	}
	now := time.Now().UTC().Unix()
	for i := depth; i > 0; i-- {
		h.advance(now - int64(i))
	}
	return h
}

// Start runs the ticker goroutine until ctx is cancelled.
func (h *History) Start(ctx context.Context, tick time.Duration, log *logrus.Logger) {
	log.WithFields(logrus.Fields{"depth": h.depth, "tick": tick}).Info("market chart publisher started")
	go func() {
		ticker := time.NewTicker(tick)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case t := <-ticker.C:
				h.mu.Lock()
				h.advance(t.UTC().Unix())
				h.mu.Unlock()
			}
		}
	}()
}

// advance appends one candle and drops the oldest once at depth.
// Callers hold the lock except during construction.
func (h *History) advance(t int64) {
	c, close := nextCandle(h.rng, t, h.lastClose)
	h.lastClose = close
	h.candles = append(h.candles, c)
	if len(h.candles) > h.depth {
		h.candles = h.candles[1:]
	}
}

// Snapshot copies the newest limit candles, oldest first. limit <= 0 means
// everything.
func (h *History) Snapshot(limit int) []Candle {
	h.mu.RLock()
	defer h.mu.RUnlock()
	candles := h.candles
	if limit > 0 && len(candles) > limit {
		candles = candles[len(candles)-limit:]
	}
	out := make([]Candle, len(candles))
	copy(out, candles)
	return out
}
