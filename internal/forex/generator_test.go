package forex

import (
	"math/rand"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuotesOnePerPair(t *testing.T) {
	quotes := NewGenerator(rand.New(rand.NewSource(1))).Quotes()
	require.Len(t, quotes, len(Pairs))
	seen := make(map[string]bool)
	for _, q := range quotes {
		seen[q.Symbol] = true
	}
	assert.Len(t, seen, 8)
}

func TestQuoteBidPriceAskOrdering(t *testing.T) {
	quotes := NewGenerator(rand.New(rand.NewSource(2))).Quotes()
	for _, q := range quotes {
		price, err := strconv.ParseFloat(q.Price, 64)
		require.NoError(t, err, q.Symbol)
		bid, err := strconv.ParseFloat(q.Bid, 64)
		require.NoError(t, err, q.Symbol)
		ask, err := strconv.ParseFloat(q.Ask, 64)
		require.NoError(t, err, q.Symbol)
		assert.Less(t, bid, price, q.Symbol)
		assert.Less(t, price, ask, q.Symbol)
	}
}

func TestQuotePrecisionByQuoteCurrency(t *testing.T) {
	quotes := NewGenerator(rand.New(rand.NewSource(3))).Quotes()
	for _, q := range quotes {
		parts := strings.SplitN(q.Price, ".", 2)
		require.Len(t, parts, 2, q.Symbol)
		if q.Quote == "JPY" {
			assert.Len(t, parts[1], 3, q.Symbol)
		} else {
			assert.Len(t, parts[1], 5, q.Symbol)
		}
	}
}

func TestQuoteDeltaStaysSmall(t *testing.T) {
	gen := NewGenerator(rand.New(rand.NewSource(4)))
	for i := 0; i < 100; i++ {
		for _, p := range Pairs {
			q := gen.Quote(p)
			price, err := strconv.ParseFloat(q.Price, 64)
			require.NoError(t, err)
			assert.InDelta(t, p.Rate, price, p.Rate*0.002+0.001, "%s drifted too far", p.Symbol)
		}
	}
}

func TestQuotesDeterministicFromSeed(t *testing.T) {
	a := NewGenerator(rand.New(rand.NewSource(42)))
	b := NewGenerator(rand.New(rand.NewSource(42)))
	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	a.now = func() time.Time { return now }
	b.now = func() time.Time { return now }
	assert.Equal(t, a.Quotes(), b.Quotes())
}
