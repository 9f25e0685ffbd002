package forex

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRates struct {
	rate      float64
	refreshed string
	err       error
}

func (s stubRates) Rate(ctx context.Context, base, quote string) (float64, string, error) {
	return s.rate, s.refreshed, s.err
}

func testForexHandler(rates RateSource, seed int64) *Handler {
	log := logrus.New()
	log.SetOutput(io.Discard)
	h := NewHandler(log, rates, 0)
	h.newRand = func() *rand.Rand { return rand.New(rand.NewSource(seed)) }
	return h
}

func doGet(t *testing.T, h http.HandlerFunc, target string) (int, quotesResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h(rec, req)
	var body quotesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestTickerReturnsFullBatch(t *testing.T) {
	h := testForexHandler(nil, 1)
	code, body := doGet(t, h.Ticker, "/v1/forex-ticker")
	require.Equal(t, http.StatusOK, code)
	require.Len(t, body.Data, 8)
	for _, q := range body.Data {
		for field, v := range map[string]string{"price": q.Price, "bid": q.Bid, "ask": q.Ask} {
			_, err := strconv.ParseFloat(v, 64)
			assert.NoError(t, err, "%s %s not numeric", q.Symbol, field)
		}
		assert.NotEmpty(t, q.Timestamp)
	}
}

func TestRatesFallsBackWhenUpstreamFails(t *testing.T) {
	h := testForexHandler(stubRates{err: errors.New("connection refused")}, 2)
	code, body := doGet(t, h.Rates, "/v1/forex")
	require.Equal(t, http.StatusOK, code)
	require.Len(t, body.Data, 8)
	// fallback quotes hug the reference table
	for i, q := range body.Data {
		price, err := strconv.ParseFloat(q.Price, 64)
		require.NoError(t, err)
		assert.InDelta(t, Pairs[i].Rate, price, Pairs[i].Rate*0.003)
	}
}

func TestRatesFallsBackOnRateLimit(t *testing.T) {
	h := testForexHandler(stubRates{err: ErrRateLimited}, 3)
	code, body := doGet(t, h.Rates, "/v1/forex")
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, body.Data, 8)
}

func TestRatesUsesUpstreamRate(t *testing.T) {
	h := testForexHandler(stubRates{rate: 2.0, refreshed: "2024-01-15 12:00:00"}, 4)
	code, body := doGet(t, h.Rates, "/v1/forex")
	require.Equal(t, http.StatusOK, code)
	require.Len(t, body.Data, 8)
	for _, q := range body.Data {
		price, err := strconv.ParseFloat(q.Price, 64)
		require.NoError(t, err)
		bid, _ := strconv.ParseFloat(q.Bid, 64)
		ask, _ := strconv.ParseFloat(q.Ask, 64)
		assert.InDelta(t, 2.0, price, 0.0001, q.Symbol)
		assert.LessOrEqual(t, bid, ask, q.Symbol)
		assert.Equal(t, "2024-01-15 12:00:00", q.Timestamp)
	}
}
