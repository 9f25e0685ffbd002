package forex

import (
	"context"
	"math/rand"
	"net/http"
	"time"

	"lv-marketsite/internal/httputil"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// RateSource is the upstream dependency of the proxy endpoint.
type RateSource interface {
	Rate(ctx context.Context, base, quote string) (float64, string, error)
}

type Handler struct {
	log         *logrus.Logger
	rates       RateSource
	tickerDelay time.Duration

	newRand func() *rand.Rand
}

func NewHandler(log *logrus.Logger, rates RateSource, tickerDelay time.Duration) *Handler {
	return &Handler{
		log:         log,
		rates:       rates,
		tickerDelay: tickerDelay,
		newRand:     func() *rand.Rand { return rand.New(rand.NewSource(time.Now().UnixNano())) },
	}
}

type quotesResponse struct {
	Data []Quote `json:"data"`
}

// Ticker serves GET /v1/forex-ticker: a fully synthetic batch, held back by
// the configured delay so the UI's loading states stay visible.
func (h *Handler) Ticker(w http.ResponseWriter, r *http.Request) {
	if h.tickerDelay > 0 {
		select {
		case <-time.After(h.tickerDelay):
		case <-r.Context().Done():
			return
		}
	}
	quotes := NewGenerator(h.newRand()).Quotes()
	httputil.WriteJSON(w, http.StatusOK, quotesResponse{Data: quotes})
}

// Rates serves GET /v1/forex. Two-path contract per pair: try the upstream
// rate API, and on any failure or rate-limit notice fall back to the
// synthetic generator. The caller always gets a full batch.
func (h *Handler) Rates(w http.ResponseWriter, r *http.Request) {
	gen := NewGenerator(h.newRand())
	quotes := make([]Quote, 0, len(Pairs))
	for _, p := range Pairs {
		rate, refreshed, err := h.rates.Rate(r.Context(), p.Base, p.Quote)
		if err != nil {
			h.log.WithError(err).WithField("symbol", p.Symbol).Debug("upstream rate unavailable, substituting synthetic quote")
			quotes = append(quotes, gen.Quote(p))
			continue
		}
		quotes = append(quotes, h.upstreamQuote(gen, p, rate, refreshed))
	}
	httputil.WriteJSON(w, http.StatusOK, quotesResponse{Data: quotes})
}

// upstreamQuote dresses a real rate with a simulated 0.02% spread and
// simulated change fields, which the free upstream tier does not provide.
func (h *Handler) upstreamQuote(gen *Generator, p Pair, rate float64, refreshed string) Quote {
	prec := p.precision()
	price := decimal.NewFromFloat(rate)
	half := price.Mul(decimal.NewFromFloat(0.0002)).Div(decimal.NewFromInt(2))

	changePct := gen.rng.Float64()*0.4 - 0.2
	change := price.Mul(decimal.NewFromFloat(changePct / 100))

	return Quote{
		Symbol:        p.Symbol,
		Name:          p.Name,
		Base:          p.Base,
		Quote:         p.Quote,
		Price:         price.StringFixed(prec),
		Change:        change.StringFixed(prec),
		ChangePercent: decimal.NewFromFloat(changePct).StringFixed(3),
		Bid:           price.Sub(half).StringFixed(prec),
		Ask:           price.Add(half).StringFixed(prec),
		Timestamp:     refreshed,
	}
}
