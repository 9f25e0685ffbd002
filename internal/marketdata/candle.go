package marketdata

import (
	"math/rand"
	"strconv"
)

const pricePrecision = 5

type Candle struct {
	Time  int64  `json:"time"`
	Open  string `json:"open"`
	High  string `json:"high"`
	Low   string `json:"low"`
	Close string `json:"close"`
}

// nextCandle advances the walk by one step: the new candle opens at the
// previous close, drifts by up to ±0.005 and grows wicks up to 0.005
// beyond the body.
func nextCandle(rng *rand.Rand, t int64, open float64) (Candle, float64) {
	close := open + (rng.Float64()-0.5)*0.01
	high := max(open, close) + rng.Float64()*0.005
	low := min(open, close) - rng.Float64()*0.005
	c := Candle{
		Time:  t,
		Open:  formatPrice(open),
		High:  formatPrice(high),
		Low:   formatPrice(low),
		Close: formatPrice(close),
	}
	return c, close
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', pricePrecision, 64)
}
