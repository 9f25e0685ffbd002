package forex

import "github.com/shopspring/decimal"

// Quote is a single currency-pair snapshot. All numeric fields are
// pre-formatted strings at the pair's display precision, matching what the
// ticker bar and market panels render directly.
type Quote struct {
	Symbol        string `json:"symbol"`
	Name          string `json:"name"`
	Base          string `json:"base"`
	Quote         string `json:"quote"`
	Price         string `json:"price"`
	Change        string `json:"change"`
	ChangePercent string `json:"changePercent"`
	Bid           string `json:"bid"`
	Ask           string `json:"ask"`
	Timestamp     string `json:"timestamp"`
}

type Pair struct {
	Symbol string
	Name   string
	Base   string
	Quote  string
	Rate   float64
}

// Pairs is the fixed set the site tracks, with reference rates the
// generator perturbs. JPY-quoted pairs display 3 decimals, the rest 5.
var Pairs = []Pair{
	{"EURUSD", "EUR/USD", "EUR", "USD", 1.0921},
	{"GBPUSD", "GBP/USD", "GBP", "USD", 1.2685},
	{"USDJPY", "USD/JPY", "USD", "JPY", 156.78},
	{"AUDUSD", "AUD/USD", "AUD", "USD", 0.6612},
	{"USDCAD", "USD/CAD", "USD", "CAD", 1.3642},
	{"USDCHF", "USD/CHF", "USD", "CHF", 0.9034},
	{"NZDUSD", "NZD/USD", "NZD", "USD", 0.6042},
	{"EURGBP", "EUR/GBP", "EUR", "GBP", 0.8608},
}

func (p Pair) precision() int32 {
	if p.Quote == "JPY" {
		return 3
	}
	return 5
}

// spread is two pips either side of price. JPY pairs quote pips at 0.01,
// so a flat 0.0002 would round away entirely at their 3-decimal display
// precision and collapse bid onto ask.
func (p Pair) spread() decimal.Decimal {
	if p.Quote == "JPY" {
		return decimal.NewFromFloat(0.02)
	}
	return decimal.NewFromFloat(0.0002)
}
