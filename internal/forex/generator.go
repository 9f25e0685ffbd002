package forex

import (
	"math/rand"
	"time"

	"github.com/shopspring/decimal"
)

// Generator perturbs the reference rate of each pair by a small random
// percentage. Seedable so quote batches are reproducible in tests.
type Generator struct {
	rng *rand.Rand
	now func() time.Time
}

func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng, now: func() time.Time { return time.Now().UTC() }}
}

// Quotes returns one snapshot per configured pair.
func (g *Generator) Quotes() []Quote {
	quotes := make([]Quote, 0, len(Pairs))
	for _, p := range Pairs {
		quotes = append(quotes, g.Quote(p))
	}
	return quotes
}

// Quote draws a delta in ±0.2% around the pair's reference rate.
func (g *Generator) Quote(p Pair) Quote {
	changePct := g.rng.Float64()*0.4 - 0.2
	base := decimal.NewFromFloat(p.Rate)
	change := base.Mul(decimal.NewFromFloat(changePct / 100))
	price := base.Add(change)
	prec := p.precision()

	return Quote{
		Symbol:        p.Symbol,
		Name:          p.Name,
		Base:          p.Base,
		Quote:         p.Quote,
		Price:         price.StringFixed(prec),
		Change:        change.StringFixed(prec),
		ChangePercent: decimal.NewFromFloat(changePct).StringFixed(3),
		Bid:           price.Sub(p.spread()).StringFixed(prec),
		Ask:           price.Add(p.spread()).StringFixed(prec),
		Timestamp:     g.now().Format(time.RFC3339),
	}
}
