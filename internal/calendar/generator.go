package calendar

import (
	"fmt"
	"math/rand"
	"time"
)

const dateLayout = "2006-01-02"

// ParseDate parses an ISO calendar date from a query parameter.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return d, nil
}

type BatchParams struct {
	Start time.Time
	End   time.Time
	Now   time.Time
}

// Generator produces synthetic calendar events. It owns its random source
// so batches are reproducible from a seed and concurrent requests never
// share state.
type Generator struct {
	rng *rand.Rand
}

func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// Batch emits events for every weekday from Start to End inclusive, 3-8 per
// day. Output is unordered beyond day grouping; callers sort via Apply.
func (g *Generator) Batch(p BatchParams) []Event {
	now := p.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}
	today := now.Format(dateLayout)

	var events []Event
	for day := p.Start; !day.After(p.End); day = day.AddDate(0, 0, 1) {
		if day.Weekday() == time.Saturday || day.Weekday() == time.Sunday {
			continue
		}
		date := day.Format(dateLayout)
		count := 3 + g.rng.Intn(6)
		for i := 0; i < count; i++ {
			events = append(events, g.event(date, i, date < today))
		}
	}
	return events
}

func (g *Generator) event(date string, seq int, past bool) Event {
	currency := currencies[g.rng.Intn(len(currencies))]
	ind := indicators[g.rng.Intn(len(indicators))]

	hour := 8 + g.rng.Intn(10)
	minute := 15 * g.rng.Intn(4)

	base := g.rng.Float64() * 5
	evt := Event{
		ID:          fmt.Sprintf("%s-%s-%d", date, currency, seq),
		Title:       currency + " " + ind.Name,
		Date:        date,
		Time:        fmt.Sprintf("%02d:%02d", hour, minute),
		Currency:    currency,
		Impact:      ind.Impact,
		Forecast:    percent(base),
		Previous:    percent(base - 0.2),
		Description: ind.Description,
	}
	if past {
		evt.Actual = percent(base + (g.rng.Float64()-0.5)*0.4)
	}
	return evt
}

func percent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}
