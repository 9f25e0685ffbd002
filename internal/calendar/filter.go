package calendar

import "sort"

// Filter holds the optional query predicates. Empty fields pass everything.
// Dates compare lexicographically, which is correct for ISO strings.
type Filter struct {
	StartDate string
	EndDate   string
	Currency  string
	Impact    string
}

// Apply keeps events matching every set predicate, then stable-sorts
// ascending by date and time so ties keep generation order.
func Apply(events []Event, f Filter) []Event {
	out := make([]Event, 0, len(events))
	for _, e := range events {
		if f.StartDate != "" && e.Date < f.StartDate {
			continue
		}
		if f.EndDate != "" && e.Date > f.EndDate {
			continue
		}
		if f.Currency != "" && e.Currency != f.Currency {
			continue
		}
		if f.Impact != "" && string(e.Impact) != f.Impact {
			continue
		}
		out = append(out, e)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Time < out[j].Time
	})
	return out
}
