package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEvents() []Event {
	return []Event{
		{ID: "c", Date: "2024-01-03", Time: "09:00", Currency: "GBP", Impact: ImpactLow},
		{ID: "a", Date: "2024-01-02", Time: "14:30", Currency: "USD", Impact: ImpactHigh},
		{ID: "b", Date: "2024-01-02", Time: "08:15", Currency: "EUR", Impact: ImpactMedium},
		{ID: "d", Date: "2024-01-02", Time: "08:15", Currency: "USD", Impact: ImpactHigh},
	}
}

func TestApplySortsByDateThenTime(t *testing.T) {
	out := Apply(sampleEvents(), Filter{})
	require.Len(t, out, 4)
	ids := []string{out[0].ID, out[1].ID, out[2].ID, out[3].ID}
	// b and d tie on (date, time); insertion order breaks the tie
	assert.Equal(t, []string{"b", "d", "a", "c"}, ids)
}

func TestApplyImpactFilter(t *testing.T) {
	out := Apply(sampleEvents(), Filter{Impact: "high"})
	require.Len(t, out, 2)
	for _, e := range out {
		assert.Equal(t, ImpactHigh, e.Impact)
	}
}

func TestApplyCurrencyFilter(t *testing.T) {
	out := Apply(sampleEvents(), Filter{Currency: "EUR"})
	require.Len(t, out, 1)
	assert.Equal(t, "b", out[0].ID)
}

func TestApplyDateRange(t *testing.T) {
	out := Apply(sampleEvents(), Filter{StartDate: "2024-01-03"})
	require.Len(t, out, 1)
	assert.Equal(t, "c", out[0].ID)

	out = Apply(sampleEvents(), Filter{EndDate: "2024-01-02"})
	assert.Len(t, out, 3)
}

func TestApplyFiltersAreConjunctive(t *testing.T) {
	out := Apply(sampleEvents(), Filter{Currency: "USD", Impact: "high", EndDate: "2024-01-02"})
	require.Len(t, out, 2)

	out = Apply(sampleEvents(), Filter{Currency: "USD", Impact: "low"})
	assert.Empty(t, out)
}

func TestApplyEmptyInput(t *testing.T) {
	out := Apply(nil, Filter{Impact: "high"})
	assert.NotNil(t, out)
	assert.Empty(t, out)
}
