package calendar

import (
	"math/rand"
	"net/http"
	"strings"
	"time"

	"lv-marketsite/internal/httputil"

	"github.com/sirupsen/logrus"
)

type Handler struct {
	log     *logrus.Logger
	horizon int

	// injectable for deterministic tests
	newRand func() *rand.Rand
	now     func() time.Time
}

func NewHandler(log *logrus.Logger, horizonDays int) *Handler {
	if horizonDays <= 0 {
		horizonDays = 30
	}
	return &Handler{
		log:     log,
		horizon: horizonDays,
		newRand: func() *rand.Rand { return rand.New(rand.NewSource(time.Now().UnixNano())) },
		now:     func() time.Time { return time.Now().UTC() },
	}
}

type eventsResponse struct {
	Events []Event `json:"events"`
}

type eventsMetaResponse struct {
	Events []Event    `json:"events"`
	Meta   eventsMeta `json:"meta"`
}

type eventsMeta struct {
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	TotalEvents int    `json:"totalEvents"`
}

type errorResponse struct {
	Error  string  `json:"error"`
	Events []Event `json:"events"`
}

// Calendar serves GET /v1/economic-calendar: a fixed forward horizon is
// generated on every request, then the query predicates narrow it down.
func (h *Handler) Calendar(w http.ResponseWriter, r *http.Request) {
	f, ok := h.parseFilter(w, r)
	if !ok {
		return
	}
	now := h.now()
	events := NewGenerator(h.newRand()).Batch(BatchParams{
		Start: now,
		End:   now.AddDate(0, 0, h.horizon),
		Now:   now,
	})
	events = Apply(events, f)
	h.log.WithFields(logrus.Fields{"events": len(events), "impact": f.Impact, "currency": f.Currency}).
		Debug("economic calendar generated")
	httputil.WriteJSON(w, http.StatusOK, eventsResponse{Events: events})
}

// Events serves GET /v1/economic-events: the date range bounds generation
// directly, defaulting to the coming week, and the response carries meta.
func (h *Handler) Events(w http.ResponseWriter, r *http.Request) {
	f, ok := h.parseFilter(w, r)
	if !ok {
		return
	}
	now := h.now()
	if f.StartDate == "" {
		f.StartDate = now.Format(dateLayout)
	}
	if f.EndDate == "" {
		f.EndDate = now.AddDate(0, 0, 7).Format(dateLayout)
	}
	start, _ := ParseDate(f.StartDate)
	end, _ := ParseDate(f.EndDate)

	events := NewGenerator(h.newRand()).Batch(BatchParams{Start: start, End: end, Now: now})
	events = Apply(events, f)
	httputil.WriteJSON(w, http.StatusOK, eventsMetaResponse{
		Events: events,
		Meta: eventsMeta{
			StartDate:   f.StartDate,
			EndDate:     f.EndDate,
			TotalEvents: len(events),
		},
	})
}

// parseFilter validates the optional query parameters. Malformed dates are
// a client error, not a silently empty range.
func (h *Handler) parseFilter(w http.ResponseWriter, r *http.Request) (Filter, bool) {
	q := r.URL.Query()
	f := Filter{
		StartDate: strings.TrimSpace(q.Get("startDate")),
		EndDate:   strings.TrimSpace(q.Get("endDate")),
		Currency:  strings.ToUpper(strings.TrimSpace(q.Get("currency"))),
		Impact:    strings.ToLower(strings.TrimSpace(q.Get("impact"))),
	}
	for _, d := range []string{f.StartDate, f.EndDate} {
		if d == "" {
			continue
		}
		if _, err := ParseDate(d); err != nil {
			httputil.WriteJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error(), Events: []Event{}})
			return Filter{}, false
		}
	}
	return f, true
}
