package marketdata

import (
	"net/http"
	"strconv"

	"lv-marketsite/internal/httputil"
)

type Handler struct {
	history *History
}

type errorResponse struct {
	Error string   `json:"error"`
	Data  []Candle `json:"data"`
}

func NewHandler(history *History) *Handler {
	return &Handler{history: history}
}

// Candles serves GET /v1/market/candles: the current buffer snapshot,
// optionally trimmed to the newest `limit` entries.
func (h *Handler) Candles(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			httputil.WriteJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid limit", Data: []Candle{}})
			return
		}
		limit = n
	}
	httputil.WriteJSON(w, http.StatusOK, h.history.Snapshot(limit))
}
