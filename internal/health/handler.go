package health

import (
	"net/http"
	"runtime"
	"time"

	"lv-marketsite/internal/httputil"
)

type Handler struct {
	startedAt time.Time
	env       string
}

func NewHandler(startedAt time.Time, env string) *Handler {
	start := startedAt.UTC()
	if start.IsZero() {
		start = time.Now().UTC()
	}
	return &Handler{startedAt: start, env: env}
}

type status struct {
	Status     string `json:"status"`
	Env        string `json:"env"`
	Uptime     string `json:"uptime"`
	Goroutines int    `json:"goroutines"`
	GoVersion  string `json:"goVersion"`
}

// Status always reports ok: the service has no dependencies that can be
// down.
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, status{
		Status:     "ok",
		Env:        h.env,
		Uptime:     time.Since(h.startedAt).Round(time.Second).String(),
		Goroutines: runtime.NumGoroutine(),
		GoVersion:  runtime.Version(),
	})
}
