package httpserver

import (
	"net/http"
	"strings"
	"time"

	"lv-marketsite/internal/httputil"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// RequestID tags each request with an X-Request-ID, honoring one supplied
// by the caller.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set("X-Request-ID", id)
		r.Header.Set("X-Request-ID", id)
		next.ServeHTTP(w, r)
	})
}

// RequestLogger emits one structured line per request with status and
// duration.
func RequestLogger(log *logrus.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(sw, r)
			log.WithFields(logrus.Fields{
				"method":     r.Method,
				"path":       r.URL.Path,
				"status":     sw.status,
				"duration":   time.Since(start).String(),
				"request_id": r.Header.Get("X-Request-ID"),
			}).Info("request")
		})
	}
}

// Recover turns a handler panic into the canned 500 payload instead of a
// dropped connection. The empty-list field matches what the route family
// serves on success: quote and chart routes carry `data`, calendar routes
// carry `events`.
func Recover(log *logrus.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.WithFields(logrus.Fields{
						"panic":      rec,
						"path":       r.URL.Path,
						"request_id": r.Header.Get("X-Request-ID"),
					}).Error("handler panic")
					httputil.WriteJSON(w, http.StatusInternalServerError, map[string]any{
						"error":                    "internal server error",
						emptyListField(r.URL.Path): []struct{}{},
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

func emptyListField(path string) string {
	if strings.HasPrefix(path, "/v1/forex") || strings.HasPrefix(path, "/v1/market") {
		return "data"
	}
	return "events"
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
