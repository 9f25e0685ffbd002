package httpserver

import (
	"net/http"

	"lv-marketsite/internal/calendar"
	"lv-marketsite/internal/content"
	"lv-marketsite/internal/forex"
	"lv-marketsite/internal/health"
	"lv-marketsite/internal/marketdata"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

type RouterDeps struct {
	CalendarHandler *calendar.Handler
	ForexHandler    *forex.Handler
	MarketHandler   *marketdata.Handler
	ContentHandler  *content.Handler
	HealthHandler   *health.Handler
	Logger          *logrus.Logger
	CORSOrigins     []string
}

func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(RequestID)
	r.Use(RequestLogger(d.Logger))
	r.Use(Recover(d.Logger))
	r.Use(cors.New(cors.Options{
		AllowedOrigins: d.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler)
	r.Use(SecurityHeaders)

	r.Get("/health", d.HealthHandler.Status)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/economic-calendar", d.CalendarHandler.Calendar)
		r.Get("/economic-events", d.CalendarHandler.Events)
		r.Get("/forex-ticker", d.ForexHandler.Ticker)
		r.Get("/forex", d.ForexHandler.Rates)
		r.Get("/market/candles", d.MarketHandler.Candles)
		r.Get("/courses", d.ContentHandler.Courses)
		r.Get("/promotions", d.ContentHandler.Promotions)
	})
	return r
}
