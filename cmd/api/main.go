package main

import (
	"context"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lv-marketsite/internal/calendar"
	"lv-marketsite/internal/config"
	"lv-marketsite/internal/content"
	"lv-marketsite/internal/forex"
	"lv-marketsite/internal/health"
	"lv-marketsite/internal/httpserver"
	"lv-marketsite/internal/logging"
	"lv-marketsite/internal/marketdata"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		logging.New("development", "info").Fatal(err)
	}
	log := logging.New(cfg.Env, cfg.LogLevel)

	calendarHandler := calendar.NewHandler(log, cfg.Calendar.HorizonDays)
	rateClient := forex.NewRateClient(cfg.Forex.APIURL, cfg.Forex.APIKey, cfg.Forex.Timeout)
	forexHandler := forex.NewHandler(log, rateClient, cfg.Forex.TickerDelay)
	contentHandler := content.NewHandler()

	history := marketdata.NewHistory(cfg.Chart.Depth, rand.New(rand.NewSource(time.Now().UnixNano())))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	history.Start(ctx, cfg.Chart.Tick, log)

	router := httpserver.NewRouter(httpserver.RouterDeps{
		CalendarHandler: calendarHandler,
		ForexHandler:    forexHandler,
		MarketHandler:   marketdata.NewHandler(history),
		ContentHandler:  contentHandler,
		HealthHandler:   health.NewHandler(time.Now(), cfg.Env),
		Logger:          log,
		CORSOrigins:     cfg.CORSOrigins,
	})
	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	log.WithField("addr", cfg.HTTPAddr).Info("server listening")
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-stop
		cancel()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
