package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	HTTPAddr    string   `envconfig:"HTTP_ADDR" default:":8080"`
	Env         string   `envconfig:"APP_ENV" default:"development"`
	LogLevel    string   `envconfig:"LOG_LEVEL" default:"info"`
	CORSOrigins []string `envconfig:"CORS_ORIGINS" default:"*"`
	Forex       ForexConfig
	Chart       ChartConfig
	Calendar    CalendarConfig
}

// ForexConfig covers both the synthetic ticker and the upstream rate proxy.
// The default key is the public demo key so the proxy path stays exercisable
// without any setup.
type ForexConfig struct {
	APIURL      string        `envconfig:"FOREX_API_URL" default:"https://www.alphavantage.co/query"`
	APIKey      string        `envconfig:"FOREX_API_KEY" default:"demo"`
	TickerDelay time.Duration `envconfig:"FOREX_TICKER_DELAY" default:"300ms"`
	Timeout     time.Duration `envconfig:"FOREX_API_TIMEOUT" default:"5s"`
}

type ChartConfig struct {
	Tick  time.Duration `envconfig:"CHART_TICK" default:"1s"`
	Depth int           `envconfig:"CHART_DEPTH" default:"50"`
}

type CalendarConfig struct {
	HorizonDays int `envconfig:"CALENDAR_HORIZON_DAYS" default:"30"`
}

func Load() (Config, error) {
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return c, err
	}
	return c, nil
}
