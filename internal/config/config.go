package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration loaded from environment variables.
type Config struct {
	TelegramBotToken string `envconfig:"TELEGRAM_BOT_TOKEN" required:"true"`
	// TelegramTimeout bounds every Bot API call and must exceed the 30s long poll
	TelegramTimeout time.Duration `envconfig:"TELEGRAM_TIMEOUT" default:"60s"`
	// LogChat receives fault reports through Telegram; zero disables it
	LogChat int64 `envconfig:"LOG_CHAT"`

	WeatherAPIToken   string        `envconfig:"WEATHER_API_TOKEN" required:"true"`
	WeatherAPIBaseURL string        `envconfig:"WEATHER_API_BASE_URL" default:"https://api.weatherapi.com/v1"`
	WeatherAPITimeout time.Duration `envconfig:"WEATHER_API_TIMEOUT" default:"10s"`

	DatabasePath string `envconfig:"DATABASE_PATH" default:"./forecast.db"`
	LogLevel     string `envconfig:"LOG_LEVEL" default:"info"` // debug|info|warn|error
	HTTPAddr     string `envconfig:"HTTP_ADDR" default:":8080"`

	SlackBotToken        string `envconfig:"SLACK_BOT_TOKEN"`
	SlackOperatorChannel string `envconfig:"SLACK_OPERATOR_CHANNEL"`

	DeliveryQuietWindow time.Duration `envconfig:"DELIVERY_QUIET_WINDOW" default:"1m"`
	DeliveryTickBuffer  time.Duration `envconfig:"DELIVERY_TICK_BUFFER" default:"100ms"`
}

// SlackEnabled reports whether fault reports should also go to Slack
func (c Config) SlackEnabled() bool {
	return c.SlackBotToken != "" && c.SlackOperatorChannel != ""
}

// Load reads environment variables into Config.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
