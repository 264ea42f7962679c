package telegram

import (
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Config holds Telegram Bot API settings.
// BotToken and ChatID are optional at load time so the server can start and
// report a configuration error per request instead of refusing to boot.
type Config struct {
	BotToken string        `env:"TELEGRAM_BOT_TOKEN"`
	ChatID   string        `env:"TELEGRAM_CHAT_ID"`
	Endpoint string        `env:"TELEGRAM_API_ENDPOINT" envDefault:"https://api.telegram.org/bot%s/%s"`
	Timeout  time.Duration `env:"TELEGRAM_TIMEOUT" envDefault:"10s"`
}

// Configured reports whether both credentials are present.
func (c Config) Configured() bool {
	return c.BotToken != "" && c.ChatID != ""
}

func (c Config) endpoint() string {
	if c.Endpoint == "" {
		return tgbotapi.APIEndpoint
	}
	return c.Endpoint
}
