package main

import (
	"time"

	"github.com/cykrypt/registration/pkg/httpserver"
	"github.com/cykrypt/registration/pkg/redis"
	"github.com/cykrypt/registration/pkg/telegram"
)

const (
	storeMemory = "memory"
	storeRedis  = "redis"
)

type serverConfig struct {
	AppEnv      string `env:"APP_ENV" envDefault:"development"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"cykrypt-registration"`

	HTTP      httpserver.Config
	Telegram  telegram.Config
	RateLimit rateLimitConfig
	Redis     redis.Config
}

type rateLimitConfig struct {
	Store           string        `env:"RATE_LIMIT_STORE" envDefault:"memory"`
	MaxPerIP        int           `env:"RATE_LIMIT_MAX_PER_IP" envDefault:"5"`
	Window          time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"1h"`
	CleanupInterval time.Duration `env:"RATE_LIMIT_CLEANUP_INTERVAL" envDefault:"1m"`
}
