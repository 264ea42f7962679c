// Package config loads env-tagged structs with github.com/caarlos0/env,
// optionally seeded from dotenv files read with github.com/joho/godotenv.
//
// Each component owns its config struct (telegram.Config, redis.Config,
// httpserver.Config, ...) and the binary composes them:
//
//	var cfg struct {
//		AppEnv   string `env:"APP_ENV" envDefault:"development"`
//		Telegram telegram.Config
//		HTTP     httpserver.Config
//	}
//	config.MustLoad(&cfg)
//
// Load never mutates the process environment, so tests can pass their own
// variables with WithEnviron and run in parallel.
package config
