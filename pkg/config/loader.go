package config

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Option configures Load.
type Option func(*loader)

type loader struct {
	files   []string
	environ map[string]string
	prefix  string
}

// WithEnvFiles reads dotenv files before parsing. Missing files are skipped.
// Process variables take precedence over file values, and earlier files over
// later ones. The process environment itself is not modified.
func WithEnvFiles(paths ...string) Option {
	return func(l *loader) {
		l.files = append(l.files, paths...)
	}
}

// WithEnviron replaces the process environment as the variable source.
func WithEnviron(vars map[string]string) Option {
	return func(l *loader) {
		l.environ = vars
	}
}

// WithPrefix prepends prefix to every variable name.
func WithPrefix(prefix string) Option {
	return func(l *loader) {
		l.prefix = prefix
	}
}

// Load parses environment variables into v according to its env tags.
// Without options it reads the process environment and an optional .env file
// in the working directory.
//
//	type Config struct {
//		Addr    string        `env:"HTTP_ADDR" envDefault:":8080"`
//		Timeout time.Duration `env:"TELEGRAM_TIMEOUT" envDefault:"10s"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	l := &loader{}
	if len(opts) == 0 {
		opts = []Option{WithEnvFiles(".env")}
	}
	for _, opt := range opts {
		opt(l)
	}

	vars, err := l.variables()
	if err != nil {
		return err
	}

	if err := env.ParseWithOptions(v, env.Options{
		Environment: vars,
		Prefix:      l.prefix,
	}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics on failure. Use it for configuration
// the process cannot start without.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

func (l *loader) variables() (map[string]string, error) {
	vars := l.environ
	if vars == nil {
		vars = environ()
	} else {
		vars = maps.Clone(vars)
	}

	for _, path := range l.files {
		fileVars, err := godotenv.Read(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, errors.Join(ErrReadingEnvFile, fmt.Errorf("%s: %w", path, err))
		}
		for k, val := range fileVars {
			if _, set := vars[k]; !set {
				vars[k] = val
			}
		}
	}
	return vars, nil
}

func environ() map[string]string {
	vars := make(map[string]string)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			vars[k] = v
		}
	}
	return vars
}
