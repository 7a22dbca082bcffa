package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvLoaded sync.Once

// Option configures a single Load call.
type Option func(*options)

type options struct {
	prefix   string
	files    []string
	environ  map[string]string
	skipDefs bool
}

// WithPrefix prepends prefix to every env tag, e.g. "ASCIICHECK_".
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// WithEnvFiles loads the given .env files before parsing. Unlike the default
// .env, a listed file that cannot be read is an error.
func WithEnvFiles(paths ...string) Option {
	return func(o *options) { o.files = append(o.files, paths...) }
}

// WithEnvironment parses from the given map instead of the process
// environment. The default .env file is not consulted.
func WithEnvironment(environ map[string]string) Option {
	return func(o *options) {
		o.environ = environ
		o.skipDefs = true
	}
}

// Load parses environment variables into the struct pointed to by v using
// `env` / `envDefault` field tags.
//
// The default .env file in the working directory is loaded once per process
// and silently skipped when absent. Variables already present in the
// environment are never overwritten by .env files.
//
// Example:
//
//	type Config struct {
//		Mode     string `env:"MODE" envDefault:"printable"`
//		LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, config.WithPrefix("ASCIICHECK_")); err != nil {
//		// handle error
//	}
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	if !o.skipDefs {
		defaultEnvLoaded.Do(func() {
			// the default .env is optional
			_ = godotenv.Load()
		})
	}

	if len(o.files) > 0 {
		if err := godotenv.Load(o.files...); err != nil {
			return errors.Join(ErrLoadingEnvFile, err)
		}
	}

	if err := env.ParseWithOptions(v, env.Options{
		Prefix:      o.prefix,
		Environment: o.environ,
	}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}
