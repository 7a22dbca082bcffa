// Package config loads configuration structs from environment variables.
//
// It wraps `github.com/joho/godotenv` for .env files and
// `github.com/caarlos0/env/v11` for tag-driven struct parsing:
//
//	type Config struct {
//		Mode      string `env:"MODE" envDefault:"printable"`
//		MaxErrors int    `env:"MAX_ERRORS" envDefault:"0"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg, config.WithPrefix("ASCIICHECK_"))
//
// Errors are joined with the package sentinels, so errors.Is(err,
// config.ErrParsingConfig) identifies a malformed value.
package config
