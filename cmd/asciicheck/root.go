package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/asciikit/pkg/config"
	"github.com/dmitrymomot/asciikit/pkg/logger"
)

// Config is read from ASCIICHECK_* environment variables; flags win.
type Config struct {
	Mode      string `env:"MODE" envDefault:"printable"`
	MaxErrors int    `env:"MAX_ERRORS" envDefault:"0"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
}

const envPrefix = "ASCIICHECK_"

var errInvalidInput = errors.New("input contains disallowed characters")

type sourceKey struct{}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var cfg Config

	cmd := &cobra.Command{
		Use:   "asciicheck [files...]",
		Short: "Reject text that is not printable US-ASCII",
		Long: `asciicheck scans files (or stdin when none are given) line by line and
reports the first control character or non-ASCII character on every line.

In "printable" mode only bytes 0x20-0x7E are accepted. In "ascii" mode
control characters are accepted too and only bytes >= 0x80 are rejected.`,
		SilenceUsage: true,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			var env Config
			if err := config.Load(&env, config.WithPrefix(envPrefix)); err != nil {
				return err
			}
			flags := cmd.Flags()
			if !flags.Changed("mode") {
				cfg.Mode = env.Mode
			}
			if !flags.Changed("max-errors") {
				cfg.MaxErrors = env.MaxErrors
			}
			if !flags.Changed("log-level") {
				cfg.LogLevel = env.LogLevel
			}
			if !flags.Changed("log-format") {
				cfg.LogFormat = env.LogFormat
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			check, err := checkerFor(cfg.Mode)
			if err != nil {
				return err
			}
			format := logger.Format(cfg.LogFormat)
			if format != logger.FormatJSON && format != logger.FormatText {
				return fmt.Errorf("invalid log format %q", cfg.LogFormat)
			}
			level, err := logger.ParseLevel(cfg.LogLevel)
			if err != nil {
				return err
			}

			log := logger.New(
				logger.WithOutput(stderr),
				logger.WithFormat(format),
				logger.WithLevel(level),
				logger.WithContextValue("source", sourceKey{}),
			)
			s := &scanner{check: check, log: log, maxErrors: cfg.MaxErrors, out: stdout}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			if len(args) == 0 {
				return s.finish(ctx, s.scan(context.WithValue(ctx, sourceKey{}, "<stdin>"), stdin))
			}
			for _, name := range args {
				if err := s.scanFile(ctx, name); err != nil {
					return s.finish(ctx, err)
				}
				if s.limitReached() {
					break
				}
			}
			return s.finish(ctx, nil)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&cfg.Mode, "mode", "m", "printable", "validation mode (printable|ascii)")
	flags.IntVar(&cfg.MaxErrors, "max-errors", 0, "stop after this many rejected lines (0 = no limit)")
	flags.StringVar(&cfg.LogLevel, "log-level", "info", "log level (debug|info|warn|error)")
	flags.StringVar(&cfg.LogFormat, "log-format", "text", "log format (text|json)")

	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd
}

func (s *scanner) scanFile(ctx context.Context, name string) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	return s.scan(context.WithValue(ctx, sourceKey{}, name), f)
}
