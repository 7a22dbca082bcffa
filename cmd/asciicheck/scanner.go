package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/dmitrymomot/asciikit/pkg/ascii"
	"github.com/dmitrymomot/asciikit/pkg/logger"
)

const maxLineSize = 1 << 20

type checkFunc func([]byte) error

func checkerFor(mode string) (checkFunc, error) {
	switch mode {
	case "printable":
		return ascii.CheckPrintable[[]byte], nil
	case "ascii":
		return ascii.CheckASCII[[]byte], nil
	}
	return nil, fmt.Errorf("invalid mode %q: must be \"printable\" or \"ascii\"", mode)
}

type scanner struct {
	check     checkFunc
	log       *slog.Logger
	out       io.Writer
	maxErrors int

	lines    int
	rejected int
}

func (s *scanner) limitReached() bool {
	return s.maxErrors > 0 && s.rejected >= s.maxErrors
}

// scan checks r line by line. Line terminators (LF or CRLF) are not part of
// the checked text.
func (s *scanner) scan(ctx context.Context, r io.Reader) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	n := 0
	for sc.Scan() {
		n++
		s.lines++
		err := s.check(sc.Bytes())
		if err == nil {
			s.log.DebugContext(ctx, "line accepted", logger.Line(n))
			continue
		}
		s.rejected++
		s.log.WarnContext(ctx, "line rejected", logger.Line(n), logger.Diagnostic(err))
		if s.limitReached() {
			s.log.InfoContext(ctx, "error limit reached", slog.Int("max_errors", s.maxErrors))
			return nil
		}
	}
	return sc.Err()
}

func (s *scanner) finish(ctx context.Context, err error) error {
	if err != nil {
		s.log.ErrorContext(ctx, "scan failed", logger.Error(err))
		return err
	}
	fmt.Fprintf(s.out, "%d lines checked, %d rejected\n", s.lines, s.rejected)
	if s.rejected > 0 {
		return fmt.Errorf("%w: %d of %d lines", errInvalidInput, s.rejected, s.lines)
	}
	return nil
}
