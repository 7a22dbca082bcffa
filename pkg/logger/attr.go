package logger

import (
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/text/unicode/runenames"

	"github.com/dmitrymomot/asciikit/pkg/ascii"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Line records a 1-indexed line number under the key "line".
func Line(n int) slog.Attr {
	return slog.Int("line", n)
}

// Rune describes a character under the key "char" as a group of its
// literal form, code point and Unicode name, e.g. U+00E4 LATIN SMALL LETTER A
// WITH DIAERESIS.
func Rune(r rune) slog.Attr {
	attrs := []slog.Attr{
		slog.String("value", string(r)),
		slog.String("code", fmt.Sprintf("%U", r)),
	}
	if name := runenames.Name(r); name != "" {
		attrs = append(attrs, slog.String("name", name))
	}
	return Group("char", attrs...)
}

// Diagnostic expands an ascii validation error into "kind", "position" and,
// depending on the kind, "control" or "char" attributes. Any other error is
// returned under "error"; nil yields an empty Attr.
func Diagnostic(err error) slog.Attr {
	var cerr *ascii.ControlCharacterError
	var nerr *ascii.NonASCIIError

	switch {
	case err == nil:
		return slog.Attr{}
	case errors.As(err, &cerr):
		name, _ := ascii.ControlName(cerr.Byte)
		return Group("diagnostic",
			slog.String("kind", "control_character"),
			slog.Int("position", cerr.Position),
			slog.String("control", name),
		)
	case errors.As(err, &nerr):
		kind := "non_ascii"
		if errors.Is(err, ascii.ErrInvalidEncoding) {
			kind = "invalid_encoding"
		}
		return Group("diagnostic",
			slog.String("kind", kind),
			slog.Int("position", nerr.Position),
			Rune(nerr.Char),
		)
	default:
		return Error(err)
	}
}
