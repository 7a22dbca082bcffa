package validator

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/asciikit/pkg/ascii"
)

// PrintableASCII validates that a string contains only printable US-ASCII
// characters (0x20-0x7E). The error carries the position of the first control
// character or the first non-ASCII character found.
func PrintableASCII(field, value string) Rule {
	err := ascii.CheckPrintable(value)
	return Rule{
		Check: func() bool { return err == nil },
		Error: diagnosticError(field, "must contain only printable ASCII characters",
			"validation.ascii_printable", err),
	}
}

// ASCIIOnly validates that a string contains only US-ASCII characters.
// Control characters are allowed.
func ASCIIOnly(field, value string) Rule {
	err := ascii.CheckASCII(value)
	return Rule{
		Check: func() bool { return err == nil },
		Error: diagnosticError(field, "must contain only ASCII characters",
			"validation.ascii_only", err),
	}
}

// NoControlChars validates that a string contains no ASCII control characters,
// including tab and line breaks.
func NoControlChars(field, value string) Rule {
	pos, b := firstByte(value, ascii.IsControl[byte])
	e := ValidationError{
		Field:          field,
		Message:        "must not contain control characters",
		TranslationKey: "validation.no_control_chars",
		TranslationValues: map[string]any{
			"field": field,
		},
	}
	if pos > 0 {
		e.Cause = &ascii.ControlCharacterError{Position: pos, Byte: b}
		e.TranslationValues["position"] = pos
		if name, ok := ascii.ControlName(b); ok {
			e.TranslationValues["char"] = name
		}
	}
	return Rule{
		Check: func() bool { return pos == 0 },
		Error: e,
	}
}

// Letters validates that a string consists only of ASCII letters.
func Letters(field, value string) Rule {
	return classRule(field, value, "must contain only ASCII letters",
		"validation.ascii_letters", ascii.IsLetter[byte])
}

// Digits validates that a string consists only of ASCII digits.
func Digits(field, value string) Rule {
	return classRule(field, value, "must contain only digits",
		"validation.ascii_digits", ascii.IsDigit[byte])
}

// Alphanumeric validates that a string consists only of ASCII letters and digits.
func Alphanumeric(field, value string) Rule {
	return classRule(field, value, "must contain only letters and digits",
		"validation.ascii_alphanumeric", func(b byte) bool {
			return ascii.Classify(b)&(ascii.Letter|ascii.Digit) != 0
		})
}

// classRule fails on the first byte outside the class. Empty values pass;
// combine with a required rule when presence matters.
func classRule(field, value, message, key string, in func(byte) bool) Rule {
	pos, _ := firstByte(value, func(b byte) bool { return !in(b) })
	e := ValidationError{
		Field:          field,
		Message:        message,
		TranslationKey: key,
		TranslationValues: map[string]any{
			"field": field,
		},
	}
	if pos > 0 {
		e.TranslationValues["position"] = pos
	}
	return Rule{
		Check: func() bool { return pos == 0 },
		Error: e,
	}
}

func diagnosticError(field, message, key string, cause error) ValidationError {
	e := ValidationError{
		Field:          field,
		Message:        message,
		TranslationKey: key,
		TranslationValues: map[string]any{
			"field": field,
		},
		Cause: cause,
	}

	var cerr *ascii.ControlCharacterError
	var nerr *ascii.NonASCIIError
	switch {
	case errors.As(cause, &cerr):
		e.TranslationValues["position"] = cerr.Position
		if name, ok := ascii.ControlName(cerr.Byte); ok {
			e.TranslationValues["char"] = name
		}
	case errors.As(cause, &nerr):
		e.TranslationValues["position"] = nerr.Position
		e.TranslationValues["char"] = fmt.Sprintf("%c", nerr.Char)
	}
	return e
}

// firstByte returns the 1-indexed position of the first byte matching fn.
func firstByte(value string, fn func(byte) bool) (int, byte) {
	for i := 0; i < len(value); i++ {
		if fn(value[i]) {
			return i + 1, value[i]
		}
	}
	return 0, 0
}
