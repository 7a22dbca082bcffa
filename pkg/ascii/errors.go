package ascii

import (
	"errors"
	"fmt"
)

var (
	// ErrControlCharacter matches any *ControlCharacterError.
	ErrControlCharacter = errors.New("contain ASCII control character")

	// ErrNonASCII matches any *NonASCIIError.
	ErrNonASCII = errors.New("contain non US-ASCII character")

	// ErrInvalidEncoding is returned alongside ErrNonASCII when the bytes at the
	// failing position do not form a valid UTF-8 sequence.
	ErrInvalidEncoding = errors.New("invalid UTF-8 encoding")
)

// ControlCharacterError reports the first control byte found in a text.
type ControlCharacterError struct {
	// Position is the 1-indexed byte offset of the control byte.
	Position int
	// Byte is the control byte itself.
	Byte byte
}

func (e *ControlCharacterError) Error() string {
	return fmt.Sprintf("%s at position %d", ErrControlCharacter, e.Position)
}

func (e *ControlCharacterError) Is(target error) bool {
	return target == ErrControlCharacter
}

// NonASCIIError reports the first character outside the 7-bit range.
type NonASCIIError struct {
	// Char is the decoded character starting at the failing byte, or
	// utf8.RuneError when the encoding is malformed.
	Char rune
	// Position is the 1-indexed byte offset of the character's lead byte.
	Position int
	invalid  bool
}

func (e *NonASCIIError) Error() string {
	if e.invalid {
		return fmt.Sprintf("%s: %s at position %d", ErrNonASCII, ErrInvalidEncoding, e.Position)
	}
	return fmt.Sprintf("%s (%c)", ErrNonASCII, e.Char)
}

func (e *NonASCIIError) Is(target error) bool {
	return target == ErrNonASCII || (e.invalid && target == ErrInvalidEncoding)
}
