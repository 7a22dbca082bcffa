package ascii

import "unicode/utf8"

// Text is any byte sequence a validator can scan.
type Text interface {
	~string | ~[]byte
}

// CheckPrintable verifies that text consists only of printable US-ASCII bytes
// (0x20-0x7E). The scan is left to right and stops at the first offending byte:
// a control byte yields *ControlCharacterError, a byte >= 0x80 yields
// *NonASCIIError carrying the character that starts there.
func CheckPrintable[T Text](text T) error {
	for i := 0; i < len(text); i++ {
		b := text[i]
		switch {
		case b >= SPACE && b <= '~':
		case b <= US || b == DEL:
			return &ControlCharacterError{Position: i + 1, Byte: b}
		default:
			return nonASCIIAt(string(text), i)
		}
	}
	return nil
}

// CheckASCII verifies that text contains only US-ASCII bytes (0x00-0x7F).
// Control characters are accepted.
func CheckASCII[T Text](text T) error {
	for i := 0; i < len(text); i++ {
		if text[i] > DEL {
			return nonASCIIAt(string(text), i)
		}
	}
	return nil
}

// IsPrintableString reports whether CheckPrintable would succeed.
func IsPrintableString[T Text](text T) bool {
	for i := 0; i < len(text); i++ {
		if b := text[i]; b < SPACE || b > '~' {
			return false
		}
	}
	return true
}

// IsASCIIString reports whether CheckASCII would succeed.
func IsASCIIString[T Text](text T) bool {
	for i := 0; i < len(text); i++ {
		if text[i] > DEL {
			return false
		}
	}
	return true
}

func nonASCIIAt(s string, i int) *NonASCIIError {
	r, size := utf8.DecodeRuneInString(s[i:])
	return &NonASCIIError{
		Char:     r,
		Position: i + 1,
		invalid:  r == utf8.RuneError && size <= 1,
	}
}
