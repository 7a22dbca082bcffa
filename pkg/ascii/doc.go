// Package ascii classifies single ASCII code units and validates that text is
// made of printable US-ASCII bytes.
//
// Every predicate is a pure function of a unit's numeric value. The same
// generic function accepts a byte or a rune; a rune is reduced to its low
// 8 bits first, so both views always agree on every boundary value.
//
// # Classification
//
//	ascii.IsLetter('a')        // true
//	ascii.IsControl(ascii.HT)  // true
//	ascii.IsExtended('€')      // true, low byte of U+20AC is 0xAC
//	ascii.Classify(byte('Q'))  // Letter|Upper|Printable|StrictASCII
//
// The ranges tested by each predicate:
//
//	IsLetter     0x41-0x5A, 0x61-0x7A
//	IsLower      0x61-0x7A
//	IsUpper      0x41-0x5A
//	IsDigit      0x30-0x39
//	IsSpace      0x20, 0x09-0x0D
//	IsControl    0x00-0x1F, 0x7F
//	IsPrintable  0x20-0x7E
//	IsUSASCII    0x00-0x7F
//	IsExtended   0x80-0xFF
//
// # Validation
//
// CheckPrintable scans text left to right and fails on the first byte that is
// either a control character or outside 7-bit ASCII:
//
//	err := ascii.CheckPrintable("foo\tbar")
//	var cerr *ascii.ControlCharacterError
//	if errors.As(err, &cerr) {
//	    fmt.Println(cerr.Position) // 4, positions are 1-indexed
//	}
//
//	err = ascii.CheckPrintable("foo€bar")
//	errors.Is(err, ascii.ErrNonASCII) // true, err.(*ascii.NonASCIIError).Char == '€'
//
// CheckASCII is the looser variant which only rejects bytes >= 0x80.
//
// # Constants
//
// table.go exposes the 32 C0 control characters, DEL and SPACE as byte
// constants (HT, LF, DEL, ...) and as runes (HTRune, LFRune, ...).
package ascii
