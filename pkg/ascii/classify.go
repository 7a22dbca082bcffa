package ascii

import "strings"

// Unit is a single code unit subject to classification. Runes are reduced to
// their low 8 bits before any range is tested.
type Unit interface {
	~byte | ~rune
}

// Category is a set of ASCII classes. A unit may belong to several classes at
// once, e.g. 'a' is Letter, Lower, Printable and StrictASCII.
type Category uint16

const (
	Letter Category = 1 << iota
	Lower
	Upper
	Digit
	Space
	Control
	Printable
	StrictASCII
	Extended
)

var categoryNames = [...]string{
	"letter", "lower", "upper", "digit", "space",
	"control", "printable", "strict_ascii", "extended",
}

// Has reports whether every class in other is present in c.
func (c Category) Has(other Category) bool {
	return c&other == other
}

func (c Category) String() string {
	if c == 0 {
		return "none"
	}
	var parts []string
	for i, name := range categoryNames {
		if c&(1<<i) != 0 {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, "|")
}

// classify is the single source of truth for every numeric range in the package.
func classify(b byte) Category {
	var c Category
	switch {
	case b >= 'a' && b <= 'z':
		c |= Letter | Lower
	case b >= 'A' && b <= 'Z':
		c |= Letter | Upper
	case b >= '0' && b <= '9':
		c |= Digit
	}
	if b == SPACE || (b >= HT && b <= CR) {
		c |= Space
	}
	if b <= US || b == DEL {
		c |= Control
	}
	if b >= SPACE && b <= '~' {
		c |= Printable
	}
	if b <= DEL {
		c |= StrictASCII
	} else {
		c |= Extended
	}
	return c
}

// Classify returns every category the unit belongs to.
func Classify[T Unit](c T) Category {
	return classify(byte(c))
}

// IsLetter checks whether it is an ASCII letter (a-z / A-Z).
func IsLetter[T Unit](c T) bool { return classify(byte(c))&Letter != 0 }

// IsLower checks whether it is an ASCII lower case letter (a-z).
func IsLower[T Unit](c T) bool { return classify(byte(c))&Lower != 0 }

// IsUpper checks whether it is an ASCII upper case letter (A-Z).
func IsUpper[T Unit](c T) bool { return classify(byte(c))&Upper != 0 }

// IsDigit checks whether it is an ASCII digit (0-9).
func IsDigit[T Unit](c T) bool { return classify(byte(c))&Digit != 0 }

// IsSpace checks whether it is an ASCII space character: space, horizontal
// tab, line feed, vertical tab, form feed or carriage return.
func IsSpace[T Unit](c T) bool { return classify(byte(c))&Space != 0 }

// IsControl checks whether it is an ASCII control character (0x00-0x1F, 0x7F).
func IsControl[T Unit](c T) bool { return classify(byte(c))&Control != 0 }

// IsPrintable checks whether it is an ASCII printable character (0x20-0x7E):
// letters, digits, punctuation marks, space and a few miscellaneous symbols.
func IsPrintable[T Unit](c T) bool { return classify(byte(c))&Printable != 0 }

// IsUSASCII checks whether it falls in the strict 7-bit range (0x00-0x7F).
func IsUSASCII[T Unit](c T) bool { return classify(byte(c))&StrictASCII != 0 }

// IsExtended checks whether it is an extended ASCII code (0x80-0xFF).
func IsExtended[T Unit](c T) bool { return classify(byte(c))&Extended != 0 }
