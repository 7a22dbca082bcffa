package ascii

// ASCII control characters, DEL and SPACE in their byte form.
const (
	NUL   byte = 0x00 // Null
	SOH   byte = 0x01 // Start of Heading
	STX   byte = 0x02 // Start of Text
	ETX   byte = 0x03 // End of Text
	EOT   byte = 0x04 // End of Transmission
	ENQ   byte = 0x05 // Enquiry
	ACK   byte = 0x06 // Acknowledgment
	BEL   byte = 0x07 // Bell
	BS    byte = 0x08 // Back Space
	HT    byte = 0x09 // Horizontal Tab
	LF    byte = 0x0A // Line Feed
	VT    byte = 0x0B // Vertical Tab
	FF    byte = 0x0C // Form Feed
	CR    byte = 0x0D // Carriage Return
	SO    byte = 0x0E // Shift Out / X-On
	SI    byte = 0x0F // Shift In / X-Off
	DLE   byte = 0x10 // Data Line Escape
	DC1   byte = 0x11 // Device Control 1 (oft. XON)
	DC2   byte = 0x12 // Device Control 2
	DC3   byte = 0x13 // Device Control 3 (oft. XOFF)
	DC4   byte = 0x14 // Device Control 4
	NAK   byte = 0x15 // Negative Acknowledgement
	SYN   byte = 0x16 // Synchronous Idle
	ETB   byte = 0x17 // End of Transmit Block
	CAN   byte = 0x18 // Cancel
	EM    byte = 0x19 // End of Medium
	SUB   byte = 0x1A // Substitute
	ESC   byte = 0x1B // Escape
	FS    byte = 0x1C // File Separator
	GS    byte = 0x1D // Group Separator
	RS    byte = 0x1E // Record Separator
	US    byte = 0x1F // Unit Separator
	DEL   byte = 0x7F // Delete
	SPACE byte = 0x20 // Space
)

// The same characters in their rune form.
const (
	NULRune   rune = rune(NUL)
	SOHRune   rune = rune(SOH)
	STXRune   rune = rune(STX)
	ETXRune   rune = rune(ETX)
	EOTRune   rune = rune(EOT)
	ENQRune   rune = rune(ENQ)
	ACKRune   rune = rune(ACK)
	BELRune   rune = rune(BEL)
	BSRune    rune = rune(BS)
	HTRune    rune = rune(HT)
	LFRune    rune = rune(LF)
	VTRune    rune = rune(VT)
	FFRune    rune = rune(FF)
	CRRune    rune = rune(CR)
	SORune    rune = rune(SO)
	SIRune    rune = rune(SI)
	DLERune   rune = rune(DLE)
	DC1Rune   rune = rune(DC1)
	DC2Rune   rune = rune(DC2)
	DC3Rune   rune = rune(DC3)
	DC4Rune   rune = rune(DC4)
	NAKRune   rune = rune(NAK)
	SYNRune   rune = rune(SYN)
	ETBRune   rune = rune(ETB)
	CANRune   rune = rune(CAN)
	EMRune    rune = rune(EM)
	SUBRune   rune = rune(SUB)
	ESCRune   rune = rune(ESC)
	FSRune    rune = rune(FS)
	GSRune    rune = rune(GS)
	RSRune    rune = rune(RS)
	USRune    rune = rune(US)
	DELRune   rune = rune(DEL)
	SPACERune rune = rune(SPACE)
)

var controlNames = [...]string{
	"NUL", "SOH", "STX", "ETX", "EOT", "ENQ", "ACK", "BEL",
	"BS", "HT", "LF", "VT", "FF", "CR", "SO", "SI",
	"DLE", "DC1", "DC2", "DC3", "DC4", "NAK", "SYN", "ETB",
	"CAN", "EM", "SUB", "ESC", "FS", "GS", "RS", "US",
}

// ControlName returns the mnemonic of a control character (e.g. "HT" for 0x09),
// "DEL" for 0x7F and "SPACE" for 0x20. The boolean is false for any other byte.
func ControlName(b byte) (string, bool) {
	switch {
	case int(b) < len(controlNames):
		return controlNames[b], true
	case b == DEL:
		return "DEL", true
	case b == SPACE:
		return "SPACE", true
	}
	return "", false
}
