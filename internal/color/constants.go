package color

const (
	// AltCodeChar marks a color code in user-written text
	AltCodeChar = '&'

	// CodeChar is the formatting prefix understood by clients
	CodeChar = '§'

	// formatCodes are the valid single-character codes: colors 0-f,
	// styles k-o and reset r
	formatCodes = "0123456789abcdefklmnor"
)
