package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Type represents a compact type string token (base[.width][::mode]).
	Type
	// Ident represents an identifier token.
	Ident
	// Number represents a decimal integer literal token.
	Number
	// Operator represents an operator token (= + - * / & | ^ < > <= >= == !=).
	Operator
	// Delimiter represents a delimiter token ({ } ( ) ; , ::).
	Delimiter
	// Keyword represents a language keyword token.
	Keyword
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "Invalid"
	case EOF:
		return "EOF"
	case Type:
		return "Type"
	case Ident:
		return "Ident"
	case Number:
		return "Number"
	case Operator:
		return "Operator"
	case Delimiter:
		return "Delimiter"
	case Keyword:
		return "Keyword"
	}
	return "Unknown"
}
