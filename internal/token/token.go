package token

import (
	"veriscript/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// Is reports whether the token has the given kind and exact text.
func (t Token) Is(kind Kind, text string) bool {
	return t.Kind == kind && t.Text == text
}

// IsDelimiter reports whether the token is the given delimiter.
func (t Token) IsDelimiter(text string) bool {
	return t.Is(Delimiter, text)
}

// IsOperator reports whether the token is the given operator.
func (t Token) IsOperator(text string) bool {
	return t.Is(Operator, text)
}

// IsKeyword reports whether the token is the given keyword.
func (t Token) IsKeyword(text string) bool {
	return t.Is(Keyword, text)
}
