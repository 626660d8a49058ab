package lexer

import (
	"fmt"

	"fortio.org/safecast"

	"veriscript/internal/token"
)

// atTypePrefix проверяет, начинается ли текущая позиция с базового типа
// (int, signed, unsigned) с границей токена после него: пробел, '.', ':'
// или конец файла. "intx" — идентификатор, "int.32" — тип.
func (lx *Lexer) atTypePrefix() bool {
	for _, prefix := range token.TypePrefixes() {
		if !lx.hasPrefix(prefix) {
			continue
		}
		b, ok := lx.cursor.PeekAt(prefixLen(prefix))
		if !ok || isSpaceByte(b) || b == '.' || b == ':' {
			return true
		}
	}
	return false
}

// scanType потребляет компактную строку типа целиком: максимальный
// прогон символов без пробелов и statement-разделителей, так что
// "int.32::concurrent" — один токен.
func (lx *Lexer) scanType() token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if isSpaceByte(b) || isDelimiterByte(b) {
			break
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind: token.Type,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}
}

// atKeyword проверяет фиксированный набор ключевых слов с границей:
// пробел, '(', '{', ';', ':' или конец файла.
func (lx *Lexer) atKeyword() (string, bool) {
	for _, kw := range token.Keywords() {
		if !lx.hasPrefix(kw) {
			continue
		}
		b, ok := lx.cursor.PeekAt(prefixLen(kw))
		if !ok || isSpaceByte(b) || b == '(' || b == '{' || b == ';' || b == ':' {
			return kw, true
		}
	}
	return "", false
}

func (lx *Lexer) scanKeyword(kw string) token.Token {
	start := lx.cursor.Mark()
	for range kw {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind: token.Keyword,
		Span: sp,
		Text: kw,
	}
}

func (lx *Lexer) scanIdent() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	for !lx.cursor.EOF() && isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind: token.Ident,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}
}

func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() && isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind: token.Number,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}
}

// scanOperator жадно пробует двухсимвольные операторы (<= >= == !=),
// затем односимвольные. Одиночный '!' не оператор — возвращает false.
func (lx *Lexer) scanOperator() (token.Token, bool) {
	start := lx.cursor.Mark()
	emit := func() token.Token {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{
			Kind: token.Operator,
			Span: sp,
			Text: string(lx.file.Content[sp.Start:sp.End]),
		}
	}

	switch {
	case lx.try2('<', '='):
		return emit(), true
	case lx.try2('>', '='):
		return emit(), true
	case lx.try2('=', '='):
		return emit(), true
	case lx.try2('!', '='):
		return emit(), true
	}

	if isOperatorByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
		return emit(), true
	}
	return token.Token{}, false
}

// scanDelimiter потребляет '::' (жадно, до одиночного ':') либо один из
// { } ( ) ; , — одиночный ':' разделителем не является.
func (lx *Lexer) scanDelimiter() (token.Token, bool) {
	start := lx.cursor.Mark()
	emit := func() token.Token {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{
			Kind: token.Delimiter,
			Span: sp,
			Text: string(lx.file.Content[sp.Start:sp.End]),
		}
	}

	if lx.try2(':', ':') {
		return emit(), true
	}
	if isDelimiterByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
		return emit(), true
	}
	return token.Token{}, false
}

func (lx *Lexer) hasPrefix(s string) bool {
	content := lx.file.Content[lx.cursor.Off:]
	if len(content) < len(s) {
		return false
	}
	return string(content[:len(s)]) == s
}

func prefixLen(s string) uint32 {
	n, err := safecast.Conv[uint32](len(s))
	if err != nil {
		panic(fmt.Errorf("prefix length overflow: %w", err))
	}
	return n
}
