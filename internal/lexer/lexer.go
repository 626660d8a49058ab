// Package lexer converts raw veriscript source into a flat token stream.
//
// Classification precedence at each position, first match wins: compact
// type string, keyword, identifier, operator, delimiter, number. Anything
// else is skipped without failing the compilation (lossy tokenization
// policy); skips surface as warning diagnostics when a reporter is set.
package lexer

import (
	"fmt"

	"veriscript/internal/diag"
	"veriscript/internal/source"
	"veriscript/internal/token"
)

type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token // 1 элементный буфер для токена
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
		look:   nil,
	}
}

// Next возвращает следующий значимый токен. После EOF всегда возвращает EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.skipTrivia()

	if lx.cursor.EOF() {
		return token.Token{
			Kind: token.EOF,
			Span: lx.EmptySpan(),
			Text: "",
		}
	}

	ch := lx.cursor.Peek()

	// Compact type string wins over identifiers: "int.32::concurrent"
	// must stay one token.
	if lx.atTypePrefix() {
		return lx.scanType()
	}

	if kw, ok := lx.atKeyword(); ok {
		return lx.scanKeyword(kw)
	}

	switch {
	case isIdentStartByte(ch):
		return lx.scanIdent()
	case isOperatorByte(ch) || ch == '!':
		if tok, ok := lx.scanOperator(); ok {
			return tok
		}
	case ch == ':' || isDelimiterByte(ch):
		if tok, ok := lx.scanDelimiter(); ok {
			return tok
		}
	case isDec(ch):
		return lx.scanNumber()
	}

	// Нераспознанный символ: пропускаем без ошибки.
	start := lx.cursor.Mark()
	b := lx.cursor.Bump()
	sp := lx.cursor.SpanFrom(start)
	lx.report(diag.LexSkippedChar, diag.SevWarning, sp,
		fmt.Sprintf("skipped unrecognized character %q", string(b)))
	return lx.Next()
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// Tokenize собирает все токены до EOF включительно.
func (lx *Lexer) Tokenize() []token.Token {
	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens
		}
	}
}

// EmptySpan returns a zero-length span at the current position.
func (lx *Lexer) EmptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

// skipTrivia пропускает пробелы, переводы строк и // комментарии.
// Токены не пересекают границы строк: перевод строки — просто trivia.
func (lx *Lexer) skipTrivia() {
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if isSpaceByte(b) {
			lx.cursor.Bump()
			continue
		}
		if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '/' && b1 == '/' {
			for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
				lx.cursor.Bump()
			}
			continue
		}
		return
	}
}
