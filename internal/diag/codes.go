package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка - на первое время
	UnknownCode Code = 0

	// Лексические
	LexInfo        Code = 1000
	LexSkippedChar Code = 1001

	// Построение AST
	SynInfo             Code = 2000
	SynSkippedToken     Code = 2001
	SynDroppedParam     Code = 2002
	SynMissingSemicolon Code = 2003
	SynUnclosedBody     Code = 2004

	// Генерация
	GenInfo             Code = 3000
	GenConcurrentCall   Code = 3001
	GenMissingArguments Code = 3002
)

// ID возвращает строковый идентификатор кода вида VSC0000.
func (c Code) ID() string {
	return fmt.Sprintf("VSC%04d", uint16(c))
}

func (c Code) String() string {
	switch c {
	case LexSkippedChar:
		return "lex-skipped-char"
	case SynSkippedToken:
		return "syn-skipped-token"
	case SynDroppedParam:
		return "syn-dropped-param"
	case SynMissingSemicolon:
		return "syn-missing-semicolon"
	case SynUnclosedBody:
		return "syn-unclosed-body"
	case GenConcurrentCall:
		return "gen-concurrent-call"
	case GenMissingArguments:
		return "gen-missing-arguments"
	case LexInfo:
		return "lex-info"
	case SynInfo:
		return "syn-info"
	case GenInfo:
		return "gen-info"
	}
	return "unknown"
}
