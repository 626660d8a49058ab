package lexer

import (
	"veriscript/internal/diag"
	"veriscript/internal/source"
)

type Options struct {
	// Reporter может быть nil — тогда пропущенные символы игнорируем
	// молча (но продолжаем лексить).
	Reporter diag.Reporter
}

func (lx *Lexer) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, sev, sp, msg)
	}
}
