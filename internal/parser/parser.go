// Package parser builds the veriscript AST from a flat token sequence.
//
// One cursor, one left-to-right pass, no backtracking. Three productions
// are recognized: variable declaration, function declaration and
// top-level assignment; every other token is skipped with the cursor
// advancing by one, so the builder always makes forward progress.
// Declarations are inserted into the shared symbol table as a side
// effect, making them visible to all later statements (flat global
// namespace).
//
// The builder is tolerant by contract. The only hard failures are a
// function declaration without a name (ErrStructure) and a malformed
// type string (types.ErrFormat); everything else degrades silently, or
// with warnings when Options.Permissive is off.
package parser

import (
	"errors"

	"veriscript/internal/ast"
	"veriscript/internal/diag"
	"veriscript/internal/source"
	"veriscript/internal/symbols"
	"veriscript/internal/token"
	"veriscript/internal/types"
)

// ErrStructure is the root of structural parse failures. The single
// current case is a function declaration missing its name.
var ErrStructure = errors.New("malformed declaration")

type Options struct {
	// Permissive silences diagnostics for skipped tokens and dropped
	// parameters. The skipping itself happens in both modes.
	Permissive bool
	// Reporter может быть nil.
	Reporter diag.Reporter
}

// DefaultOptions returns the tolerant configuration used by the driver.
func DefaultOptions(reporter diag.Reporter) Options {
	return Options{Permissive: true, Reporter: reporter}
}

// Parser — состояние построителя на один файл.
type Parser struct {
	toks  []token.Token
	pos   int
	table *symbols.Table
	opts  Options
}

// Build consumes the token sequence and returns the top-level unit.
// The trailing EOF token, if present, is ignored.
func Build(tokens []token.Token, table *symbols.Table, opts Options) (*ast.Unit, error) {
	for len(tokens) > 0 && tokens[len(tokens)-1].Kind == token.EOF {
		tokens = tokens[:len(tokens)-1]
	}
	p := Parser{
		toks:  tokens,
		pos:   0,
		table: table,
		opts:  opts,
	}

	unit := &ast.Unit{}
	for !p.atEnd() {
		switch {
		case p.cur().Kind == token.Type && p.kindAt(1) == token.Ident:
			if err := p.varDecl(); err != nil {
				return nil, err
			}

		case p.cur().IsKeyword("function"):
			if err := p.functionDecl(); err != nil {
				return nil, err
			}

		case p.cur().Kind == token.Ident && p.at(1, token.Operator, "="):
			unit.Stmts = append(unit.Stmts, p.assignment())

		default:
			p.skip()
		}
	}
	return unit, nil
}

// varDecl обрабатывает `TYPE IDENT ;`. Курсор сдвигается ровно на три
// позиции: третий токен считается точкой с запятой и не проверяется.
func (p *Parser) varDecl() error {
	typeTok := p.cur()
	desc, err := types.Parse(typeTok.Text)
	if err != nil {
		return err
	}
	nameTok := p.toks[p.pos+1]
	p.table.DeclareVar(&ast.Variable{
		Name: nameTok.Text,
		Type: desc,
		Span: typeTok.Span.Cover(nameTok.Span),
	})

	if !p.opts.Permissive {
		if t, ok := p.peek(2); !ok || !t.IsDelimiter(";") {
			p.report(diag.SynMissingSemicolon, diag.SevWarning, nameTok.Span,
				"variable declaration without trailing semicolon")
		}
	}
	p.advance(3)
	return nil
}

// ===== Вспомогательные методы курсора =====

func (p *Parser) atEnd() bool {
	return p.pos >= len(p.toks)
}

func (p *Parser) cur() token.Token {
	return p.toks[p.pos]
}

// peek возвращает токен со смещением n от курсора.
func (p *Parser) peek(n int) (token.Token, bool) {
	if p.pos+n >= len(p.toks) {
		return token.Token{}, false
	}
	return p.toks[p.pos+n], true
}

func (p *Parser) kindAt(n int) token.Kind {
	t, ok := p.peek(n)
	if !ok {
		return token.EOF
	}
	return t.Kind
}

func (p *Parser) at(n int, kind token.Kind, text string) bool {
	t, ok := p.peek(n)
	return ok && t.Is(kind, text)
}

// advance сдвигает курсор на n позиций, не выходя за конец.
func (p *Parser) advance(n int) {
	p.pos += n
	if p.pos > len(p.toks) {
		p.pos = len(p.toks)
	}
}

// skip пропускает нераспознанный токен (гарантия прогресса).
func (p *Parser) skip() {
	if !p.opts.Permissive {
		t := p.cur()
		p.report(diag.SynSkippedToken, diag.SevWarning, t.Span,
			"skipped unexpected token "+t.Kind.String()+" \""+t.Text+"\"")
	}
	p.pos++
}

func (p *Parser) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) {
	if p.opts.Reporter != nil {
		p.opts.Reporter.Report(code, sev, sp, msg)
	}
}
