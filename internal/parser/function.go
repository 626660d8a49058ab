package parser

import (
	"fmt"

	"veriscript/internal/ast"
	"veriscript/internal/diag"
	"veriscript/internal/token"
	"veriscript/internal/types"
)

// functionDecl разбирает объявление функции:
//
//	function[::mode] [TYPE] name ( params ) { body }
//
// Необязательный суффикс режима и возвращаемый тип; имя обязательно.
// Параметр без идентификатора отбрасывается без ошибки; тело
// сканируется только на присваивания `IDENT = ... ;`.
func (p *Parser) functionDecl() error {
	start := p.cur().Span
	p.advance(1) // keyword

	sync := types.SyncConcurrent
	if p.at(0, token.Delimiter, "::") && p.kindAt(1) == token.Ident {
		modeTok, _ := p.peek(1)
		mode, err := types.ParseSyncMode(modeTok.Text)
		if err != nil {
			return err
		}
		sync = mode
		p.advance(2)
	}

	var ret *types.Descriptor
	if !p.atEnd() && p.cur().Kind == token.Type {
		desc, err := types.Parse(p.cur().Text)
		if err != nil {
			return err
		}
		ret = &desc
		p.advance(1)
	}

	if p.atEnd() || p.cur().Kind != token.Ident {
		return fmt.Errorf("%w: expected function name", ErrStructure)
	}
	name := p.cur().Text
	p.advance(1)

	params, err := p.paramList()
	if err != nil {
		return err
	}
	body := p.functionBody()

	p.table.DeclareFn(&ast.Function{
		Name:        name,
		Params:      params,
		Return:      ret,
		Body:        body,
		DefaultSync: sync,
		Span:        start,
	})
	return nil
}

// paramList разбирает `( TYPE IDENT, ... )`. Параметры без имени
// отбрасываются; посторонние токены пропускаются. Малформенная строка
// типа — жёсткая ошибка, как и в объявлениях переменных.
func (p *Parser) paramList() ([]ast.Variable, error) {
	var params []ast.Variable
	if !p.at(0, token.Delimiter, "(") {
		return params, nil
	}
	p.advance(1)

	for !p.atEnd() && !p.cur().IsDelimiter(")") {
		if p.cur().Kind != token.Type {
			p.skip()
			continue
		}

		typeTok := p.cur()
		desc, err := types.Parse(typeTok.Text)
		if err != nil {
			return nil, err
		}
		p.advance(1)

		if !p.atEnd() && p.cur().Kind == token.Ident {
			nameTok := p.cur()
			params = append(params, ast.Variable{
				Name: nameTok.Text,
				Type: desc,
				Span: typeTok.Span.Cover(nameTok.Span),
			})
			p.advance(1)
		} else if !p.opts.Permissive {
			p.report(diag.SynDroppedParam, diag.SevWarning, typeTok.Span,
				"dropped parameter without a name")
		}

		if p.at(0, token.Delimiter, ",") {
			p.advance(1)
		}
	}
	p.advance(1) // closing paren
	return params, nil
}

// functionBody разбирает `{ ... }`, распознавая только присваивания.
func (p *Parser) functionBody() []ast.Stmt {
	var body []ast.Stmt
	if !p.at(0, token.Delimiter, "{") {
		return body
	}
	openTok := p.cur()
	p.advance(1)

	for !p.atEnd() && !p.cur().IsDelimiter("}") {
		if p.cur().Kind == token.Ident && p.at(1, token.Operator, "=") {
			body = append(body, p.assignment())
			continue
		}
		p.skip()
	}

	if p.atEnd() {
		if !p.opts.Permissive {
			p.report(diag.SynUnclosedBody, diag.SevWarning, openTok.Span,
				"function body is never closed")
		}
		return body
	}
	p.advance(1) // closing brace
	return body
}
