package parser

import (
	"strings"

	"veriscript/internal/ast"
	"veriscript/internal/token"
)

// assignment разбирает `IDENT = <expr> ;` в плоскую последовательность
// термов. Выражение собирается до точки с запятой (она потребляется)
// либо до границы блока / конца потока. В выражении сохраняются
// идентификаторы, операторы, числа и скобки; прочие разделители
// отбрасываются. Вызов `callee(args)` сворачивается в один терм с
// сырыми текстами аргументов — вглубь аргументов разбор не идёт.
func (p *Parser) assignment() ast.Stmt {
	targetTok := p.cur()
	span := targetTok.Span
	p.advance(2) // identifier and equals

	var expr ast.Expr
	for !p.atEnd() {
		t := p.cur()

		if t.Kind == token.Delimiter {
			switch t.Text {
			case ";":
				span = span.Cover(t.Span)
				p.advance(1)
				return ast.NewAssign(targetTok.Text, expr, span)
			case "{", "}":
				// Граница блока: выражение закончилось без ';'.
				return ast.NewAssign(targetTok.Text, expr, span)
			}
		}

		span = span.Cover(t.Span)

		switch {
		case t.Kind == token.Ident && p.at(1, token.Delimiter, "("):
			expr.Terms = append(expr.Terms, p.callTerm())

		case t.Kind == token.Ident:
			expr.Terms = append(expr.Terms, ast.Term{Kind: ast.TermIdent, Text: t.Text})
			p.advance(1)

		case t.Kind == token.Number:
			expr.Terms = append(expr.Terms, ast.Term{Kind: ast.TermNumber, Text: t.Text})
			p.advance(1)

		case t.Kind == token.Operator:
			expr.Terms = append(expr.Terms, ast.Term{Kind: ast.TermOperator, Text: t.Text})
			p.advance(1)

		case t.IsDelimiter("("):
			expr.Terms = append(expr.Terms, ast.Term{Kind: ast.TermOpenParen, Text: "("})
			p.advance(1)

		case t.IsDelimiter(")"):
			expr.Terms = append(expr.Terms, ast.Term{Kind: ast.TermCloseParen, Text: ")"})
			p.advance(1)

		default:
			// Запятые, "::", ключевые слова и типы в выражении
			// отбрасываются молча.
			p.advance(1)
		}
	}
	return ast.NewAssign(targetTok.Text, expr, span)
}

// callTerm сворачивает `callee ( ... )` в терм вызова. Аргументы
// разделяются запятыми на верхнем уровне скобок; каждый аргумент —
// склеенный пробелами текст его токенов. Незакрытый вызов обрезается
// на конце потока.
func (p *Parser) callTerm() ast.Term {
	calleeTok := p.cur()
	span := calleeTok.Span
	p.advance(2) // callee and opening paren

	var args []string
	var current []string
	depth := 1

	flush := func() {
		if len(current) > 0 {
			args = append(args, strings.Join(current, " "))
			current = current[:0]
		}
	}

	for !p.atEnd() && depth > 0 {
		t := p.cur()
		span = span.Cover(t.Span)

		switch {
		case t.IsDelimiter("("):
			depth++
			current = append(current, t.Text)

		case t.IsDelimiter(")"):
			depth--
			if depth > 0 {
				current = append(current, t.Text)
			}

		case t.IsDelimiter(",") && depth == 1:
			flush()

		default:
			current = append(current, t.Text)
		}
		p.advance(1)
	}
	flush()

	return ast.Term{
		Kind: ast.TermCall,
		Call: &ast.CallTerm{
			Callee: calleeTok.Text,
			Args:   args,
			Span:   span,
		},
	}
}
