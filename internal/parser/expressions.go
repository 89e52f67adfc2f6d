package parser

import (
	"strconv"

	"github.com/lors-lang/lorsc/internal/ast"
	"github.com/lors-lang/lorsc/internal/token"
)

// Expression precedence, lowest to highest: logical-or, logical-and,
// comparison, additive, multiplicative, unary, primary.
// All binary operators are left-associative; unary operators attach
// right-associatively via recursive descent into parseUnary.

func (p *Parser) parseExpression() ast.Expression {
	return p.parseLogicOr()
}

func (p *Parser) parseLogicOr() ast.Expression {
	expr := p.parseLogicAnd()
	for p.match(token.OR) {
		opTok := p.previous()
		right := p.parseLogicAnd()
		expr = &ast.BinaryExpr{Token: opTok, Left: expr, Operator: "or", Right: right}
	}
	return expr
}

func (p *Parser) parseLogicAnd() ast.Expression {
	expr := p.parseComparison()
	for p.match(token.AND) {
		opTok := p.previous()
		right := p.parseComparison()
		expr = &ast.BinaryExpr{Token: opTok, Left: expr, Operator: "and", Right: right}
	}
	return expr
}

func (p *Parser) parseComparison() ast.Expression {
	expr := p.parseTerm()
	for p.match(token.GT, token.LT, token.EQ, token.GE, token.LE, token.NEQ) {
		opTok := p.previous()
		right := p.parseTerm()
		expr = &ast.BinaryExpr{Token: opTok, Left: expr, Operator: opTok.Literal, Right: right}
	}
	return expr
}

func (p *Parser) parseTerm() ast.Expression {
	expr := p.parseFactor()
	for p.match(token.PLUS, token.MINUS) {
		opTok := p.previous()
		right := p.parseFactor()
		expr = &ast.BinaryExpr{Token: opTok, Left: expr, Operator: opTok.Literal, Right: right}
	}
	return expr
}

func (p *Parser) parseFactor() ast.Expression {
	expr := p.parseUnary()
	for p.match(token.STAR, token.SLASH, token.MODULO) {
		opTok := p.previous()
		right := p.parseUnary()
		expr = &ast.BinaryExpr{Token: opTok, Left: expr, Operator: opTok.Literal, Right: right}
	}
	return expr
}

func (p *Parser) parseUnary() ast.Expression {
	if p.match(token.NOT) {
		opTok := p.previous()
		right := p.parseUnary()
		return &ast.BinaryExpr{Token: opTok, Left: nil, Operator: "not", Right: right}
	}
	if p.match(token.MINUS) {
		opTok := p.previous()
		right := p.parseUnary()
		return &ast.BinaryExpr{Token: opTok, Left: nil, Operator: "-", Right: right}
	}
	return p.parsePrimary()
}

func (p *Parser) parsePrimary() ast.Expression {
	var expr ast.Expression

	switch {
	case p.match(token.INQUIRE):
		tok := p.previous()
		p.consume(token.LPAREN, "expected '(' after inquire")
		p.consume(token.RPAREN, "expected ')' after inquire")
		expr = &ast.InquireExpr{Token: tok}

	case p.match(token.LBRACKET):
		tok := p.previous()
		var elements []ast.Expression
		if !p.check(token.RBRACKET) {
			for {
				elements = append(elements, p.parseExpression())
				if !p.match(token.COMMA) {
					break
				}
			}
		}
		p.consume(token.RBRACKET, "expected ']' after array literal")
		expr = &ast.ArrayLiteral{Token: tok, Elements: elements}

	case p.match(token.INTEGER):
		tok := p.previous()
		v, _ := strconv.ParseInt(tok.Literal, 10, 64)
		expr = &ast.Literal{Token: tok, Value: v, ValueKind: "whole"}

	case p.match(token.FLOAT):
		tok := p.previous()
		v, _ := strconv.ParseFloat(tok.Literal, 64)
		expr = &ast.Literal{Token: tok, Value: v, ValueKind: "precise"}

	case p.match(token.STRING):
		tok := p.previous()
		expr = &ast.Literal{Token: tok, Value: tok.Literal, ValueKind: "series"}

	case p.match(token.BOOLEAN):
		tok := p.previous()
		expr = &ast.Literal{Token: tok, Value: tok.Literal == "true", ValueKind: "state"}

	case p.match(token.IDENT):
		tok := p.previous()
		name := tok.Literal
		switch {
		case p.match(token.LPAREN):
			var args []ast.Expression
			if !p.check(token.RPAREN) {
				for {
					args = append(args, p.parseExpression())
					if !p.match(token.COMMA) {
						break
					}
				}
			}
			p.consume(token.RPAREN, "expected ')' after arguments")
			expr = &ast.CallExpr{Token: tok, Name: name, Arguments: args}
		case p.match(token.LBRACKET):
			index := p.parseExpression()
			p.consume(token.RBRACKET, "expected ']' after array index")
			expr = &ast.IndexExpr{Token: tok, Name: name, Index: index}
		default:
			expr = &ast.Identifier{Token: tok, Name: name}
		}

	case p.match(token.LPAREN):
		expr = p.parseExpression()
		p.consume(token.RPAREN, "expected ')' after expression")

	default:
		p.fail("unexpected token " + p.peek().Type.String())
		panic("unreachable")
	}

	// Postfix chaining: .member extends the AST; a postfix [index] on
	// anything but a bare identifier is consumed and discarded (a
	// deliberately preserved quirk, not a bug).
	for {
		switch {
		case p.match(token.DOT):
			member := p.consume(token.IDENT, "expected member name after '.'").Literal
			expr = &ast.MemberExpr{Token: p.previous(), Object: expr, Member: member}
		case p.match(token.LBRACKET):
			p.parseExpression()
			p.consume(token.RBRACKET, "expected ']' after array index")
		default:
			return expr
		}
	}
}

func (p *Parser) parseType() *ast.Type {
	switch {
	case p.match(token.WHOLE):
		return &ast.Type{Name: "whole", TokPos: p.previous().Pos, TokLit: p.previous().Literal}
	case p.match(token.PRECISE):
		return &ast.Type{Name: "precise", TokPos: p.previous().Pos, TokLit: p.previous().Literal}
	case p.match(token.SERIES):
		return &ast.Type{Name: "series", TokPos: p.previous().Pos, TokLit: p.previous().Literal}
	case p.match(token.STATE):
		return &ast.Type{Name: "state", TokPos: p.previous().Pos, TokLit: p.previous().Literal}
	case p.match(token.SEQUENCE):
		tok := p.previous()
		p.consume(token.LT, "expected '<' after sequence")
		elem := p.parseType()
		p.consume(token.GT, "expected '>' after sequence type")
		return &ast.Type{Name: "sequence", Elem: elem, TokPos: tok.Pos, TokLit: tok.Literal}
	case p.match(token.IDENT):
		tok := p.previous()
		return &ast.Type{Name: tok.Literal, TokPos: tok.Pos, TokLit: tok.Literal}
	}
	p.fail("expected type")
	panic("unreachable")
}
