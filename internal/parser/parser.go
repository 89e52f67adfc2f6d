// Package parser implements LORS's recursive-descent, precedence
// climbing parser. It raises a typed ParseError rather than a bare
// errors.New, and deliberately has no prefix/infix function tables or
// panic-mode recovery: the error policy is single fatal error, no
// recovery.
package parser

import (
	"fmt"

	"github.com/lors-lang/lorsc/internal/ast"
	"github.com/lors-lang/lorsc/internal/token"
)

// ParseError is the single fatal error a parse run can produce.
type ParseError struct {
	Message string
	Pos     token.Position
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at line %d", e.Message, e.Pos.Line)
}

// Parser consumes a token slice and produces a program AST.
type Parser struct {
	tokens []token.Token
	pos    int
}

// New creates a Parser over a complete token slice (EOF-terminated).
func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse consumes the whole token slice and returns the program AST, or
// the first fatal ParseError encountered.
func Parse(tokens []token.Token) (prog *ast.Program, err error) {
	p := New(tokens)
	defer func() {
		if r := recover(); r != nil {
			if pe, ok := r.(*ParseError); ok {
				err = pe
				return
			}
			panic(r)
		}
	}()
	return p.parseProgram(), nil
}

func (p *Parser) parseProgram() *ast.Program {
	var decls []ast.Declaration
	for !p.isAtEnd() {
		decls = append(decls, p.parseDeclaration())
	}
	return &ast.Program{Declarations: decls}
}

func (p *Parser) parseDeclaration() ast.Declaration {
	switch {
	case p.match(token.DATUM):
		return p.parseVariableDecl()
	case p.match(token.ALGORITHM):
		return p.parseFunctionDecl()
	case p.match(token.STRUCTURE):
		return p.parseStructDecl()
	default:
		p.fail("expected declaration (datum, algorithm, or structure)")
		panic("unreachable")
	}
}

func (p *Parser) parseStructDecl() *ast.StructDecl {
	tok := p.previous()
	name := p.consume(token.IDENT, "expected structure name").Literal
	p.consume(token.BEGIN, "expected 'begin' after structure name")

	var fields []*ast.VariableDecl
	for !p.check(token.END) && !p.isAtEnd() {
		if p.match(token.DATUM) {
			fields = append(fields, p.parseVariableDecl())
		} else {
			p.fail("expected 'datum' field declaration in structure")
		}
	}
	p.consume(token.END, "expected 'end' after structure fields")
	return &ast.StructDecl{Token: tok, Name: name, Fields: fields}
}

func (p *Parser) parseVariableDecl() *ast.VariableDecl {
	tok := p.previous()
	name := p.consume(token.IDENT, "expected variable name").Literal
	p.consume(token.COLON, "expected ':' after variable name")
	typ := p.parseType()

	var init ast.Expression
	if p.match(token.ASSIGN) {
		init = p.parseExpression()
	}
	p.consume(token.SEMICOLON, "expected ';' after variable declaration")
	return &ast.VariableDecl{Token: tok, Name: name, Type: typ, Initializer: init}
}

func (p *Parser) parseFunctionDecl() *ast.FunctionDecl {
	tok := p.previous()
	name := p.consume(token.IDENT, "expected function name").Literal
	p.consume(token.LPAREN, "expected '(' after function name")

	var params []*ast.Param
	if !p.check(token.RPAREN) {
		for {
			pname := p.consume(token.IDENT, "expected parameter name").Literal
			p.consume(token.COLON, "expected ':' after parameter name")
			ptype := p.parseType()
			params = append(params, &ast.Param{Name: pname, Type: ptype})
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	p.consume(token.RPAREN, "expected ')' after parameters")

	returnType := &ast.Type{Name: "void"}
	if p.match(token.ARROW) {
		returnType = p.parseType()
	}

	if p.match(token.SEMICOLON) {
		return &ast.FunctionDecl{Token: tok, Name: name, Params: params, ReturnType: returnType, Body: nil}
	}

	p.consume(token.BEGIN, "expected 'begin' before function body")
	body := p.parseBlockUntil(token.END)
	p.consume(token.END, "expected 'end' after block")
	return &ast.FunctionDecl{Token: tok, Name: name, Params: params, ReturnType: returnType, Body: body}
}

// parseBlockUntil parses statements until the current token is stop or
// the end of input. It does not consume the stop token.
func (p *Parser) parseBlockUntil(stop token.Type) *ast.Block {
	startTok := p.peek()
	var stmts []ast.Statement
	for !p.check(stop) && !p.isAtEnd() {
		stmts = append(stmts, p.parseStatement())
	}
	return &ast.Block{Token: startTok, Statements: stmts}
}

func (p *Parser) parseStatement() ast.Statement {
	switch {
	case p.match(token.VERIFY):
		return p.parseIfStatement()
	case p.match(token.CYCLE):
		return p.parseWhileStatement()
	case p.match(token.RESULT):
		return p.parseReturnStatement()
	case p.match(token.DATUM):
		return p.parseVariableDecl()
	case p.match(token.REVEAL):
		return p.parseRevealStatement()
	}
	return p.parseAssignmentOrExpressionStatement()
}

func (p *Parser) parseIfStatement() *ast.IfStatement {
	tok := p.previous()
	p.consume(token.LPAREN, "expected '(' after verify")
	cond := p.parseExpression()
	p.consume(token.RPAREN, "expected ')' after condition")
	p.consume(token.THEN, "expected 'then' before true block")

	thenBlock := p.parseBlockUntilAny(token.OTHERWISE, token.CONCLUDE, token.END)

	var elseBlock *ast.Block
	if p.match(token.OTHERWISE) {
		elseBlock = p.parseBlockUntilAny(token.CONCLUDE, token.END)
	}

	p.consume(token.CONCLUDE, "expected 'conclude' at end of verify statement")
	return &ast.IfStatement{Token: tok, Condition: cond, Then: thenBlock, Else: elseBlock}
}

// parseBlockUntilAny stops at any of the given lookahead tokens,
// mirroring the original parser's safety-break on END so that a
// missing 'conclude' surfaces as a clean error at the enclosing 'end'
// rather than consuming it.
func (p *Parser) parseBlockUntilAny(stops ...token.Type) *ast.Block {
	startTok := p.peek()
	var stmts []ast.Statement
	for !p.isAtEnd() && !p.checkAny(stops...) {
		stmts = append(stmts, p.parseStatement())
	}
	return &ast.Block{Token: startTok, Statements: stmts}
}

func (p *Parser) parseWhileStatement() *ast.WhileStatement {
	tok := p.previous()
	p.consume(token.LPAREN, "expected '(' after cycle")
	cond := p.parseExpression()
	p.consume(token.RPAREN, "expected ')' after condition")
	p.consume(token.DO, "expected 'do' before loop body")

	body := p.parseBlockUntil(token.CONCLUDE)
	p.consume(token.CONCLUDE, "expected 'conclude' after cycle body")
	return &ast.WhileStatement{Token: tok, Condition: cond, Body: body}
}

func (p *Parser) parseReturnStatement() *ast.ReturnStatement {
	tok := p.previous()
	var value ast.Expression
	if !p.check(token.SEMICOLON) {
		value = p.parseExpression()
	}
	p.consume(token.SEMICOLON, "expected ';' after return value")
	return &ast.ReturnStatement{Token: tok, Value: value}
}

func (p *Parser) parseRevealStatement() ast.Statement {
	tok := p.previous()
	p.consume(token.LPAREN, "expected '(' after reveal")
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
	p.consume(token.SEMICOLON, "expected ';' after reveal statement")
	return &ast.ExpressionStatement{Token: tok, Expression: &ast.CallExpr{Token: tok, Name: "reveal", Arguments: args}}
}

func (p *Parser) parseAssignmentOrExpressionStatement() ast.Statement {
	expr := p.parseExpression()

	if p.match(token.ASSIGN) {
		eqTok := p.previous()
		value := p.parseExpression()
		p.consume(token.SEMICOLON, "expected ';' after assignment")

		switch target := expr.(type) {
		case *ast.Identifier:
			return &ast.Assignment{Token: eqTok, Name: target.Name, Value: value}
		case *ast.IndexExpr:
			return &ast.IndexAssignment{Token: eqTok, Name: target.Name, Index: target.Index, Value: value}
		case *ast.MemberExpr:
			return &ast.MemberAssignment{Token: eqTok, Object: target.Object, Member: target.Member, Value: value}
		default:
			p.failAt("invalid assignment target", eqTok.Pos)
			panic("unreachable")
		}
	}

	p.consume(token.SEMICOLON, "expected ';' after expression")
	tok := exprToken(expr)
	return &ast.ExpressionStatement{Token: tok, Expression: expr}
}

func exprToken(expr ast.Expression) token.Token {
	pos := expr.Pos()
	return token.Token{Literal: expr.TokenLiteral(), Pos: pos}
}
