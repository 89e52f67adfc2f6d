// Package ast defines the LORS abstract syntax tree. Each node kind is
// its own struct; Node is the common interface rather than a
// dynamically typed base class, so dispatch is a type switch instead
// of isinstance checks.
package ast

import "github.com/lors-lang/lorsc/internal/token"

// Node is implemented by every AST node.
type Node interface {
	TokenLiteral() string
	Pos() token.Position
}

// Declaration is a top-level program member.
type Declaration interface {
	Node
	declarationNode()
}

// Statement is a node that performs an action but has no value.
type Statement interface {
	Node
	statementNode()
}

// Expression is a node that produces a value.
type Expression interface {
	Node
	expressionNode()
}

// Program is the root node: an ordered list of top-level declarations.
type Program struct {
	Declarations []Declaration
}

func (p *Program) TokenLiteral() string { return "" }
func (p *Program) Pos() token.Position {
	if len(p.Declarations) > 0 {
		return p.Declarations[0].Pos()
	}
	return token.Position{Line: 1, Column: 1}
}

// Type describes a LORS type: a name plus, for sequence<T>, an
// element-type descriptor.
type Type struct {
	Name    string // whole|precise|series|state|void|sequence|<struct name>
	Elem    *Type  // non-nil iff Name == "sequence"
	TokPos  token.Position
	TokLit  string
}

func (t *Type) TokenLiteral() string { return t.TokLit }
func (t *Type) Pos() token.Position  { return t.TokPos }

// VariableDecl is `datum name : type [= init] ;`. Also used to
// represent one structure field; a field's initializer is kept by the
// parser but discarded by codegen.
type VariableDecl struct {
	Token       token.Token // the `datum` token
	Name        string
	Type        *Type
	Initializer Expression // nil if absent
}

func (v *VariableDecl) TokenLiteral() string { return v.Token.Literal }
func (v *VariableDecl) Pos() token.Position  { return v.Token.Pos }
func (v *VariableDecl) declarationNode()     {}
func (v *VariableDecl) statementNode()       {}

// StructDecl is `structure name begin {field} end`.
type StructDecl struct {
	Token  token.Token // the `structure` token
	Name   string
	Fields []*VariableDecl
}

func (s *StructDecl) TokenLiteral() string { return s.Token.Literal }
func (s *StructDecl) Pos() token.Position  { return s.Token.Pos }
func (s *StructDecl) declarationNode()     {}

// Param is one function parameter: name + type.
type Param struct {
	Name string
	Type *Type
}

// FunctionDecl is `algorithm name(params) [-> type] (";" | begin block end)`.
// Body is nil for a forward declaration.
type FunctionDecl struct {
	Token      token.Token // the `algorithm` token
	Name       string
	Params     []*Param
	ReturnType *Type
	Body       *Block // nil => forward declaration
}

func (f *FunctionDecl) TokenLiteral() string { return f.Token.Literal }
func (f *FunctionDecl) Pos() token.Position  { return f.Token.Pos }
func (f *FunctionDecl) declarationNode()     {}

// Block is an ordered list of statements delimited by begin/end (or,
// for if/while bodies, by the statement-stop keywords the parser
// recognizes).
type Block struct {
	Token      token.Token // the first token of the block's body, for position only
	Statements []Statement
}

func (b *Block) TokenLiteral() string { return b.Token.Literal }
func (b *Block) Pos() token.Position  { return b.Token.Pos }
func (b *Block) statementNode()       {}

// IfStatement is `verify (cond) then {stmt} [otherwise {stmt}] conclude`.
type IfStatement struct {
	Token     token.Token
	Condition Expression
	Then      *Block
	Else      *Block // nil if no otherwise clause
}

func (s *IfStatement) TokenLiteral() string { return s.Token.Literal }
func (s *IfStatement) Pos() token.Position  { return s.Token.Pos }
func (s *IfStatement) statementNode()       {}

// WhileStatement is `cycle (cond) do {stmt} conclude`.
type WhileStatement struct {
	Token     token.Token
	Condition Expression
	Body      *Block
}

func (s *WhileStatement) TokenLiteral() string { return s.Token.Literal }
func (s *WhileStatement) Pos() token.Position  { return s.Token.Pos }
func (s *WhileStatement) statementNode()       {}

// ReturnStatement is `result [expr] ;`.
type ReturnStatement struct {
	Token token.Token
	Value Expression // nil if no value
}

func (s *ReturnStatement) TokenLiteral() string { return s.Token.Literal }
func (s *ReturnStatement) Pos() token.Position  { return s.Token.Pos }
func (s *ReturnStatement) statementNode()       {}

// ExpressionStatement wraps an expression used for its side effects,
// including `reveal(...)` which desugars to a call to "reveal".
type ExpressionStatement struct {
	Token      token.Token
	Expression Expression
}

func (s *ExpressionStatement) TokenLiteral() string { return s.Token.Literal }
func (s *ExpressionStatement) Pos() token.Position  { return s.Token.Pos }
func (s *ExpressionStatement) statementNode()       {}

// Assignment is `name = expr ;`.
type Assignment struct {
	Token token.Token // the `=` token
	Name  string
	Value Expression
}

func (s *Assignment) TokenLiteral() string { return s.Token.Literal }
func (s *Assignment) Pos() token.Position  { return s.Token.Pos }
func (s *Assignment) statementNode()       {}

// IndexAssignment is `name[index] = expr ;`.
type IndexAssignment struct {
	Token token.Token // the `=` token
	Name  string
	Index Expression
	Value Expression
}

func (s *IndexAssignment) TokenLiteral() string { return s.Token.Literal }
func (s *IndexAssignment) Pos() token.Position  { return s.Token.Pos }
func (s *IndexAssignment) statementNode()       {}

// MemberAssignment is `object.member = expr ;`.
type MemberAssignment struct {
	Token  token.Token // the `=` token
	Object Expression
	Member string
	Value  Expression
}

func (s *MemberAssignment) TokenLiteral() string { return s.Token.Literal }
func (s *MemberAssignment) Pos() token.Position  { return s.Token.Pos }
func (s *MemberAssignment) statementNode()       {}

// BinaryExpr is a binary operation, or a unary operation encoded with
// Left == nil.
type BinaryExpr struct {
	Token    token.Token // the operator token
	Left     Expression  // nil for unary operators
	Operator string
	Right    Expression
}

func (e *BinaryExpr) TokenLiteral() string { return e.Token.Literal }
func (e *BinaryExpr) Pos() token.Position  { return e.Token.Pos }
func (e *BinaryExpr) expressionNode()      {}

// IsUnary reports whether e encodes a unary operator.
func (e *BinaryExpr) IsUnary() bool { return e.Left == nil }

// Literal is an integer, float, string, or boolean constant.
type Literal struct {
	Token     token.Token
	Value     any    // int64, float64, string, or bool
	ValueKind string // "whole"|"precise"|"series"|"state"
}

func (e *Literal) TokenLiteral() string { return e.Token.Literal }
func (e *Literal) Pos() token.Position  { return e.Token.Pos }
func (e *Literal) expressionNode()      {}

// Identifier is a bare name reference.
type Identifier struct {
	Token token.Token
	Name  string
}

func (e *Identifier) TokenLiteral() string { return e.Token.Literal }
func (e *Identifier) Pos() token.Position  { return e.Token.Pos }
func (e *Identifier) expressionNode()      {}

// CallExpr is `name(args...)`.
type CallExpr struct {
	Token     token.Token
	Name      string
	Arguments []Expression
}

func (e *CallExpr) TokenLiteral() string { return e.Token.Literal }
func (e *CallExpr) Pos() token.Position  { return e.Token.Pos }
func (e *CallExpr) expressionNode()      {}

// ArrayLiteral is `[ expr {, expr} ]`.
type ArrayLiteral struct {
	Token    token.Token
	Elements []Expression
}

func (e *ArrayLiteral) TokenLiteral() string { return e.Token.Literal }
func (e *ArrayLiteral) Pos() token.Position  { return e.Token.Pos }
func (e *ArrayLiteral) expressionNode()      {}

// IndexExpr is `name[index]`. Indexing only binds onto a bare
// identifier primary; `expr[idx]` on any other primary is parsed and
// discarded by the parser's postfix loop.
type IndexExpr struct {
	Token token.Token
	Name  string
	Index Expression
}

func (e *IndexExpr) TokenLiteral() string { return e.Token.Literal }
func (e *IndexExpr) Pos() token.Position  { return e.Token.Pos }
func (e *IndexExpr) expressionNode()      {}

// MemberExpr is `object.member`.
type MemberExpr struct {
	Token  token.Token
	Object Expression
	Member string
}

func (e *MemberExpr) TokenLiteral() string { return e.Token.Literal }
func (e *MemberExpr) Pos() token.Position  { return e.Token.Pos }
func (e *MemberExpr) expressionNode()      {}

// InquireExpr is the zero-argument `inquire()` intrinsic.
type InquireExpr struct {
	Token token.Token
}

func (e *InquireExpr) TokenLiteral() string { return e.Token.Literal }
func (e *InquireExpr) Pos() token.Position  { return e.Token.Pos }
func (e *InquireExpr) expressionNode()      {}
