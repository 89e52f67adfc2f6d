// Package codegen walks a LORS AST and emits a single C++ translation
// unit as a string, dispatching by type switch over each declaration,
// statement, and expression kind.
package codegen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lors-lang/lorsc/internal/ast"
)

const preamble = `#include <iostream>
#include <string>
#include <vector>
#include <sstream>
#include <limits>

using namespace std;

static inline void reveal() {
    cout << "\n";
}

template <typename T>
static inline void reveal_item(const T& value) {
    cout << value;
}

static inline void reveal_item(bool value) {
    cout << (value ? "true" : "false");
}

template <typename T, typename... Rest>
static inline void reveal(const T& first, const Rest&... rest) {
    reveal_item(first);
    if (sizeof...(rest) > 0) {
        cout << " ";
    }
    reveal(rest...);
}

static inline std::string inquire() {
    std::string line;
    std::getline(std::cin, line);
    return line;
}
`

// Generator walks a program and emits C++. structs is the emitter's
// sole piece of cross-declaration state: the set of declared structure
// names, consulted at variable-declaration sites to decide between
// brace-init construction and a plain function call.
type Generator struct {
	structs map[string]bool
}

// New creates a Generator.
func New() *Generator {
	return &Generator{structs: make(map[string]bool)}
}

// Generate produces the full C++ translation unit for program.
func Generate(program *ast.Program) (string, error) {
	g := New()
	return g.generate(program)
}

func (g *Generator) generate(program *ast.Program) (string, error) {
	for _, decl := range program.Declarations {
		if s, ok := decl.(*ast.StructDecl); ok {
			g.structs[s.Name] = true
		}
	}

	var sb strings.Builder
	sb.WriteString(preamble)
	sb.WriteString("\n")

	for _, decl := range program.Declarations {
		if err := g.emitDeclaration(&sb, decl); err != nil {
			return "", err
		}
		sb.WriteString("\n")
	}

	return sb.String(), nil
}

func (g *Generator) emitDeclaration(sb *strings.Builder, decl ast.Declaration) error {
	switch d := decl.(type) {
	case *ast.StructDecl:
		g.emitStruct(sb, d)
	case *ast.VariableDecl:
		g.emitTopLevelVariable(sb, d)
	case *ast.FunctionDecl:
		return g.emitFunction(sb, d)
	default:
		return fmt.Errorf("codegen: unsupported declaration %T", decl)
	}
	return nil
}

func (g *Generator) emitStruct(sb *strings.Builder, d *ast.StructDecl) {
	fmt.Fprintf(sb, "struct %s {\n", d.Name)
	for _, field := range d.Fields {
		// Field initializers are parsed but discarded: C++ struct
		// members get no default member initializer here.
		fmt.Fprintf(sb, "    %s %s;\n", lowerType(field.Type), field.Name)
	}
	sb.WriteString("};\n")
}

func (g *Generator) emitTopLevelVariable(sb *strings.Builder, d *ast.VariableDecl) {
	sb.WriteString(g.variableDeclString(d))
	sb.WriteString("\n")
}

// variableDeclString renders `<type> <name>[ = <expr>];`, applying the
// struct-constructor heuristic to the initializer when present.
func (g *Generator) variableDeclString(d *ast.VariableDecl) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s", lowerType(d.Type), d.Name)
	if d.Initializer != nil {
		sb.WriteString(" = ")
		sb.WriteString(g.emitInitializer(d.Initializer))
	}
	sb.WriteString(";")
	return sb.String()
}

// emitInitializer applies the struct-constructor heuristic: a call
// `T(a, b, c)` where T names a declared structure lowers to
// `{a, b, c}`; anything else lowers through the normal expression
// emitter.
func (g *Generator) emitInitializer(expr ast.Expression) string {
	if call, ok := expr.(*ast.CallExpr); ok && g.structs[call.Name] {
		return "{" + g.emitArgs(call.Arguments) + "}"
	}
	return g.emitExpression(expr)
}

func (g *Generator) emitFunction(sb *strings.Builder, d *ast.FunctionDecl) error {
	retType := lowerType(d.ReturnType)
	isMain := d.Name == "main"
	if isMain {
		retType = "int"
	}

	fmt.Fprintf(sb, "%s %s(%s)", retType, d.Name, g.emitParams(d.Params))

	if d.Body == nil {
		sb.WriteString(";\n")
		return nil
	}

	sb.WriteString(" {\n")
	for _, stmt := range d.Body.Statements {
		if err := g.emitStatement(sb, stmt, 1); err != nil {
			return err
		}
	}
	if isMain && !endsInReturn(d.Body) {
		sb.WriteString("    return 0;\n")
	}
	sb.WriteString("}\n")
	return nil
}

func endsInReturn(b *ast.Block) bool {
	if len(b.Statements) == 0 {
		return false
	}
	_, ok := b.Statements[len(b.Statements)-1].(*ast.ReturnStatement)
	return ok
}

func (g *Generator) emitParams(params []*ast.Param) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = fmt.Sprintf("%s %s", lowerType(p.Type), p.Name)
	}
	return strings.Join(parts, ", ")
}

func (g *Generator) emitArgs(args []ast.Expression) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = g.emitExpression(a)
	}
	return strings.Join(parts, ", ")
}

// lowerType maps a LORS type descriptor to its C++ spelling.
func lowerType(t *ast.Type) string {
	switch t.Name {
	case "whole":
		return "int"
	case "precise":
		return "double"
	case "series":
		return "std::string"
	case "state":
		return "bool"
	case "void":
		return "void"
	case "sequence":
		return "std::vector<" + lowerType(t.Elem) + ">"
	default:
		return t.Name
	}
}

var cppBinaryOps = map[string]string{
	"and": "&&",
	"or":  "||",
	"not": "!",
}

func cppOperator(op string) string {
	if mapped, ok := cppBinaryOps[op]; ok {
		return mapped
	}
	return op
}

func (g *Generator) emitExpression(expr ast.Expression) string {
	switch e := expr.(type) {
	case *ast.BinaryExpr:
		if e.IsUnary() {
			return fmt.Sprintf("(%s%s)", cppOperator(e.Operator), g.emitExpression(e.Right))
		}
		return fmt.Sprintf("(%s %s %s)", g.emitExpression(e.Left), cppOperator(e.Operator), g.emitExpression(e.Right))
	case *ast.Literal:
		return g.emitLiteral(e)
	case *ast.Identifier:
		return e.Name
	case *ast.CallExpr:
		return fmt.Sprintf("%s(%s)", e.Name, g.emitArgs(e.Arguments))
	case *ast.ArrayLiteral:
		return "{" + g.emitArgs(e.Elements) + "}"
	case *ast.IndexExpr:
		return fmt.Sprintf("%s[%s]", e.Name, g.emitExpression(e.Index))
	case *ast.MemberExpr:
		return fmt.Sprintf("%s.%s", g.emitExpression(e.Object), e.Member)
	case *ast.InquireExpr:
		return "inquire()"
	default:
		return fmt.Sprintf("/* unsupported expression %T */", expr)
	}
}

func (g *Generator) emitLiteral(lit *ast.Literal) string {
	switch lit.ValueKind {
	case "whole":
		return strconv.FormatInt(lit.Value.(int64), 10)
	case "precise":
		return strconv.FormatFloat(lit.Value.(float64), 'g', -1, 64)
	case "series":
		return `std::string("` + escapeString(lit.Value.(string)) + `")`
	case "state":
		if lit.Value.(bool) {
			return "true"
		}
		return "false"
	default:
		return "0"
	}
}

func escapeString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	return s
}
