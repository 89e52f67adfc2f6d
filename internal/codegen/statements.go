package codegen

import (
	"fmt"
	"strings"

	"github.com/lors-lang/lorsc/internal/ast"
)

func indent(level int) string {
	return strings.Repeat("    ", level)
}

// emitStatement emits one statement at the given indent level,
// dispatching by type switch over every ast.Statement variant.
func (g *Generator) emitStatement(sb *strings.Builder, stmt ast.Statement, level int) error {
	switch s := stmt.(type) {
	case *ast.VariableDecl:
		sb.WriteString(indent(level))
		sb.WriteString(g.variableDeclString(s))
		sb.WriteString("\n")

	case *ast.IfStatement:
		return g.emitIf(sb, s, level)

	case *ast.WhileStatement:
		return g.emitWhile(sb, s, level)

	case *ast.ReturnStatement:
		sb.WriteString(indent(level))
		if s.Value == nil {
			sb.WriteString("return;\n")
		} else {
			fmt.Fprintf(sb, "return %s;\n", g.emitExpression(s.Value))
		}

	case *ast.ExpressionStatement:
		sb.WriteString(indent(level))
		fmt.Fprintf(sb, "%s;\n", g.emitExpression(s.Expression))

	case *ast.Assignment:
		sb.WriteString(indent(level))
		fmt.Fprintf(sb, "%s = %s;\n", s.Name, g.emitExpression(s.Value))

	case *ast.IndexAssignment:
		sb.WriteString(indent(level))
		fmt.Fprintf(sb, "%s[%s] = %s;\n", s.Name, g.emitExpression(s.Index), g.emitExpression(s.Value))

	case *ast.MemberAssignment:
		sb.WriteString(indent(level))
		fmt.Fprintf(sb, "%s.%s = %s;\n", g.emitExpression(s.Object), s.Member, g.emitExpression(s.Value))

	case *ast.Block:
		for _, inner := range s.Statements {
			if err := g.emitStatement(sb, inner, level); err != nil {
				return err
			}
		}

	default:
		return fmt.Errorf("codegen: unsupported statement %T", stmt)
	}
	return nil
}

func (g *Generator) emitBlock(sb *strings.Builder, b *ast.Block, level int) error {
	for _, stmt := range b.Statements {
		if err := g.emitStatement(sb, stmt, level); err != nil {
			return err
		}
	}
	return nil
}

func (g *Generator) emitIf(sb *strings.Builder, s *ast.IfStatement, level int) error {
	sb.WriteString(indent(level))
	fmt.Fprintf(sb, "if (%s) {\n", g.emitExpression(s.Condition))
	if err := g.emitBlock(sb, s.Then, level+1); err != nil {
		return err
	}
	if s.Else != nil {
		sb.WriteString(indent(level))
		sb.WriteString("} else {\n")
		if err := g.emitBlock(sb, s.Else, level+1); err != nil {
			return err
		}
	}
	sb.WriteString(indent(level))
	sb.WriteString("}\n")
	return nil
}

func (g *Generator) emitWhile(sb *strings.Builder, s *ast.WhileStatement, level int) error {
	sb.WriteString(indent(level))
	fmt.Fprintf(sb, "while (%s) {\n", g.emitExpression(s.Condition))
	if err := g.emitBlock(sb, s.Body, level+1); err != nil {
		return err
	}
	sb.WriteString(indent(level))
	sb.WriteString("}\n")
	return nil
}
