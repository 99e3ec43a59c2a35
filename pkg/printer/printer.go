// Package printer renders a parsed Program back into mypl source text.
// It is not round-trip exact (comments and original formatting are
// lost) but produces syntactically valid, stably indented output, the
// same guarantee the teacher's own AST-to-source printer makes.
package printer

import (
	"fmt"
	"strings"

	"github.com/cbozin/myPL/internal/ast"
)

// Print renders an entire program: struct defs, class defs, then
// function defs, each separated by a blank line.
func Print(prog *ast.Program) string {
	p := &printer{}
	for _, s := range prog.StructDefs {
		p.structDef(s)
		p.blank()
	}
	for _, c := range prog.ClassDefs {
		p.classDef(c)
		p.blank()
	}
	for _, f := range prog.FunDefs {
		p.funDef(f)
		p.blank()
	}
	return strings.TrimRight(p.b.String(), "\n") + "\n"
}

type printer struct {
	b      strings.Builder
	indent int
}

func (p *printer) line(format string, args ...any) {
	p.b.WriteString(strings.Repeat("  ", p.indent))
	fmt.Fprintf(&p.b, format, args...)
	p.b.WriteByte('\n')
}

func (p *printer) blank() { p.b.WriteByte('\n') }

func typeString(t ast.DataType) string {
	if t.IsArray {
		return "array " + t.TypeName
	}
	return t.TypeName
}

func varDefString(v ast.VarDef) string {
	return fmt.Sprintf("%s %s", typeString(v.Type), v.Name.Lexeme)
}

func (p *printer) structDef(s *ast.StructDef) {
	p.line("struct %s {", s.Name.Lexeme)
	p.indent++
	for i, f := range s.Fields {
		sep := ","
		if i == len(s.Fields)-1 {
			sep = ""
		}
		p.line("%s%s", varDefString(f), sep)
	}
	p.indent--
	p.line("}")
}

func (p *printer) classDef(c *ast.ClassDef) {
	p.line("class %s {", c.Name.Lexeme)
	p.indent++
	if len(c.PrivateMembers) > 0 || len(c.PrivateMethods) > 0 {
		p.line("private:")
		p.indent++
		for _, m := range c.PrivateMembers {
			p.line("%s", varDefString(m))
		}
		for _, m := range c.PrivateMethods {
			p.funDef(m)
		}
		p.indent--
	}
	if len(c.PublicMembers) > 0 || len(c.PublicMethods) > 0 {
		p.line("public:")
		p.indent++
		for _, m := range c.PublicMembers {
			p.line("%s", varDefString(m))
		}
		for _, m := range c.PublicMethods {
			p.funDef(m)
		}
		p.indent--
	}
	p.indent--
	p.line("}")
}

func (p *printer) funDef(f *ast.FunDef) {
	params := make([]string, len(f.Params))
	for i, pr := range f.Params {
		params[i] = varDefString(pr)
	}
	p.line("%s %s(%s) {", typeString(f.ReturnType), f.Name.Lexeme, strings.Join(params, ", "))
	p.indent++
	for _, st := range f.Stmts {
		p.stmt(st)
	}
	p.indent--
	p.line("}")
}

func (p *printer) stmt(s ast.Stmt) {
	switch st := s.(type) {
	case *ast.VarDeclStmt:
		p.line("%s = %s", varDefString(st.VarDef), exprString(st.Expr))
	case *ast.AssignStmt:
		p.line("%s = %s", pathString(st.LValue), exprString(st.Expr))
	case *ast.ReturnStmt:
		p.line("return %s", exprString(st.Expr))
	case *ast.CallExpr:
		p.line("%s", rvalueString(st))
	case *ast.WhileStmt:
		p.line("while (%s) {", exprString(st.Condition))
		p.indent++
		for _, inner := range st.Stmts {
			p.stmt(inner)
		}
		p.indent--
		p.line("}")
	case *ast.ForStmt:
		p.line("for (%s = %s; %s; %s = %s) {",
			varDefString(st.VarDecl.VarDef), exprString(st.VarDecl.Expr),
			exprString(st.Cond),
			pathString(st.Assign.LValue), exprString(st.Assign.Expr))
		p.indent++
		for _, inner := range st.Stmts {
			p.stmt(inner)
		}
		p.indent--
		p.line("}")
	case *ast.IfStmt:
		p.line("if (%s) {", exprString(st.If.Condition))
		p.indent++
		for _, inner := range st.If.Stmts {
			p.stmt(inner)
		}
		p.indent--
		for _, ei := range st.ElseIfs {
			p.line("} elseif (%s) {", exprString(ei.Condition))
			p.indent++
			for _, inner := range ei.Stmts {
				p.stmt(inner)
			}
			p.indent--
		}
		if st.ElseStmts != nil {
			p.line("} else {")
			p.indent++
			for _, inner := range st.ElseStmts {
				p.stmt(inner)
			}
			p.indent--
		}
		p.line("}")
	}
}

func pathString(path []ast.VarRef) string {
	parts := make([]string, len(path))
	for i, ref := range path {
		parts[i] = refString(ref)
	}
	return strings.Join(parts, ".")
}

func refString(ref ast.VarRef) string {
	s := ref.Name.Lexeme
	if ref.IsMethod {
		args := make([]string, len(ref.MethodParams))
		for i, a := range ref.MethodParams {
			args[i] = exprString(a)
		}
		s += "(" + strings.Join(args, ", ") + ")"
	}
	if ref.ArrayExpr != nil {
		s += "[" + exprString(ref.ArrayExpr) + "]"
	}
	return s
}

func exprString(e *ast.Expr) string {
	s := exprTermString(e.First)
	if e.Op != nil {
		s += " " + e.Op.Lexeme + " " + exprString(e.Rest)
	}
	if e.Negated {
		s = "not " + s
	}
	return s
}

func exprTermString(t ast.ExprTerm) string {
	switch term := t.(type) {
	case *ast.SimpleTerm:
		return rvalueString(term.Value)
	case *ast.ComplexTerm:
		return "(" + exprString(term.Expr) + ")"
	default:
		return ""
	}
}

func rvalueString(v ast.RValue) string {
	switch rv := v.(type) {
	case *ast.SimpleRValue:
		return rv.Value.Lexeme
	case *ast.NewRValue:
		if rv.ArrayExpr != nil {
			return fmt.Sprintf("new %s[%s]", rv.Type.Lexeme, exprString(rv.ArrayExpr))
		}
		return "new " + rv.Type.Lexeme
	case *ast.VarRValue:
		return pathString(rv.Path)
	case *ast.CallExpr:
		args := make([]string, len(rv.Args))
		for i, a := range rv.Args {
			args[i] = exprString(a)
		}
		return fmt.Sprintf("%s(%s)", rv.FunName.Lexeme, strings.Join(args, ", "))
	default:
		return ""
	}
}
