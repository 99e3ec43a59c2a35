package ast

import "github.com/cbozin/myPL/internal/lexer"

// Expr is a right-leaning chain of terms: "not? first (op rest)?". There
// is no precedence table; the semantic checker classifies op by the
// category of operator it is (arithmetic, relational, equality, logical)
// and rejects mixed categories.
type Expr struct {
	Negated bool
	First   ExprTerm
	Op      *lexer.Token
	Rest    *Expr
}

// FirstToken returns the token that begins the expression, for
// diagnostics.
func (e *Expr) FirstToken() lexer.Token {
	return e.First.FirstToken()
}

// ExprTerm is either a SimpleTerm (a bare rvalue) or a ComplexTerm (a
// parenthesized sub-expression).
type ExprTerm interface {
	isExprTerm()
	FirstToken() lexer.Token
}

// SimpleTerm wraps a single rvalue.
type SimpleTerm struct {
	Value RValue
}

func (*SimpleTerm) isExprTerm() {}

func (t *SimpleTerm) FirstToken() lexer.Token { return t.Value.FirstToken() }

// ComplexTerm wraps a parenthesized expression used as a term.
type ComplexTerm struct {
	Expr *Expr
}

func (*ComplexTerm) isExprTerm() {}

func (t *ComplexTerm) FirstToken() lexer.Token { return t.Expr.FirstToken() }

// RValue is anything that can appear on the right-hand side of an
// expression term: a literal, a "new" allocation, a variable/member/
// index/call path, or a function call used as a value.
type RValue interface {
	isRValue()
	FirstToken() lexer.Token
}

// SimpleRValue is a single literal token: an int, double, bool, char,
// string, or null value.
type SimpleRValue struct {
	Value lexer.Token
}

func (*SimpleRValue) isRValue() {}

func (v *SimpleRValue) FirstToken() lexer.Token { return v.Value }

// NewRValue allocates a struct, a class, or an array. ArrayExpr is set
// only when allocating an array, and gives its length.
type NewRValue struct {
	Type      lexer.Token
	ArrayExpr *Expr
}

func (*NewRValue) isRValue() {}

func (v *NewRValue) FirstToken() lexer.Token { return v.Type }

// VarRef is one step of a dotted access path: a variable or field name,
// optionally an array index, and — when it names a method — its call
// arguments.
type VarRef struct {
	Name         lexer.Token
	IsMethod     bool
	ArrayExpr    *Expr
	MethodParams []*Expr
}

// VarRValue is a dotted path of one or more VarRefs, e.g. `a.b[i].c()`.
type VarRValue struct {
	Path []VarRef
}

func (*VarRValue) isRValue() {}

func (v *VarRValue) FirstToken() lexer.Token { return v.Path[0].Name }
