package ast

import "github.com/cbozin/myPL/internal/lexer"

// Stmt is any statement: variable declaration, assignment, control flow,
// return, or a bare call used for its side effect.
type Stmt interface {
	isStmt()
}

// ReturnStmt returns a value (or, for void functions, an unused literal
// expression) from the enclosing function.
type ReturnStmt struct {
	Expr *Expr
}

func (*ReturnStmt) isStmt() {}

// WhileStmt loops while Condition evaluates true.
type WhileStmt struct {
	Condition *Expr
	Stmts     []Stmt
}

func (*WhileStmt) isStmt() {}

// VarDeclStmt introduces a new local variable, initialized by Expr.
type VarDeclStmt struct {
	VarDef VarDef
	Expr   *Expr
}

func (*VarDeclStmt) isStmt() {}

// AssignStmt stores Expr's value along the path named by LValue.
type AssignStmt struct {
	LValue []VarRef
	Expr   *Expr
}

func (*AssignStmt) isStmt() {}

// ForStmt is a C-style loop: an initializing declaration, a condition,
// and a per-iteration assignment, scoped to the loop body.
type ForStmt struct {
	VarDecl *VarDeclStmt
	Cond    *Expr
	Assign  *AssignStmt
	Stmts   []Stmt
}

func (*ForStmt) isStmt() {}

// BasicIf is one guarded block: used for the leading `if` and for each
// `elseif`.
type BasicIf struct {
	Condition *Expr
	Stmts     []Stmt
}

// IfStmt is an if/elseif*/else chain.
type IfStmt struct {
	If        BasicIf
	ElseIfs   []BasicIf
	ElseStmts []Stmt
}

func (*IfStmt) isStmt() {}

// CallExpr is both a statement (a call made for its side effect) and an
// rvalue (a call used for its result), matching the two grammar
// positions a function/method call can appear in.
type CallExpr struct {
	FunName lexer.Token
	Args    []*Expr
}

func (*CallExpr) isStmt()   {}
func (*CallExpr) isRValue() {}

func (c *CallExpr) FirstToken() lexer.Token { return c.FunName }
