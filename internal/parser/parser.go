// Package parser implements a recursive-descent parser that builds an
// ast.Program from a token stream. Lookahead beyond the current token is
// limited to a handful of spots (distinguishing a call from a variable
// reference, a declaration from an assignment, a method from a member)
// and is always resolved by saving the current token before calling
// advance, never by a general backtracking mechanism.
package parser

import (
	"github.com/cbozin/myPL/internal/ast"
	"github.com/cbozin/myPL/internal/lexer"
)

// Parser consumes tokens from a lexer.Lexer and produces an ast.Program.
type Parser struct {
	lex *lexer.Lexer
	cur lexer.Token
}

// New creates a Parser reading from l.
func New(l *lexer.Lexer) *Parser {
	return &Parser{lex: l}
}

// Parse consumes the entire token stream and returns the resulting
// Program, or the first LexerError or ParserError encountered.
func (p *Parser) Parse() (*ast.Program, error) {
	prog := &ast.Program{}
	if err := p.advance(); err != nil {
		return nil, err
	}
	for !p.match(lexer.EOS) {
		switch {
		case p.match(lexer.STRUCT):
			if err := p.structDef(prog); err != nil {
				return nil, err
			}
		case p.match(lexer.CLASS):
			if err := p.classDef(prog); err != nil {
				return nil, err
			}
		default:
			if err := p.funDef(prog); err != nil {
				return nil, err
			}
		}
	}
	if err := p.eat(lexer.EOS, "expecting end-of-file,"); err != nil {
		return nil, err
	}
	return prog, nil
}

func (p *Parser) advance() error {
	tok, err := p.lex.NextToken()
	if err != nil {
		return err
	}
	p.cur = tok
	return nil
}

func (p *Parser) match(types ...lexer.TokenType) bool {
	for _, t := range types {
		if p.cur.Type == t {
			return true
		}
	}
	return false
}

func (p *Parser) eat(t lexer.TokenType, msg string) error {
	if !p.match(t) {
		return newError(p.cur, msg)
	}
	return p.advance()
}

func (p *Parser) errorf(format string, args ...any) error {
	return newError(p.cur, format, args...)
}

func (p *Parser) binOp() bool {
	return p.match(lexer.PLUS, lexer.MINUS, lexer.TIMES, lexer.DIVIDE,
		lexer.AND, lexer.OR, lexer.EQUAL, lexer.LESS, lexer.GREATER,
		lexer.LESS_EQ, lexer.GREATER_EQ, lexer.NOT_EQUAL)
}

func (p *Parser) baseType() bool {
	return p.match(lexer.INT_TYPE, lexer.DOUBLE_TYPE, lexer.BOOL_TYPE,
		lexer.CHAR_TYPE, lexer.STRING_TYPE)
}

func (p *Parser) baseRValue() bool {
	return p.match(lexer.INT_VAL, lexer.DOUBLE_VAL, lexer.BOOL_VAL,
		lexer.CHAR_VAL, lexer.STRING_VAL)
}

// structDef parses `struct ID { fields }`.
func (p *Parser) structDef(prog *ast.Program) error {
	if err := p.eat(lexer.STRUCT, "expecting 'struct'"); err != nil {
		return err
	}
	name := p.cur
	if err := p.eat(lexer.ID, "expecting struct name"); err != nil {
		return err
	}
	if err := p.eat(lexer.LBRACE, "expecting '{'"); err != nil {
		return err
	}
	fields, err := p.fieldList()
	if err != nil {
		return err
	}
	if err := p.eat(lexer.RBRACE, "expecting '}'"); err != nil {
		return err
	}
	prog.StructDefs = append(prog.StructDefs, &ast.StructDef{Name: name, Fields: fields})
	return nil
}

func (p *Parser) fieldList() ([]ast.VarDef, error) {
	var fields []ast.VarDef
	if p.match(lexer.RBRACE) {
		return fields, nil
	}
	for {
		dt, err := p.dataType()
		if err != nil {
			return nil, err
		}
		if !p.match(lexer.ID) {
			return nil, p.errorf("expecting field name,")
		}
		fields = append(fields, ast.VarDef{Type: dt, Name: p.cur})
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.match(lexer.RBRACE) {
			return fields, nil
		}
		if err := p.eat(lexer.COMMA, "expecting ','"); err != nil {
			return nil, err
		}
	}
}

// funDef parses a free function and appends it to prog.FunDefs.
func (p *Parser) funDef(prog *ast.Program) error {
	f := &ast.FunDef{}
	rt, err := p.returnType()
	if err != nil {
		return err
	}
	f.ReturnType = rt

	f.Name = p.cur
	if err := p.eat(lexer.ID, "expecting function name"); err != nil {
		return err
	}
	if err := p.eat(lexer.LPAREN, "expecting '('"); err != nil {
		return err
	}
	params, err := p.paramList()
	if err != nil {
		return err
	}
	f.Params = params
	if err := p.eat(lexer.RPAREN, "expecting ')'"); err != nil {
		return err
	}
	stmts, err := p.block()
	if err != nil {
		return err
	}
	f.Stmts = stmts
	prog.FunDefs = append(prog.FunDefs, f)
	return nil
}

// returnType parses a function/method return type: VOID_TYPE or a data type.
func (p *Parser) returnType() (ast.DataType, error) {
	if p.match(lexer.VOID_TYPE) {
		dt := ast.DataType{TypeName: p.cur.Lexeme}
		return dt, p.advance()
	}
	return p.dataType()
}

// block parses `{ stmt* }`, consuming both braces and erroring on
// end-of-stream before the closing one.
func (p *Parser) block() ([]ast.Stmt, error) {
	if err := p.eat(lexer.LBRACE, "expecting '{'"); err != nil {
		return nil, err
	}
	var stmts []ast.Stmt
	for !p.match(lexer.RBRACE) && !p.match(lexer.EOS) {
		s, err := p.stmt()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
	}
	if p.match(lexer.EOS) {
		return nil, p.errorf("expecting '}' before end-of-file,")
	}
	return stmts, p.eat(lexer.RBRACE, "expecting '}'")
}

func (p *Parser) dataType() (ast.DataType, error) {
	var dt ast.DataType
	switch {
	case p.baseType(), p.match(lexer.ID):
		dt.TypeName = p.cur.Lexeme
		return dt, p.advance()
	case p.match(lexer.ARRAY):
		dt.IsArray = true
		if err := p.advance(); err != nil {
			return dt, err
		}
		if !p.baseType() && !p.match(lexer.ID) {
			return dt, p.errorf("expecting array element type")
		}
		dt.TypeName = p.cur.Lexeme
		return dt, p.advance()
	case p.match(lexer.VOID_TYPE):
		dt.TypeName = p.cur.Lexeme
		return dt, p.advance()
	}
	return dt, p.errorf("expecting a type")
}

func (p *Parser) paramList() ([]ast.VarDef, error) {
	var params []ast.VarDef
	if p.match(lexer.RPAREN) {
		return params, nil
	}
	for {
		dt, err := p.dataType()
		if err != nil {
			return nil, err
		}
		if !p.match(lexer.ID) {
			return nil, p.errorf("expecting parameter name,")
		}
		params = append(params, ast.VarDef{Type: dt, Name: p.cur})
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.match(lexer.RPAREN) {
			return params, nil
		}
		if err := p.eat(lexer.COMMA, "expecting ','"); err != nil {
			return nil, err
		}
	}
}

// classDef parses `class ID { (public|private) : member* }*` and appends
// every public method it collects to prog.FunDefs as well as to the
// ClassDef itself, so the rest of the pipeline can reach it by name
// without a receiver.
func (p *Parser) classDef(prog *ast.Program) error {
	if err := p.eat(lexer.CLASS, "expecting 'class'"); err != nil {
		return err
	}
	c := &ast.ClassDef{Name: p.cur}
	if err := p.eat(lexer.ID, "expecting class name"); err != nil {
		return err
	}
	if err := p.eat(lexer.LBRACE, "expecting '{'"); err != nil {
		return err
	}
	if err := p.classBody(c); err != nil {
		return err
	}
	if err := p.eat(lexer.RBRACE, "expecting '}'"); err != nil {
		return err
	}
	prog.ClassDefs = append(prog.ClassDefs, c)
	prog.FunDefs = append(prog.FunDefs, c.PublicMethods...)
	return nil
}

func (p *Parser) classBody(c *ast.ClassDef) error {
	for !p.match(lexer.RBRACE) {
		if !p.match(lexer.PUBLIC, lexer.PRIVATE) {
			return p.errorf("expecting 'public' or 'private'")
		}
		private := p.match(lexer.PRIVATE)
		if err := p.advance(); err != nil {
			return err
		}
		if err := p.eat(lexer.COLON, "expecting ':'"); err != nil {
			return err
		}
		for !p.match(lexer.PUBLIC, lexer.PRIVATE, lexer.RBRACE) {
			rt, err := p.returnType()
			if err != nil {
				return err
			}
			name := p.cur
			if err := p.eat(lexer.ID, "expecting a name"); err != nil {
				return err
			}
			if p.match(lexer.LPAREN) {
				f := &ast.FunDef{ReturnType: rt, Name: name}
				if err := p.classMethod(f); err != nil {
					return err
				}
				if private {
					c.PrivateMethods = append(c.PrivateMethods, f)
				} else {
					c.PublicMethods = append(c.PublicMethods, f)
				}
			} else {
				v := ast.VarDef{Type: rt, Name: name}
				if private {
					c.PrivateMembers = append(c.PrivateMembers, v)
				} else {
					c.PublicMembers = append(c.PublicMembers, v)
				}
			}
		}
	}
	return nil
}

func (p *Parser) classMethod(f *ast.FunDef) error {
	if err := p.eat(lexer.LPAREN, "expecting '('"); err != nil {
		return err
	}
	params, err := p.paramList()
	if err != nil {
		return err
	}
	f.Params = params
	if err := p.eat(lexer.RPAREN, "expecting ')'"); err != nil {
		return err
	}
	stmts, err := p.block()
	if err != nil {
		return err
	}
	f.Stmts = stmts
	return nil
}

// stmt parses a single statement, dispatching on the leading token with
// up to two tokens of lookahead for the ID-initial cases (call, var
// decl, assignment).
func (p *Parser) stmt() (ast.Stmt, error) {
	switch {
	case p.match(lexer.IF):
		return p.ifStmt()
	case p.match(lexer.WHILE):
		return p.whileStmt()
	case p.match(lexer.FOR):
		return p.forStmt()
	case p.match(lexer.RETURN):
		return p.retStmt()
	case p.match(lexer.ID):
		return p.idInitialStmt()
	default:
		return p.declStmt()
	}
}

// idInitialStmt resolves the three statement forms that can start with an
// identifier: `f(...)`, `T x = e`, and `x[...]. ... = e`.
func (p *Parser) idInitialStmt() (ast.Stmt, error) {
	tok := p.cur
	if err := p.advance(); err != nil {
		return nil, err
	}
	switch {
	case p.match(lexer.LPAREN):
		call := &ast.CallExpr{FunName: tok}
		if err := p.callArgs(call); err != nil {
			return nil, err
		}
		return call, nil
	case p.match(lexer.ID):
		return p.varDeclStmtRest(ast.DataType{TypeName: tok.Lexeme})
	case p.match(lexer.DOT, lexer.LBRACKET, lexer.ASSIGN):
		return p.assignStmtRest(ast.VarRef{Name: tok})
	default:
		return nil, p.errorf("expecting '(', a name, or an assignment,")
	}
}

// declStmt parses a variable declaration that does not begin with a bare
// identifier type name (base types, array types, void is invalid here).
func (p *Parser) declStmt() (ast.Stmt, error) {
	dt, err := p.dataType()
	if err != nil {
		return nil, err
	}
	return p.varDeclStmtRest(dt)
}

// varDeclStmtRest parses `ID = expr` given the already-parsed type,
// matching the grammar's "vdecl_stmt assumes it starts on the name token".
func (p *Parser) varDeclStmtRest(dt ast.DataType) (ast.Stmt, error) {
	name := p.cur
	if err := p.eat(lexer.ID, "expecting variable name"); err != nil {
		return nil, err
	}
	if err := p.eat(lexer.ASSIGN, "expecting '='"); err != nil {
		return nil, err
	}
	e, err := p.expr()
	if err != nil {
		return nil, err
	}
	return &ast.VarDeclStmt{VarDef: ast.VarDef{Type: dt, Name: name}, Expr: e}, nil
}

// assignStmtRest parses the remainder of an lvalue path followed by
// `= expr`, given its first VarRef already identified.
func (p *Parser) assignStmtRest(first ast.VarRef) (ast.Stmt, error) {
	path := []ast.VarRef{first}
	for !p.match(lexer.ASSIGN) {
		switch {
		case p.match(lexer.DOT):
			if err := p.advance(); err != nil {
				return nil, err
			}
			name := p.cur
			if err := p.eat(lexer.ID, "expecting a field name"); err != nil {
				return nil, err
			}
			path = append(path, ast.VarRef{Name: name})
		case p.match(lexer.LBRACKET):
			if err := p.advance(); err != nil {
				return nil, err
			}
			idx, err := p.expr()
			if err != nil {
				return nil, err
			}
			path[len(path)-1].ArrayExpr = idx
			if err := p.eat(lexer.RBRACKET, "expecting ']'"); err != nil {
				return nil, err
			}
		default:
			return nil, p.errorf("expecting '.', '[', or '='")
		}
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	e, err := p.expr()
	if err != nil {
		return nil, err
	}
	return &ast.AssignStmt{LValue: path, Expr: e}, nil
}

func (p *Parser) ifStmt() (ast.Stmt, error) {
	stmt := &ast.IfStmt{}
	if err := p.eat(lexer.IF, "expecting 'if'"); err != nil {
		return nil, err
	}
	if err := p.eat(lexer.LPAREN, "expecting '('"); err != nil {
		return nil, err
	}
	cond, err := p.expr()
	if err != nil {
		return nil, err
	}
	if err := p.eat(lexer.RPAREN, "expecting ')'"); err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	stmt.If = ast.BasicIf{Condition: cond, Stmts: body}

	for p.match(lexer.ELSEIF) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.eat(lexer.LPAREN, "expecting '('"); err != nil {
			return nil, err
		}
		c, err := p.expr()
		if err != nil {
			return nil, err
		}
		if err := p.eat(lexer.RPAREN, "expecting ')'"); err != nil {
			return nil, err
		}
		b, err := p.block()
		if err != nil {
			return nil, err
		}
		stmt.ElseIfs = append(stmt.ElseIfs, ast.BasicIf{Condition: c, Stmts: b})
	}

	if p.match(lexer.ELSE) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		b, err := p.block()
		if err != nil {
			return nil, err
		}
		if b == nil {
			b = []ast.Stmt{}
		}
		stmt.ElseStmts = b
	}

	return stmt, nil
}

func (p *Parser) whileStmt() (ast.Stmt, error) {
	if err := p.eat(lexer.WHILE, "expecting 'while'"); err != nil {
		return nil, err
	}
	if err := p.eat(lexer.LPAREN, "expecting '('"); err != nil {
		return nil, err
	}
	cond, err := p.expr()
	if err != nil {
		return nil, err
	}
	if err := p.eat(lexer.RPAREN, "expecting ')'"); err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	return &ast.WhileStmt{Condition: cond, Stmts: body}, nil
}

func (p *Parser) forStmt() (ast.Stmt, error) {
	if err := p.eat(lexer.FOR, "expecting 'for'"); err != nil {
		return nil, err
	}
	if err := p.eat(lexer.LPAREN, "expecting '('"); err != nil {
		return nil, err
	}
	dt, err := p.dataType()
	if err != nil {
		return nil, err
	}
	decl, err := p.varDeclStmtRest(dt)
	if err != nil {
		return nil, err
	}
	if err := p.eat(lexer.SEMICOLON, "expecting ';'"); err != nil {
		return nil, err
	}
	cond, err := p.expr()
	if err != nil {
		return nil, err
	}
	if err := p.eat(lexer.SEMICOLON, "expecting ';'"); err != nil {
		return nil, err
	}
	name := p.cur
	if err := p.eat(lexer.ID, "expecting a variable name"); err != nil {
		return nil, err
	}
	assignStmt, err := p.assignStmtRest(ast.VarRef{Name: name})
	if err != nil {
		return nil, err
	}
	if err := p.eat(lexer.RPAREN, "expecting ')'"); err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	return &ast.ForStmt{
		VarDecl: decl.(*ast.VarDeclStmt),
		Cond:    cond,
		Assign:  assignStmt.(*ast.AssignStmt),
		Stmts:   body,
	}, nil
}

func (p *Parser) retStmt() (ast.Stmt, error) {
	if err := p.eat(lexer.RETURN, "expecting 'return'"); err != nil {
		return nil, err
	}
	e, err := p.expr()
	if err != nil {
		return nil, err
	}
	return &ast.ReturnStmt{Expr: e}, nil
}

// callArgs parses `( expr (, expr)* )?` given the leading '(' not yet
// consumed, filling call.Args.
func (p *Parser) callArgs(call *ast.CallExpr) error {
	if err := p.eat(lexer.LPAREN, "expecting '('"); err != nil {
		return err
	}
	if !p.match(lexer.RPAREN) {
		e, err := p.expr()
		if err != nil {
			return err
		}
		call.Args = append(call.Args, e)
		for !p.match(lexer.RPAREN) {
			if err := p.eat(lexer.COMMA, "expecting ','"); err != nil {
				return err
			}
			e, err := p.expr()
			if err != nil {
				return err
			}
			call.Args = append(call.Args, e)
		}
	}
	return p.advance()
}

// expr parses "not? term (binOp expr)?".
func (p *Parser) expr() (*ast.Expr, error) {
	e := &ast.Expr{}

	if p.match(lexer.NOT) {
		e.Negated = true
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.expr()
		if err != nil {
			return nil, err
		}
		e.First = inner.First
		e.Op = inner.Op
		e.Rest = inner.Rest
		return e, nil
	}

	if p.match(lexer.LPAREN) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.expr()
		if err != nil {
			return nil, err
		}
		if err := p.eat(lexer.RPAREN, "expecting ')'"); err != nil {
			return nil, err
		}
		e.First = &ast.ComplexTerm{Expr: inner}
	} else {
		rv, err := p.rvalue()
		if err != nil {
			return nil, err
		}
		e.First = &ast.SimpleTerm{Value: rv}
	}

	if p.binOp() {
		op := p.cur
		e.Op = &op
		if err := p.advance(); err != nil {
			return nil, err
		}
		rest, err := p.expr()
		if err != nil {
			return nil, err
		}
		e.Rest = rest
	}

	return e, nil
}

func (p *Parser) rvalue() (ast.RValue, error) {
	switch {
	case p.match(lexer.NULL_VAL):
		v := &ast.SimpleRValue{Value: p.cur}
		return v, p.advance()
	case p.match(lexer.NEW):
		return p.newRValue()
	case p.match(lexer.ID):
		tok := p.cur
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.match(lexer.LPAREN) {
			call := &ast.CallExpr{FunName: tok}
			return call, p.callArgs(call)
		}
		return p.varRValue(ast.VarRef{Name: tok})
	case p.baseRValue():
		v := &ast.SimpleRValue{Value: p.cur}
		return v, p.advance()
	}
	return nil, p.errorf("expecting a value")
}

func (p *Parser) newRValue() (ast.RValue, error) {
	if err := p.advance(); err != nil { // eat 'new'
		return nil, err
	}
	n := &ast.NewRValue{}
	if p.match(lexer.ID) {
		n.Type = p.cur
		if err := p.advance(); err != nil {
			return nil, err
		}
		if !p.match(lexer.LBRACKET) {
			return n, nil
		}
	} else if p.baseType() {
		n.Type = p.cur
		if err := p.advance(); err != nil {
			return nil, err
		}
	} else {
		return nil, p.errorf("expecting a type name")
	}
	if err := p.eat(lexer.LBRACKET, "expecting '['"); err != nil {
		return nil, err
	}
	e, err := p.expr()
	if err != nil {
		return nil, err
	}
	n.ArrayExpr = e
	return n, p.eat(lexer.RBRACKET, "expecting ']'")
}

// varRValue parses the remaining dotted/indexed/call-tail of a path whose
// first VarRef is already known.
func (p *Parser) varRValue(first ast.VarRef) (ast.RValue, error) {
	path := []ast.VarRef{first}
	for p.match(lexer.DOT, lexer.LBRACKET) {
		switch {
		case p.match(lexer.DOT):
			if err := p.advance(); err != nil {
				return nil, err
			}
			name := p.cur
			if err := p.eat(lexer.ID, "expecting a field or method name"); err != nil {
				return nil, err
			}
			path = append(path, ast.VarRef{Name: name})
		case p.match(lexer.LBRACKET):
			if err := p.advance(); err != nil {
				return nil, err
			}
			idx, err := p.expr()
			if err != nil {
				return nil, err
			}
			path[len(path)-1].ArrayExpr = idx
			if err := p.eat(lexer.RBRACKET, "expecting ']'"); err != nil {
				return nil, err
			}
		}
	}

	if p.match(lexer.LPAREN) {
		path[len(path)-1].IsMethod = true
		if err := p.advance(); err != nil {
			return nil, err
		}
		if !p.match(lexer.RPAREN) {
			e, err := p.expr()
			if err != nil {
				return nil, err
			}
			path[len(path)-1].MethodParams = append(path[len(path)-1].MethodParams, e)
			for !p.match(lexer.RPAREN) {
				if err := p.eat(lexer.COMMA, "expecting ','"); err != nil {
					return nil, err
				}
				e, err := p.expr()
				if err != nil {
					return nil, err
				}
				path[len(path)-1].MethodParams = append(path[len(path)-1].MethodParams, e)
			}
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
	}

	return &ast.VarRValue{Path: path}, nil
}
