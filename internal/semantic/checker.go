// Package semantic implements static type and scope checking over an
// ast.Program. Checking is a single pass dispatched with type switches
// (rather than a Visitor interface): each AST node family gets one
// checkX method, and the "inferred type of whatever was checked last"
// is threaded through as a field on Checker rather than a return value,
// mirroring how the type-checking pass this package is modeled on
// accumulates a running current-type as it walks the tree.
package semantic

import (
	"fmt"

	"github.com/cbozin/myPL/internal/ast"
	"github.com/cbozin/myPL/internal/lexer"
)

var baseTypes = map[string]bool{
	"int": true, "double": true, "char": true, "string": true, "bool": true,
}

var builtins = map[string]bool{
	"print": true, "input": true, "to_string": true, "to_int": true,
	"to_double": true, "length": true, "get": true, "concat": true,
}

// Checker performs a single semantic-analysis pass over a Program.
type Checker struct {
	symtab     *SymbolTable
	currType   ast.DataType
	structDefs map[string]*ast.StructDef
	funDefs    map[string]*ast.FunDef
	classDefs  map[string]*ast.ClassDef
}

// NewChecker returns a Checker ready to check a single Program.
func NewChecker() *Checker {
	return &Checker{
		symtab:     NewSymbolTable(),
		structDefs: map[string]*ast.StructDef{},
		funDefs:    map[string]*ast.FunDef{},
		classDefs:  map[string]*ast.ClassDef{},
	}
}

// Check runs the full pass and returns the first StaticError found.
func (c *Checker) Check(prog *ast.Program) error {
	for _, d := range prog.StructDefs {
		name := d.Name.Lexeme
		if _, ok := c.structDefs[name]; ok {
			return newError(fmt.Sprintf("multiple definitions of '%s'", name), d.Name)
		}
		c.structDefs[name] = d
	}

	foundMain := false
	for _, f := range prog.FunDefs {
		name := f.Name.Lexeme
		if builtins[name] {
			return newError(fmt.Sprintf("redefining built-in function '%s'", name), f.Name)
		}
		if name == "main" {
			if f.ReturnType.TypeName != "void" {
				return newError("main function must have void type", f.Name)
			}
			if len(f.Params) != 0 {
				return newError("main function cannot have parameters", f.Params[0].Name)
			}
			foundMain = true
		}
		c.funDefs[name] = f
	}
	if !foundMain {
		return newErrorNoPos("program missing main function")
	}

	for _, cd := range prog.ClassDefs {
		name := cd.Name.Lexeme
		if _, ok := c.classDefs[name]; ok {
			return newError(fmt.Sprintf("multiple definitions of '%s'", name), cd.Name)
		}
		c.classDefs[name] = cd
	}

	for _, d := range prog.StructDefs {
		if err := c.checkStructDef(d); err != nil {
			return err
		}
	}
	for _, d := range prog.FunDefs {
		if err := c.checkFunDef(d); err != nil {
			return err
		}
	}
	for _, cd := range prog.ClassDefs {
		if err := c.checkClassDef(cd); err != nil {
			return err
		}
	}
	return nil
}

func (c *Checker) checkStructDef(s *ast.StructDef) error {
	c.symtab.Push()
	defer c.symtab.Pop()

	c.structDefs[s.Name.Lexeme] = s

	seen := map[string]bool{}
	for _, f := range s.Fields {
		if seen[f.Name.Lexeme] {
			return newError("multiple definitions of field", f.Name)
		}
		if f.Type.TypeName == "void" {
			return newError("null field in struct", f.Name)
		}
		seen[f.Name.Lexeme] = true
		if !baseTypes[f.Type.TypeName] {
			if _, ok := c.structDefs[f.Type.TypeName]; !ok {
				return newError("undefined type", f.Name)
			}
		}
	}
	return nil
}

func (c *Checker) checkFunDef(f *ast.FunDef) error {
	c.symtab.Push()
	defer c.symtab.Pop()

	c.symtab.Add("return", f.ReturnType)

	if !baseTypes[f.ReturnType.TypeName] && f.ReturnType.TypeName != "void" {
		if _, ok := c.structDefs[f.ReturnType.TypeName]; !ok {
			return newError("undefined function return type", f.Name)
		}
	}
	c.funDefs[f.Name.Lexeme] = f

	seen := map[string]bool{}
	for _, p := range f.Params {
		if seen[p.Name.Lexeme] {
			return newError("multiple definitions of parameter", p.Name)
		}
		if p.Type.TypeName == "void" {
			return newError("null field in struct", p.Name)
		}
		seen[p.Name.Lexeme] = true

		if !baseTypes[p.Type.TypeName] {
			_, isStruct := c.structDefs[p.Type.TypeName]
			_, isClass := c.classDefs[p.Type.TypeName]
			if !isStruct && !isClass {
				return newError("undefined type for parameter", p.Name)
			}
		}
		c.symtab.Add(p.Name.Lexeme, p.Type)
	}

	for _, s := range f.Stmts {
		if err := c.checkStmt(s); err != nil {
			return err
		}
	}
	return nil
}

func (c *Checker) checkClassDef(cd *ast.ClassDef) error {
	c.symtab.Push()
	defer c.symtab.Pop()

	c.classDefs[cd.Name.Lexeme] = cd

	members := map[string]bool{}
	methods := map[string]bool{}

	for _, bucket := range [][]ast.VarDef{cd.PrivateMembers, cd.PublicMembers} {
		for _, m := range bucket {
			if members[m.Name.Lexeme] {
				return newError("multiple definitions of data member", m.Name)
			}
			if m.Type.TypeName == "void" {
				return newError("null data member in class", m.Name)
			}
			members[m.Name.Lexeme] = true
			if !baseTypes[m.Type.TypeName] {
				_, isStruct := c.structDefs[m.Type.TypeName]
				_, isClass := c.classDefs[m.Type.TypeName]
				if !isStruct && !isClass {
					return newError("undefined type for data member", m.Name)
				}
			}
		}
	}

	for _, bucket := range [][]*ast.FunDef{cd.PublicMethods, cd.PrivateMethods} {
		for _, m := range bucket {
			if methods[m.Name.Lexeme] {
				return newError("multiple definitions of class method", m.Name)
			}
			methods[m.Name.Lexeme] = true
			if err := c.checkFunDef(m); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *Checker) checkStmt(s ast.Stmt) error {
	switch st := s.(type) {
	case *ast.ReturnStmt:
		return c.checkReturnStmt(st)
	case *ast.WhileStmt:
		return c.checkWhileStmt(st)
	case *ast.ForStmt:
		return c.checkForStmt(st)
	case *ast.IfStmt:
		return c.checkIfStmt(st)
	case *ast.VarDeclStmt:
		return c.checkVarDeclStmt(st)
	case *ast.AssignStmt:
		return c.checkAssignStmt(st)
	case *ast.CallExpr:
		return c.checkCallExpr(st)
	default:
		return fmt.Errorf("semantic: unhandled statement type %T", s)
	}
}

func (c *Checker) checkReturnStmt(s *ast.ReturnStmt) error {
	returnType, _ := c.symtab.Get("return")
	if err := c.checkExpr(s.Expr); err != nil {
		return err
	}
	if c.currType.TypeName != returnType.TypeName && c.currType.TypeName != "void" {
		return newError("incompatible function return type", s.Expr.FirstToken())
	}
	if c.currType.IsArray != returnType.IsArray {
		return newError("incompatible array function return type", s.Expr.FirstToken())
	}
	return nil
}

func (c *Checker) checkWhileStmt(s *ast.WhileStmt) error {
	c.symtab.Push()
	defer c.symtab.Pop()

	if err := c.checkExpr(s.Condition); err != nil {
		return err
	}
	if c.currType.TypeName != "bool" {
		return newError("while statement condition not bool type", s.Condition.FirstToken())
	}
	if c.currType.IsArray {
		return newError("while statement condition is an array", s.Condition.FirstToken())
	}
	for _, st := range s.Stmts {
		if err := c.checkStmt(st); err != nil {
			return err
		}
	}
	return nil
}

func (c *Checker) checkForStmt(s *ast.ForStmt) error {
	c.symtab.Push()
	defer c.symtab.Pop()

	if err := c.checkVarDeclStmt(s.VarDecl); err != nil {
		return err
	}
	if c.currType.TypeName != "int" && c.currType.TypeName != "void" {
		return newError("non-integer loop variable in for statement", s.Assign.Expr.FirstToken())
	}

	if err := c.checkExpr(s.Cond); err != nil {
		return err
	}
	if c.currType.TypeName != "bool" {
		return newError("for statement condition not bool type", s.Cond.FirstToken())
	}
	if c.currType.IsArray {
		return newError("for statement condition is an array", s.Cond.FirstToken())
	}

	if err := c.checkAssignStmt(s.Assign); err != nil {
		return err
	}
	if c.currType.TypeName != "int" {
		return newError("non-integer update in for statement", s.Assign.Expr.FirstToken())
	}

	for _, st := range s.Stmts {
		if err := c.checkStmt(st); err != nil {
			return err
		}
	}
	return nil
}

func (c *Checker) checkIfStmt(s *ast.IfStmt) error {
	if err := c.checkGuardedBlock(s.If); err != nil {
		return err
	}
	for _, elseIf := range s.ElseIfs {
		if err := c.checkGuardedBlock(elseIf); err != nil {
			return err
		}
	}
	if s.ElseStmts != nil {
		c.symtab.Push()
		defer c.symtab.Pop()
		for _, st := range s.ElseStmts {
			if err := c.checkStmt(st); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *Checker) checkGuardedBlock(b ast.BasicIf) error {
	if err := c.checkExpr(b.Condition); err != nil {
		return err
	}
	if c.currType.TypeName != "bool" {
		return newError("if statement condition not bool type", b.Condition.FirstToken())
	}
	if c.currType.IsArray {
		return newError("if statement condition is an array", b.Condition.FirstToken())
	}
	c.symtab.Push()
	defer c.symtab.Pop()
	for _, st := range b.Stmts {
		if err := c.checkStmt(st); err != nil {
			return err
		}
	}
	return nil
}

func (c *Checker) checkVarDeclStmt(s *ast.VarDeclStmt) error {
	lhsType := s.VarDef.Type
	if !baseTypes[lhsType.TypeName] {
		_, isStruct := c.structDefs[lhsType.TypeName]
		_, isClass := c.classDefs[lhsType.TypeName]
		if !isStruct && !isClass {
			return newError("undefined variable type", s.VarDef.Name)
		}
	}
	if c.symtab.ExistsInCurrentEnv(s.VarDef.Name.Lexeme) {
		return newError("variable previously declared in current scope", s.VarDef.Name)
	}

	if err := c.checkExpr(s.Expr); err != nil {
		return err
	}

	if s.Expr.Op != nil {
		opVal := s.Expr.Op.Lexeme
		if opVal != "+" && opVal != "-" && opVal != "*" && opVal != "/" {
			if lhsType.TypeName != "bool" {
				return newError("boolean expression assigned to non-bool variable", s.VarDef.Name)
			}
		}
	} else if c.currType.TypeName != lhsType.TypeName {
		if c.currType.TypeName != "void" {
			return newError("mismatched types in variable declaration", s.VarDef.Name)
		}
	}

	if c.currType.TypeName != "void" && c.currType.IsArray != lhsType.IsArray {
		return newError("mismatched array types in variable declaration", s.VarDef.Name)
	}

	c.symtab.Add(s.VarDef.Name.Lexeme, lhsType)
	return nil
}

func (c *Checker) checkAssignStmt(s *ast.AssignStmt) error {
	var lhsType ast.DataType
	for i, ref := range s.LValue {
		if i == 0 {
			t, ok := c.symtab.Get(ref.Name.Lexeme)
			if !ok {
				return newError("undefined variable on left-hand side of assignment", s.Expr.FirstToken())
			}
			lhsType = t
		} else {
			nextType, err := c.resolvePathStep(lhsType, ref, s.LValue[i-1].Name)
			if err != nil {
				return err
			}
			lhsType = nextType
		}

		if ref.ArrayExpr != nil {
			if !lhsType.IsArray {
				return newError("indexing a non-array value in assignment", s.Expr.FirstToken())
			}
			if err := c.checkExpr(ref.ArrayExpr); err != nil {
				return err
			}
			if c.currType.TypeName != "int" {
				return newError("non-integer index in assignment", s.Expr.FirstToken())
			}
			lhsType.IsArray = false
		}
	}

	if err := c.checkExpr(s.Expr); err != nil {
		return err
	}

	if lhsType.TypeName != c.currType.TypeName {
		if c.currType.TypeName != "void" {
			return newError("mismatched types in assignment", s.Expr.FirstToken())
		}
		c.currType = ast.DataType{IsArray: c.currType.IsArray, TypeName: lhsType.TypeName}
	}
	if lhsType.IsArray != c.currType.IsArray {
		return newError("mismatched array types in assignment", s.Expr.FirstToken())
	}
	return nil
}

// resolvePathStep resolves one non-initial step of a dotted access path
// (a struct field, or a class member/method honoring visibility) given
// the type of the previous step. prevName is used only for the error
// naming an object that isn't a struct or class.
func (c *Checker) resolvePathStep(prevType ast.DataType, ref ast.VarRef, prevName lexer.Token) (ast.DataType, error) {
	if sd, ok := c.structDefs[prevType.TypeName]; ok {
		vd, ok := getField(sd, ref.Name.Lexeme)
		if !ok {
			return ast.DataType{}, newError("field does not exist", ref.Name)
		}
		return vd.Type, nil
	}
	if cd, ok := c.classDefs[prevType.TypeName]; ok {
		if !ref.IsMethod {
			if _, priv := getMember(cd, ref.Name.Lexeme, "private"); priv {
				return ast.DataType{}, newError("member is private", ref.Name)
			}
			vd, ok := getMember(cd, ref.Name.Lexeme, "public")
			if !ok {
				return ast.DataType{}, newError("public member does not exist", ref.Name)
			}
			return vd.Type, nil
		}
		if _, priv := getMethod(cd, ref.Name.Lexeme, "private"); priv {
			return ast.DataType{}, newError("method is private", ref.Name)
		}
		fd, ok := getMethod(cd, ref.Name.Lexeme, "public")
		if !ok {
			return ast.DataType{}, newError("public method does not exist", ref.Name)
		}
		return fd.ReturnType, nil
	}
	return ast.DataType{}, newError("non struct/class object in access path", prevName)
}

func (c *Checker) checkCallExpr(e *ast.CallExpr) error {
	switch e.FunName.Lexeme {
	case "print":
		if len(e.Args) != 1 {
			return newError("wrong number of arguments in print()", e.FirstToken())
		}
		if err := c.checkExpr(e.Args[0]); err != nil {
			return err
		}
		c.currType = ast.DataType{TypeName: "void"}

	case "input":
		if len(e.Args) != 0 {
			return newError("input() takes no arguments", e.FirstToken())
		}
		c.currType = ast.DataType{TypeName: "string"}

	case "to_string":
		if len(e.Args) != 1 {
			return newError("wrong number of arguments in to_string()", e.FirstToken())
		}
		if err := c.checkExpr(e.Args[0]); err != nil {
			return err
		}
		if c.currType.TypeName != "double" && c.currType.TypeName != "int" && c.currType.TypeName != "char" {
			return newError("non int/double/char argument in to_string()", e.FirstToken())
		}
		if c.currType.IsArray {
			return newError("array argument in to_string()", e.FirstToken())
		}
		c.currType = ast.DataType{TypeName: "string"}

	case "to_int":
		if len(e.Args) != 1 {
			return newError("wrong number of arguments in to_int()", e.FirstToken())
		}
		if err := c.checkExpr(e.Args[0]); err != nil {
			return err
		}
		if c.currType.TypeName != "string" && c.currType.TypeName != "double" {
			return newError("non string/double argument in to_int()", e.FirstToken())
		}
		if c.currType.IsArray {
			return newError("array argument in to_int()", e.FirstToken())
		}
		c.currType = ast.DataType{TypeName: "int"}

	case "to_double":
		if len(e.Args) != 1 {
			return newError("wrong number of arguments in to_double()", e.FirstToken())
		}
		if err := c.checkExpr(e.Args[0]); err != nil {
			return err
		}
		if c.currType.TypeName != "string" && c.currType.TypeName != "int" {
			return newError("non string/int argument in to_double()", e.FirstToken())
		}
		if c.currType.IsArray {
			return newError("array argument in to_double()", e.FirstToken())
		}
		c.currType = ast.DataType{TypeName: "double"}

	case "length":
		if len(e.Args) != 1 {
			return newError("wrong number of arguments in length()", e.FirstToken())
		}
		if err := c.checkExpr(e.Args[0]); err != nil {
			return err
		}
		if !c.currType.IsArray && c.currType.TypeName != "string" {
			return newError("non array/non string argument in length()", e.FirstToken())
		}
		if c.currType.IsArray {
			// Disambiguate the two runtime length operations for the
			// code generator, which otherwise cannot tell an array from
			// a string length call apart once type info is gone.
			e.FunName.Lexeme = "length@array"
		}
		c.currType = ast.DataType{TypeName: "int"}

	case "get":
		if len(e.Args) != 2 {
			return newError("wrong number of arguments in get()", e.FirstToken())
		}
		if err := c.checkExpr(e.Args[0]); err != nil {
			return err
		}
		if c.currType.TypeName != "int" || c.currType.IsArray {
			return newError("array or non-int argument in get()", e.FirstToken())
		}
		if err := c.checkExpr(e.Args[1]); err != nil {
			return err
		}
		if c.currType.TypeName != "string" || c.currType.IsArray {
			return newError("array or non-string argument in get()", e.FirstToken())
		}
		c.currType = ast.DataType{TypeName: "char"}

	case "concat":
		if len(e.Args) != 2 {
			return newError("wrong number of arguments in concat()", e.FirstToken())
		}
		if err := c.checkExpr(e.Args[0]); err != nil {
			return err
		}
		if c.currType.TypeName != "string" || c.currType.IsArray {
			return newError("array or non-string argument in concat()", e.FirstToken())
		}
		if err := c.checkExpr(e.Args[1]); err != nil {
			return err
		}
		if c.currType.TypeName != "string" || c.currType.IsArray {
			return newError("array or non-string argument in concat()", e.FirstToken())
		}
		c.currType = ast.DataType{TypeName: "string"}

	default:
		f, ok := c.funDefs[e.FunName.Lexeme]
		if !ok {
			return newError("undefined function call", e.FirstToken())
		}
		if len(e.Args) != len(f.Params) {
			return newError("function call with wrong number of parameters", e.FirstToken())
		}
		for i, arg := range e.Args {
			paramType := f.Params[i].Type
			if err := c.checkExpr(arg); err != nil {
				return err
			}
			if c.currType.TypeName != paramType.TypeName && c.currType.TypeName != "void" {
				return newError("function call parameter with incorrect type", arg.FirstToken())
			}
			if c.currType.IsArray != paramType.IsArray {
				return newError("function call parameter with incorrect array status", arg.FirstToken())
			}
		}
		c.currType = f.ReturnType
	}
	return nil
}

// checkExpr type-checks e, classifying its operator (if any) as
// arithmetic, relational, equality, or logical and validating both
// operand types and the shape of the right-leaning rest chain.
func (c *Checker) checkExpr(e *ast.Expr) error {
	if err := c.checkExprTerm(e.First); err != nil {
		return err
	}
	lhsType := c.currType

	if e.Op == nil {
		if e.Negated && c.currType.TypeName != "bool" {
			return newError("negated expression must be boolean", e.FirstToken())
		}
		return nil
	}

	if err := c.checkExpr(e.Rest); err != nil {
		return err
	}
	rhsType := c.currType
	opVal := e.Op.Lexeme

	switch {
	case isArithmeticOp(opVal):
		if lhsType.TypeName != "int" && lhsType.TypeName != "double" {
			return newError("illegal operand type in arithmetic expression", *e.Op)
		}
		if lhsType.IsArray || rhsType.IsArray {
			return newError("array type in arithmetic expression", e.FirstToken())
		}
		if e.Rest.Op != nil && !isArithmeticOp(e.Rest.Op.Lexeme) {
			return newError("non-arithmetic operator in arithmetic expression", *e.Rest.Op)
		}

	case isRelationalOp(opVal):
		if lhsType.TypeName != "int" && lhsType.TypeName != "double" &&
			lhsType.TypeName != "char" && lhsType.TypeName != "string" {
			return newError("illegal operand type in comparison expression", *e.Op)
		}
		if lhsType.IsArray || rhsType.IsArray {
			return newError("array type in comparison expression", e.FirstToken())
		}
		c.currType = ast.DataType{TypeName: "bool"}

	case isEqualityOp(opVal):
		if lhsType.TypeName != rhsType.TypeName && lhsType.TypeName != "void" && rhsType.TypeName != "void" {
			return newError("invalid type in equality expression", *e.Op)
		}
		if e.Rest.Op != nil {
			restOp := e.Rest.Op.Lexeme
			if isArithmeticOp(restOp) || isLogicalOp(restOp) {
				return newError("invalid operator in equality expression", *e.Rest.Op)
			}
		}
		c.currType = ast.DataType{TypeName: "bool"}

	case isLogicalOp(opVal):
		if e.Rest.Op != nil && isArithmeticOp(e.Rest.Op.Lexeme) {
			return newError("invalid operator in logical expression", *e.Rest.Op)
		}
		c.currType = ast.DataType{TypeName: "bool"}
	}

	if !isEqualityOp(opVal) && lhsType.TypeName != rhsType.TypeName {
		return newError("mismatched types in expression", *e.Op)
	}

	if e.Negated && c.currType.TypeName != "bool" {
		return newError("negated expression must be boolean", e.FirstToken())
	}
	return nil
}

func isArithmeticOp(op string) bool {
	return op == "+" || op == "-" || op == "*" || op == "/"
}

func isRelationalOp(op string) bool {
	return op == "<" || op == ">" || op == "<=" || op == ">="
}

func isEqualityOp(op string) bool {
	return op == "==" || op == "!="
}

func isLogicalOp(op string) bool {
	return op == "and" || op == "or"
}

func (c *Checker) checkExprTerm(t ast.ExprTerm) error {
	switch term := t.(type) {
	case *ast.SimpleTerm:
		return c.checkRValue(term.Value)
	case *ast.ComplexTerm:
		if err := c.checkExpr(term.Expr); err != nil {
			return err
		}
		if term.Expr.Op != nil && !isArithmeticOp(term.Expr.Op.Lexeme) {
			c.currType = ast.DataType{TypeName: "bool"}
		}
		return nil
	default:
		return fmt.Errorf("semantic: unhandled expression term type %T", t)
	}
}

func (c *Checker) checkRValue(v ast.RValue) error {
	switch rv := v.(type) {
	case *ast.SimpleRValue:
		c.currType = simpleValueType(rv.Value)
		return nil
	case *ast.NewRValue:
		return c.checkNewRValue(rv)
	case *ast.VarRValue:
		return c.checkVarRValue(rv)
	case *ast.CallExpr:
		return c.checkCallExpr(rv)
	default:
		return fmt.Errorf("semantic: unhandled rvalue type %T", v)
	}
}

func simpleValueType(tok lexer.Token) ast.DataType {
	switch tok.Type {
	case lexer.INT_VAL:
		return ast.DataType{TypeName: "int"}
	case lexer.DOUBLE_VAL:
		return ast.DataType{TypeName: "double"}
	case lexer.CHAR_VAL:
		return ast.DataType{TypeName: "char"}
	case lexer.STRING_VAL:
		return ast.DataType{TypeName: "string"}
	case lexer.BOOL_VAL:
		return ast.DataType{TypeName: "bool"}
	default: // NULL_VAL
		return ast.DataType{TypeName: "void"}
	}
}

func (c *Checker) checkNewRValue(v *ast.NewRValue) error {
	if v.ArrayExpr == nil {
		c.currType = ast.DataType{TypeName: v.Type.Lexeme}
		return nil
	}
	if err := c.checkExpr(v.ArrayExpr); err != nil {
		return err
	}
	if c.currType.TypeName != "int" {
		return newError("non-integer array length in new array", v.FirstToken())
	}
	c.currType = ast.DataType{IsArray: true, TypeName: v.Type.Lexeme}
	return nil
}

func (c *Checker) checkVarRValue(v *ast.VarRValue) error {
	var rhsType ast.DataType
	for i, ref := range v.Path {
		if i == 0 {
			t, ok := c.symtab.Get(ref.Name.Lexeme)
			if !ok {
				return newError("undefined variable", v.FirstToken())
			}
			rhsType = t
			continue
		}
		nextType, err := c.resolvePathStep(rhsType, ref, v.Path[i-1].Name)
		if err != nil {
			return err
		}
		rhsType = nextType
	}

	last := v.Path[len(v.Path)-1]
	if last.ArrayExpr != nil {
		if !rhsType.IsArray {
			return newError("indexing a non-array value", v.FirstToken())
		}
		if err := c.checkExpr(last.ArrayExpr); err != nil {
			return err
		}
		if c.currType.TypeName != "int" {
			return newError("non-integer index", v.FirstToken())
		}
		rhsType.IsArray = false
	}
	c.currType = rhsType
	return nil
}
