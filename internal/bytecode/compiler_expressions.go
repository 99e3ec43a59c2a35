package bytecode

import (
	"strconv"
	"strings"

	"github.com/cbozin/myPL/internal/ast"
	"github.com/cbozin/myPL/internal/lexer"
)

var binOps = map[string]OpCode{
	"+": ADD, "-": SUB, "*": MUL, "/": DIV,
	"<": CMPLT, "<=": CMPLE, ">": CMPGT, ">=": CMPGE,
	"==": CMPEQ, "!=": CMPNE, "and": AND, "or": OR,
}

// compileExpr lowers a right-leaning term chain. Each binary step pushes
// its left operand first, its right operand second, then emits the
// opcode, so the VM's "pop x (top/right) then y (next/left), push
// op(y, x)" convention reproduces the source's left-to-right operand
// order.
func (c *Compiler) compileExpr(e *ast.Expr) error {
	if err := c.compileExprTerm(e.First); err != nil {
		return err
	}
	if e.Op != nil {
		if err := c.compileExpr(e.Rest); err != nil {
			return err
		}
		op, ok := binOps[e.Op.Lexeme]
		if !ok {
			return newError("unknown operator '%s'", e.Op.Lexeme)
		}
		c.emit(Instr(op))
	}
	if e.Negated {
		c.emit(Instr(NOT))
	}
	return nil
}

func (c *Compiler) compileExprTerm(t ast.ExprTerm) error {
	switch term := t.(type) {
	case *ast.SimpleTerm:
		return c.compileRValue(term.Value)
	case *ast.ComplexTerm:
		return c.compileExpr(term.Expr)
	default:
		return newError("unsupported expression term")
	}
}

func (c *Compiler) compileRValue(v ast.RValue) error {
	switch rv := v.(type) {
	case *ast.SimpleRValue:
		return c.compileSimpleRValue(rv)
	case *ast.NewRValue:
		return c.compileNewRValue(rv)
	case *ast.VarRValue:
		_, err := c.compileVarRValue(rv)
		return err
	case *ast.CallExpr:
		return c.compileCallExpr(rv)
	default:
		return newError("unsupported rvalue")
	}
}

func (c *Compiler) compileSimpleRValue(v *ast.SimpleRValue) error {
	switch v.Value.Type {
	case lexer.INT_VAL:
		n, _ := strconv.Atoi(v.Value.Lexeme)
		c.emit(InstrOperand(PUSH, n))
	case lexer.DOUBLE_VAL:
		f, _ := strconv.ParseFloat(v.Value.Lexeme, 64)
		c.emit(InstrOperand(PUSH, f))
	case lexer.STRING_VAL, lexer.CHAR_VAL:
		s := v.Value.Lexeme
		s = strings.ReplaceAll(s, `\n`, "\n")
		s = strings.ReplaceAll(s, `\t`, "\t")
		c.emit(InstrOperand(PUSH, s))
	case lexer.BOOL_VAL:
		c.emit(InstrOperand(PUSH, v.Value.Lexeme == "true"))
	default: // null
		c.emit(InstrOperand(PUSH, nil))
	}
	return nil
}

// compileNewRValue lowers a struct, class, or array allocation. Struct
// and class instances are initialized field-by-field (private members
// before public, matching declaration order within each bucket) to null
// via ADDF/ADDMEM; methods are never materialized as heap entries, since
// they are addressed purely by name at CALL time.
func (c *Compiler) compileNewRValue(v *ast.NewRValue) error {
	typeName := v.Type.Lexeme

	if v.ArrayExpr != nil {
		if err := c.compileExpr(v.ArrayExpr); err != nil {
			return err
		}
		c.emit(InstrOperand(PUSH, nil))
		c.emit(Instr(ALLOCA))
		return nil
	}

	if sd, ok := c.structDefs[typeName]; ok {
		c.emit(Instr(ALLOCS))
		for _, f := range sd.Fields {
			c.emit(Instr(DUP), InstrOperand(ADDF, f.Name.Lexeme))
		}
		return nil
	}

	cd := c.classDefs[typeName]
	c.emit(Instr(ALLOCC))
	for _, m := range cd.PrivateMembers {
		c.emit(Instr(DUP), InstrOperand(ADDMEM, m.Name.Lexeme))
	}
	for _, m := range cd.PublicMembers {
		c.emit(Instr(DUP), InstrOperand(ADDMEM, m.Name.Lexeme))
	}
	return nil
}

// compileVarRValue lowers a dotted access path to a value, returning its
// static type so callers (e.g. array-of-struct element assignment) can
// keep disambiguating GETF from GETMEM. The container left over from
// navigating to the final step's owner is consumed by whichever
// GETF/GETMEM/GETI/CALL the step requires; nothing is left on the stack
// beyond the one resulting value.
func (c *Compiler) compileVarRValue(v *ast.VarRValue) (ast.DataType, error) {
	head := v.Path[0]
	slot := c.varTable.Get(head.Name.Lexeme)
	c.emit(InstrOperand(LOAD, slot))
	currType, _ := c.lookupType(head.Name.Lexeme)

	if head.ArrayExpr != nil {
		if err := c.compileExpr(head.ArrayExpr); err != nil {
			return ast.DataType{}, err
		}
		c.emit(Instr(GETI))
		currType.IsArray = false
	}

	for i := 1; i < len(v.Path); i++ {
		ref := v.Path[i]
		last := i == len(v.Path)-1

		if last && ref.IsMethod {
			c.emit(Instr(POP))
			for _, arg := range ref.MethodParams {
				if err := c.compileExpr(arg); err != nil {
					return ast.DataType{}, err
				}
			}
			c.emit(InstrOperand(CALL, ref.Name.Lexeme))
			currType = c.stepType(currType, ref)
			continue
		}

		op := GETMEM
		if c.isStruct(currType.TypeName) {
			op = GETF
		}
		c.emit(InstrOperand(op, ref.Name.Lexeme))
		currType = c.stepType(currType, ref)

		if ref.ArrayExpr != nil {
			if err := c.compileExpr(ref.ArrayExpr); err != nil {
				return ast.DataType{}, err
			}
			c.emit(Instr(GETI))
			currType.IsArray = false
		}
	}
	return currType, nil
}

// builtinOps maps a checked built-in call name (as rewritten by the
// semantic checker, e.g. "length@array") to its opcode. User-defined
// functions and methods fall through to CALL.
var builtinOps = map[string]OpCode{
	"print": WRITE, "input": READ,
	"to_string": TOSTR, "to_int": TOINT, "to_double": TODBL,
	"length": SLEN, "length@array": ALEN,
	"get": GETC, "concat": CONCAT,
}

func (c *Compiler) compileCallExpr(e *ast.CallExpr) error {
	for _, a := range e.Args {
		if err := c.compileExpr(a); err != nil {
			return err
		}
	}
	name := e.FunName.Lexeme
	if op, ok := builtinOps[name]; ok {
		c.emit(Instr(op))
		return nil
	}
	c.emit(InstrOperand(CALL, name))
	return nil
}
