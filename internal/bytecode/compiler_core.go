package bytecode

import (
	"github.com/cbozin/myPL/internal/ast"
)

// Compiler lowers a semantically checked Program into FrameInfos and
// registers them with a VM. It assumes its input has already passed
// checking: it does not re-validate types, arities, or visibility.
type Compiler struct {
	vm         *VM
	currFrame  FrameInfo
	varTable   *VarTable
	types      []map[string]ast.DataType // scoped in lock-step with varTable
	structDefs map[string]*ast.StructDef
	classDefs  map[string]*ast.ClassDef
}

// NewCompiler returns a Compiler that registers frames with vm.
func NewCompiler(vm *VM) *Compiler {
	return &Compiler{
		vm:         vm,
		varTable:   NewVarTable(),
		structDefs: map[string]*ast.StructDef{},
		classDefs:  map[string]*ast.ClassDef{},
	}
}

// Compile lowers every struct, class, and function of prog, registering
// one FrameInfo per function (and, for each class, one additional
// FrameInfo per private method — public methods are already present in
// prog.FunDefs via the parser's mirroring and are not compiled twice).
func (c *Compiler) Compile(prog *ast.Program) error {
	for _, s := range prog.StructDefs {
		c.structDefs[s.Name.Lexeme] = s
	}
	for _, cd := range prog.ClassDefs {
		c.classDefs[cd.Name.Lexeme] = cd
	}
	for _, f := range prog.FunDefs {
		if err := c.compileFunction(f); err != nil {
			return err
		}
	}
	for _, cd := range prog.ClassDefs {
		for _, m := range cd.PrivateMethods {
			if err := c.compileFunction(m); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *Compiler) pushScope() {
	c.varTable.PushEnvironment()
	c.types = append(c.types, map[string]ast.DataType{})
}

func (c *Compiler) popScope() {
	c.varTable.PopEnvironment()
	c.types = c.types[:len(c.types)-1]
}

func (c *Compiler) declare(name string, dt ast.DataType) {
	c.varTable.Add(name)
	c.types[len(c.types)-1][name] = dt
}

func (c *Compiler) lookupType(name string) (ast.DataType, bool) {
	for i := len(c.types) - 1; i >= 0; i-- {
		if dt, ok := c.types[i][name]; ok {
			return dt, true
		}
	}
	return ast.DataType{}, false
}

func (c *Compiler) emit(instrs ...Instruction) {
	c.currFrame.Instructions = append(c.currFrame.Instructions, instrs...)
}

func (c *Compiler) nextIndex() int {
	return len(c.currFrame.Instructions)
}

func (c *Compiler) patchJMP(at, target int) {
	c.currFrame.Instructions[at] = InstrOperand(JMP, target)
}

func (c *Compiler) patchJMPF(at, target int) {
	c.currFrame.Instructions[at] = InstrOperand(JMPF, target)
}

// isStruct reports whether typeName names a known struct (as opposed to
// a class or primitive), the distinction GETF/GETMEM lowering needs.
func (c *Compiler) isStruct(typeName string) bool {
	_, ok := c.structDefs[typeName]
	return ok
}

// stepType resolves the static type of one non-initial path step, given
// the static type of the previous step. The semantic checker has
// already proven every step resolves, so lookups here never fail.
func (c *Compiler) stepType(prevType ast.DataType, ref ast.VarRef) ast.DataType {
	if sd, ok := c.structDefs[prevType.TypeName]; ok {
		for _, f := range sd.Fields {
			if f.Name.Lexeme == ref.Name.Lexeme {
				return f.Type
			}
		}
	}
	if cd, ok := c.classDefs[prevType.TypeName]; ok {
		if ref.IsMethod {
			for _, m := range append(append([]*ast.FunDef{}, cd.PublicMethods...), cd.PrivateMethods...) {
				if m.Name.Lexeme == ref.Name.Lexeme {
					return m.ReturnType
				}
			}
		}
		for _, m := range append(append([]ast.VarDef{}, cd.PublicMembers...), cd.PrivateMembers...) {
			if m.Name.Lexeme == ref.Name.Lexeme {
				return m.Type
			}
		}
	}
	return ast.DataType{}
}

// compileFunction lowers one function or method body into a fresh
// FrameInfo and registers it with the VM. Methods are compiled exactly
// like free functions: there is no implicit receiver, matching the
// language's member-access model where a class body cannot read its
// own members by bare name (only a caller holding an instance can, via
// a dotted path).
func (c *Compiler) compileFunction(f *ast.FunDef) error {
	c.currFrame = FrameInfo{Name: f.Name.Lexeme, ArgCount: len(f.Params)}
	c.pushScope()

	for i, p := range f.Params {
		c.emit(InstrOperand(STORE, i))
		c.declare(p.Name.Lexeme, p.Type)
	}

	for _, stmt := range f.Stmts {
		if err := c.compileStmt(stmt); err != nil {
			return err
		}
	}

	if len(f.Stmts) == 0 || !endsInReturn(c.currFrame.Instructions) {
		c.emit(InstrOperand(PUSH, nil), Instr(RET))
	}

	c.popScope()
	c.vm.Add(c.currFrame)
	return nil
}

func endsInReturn(instrs []Instruction) bool {
	return len(instrs) > 0 && instrs[len(instrs)-1].Op == RET
}
