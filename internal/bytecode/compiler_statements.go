package bytecode

import "github.com/cbozin/myPL/internal/ast"

func (c *Compiler) compileStmt(s ast.Stmt) error {
	switch st := s.(type) {
	case *ast.VarDeclStmt:
		return c.compileVarDeclStmt(st)
	case *ast.AssignStmt:
		return c.compileAssignStmt(st)
	case *ast.ReturnStmt:
		return c.compileReturnStmt(st)
	case *ast.WhileStmt:
		return c.compileWhileStmt(st)
	case *ast.ForStmt:
		return c.compileForStmt(st)
	case *ast.IfStmt:
		return c.compileIfStmt(st)
	case *ast.CallExpr:
		return c.compileCallExpr(st)
	default:
		return newError("unsupported statement")
	}
}

func (c *Compiler) compileVarDeclStmt(s *ast.VarDeclStmt) error {
	if err := c.compileExpr(s.Expr); err != nil {
		return err
	}
	slot := c.nextSlot()
	c.declare(s.VarDef.Name.Lexeme, s.VarDef.Type)
	c.emit(InstrOperand(STORE, slot))
	return nil
}

// nextSlot previews the slot a variable declared right now would get,
// matching the var table's own bookkeeping (VarDeclStmt declares after
// compiling its initializer, so the slot must be read before Add bumps
// the allocator).
func (c *Compiler) nextSlot() int {
	return c.varTable.next
}

func (c *Compiler) compileReturnStmt(s *ast.ReturnStmt) error {
	if err := c.compileExpr(s.Expr); err != nil {
		return err
	}
	c.emit(Instr(RET))
	return nil
}

func (c *Compiler) compileWhileStmt(s *ast.WhileStmt) error {
	start := c.nextIndex()
	if err := c.compileExpr(s.Condition); err != nil {
		return err
	}
	c.emit(InstrOperand(JMPF, 0))
	jmpfAt := c.nextIndex() - 1

	c.pushScope()
	for _, st := range s.Stmts {
		if err := c.compileStmt(st); err != nil {
			return err
		}
	}
	c.popScope()

	c.emit(InstrOperand(JMP, start), Instr(NOP))
	c.patchJMPF(jmpfAt, c.nextIndex())
	return nil
}

func (c *Compiler) compileForStmt(s *ast.ForStmt) error {
	c.pushScope()
	if err := c.compileVarDeclStmt(s.VarDecl); err != nil {
		return err
	}

	start := c.nextIndex()
	if err := c.compileExpr(s.Cond); err != nil {
		return err
	}
	c.emit(InstrOperand(JMPF, 0))
	jmpfAt := c.nextIndex() - 1

	c.pushScope()
	for _, st := range s.Stmts {
		if err := c.compileStmt(st); err != nil {
			return err
		}
	}
	c.popScope()

	if err := c.compileAssignStmt(s.Assign); err != nil {
		return err
	}
	c.popScope()

	c.emit(InstrOperand(JMP, start), Instr(NOP))
	c.patchJMPF(jmpfAt, c.nextIndex())
	return nil
}

// compileIfStmt lowers an if/elseif*/else chain with a single clean
// back-patch pass: each guarded block ends in a JMP to the chain's
// shared exit NOP, and each condition's JMPF targets the next block
// (or the exit, if it is the last).
func (c *Compiler) compileIfStmt(s *ast.IfStmt) error {
	var exitJmps []int

	blocks := append([]ast.BasicIf{s.If}, s.ElseIfs...)
	for _, block := range blocks {
		if err := c.compileExpr(block.Condition); err != nil {
			return err
		}
		c.emit(InstrOperand(JMPF, 0))
		jmpfAt := c.nextIndex() - 1

		c.pushScope()
		for _, st := range block.Stmts {
			if err := c.compileStmt(st); err != nil {
				return err
			}
		}
		c.popScope()

		c.emit(InstrOperand(JMP, 0))
		exitJmps = append(exitJmps, c.nextIndex()-1)

		c.emit(Instr(NOP))
		c.patchJMPF(jmpfAt, c.nextIndex()-1)
	}

	if s.ElseStmts != nil {
		c.pushScope()
		for _, st := range s.ElseStmts {
			if err := c.compileStmt(st); err != nil {
				return err
			}
		}
		c.popScope()
	}

	c.emit(Instr(NOP))
	exit := c.nextIndex() - 1
	for _, at := range exitJmps {
		c.patchJMP(at, exit)
	}
	return nil
}

// compileAssignStmt lowers a dotted lvalue path. For a bare variable it
// emits STORE directly; for a field/member/array target it navigates to
// the target's container, compiles the right-hand side, then emits
// SETF, SETMEM, or SETI as the final path step requires.
func (c *Compiler) compileAssignStmt(s *ast.AssignStmt) error {
	head := s.LValue[0]
	slot := c.varTable.Get(head.Name.Lexeme)
	headType, _ := c.lookupType(head.Name.Lexeme)

	if len(s.LValue) == 1 && head.ArrayExpr == nil {
		if err := c.compileExpr(s.Expr); err != nil {
			return err
		}
		c.emit(InstrOperand(STORE, slot))
		return nil
	}

	c.emit(InstrOperand(LOAD, slot))
	currType := headType
	if head.ArrayExpr != nil && len(s.LValue) > 1 {
		if err := c.compileExpr(head.ArrayExpr); err != nil {
			return err
		}
		c.emit(Instr(GETI))
		currType.IsArray = false
	}

	for i := 1; i < len(s.LValue)-1; i++ {
		ref := s.LValue[i]
		op := GETMEM
		if c.isStruct(currType.TypeName) {
			op = GETF
		}
		c.emit(Instr(DUP), InstrOperand(op, ref.Name.Lexeme))
		currType = c.stepType(currType, ref)
		if ref.ArrayExpr != nil {
			if err := c.compileExpr(ref.ArrayExpr); err != nil {
				return err
			}
			c.emit(Instr(GETI))
			currType.IsArray = false
		}
	}

	last := s.LValue[len(s.LValue)-1]

	if last.ArrayExpr != nil {
		if len(s.LValue) > 1 {
			op := GETMEM
			if c.isStruct(currType.TypeName) {
				op = GETF
			}
			c.emit(Instr(DUP), InstrOperand(op, last.Name.Lexeme))
		}
		if err := c.compileExpr(last.ArrayExpr); err != nil {
			return err
		}
		if err := c.compileExpr(s.Expr); err != nil {
			return err
		}
		c.emit(Instr(SETI))
		return nil
	}

	if err := c.compileExpr(s.Expr); err != nil {
		return err
	}
	op := SETMEM
	if c.isStruct(currType.TypeName) {
		op = SETF
	}
	c.emit(InstrOperand(op, last.Name.Lexeme))
	return nil
}
