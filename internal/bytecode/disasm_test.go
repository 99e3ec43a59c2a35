package bytecode

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

func TestDisassemble_FramesSortedByName(t *testing.T) {
	vm := New()
	vm.Add(FrameInfo{Name: "zed", Instructions: []Instruction{Instr(RET)}})
	vm.Add(FrameInfo{Name: "alpha", Instructions: []Instruction{Instr(RET)}})

	snaps.MatchSnapshot(t, Disassemble(vm))
}

func TestDisassemble_MainWithAddFunction(t *testing.T) {
	vm := New()
	vm.Add(FrameInfo{
		Name:     "add",
		ArgCount: 2,
		Instructions: []Instruction{
			InstrOperand(STORE, 0),
			InstrOperand(STORE, 1),
			InstrOperand(LOAD, 1),
			InstrOperand(LOAD, 0),
			Instr(ADD),
			Instr(RET),
		},
	})
	vm.Add(FrameInfo{
		Name: "main",
		Instructions: []Instruction{
			InstrOperand(PUSH, 1),
			InstrOperand(PUSH, 2),
			InstrOperand(CALL, "add"),
			Instr(WRITE),
			InstrOperand(PUSH, nil),
			Instr(RET),
		},
	})

	snaps.MatchSnapshot(t, Disassemble(vm))
}
