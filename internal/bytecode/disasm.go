package bytecode

import (
	"fmt"
	"sort"
	"strings"
)

// Disassemble renders every frame registered with vm as
//
//	Frame 'name'
//	  0: OPCODE(operand)
//	  1: OPCODE(operand)
//
// Frames are listed in name order so output is deterministic across
// runs (the VM's own frame_info is an unordered map).
func Disassemble(vm *VM) string {
	names := make([]string, 0, len(vm.frameInfo))
	for name := range vm.frameInfo {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		info := vm.frameInfo[name]
		fmt.Fprintf(&b, "Frame '%s'\n", info.Name)
		for i, instr := range info.Instructions {
			fmt.Fprintf(&b, "  %d: %s\n", i, instr)
		}
	}
	return b.String()
}
