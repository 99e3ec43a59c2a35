package bytecode

import (
	"fmt"

	mplerrors "github.com/cbozin/myPL/internal/errors"
)

// VMError reports a failure raised while executing bytecode: a missing
// "main" frame, a null reference, an out-of-bounds index, or a failed
// string-to-number conversion. VMError carries no source position —
// by the time code reaches the VM, the originating token is gone — so
// it instead names the failing frame, program counter, and instruction.
type VMError struct {
	Message  string
	Frame    string
	PC       int
	Instr    string
	hasInstr bool
}

func (e *VMError) Error() string {
	msg := e.Message
	if e.hasInstr {
		msg = fmt.Sprintf("%s (in %s at %d: %s)", msg, e.Frame, e.PC, e.Instr)
	}
	return mplerrors.Format("VM Error", msg, mplerrors.Positioned{})
}

func newError(format string, args ...any) *VMError {
	return &VMError{Message: fmt.Sprintf(format, args...)}
}

func newFrameError(f *Frame, format string, args ...any) *VMError {
	pc := f.PC - 1
	return &VMError{
		Message:  fmt.Sprintf(format, args...),
		Frame:    f.Info.Name,
		PC:       pc,
		Instr:    f.Info.Instructions[pc].String(),
		hasInstr: true,
	}
}
