package bytecode

import "testing"

func TestInstruction_StringAlwaysShowsParens(t *testing.T) {
	cases := []struct {
		instr Instruction
		want  string
	}{
		{Instr(ADD), "ADD()"},
		{InstrOperand(PUSH, 5), "PUSH(5)"},
		{InstrOperand(CALL, "foo"), "CALL(foo)"},
		{InstrOperand(PUSH, nil), "PUSH()"},
	}
	for _, c := range cases {
		if got := c.instr.String(); got != c.want {
			t.Errorf("got %q, want %q", got, c.want)
		}
	}
}

func TestOpCode_StringUnknown(t *testing.T) {
	var op OpCode = 255
	if op.String() != "UNKNOWN" {
		t.Errorf("got %q, want UNKNOWN", op.String())
	}
}

func TestOpCode_StringKnown(t *testing.T) {
	if PUSH.String() != "PUSH" {
		t.Errorf("got %q, want PUSH", PUSH.String())
	}
	if GETMTH.String() != "GETMTH" {
		t.Errorf("got %q, want GETMTH", GETMTH.String())
	}
}
