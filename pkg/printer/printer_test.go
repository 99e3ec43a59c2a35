package printer

import (
	"strings"
	"testing"

	"github.com/cbozin/myPL/internal/lexer"
	"github.com/cbozin/myPL/internal/parser"
)

func printSource(t *testing.T, src string) string {
	t.Helper()
	prog, err := parser.New(lexer.New(src)).Parse()
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	return Print(prog)
}

func TestPrint_FunctionSignatureAndBody(t *testing.T) {
	out := printSource(t, `void main() { int x = 1 print(to_string(x)) }`)
	if !strings.Contains(out, "void main() {") {
		t.Errorf("missing signature, got:\n%s", out)
	}
	if !strings.Contains(out, "int x = 1") {
		t.Errorf("missing var decl, got:\n%s", out)
	}
}

func TestPrint_StructFieldsCommaSeparated(t *testing.T) {
	out := printSource(t, `struct Point { int x, int y }`)
	if !strings.Contains(out, "struct Point {") {
		t.Errorf("missing struct header, got:\n%s", out)
	}
	if !strings.Contains(out, "int x,") || !strings.Contains(out, "int y") {
		t.Errorf("missing fields, got:\n%s", out)
	}
}

func TestPrint_ClassSeparatesPublicAndPrivate(t *testing.T) {
	out := printSource(t, `
class Counter {
  private:
    int count
  public:
    int get() { return 1 }
}
`)
	if !strings.Contains(out, "private:") || !strings.Contains(out, "public:") {
		t.Errorf("expected both visibility sections, got:\n%s", out)
	}
	privIdx := strings.Index(out, "private:")
	pubIdx := strings.Index(out, "public:")
	if privIdx == -1 || pubIdx == -1 || privIdx > pubIdx {
		t.Errorf("expected private section before public, got:\n%s", out)
	}
}

func TestPrint_IfElseIfElse(t *testing.T) {
	out := printSource(t, `
void f() {
  if (true) { }
  elseif (false) { }
  else { }
}
`)
	if !strings.Contains(out, "if (") || !strings.Contains(out, "elseif (") || !strings.Contains(out, "} else {") {
		t.Errorf("expected full if/elseif/else chain, got:\n%s", out)
	}
}

func TestPrint_WhileAndForLoops(t *testing.T) {
	out := printSource(t, `
void f() {
  while (true) { }
  for (int i = 0; i < 10; i = i + 1) { }
}
`)
	if !strings.Contains(out, "while (true) {") {
		t.Errorf("missing while loop, got:\n%s", out)
	}
	if !strings.Contains(out, "for (int i = 0;") {
		t.Errorf("missing for loop, got:\n%s", out)
	}
}

func TestPrint_ArrayDeclarationAndIndex(t *testing.T) {
	out := printSource(t, `void main() { array int xs = new int[5] xs[0] = 1 }`)
	if !strings.Contains(out, "array int xs = new int[5]") {
		t.Errorf("missing array decl, got:\n%s", out)
	}
	if !strings.Contains(out, "xs[0] = 1") {
		t.Errorf("missing array index assign, got:\n%s", out)
	}
}

func TestPrint_IsIdempotentOnReparse(t *testing.T) {
	out := printSource(t, `void main() { int x = 1 print(to_string(x)) }`)
	reprinted := printSource(t, out)
	if out != reprinted {
		t.Errorf("printing is not stable across a reparse:\nfirst:\n%s\nsecond:\n%s", out, reprinted)
	}
}
