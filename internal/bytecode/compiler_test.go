package bytecode

import (
	"bytes"
	"testing"

	"github.com/cbozin/myPL/internal/lexer"
	"github.com/cbozin/myPL/internal/parser"
	"github.com/cbozin/myPL/internal/semantic"
)

// runSource lexes, parses, checks, compiles, and runs src, returning
// whatever it printed to stdout.
func runSource(t *testing.T, src string) (string, error) {
	t.Helper()
	prog, err := parser.New(lexer.New(src)).Parse()
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if err := semantic.NewChecker().Check(prog); err != nil {
		t.Fatalf("unexpected check error: %v", err)
	}
	vm := New()
	var out bytes.Buffer
	vm.stdout = &out
	if err := NewCompiler(vm).Compile(prog); err != nil {
		return "", err
	}
	runErr := vm.Run()
	return out.String(), runErr
}

func TestCompile_ArithmeticAndPrint(t *testing.T) {
	out, err := runSource(t, `
void main() {
  int x = 3
  int y = 4
  print(to_string(x + y))
}
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "7" {
		t.Fatalf("got %q, want %q", out, "7")
	}
}

func TestCompile_FunctionCall(t *testing.T) {
	out, err := runSource(t, `
int twice(int n) {
  return n + n
}
void main() {
  print(to_string(twice(21)))
}
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "42" {
		t.Fatalf("got %q, want %q", out, "42")
	}
}

func TestCompile_IfElseIfElseChain(t *testing.T) {
	src := `
void classify(int n) {
  if (n < 0) {
    print("neg")
  } elseif (n == 0) {
    print("zero")
  } else {
    print("pos")
  }
}
void main() {
  classify(0 - 1)
  classify(0)
  classify(1)
}
`
	out, err := runSource(t, src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "negzeropos" {
		t.Fatalf("got %q, want %q", out, "negzeropos")
	}
}

func TestCompile_WhileLoop(t *testing.T) {
	out, err := runSource(t, `
void main() {
  int n = 3
  while (n > 0) {
    print(to_string(n))
    n = n - 1
  }
}
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "321" {
		t.Fatalf("got %q, want %q", out, "321")
	}
}

func TestCompile_ForLoop(t *testing.T) {
	out, err := runSource(t, `
void main() {
  for (int i = 0; i < 3; i = i + 1) {
    print(to_string(i))
  }
}
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "012" {
		t.Fatalf("got %q, want %q", out, "012")
	}
}

func TestCompile_StructFieldAssignAndRead(t *testing.T) {
	out, err := runSource(t, `
struct Point { int x, int y }
void main() {
  Point p = new Point
  p.x = 5
  p.y = 7
  print(to_string(p.x + p.y))
}
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "12" {
		t.Fatalf("got %q, want %q", out, "12")
	}
}

func TestCompile_ArrayAllocAndAssign(t *testing.T) {
	out, err := runSource(t, `
void main() {
  array int xs = new int[3]
  xs[0] = 10
  xs[1] = 20
  print(to_string(xs[0] + xs[1]))
}
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "30" {
		t.Fatalf("got %q, want %q", out, "30")
	}
}

func TestCompile_ClassPublicMethodCall(t *testing.T) {
	out, err := runSource(t, `
class Counter {
  private:
    int count
  public:
    int peek() { return 41 }
}
void main() {
  Counter c = new Counter
  print(to_string(c.peek() + 1))
}
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "42" {
		t.Fatalf("got %q, want %q", out, "42")
	}
}

func TestCompile_ClassPublicMemberReadWrite(t *testing.T) {
	out, err := runSource(t, `
class Box {
  public:
    int value
}
void main() {
  Box b = new Box
  b.value = 9
  print(to_string(b.value))
}
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "9" {
		t.Fatalf("got %q, want %q", out, "9")
	}
}

func TestCompile_BuiltinStringOps(t *testing.T) {
	out, err := runSource(t, `
void main() {
  string s = concat("foo", "bar")
  print(to_string(length(s)))
}
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "6" {
		t.Fatalf("got %q, want %q", out, "6")
	}
}
