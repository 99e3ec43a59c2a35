package bytecode

import (
	"bufio"
	"io"
	"os"
)

// heapObject is a class or struct instance: a name-keyed bag of
// mutable fields. Arrays get their own, differently-shaped heap.
type heapObject map[string]Value

// VM is a single-threaded stack machine. It owns the three object
// heaps, the table of compiled frames, and the streams print/input
// write to and read from.
type VM struct {
	structHeap map[int]heapObject
	arrayHeap  map[int][]Value
	classHeap  map[int]heapObject
	nextObjID  int

	frameInfo map[string]FrameInfo

	stdout io.Writer
	stdin  *bufio.Reader
}

// Option configures a VM at construction time.
type Option func(*VM)

// WithInitialObjectID overrides the default object id seed (2023). Tests
// that assert exact object ids use this to pin a deterministic start.
func WithInitialObjectID(n int) Option {
	return func(vm *VM) { vm.nextObjID = n }
}

// WithStdout redirects WRITE's output away from os.Stdout, for
// capturing program output in tests.
func WithStdout(w io.Writer) Option {
	return func(vm *VM) { vm.stdout = w }
}

// WithStdin redirects READ's input away from os.Stdin.
func WithStdin(r io.Reader) Option {
	return func(vm *VM) { vm.stdin = bufio.NewReader(r) }
}

// New returns a VM with empty heaps, object ids starting at 2023, and
// print/input wired to os.Stdout/os.Stdin.
func New(opts ...Option) *VM {
	vm := &VM{
		structHeap: map[int]heapObject{},
		arrayHeap:  map[int][]Value{},
		classHeap:  map[int]heapObject{},
		nextObjID:  2023,
		frameInfo:  map[string]FrameInfo{},
		stdout:     os.Stdout,
		stdin:      bufio.NewReader(os.Stdin),
	}
	for _, opt := range opts {
		opt(vm)
	}
	return vm
}

// Add registers a compiled frame, keyed by its function name. A later
// Add with the same name replaces the earlier one.
func (vm *VM) Add(info FrameInfo) {
	vm.frameInfo[info.Name] = info
}

// Frames returns the VM's registered frames, for disassembly.
func (vm *VM) Frames() map[string]FrameInfo {
	return vm.frameInfo
}

func (vm *VM) allocObjID() int {
	id := vm.nextObjID
	vm.nextObjID++
	return id
}
