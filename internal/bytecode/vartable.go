package bytecode

// VarTable is the code generator's slot allocator: a stack of
// environments mapping a variable name to its index into the running
// frame's variable array. Indices are handed out from a single
// monotonically increasing counter and are strictly nested: popping an
// environment rewinds the counter by that environment's size, so a
// sibling scope reuses the slots a previous sibling vacated.
type VarTable struct {
	envs []map[string]int
	next int
}

// NewVarTable returns an empty table with no open environment.
func NewVarTable() *VarTable {
	return &VarTable{}
}

// PushEnvironment opens a new, innermost environment.
func (t *VarTable) PushEnvironment() {
	t.envs = append(t.envs, map[string]int{})
}

// PopEnvironment closes the innermost environment and rewinds the slot
// counter by its size.
func (t *VarTable) PopEnvironment() {
	if t.Empty() {
		return
	}
	last := len(t.envs) - 1
	t.next -= len(t.envs[last])
	t.envs = t.envs[:last]
}

// Empty reports whether the table has no open environment.
func (t *VarTable) Empty() bool {
	return len(t.envs) == 0
}

// Add assigns the next free slot to name in the innermost environment.
func (t *VarTable) Add(name string) {
	if t.Empty() {
		return
	}
	t.envs[len(t.envs)-1][name] = t.next
	t.next++
}

// Get returns the slot index most recently bound to name, searching
// innermost-outward, or -1 if name is unbound.
func (t *VarTable) Get(name string) int {
	for i := len(t.envs) - 1; i >= 0; i-- {
		if idx, ok := t.envs[i][name]; ok {
			return idx
		}
	}
	return -1
}
