package semantic

import "github.com/cbozin/myPL/internal/ast"

// SymbolTable is a stack of lexical scopes, each mapping a variable name
// to its declared DataType. Lookups search from the innermost scope
// outward; declarations always land in the innermost scope.
type SymbolTable struct {
	envs []map[string]ast.DataType
}

// NewSymbolTable returns an empty table with no open scope. Push must be
// called before Add.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{}
}

// Push opens a new, innermost scope.
func (t *SymbolTable) Push() {
	t.envs = append(t.envs, map[string]ast.DataType{})
}

// Pop closes the innermost scope.
func (t *SymbolTable) Pop() {
	t.envs = t.envs[:len(t.envs)-1]
}

// Add declares name in the innermost scope.
func (t *SymbolTable) Add(name string, dt ast.DataType) {
	t.envs[len(t.envs)-1][name] = dt
}

// Get searches outward from the innermost scope for name.
func (t *SymbolTable) Get(name string) (ast.DataType, bool) {
	for i := len(t.envs) - 1; i >= 0; i-- {
		if dt, ok := t.envs[i][name]; ok {
			return dt, true
		}
	}
	return ast.DataType{}, false
}

// Exists reports whether name is visible from the innermost scope.
func (t *SymbolTable) Exists(name string) bool {
	_, ok := t.Get(name)
	return ok
}

// ExistsInCurrentEnv reports whether name is declared in the innermost
// scope specifically, used to reject shadowing within the same block.
func (t *SymbolTable) ExistsInCurrentEnv(name string) bool {
	_, ok := t.envs[len(t.envs)-1][name]
	return ok
}
