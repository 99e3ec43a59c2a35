package semantic

import "github.com/cbozin/myPL/internal/ast"

// getField looks up a struct field by name.
func getField(sd *ast.StructDef, name string) (ast.VarDef, bool) {
	for _, f := range sd.Fields {
		if f.Name.Lexeme == name {
			return f, true
		}
	}
	return ast.VarDef{}, false
}

// getMember looks up a class data member by name within one of its two
// visibility buckets ("public" or "private").
func getMember(cd *ast.ClassDef, name, visibility string) (ast.VarDef, bool) {
	members := cd.PublicMembers
	if visibility == "private" {
		members = cd.PrivateMembers
	}
	for _, m := range members {
		if m.Name.Lexeme == name {
			return m, true
		}
	}
	return ast.VarDef{}, false
}

// getMethod looks up a class method by name within one of its two
// visibility buckets.
func getMethod(cd *ast.ClassDef, name, visibility string) (*ast.FunDef, bool) {
	methods := cd.PublicMethods
	if visibility == "private" {
		methods = cd.PrivateMethods
	}
	for _, m := range methods {
		if m.Name.Lexeme == name {
			return m, true
		}
	}
	return nil, false
}
