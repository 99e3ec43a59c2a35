// Package ast defines the abstract syntax tree produced by the parser.
//
// Nodes are plain structs connected by owned pointers (never shared or
// reference-counted); the handful of node families that have more than
// one shape (statements, expression terms, rvalues) are modeled as a
// small interface with a private marker method, dispatched with type
// switches in the semantic checker and code generator rather than a
// Visitor interface.
package ast

import "github.com/cbozin/myPL/internal/lexer"

// DataType names a declared type: a primitive or struct/class name,
// optionally as an array of that type.
type DataType struct {
	IsArray  bool
	TypeName string
}

// VarDef is a single name/type pair, as found in a parameter list, a
// struct's field list, or a variable declaration.
type VarDef struct {
	Type DataType
	Name lexer.Token
}

// Program is the root of the tree: the top-level declarations of a
// compilation unit, in source order. FunDefs additionally receives a
// copy of every public method of every ClassDef as the parser completes
// each class, so it lists every function reachable without a receiver.
type Program struct {
	StructDefs []*StructDef
	FunDefs    []*FunDef
	ClassDefs  []*ClassDef
}

// StructDef declares a struct type and its fields.
type StructDef struct {
	Name   lexer.Token
	Fields []VarDef
}

// FunDef declares a function or method: its signature and body.
type FunDef struct {
	ReturnType DataType
	Name       lexer.Token
	Params     []VarDef
	Stmts      []Stmt
}

// ClassDef declares a single-level class: two independent visibility
// buckets for methods and for data members, with no inheritance.
type ClassDef struct {
	Name           lexer.Token
	PublicMethods  []*FunDef
	PublicMembers  []VarDef
	PrivateMethods []*FunDef
	PrivateMembers []VarDef
}
