package lexer

import "fmt"

// TokenType identifies the lexical category of a Token. The set is closed:
// end-of-stream, identifiers, punctuation, operators, literal kinds,
// primitive type names, and reserved words.
type TokenType int

const (
	EOS TokenType = iota
	ID

	// punctuation
	DOT
	COMMA
	LPAREN
	RPAREN
	LBRACKET
	RBRACKET
	SEMICOLON
	LBRACE
	RBRACE
	COLON

	// operators
	PLUS
	MINUS
	TIMES
	DIVIDE
	ASSIGN

	// comparators
	LESS
	GREATER
	LESS_EQ
	GREATER_EQ
	EQUAL
	NOT_EQUAL

	// literal values
	INT_VAL
	DOUBLE_VAL
	CHAR_VAL
	STRING_VAL
	BOOL_VAL
	NULL_VAL

	// primitive type names
	INT_TYPE
	DOUBLE_TYPE
	BOOL_TYPE
	STRING_TYPE
	CHAR_TYPE
	VOID_TYPE

	// reserved words
	STRUCT
	ARRAY
	FOR
	WHILE
	IF
	ELSEIF
	ELSE
	AND
	OR
	NOT
	NEW
	RETURN
	CLASS
	PUBLIC
	PRIVATE
)

var tokenTypeNames = map[TokenType]string{
	EOS: "EOS", ID: "ID",
	DOT: "DOT", COMMA: "COMMA", LPAREN: "LPAREN", RPAREN: "RPAREN",
	LBRACKET: "LBRACKET", RBRACKET: "RBRACKET", SEMICOLON: "SEMICOLON",
	LBRACE: "LBRACE", RBRACE: "RBRACE", COLON: "COLON",
	PLUS: "PLUS", MINUS: "MINUS", TIMES: "TIMES", DIVIDE: "DIVIDE", ASSIGN: "ASSIGN",
	LESS: "LESS", GREATER: "GREATER", LESS_EQ: "LESS_EQ", GREATER_EQ: "GREATER_EQ",
	EQUAL: "EQUAL", NOT_EQUAL: "NOT_EQUAL",
	INT_VAL: "INT_VAL", DOUBLE_VAL: "DOUBLE_VAL", CHAR_VAL: "CHAR_VAL",
	STRING_VAL: "STRING_VAL", BOOL_VAL: "BOOL_VAL", NULL_VAL: "NULL_VAL",
	INT_TYPE: "INT_TYPE", DOUBLE_TYPE: "DOUBLE_TYPE", BOOL_TYPE: "BOOL_TYPE",
	STRING_TYPE: "STRING_TYPE", CHAR_TYPE: "CHAR_TYPE", VOID_TYPE: "VOID_TYPE",
	STRUCT: "STRUCT", ARRAY: "ARRAY", FOR: "FOR", WHILE: "WHILE", IF: "IF",
	ELSEIF: "ELSEIF", ELSE: "ELSE", AND: "AND", OR: "OR", NOT: "NOT", NEW: "NEW",
	RETURN: "RETURN", CLASS: "CLASS", PUBLIC: "PUBLIC", PRIVATE: "PRIVATE",
}

func (t TokenType) String() string {
	if s, ok := tokenTypeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// reserved maps a lowercase identifier lexeme to its reserved TokenType.
var reserved = map[string]TokenType{
	"struct": STRUCT, "array": ARRAY, "for": FOR, "while": WHILE, "if": IF,
	"elseif": ELSEIF, "else": ELSE, "and": AND, "or": OR, "not": NOT, "new": NEW,
	"return": RETURN, "class": CLASS, "public": PUBLIC, "private": PRIVATE,
	"int": INT_TYPE, "double": DOUBLE_TYPE, "bool": BOOL_TYPE,
	"string": STRING_TYPE, "char": CHAR_TYPE, "void": VOID_TYPE,
	"true": BOOL_VAL, "false": BOOL_VAL, "null": NULL_VAL,
}

// Token is a value type carrying a lexical kind, the matched source text,
// and its starting position.
type Token struct {
	Type   TokenType
	Lexeme string
	Line   int
	Column int
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q) at %d:%d", t.Type, t.Lexeme, t.Line, t.Column)
}
