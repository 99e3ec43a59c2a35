package lexer

import "testing"

func TestNextToken_Punctuation(t *testing.T) {
	src := `(){}[];:.,`
	want := []TokenType{LPAREN, RPAREN, LBRACE, RBRACE, LBRACKET, RBRACKET, SEMICOLON, COLON, DOT, COMMA, EOS}

	toks, err := Tokenize(src)
	if err != nil {
		t.Fatalf("Tokenize returned error: %v", err)
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(want), toks)
	}
	for i, tok := range toks {
		if tok.Type != want[i] {
			t.Errorf("token %d: got %s, want %s", i, tok.Type, want[i])
		}
	}
}

func TestNextToken_TwoCharOperators(t *testing.T) {
	cases := []struct {
		src  string
		want TokenType
	}{
		{"==", EQUAL},
		{"!=", NOT_EQUAL},
		{"<=", LESS_EQ},
		{">=", GREATER_EQ},
		{"<", LESS},
		{">", GREATER},
		{"=", ASSIGN},
	}
	for _, c := range cases {
		toks, err := Tokenize(c.src)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", c.src, err)
		}
		if toks[0].Type != c.want {
			t.Errorf("%q: got %s, want %s", c.src, toks[0].Type, c.want)
		}
	}
}

func TestNextToken_BangWithoutEquals(t *testing.T) {
	_, err := Tokenize("!x")
	if err == nil {
		t.Fatal("expected error for lone '!'")
	}
}

func TestNextToken_Identifiers(t *testing.T) {
	cases := []struct {
		src      string
		wantType TokenType
	}{
		{"x", ID},
		{"_count", ID},
		{"if", IF},
		{"elseif", ELSEIF},
		{"else", ELSE},
		{"while", WHILE},
		{"for", FOR},
		{"struct", STRUCT},
		{"array", ARRAY},
		{"class", CLASS},
		{"public", PUBLIC},
		{"private", PRIVATE},
		{"new", NEW},
		{"return", RETURN},
		{"and", AND},
		{"or", OR},
		{"not", NOT},
		{"int", INT_TYPE},
		{"double", DOUBLE_TYPE},
		{"bool", BOOL_TYPE},
		{"string", STRING_TYPE},
		{"char", CHAR_TYPE},
		{"void", VOID_TYPE},
		{"true", BOOL_VAL},
		{"false", BOOL_VAL},
		{"null", NULL_VAL},
	}
	for _, c := range cases {
		toks, err := Tokenize(c.src)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", c.src, err)
		}
		if toks[0].Type != c.wantType {
			t.Errorf("%q: got %s, want %s", c.src, toks[0].Type, c.wantType)
		}
	}
}

func TestNextToken_Integers(t *testing.T) {
	toks, err := Tokenize("0 7 123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"0", "7", "123"}
	for i, w := range want {
		if toks[i].Type != INT_VAL || toks[i].Lexeme != w {
			t.Errorf("token %d: got %s %q, want INT_VAL %q", i, toks[i].Type, toks[i].Lexeme, w)
		}
	}
}

func TestNextToken_LeadingZeroIsError(t *testing.T) {
	_, err := Tokenize("007")
	if err == nil {
		t.Fatal("expected leading-zero error")
	}
}

func TestNextToken_Doubles(t *testing.T) {
	toks, err := Tokenize("3.14 0.5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toks[0].Type != DOUBLE_VAL || toks[0].Lexeme != "3.14" {
		t.Errorf("got %s %q", toks[0].Type, toks[0].Lexeme)
	}
	if toks[1].Type != DOUBLE_VAL || toks[1].Lexeme != "0.5" {
		t.Errorf("got %s %q", toks[1].Type, toks[1].Lexeme)
	}
}

func TestNextToken_MissingDigitAfterDot(t *testing.T) {
	_, err := Tokenize("3.x")
	if err == nil {
		t.Fatal("expected missing-digit error")
	}
}

func TestNextToken_Strings(t *testing.T) {
	toks, err := Tokenize(`"hello world"`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toks[0].Type != STRING_VAL || toks[0].Lexeme != "hello world" {
		t.Errorf("got %s %q", toks[0].Type, toks[0].Lexeme)
	}
}

func TestNextToken_UnterminatedStringNewline(t *testing.T) {
	_, err := Tokenize("\"abc\ndef\"")
	if err == nil {
		t.Fatal("expected end-of-line-in-string error")
	}
}

func TestNextToken_UnterminatedStringEOF(t *testing.T) {
	_, err := Tokenize(`"abc`)
	if err == nil {
		t.Fatal("expected end-of-file-in-string error")
	}
}

func TestNextToken_Chars(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{`'a'`, "a"},
		{`' '`, " "},
		{`'\n'`, "\\n"},
		{`'\t'`, "\\t"},
	}
	for _, c := range cases {
		toks, err := Tokenize(c.src)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", c.src, err)
		}
		if toks[0].Type != CHAR_VAL || toks[0].Lexeme != c.want {
			t.Errorf("%q: got %s %q, want CHAR_VAL %q", c.src, toks[0].Type, toks[0].Lexeme, c.want)
		}
	}
}

func TestNextToken_EmptyCharIsError(t *testing.T) {
	_, err := Tokenize("''")
	if err == nil {
		t.Fatal("expected empty-char error")
	}
}

func TestNextToken_CommentsAreSkipped(t *testing.T) {
	toks, err := Tokenize("# a full line comment\nx # trailing comment\ny")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toks) != 3 || toks[0].Lexeme != "x" || toks[1].Lexeme != "y" || toks[2].Type != EOS {
		t.Fatalf("got %v", toks)
	}
}

func TestNextToken_LineAndColumnTracking(t *testing.T) {
	toks, err := Tokenize("x\n  y")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toks[0].Line != 1 || toks[0].Column != 1 {
		t.Errorf("x: got line %d column %d", toks[0].Line, toks[0].Column)
	}
	if toks[1].Line != 2 || toks[1].Column != 3 {
		t.Errorf("y: got line %d column %d", toks[1].Line, toks[1].Column)
	}
}
