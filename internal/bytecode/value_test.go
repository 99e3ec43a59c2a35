package bytecode

import "testing"

func TestToDisplayString(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{nil, "null"},
		{"hi", "hi"},
		{42, "42"},
		{true, "true"},
		{1.5, "1.500000"},
	}
	for _, c := range cases {
		if got := ToDisplayString(c.v); got != c.want {
			t.Errorf("ToDisplayString(%#v): got %q, want %q", c.v, got, c.want)
		}
	}
}

func TestIsNull(t *testing.T) {
	if !IsNull(nil) {
		t.Error("nil should be null")
	}
	if IsNull(0) {
		t.Error("0 should not be null")
	}
	if IsNull("") {
		t.Error("empty string should not be null")
	}
}
