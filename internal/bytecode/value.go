package bytecode

import "fmt"

// Value is a runtime value: an int, a double, a bool, a string, an
// object id (also an int, distinguished only by where it is used), or
// null. Go's nil stands in for the language's null.
type Value interface{}

// IsNull reports whether v is the language's null value.
func IsNull(v Value) bool {
	return v == nil
}

// ToDisplayString renders v the way WRITE and TOSTR do: no quoting, no
// type tag, fmt's default formatting for int/bool/string, and six decimal
// digits for float64 (see formatDouble).
func ToDisplayString(v Value) string {
	if IsNull(v) {
		return "null"
	}
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return formatDouble(x)
	default:
		return fmt.Sprintf("%v", x)
	}
}

// formatDouble matches C++'s std::to_string(double) precision (six
// decimal digits) rather than Go's shortest round-trip default, since
// TOSTR's output is observable program behavior.
func formatDouble(f float64) string {
	return fmt.Sprintf("%f", f)
}
