package bytecode

import "fmt"

// arith applies op to two operands of matching static type (int or
// double, enforced by the semantic checker before code generation ever
// runs), preserving that type in the result.
func arith(op OpCode, x, y Value) (Value, error) {
	if xi, ok := x.(int); ok {
		yi := y.(int)
		switch op {
		case ADD:
			return xi + yi, nil
		case SUB:
			return xi - yi, nil
		case MUL:
			return xi * yi, nil
		case DIV:
			if yi == 0 {
				return nil, fmt.Errorf("division by zero")
			}
			return xi / yi, nil
		}
	}
	xf, yf := x.(float64), y.(float64)
	switch op {
	case ADD:
		return xf + yf, nil
	case SUB:
		return xf - yf, nil
	case MUL:
		return xf * yf, nil
	case DIV:
		return xf / yf, nil
	}
	return nil, fmt.Errorf("unsupported arithmetic opcode %s", op)
}

// compare applies a relational operator over two operands of the same
// static type: int, double, or string.
func compare(op OpCode, x, y Value) (Value, error) {
	switch a := x.(type) {
	case int:
		b := y.(int)
		return compareOrdered(op, a < b, a <= b, a > b, a >= b)
	case float64:
		b := y.(float64)
		return compareOrdered(op, a < b, a <= b, a > b, a >= b)
	case string:
		b := y.(string)
		return compareOrdered(op, a < b, a <= b, a > b, a >= b)
	}
	return nil, fmt.Errorf("unsupported comparison operand type")
}

func compareOrdered(op OpCode, lt, le, gt, ge bool) (Value, error) {
	switch op {
	case CMPLT:
		return lt, nil
	case CMPLE:
		return le, nil
	case CMPGT:
		return gt, nil
	case CMPGE:
		return ge, nil
	}
	return nil, fmt.Errorf("unsupported comparison opcode %s", op)
}

// valuesEqual implements CMPEQ's null-tolerant equality: null equals
// only null, and two non-null values are equal when their dynamic
// types and values match.
func valuesEqual(x, y Value) bool {
	if IsNull(x) || IsNull(y) {
		return IsNull(x) && IsNull(y)
	}
	return x == y
}
