package interpreter

import "fmt"

// add implements ADD's semantics: numeric addition with Integer/Float
// promotion, string concatenation when both operands are strings, and a
// type error for any other string/numeric mix.
func add(a, b Value) (Value, error) {
	if a.Kind == KindString && b.Kind == KindString {
		return String(a.Str + b.Str), nil
	}
	if a.Kind == KindString || b.Kind == KindString {
		return Value{}, fmt.Errorf("Type mismatch in ADD")
	}
	if a.Kind == KindInteger && b.Kind == KindInteger {
		return Integer(a.Int + b.Int), nil
	}
	return Float(a.AsFloat() + b.AsFloat()), nil
}

// sub, mult implement SUB/MULT: numeric-only, Integer stays Integer unless
// either operand is Float.
func sub(a, b Value, stmt string) (Value, error) {
	if !a.IsNumeric() || !b.IsNumeric() {
		return Value{}, fmt.Errorf("Type mismatch in %s", stmt)
	}
	if a.Kind == KindInteger && b.Kind == KindInteger {
		return Integer(a.Int - b.Int), nil
	}
	return Float(a.AsFloat() - b.AsFloat()), nil
}

func mult(a, b Value, stmt string) (Value, error) {
	if !a.IsNumeric() || !b.IsNumeric() {
		return Value{}, fmt.Errorf("Type mismatch in %s", stmt)
	}
	if a.Kind == KindInteger && b.Kind == KindInteger {
		return Integer(a.Int * b.Int), nil
	}
	return Float(a.AsFloat() * b.AsFloat()), nil
}

// div implements DIV: Integer/Integer divides exactly to Integer when it
// divides evenly (truncation toward zero otherwise falls through to
// Float), any Float operand promotes to Float division. Division by zero
// (integer or float) is a runtime error.
func div(a, b Value) (Value, error) {
	if !a.IsNumeric() || !b.IsNumeric() {
		return Value{}, fmt.Errorf("Type mismatch in DIV")
	}
	if a.Kind == KindInteger && b.Kind == KindInteger {
		if b.Int == 0 {
			return Value{}, fmt.Errorf("Division by zero")
		}
		if a.Int%b.Int == 0 {
			return Integer(a.Int / b.Int), nil
		}
		return Float(float64(a.Int) / float64(b.Int)), nil
	}
	bf := b.AsFloat()
	if bf == 0 {
		return Value{}, fmt.Errorf("Division by zero")
	}
	return Float(a.AsFloat() / bf), nil
}

// compare returns -1, 0, or 1 comparing a and b, promoting Integer to Float
// when comparing numerics, and comparing Strings lexicographically on code
// points. Mixing String with numeric is a type error.
func compare(a, b Value) (int, error) {
	if a.Kind == KindString && b.Kind == KindString {
		switch {
		case a.Str < b.Str:
			return -1, nil
		case a.Str > b.Str:
			return 1, nil
		default:
			return 0, nil
		}
	}
	if a.IsNumeric() && b.IsNumeric() {
		af, bf := a.AsFloat(), b.AsFloat()
		switch {
		case af < bf:
			return -1, nil
		case af > bf:
			return 1, nil
		default:
			return 0, nil
		}
	}
	return 0, fmt.Errorf("Type mismatch in comparison")
}

// evalComparison evaluates "a op b" to a boolean, per the CmpOp grammar.
func evalComparison(a Value, op string, b Value) (bool, error) {
	switch op {
	case "EQUAL":
		c, err := compare(a, b)
		if err != nil {
			// Equality/inequality of same-type non-comparable values still
			// requires type compatibility; surface the same type error.
			return false, err
		}
		return c == 0, nil
	case "NOT_EQUAL":
		c, err := compare(a, b)
		if err != nil {
			return false, err
		}
		return c != 0, nil
	case "LESS_THAN":
		c, err := compare(a, b)
		return c < 0, err
	case "LESS_THAN_OR_EQUAL":
		c, err := compare(a, b)
		return c <= 0, err
	case "GREATER_THAN":
		c, err := compare(a, b)
		return c > 0, err
	case "GREATER_THAN_OR_EQUAL":
		c, err := compare(a, b)
		return c >= 0, err
	default:
		return false, fmt.Errorf("unknown comparison operator %q", op)
	}
}
