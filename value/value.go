// Package value implements the small tagged sum type shared by the
// interpreter's evaluation results and the dataframe's example cells:
// {void, bool, int, double, string}. Deliberately not a general
// interface{}/any container — see SPEC_FULL.md §9 design notes — so that
// the set of representable shapes stays closed and analyzable.
package value

import "fmt"

// Kind tags which alternative of the sum type is populated.
type Kind uint8

const (
	Void Kind = iota
	Bool
	Int
	Double
	String
)

func (k Kind) String() string {
	switch k {
	case Void:
		return "void"
	case Bool:
		return "bool"
	case Int:
		return "int"
	case Double:
		return "double"
	case String:
		return "string"
	default:
		return "unknown"
	}
}

// Value is an immutable tagged value. The zero Value is Void ("no
// value"), which is how the interpreter represents an undefined result
// (e.g. log of a negative number, divide by zero) per spec.md §4.14/§7.
type Value struct {
	kind Kind
	b    bool
	i    int64
	d    float64
	s    string
}

// Nil is the canonical "no value" result.
var Nil = Value{kind: Void}

// Kind reports which alternative is populated.
func (v Value) Kind() Kind { return v.kind }

// IsVoid reports whether v carries no value.
func (v Value) IsVoid() bool { return v.kind == Void }

// OfBool constructs a bool-typed Value.
func OfBool(b bool) Value { return Value{kind: Bool, b: b} }

// OfInt constructs an int-typed Value.
func OfInt(i int64) Value { return Value{kind: Int, i: i} }

// OfDouble constructs a double-typed Value.
func OfDouble(d float64) Value { return Value{kind: Double, d: d} }

// OfString constructs a string-typed Value.
func OfString(s string) Value { return Value{kind: String, s: s} }

// Bool returns the bool payload and whether v actually holds one.
func (v Value) Bool() (bool, bool) { return v.b, v.kind == Bool }

// Int returns the int payload and whether v actually holds one.
func (v Value) Int() (int64, bool) { return v.i, v.kind == Int }

// Double returns the double payload and whether v actually holds one.
func (v Value) Double() (float64, bool) { return v.d, v.kind == Double }

// String returns the string payload and whether v actually holds one.
func (v Value) String() (string, bool) { return v.s, v.kind == String }

// AsDouble coerces numeric kinds (Int, Double, Bool) into a float64,
// mirroring the loose numeric coercions the interpreter's arithmetic
// symbols need; returns ok=false for String and Void.
func (v Value) AsDouble() (float64, bool) {
	switch v.kind {
	case Double:
		return v.d, true
	case Int:
		return float64(v.i), true
	case Bool:
		if v.b {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}

// GoString renders the value for debugging/error messages.
func (v Value) GoString() string {
	switch v.kind {
	case Void:
		return "<void>"
	case Bool:
		return fmt.Sprintf("%t", v.b)
	case Int:
		return fmt.Sprintf("%d", v.i)
	case Double:
		return fmt.Sprintf("%g", v.d)
	case String:
		return fmt.Sprintf("%q", v.s)
	default:
		return "<?>"
	}
}

// Equal reports structural equality, used by CSE to detect
// semantically-identical constant terminals.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case Void:
		return true
	case Bool:
		return a.b == b.b
	case Int:
		return a.i == b.i
	case Double:
		return a.d == b.d
	case String:
		return a.s == b.s
	}
	return false
}
