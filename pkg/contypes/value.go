// Package contypes defines the shared types of the devconsole command system:
// literal values produced by the line parser, the bind-error taxonomy used by
// argument conversion, command schema metadata with help rendering, and the
// event records exchanged with the host.
package contypes

import "strconv"

// ValueType identifies which variant a Value holds.
type ValueType int

const (
	// ValueTypeBool marks a boolean literal (`true` or `false`).
	ValueTypeBool ValueType = iota
	// ValueTypeNumber marks a floating-point numeric literal.
	ValueTypeNumber
	// ValueTypeString marks a string literal, quoted or bare.
	ValueTypeString
)

// String returns the type tag as it appears in help text and error messages.
func (t ValueType) String() string {
	switch t {
	case ValueTypeBool:
		return "bool"
	case ValueTypeNumber:
		return "number"
	case ValueTypeString:
		return "string"
	default:
		return "unknown"
	}
}

// Value is one parsed token's typed representation. It is a tagged union over
// bool, float64 and string; exactly one variant is meaningful, selected by
// Type. Values are immutable once produced by the parser.
type Value struct {
	Type   ValueType
	Bool   bool
	Number float64
	Str    string
}

// BoolValue returns a boolean literal value.
func BoolValue(b bool) Value {
	return Value{Type: ValueTypeBool, Bool: b}
}

// NumberValue returns a numeric literal value.
func NumberValue(n float64) Value {
	return Value{Type: ValueTypeNumber, Number: n}
}

// StringValue returns a string literal value.
func StringValue(s string) Value {
	return Value{Type: ValueTypeString, Str: s}
}

// String renders the literal the way it would be typed back into the console.
func (v Value) String() string {
	switch v.Type {
	case ValueTypeBool:
		return strconv.FormatBool(v.Bool)
	case ValueTypeNumber:
		return strconv.FormatFloat(v.Number, 'g', -1, 64)
	case ValueTypeString:
		return v.Str
	default:
		return ""
	}
}
