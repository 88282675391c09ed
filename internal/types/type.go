// Package types describes the primitive element types that every IR
// Expr carries. TCL has no user-defined types and no type inference
// beyond a single declared element type per kernel, so the type
// lattice here is intentionally flat: a code, a bit width and a lane
// count.
package types

import "fmt"

// Code enumerates the primitive numeric families TCL supports.
type Code uint8

const (
	Invalid Code = iota
	Int
	UInt
	Float
)

func (c Code) String() string {
	switch c {
	case Int:
		return "int"
	case UInt:
		return "uint"
	case Float:
		return "float"
	default:
		return "invalid"
	}
}

// Type is the tuple (code, bits, lanes). Two Types are equal iff all
// three fields match. A Type is immutable once constructed — pass by
// value, never by pointer.
type Type struct {
	Code  Code
	Bits  uint8
	Lanes uint16
}

// IntScalar returns a lane-1 signed integer type of the given width.
func IntScalar(bits uint8) Type { return Type{Code: Int, Bits: bits, Lanes: 1} }

// UIntScalar returns a lane-1 unsigned integer type of the given width.
func UIntScalar(bits uint8) Type { return Type{Code: UInt, Bits: bits, Lanes: 1} }

// FloatScalar returns a lane-1 floating point type of the given width.
func FloatScalar(bits uint8) Type { return Type{Code: Float, Bits: bits, Lanes: 1} }

// Valid reports whether t has a recognised code, a supported bit
// width and at least one lane.
func (t Type) Valid() bool {
	switch t.Bits {
	case 1, 8, 16, 32, 64:
	default:
		return false
	}
	if t.Lanes < 1 {
		return false
	}
	switch t.Code {
	case Int, UInt, Float:
		return true
	default:
		return false
	}
}

// WithLanes returns a copy of t widened to the given lane count, a
// vector form of a scalar element type (§9: the IR reserves the slot;
// neither the printer nor the core lowering pipeline calls this).
func (t Type) WithLanes(lanes uint16) Type {
	t.Lanes = lanes
	return t
}

func (t Type) String() string {
	base := fmt.Sprintf("%s%d", t.Code, t.Bits)
	if t.Lanes > 1 {
		return fmt.Sprintf("%sx%d", base, t.Lanes)
	}
	return base
}

// CName renders the C-compatible element type name the printer
// emits in a kernel's function signature.
func (t Type) CName() string {
	switch t.Code {
	case Float:
		if t.Bits == 32 {
			return "float"
		}
		return "double"
	case UInt:
		return fmt.Sprintf("uint%d_t", t.Bits)
	case Int:
		return fmt.Sprintf("int%d_t", t.Bits)
	default:
		return "void"
	}
}

// FromDataType maps the JSON case file's "data_type" field ("float" or
// "int") to a default scalar Type, per §6.1.
func FromDataType(dataType string) (Type, error) {
	switch dataType {
	case "float":
		return FloatScalar(32), nil
	case "int":
		return IntScalar(32), nil
	default:
		return Type{}, fmt.Errorf("types: unknown data_type %q", dataType)
	}
}
