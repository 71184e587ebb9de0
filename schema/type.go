package schema

import (
	"strconv"
	"strings"

	"github.com/teranos/datasets/errors"
)

// ColumnType is the declared type of one CSV column.
type ColumnType uint8

const (
	InvalidType ColumnType = iota

	Float64Type
	Float32Type

	Int8Type
	Int16Type
	Int32Type
	Int64Type

	Uint8Type
	Uint16Type
	Uint32Type
	Uint64Type

	BoolType
	StringType
)

func (t ColumnType) String() string {
	switch t {
	case Float64Type:
		return "Float64"
	case Float32Type:
		return "Float32"
	case Int8Type:
		return "Int8"
	case Int16Type:
		return "Int16"
	case Int32Type:
		return "Int32"
	case Int64Type:
		return "Int64"
	case Uint8Type:
		return "Uint8"
	case Uint16Type:
		return "Uint16"
	case Uint32Type:
		return "Uint32"
	case Uint64Type:
		return "Uint64"
	case BoolType:
		return "Bool"
	case StringType:
		return "String"
	default:
		return "Invalid"
	}
}

// GoType returns the Go type a generated record field of this column has.
func (t ColumnType) GoType() string {
	switch t {
	case Float64Type:
		return "float64"
	case Float32Type:
		return "float32"
	case Int8Type:
		return "int8"
	case Int16Type:
		return "int16"
	case Int32Type:
		return "int32"
	case Int64Type:
		return "int64"
	case Uint8Type:
		return "uint8"
	case Uint16Type:
		return "uint16"
	case Uint32Type:
		return "uint32"
	case Uint64Type:
		return "uint64"
	case BoolType:
		return "bool"
	case StringType:
		return "string"
	default:
		return ""
	}
}

// bitSize is the width passed to strconv for numeric types.
func (t ColumnType) bitSize() int {
	switch t {
	case Int8Type, Uint8Type:
		return 8
	case Int16Type, Uint16Type:
		return 16
	case Int32Type, Uint32Type, Float32Type:
		return 32
	default:
		return 64
	}
}

// Valid reports whether t is one of the declared column types.
func (t ColumnType) Valid() bool {
	return t > InvalidType && t <= StringType
}

// IsTextual reports whether cells of this type are taken verbatim.
func (t ColumnType) IsTextual() bool {
	return t == StringType
}

// IsFloat reports whether t is float64 or float32.
func (t ColumnType) IsFloat() bool {
	return t == Float64Type || t == Float32Type
}

// IsSigned reports whether t is a signed integer type.
func (t ColumnType) IsSigned() bool {
	return t >= Int8Type && t <= Int64Type
}

// IsUnsigned reports whether t is an unsigned integer type.
func (t ColumnType) IsUnsigned() bool {
	return t >= Uint8Type && t <= Uint64Type
}

// IsNumeric reports whether cells of t go through numeric conversion.
func (t ColumnType) IsNumeric() bool {
	return t.IsFloat() || t.IsSigned() || t.IsUnsigned()
}

// Parse converts a raw cell to this column type.
// The returned value's dynamic type is exactly GoType(): float64, float32,
// int8 … uint64, bool or string. Textual columns never fail.
func (t ColumnType) Parse(raw string) (any, error) {
	switch {
	case t == StringType:
		return raw, nil

	case t == BoolType:
		return strconv.ParseBool(raw)

	case t.IsFloat():
		v, err := strconv.ParseFloat(raw, t.bitSize())
		if err != nil {
			return nil, err
		}
		if t == Float32Type {
			return float32(v), nil
		}
		return v, nil

	case t.IsSigned():
		v, err := strconv.ParseInt(raw, 10, t.bitSize())
		if err != nil {
			return nil, err
		}
		switch t {
		case Int8Type:
			return int8(v), nil
		case Int16Type:
			return int16(v), nil
		case Int32Type:
			return int32(v), nil
		default:
			return v, nil
		}

	case t.IsUnsigned():
		// strconv rejects an explicit plus sign on unsigned input; accept it
		// the same way the signed parser does.
		v, err := strconv.ParseUint(strings.TrimPrefix(raw, "+"), 10, t.bitSize())
		if err != nil {
			return nil, err
		}
		switch t {
		case Uint8Type:
			return uint8(v), nil
		case Uint16Type:
			return uint16(v), nil
		case Uint32Type:
			return uint32(v), nil
		default:
			return v, nil
		}
	}

	return nil, errors.AssertionFailedf("parse called on invalid column type %d", t)
}

// typeAliases lists every spelling accepted in configuration files.
// Go names, Rust-style short names and the variant names are all accepted
// so that schemas copied from other dataset tooling work unchanged.
var typeAliases = map[string]ColumnType{
	"float64": Float64Type, "f64": Float64Type, "double": Float64Type,
	"float32": Float32Type, "f32": Float32Type, "float": Float32Type,
	"int8": Int8Type, "i8": Int8Type,
	"int16": Int16Type, "i16": Int16Type,
	"int32": Int32Type, "i32": Int32Type,
	"int64": Int64Type, "i64": Int64Type,
	"uint8": Uint8Type, "u8": Uint8Type, "byte": Uint8Type,
	"uint16": Uint16Type, "u16": Uint16Type,
	"uint32": Uint32Type, "u32": Uint32Type,
	"uint64": Uint64Type, "u64": Uint64Type,
	"bool": BoolType, "boolean": BoolType,
	"string": StringType, "str": StringType, "&str": StringType, "text": StringType,
}

// ParseColumnType resolves a configured type name. Matching is case-insensitive,
// so "Float64", "UInt8" and "String" resolve like "float64", "uint8" and "string".
func ParseColumnType(name string) (ColumnType, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if t, ok := typeAliases[key]; ok {
		return t, nil
	}
	return InvalidType, errors.Newf("unknown column type %q", name)
}

// MarshalText renders the lowercase Go spelling used in configuration.
func (t ColumnType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, errors.Newf("cannot marshal invalid column type %d", t)
	}
	return []byte(t.GoType()), nil
}

func (t *ColumnType) UnmarshalText(text []byte) error {
	parsed, err := ParseColumnType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
