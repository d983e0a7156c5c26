package primitive

import (
	"reflect"
	"time"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

// KindEnum enumerates the atomic kinds a deserialization plan can decode.
type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindFloat32
	KindFloat64
	KindBool
	KindString
	KindTime

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

func (k KindEnum) IsNumber() bool {
	switch k {
	default:
		return false
	case KindInt8, KindInt16, KindInt32, KindInt64,
		KindFloat32, KindFloat64:
		return true
	}
}

func (k KindEnum) IsInteger() bool {
	switch k {
	default:
		return false
	case KindInt8, KindInt16, KindInt32, KindInt64:
		return true
	}
}

func (k KindEnum) IsFloat() bool {
	switch k {
	default:
		return false
	case KindFloat32, KindFloat64:
		return true
	}
}

func (k KindEnum) Bits() int {
	switch k {
	default:
		panic("only numeric kinds have a meaningful bit width, but requested for: " + k.String())
	case KindInt8:
		return 8
	case KindInt16:
		return 16
	case KindInt32, KindFloat32:
		return 32
	case KindInt64, KindFloat64:
		return 64
	}
}

// HasPrimitiveArray reports whether array materialization has a dedicated
// unboxed routine for this kind. Exactly the numeric kinds and bool qualify.
func (k KindEnum) HasPrimitiveArray() bool {
	switch k {
	default:
		return false
	case KindInt8, KindInt16, KindInt32, KindInt64,
		KindFloat32, KindFloat64, KindBool:
		return true
	}
}

// RuntimeType returns the unboxed runtime representation of the kind,
// or nil for an invalid kind.
func (k KindEnum) RuntimeType() reflect.Type {
	switch k {
	default:
		return nil
	case KindInt8:
		return reflect.TypeOf(int8(0))
	case KindInt16:
		return reflect.TypeOf(int16(0))
	case KindInt32:
		return reflect.TypeOf(int32(0))
	case KindInt64:
		return reflect.TypeOf(int64(0))
	case KindFloat32:
		return reflect.TypeOf(float32(0))
	case KindFloat64:
		return reflect.TypeOf(float64(0))
	case KindBool:
		return reflect.TypeOf(false)
	case KindString:
		return reflect.TypeOf("")
	case KindTime:
		return reflect.TypeOf(time.Time{})
	}
}

// Boxed returns the canonical boxed (nullable) runtime representation for an
// atomic kind. The second result is false when no mapping exists.
func Boxed(k KindEnum) (reflect.Type, bool) {
	rt := k.RuntimeType()
	if rt == nil {
		return nil, false
	}

	return reflect.PointerTo(rt), true
}

// FromReflectType classifies a Go type as one of the atomic kinds.
// Returns the zero KindEnum for anything that is not atomic.
func FromReflectType(rtype reflect.Type) KindEnum {
	if rtype == nil {
		return 0
	}

	switch rtype {
	case reflect.TypeOf(int8(0)):
		return KindInt8
	case reflect.TypeOf(int16(0)):
		return KindInt16
	case reflect.TypeOf(int32(0)):
		return KindInt32
	case reflect.TypeOf(int64(0)):
		return KindInt64
	case reflect.TypeOf(float32(0)):
		return KindFloat32
	case reflect.TypeOf(float64(0)):
		return KindFloat64
	case reflect.TypeOf(false):
		return KindBool
	case reflect.TypeOf(""):
		return KindString
	case reflect.TypeOf(time.Time{}):
		return KindTime
	}

	return 0
}
