// Package shape holds the static type descriptors consumed by plan
// derivation. A Shape classifies a target type as atomic, optional,
// collection, map, or record, and carries the runtime representation to
// instantiate. Shapes normally come from the reflect provider (OfType) or
// from a schemafile definition, but any oracle can construct them directly.
package shape

import (
	"reflect"

	"rowplan/internal/common"
	"rowplan/primitive"
)

// TypeID uniquely identifies a named type by its package path and name.
type TypeID struct {
	PkgPath string
	Name    string
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// IsZero reports whether the TypeID is unset (an unnamed shape).
func (t TypeID) IsZero() bool {
	return t.PkgPath == "" && t.Name == ""
}

// ShapeEnum represents the structural classification of a target type.
type ShapeEnum int

const (
	ShapeUnknown ShapeEnum = iota
	ShapeAtomic
	ShapeOptional
	ShapeArray
	ShapeSequence
	ShapeSet
	ShapeMap
	ShapeRecord

	// ShapeTotal is a constant that represents the total number of kinds defined
	ShapeTotal = int(iota)
)

// String returns a human-readable representation of the ShapeEnum.
func (k ShapeEnum) String() string {
	switch k {
	case ShapeAtomic:
		return "atomic"
	case ShapeOptional:
		return "optional"
	case ShapeArray:
		return "array"
	case ShapeSequence:
		return "sequence"
	case ShapeSet:
		return "set"
	case ShapeMap:
		return "map"
	case ShapeRecord:
		return "record"
	default:
		return common.UnknownStr
	}
}

// Shape describes the static structure of one target type. Exactly one
// variant is populated, selected by Kind.
type Shape struct {
	// ID is set for named types; it drives cyclic-reference rejection.
	ID     TypeID
	Kind   ShapeEnum
	Atomic primitive.KindEnum // ShapeAtomic
	Elem   *Shape             // ShapeOptional, ShapeArray, ShapeSequence, ShapeSet
	Key    *Shape             // ShapeMap
	Value  *Shape             // ShapeMap
	Fields []Field            // ShapeRecord, declared order
	// Runtime is the representation to instantiate; may be nil when the
	// binding is deferred to the evaluation runtime.
	Runtime reflect.Type
}

// Field pairs a record field label with the shape of its component type.
type Field struct {
	Label string
	Shape *Shape
}

// Atomic returns the shape of an atomic kind.
func Atomic(kind primitive.KindEnum) *Shape {
	return &Shape{Kind: ShapeAtomic, Atomic: kind, Runtime: kind.RuntimeType()}
}

// Optional lifts a shape into its optional form.
func Optional(inner *Shape) *Shape {
	s := &Shape{Kind: ShapeOptional, Elem: inner}
	if inner != nil && inner.Runtime != nil {
		s.Runtime = reflect.PointerTo(inner.Runtime)
	}

	return s
}

// ArrayOf returns the shape of a native array over elem.
func ArrayOf(elem *Shape) *Shape {
	s := &Shape{Kind: ShapeArray, Elem: elem}
	if elem != nil && elem.Runtime != nil {
		s.Runtime = reflect.SliceOf(elem.Runtime)
	}

	return s
}

// SequenceOf returns the shape of an ordered sequence container over elem.
func SequenceOf(elem *Shape, runtime reflect.Type) *Shape {
	return &Shape{Kind: ShapeSequence, Elem: elem, Runtime: runtime}
}

// SetOf returns the shape of a set container over elem.
func SetOf(elem *Shape, runtime reflect.Type) *Shape {
	return &Shape{Kind: ShapeSet, Elem: elem, Runtime: runtime}
}

// MapOf returns the shape of a key/value mapping.
func MapOf(key, value *Shape, runtime reflect.Type) *Shape {
	return &Shape{Kind: ShapeMap, Key: key, Value: value, Runtime: runtime}
}

// RecordOf returns the shape of a record with the given ordered fields.
func RecordOf(id TypeID, runtime reflect.Type, fields ...Field) *Shape {
	return &Shape{Kind: ShapeRecord, ID: id, Runtime: runtime, Fields: fields}
}
