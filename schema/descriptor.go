// Package schema defines the structural descriptors of the input a
// deserialization plan expects. A descriptor is built alongside its plan and
// is immutable afterwards: a composite plan's descriptor mirrors the
// descriptors of the plans it composes, in the same order.
package schema

import (
	"reflect"
	"strings"

	"rowplan/internal/common"
	"rowplan/primitive"
)

// DescriptorEnum represents the kind of an input descriptor.
type DescriptorEnum int

const (
	DescriptorUnknown DescriptorEnum = iota
	DescriptorAtomic
	DescriptorObject
	DescriptorArray
	DescriptorMap
	DescriptorStruct

	// DescriptorTotal is a constant that represents the total number of kinds defined
	DescriptorTotal = int(iota)
)

// String returns a human-readable representation of the DescriptorEnum.
func (k DescriptorEnum) String() string {
	switch k {
	case DescriptorAtomic:
		return "atomic"
	case DescriptorObject:
		return "object"
	case DescriptorArray:
		return "array"
	case DescriptorMap:
		return "map"
	case DescriptorStruct:
		return "struct"
	default:
		return common.UnknownStr
	}
}

// Descriptor describes the shape of input one plan reads. Exactly one variant
// is populated, selected by Kind.
type Descriptor struct {
	Kind    DescriptorEnum
	Atomic  primitive.KindEnum // DescriptorAtomic
	Runtime reflect.Type       // DescriptorObject; optionally set for DescriptorStruct
	Elem    *Descriptor        // DescriptorArray
	Key     *Descriptor        // DescriptorMap
	Value   *Descriptor        // DescriptorMap
	Fields  []Field            // DescriptorStruct, order significant
}

// Field pairs a struct field name with the descriptor of its input shape.
type Field struct {
	Name string
	Type *Descriptor
}

// Atomic returns the descriptor for an atomic kind.
func Atomic(kind primitive.KindEnum) *Descriptor {
	return &Descriptor{Kind: DescriptorAtomic, Atomic: kind}
}

// Object returns a descriptor for an opaque runtime representation.
func Object(runtime reflect.Type) *Descriptor {
	return &Descriptor{Kind: DescriptorObject, Runtime: runtime}
}

// ArrayOf returns the descriptor for a variable-length sequence of elem.
func ArrayOf(elem *Descriptor) *Descriptor {
	return &Descriptor{Kind: DescriptorArray, Elem: elem}
}

// MapOf returns the descriptor for a key/value mapping.
func MapOf(key, value *Descriptor) *Descriptor {
	return &Descriptor{Kind: DescriptorMap, Key: key, Value: value}
}

// StructOf returns the descriptor for an ordered list of named fields.
// runtime is the record representation to instantiate; may be nil when the
// binding is deferred to the evaluation runtime.
func StructOf(runtime reflect.Type, fields ...Field) *Descriptor {
	return &Descriptor{Kind: DescriptorStruct, Runtime: runtime, Fields: fields}
}

// RuntimeType returns the runtime representation of the described input:
// the Runtime type for objects and structs, the unboxed Go type for atomics,
// nil otherwise.
func (d *Descriptor) RuntimeType() reflect.Type {
	if d == nil {
		return nil
	}

	if d.Kind == DescriptorAtomic {
		return d.Atomic.RuntimeType()
	}

	return d.Runtime
}

// Equal reports structural equality: same kind, same atomic kind or runtime
// type, equal children, and for structs the same field names in the same order.
func (d *Descriptor) Equal(other *Descriptor) bool {
	if d == nil || other == nil {
		return d == other
	}

	if d.Kind != other.Kind {
		return false
	}

	switch d.Kind {
	case DescriptorAtomic:
		return d.Atomic == other.Atomic
	case DescriptorObject:
		return d.Runtime == other.Runtime
	case DescriptorArray:
		return d.Elem.Equal(other.Elem)
	case DescriptorMap:
		return d.Key.Equal(other.Key) && d.Value.Equal(other.Value)
	case DescriptorStruct:
		if d.Runtime != other.Runtime || len(d.Fields) != len(other.Fields) {
			return false
		}

		for i := range d.Fields {
			if d.Fields[i].Name != other.Fields[i].Name {
				return false
			}

			if !d.Fields[i].Type.Equal(other.Fields[i].Type) {
				return false
			}
		}

		return true
	default:
		return false
	}
}

// String returns a compact, human-readable rendering, e.g.
// "struct<name: string, age: int32>" or "map<string, int64>".
func (d *Descriptor) String() string {
	if d == nil {
		return "<nil>"
	}

	switch d.Kind {
	case DescriptorAtomic:
		return atomicName(d.Atomic)
	case DescriptorObject:
		if d.Runtime == nil {
			return "object"
		}

		return "object<" + d.Runtime.String() + ">"
	case DescriptorArray:
		return "array<" + d.Elem.String() + ">"
	case DescriptorMap:
		return "map<" + d.Key.String() + ", " + d.Value.String() + ">"
	case DescriptorStruct:
		parts := make([]string, len(d.Fields))
		for i, f := range d.Fields {
			parts[i] = f.Name + ": " + f.Type.String()
		}

		return "struct<" + strings.Join(parts, ", ") + ">"
	default:
		return common.UnknownStr
	}
}

// atomicName maps KindEnum names (KindInt32) to their lowercase type tokens (int32).
func atomicName(k primitive.KindEnum) string {
	return strings.ToLower(strings.TrimPrefix(k.String(), "Kind"))
}
