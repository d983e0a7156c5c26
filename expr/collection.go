package expr

import (
	"reflect"

	"github.com/google/uuid"

	"rowplan/internal/common"
	"rowplan/primitive"
	"rowplan/schema"
)

// ElementRef is the placeholder path bound by a per-element or per-entry
// mapping step. Name is a display hint; identity is the ID, so plans built
// concurrently never collide.
type ElementRef struct {
	ID   uuid.UUID
	Name string
	Type *schema.Descriptor
}

// NewElementRef allocates a fresh element placeholder.
func NewElementRef(name string, typ *schema.Descriptor) *ElementRef {
	return &ElementRef{ID: uuid.New(), Name: name, Type: typ}
}

func (r *ElementRef) Children() []Expression { return nil }

func (r *ElementRef) String() string { return r.Name }

// MapElements applies Body to every element of the sequence found at Input,
// with Elem bound to the element location, producing a generic container of
// converted elements.
type MapElements struct {
	Input Expression
	Elem  *ElementRef
	Body  Expression
}

func (m *MapElements) Children() []Expression { return []Expression{m.Input, m.Body} }

func (m *MapElements) String() string {
	return "map_elements(" + m.Input.String() + ", " + m.Elem.Name + " => " + m.Body.String() + ")"
}

// ContainerEnum selects the final container a collection plan materializes into.
type ContainerEnum int

const (
	ContainerUnknown ContainerEnum = iota
	ContainerArray
	ContainerSequence
	ContainerSet

	// ContainerTotal is a constant that represents the total number of kinds defined
	ContainerTotal = int(iota)
)

// String returns a human-readable representation of the ContainerEnum.
func (c ContainerEnum) String() string {
	switch c {
	case ContainerArray:
		return "array"
	case ContainerSequence:
		return "seq"
	case ContainerSet:
		return "set"
	default:
		return common.UnknownStr
	}
}

// Materialize is the final step of a collection plan: it turns the generic
// mapped container at Input into the concrete target container.
type Materialize struct {
	Container ContainerEnum
	// ElemKind is set only for array materialization over a kind with a
	// dedicated primitive routine; zero selects the generic object array.
	ElemKind primitive.KindEnum
	// Target is the container representation for sequence and set
	// materialization; nil when binding is deferred.
	Target reflect.Type
	Input  Expression
}

func (m *Materialize) Children() []Expression { return []Expression{m.Input} }

// Routine names the materialization routine the evaluation runtime must use.
// Arrays over the seven unboxable kinds get a dedicated primitive routine;
// any other array element falls back to a generic object array.
func (m *Materialize) Routine() string {
	if m.Container != ContainerArray {
		return m.Container.String()
	}

	switch m.ElemKind {
	case primitive.KindInt32:
		return "toIntArray"
	case primitive.KindInt64:
		return "toLongArray"
	case primitive.KindFloat64:
		return "toDoubleArray"
	case primitive.KindFloat32:
		return "toFloatArray"
	case primitive.KindInt16:
		return "toShortArray"
	case primitive.KindInt8:
		return "toByteArray"
	case primitive.KindBool:
		return "toBooleanArray"
	default:
		return "array"
	}
}

func (m *Materialize) String() string {
	return "materialize_" + m.Routine() + "(" + m.Input.String() + ")"
}

// MapEntries converts every key/value pair reachable at Input: Key is applied
// at KeyRef and Value at ValueRef independently, and the converted pairs are
// materialized into the target map representation.
type MapEntries struct {
	Input    Expression
	KeyRef   *ElementRef
	ValueRef *ElementRef
	Key      Expression
	Value    Expression
	Target   reflect.Type
}

func (m *MapEntries) Children() []Expression {
	return []Expression{m.Input, m.Key, m.Value}
}

func (m *MapEntries) String() string {
	return "map_entries(" + m.Input.String() +
		", " + m.KeyRef.Name + " => " + m.Key.String() +
		", " + m.ValueRef.Name + " => " + m.Value.String() + ")"
}
