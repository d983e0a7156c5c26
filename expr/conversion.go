package expr

import (
	"reflect"

	"rowplan/primitive"
)

// Unbox extracts a primitive value of the given kind from its boxed external
// representation at Input. Fails at evaluation time on a type mismatch; never
// accepts null.
type Unbox struct {
	Kind  primitive.KindEnum
	Input Expression
}

func (u *Unbox) Children() []Expression { return []Expression{u.Input} }

func (u *Unbox) String() string {
	return "unbox_" + kindToken(u.Kind) + "(" + u.Input.String() + ")"
}

// DecodeText decodes the text value at Input. Validate is left unset by the
// built-in string plan.
type DecodeText struct {
	Validate bool
	Input    Expression
}

func (d *DecodeText) Children() []Expression { return []Expression{d.Input} }

func (d *DecodeText) String() string {
	return "decode_text(" + d.Input.String() + ")"
}

// ToInstant converts the timestamp value at Input into an instant. Distinct
// from numeric unboxing.
type ToInstant struct {
	Input Expression
}

func (t *ToInstant) Children() []Expression { return []Expression{t.Input} }

func (t *ToInstant) String() string {
	return "to_instant(" + t.Input.String() + ")"
}

// WrapOptional is a null-guarded wrap: empty when the value at Input is null,
// otherwise present wrapping Inner, which is built against the same path.
// Boxed is the runtime representation of the guarded value.
type WrapOptional struct {
	Boxed reflect.Type
	Input Expression
	Inner Expression
}

func (w *WrapOptional) Children() []Expression { return []Expression{w.Input, w.Inner} }

func (w *WrapOptional) String() string {
	return "wrap_optional(" + w.Input.String() + ", " + w.Inner.String() + ")"
}

// AllowNull upcasts its input to a nullable location. Collection element
// conversions wrap each element ref with it, so element nulls flow into the
// element plan instead of failing the mapping step.
type AllowNull struct {
	Input Expression
}

func (a *AllowNull) Children() []Expression { return []Expression{a.Input} }

func (a *AllowNull) String() string {
	return "allow_null(" + a.Input.String() + ")"
}
