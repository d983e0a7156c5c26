package plan_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rowplan/expr"
	"rowplan/plan"
	"rowplan/primitive"
	"rowplan/schema"
	"rowplan/shape"
)

func TestOptionalBoxedLookup(t *testing.T) {
	boxed := map[primitive.KindEnum]reflect.Type{
		primitive.KindInt32:  reflect.TypeOf((*int32)(nil)),
		primitive.KindBool:   reflect.TypeOf((*bool)(nil)),
		primitive.KindString: reflect.TypeOf((*string)(nil)),
	}

	for kind, want := range boxed {
		p, err := plan.Derive(shape.Optional(shape.Atomic(kind)))
		require.NoError(t, err)

		in := p.InputType()
		require.Equal(t, schema.DescriptorObject, in.Kind, kind.String())
		assert.Equal(t, want, in.Runtime, kind.String())
	}
}

func TestOptionalNonAtomicKeepsRuntime(t *testing.T) {
	type person struct {
		Name string
	}

	inner, err := plan.Derive(shape.RecordOf(
		shape.TypeID{Name: "person"},
		reflect.TypeOf(person{}),
		shape.Field{Label: "Name", Shape: shape.Atomic(primitive.KindString)},
	))
	require.NoError(t, err)

	p := plan.Optional(inner)

	in := p.InputType()
	require.Equal(t, schema.DescriptorObject, in.Kind)
	// no boxed mapping exists, the record runtime representation is used directly
	assert.Equal(t, reflect.TypeOf(person{}), in.Runtime)
}

func TestOptionalSingleNullCheckPerLayer(t *testing.T) {
	p, err := plan.Derive(shape.Optional(shape.Optional(shape.Atomic(primitive.KindInt64))))
	require.NoError(t, err)

	path := &expr.InputRef{Name: "row"}

	outer, ok := p.Build(path).(*expr.WrapOptional)
	require.True(t, ok)

	inner, ok := outer.Inner.(*expr.WrapOptional)
	require.True(t, ok)

	// both layers guard the same path; no collapsing
	assert.Same(t, expr.Expression(path), outer.Input)
	assert.Same(t, expr.Expression(path), inner.Input)

	_, ok = inner.Inner.(*expr.Unbox)
	assert.True(t, ok)
}
