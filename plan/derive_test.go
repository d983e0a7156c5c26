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

type person struct {
	Name string
	Age  int32
}

func TestDeriveAtomicInt(t *testing.T) {
	p, err := plan.Derive(shape.Atomic(primitive.KindInt32))
	require.NoError(t, err)

	assert.True(t, p.InputType().Equal(schema.Atomic(primitive.KindInt32)))

	path := &expr.InputRef{Name: "row"}
	built := p.Build(path)

	unbox, ok := built.(*expr.Unbox)
	require.True(t, ok)
	assert.Equal(t, primitive.KindInt32, unbox.Kind)
	assert.Same(t, expr.Expression(path), unbox.Input)
}

func TestDeriveAtomicStringAndTime(t *testing.T) {
	str, err := plan.Derive(shape.Atomic(primitive.KindString))
	require.NoError(t, err)

	decode, ok := str.Build(&expr.InputRef{Name: "row"}).(*expr.DecodeText)
	require.True(t, ok)
	assert.False(t, decode.Validate)

	tm, err := plan.Derive(shape.Atomic(primitive.KindTime))
	require.NoError(t, err)

	_, ok = tm.Build(&expr.InputRef{Name: "row"}).(*expr.ToInstant)
	assert.True(t, ok)
}

func TestDeriveOptionalText(t *testing.T) {
	p, err := plan.Derive(shape.Optional(shape.Atomic(primitive.KindString)))
	require.NoError(t, err)

	in := p.InputType()
	require.Equal(t, schema.DescriptorObject, in.Kind)
	assert.Equal(t, reflect.TypeOf((*string)(nil)), in.Runtime)

	path := &expr.InputRef{Name: "row"}

	wrap, ok := p.Build(path).(*expr.WrapOptional)
	require.True(t, ok)
	assert.Same(t, expr.Expression(path), wrap.Input)

	// inner expression is built at the very same path
	inner, ok := wrap.Inner.(*expr.DecodeText)
	require.True(t, ok)
	assert.Same(t, expr.Expression(path), inner.Input)
}

func TestDeriveArrayInt32(t *testing.T) {
	p, err := plan.Derive(shape.ArrayOf(shape.Atomic(primitive.KindInt32)))
	require.NoError(t, err)

	assert.True(t, p.InputType().Equal(schema.ArrayOf(schema.Atomic(primitive.KindInt32))))

	mat, ok := p.Build(&expr.InputRef{Name: "row"}).(*expr.Materialize)
	require.True(t, ok)
	assert.Equal(t, "toIntArray", mat.Routine())

	mapping, ok := mat.Input.(*expr.MapElements)
	require.True(t, ok)

	// element conversion goes through the null-permitting wrapper
	unbox, ok := mapping.Body.(*expr.Unbox)
	require.True(t, ok)

	allow, ok := unbox.Input.(*expr.AllowNull)
	require.True(t, ok)
	assert.Same(t, expr.Expression(mapping.Elem), allow.Input)
}

func TestDeriveRecord(t *testing.T) {
	s := shape.RecordOf(
		shape.TypeID{Name: "Person"},
		reflect.TypeOf(person{}),
		shape.Field{Label: "name", Shape: shape.Atomic(primitive.KindString)},
		shape.Field{Label: "age", Shape: shape.Atomic(primitive.KindInt32)},
	)

	p, err := plan.Derive(s)
	require.NoError(t, err)

	want := schema.StructOf(reflect.TypeOf(person{}),
		schema.Field{Name: "name", Type: schema.Atomic(primitive.KindString)},
		schema.Field{Name: "age", Type: schema.Atomic(primitive.KindInt32)},
	)
	assert.True(t, p.InputType().Equal(want))

	path := &expr.InputRef{Name: "row"}

	inst, ok := p.Build(path).(*expr.NewInstance)
	require.True(t, ok)
	assert.Equal(t, reflect.TypeOf(person{}), inst.Target)
	require.Len(t, inst.Args, 2)

	// first argument: decode_text(row.name)
	decode, ok := inst.Args[0].(*expr.DecodeText)
	require.True(t, ok)
	name, ok := decode.Input.(*expr.GetField)
	require.True(t, ok)
	assert.Equal(t, "name", name.Name)
	assert.Equal(t, 0, name.Index)
	assert.Same(t, expr.Expression(path), name.Input)

	// second argument: unbox_int32(row.age)
	unbox, ok := inst.Args[1].(*expr.Unbox)
	require.True(t, ok)
	age, ok := unbox.Input.(*expr.GetField)
	require.True(t, ok)
	assert.Equal(t, "age", age.Name)
	assert.Equal(t, 1, age.Index)
}

func TestDeriveMap(t *testing.T) {
	target := reflect.TypeOf(map[string]int32{})

	s := shape.MapOf(shape.Atomic(primitive.KindString), shape.Atomic(primitive.KindInt32), target)

	p, err := plan.Derive(s)
	require.NoError(t, err)

	want := schema.MapOf(schema.Atomic(primitive.KindString), schema.Atomic(primitive.KindInt32))
	assert.True(t, p.InputType().Equal(want))

	entries, ok := p.Build(&expr.InputRef{Name: "row"}).(*expr.MapEntries)
	require.True(t, ok)
	assert.Equal(t, target, entries.Target)

	// key and value conversions are applied independently to their own refs
	key, ok := entries.Key.(*expr.DecodeText)
	require.True(t, ok)
	assert.Same(t, expr.Expression(entries.KeyRef), key.Input)

	value, ok := entries.Value.(*expr.Unbox)
	require.True(t, ok)
	assert.Same(t, expr.Expression(entries.ValueRef), value.Input)
}

func TestDeriveDeterminism(t *testing.T) {
	s := shape.RecordOf(
		shape.TypeID{Name: "Person"},
		reflect.TypeOf(person{}),
		shape.Field{Label: "name", Shape: shape.Atomic(primitive.KindString)},
		shape.Field{Label: "age", Shape: shape.Atomic(primitive.KindInt32)},
	)

	first, err := plan.Derive(s)
	require.NoError(t, err)

	second, err := plan.Derive(s)
	require.NoError(t, err)

	assert.True(t, first.InputType().Equal(second.InputType()))
}

func TestDeriveFieldOrderSensitivity(t *testing.T) {
	name := shape.Field{Label: "name", Shape: shape.Atomic(primitive.KindString)}
	age := shape.Field{Label: "age", Shape: shape.Atomic(primitive.KindInt32)}

	forward, err := plan.Derive(shape.RecordOf(shape.TypeID{Name: "P"}, nil, name, age))
	require.NoError(t, err)

	reversed, err := plan.Derive(shape.RecordOf(shape.TypeID{Name: "P"}, nil, age, name))
	require.NoError(t, err)

	assert.False(t, forward.InputType().Equal(reversed.InputType()))

	ff := forward.InputType().Fields
	rf := reversed.InputType().Fields
	require.Len(t, ff, 2)
	require.Len(t, rf, 2)
	assert.Equal(t, ff[0].Name, rf[1].Name)
	assert.Equal(t, ff[1].Name, rf[0].Name)
}

func TestDeriveCyclicRecord(t *testing.T) {
	node := &shape.Shape{
		ID:   shape.TypeID{Name: "Node"},
		Kind: shape.ShapeRecord,
	}
	node.Fields = []shape.Field{
		{Label: "value", Shape: shape.Atomic(primitive.KindInt64)},
		{Label: "next", Shape: shape.Optional(node)},
	}

	_, err := plan.Derive(node)
	require.ErrorIs(t, err, plan.ErrCyclicShape)
	assert.Contains(t, err.Error(), "Node")
	assert.Contains(t, err.Error(), `field "next"`)
}

func TestDeriveFailuresNameTheShape(t *testing.T) {
	_, err := plan.Derive(nil)
	require.ErrorIs(t, err, plan.ErrNilShape)

	_, err = plan.Derive(&shape.Shape{Kind: shape.ShapeAtomic})
	require.ErrorIs(t, err, plan.ErrNoPrimitivePlan)

	bad := shape.RecordOf(shape.TypeID{Name: "Bad"}, nil,
		shape.Field{Label: "blob", Shape: &shape.Shape{Kind: shape.ShapeUnknown}},
	)

	_, err = plan.Derive(bad)
	require.ErrorIs(t, err, plan.ErrUnsupportedShape)
	assert.Contains(t, err.Error(), "Bad")
	assert.Contains(t, err.Error(), `field "blob"`)
}

func TestForKind(t *testing.T) {
	for k := primitive.KindEnum(1); int(k) < primitive.KindTotal; k++ {
		p, ok := plan.ForKind(k)
		require.True(t, ok, k.String())
		assert.True(t, p.InputType().Equal(schema.Atomic(k)))
	}

	_, ok := plan.ForKind(0)
	assert.False(t, ok)
}
