package plan

import (
	"reflect"

	"rowplan/expr"
	"rowplan/schema"
)

// Map composes a key plan and a value plan into a plan for a map container.
// Key and value null-safety is whatever each sub-plan provides on its own.
func Map(key, value Plan, target reflect.Type) Plan {
	return &mapPlan{
		key:    key,
		value:  value,
		target: target,
		input:  schema.MapOf(key.InputType(), value.InputType()),
	}
}

type mapPlan struct {
	key    Plan
	value  Plan
	target reflect.Type
	input  *schema.Descriptor
}

func (m *mapPlan) InputType() *schema.Descriptor { return m.input }

func (m *mapPlan) Build(path expr.Expression) expr.Expression {
	keyRef := expr.NewElementRef("key", m.key.InputType())
	valueRef := expr.NewElementRef("value", m.value.InputType())

	return &expr.MapEntries{
		Input:    path,
		KeyRef:   keyRef,
		ValueRef: valueRef,
		Key:      m.key.Build(keyRef),
		Value:    m.value.Build(valueRef),
		Target:   m.target,
	}
}
