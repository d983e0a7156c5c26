package plan

import (
	"reflect"

	"rowplan/expr"
	"rowplan/schema"
)

// Record composes ordered field plans into a plan constructing the target
// record representation. The input type mirrors the field plans' input types
// in exactly the declared order.
func Record(target reflect.Type, fields ...Field) Plan {
	descs := make([]schema.Field, len(fields))
	for i, f := range fields {
		descs[i] = schema.Field{Name: f.Name, Type: f.Plan.InputType()}
	}

	return &recordPlan{
		fields: fields,
		target: target,
		input:  schema.StructOf(target, descs...),
	}
}

type recordPlan struct {
	fields []Field
	target reflect.Type
	input  *schema.Descriptor
}

func (r *recordPlan) InputType() *schema.Descriptor { return r.input }

// Build derives a sub-path per field in declared order and instantiates the
// record with the field expressions as constructor arguments in that exact
// order. A null-producing field plan yields a null argument; the instance
// construction itself is not nullable.
func (r *recordPlan) Build(path expr.Expression) expr.Expression {
	args := make([]expr.Expression, len(r.fields))

	for i, f := range r.fields {
		sub := &expr.GetField{
			Input: path,
			Name:  f.Name,
			Index: i,
			Type:  f.Plan.InputType(),
		}
		args[i] = f.Plan.Build(sub)
	}

	return &expr.NewInstance{Target: r.target, Args: args}
}
