package plan

import (
	"rowplan/expr"
	"rowplan/primitive"
	"rowplan/schema"
)

// Optional lifts a plan for T into a plan for an optional T. The input type
// is the boxed form of T resolved from the atomic-kind table; a non-atomic
// inner plan keeps its own runtime representation.
func Optional(inner Plan) Plan {
	in := inner.InputType()

	boxed := in.RuntimeType()
	if in.Kind == schema.DescriptorAtomic {
		if bt, ok := primitive.Boxed(in.Atomic); ok {
			boxed = bt
		}
	}

	return &optionalPlan{inner: inner, input: schema.Object(boxed)}
}

type optionalPlan struct {
	inner Plan
	input *schema.Descriptor
}

func (o *optionalPlan) InputType() *schema.Descriptor { return o.input }

// Build introduces exactly one null check per optional layer: null at path
// yields empty, anything else wraps the inner expression built at the same
// path. Nested optionals are not collapsed.
func (o *optionalPlan) Build(path expr.Expression) expr.Expression {
	return &expr.WrapOptional{
		Boxed: o.input.Runtime,
		Input: path,
		Inner: o.inner.Build(path),
	}
}
